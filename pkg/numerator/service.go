// Package numerator provides document auto-numbering.
// Numbers come from named sequences held in a SequenceStore.
package numerator

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Strategy defines the numbering generation strategy.
type Strategy int

const (
	// StrategyStrict reserves one number per call.
	// Guarantees sequential numbers without gaps.
	// Suitable for invoices and accounting documents.
	StrategyStrict Strategy = iota

	// StrategyCached allocates ranges of numbers in memory.
	// Faster, but may produce gaps if the application restarts.
	// Suitable for internal documents.
	StrategyCached
)

// Options configuration for number generation.
type Options struct {
	// Strategy to use for number generation
	Strategy Strategy
	// RangeSize is the number of IDs to allocate at once in Cached strategy.
	// Default is 50.
	RangeSize int64
}

// DefaultOptions returns standard options (Strict).
func DefaultOptions() *Options {
	return &Options{
		Strategy: StrategyStrict,
	}
}

// SequenceStore hands out monotonically increasing values per key.
// Next advances the sequence by increment and returns the new last value.
type SequenceStore interface {
	Next(ctx context.Context, key string, increment int64) (int64, error)
	Set(ctx context.Context, key string, value int64) error
}

// MemoryStore is a SequenceStore held in process memory. Sequences restart
// from the highest number seen when rebuilt at startup.
type MemoryStore struct {
	mu   sync.Mutex
	vals map[string]int64
}

// NewMemoryStore creates an empty in-memory sequence store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{vals: make(map[string]int64)}
}

// Next advances a sequence and returns its new last value.
func (m *MemoryStore) Next(ctx context.Context, key string, increment int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[key] += increment
	return m.vals[key], nil
}

// Set forces a sequence to a value.
func (m *MemoryStore) Set(ctx context.Context, key string, value int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[key] = value
	return nil
}

// Observe raises a sequence to at least value. Used to rebuild sequences
// from existing document numbers at startup.
func (m *MemoryStore) Observe(key string, value int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.vals[key] < value {
		m.vals[key] = value
	}
}

type cachedRange struct {
	current int64
	max     int64
}

// Service provides document numbering functionality.
type Service struct {
	store SequenceStore

	cacheMu sync.Mutex
	ranges  map[string]*cachedRange
}

// New creates a numerator service over a sequence store.
func New(store SequenceStore) *Service {
	return &Service{
		store:  store,
		ranges: make(map[string]*cachedRange),
	}
}

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g., "INV", "PUR")
	Prefix string

	// IncludeYear adds year to the number
	IncludeYear bool

	// PadWidth is the minimum number width (default 5)
	PadWidth int

	// ResetPeriod: "year", "month", "never"
	ResetPeriod string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		IncludeYear: true,
		PadWidth:    5,
		ResetPeriod: "year",
	}
}

// GetNextNumber generates the next document number.
// Pattern: PREFIX-YEAR-XXXXX (e.g., INV-2024-00001)
func (s *Service) GetNextNumber(ctx context.Context, cfg Config, opts *Options, period time.Time) (string, error) {
	if s == nil {
		return "", fmt.Errorf("numerator service is not initialized")
	}

	if opts == nil {
		opts = DefaultOptions()
	}

	key := s.buildKey(cfg, period)
	var num int64
	var err error

	switch opts.Strategy {
	case StrategyCached:
		num, err = s.getNextCached(ctx, key, opts)
	case StrategyStrict:
		fallthrough
	default:
		num, err = s.store.Next(ctx, key, 1)
	}

	if err != nil {
		return "", err
	}

	return s.formatNumber(cfg, period, num), nil
}

// getNextCached serves numbers from a reserved range, refilling when empty.
func (s *Service) getNextCached(ctx context.Context, key string, opts *Options) (int64, error) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	rng, exists := s.ranges[key]
	if !exists {
		rng = &cachedRange{}
		s.ranges[key] = rng
	}

	if rng.current >= rng.max {
		size := opts.RangeSize
		if size <= 0 {
			size = 50
		}

		// The store returns the end of the reserved range; the usable
		// numbers are (end-size, end].
		newMax, err := s.store.Next(ctx, key, size)
		if err != nil {
			return 0, fmt.Errorf("reserve range: %w", err)
		}
		rng.current = newMax - size
		rng.max = newMax
	}

	rng.current++
	return rng.current, nil
}

// SetNextNumber sets the sequence value (for migration purposes).
func (s *Service) SetNextNumber(ctx context.Context, cfg Config, period time.Time, value int64) error {
	key := s.buildKey(cfg, period)
	if err := s.store.Set(ctx, key, value); err != nil {
		return err
	}

	s.cacheMu.Lock()
	delete(s.ranges, key)
	s.cacheMu.Unlock()
	return nil
}

// buildKey creates the sequence key based on config and period.
func (s *Service) buildKey(cfg Config, period time.Time) string {
	switch cfg.ResetPeriod {
	case "month":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006_01"))
	case "year":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006"))
	default:
		return cfg.Prefix
	}
}

// formatNumber creates the final number string.
func (s *Service) formatNumber(cfg Config, period time.Time, num int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = 5
	}

	if cfg.IncludeYear {
		return fmt.Sprintf("%s-%s-%0*d", cfg.Prefix, period.Format("2006"), padWidth, num)
	}
	return fmt.Sprintf("%s-%0*d", cfg.Prefix, padWidth, num)
}

// ParseNumber extracts numeric part from formatted number.
// Returns -1 if parsing fails.
func ParseNumber(formatted string) int64 {
	var num int64
	patterns := []string{
		"%*[^-]-%*d-%d",
		"%*[^-]-%d",
	}

	for _, pattern := range patterns {
		if _, err := fmt.Sscanf(formatted, pattern, &num); err == nil {
			return num
		}
	}

	return -1
}

// Next generates the next number using default config with prefix.
func (s *Service) Next(ctx context.Context, prefix string) (string, error) {
	cfg := DefaultConfig(prefix)
	return s.GetNextNumber(ctx, cfg, nil, time.Now())
}
