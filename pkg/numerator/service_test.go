package numerator

import (
	"context"
	"testing"
	"time"
)

func TestGetNextNumber_Strict(t *testing.T) {
	svc := New(NewMemoryStore())
	ctx := context.Background()
	cfg := DefaultConfig("TEST")
	period := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	num, err := svc.GetNextNumber(ctx, cfg, nil, period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "TEST-2026-00001" {
		t.Errorf("expected TEST-2026-00001, got %s", num)
	}

	num, err = svc.GetNextNumber(ctx, cfg, nil, period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "TEST-2026-00002" {
		t.Errorf("expected TEST-2026-00002, got %s", num)
	}
}

func TestGetNextNumber_YearReset(t *testing.T) {
	svc := New(NewMemoryStore())
	ctx := context.Background()
	cfg := DefaultConfig("INV")

	num, err := svc.GetNextNumber(ctx, cfg, nil, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "INV-2025-00001" {
		t.Errorf("expected INV-2025-00001, got %s", num)
	}

	// New year, new sequence
	num, err = svc.GetNextNumber(ctx, cfg, nil, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "INV-2026-00001" {
		t.Errorf("expected INV-2026-00001, got %s", num)
	}
}

func TestGetNextNumber_Cached(t *testing.T) {
	store := NewMemoryStore()
	svc := New(store)
	ctx := context.Background()
	cfg := DefaultConfig("ORD")
	period := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	opts := &Options{
		Strategy:  StrategyCached,
		RangeSize: 10,
	}

	// First call reserves 1..10 and serves 1.
	num, err := svc.GetNextNumber(ctx, cfg, opts, period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "ORD-2026-00001" {
		t.Errorf("expected ORD-2026-00001, got %s", num)
	}
	if store.vals["ORD_2026"] != 10 {
		t.Errorf("expected reserved range end 10, got %d", store.vals["ORD_2026"])
	}

	// Second call is served from memory without touching the store.
	num, err = svc.GetNextNumber(ctx, cfg, opts, period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "ORD-2026-00002" {
		t.Errorf("expected ORD-2026-00002, got %s", num)
	}
	if store.vals["ORD_2026"] != 10 {
		t.Errorf("expected reserved range end to stay 10, got %d", store.vals["ORD_2026"])
	}

	// Exhaust the range; the next call reserves 11..20 and serves 11.
	for i := 0; i < 8; i++ {
		_, _ = svc.GetNextNumber(ctx, cfg, opts, period)
	}
	num, err = svc.GetNextNumber(ctx, cfg, opts, period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "ORD-2026-00011" {
		t.Errorf("expected ORD-2026-00011, got %s", num)
	}
	if store.vals["ORD_2026"] != 20 {
		t.Errorf("expected reserved range end 20, got %d", store.vals["ORD_2026"])
	}
}

func TestSetNextNumber_InvalidatesCache(t *testing.T) {
	store := NewMemoryStore()
	svc := New(store)
	ctx := context.Background()
	cfg := DefaultConfig("INV")
	opts := &Options{Strategy: StrategyCached, RangeSize: 10}
	period := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	// Fill cache (1..10), then jump the sequence past it.
	if _, err := svc.GetNextNumber(ctx, cfg, opts, period); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.SetNextNumber(ctx, cfg, period, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	num, err := svc.GetNextNumber(ctx, cfg, opts, period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "INV-2026-00101" {
		t.Errorf("expected INV-2026-00101, got %s", num)
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"INV-2026-00042", 42},
		{"INV-00007", 7},
		{"garbage", -1},
	}
	for _, tc := range cases {
		if got := ParseNumber(tc.in); got != tc.want {
			t.Errorf("ParseNumber(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMemoryStore_Observe(t *testing.T) {
	store := NewMemoryStore()
	store.Observe("INV_2026", 40)
	store.Observe("INV_2026", 12) // lower value must not regress the sequence

	num, err := New(store).GetNextNumber(context.Background(), DefaultConfig("INV"), nil,
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "INV-2026-00041" {
		t.Errorf("expected INV-2026-00041, got %s", num)
	}
}
