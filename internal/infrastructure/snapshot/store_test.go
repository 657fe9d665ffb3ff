package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmos/internal/domain/model"
)

func TestLoad_MissingFileReturnsSeed(t *testing.T) {
	ctx := context.Background()
	s := NewStore(filepath.Join(t.TempDir(), "state.json"))

	state, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Len(t, state.Users, 1)
	assert.Equal(t, "admin", state.Users[0].Username)
	assert.NotEmpty(t, state.Products)
}

func TestLoad_CorruptFileReturnsSeed(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewStore(path)
	state, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", state.Users[0].Username)

	// The unreadable document stays on disk for manual recovery.
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	s := NewStore(path)

	state := SeedState()
	state.ExpenseCategories = []string{"rent"}
	state.Products[0].Stock = 42

	require.NoError(t, s.Save(ctx, state))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"rent"}, loaded.ExpenseCategories)
	assert.Equal(t, 42.0, loaded.Products[0].Stock)
	assert.Equal(t, len(state.Products), len(loaded.Products))
}

func TestLoad_DefaultsCoreCollections(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"companyInfo":{"name":"x"}}`), 0o644))

	s := NewStore(path)
	state, err := s.Load(ctx)
	require.NoError(t, err)

	// An older document without the core collections still loads usable.
	assert.NotNil(t, state.Products)
	assert.NotNil(t, state.Sales)
	assert.NotNil(t, state.Suppliers)
	assert.NotNil(t, state.Purchases)
}

func TestSave_ReplacesExistingDocument(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	s := NewStore(path)

	first := SeedState()
	require.NoError(t, s.Save(ctx, first))

	second := SeedState()
	second.CompanyInfo.Name = "updated"
	require.NoError(t, s.Save(ctx, second))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "updated", loaded.CompanyInfo.Name)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSeedState_Shape(t *testing.T) {
	state := SeedState()

	assert.Nil(t, state.CurrentUser)
	assert.Len(t, state.Sales, 2)
	assert.Len(t, state.Suppliers, 2)
	assert.NotEmpty(t, state.ExpenseCategories)
	assert.Equal(t, model.PrinterA4, state.CompanyInfo.PrinterSettings.Type)
}
