package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmos/internal/core/apperror"
	"pharmos/internal/domain/engine"
	"pharmos/internal/domain/model"
)

type recordingPersister struct {
	saves int
	last  *model.AppState
	err   error
}

func (p *recordingPersister) Save(_ context.Context, state *model.AppState) error {
	p.saves++
	p.last = state
	return p.err
}

func seedState() *model.AppState {
	return &model.AppState{
		Products:  []model.Product{},
		Sales:     []model.Sale{},
		Suppliers: []model.Supplier{},
		Purchases: []model.Purchase{},
	}
}

func TestDispatch_PersistsAppliedTransitions(t *testing.T) {
	ctx := context.Background()
	persister := &recordingPersister{}
	s := New(seedState(), persister)

	next, applied, err := s.Dispatch(ctx, engine.AddExpenseCategory{Category: "rent"})
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, []string{"rent"}, next.ExpenseCategories)

	assert.Equal(t, 1, persister.saves)
	assert.Same(t, next, persister.last)
	assert.Same(t, next, s.Snapshot())
}

func TestDispatch_NoOpSkipsPersistence(t *testing.T) {
	ctx := context.Background()
	persister := &recordingPersister{}
	s := New(seedState(), persister)

	_, _, err := s.Dispatch(ctx, engine.AddExpenseCategory{Category: "rent"})
	require.NoError(t, err)

	before := s.Snapshot()
	next, applied, err := s.Dispatch(ctx, engine.AddExpenseCategory{Category: "rent"})
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Same(t, before, next)
	assert.Equal(t, 1, persister.saves)
}

func TestDispatch_PersistFailureKeepsNewState(t *testing.T) {
	ctx := context.Background()
	persister := &recordingPersister{err: errors.New("disk full")}
	s := New(seedState(), persister)

	next, applied, err := s.Dispatch(ctx, engine.AddExpenseCategory{Category: "rent"})
	assert.True(t, applied)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeStorage, appErr.Code)

	// The transition stands even though the save failed.
	assert.Same(t, next, s.Snapshot())
	assert.Equal(t, []string{"rent"}, s.Snapshot().ExpenseCategories)
}

func TestDispatch_NilPersister(t *testing.T) {
	ctx := context.Background()
	s := New(seedState(), nil)

	_, applied, err := s.Dispatch(ctx, engine.AddExpenseCategory{Category: "rent"})
	require.NoError(t, err)
	assert.True(t, applied)
}
