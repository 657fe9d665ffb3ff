package engine

import (
	"pharmos/internal/domain/model"
)

func applyUpdateCompanyInfo(state *model.AppState, cmd UpdateCompanyInfo) *model.AppState {
	next := shallow(state)
	next.CompanyInfo = cmd.Info
	return next
}

func applyReplaceState(state *model.AppState, cmd ReplaceState) *model.AppState {
	incoming := cmd.State
	// A restorable snapshot must carry the core collections; anything else
	// is rejected without touching the running state.
	if incoming == nil || incoming.Products == nil || incoming.Sales == nil ||
		incoming.Suppliers == nil || incoming.Purchases == nil {
		return state
	}
	next := *incoming
	next.CurrentUser = state.CurrentUser
	return &next
}
