package engine

import (
	"pharmos/internal/core/id"
	"pharmos/internal/domain/auth"
	"pharmos/internal/domain/model"
)

func applyLogin(state *model.AppState, cmd Login) *model.AppState {
	user := state.FindUserByName(cmd.Username)
	if user == nil || !auth.VerifyPassword(user.PasswordHash, cmd.Password) {
		return state
	}
	next := shallow(state)
	next.CurrentUser = user.Sanitized()
	return next
}

func applyLogout(state *model.AppState) *model.AppState {
	next := shallow(state)
	next.CurrentUser = nil
	return next
}

func applyAddUser(state *model.AppState, cmd AddUser) *model.AppState {
	user := cmd.User
	user.ID = id.NewString()
	next := shallow(state)
	next.Users = appendCopy(state.Users, user)
	return next
}

func applyUpdateUser(state *model.AppState, cmd UpdateUser) *model.AppState {
	next := shallow(state)
	users := make([]model.User, len(state.Users))
	for i, u := range state.Users {
		if u.ID == cmd.User.ID {
			users[i] = cmd.User
		} else {
			users[i] = u
		}
	}
	next.Users = users
	return next
}

func applyDeleteUser(state *model.AppState, cmd DeleteUser) *model.AppState {
	// The session user cannot remove itself.
	if state.CurrentUser != nil && state.CurrentUser.ID == cmd.UserID {
		return state
	}
	// The last admin account is protected.
	target := state.FindUser(cmd.UserID)
	if target != nil && target.Role == model.RoleAdmin && state.AdminCount() == 1 {
		return state
	}
	next := shallow(state)
	next.Users = removeByID(state.Users, func(u model.User) bool { return u.ID == cmd.UserID })
	return next
}
