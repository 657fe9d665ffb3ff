package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmos/internal/core/apperror"
	"pharmos/internal/domain/auth"
	"pharmos/internal/domain/engine"
	"pharmos/internal/domain/model"
	"pharmos/internal/domain/store"
	"pharmos/internal/infrastructure/http/v1/dto"
)

// UserHandler handles operator account management.
type UserHandler struct {
	*BaseHandler
	store *store.Store
}

// NewUserHandler creates a new user handler.
func NewUserHandler(base *BaseHandler, st *store.Store) *UserHandler {
	return &UserHandler{BaseHandler: base, store: st}
}

// List returns all accounts without password material.
// GET /api/v1/admin/users
func (h *UserHandler) List(c *gin.Context) {
	state := h.store.Snapshot()
	users := make([]*model.User, len(state.Users))
	for i := range state.Users {
		users[i] = state.Users[i].Sanitized()
	}
	h.OK(c, users)
}

// Create registers an account. The password is stored as a bcrypt hash.
// POST /api/v1/admin/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if h.store.Snapshot().FindUserByName(req.Username) != nil {
		h.Error(c, apperror.NewDuplicate("user", "username", req.Username))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return
	}

	state, ok := dispatch(c, h.store, engine.AddUser{User: model.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         model.Role(req.Role),
	}}, "user was not added")
	if !ok {
		return
	}
	h.Created(c, state.Users[len(state.Users)-1].ID)
}

// Update edits an account. An empty password keeps the stored hash.
// PUT /api/v1/admin/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}
	id := c.Param("id")
	state := h.store.Snapshot()

	existing := state.FindUser(id)
	if existing == nil {
		h.Error(c, apperror.NewNotFound("user", id))
		return
	}
	if other := state.FindUserByName(req.Username); other != nil && other.ID != id {
		h.Error(c, apperror.NewDuplicate("user", "username", req.Username))
		return
	}

	hash := existing.PasswordHash
	if req.Password != "" {
		var err error
		hash, err = auth.HashPassword(req.Password)
		if err != nil {
			h.Error(c, apperror.NewInternal(err))
			return
		}
	}

	user := model.User{ID: id, Username: req.Username, PasswordHash: hash, Role: model.Role(req.Role)}
	if _, ok := dispatch(c, h.store, engine.UpdateUser{User: user}, "user was not updated"); !ok {
		return
	}
	h.OK(c, user.Sanitized())
}

// Delete removes an account. The requesting user, the ledger session user and
// the last admin are protected.
// DELETE /api/v1/admin/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	state := h.store.Snapshot()

	user := state.FindUser(id)
	if user == nil {
		h.Error(c, apperror.NewNotFound("user", id))
		return
	}
	// The ledger session user is whoever logged in last; the token identity
	// is this request's caller. Both are protected from self-deletion.
	if h.GetUserID(c) == id {
		h.Error(c, apperror.NewBusinessRule(apperror.CodeCurrentUser, "cannot delete your own account"))
		return
	}
	if state.CurrentUser != nil && state.CurrentUser.ID == id {
		h.Error(c, apperror.NewBusinessRule(apperror.CodeCurrentUser, "cannot delete the signed-in user"))
		return
	}
	if user.Role == model.RoleAdmin && state.AdminCount() <= 1 {
		h.Error(c, apperror.NewBusinessRule(apperror.CodeLastAdmin, "cannot delete the last admin account"))
		return
	}

	if _, ok := dispatch(c, h.store, engine.DeleteUser{UserID: id}, "user was not deleted"); !ok {
		return
	}
	h.NoContent(c)
}
