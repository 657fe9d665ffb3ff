package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmos/internal/core/apperror"
	appctx "pharmos/internal/core/context"
	"pharmos/internal/domain/auth"
	"pharmos/internal/domain/engine"
	"pharmos/internal/domain/model"
	"pharmos/internal/domain/store"
	"pharmos/internal/infrastructure/http/v1/dto"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	*BaseHandler
	store *store.Store
	jwt   *auth.JWTService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, st *store.Store, jwt *auth.JWTService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, store: st, jwt: jwt}
}

// Login handles user login.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	_, applied, err := h.store.Dispatch(c.Request.Context(), engine.Login{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	if !applied {
		h.Error(c, apperror.NewUnauthorized("invalid username or password"))
		return
	}

	user := h.store.Snapshot().FindUserByName(req.Username)
	if user == nil {
		h.Error(c, apperror.NewUnauthorized("invalid username or password"))
		return
	}

	token, expiresAt, err := h.jwt.GenerateAccessToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return
	}

	h.OK(c, dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      user.Sanitized(),
		Views:     auth.AllowedViews(user.Role),
	})
}

// Logout clears the session user. Tokens stay valid until expiry; logout is
// a ledger event, not a revocation.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	_, _, err := h.store.Dispatch(c.Request.Context(), engine.Logout{})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "logged out")
}

// Me returns the authenticated user's account and allowed views.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userCtx := appctx.GetUser(c.Request.Context())
	if userCtx == nil {
		h.Error(c, apperror.NewUnauthorized("authentication required"))
		return
	}

	user := h.store.Snapshot().FindUser(userCtx.UserID)
	if user == nil {
		h.Error(c, apperror.NewNotFound("user", userCtx.UserID))
		return
	}

	h.OK(c, gin.H{
		"user":  user.Sanitized(),
		"views": auth.AllowedViews(model.Role(userCtx.Role)),
	})
}
