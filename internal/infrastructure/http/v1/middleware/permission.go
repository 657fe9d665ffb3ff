package middleware

import (
	"github.com/gin-gonic/gin"

	"pharmos/internal/core/apperror"
	appctx "pharmos/internal/core/context"
	"pharmos/internal/domain/auth"
	"pharmos/internal/domain/model"
)

// RequireView checks that the authenticated user's role grants access to
// the application view a route group belongs to.
// Must run after the Auth middleware.
func RequireView(view auth.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := appctx.GetUser(c.Request.Context())
		if user == nil {
			_ = c.Error(apperror.NewUnauthorized("authentication required"))
			c.Abort()
			return
		}

		if !auth.CanAccess(model.Role(user.Role), view) {
			_ = c.Error(
				apperror.NewForbidden("access to this section is not allowed").
					WithDetail("view", string(view)).
					WithDetail("role", user.Role),
			)
			c.Abort()
			return
		}

		c.Next()
	}
}
