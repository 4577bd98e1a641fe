package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reputaai/reputaai/internal/domain/user"
	"github.com/reputaai/reputaai/internal/shared/logger"
	"github.com/reputaai/reputaai/internal/shared/utils"
)

// AdminOnly restricts a route group to the configured admin accounts. It
// must run after RequireAuth.
type AdminOnly struct {
	userRepo    user.Repository
	adminEmails map[string]struct{}
	logger      logger.Interface
}

func NewAdminOnly(userRepo user.Repository, adminEmails []string, logger logger.Interface) *AdminOnly {
	set := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		set[email] = struct{}{}
	}
	return &AdminOnly{
		userRepo:    userRepo,
		adminEmails: set,
		logger:      logger,
	}
}

func (m *AdminOnly) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		u, err := m.userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}

		if _, allowed := m.adminEmails[u.Email]; !allowed {
			m.logger.Warnw("admin access denied", "user_id", userID)
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
