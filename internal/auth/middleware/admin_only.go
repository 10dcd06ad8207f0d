package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polarstudio/showroom-booking-backend/internal/auth"
	"github.com/polarstudio/showroom-booking-backend/internal/booking/domain"
)

// ProfileGetter loads the caller's profile for the role check.
type ProfileGetter interface {
	Get(ctx context.Context, uid string) (*domain.UserProfile, error)
}

// AdminOnly allows the request through only when the authenticated caller's
// profile carries the admin role. A missing profile or a non-admin role is a
// 403; a store read failure is a 500, never silently treated as non-admin.
func AdminOnly(profiles ProfileGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := auth.UserFirebaseUID(c)
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		profile, err := profiles.Get(c.Request.Context(), uid)
		if err != nil {
			if err == domain.ErrProfileNotFound {
				c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: Not an administrator."})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error during admin check."})
			}
			c.Abort()
			return
		}

		if profile.Role != domain.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: Not an administrator."})
			c.Abort()
			return
		}

		c.Next()
	}
}
