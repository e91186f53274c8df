package middleware

import (
	"errors"
	"log"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/logistics-go/internal/config"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/repository"
	"github.com/linskybing/logistics-go/pkg/types"
	"github.com/linskybing/logistics-go/pkg/utils"
	"gorm.io/gorm"
)

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// Identity loads the user named by the token and stores it in the context.
// Role and status come from the database, so changes apply to live tokens.
func (a *Auth) Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		u, err := a.repos.User.GetUserByID(c.Request.Context(), claims.UserID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user no longer exists"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if u.Status != user.StatusActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account is not active"})
			return
		}

		c.Set(utils.IdentityKey, u.Identity())
		c.Next()
	}
}

// RequireRoles allows the request through when the actor holds one of roles.
func (a *Auth) RequireRoles(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := utils.GetIdentity(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !slices.Contains(roles, identity.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

func (a *Auth) Admin() gin.HandlerFunc {
	return a.RequireRoles(user.RoleAdmin)
}

// Reviewer allows roles that may review submissions.
func (a *Auth) Reviewer() gin.HandlerFunc {
	return a.RequireRoles(user.ReviewerRoles...)
}

// Fulfiller allows roles that submit against requirements.
func (a *Auth) Fulfiller() gin.HandlerFunc {
	return a.RequireRoles(user.RoleAdmin, user.RoleDriver, user.RoleWarehouse)
}

// LoggingMiddleware logs one line per request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("[http] %s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// CORSMiddleware allows the configured origins; localhost is always allowed
// outside production.
func CORSMiddleware() gin.HandlerFunc {
	allowed := config.CORSAllowedOrigins
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if slices.Contains(allowed, origin) {
				return true
			}
			if !config.IsProduction {
				return strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "http://127.0.0.1:")
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
