// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"strings"

	"bazaar/config"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "AUTH_HEADER_MISSING", "缺少授權標頭")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "AUTH_FORMAT_INVALID", "授權格式錯誤，必須為 Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "TOKEN_INVALID", "無效或過期的存取權杖")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "TOKEN_CLAIMS_INVALID", "無法解析權杖內容")
		}

		subject, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "TOKEN_SUBJECT_MISSING", "權杖缺少使用者識別")
		}
		userID, err := uuid.Parse(subject)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_SUBJECT_INVALID", "權杖中的使用者識別格式錯誤")
		}

		actor := usecase.Actor{ID: userID}
		if role, ok := claims["role"].(string); ok {
			actor.Role = entity.Role(role)
		}
		if isStaff, ok := claims["is_staff"].(bool); ok {
			actor.IsStaff = isStaff
		}

		c.Set(actorContextKey, actor)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the actor's profile role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.Forbidden(c, "ROLE_MISSING", "存取被拒絕：缺少角色資訊")
			}

			if actor.Role != requiredRole {
				return response.Forbidden(c, "ROLE_FORBIDDEN", "存取被拒絕：需要 "+requiredRole.String()+" 角色")
			}

			return next(c)
		}
	}
}

// RequireStaff limits a route to staff actors. It must be used AFTER the
// Authenticate middleware.
func (m *AuthMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := GetActor(c)
		if !ok || !actor.IsStaff {
			return response.Forbidden(c, "STAFF_ONLY", "存取被拒絕：僅限管理員")
		}

		return next(c)
	}
}

// GetActor extracts the authenticated actor placed on the context by Authenticate.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(usecase.Actor)

	return actor, ok
}
