package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/urban_incident_system/internal/service"
)

const (
	ctxUserID = "user_id"

	RoleMunicipalityStaff = "MUNICIPALITY_STAFF"
)

// JWTAuthMiddleware - middleware для аутентификации по bearer-токену (HS256).
// Идентификатор пользователя берется из claim sub.
func JWTAuthMiddleware(secret string, log *logrus.Logger) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			log.Warn("Bearer token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			log.WithError(err).Warn("Invalid bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}
		if claims.Subject == "" {
			log.Warn("Bearer token has no subject")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		c.Set(ctxUserID, claims.Subject)
		c.Next()
	}
}

// RequireRole пропускает только пользователей с указанной ролью
func RequireRole(users service.UserService, role string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ctxUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		ok, err := users.HasRole(c.Request.Context(), userID, role)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Error("Role check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			return
		}
		if !ok {
			log.WithFields(logrus.Fields{"user_id": userID, "role": role}).Warn("Access denied")
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Access denied. Required role: " + role})
			return
		}

		c.Next()
	}
}
