package middleware

import (
	"strings"

	"github.com/maharit108/Coffee-Talk-API/config"
	"github.com/maharit108/Coffee-Talk-API/helper"
	"github.com/maharit108/Coffee-Talk-API/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = helper.NewHTTPHelper()

// IdentityKey is where the resolved identity lives in the gin context.
const IdentityKey = "identity"

type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthMiddleware resolves the Authorization bearer token to an Identity and
// stores it in the context. Requests without a valid token are rejected with
// 401 before any store access.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})

		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid token: "+err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		if !token.Valid {
			HTTPHelper.SendUnauthorizedError(c, "Token is not valid", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set(IdentityKey, models.Identity{ID: claims.UserID, Email: claims.Email})

		c.Next()
	}
}

// CurrentIdentity returns the identity resolved by AuthMiddleware, if any.
func CurrentIdentity(c *gin.Context) (models.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return models.Identity{}, false
	}

	identity, ok := v.(models.Identity)

	return identity, ok
}
