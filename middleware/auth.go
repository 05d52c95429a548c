package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"tasktrackr/models"
	"tasktrackr/repository"
	"tasktrackr/utils"
)

const identityKey = "user"

// RequireCredentials gates an operation behind a verified identity. Basic
// credentials are checked against the stored bcrypt hash; a Bearer token
// from /login works too. The resolved user is attached to the request
// context and never outlives it.
func RequireCredentials(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if name, password, ok := c.Request.BasicAuth(); ok {
			user, err := users.FindByName(c.Request.Context(), name)
			if err != nil || !utils.CheckPassword(password, user.Password) {
				unauthorized(c)
				return
			}
			c.Set(identityKey, user)
			c.Next()
			return
		}

		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c)
			return
		}

		token, err := jwt.Parse(
			parts[1],
			func(token *jwt.Token) (interface{}, error) {
				return utils.JwtSecret(), nil
			},
		)
		if err != nil || !token.Valid {
			unauthorized(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c)
			return
		}
		id, ok := claims["user_id"].(float64)
		if !ok {
			unauthorized(c)
			return
		}

		user, err := users.FindByID(c.Request.Context(), uint(id))
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(identityKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity attached by RequireCredentials.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(identityKey).(*models.User)
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":            "error",
		"error description": "user name or password invalid",
	})
}
