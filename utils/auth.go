// utils/auth.go
package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"dentalpro-backend/models"
	"dentalpro-backend/reqctx"
)

// Generate JWT secret key (run once initially)
func GenerateJWTSecret() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("failed to generate JWT secret")
	}
	return base64.StdEncoding.EncodeToString(key)
}

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken signs a JWT carrying the staff member's identity and role.
// The role is resolved from this token on every request; it is never cached
// server-side.
func GenerateToken(userID, name string, role models.UserRole) (string, error) {
	expiryHours := 24 // default
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"name": name,
		"role": string(role),
		"exp":  time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	return token.SignedString([]byte(secret))
}

// resolveActor parses the bearer token from the Authorization header into
// the actor it carries.
func resolveActor(header string) (reqctx.Actor, error) {
	tokenString := header
	if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
		tokenString = tokenString[7:]
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return reqctx.Actor{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return reqctx.Actor{}, errors.New("invalid token claims")
	}

	actor := reqctx.Actor{}
	if sub, ok := claims["sub"].(string); ok {
		actor.UserID = sub
	}
	if name, ok := claims["name"].(string); ok {
		actor.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		actor.Role = models.UserRole(role)
	}
	return actor, nil
}

func storeActor(c *gin.Context, actor reqctx.Actor) {
	c.Set("userId", actor.UserID)
	c.Set("role", string(actor.Role))
	c.Request = c.Request.WithContext(reqctx.WithActor(c.Request.Context(), actor))
}

// AuthMiddleware validates the bearer token and stores the resolved actor
// in the request context for the service layer.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization header required"})
			return
		}

		actor, err := resolveActor(header)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
			return
		}

		storeActor(c, actor)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the actor when a bearer token is present
// and lets the request through anonymously otherwise. Registration needs
// this: the very first account is created before any login exists, while
// later registrations carry the manager's token.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		actor, err := resolveActor(header)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
			return
		}

		storeActor(c, actor)
		c.Next()
	}
}
