package utils

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"powergym-backend/config"
	"powergym-backend/models"
)

// Identity used for every request when DISABLE_AUTH is set.
const (
	disabledAuthUserID = "00000000-0000-0000-0000-000000000000"
	disabledAuthEmail  = "admin@gym.com"
)

// Claims bind a user id, email and role into a signed session token.
type Claims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken issues a signed, time-limited credential for the user.
// Stateless: nothing is stored server-side.
func GenerateToken(cfg *config.Settings, user *models.User) (string, error) {
	if cfg.JWTSecret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.AccessTokenExpireMinutes) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseToken verifies signature and expiry. Wrong signature, malformed
// payload and expired tokens all come back as errors, never a panic.
func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// AuthMiddleware resolves the caller's identity from the bearer token and
// stores it on the request context. With DISABLE_AUTH set, every request
// resolves to a fixed admin identity instead.
func AuthMiddleware(cfg *config.Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.DisableAuth {
			c.Set("userId", disabledAuthUserID)
			c.Set("email", disabledAuthEmail)
			c.Set("role", models.RoleAdmin)
			c.Next()
			return
		}

		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		if len(tokenString) > 7 && strings.EqualFold(tokenString[0:6], "bearer") {
			tokenString = tokenString[7:]
		}

		claims, err := ParseToken(cfg.JWTSecret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		c.Set("userId", claims.Subject)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRole enforces the minimum capability level for a route group.
// Admin implies employee, so the check is a single ordered comparison.
func RequireRole(min models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		role, ok := value.(models.Role)
		if !ok || !role.AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": string(min) + " privileges required"})
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the resolved user id, email and role for
// handlers that echo the caller back.
func CurrentIdentity(c *gin.Context) (id, email string, role models.Role) {
	id = c.GetString("userId")
	email = c.GetString("email")
	if v, ok := c.Get("role"); ok {
		role, _ = v.(models.Role)
	}
	return
}
