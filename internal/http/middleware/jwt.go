package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"github.com/Lumen-Signage/lumen/internal/db"
)

const (
	roleUser   = "cms"
	rolePlayer = "player"
)

// GenerateUserToken signs a short-lived CMS token with the user id in "sub".
func GenerateUserToken(userID int, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": roleUser,
		"exp":  time.Now().Add(72 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// GenerateDeviceToken signs a long-lived device token. Devices hold it
// until unpaired; PlayerJWT re-checks the player row on every request, so
// unpairing revokes access without token expiry.
func GenerateDeviceToken(playerID int, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  playerID,
		"role": rolePlayer,
	})
	return token.SignedString([]byte(secret))
}

func parseToken(tokenString, secret, wantRole string) (int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	if role, _ := claims["role"].(string); role != wantRole {
		return 0, errors.New("wrong token role")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, errors.New("invalid sub claim")
	}
	return int(sub), nil
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// UserJWT verifies a CMS token, loads the user, and sets "currentUser".
func UserJWT(secret string, store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing auth header"})
			return
		}
		userID, err := parseToken(raw, secret, roleUser)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		user, err := store.GetUserByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// PlayerJWT verifies a device token, loads the player, and sets
// "currentPlayer". An unpaired or deleted player fails auth outright.
func PlayerJWT(secret string, store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing auth header"})
			return
		}
		playerID, err := parseToken(raw, secret, rolePlayer)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		player, err := store.GetPlayerForAuth(playerID)
		if err != nil || !player.Paired {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
			return
		}
		c.Set(currentPlayerKey, &player)
		c.Next()
	}
}
