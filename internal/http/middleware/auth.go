package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Lumen-Signage/lumen/internal/model"
)

const (
	currentUserKey   = "currentUser"
	currentPlayerKey = "currentPlayer"
)

// ErrInvalidCredentials is returned when email/password don't match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// HashPassword uses bcrypt to hash a plaintext password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash with the plaintext.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// GetCurrentUser retrieves *model.User from the context after UserJWT ran.
func GetCurrentUser(c *gin.Context) (*model.User, bool) {
	u, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := u.(*model.User)
	return user, ok
}

// GetCurrentPlayer retrieves *model.Player after PlayerJWT ran.
func GetCurrentPlayer(c *gin.Context) (*model.Player, bool) {
	p, exists := c.Get(currentPlayerKey)
	if !exists {
		return nil, false
	}
	player, ok := p.(*model.Player)
	return player, ok
}
