package account

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// seedBytes is the amount of randomness in a generated token seed.
const seedBytes = 25

// Account is a stored user account.
type Account struct {
	ID           bson.ObjectID `bson:"_id" json:"id"`
	Username     string        `bson:"username" json:"username"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"passwordHash,omitempty" json:"-"`
	TokenSeed    string        `bson:"tokenSeed" json:"-"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
}

// NewTokenSeed returns hex-encoded random bytes followed by secretKey.
func NewTokenSeed(secretKey string) (string, error) {
	if secretKey == "" {
		return "", ErrEmptySecretKey
	}
	buf := make([]byte, seedBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token seed: %w", err)
	}
	return hex.EncodeToString(buf) + secretKey, nil
}
