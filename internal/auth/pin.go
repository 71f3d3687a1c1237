package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/fleetops/driverlog/internal/domain"
)

// HashPIN digests a PIN for storage in the cached user blob. The PIN only
// gates the local cache; the backend still requires a valid bearer token.
func HashPIN(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// VerifyPIN checks a PIN attempt against the cached user. Returns
// ErrNoCachedUser when no PIN has been set, ErrPINMismatch on a wrong PIN.
func VerifyPIN(u *domain.CachedUser, pin string) error {
	if u == nil || u.PINHash == "" {
		return ErrNoCachedUser
	}
	attempt := HashPIN(pin)
	if subtle.ConstantTimeCompare([]byte(attempt), []byte(u.PINHash)) != 1 {
		return ErrPINMismatch
	}
	return nil
}
