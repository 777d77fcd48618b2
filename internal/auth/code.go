package auth

import (
	"math/rand"
	"strconv"
	"time"
)

// Validity windows for outstanding verification codes.
const (
	VerificationCodeTTL = 24 * time.Hour
	ResetCodeTTL        = 15 * time.Minute
)

// GenerateCode returns a 4-digit numeric code drawn uniformly from
// 1000-9999, so it never collapses to a 3-digit value. Codes are
// short-lived and single-purpose, not cryptographic secrets.
func GenerateCode() string {
	return strconv.Itoa(1000 + rand.Intn(9000))
}
