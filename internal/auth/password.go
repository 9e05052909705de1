package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the adaptive work factor. 10 matches the original
// deployment and is the floor; raise it as hardware improves.
const bcryptCost = 10

// PasswordHasher hashes and verifies passwords with bcrypt. Plaintext
// passwords are never stored or logged anywhere in the codebase.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the given cost. Costs below the
// bcrypt minimum fall back to bcryptCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the salted bcrypt digest of plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// dummyDigest is a bcrypt hash of a random string, compared against when a
// login names an unknown user so that both failure paths cost a bcrypt
// verification. Keeps response timing from leaking which usernames exist.
var dummyDigest, _ = bcrypt.GenerateFromPassword([]byte("medstore-dummy-credential"), bcryptCost)

// VerifyDummy burns one bcrypt comparison and always returns false.
func (h *PasswordHasher) VerifyDummy(plaintext string) bool {
	_ = bcrypt.CompareHashAndPassword(dummyDigest, []byte(plaintext))
	return false
}
