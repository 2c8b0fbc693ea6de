package credentials

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt hashes; GenerateFromPassword refuses anything longer.
const maxPasswordBytes = 72

// User is a set of credentials. The plaintext password handed to SetPassword is kept in memory
// only and has no column in the persisted record.
type User struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	PasswordVerifier string    `json:"-"`
	SessionToken     string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	password    string
	passwordSet bool
	passwordErr error
	hashCost    int
}

// SetPassword derives the verifier from plaintext. It never fails: an empty value or one bcrypt
// refuses leaves the verifier empty and is reported when the user is validated.
func (u *User) SetPassword(plaintext string) {
	u.password = plaintext
	u.passwordSet = true
	u.passwordErr = nil
	u.PasswordVerifier = ""

	if plaintext == "" {
		return
	}

	cost := u.hashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		u.passwordErr = err
		return
	}

	u.PasswordVerifier = string(hash)
}

// Password returns the plaintext last given to SetPassword on this instance.
func (u *User) Password() string {
	return u.password
}

// VerifyPassword reports whether candidate matches the stored verifier. Candidates longer than
// bcrypt accepts never match, even when their first maxPasswordBytes agree with the password.
func (u *User) VerifyPassword(candidate string) bool {
	if u.PasswordVerifier == "" {
		return false
	}

	// the hash still runs for over-long candidates so they cost the same as any other miss
	matched := bcrypt.CompareHashAndPassword([]byte(u.PasswordVerifier), []byte(candidate)) == nil
	return matched && len(candidate) <= maxPasswordBytes
}
