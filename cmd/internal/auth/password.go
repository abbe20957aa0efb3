package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// HashPassword runs the plaintext through a one-way salted hash.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext candidate matches the stored
// hash. It never reverses the hash.
func CheckPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
