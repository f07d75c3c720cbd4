package users

import "golang.org/x/crypto/bcrypt"

// ValidatePIN enforces the credential format: exactly 4 ASCII digits.
func ValidatePIN(pin string) error {
	if len(pin) != 4 {
		return ErrInvalidPIN
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrInvalidPIN
		}
	}
	return nil
}

func hashPIN(pin string) (string, error) {
	// bcrypt rather than plain hashing: the PIN space is tiny, so the
	// work factor is the only thing slowing offline guessing.
	h, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func checkPIN(hash, pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}
