package utils

import "golang.org/x/crypto/bcrypt"

// MaxPasswordBytes is the longest input bcrypt hashes. Longer passwords are
// rejected by GenerateFromPassword.
const MaxPasswordBytes = 72

var passwordCost = bcrypt.DefaultCost

// ConfigurePasswordCost sets the bcrypt work factor used by HashPassword.
// Values outside bcrypt's accepted range are ignored.
func ConfigurePasswordCost(cost int) {
	if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		passwordCost = cost
	}
}

func PasswordCost() int {
	return passwordCost
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
