package utils

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrPasswordComplexity is returned when the password falls short of
	// the 4-letters-and-4-digits threshold.
	ErrPasswordComplexity = errors.New("password needs at least 4 letters and 4 digits")
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidateRegistrationPassword enforces the registration rules: the
// confirmation must match and the password must contain at least 4
// letters and at least 4 digits.
func ValidateRegistrationPassword(password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	var letters, digits int
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		}
	}
	if letters < 4 || digits < 4 {
		return ErrPasswordComplexity
	}
	return nil
}
