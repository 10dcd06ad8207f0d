package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numericChars = "0123456789"
	specialChars = "!@#$%^&*()_+"
)

// generatePassword builds a throwaway password containing at least one
// character from each class. It is never revealed to anyone; new users set
// their own password through the reset link.
func generatePassword(length int) (string, error) {
	if length < 4 {
		length = 4
	}

	allChars := lowerChars + upperChars + numericChars + specialChars

	chars := make([]byte, 0, length)
	for _, set := range []string{lowerChars, upperChars, numericChars, specialChars} {
		ch, err := randomChar(set)
		if err != nil {
			return "", err
		}
		chars = append(chars, ch)
	}
	for len(chars) < length {
		ch, err := randomChar(allChars)
		if err != nil {
			return "", err
		}
		chars = append(chars, ch)
	}

	// Fisher-Yates so the class-guaranteed characters are not positional.
	for i := len(chars) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("shuffle password: %w", err)
		}
		j := n.Int64()
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars), nil
}

func randomChar(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("random char: %w", err)
	}
	return set[n.Int64()], nil
}
