// Package otp generates delivery one-time passwords.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	min = 100000
	max = 999999
)

// Generator produces six digit OTPs from crypto/rand.
type Generator struct{}

// NewGenerator creates a new Generator instance.
func NewGenerator() Generator {
	return Generator{}
}

// Generate returns a uniformly random six digit OTP.
func (Generator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()+min), nil
}
