// Package config provides API token configuration and hashing functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// TokenConfig holds configuration for hashing and verifying the static API
// tokens issued to recruiter integrations. Only the bcrypt hash is stored;
// the plaintext token lives with the integration.
type TokenConfig struct {
	BcryptCost int
	Pepper     string // optional global secret for additional security
}

// NewTokenConfig creates a new token configuration from environment variables.
// It reads BCRYPT_COST (default: 12) and optionally TOKEN_PEPPER.
func NewTokenConfig() (*TokenConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12" // default
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	config := &TokenConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("TOKEN_PEPPER"), // empty if not set
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *TokenConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashToken hashes an API token using bcrypt (with optional pepper).
func (c *TokenConfig) HashToken(token string) (string, error) {
	input := token
	if c.Pepper != "" {
		input = token + c.Pepper
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash token: %w", err)
	}

	return string(hash), nil
}

// VerifyToken verifies an API token against a stored hash (with optional pepper).
func (c *TokenConfig) VerifyToken(token, storedHash string) bool {
	input := token
	if c.Pepper != "" {
		input = token + c.Pepper
	}

	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(input))
	return err == nil
}
