package auth

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"

	"restodash/internal/models"
)

const backupCodeCount = 8

// EnrollTwoFactor generates a fresh shared secret and backup codes for the
// security tab. Secrets are random; nothing here talks to an authenticator.
func EnrollTwoFactor() (models.TwoFactorSettings, error) {
	secret := make([]byte, 20)
	if _, err := rand.Read(secret); err != nil {
		return models.TwoFactorSettings{}, fmt.Errorf("failed to generate 2fa secret: %w", err)
	}

	codes := make([]string, backupCodeCount)
	for i := range codes {
		raw := make([]byte, 5)
		if _, err := rand.Read(raw); err != nil {
			return models.TwoFactorSettings{}, fmt.Errorf("failed to generate backup code: %w", err)
		}
		codes[i] = base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(raw)
	}

	return models.TwoFactorSettings{
		Enabled:     true,
		Secret:      base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret),
		BackupCodes: codes,
	}, nil
}
