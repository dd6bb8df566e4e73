package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/akovalev/go-field-sync/models"
	"github.com/golang-jwt/jwt/v5"
)

// ParseDeviceClaims extracts the claims from a device token without verifying
// its signature.
//
// The agent is not the token's audience verifier — the central API checks the
// signature on every call. Parsing unverified is enough to log the device and
// organization identity at startup and to warn before the token expires.
//
// Parameters:
//
//	tokenString - the raw device token from configuration
//
// Returns:
//
//	*models.DeviceClaims - the parsed claims
//	error                - non-nil if the string is not a structurally valid JWT
//
// Example usage:
//
//	claims, err := utils.ParseDeviceClaims(cfg.DeviceToken)
func ParseDeviceClaims(tokenString string) (*models.DeviceClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &models.DeviceClaims{})
	if err != nil {
		return nil, fmt.Errorf("error occurred parsing device token: %w", err)
	}

	claims, ok := token.Claims.(*models.DeviceClaims)
	if !ok {
		return nil, errors.New("invalid device token claims")
	}

	return claims, nil
}

// TokenExpiresWithin reports whether the token's exp claim falls inside the
// next `within` duration. A token without an exp claim never expires and
// always yields false.
func TokenExpiresWithin(claims *models.DeviceClaims, within time.Duration) bool {
	if claims == nil || claims.ExpiresAt == nil {
		return false
	}
	return time.Until(claims.ExpiresAt.Time) < within
}
