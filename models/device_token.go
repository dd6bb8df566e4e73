package models

import "github.com/golang-jwt/jwt/v5"

// DeviceClaims are the claims inside the device token the central API issues
// when a field device is enrolled. The agent never verifies the signature
// (that is the server's job on every call); it only reads the claims to know
// who it is and when the token runs out.
type DeviceClaims struct {
	// DeviceID identifies the enrolled field device.
	DeviceID string `json:"device_id"`

	// OrgID is the organization the device is enrolled under.
	OrgID int64 `json:"org_id"`

	jwt.RegisteredClaims
}
