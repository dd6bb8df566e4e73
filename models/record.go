package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingRecord is a net-cleaning record buffered on the device until the
// central API confirms it. It is the primary persistence model of the agent.
type PendingRecord struct {
	// TempID is the locally generated identifier of the record. It is
	// assigned once at submission time and never reused.
	TempID string `json:"temp_id"`

	// ServerID is the identifier assigned by the central API after a
	// successful replay. Zero until then; immutable once set.
	ServerID int64 `json:"server_id,omitempty"`

	// OrgID is the owning organization, duplicated out of the payload
	// so the store can index on it without opening the sealed blob.
	OrgID int64 `json:"org_id"`

	// Payload carries the domain fields exactly as they are sent to the
	// central API. Stored sealed at rest.
	Payload RecordPayload `json:"payload"`

	// Synced reports whether the central API has confirmed the record.
	Synced bool `json:"synced"`

	// CreatedAt is the local submission timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// RecordPayload is the body of a net-cleaning record as accepted by the
// central API. Quantities use decimal values so litres and hours survive
// round-trips without binary-float drift.
type RecordPayload struct {
	MachineID      int64           `json:"machine_id"`
	OrganizationID int64           `json:"organization_id"`
	CleanedAt      time.Time       `json:"cleaned_at"`
	DurationHours  decimal.Decimal `json:"duration_hours"`
	FuelUsedLitres decimal.Decimal `json:"fuel_used_litres"`
	Operator       string          `json:"operator,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}
