package validators

import (
	"context"
	"time"

	"github.com/akovalev/go-field-sync/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldMachineID targets the cleaned machine's identifier.
	FieldMachineID = "machine_id"

	// FieldOrganizationID targets the owning organization's identifier.
	FieldOrganizationID = "organization_id"

	// FieldCleanedAt targets the timestamp the cleaning was performed at.
	FieldCleanedAt = "cleaned_at"

	// FieldDurationHours targets the time spent on the cleaning.
	FieldDurationHours = "duration_hours"

	// FieldFuelUsed targets the fuel consumption of the cleaning.
	FieldFuelUsed = "fuel_used_litres"

	// FieldFileName targets the attachment's original file name.
	FieldFileName = "file_name"

	// FieldContentType targets the attachment's MIME type.
	FieldContentType = "content_type"

	// FieldData targets the attachment's binary body.
	FieldData = "data"
)

// maxAttachmentBytes caps a single photo attachment. Field terminals buffer
// attachments whole in the local database, so oversized uploads are refused
// at the door instead of bloating the buffer.
const maxAttachmentBytes = 32 << 20

// cleanedAtSkewAllowance tolerates device clocks running slightly ahead of
// real time before a cleaning timestamp counts as "in the future".
const cleanedAtSkewAllowance = 5 * time.Minute

// allowedContentTypes is the exhaustive set of attachment MIME types the
// central API accepts. Anything else is refused locally.
var allowedContentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/heic",
}

// PayloadValidator implements the Validator interface for the two payload
// types the agent buffers: RecordPayload and AttachmentPayload.
//
// It supports both value and pointer receivers for every payload type
// and allows optional field-level scoping via variadic field name arguments.
type PayloadValidator struct {
}

// NewPayloadValidator constructs a new PayloadValidator
// and returns it as the Validator interface.
func NewPayloadValidator() Validator {
	return &PayloadValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported payload are accepted.
//
// Supported types:
//   - models.RecordPayload / *models.RecordPayload
//   - models.AttachmentPayload / *models.AttachmentPayload
//
// Returns ErrUnsupportedType if obj does not match any known payload.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the payload is validated.
func (v *PayloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RecordPayload:
		return v.validateRecordPayload(ctx, value, fields...)
	case *models.RecordPayload:
		return v.validateRecordPayload(ctx, *value, fields...)

	case models.AttachmentPayload:
		return v.validateAttachmentPayload(ctx, value, fields...)
	case *models.AttachmentPayload:
		return v.validateAttachmentPayload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isAllowedContentType(ct string) bool {
	for _, allowed := range allowedContentTypes {
		if ct == allowed {
			return true
		}
	}
	return false
}

// validateRecordPayload validates a net-cleaning record body.
//
// Default validated fields: MachineID, OrganizationID, CleanedAt,
// DurationHours, FuelUsed.
//
// Returns the first encountered validation error or nil.
func (v *PayloadValidator) validateRecordPayload(_ context.Context, payload models.RecordPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMachineID, FieldOrganizationID, FieldCleanedAt, FieldDurationHours, FieldFuelUsed}
	}

	for _, f := range fields {
		switch f {
		case FieldMachineID:
			if payload.MachineID <= 0 {
				return ErrInvalidMachineID
			}
		case FieldOrganizationID:
			if payload.OrganizationID <= 0 {
				return ErrInvalidOrganizationID
			}
		case FieldCleanedAt:
			if payload.CleanedAt.IsZero() {
				return ErrMissingCleanedAt
			}
			if payload.CleanedAt.After(time.Now().Add(cleanedAtSkewAllowance)) {
				return ErrCleanedAtInFuture
			}
		case FieldDurationHours:
			if !payload.DurationHours.IsPositive() {
				return ErrInvalidDuration
			}
		case FieldFuelUsed:
			if payload.FuelUsedLitres.IsNegative() {
				return ErrNegativeFuelUsed
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAttachmentPayload validates a photo attachment body.
//
// Default validated fields: FileName, ContentType, Data.
//
// Returns the first encountered validation error or nil.
func (v *PayloadValidator) validateAttachmentPayload(_ context.Context, payload models.AttachmentPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName, FieldContentType, FieldData}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			if payload.FileName == "" {
				return ErrMissingFileName
			}
		case FieldContentType:
			if !isAllowedContentType(payload.ContentType) {
				return ErrUnsupportedContentType
			}
		case FieldData:
			if len(payload.Data) == 0 {
				return ErrEmptyAttachmentData
			}
			if len(payload.Data) > maxAttachmentBytes {
				return ErrAttachmentTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
