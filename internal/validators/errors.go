package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidMachineID      = errors.New("invalid machine id")
	ErrInvalidOrganizationID = errors.New("invalid organization id")
	ErrMissingCleanedAt      = errors.New("cleaning timestamp is required")
	ErrCleanedAtInFuture     = errors.New("cleaning timestamp is in the future")
	ErrInvalidDuration       = errors.New("duration must be positive")
	ErrNegativeFuelUsed      = errors.New("fuel used cannot be negative")

	ErrMissingFileName        = errors.New("file name is required")
	ErrUnsupportedContentType = errors.New("unsupported attachment content type")
	ErrEmptyAttachmentData    = errors.New("attachment data is empty")
	ErrAttachmentTooLarge     = errors.New("attachment exceeds the size limit")
)
