package service

import "errors"

var (
	// ErrParentNotFound is returned when an attachment references a record
	// the agent knows nothing about: the reference is neither a buffered
	// temporary id nor a positive server id.
	ErrParentNotFound = errors.New("parent record not found")

	// ErrUnknownEntryKind is returned when a queue entry carries a kind
	// this build cannot replay. It should only ever surface after a
	// downgrade to an older agent.
	ErrUnknownEntryKind = errors.New("unknown sync queue entry kind")
)
