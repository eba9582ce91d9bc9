package utils

import "github.com/google/uuid"

// NewOperationID returns an identifier for one vault operation. UUIDv7 is
// used so IDs sort by creation time in logs; if the clock source fails a
// random v4 is returned.
func NewOperationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
