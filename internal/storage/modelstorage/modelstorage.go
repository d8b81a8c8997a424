// Package modelstorage provides locally used types and their structure for storage objects.
package modelstorage

import "time"

// DecodeRecord is a history entry of one decode attempt. The plaintext is never stored.
type DecodeRecord struct {
	RecordID      string    `json:"recordID"`
	UserID        string    `json:"userID"`
	Scheme        string    `json:"scheme"`
	Fingerprint   string    `json:"fingerprint"`
	Success       bool      `json:"success"`
	FailureReason string    `json:"failureReason,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Stats aggregates history usage.
type Stats struct {
	Records   int
	Users     int
	Succeeded int
}
