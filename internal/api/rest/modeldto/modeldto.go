// Package modeldto provides locally used types and their structure for data transfer objects.
package modeldto

import "time"

type (
	RequestDecode struct {
		EncryptedPassword string `json:"encryptedPassword"`
		VendorType        string `json:"vendorType"`
	}

	ResponseDecode struct {
		Success           bool   `json:"success"`
		DecryptedPassword string `json:"decryptedPassword,omitempty"`
		VendorType        string `json:"vendorType"`
		Message           string `json:"message,omitempty"`
		RecordID          string `json:"recordId,omitempty"`
		RecordURL         string `json:"recordUrl,omitempty"`
	}

	RequestBatchDecode struct {
		CorrelationID     string `json:"correlationId"`
		EncryptedPassword string `json:"encryptedPassword"`
		VendorType        string `json:"vendorType"`
	}

	ResponseBatchDecode struct {
		CorrelationID string `json:"correlationId"`
		ResponseDecode
	}

	ResponseSchemes struct {
		Schemes []string `json:"schemes"`
	}

	ResponseRecord struct {
		RecordID    string    `json:"recordId"`
		VendorType  string    `json:"vendorType"`
		Fingerprint string    `json:"fingerprint"`
		Success     bool      `json:"success"`
		Message     string    `json:"message,omitempty"`
		CreatedAt   time.Time `json:"createdAt"`
	}

	ResponseDeleted struct {
		Deleted int64 `json:"deleted"`
	}

	ResponseStats struct {
		Records   int `json:"records"`
		Users     int `json:"users"`
		Succeeded int `json:"succeeded"`
	}
)
