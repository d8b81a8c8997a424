// Package modelcodec provides locally used types and their structure for secret decoding between modules.
package modelcodec

// Scheme names an encoding a secret can be decoded from.
type Scheme string

const (
	CiscoType7       Scheme = "cisco-type7"
	JuniperType9     Scheme = "juniper-type9"
	Base64           Scheme = "base64"
	GenericMD5Lookup Scheme = "generic-md5"
)

// Schemes lists all recognized schemes in a stable order.
var Schemes = []Scheme{CiscoType7, JuniperType9, Base64, GenericMD5Lookup}

// Valid reports whether s is one of the recognized schemes.
func (s Scheme) Valid() bool {
	switch s {
	case CiscoType7, JuniperType9, Base64, GenericMD5Lookup:
		return true
	}
	return false
}

type (
	// DecodeRequest carries an encoded secret and the scheme it is encoded with.
	DecodeRequest struct {
		EncodedText string
		Scheme      Scheme
	}

	// DecodeResult holds either a plaintext (Success) or a failure reason, never both.
	DecodeResult struct {
		Success       bool
		Plaintext     string
		FailureReason string
	}
)

// Succeeded builds a successful DecodeResult.
func Succeeded(plaintext string) DecodeResult {
	return DecodeResult{Success: true, Plaintext: plaintext}
}

// Failed builds a failed DecodeResult out of err.
func Failed(err error) DecodeResult {
	return DecodeResult{Success: false, FailureReason: err.Error()}
}

type (
	// BatchItem is one entry of a batch decode request.
	BatchItem struct {
		CorrelationID string
		Request       DecodeRequest
	}

	// BatchResult is one entry of a batch decode response.
	BatchResult struct {
		CorrelationID string
		RecordID      string
		Result        DecodeResult
	}
)
