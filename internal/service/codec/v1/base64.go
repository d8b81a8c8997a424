package codec

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	serviceErrors "github.com/danilovkiri/dk_go_secret_decoder/internal/service/errors"
)

// DecodeBase64 decodes standard padded Base64 into UTF-8 text.
func DecodeBase64(encoded string) (string, error) {
	// the decoder silently skips line breaks, which are not part of the alphabet
	if strings.ContainsAny(encoded, "\r\n") {
		return "", &serviceErrors.InvalidFormatError{Msg: "invalid Base64 format"}
	}
	raw, err := base64.StdEncoding.Strict().DecodeString(encoded)
	if err != nil {
		return "", &serviceErrors.InvalidFormatError{Msg: "invalid Base64 format", Err: err}
	}
	if !utf8.Valid(raw) {
		return "", &serviceErrors.InvalidFormatError{Msg: "decoded Base64 is not valid UTF-8 text"}
	}
	return string(raw), nil
}
