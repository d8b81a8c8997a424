// Package codec provides functionality for decoding legacy network-device secrets.
package codec

import (
	"fmt"
	"strings"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/codec"
	serviceErrors "github.com/danilovkiri/dk_go_secret_decoder/internal/service/errors"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/modelcodec"
)

// Check interface implementation explicitly
var (
	_ codec.Decoder = (*SecretCodec)(nil)
)

// decoders maps every supported scheme to its decoder.
var decoders = map[modelcodec.Scheme]func(string) (string, error){
	modelcodec.CiscoType7:       DecodeCiscoType7,
	modelcodec.JuniperType9:     DecodeJuniperType9,
	modelcodec.Base64:           DecodeBase64,
	modelcodec.GenericMD5Lookup: LookupMD5,
}

// SecretCodec dispatches decode requests to the scheme decoders. It holds no state and is safe
// for concurrent use.
type SecretCodec struct{}

// NewSecretCodec initializes a SecretCodec object.
func NewSecretCodec() *SecretCodec {
	return &SecretCodec{}
}

// Decode decodes req.EncodedText according to req.Scheme. It never panics; every failure is
// reported through the returned result.
func (c *SecretCodec) Decode(req modelcodec.DecodeRequest) (result modelcodec.DecodeResult) {
	defer func() {
		if r := recover(); r != nil {
			result = modelcodec.Failed(&serviceErrors.InternalError{Err: fmt.Errorf("%v", r)})
		}
	}()
	plaintext, err := decode(req)
	if err != nil {
		return modelcodec.Failed(err)
	}
	return modelcodec.Succeeded(plaintext)
}

func decode(req modelcodec.DecodeRequest) (string, error) {
	text := strings.TrimSpace(req.EncodedText)
	if !req.Scheme.Valid() {
		return "", &serviceErrors.UnsupportedSchemeError{Scheme: string(req.Scheme)}
	}
	if text == "" {
		return "", &serviceErrors.EmptyInputError{}
	}
	decodeFunc, ok := decoders[req.Scheme]
	if !ok {
		return "", &serviceErrors.UnsupportedSchemeError{Scheme: string(req.Scheme)}
	}
	return decodeFunc(text)
}
