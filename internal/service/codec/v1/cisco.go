package codec

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	serviceErrors "github.com/danilovkiri/dk_go_secret_decoder/internal/service/errors"
)

// ciscoKey is the fixed XOR key used by IOS "password 7" obfuscation.
const ciscoKey = "dsfd;kfoA,.iyewrkldJKDHSUBsgvca69834ncxv9873254k;fg87"

const ciscoFormatMsg = "invalid Cisco Type 7 format"

// DecodeCiscoType7 reverses a Cisco Type 7 secret such as "094F471A1A0A".
func DecodeCiscoType7(encoded string) (string, error) {
	if len(encoded) < 4 || len(encoded)%2 != 0 {
		return "", &serviceErrors.InvalidFormatError{Msg: ciscoFormatMsg}
	}
	// the salt is written as two decimal digits, not hex
	salt, err := strconv.ParseUint(encoded[:2], 10, 8)
	if err != nil {
		return "", &serviceErrors.InvalidFormatError{Msg: ciscoFormatMsg, Err: err}
	}
	payload, err := hex.DecodeString(encoded[2:])
	if err != nil {
		return "", &serviceErrors.InvalidFormatError{Msg: ciscoFormatMsg, Err: err}
	}
	// each decoded byte is a code point, so bytes above 0x7F come out as Latin-1 runes
	var b strings.Builder
	b.Grow(len(payload))
	for i, c := range payload {
		b.WriteRune(rune(c ^ ciscoKey[(i+int(salt))%len(ciscoKey)]))
	}
	return b.String(), nil
}

// EncodeCiscoType7 obfuscates plaintext with the given salt, the inverse of DecodeCiscoType7.
// Only runes up to U+00FF fit into one obfuscated byte.
func EncodeCiscoType7(plaintext string, salt int) (string, error) {
	if salt < 0 || salt > 99 {
		return "", fmt.Errorf("salt %d out of range [0, 99]", salt)
	}
	if plaintext == "" {
		return "", &serviceErrors.EmptyInputError{}
	}
	var b strings.Builder
	b.Grow(2 + 2*len(plaintext))
	fmt.Fprintf(&b, "%02d", salt)
	i := 0
	for _, r := range plaintext {
		if r > 0xFF {
			return "", fmt.Errorf("rune %q does not fit into a single byte", r)
		}
		fmt.Fprintf(&b, "%02X", byte(r)^ciscoKey[(i+salt)%len(ciscoKey)])
		i++
	}
	return b.String(), nil
}
