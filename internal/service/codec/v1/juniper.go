package codec

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	serviceErrors "github.com/danilovkiri/dk_go_secret_decoder/internal/service/errors"
)

const (
	juniperMagic     = "$9$"
	juniperFormatMsg = "not a valid Juniper Type 9 password"
)

// juniperFamilies are concatenated into the alphabet; a character's family is 3 minus the index
// of the substring it came from and tells how many salt characters follow it.
var juniperFamilies = [4]string{
	"QzF3n6/9CAtpu0O",
	"B1IREhcSyrleKvMW8LXx",
	"7N-dVbwsY2g4oaJZGUDj",
	"iHkq.mPf5T",
}

// juniperEncoding holds the per-byte gap weights, selected round-robin by output length.
var juniperEncoding = [7][]int{
	{1, 4, 32},
	{1, 16, 32},
	{1, 8, 32},
	{1, 64},
	{1, 32},
	{1, 4, 16, 128},
	{1, 32, 64},
}

var (
	juniperAlphabet string
	juniperPosition map[byte]int
	juniperExtra    map[byte]int
)

func init() {
	juniperAlphabet = strings.Join(juniperFamilies[:], "")
	juniperPosition = make(map[byte]int, len(juniperAlphabet))
	juniperExtra = make(map[byte]int, len(juniperAlphabet))
	for i := 0; i < len(juniperAlphabet); i++ {
		juniperPosition[juniperAlphabet[i]] = i
	}
	for family, chars := range juniperFamilies {
		for i := 0; i < len(chars); i++ {
			juniperExtra[chars[i]] = 3 - family
		}
	}
}

// juniperGap returns the circular distance between two alphabet positions minus one.
// Two equal characters yield -1.
func juniperGap(prev, cur int) int {
	n := len(juniperAlphabet)
	return ((cur-prev)%n+n)%n - 1
}

func juniperFormatError(format string, args ...interface{}) error {
	return &serviceErrors.InvalidFormatError{Msg: juniperFormatMsg, Err: fmt.Errorf(format, args...)}
}

// DecodeJuniperType9 reverses a JunOS "$9$" secret.
func DecodeJuniperType9(encoded string) (string, error) {
	if !strings.HasPrefix(encoded, juniperMagic) {
		return "", &serviceErrors.InvalidFormatError{Msg: juniperFormatMsg}
	}
	chars := encoded[len(juniperMagic):]
	if chars == "" {
		return "", juniperFormatError("missing salt")
	}
	salt := chars[0]
	extra, ok := juniperExtra[salt]
	if !ok {
		return "", juniperFormatError("character %q is outside the alphabet", salt)
	}
	if len(chars) < 1+extra {
		return "", juniperFormatError("salt is truncated")
	}
	chars = chars[1+extra:]
	prev := juniperPosition[salt]
	out := make([]rune, 0, len(chars)/2)
	for len(chars) > 0 {
		weights := juniperEncoding[len(out)%len(juniperEncoding)]
		if len(chars) < len(weights) {
			return "", juniperFormatError("ran out of characters decoding position %d", len(out))
		}
		value := 0
		for i, w := range weights {
			cur, ok := juniperPosition[chars[i]]
			if !ok {
				return "", juniperFormatError("character %q is outside the alphabet", chars[i])
			}
			value += juniperGap(prev, cur) * w
			prev = cur
		}
		if value < 0 || value > utf8.MaxRune {
			return "", juniperFormatError("decoded value %d at position %d is not a character", value, len(out))
		}
		out = append(out, rune(value))
		chars = chars[len(weights):]
	}
	return string(out), nil
}

// EncodeJuniperType9 builds a "$9$" secret for plaintext. salt must belong to the alphabet;
// the salt padding characters are drawn from rnd.
func EncodeJuniperType9(plaintext string, salt byte, rnd io.Reader) (string, error) {
	extra, ok := juniperExtra[salt]
	if !ok {
		return "", fmt.Errorf("salt %q is outside the alphabet", salt)
	}
	if plaintext == "" {
		return "", &serviceErrors.EmptyInputError{}
	}
	var b strings.Builder
	b.WriteString(juniperMagic)
	b.WriteByte(salt)
	if extra > 0 {
		pad := make([]byte, extra)
		if _, err := io.ReadFull(rnd, pad); err != nil {
			return "", err
		}
		for _, p := range pad {
			b.WriteByte(juniperAlphabet[int(p)%len(juniperAlphabet)])
		}
	}
	prev := juniperPosition[salt]
	pos := 0
	for _, r := range plaintext {
		weights := juniperEncoding[pos%len(juniperEncoding)]
		value := int(r)
		gaps := make([]int, len(weights))
		for i := len(weights) - 1; i >= 0; i-- {
			gaps[i] = value / weights[i]
			value %= weights[i]
		}
		for _, g := range gaps {
			if g > len(juniperAlphabet)-2 {
				return "", fmt.Errorf("character %q cannot be encoded", r)
			}
			prev = (prev + g + 1) % len(juniperAlphabet)
			b.WriteByte(juniperAlphabet[prev])
		}
		pos++
	}
	return b.String(), nil
}
