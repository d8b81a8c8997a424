package codec

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	serviceErrors "github.com/danilovkiri/dk_go_secret_decoder/internal/service/errors"
)

// knownPasswords seeds the reverse lookup table. It is a fixed demo set, not a dictionary.
var knownPasswords = []string{
	"password",
	"123456",
	"12345678",
	"admin",
	"admin123",
	"root",
	"toor",
	"cisco",
	"Cisco123",
	"juniper",
	"letmein",
	"qwerty",
	"abc123",
	"changeme",
	"welcome",
	"default",
	"public",
	"private",
	"secret",
	"P@ssw0rd",
}

// KnownHashTable maps lowercase hex MD5 digests to known plaintexts. Read-only after init.
type KnownHashTable map[string]string

var knownHashes = newKnownHashTable(knownPasswords)

func newKnownHashTable(words []string) KnownHashTable {
	table := make(KnownHashTable, len(words))
	for _, w := range words {
		sum := md5.Sum([]byte(w))
		table[hex.EncodeToString(sum[:])] = w
	}
	return table
}

// Lookup returns the plaintext for digest, case-insensitively.
func (t KnownHashTable) Lookup(digest string) (string, bool) {
	plaintext, ok := t[strings.ToLower(digest)]
	return plaintext, ok
}

// LookupMD5 reverses an MD5 digest against the known hash table. A malformed digest can never be
// in the table, so it is reported as a lookup miss too.
func LookupMD5(digest string) (string, error) {
	plaintext, ok := knownHashes.Lookup(digest)
	if !ok {
		return "", &serviceErrors.NotFoundError{Msg: "hash not found in known passwords database"}
	}
	return plaintext, nil
}
