// Package codec provides interfaces for types to be in compliance with.
package codec

import "github.com/danilovkiri/dk_go_secret_decoder/internal/service/modelcodec"

// Decoder defines a set of methods for types implementing Decoder.
type Decoder interface {
	Decode(req modelcodec.DecodeRequest) modelcodec.DecodeResult
}
