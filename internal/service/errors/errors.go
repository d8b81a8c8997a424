// Package errors provides custom errors for types implementing codec.Decoder and decoder.Processor interfaces.
package errors

import "fmt"

type (
	InvalidFormatError struct {
		Msg string
		Err error
	}
	UnsupportedSchemeError struct {
		Scheme string
	}
	EmptyInputError struct {
	}
	NotFoundError struct {
		Msg string
	}
	InternalError struct {
		Err error
	}
	ServiceFoundNilStorage struct {
		Msg string
	}
	ServiceFoundNilCodec struct {
		Msg string
	}
	ServiceInitHashError struct {
		Msg string
	}
	ServiceEncodingHashError struct {
		Msg string
	}
)

func (e *InvalidFormatError) Error() string {
	return e.Msg
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

func (e *UnsupportedSchemeError) Error() string {
	return "unsupported scheme"
}

func (e *EmptyInputError) Error() string {
	return "empty encoded text"
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal decoder error: %s", e.Err.Error())
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func (e *ServiceFoundNilStorage) Error() string {
	return e.Msg
}

func (e *ServiceFoundNilCodec) Error() string {
	return e.Msg
}

func (e *ServiceInitHashError) Error() string {
	return e.Msg
}

func (e *ServiceEncodingHashError) Error() string {
	return e.Msg
}
