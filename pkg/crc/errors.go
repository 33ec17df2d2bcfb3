package crc

import "errors"

var (
	ErrUnknownVariant   = errors.New("crc: unknown variant")
	ErrInvalidWidth     = errors.New("crc: width must be between 1 and 64")
	ErrInvalidParams    = errors.New("crc: invalid parameters")
	ErrCheckMismatch    = errors.New("crc: check value mismatch")
	ErrBitRange         = errors.New("crc: bit range out of bounds")
	ErrDuplicateVariant = errors.New("crc: duplicate variant name")
	ErrUnknownEngine    = errors.New("crc: unknown calculation engine")
)
