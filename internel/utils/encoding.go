package utils

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

var ErrUnknownEncoding = errors.New("utils: unknown encoding")

// Encode converts s from UTF-8 into the character set registered with IANA
// under name or one of its aliases. An empty name returns the bytes unchanged.
func Encode(s, name string) ([]byte, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []byte(s), nil
	}
	// known names without a Go implementation come back as nil, nil
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	res, _, err := transform.Bytes(enc.NewEncoder(), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %q as %s: %v", s, name, err)
	}
	return res, nil
}
