package did

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDID is returned when an identifier does not follow the
// did:<method>:<method-specific-id> syntax.
var ErrInvalidDID = errors.New("invalid DID")

// DID is a parsed decentralized identifier.
type DID struct {
	// URI is the full identifier string, e.g. "did:web:example.com".
	URI string
	// Method is the method name, e.g. "web" or "key".
	Method string
	// ID is the method-specific identifier.
	ID string
}

// Parse validates and splits a DID string.
func Parse(uri string) (DID, error) {
	parts := strings.SplitN(uri, ":", 3)
	if len(parts) != 3 || parts[0] != "did" {
		return DID{}, fmt.Errorf("%w: %q", ErrInvalidDID, uri)
	}
	method, id := parts[1], parts[2]
	if method == "" || id == "" {
		return DID{}, fmt.Errorf("%w: %q", ErrInvalidDID, uri)
	}
	for _, r := range method {
		// method-name is lowercase letters and digits per the DID syntax
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return DID{}, fmt.Errorf("%w: %q", ErrInvalidDID, uri)
		}
	}
	return DID{URI: uri, Method: method, ID: id}, nil
}

// MustParse is Parse for identifiers known to be valid; it panics otherwise.
// Intended for tests and fixtures.
func MustParse(uri string) DID {
	d, err := Parse(uri)
	if err != nil {
		panic(err)
	}
	return d
}
