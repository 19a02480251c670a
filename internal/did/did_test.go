package did

import (
	"errors"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		uri    string
		method string
		id     string
	}{
		{"did:web:example.com", "web", "example.com"},
		{"did:key:z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK", "key", "z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK"},
		{"did:web:example.com:user:alice", "web", "example.com:user:alice"},
	}
	for _, tc := range cases {
		d, err := Parse(tc.uri)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.uri, err)
		}
		if d.Method != tc.method || d.ID != tc.id || d.URI != tc.uri {
			t.Fatalf("Parse(%q) = %+v", tc.uri, d)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, uri := range []string{
		"",
		"did",
		"did:",
		"did:web",
		"did:web:",
		"did::example.com",
		"did:WEB:example.com",
		"urn:web:example.com",
	} {
		if _, err := Parse(uri); !errors.Is(err, ErrInvalidDID) {
			t.Fatalf("Parse(%q): expected ErrInvalidDID, got %v", uri, err)
		}
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for malformed DID")
		}
	}()
	MustParse("not-a-did")
}
