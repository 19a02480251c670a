package resolver

import (
	"context"
	"errors"

	"github.com/JijoBose/web5-wallet/internal/did"
)

// ErrEmptyDID is returned when a cache operation is called with an empty
// identifier. It is raised before any cache state is touched and is the
// only error the in-memory backend can produce.
var ErrEmptyDID = errors.New("resolver: DID must not be empty")

// Cache is the identifier-keyed cache contract shared by interchangeable
// resolver-cache backends. A missing or expired entry is reported as
// (nil, nil), never as an error.
//
// Close exists to satisfy a shared shutdown contract: store-backed
// implementations release their resources there, the in-memory one has
// nothing to release.
type Cache interface {
	Get(ctx context.Context, didURI string) (*did.ResolutionResult, error)
	Set(ctx context.Context, didURI string, result *did.ResolutionResult) error
	Delete(ctx context.Context, didURI string) error
	Clear(ctx context.Context) error
	Close() error
}
