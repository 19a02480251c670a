package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JijoBose/web5-wallet/internal/did"
)

// HTTPResolver resolves DIDs against a universal-resolver style HTTP
// endpoint: GET {base}/1.0/identifiers/{did}.
type HTTPResolver struct {
	baseURL string
	client  *http.Client
}

// NewHTTPResolver constructs a client for the resolver at baseURL.
func NewHTTPResolver(baseURL string) *HTTPResolver {
	return &HTTPResolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Resolve implements Resolver.
func (r *HTTPResolver) Resolve(ctx context.Context, didURI string) (*did.ResolutionResult, error) {
	endpoint := r.baseURL + "/1.0/identifiers/" + url.PathEscape(didURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", didURI, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotResolved, didURI)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("resolving %s: unexpected status %d", didURI, resp.StatusCode)
	}

	var result did.ResolutionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding resolution of %s: %w", didURI, err)
	}
	if result.ResolutionMetadata.Error != "" {
		return nil, fmt.Errorf("%w: %s (%s)", ErrNotResolved, didURI, result.ResolutionMetadata.Error)
	}
	return &result, nil
}

var _ Resolver = (*HTTPResolver)(nil)
