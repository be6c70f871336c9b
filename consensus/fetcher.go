package consensus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"

	"aurum/blockchain"
)

const (
	// DefaultFetchTimeout bounds a single peer request. The reference has
	// no timeout at all, which can stall a resolution sweep indefinitely.
	DefaultFetchTimeout = 5 * time.Second

	// maxFetchRetries bounds the backoff retries per peer before the peer
	// is skipped for this sweep.
	maxFetchRetries = 2
)

// HTTPFetcher retrieves peer chains via GET http://{peer}/chain, retrying
// transient failures with exponential backoff.
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *HTTPFetcher) FetchChain(ctx context.Context, address string) (*blockchain.ChainPayload, error) {
	var payload blockchain.ChainPayload

	fetch := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+address+"/chain", nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			// A node that answers with anything but 200 will not
			// change its mind within this sweep.
			return backoff.Permanent(fmt.Errorf("peer returned status %d", resp.StatusCode))
		}

		return json.NewDecoder(resp.Body).Decode(&payload)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxFetchRetries), ctx)
	if err := backoff.Retry(fetch, policy); err != nil {
		return nil, err
	}

	return &payload, nil
}
