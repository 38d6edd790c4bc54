// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// cloudflareIPsURL is Cloudflare's published list of its IPv4 ranges.
const cloudflareIPsURL = "https://api.cloudflare.com/client/v4/ips"

// Cloudflare produces target addresses from Cloudflare's officially
// published IPv4 CIDR ranges.
type Cloudflare struct {
	Client *http.Client
	URL    string
	Log    *zap.Logger
}

var _ Source = (*Cloudflare)(nil)

// NewCloudflare returns a Source fetching Cloudflare's published ranges with
// a bounded request timeout.
func NewCloudflare(log *zap.Logger) *Cloudflare {
	return &Cloudflare{
		Client: &http.Client{Timeout: 10 * time.Second},
		URL:    cloudflareIPsURL,
		Log:    log,
	}
}

// Produce fetches the published ranges and expands them into individual
// target addresses.
func (s *Cloudflare) Produce(ctx context.Context) ([]string, error) {
	cidrs, err := s.Ranges(ctx)
	if err != nil {
		return nil, err
	}
	return Expand(cidrs, s.Log), nil
}

// Ranges fetches the raw list of IPv4 CIDR ranges from the Cloudflare API.
func (s *Cloudflare) Ranges(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch Cloudflare IP list: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot fetch Cloudflare IP list: status %s", resp.Status)
	}
	var payload struct {
		Success bool `json:"success"`
		Result  struct {
			IPv4CIDRs []string `json:"ipv4_cidrs"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("cannot fetch Cloudflare IP list: %w", err)
	}
	if !payload.Success || len(payload.Result.IPv4CIDRs) == 0 {
		return nil, fmt.Errorf("Cloudflare IP list response was not successful")
	}
	return payload.Result.IPv4CIDRs, nil
}
