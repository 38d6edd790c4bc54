// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package geo

import (
	"encoding/json"
	"net/http"
	"time"
)

// Unlocatable is the sentinel location reported whenever a lookup fails;
// enrichment never surfaces errors, and failed lookups are never retried.
const Unlocatable = "Network Error"

// ipinfoURL is the geolocation service queried per address; ipinfo.io is
// reachable from networks where other geo services are blocked.
const ipinfoURL = "https://ipinfo.io"

// IPInfo is a [Lookup] backed by the ipinfo.io JSON API, answering with
// "City, CC" location strings.
type IPInfo struct {
	Client  *http.Client
	BaseURL string
}

var _ Lookup = (*IPInfo)(nil)

// NewIPInfo returns a Lookup querying ipinfo.io with a bounded per-request
// timeout.
func NewIPInfo() *IPInfo {
	return &IPInfo{
		Client:  &http.Client{Timeout: 10 * time.Second},
		BaseURL: ipinfoURL,
	}
}

// Locate resolves the given address into "City, CC". Fields the service
// doesn't know come back as "N/A"; any transport or decoding failure yields
// the [Unlocatable] sentinel.
func (l *IPInfo) Locate(address string) string {
	resp, err := l.Client.Get(l.BaseURL + "/" + address + "/json")
	if err != nil {
		return Unlocatable
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Unlocatable
	}
	var info struct {
		City    string `json:"city"`
		Country string `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Unlocatable
	}
	if info.City == "" {
		info.City = "N/A"
	}
	if info.Country == "" {
		info.Country = "N/A"
	}
	return info.City + ", " + info.Country
}
