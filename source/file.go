// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// File produces target addresses from a local, comma- or newline-delimited
// list of CIDR ranges.
type File struct {
	Path string
	Log  *zap.Logger
}

var _ Source = (*File)(nil)

// NewFile returns a Source reading CIDR ranges from the given file.
func NewFile(path string, log *zap.Logger) *File {
	return &File{Path: path, Log: log}
}

// Produce reads the range list and expands it into individual target
// addresses.
func (s *File) Produce(_ context.Context) ([]string, error) {
	cidrs, err := s.Ranges()
	if err != nil {
		return nil, err
	}
	return Expand(cidrs, s.Log), nil
}

// Ranges reads the raw list of CIDR ranges, one per line or comma-separated,
// with surrounding whitespace trimmed and blank items skipped.
func (s *File) Ranges() ([]string, error) {
	content, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot load IP list: %w", err)
	}
	cidrs := []string{}
	for _, item := range strings.Split(strings.ReplaceAll(string(content), ",", "\n"), "\n") {
		if item = strings.TrimSpace(item); item != "" {
			cidrs = append(cidrs, item)
		}
	}
	return cidrs, nil
}
