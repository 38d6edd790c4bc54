// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"encoding/binary"
	"errors"
	"net/netip"
	"strings"

	"go.uber.org/zap"
)

// Source produces the finite set of target addresses to probe, fully
// enumerated before the probing engine starts. Every produced address is a
// syntactically valid IPv4 literal; malformed input gets filtered (and
// warned about) here, never downstream.
type Source interface {
	Produce(ctx context.Context) ([]string, error)
}

// Expand expands a list of CIDR ranges into individual target addresses.
// Blocks of /24 and smaller are expanded fully; the network address is
// included, as CDN network addresses answer probes too. Larger blocks would
// explode the target count, so only every sixteenth address is kept there.
// Unparsable ranges are warned about and skipped; the result contains no
// duplicates.
func Expand(cidrs []string, log *zap.Logger) []string {
	if log == nil {
		log = zap.NewNop()
	}
	seen := map[string]struct{}{}
	targets := []string{}
	for _, cidr := range cidrs {
		prefix, err := netip.ParsePrefix(strings.TrimSpace(cidr))
		if err == nil && !prefix.Addr().Is4() {
			err = errors.New("not an IPv4 prefix")
		}
		if err != nil {
			log.Warn("skipping unparsable CIDR",
				zap.String("cidr", cidr), zap.Error(err))
			continue
		}
		prefix = prefix.Masked()
		first := addrToUint(prefix.Addr())
		size := uint64(1) << (32 - prefix.Bits())
		step := uint64(1)
		if prefix.Bits() < 24 {
			step = 16
		}
		for off := uint64(0); off < size; off += step {
			addr := uintToAddr(first + uint32(off)).String()
			if _, ok := seen[addr]; ok {
				continue
			}
			seen[addr] = struct{}{}
			targets = append(targets, addr)
		}
	}
	return targets
}

func addrToUint(addr netip.Addr) uint32 {
	quad := addr.As4()
	return binary.BigEndian.Uint32(quad[:])
}

func uintToAddr(v uint32) netip.Addr {
	var quad [4]byte
	binary.BigEndian.PutUint32(quad[:], v)
	return netip.AddrFrom4(quad)
}
