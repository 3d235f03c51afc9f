// Package classify turns raw input lines into address specs.
//
// Classification is pure and order-independent: no line's outcome depends
// on another's, and reporting the outcome to a human is the caller's
// concern.
package classify

import (
	"net/netip"
	"strings"

	"github.com/aalvaropc/hostexpand/internal/domain"
)

// Classify maps one raw line to exactly one AddressSpec variant.
//
// The line is trimmed first; a blank result is SpecEmpty. Then a strict
// CIDR parse is attempted (bare addresses count as /32): a valid IPv4
// prefix with zero host bits is SpecNetwork. If only the host-bits
// requirement fails, the network derived by masking is returned as
// SpecCoerced with the original text kept for diagnostics. Anything
// else, IPv6 included, is SpecRejected.
func Classify(line string) domain.AddressSpec {
	text := strings.TrimSpace(line)
	if text == "" {
		return domain.AddressSpec{Kind: domain.SpecEmpty}
	}

	if !strings.Contains(text, "/") {
		addr, err := netip.ParseAddr(text)
		if err != nil {
			return rejected(text, err.Error())
		}
		if !addr.Is4() {
			return rejected(text, "not an IPv4 address")
		}
		// A bare host is a /32 network; host bits are zero trivially.
		return domain.AddressSpec{
			Kind:     domain.SpecNetwork,
			Net:      domain.Network{Prefix: netip.PrefixFrom(addr, 32)},
			Original: text,
		}
	}

	prefix, err := netip.ParsePrefix(text)
	if err != nil {
		return rejected(text, err.Error())
	}
	if !prefix.Addr().Is4() {
		return rejected(text, "not an IPv4 network")
	}

	masked := prefix.Masked()
	if prefix == masked {
		return domain.AddressSpec{
			Kind:     domain.SpecNetwork,
			Net:      domain.Network{Prefix: prefix},
			Original: text,
		}
	}

	return domain.AddressSpec{
		Kind:     domain.SpecCoerced,
		Net:      domain.Network{Prefix: masked},
		Original: text,
	}
}

func rejected(text, reason string) domain.AddressSpec {
	return domain.AddressSpec{
		Kind:     domain.SpecRejected,
		Original: text,
		Reason:   reason,
	}
}
