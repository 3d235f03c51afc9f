package domain

import (
	"fmt"
	"net/netip"
)

// SpecKind tags the classification outcome of one input line.
type SpecKind string

const (
	SpecNetwork  SpecKind = "network"
	SpecCoerced  SpecKind = "coerced_network"
	SpecRejected SpecKind = "rejected"
	SpecEmpty    SpecKind = "empty"
)

// Network is a strictly valid IPv4 network: the prefix address has all
// host bits zero.
type Network struct {
	Prefix netip.Prefix
}

func (n Network) String() string { return n.Prefix.String() }

// HostCount reports how many usable host addresses the network has.
// /31 and /32 have none under standard host-enumeration semantics.
func (n Network) HostCount() int64 {
	bits := n.Prefix.Bits()
	if bits >= 31 {
		return 0
	}
	return (int64(1) << (32 - bits)) - 2
}

// AddressSpec is the parsed outcome of a single input line. Exactly one
// variant applies per line; which one is indicated by Kind.
//
//   - SpecNetwork: Net holds the strictly valid network.
//   - SpecCoerced: Net holds the network derived by masking host bits;
//     Original keeps the offending text for diagnostics.
//   - SpecRejected: Reason explains why the text is not an IPv4
//     network or host.
//   - SpecEmpty: the line was blank after trimming; no other field set.
type AddressSpec struct {
	Kind     SpecKind
	Net      Network
	Original string
	Reason   string
}

// Accepted reports whether the spec contributes a network to expansion.
func (s AddressSpec) Accepted() bool {
	return s.Kind == SpecNetwork || s.Kind == SpecCoerced
}

// CoercionNotice is the advisory text for a coerced spec, naming the
// offending literal and the substituted network address.
func (s AddressSpec) CoercionNotice() string {
	return fmt.Sprintf("%s is not a valid network address; %s used instead",
		s.Original, s.Net.Prefix.Addr())
}

// RejectionNotice is the advisory text for a rejected spec.
func (s AddressSpec) RejectionNotice() string {
	return fmt.Sprintf("invalid subnet address %q: %s", s.Original, s.Reason)
}
