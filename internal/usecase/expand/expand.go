// Package expand enumerates the usable hosts of IPv4 networks.
//
// Sequences are lazy range-over-func iterators: a /8 is never
// materialized, and the caller may stop consuming at any point.
package expand

import (
	"iter"
	"net/netip"

	"go4.org/netipx"

	"github.com/aalvaropc/hostexpand/internal/domain"
)

// Hosts yields the usable host addresses of p in ascending order: every
// address strictly between the network and broadcast addresses. /31 and
// /32 networks yield nothing under standard host-enumeration semantics.
//
// p must be a valid IPv4 network (classification guarantees this);
// Hosts performs no validation of its own.
func Hosts(p netip.Prefix) iter.Seq[netip.Addr] {
	return func(yield func(netip.Addr) bool) {
		if p.Bits() >= 31 {
			return
		}

		r := netipx.RangeOfPrefix(p)
		broadcast := r.To()
		for a := r.From().Next(); a.Less(broadcast); a = a.Next() {
			if !yield(a) {
				return
			}
		}
	}
}

// All concatenates the host sequences of networks, preserving input
// order: every host of networks[0] before any host of networks[1].
// Elements are dotted-quad strings without a newline.
func All(networks []domain.Network) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, n := range networks {
			for a := range Hosts(n.Prefix) {
				if !yield(a.String()) {
					return
				}
			}
		}
	}
}
