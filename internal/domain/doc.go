// Package domain contains the core domain model for hostexpand.
//
// The domain is I/O-agnostic: it does not depend on the filesystem, the
// terminal, or any parsing beyond net/netip. Infra/adapters map into/from
// these types.
package domain
