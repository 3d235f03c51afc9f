package expand

import (
	"net/netip"
	"testing"

	"github.com/aalvaropc/hostexpand/internal/domain"
)

func collect(p netip.Prefix) []netip.Addr {
	var out []netip.Addr
	for a := range Hosts(p) {
		out = append(out, a)
	}
	return out
}

func TestHosts_Slash30(t *testing.T) {
	got := collect(netip.MustParsePrefix("192.168.1.0/30"))
	want := []netip.Addr{
		netip.MustParseAddr("192.168.1.1"),
		netip.MustParseAddr("192.168.1.2"),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d hosts, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("host[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestHosts_Slash24ExcludesEndpointsAscending(t *testing.T) {
	p := netip.MustParsePrefix("10.1.2.0/24")
	got := collect(p)

	if len(got) != 254 {
		t.Fatalf("expected 254 hosts, got %d", len(got))
	}
	if got[0] != netip.MustParseAddr("10.1.2.1") {
		t.Fatalf("first host = %s", got[0])
	}
	if got[len(got)-1] != netip.MustParseAddr("10.1.2.254") {
		t.Fatalf("last host = %s", got[len(got)-1])
	}

	network := netip.MustParseAddr("10.1.2.0")
	broadcast := netip.MustParseAddr("10.1.2.255")
	prev := netip.Addr{}
	for i, a := range got {
		if a == network || a == broadcast {
			t.Fatalf("host[%d] = %s is not usable", i, a)
		}
		if i > 0 && !prev.Less(a) {
			t.Fatalf("hosts not strictly ascending at %d: %s then %s", i, prev, a)
		}
		prev = a
	}
}

func TestHosts_DegenerateNetworks(t *testing.T) {
	for _, p := range []string{"10.0.0.0/31", "10.0.0.1/32", "0.0.0.0/32"} {
		if got := collect(netip.MustParsePrefix(p)); len(got) != 0 {
			t.Errorf("Hosts(%s) yielded %d addresses, want 0", p, len(got))
		}
	}
}

// Consuming a handful of a /8's 16.7M hosts and stopping must terminate
// promptly: the sequence is produced on demand, never materialized.
func TestHosts_LazyEarlyBreak(t *testing.T) {
	var got []netip.Addr
	for a := range Hosts(netip.MustParsePrefix("10.0.0.0/8")) {
		got = append(got, a)
		if len(got) == 3 {
			break
		}
	}

	want := []netip.Addr{
		netip.MustParseAddr("10.0.0.1"),
		netip.MustParseAddr("10.0.0.2"),
		netip.MustParseAddr("10.0.0.3"),
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("host[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestHosts_Restartable(t *testing.T) {
	seq := Hosts(netip.MustParsePrefix("172.16.0.0/30"))

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}

	if first != 2 || second != 2 {
		t.Fatalf("expected 2 hosts on both traversals, got %d then %d", first, second)
	}
}

func TestAll_PreservesNetworkOrder(t *testing.T) {
	networks := []domain.Network{
		{Prefix: netip.MustParsePrefix("192.168.1.0/30")},
		{Prefix: netip.MustParsePrefix("10.0.0.0/31")},
		{Prefix: netip.MustParsePrefix("172.16.0.0/30")},
	}

	var got []string
	for s := range All(networks) {
		got = append(got, s)
	}

	want := []string{"192.168.1.1", "192.168.1.2", "172.16.0.1", "172.16.0.2"}
	if len(got) != len(want) {
		t.Fatalf("expected %d hosts, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("host[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestAll_EarlyBreakStopsEverything(t *testing.T) {
	networks := []domain.Network{
		{Prefix: netip.MustParsePrefix("10.0.0.0/8")},
		{Prefix: netip.MustParsePrefix("192.168.0.0/24")},
	}

	n := 0
	for range All(networks) {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Fatalf("expected early break after 5, got %d", n)
	}
}
