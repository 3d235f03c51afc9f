package domain

import (
	"net/netip"
	"testing"
)

func TestNetworkHostCount(t *testing.T) {
	cases := []struct {
		prefix string
		want   int64
	}{
		{"10.0.0.0/8", 16777214},
		{"192.168.1.0/24", 254},
		{"192.168.1.0/30", 2},
		{"10.0.0.0/31", 0},
		{"10.0.0.1/32", 0},
		{"0.0.0.0/0", 4294967294},
	}
	for _, c := range cases {
		n := Network{Prefix: netip.MustParsePrefix(c.prefix)}
		if got := n.HostCount(); got != c.want {
			t.Errorf("HostCount(%s) = %d, want %d", c.prefix, got, c.want)
		}
	}
}

func TestAddressSpecAccepted(t *testing.T) {
	if !(AddressSpec{Kind: SpecNetwork}).Accepted() {
		t.Error("network specs are accepted")
	}
	if !(AddressSpec{Kind: SpecCoerced}).Accepted() {
		t.Error("coerced specs are accepted")
	}
	if (AddressSpec{Kind: SpecRejected}).Accepted() {
		t.Error("rejected specs are not accepted")
	}
	if (AddressSpec{Kind: SpecEmpty}).Accepted() {
		t.Error("empty specs are not accepted")
	}
}
