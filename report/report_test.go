package report

import (
	"bytes"
	"net"
	"strings"
	"testing"

	"github.com/ramborogers/ifshow/ifaddrs"
)

func testSnapshot() ifaddrs.Snapshot {
	return ifaddrs.Snapshot{
		{Name: "lo", IP: net.ParseIP("127.0.0.1"), Mask: net.IPv4Mask(255, 0, 0, 0)},
		{Name: "eth0", IP: net.ParseIP("192.168.1.5"), Mask: net.IPv4Mask(255, 255, 255, 0)},
		{Name: "lo", IP: net.ParseIP("::1"), Mask: net.CIDRMask(128, 128)},
		{Name: "eth0", IP: net.ParseIP("fe80::1"), Zone: "eth0"},
	}
}

func TestListAllGroupsInFirstSeenOrder(t *testing.T) {
	var buf bytes.Buffer
	ListAll(&buf, testSnapshot())

	want := "lo:\n" +
		" - 127.0.0.1/8 (255.0.0.0)\n" +
		" - ::1/128\n" +
		"\n" +
		"eth0:\n" +
		" - 192.168.1.5/24 (255.255.255.0)\n" +
		" - fe80::1%eth0\n" +
		"\n"
	if got := buf.String(); got != want {
		t.Fatalf("ListAll output:\n%q\nwant:\n%q", got, want)
	}
}

func TestListAllLoopbackScenario(t *testing.T) {
	snap := ifaddrs.Snapshot{
		{Name: "lo", IP: net.ParseIP("127.0.0.1"), Mask: net.IPv4Mask(255, 0, 0, 0)},
	}
	var buf bytes.Buffer
	ListAll(&buf, snap)

	if got, want := buf.String(), "lo:\n - 127.0.0.1/8 (255.0.0.0)\n\n"; got != want {
		t.Fatalf("ListAll output %q, want %q", got, want)
	}
}

func TestListAllMasklessIPv6IsBareAddress(t *testing.T) {
	snap := ifaddrs.Snapshot{
		{Name: "eth0", IP: net.ParseIP("fe80::1")},
	}
	var buf bytes.Buffer
	ListAll(&buf, snap)

	if !strings.Contains(buf.String(), " - fe80::1\n") {
		t.Fatalf("expected bare address bullet, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "fe80::1/") || strings.Contains(buf.String(), "(") {
		t.Fatalf("expected no prefix or parenthetical, got %q", buf.String())
	}
}

func TestListAllSkipsEmptyInterfaceName(t *testing.T) {
	snap := ifaddrs.Snapshot{
		{Name: "", IP: net.ParseIP("10.0.0.1"), Mask: net.IPv4Mask(255, 0, 0, 0)},
		{Name: "lo", IP: net.ParseIP("127.0.0.1"), Mask: net.IPv4Mask(255, 0, 0, 0)},
	}
	var buf bytes.Buffer
	ListAll(&buf, snap)

	if strings.Contains(buf.String(), "10.0.0.1") {
		t.Fatalf("empty-name entry leaked into output: %q", buf.String())
	}
	if !strings.HasPrefix(buf.String(), "lo:\n") {
		t.Fatalf("expected lo group first, got %q", buf.String())
	}
}

func TestListAllSkipsUnrenderableEntry(t *testing.T) {
	snap := ifaddrs.Snapshot{
		{Name: "eth0", IP: net.IP{1, 2, 3}},
		{Name: "eth0", IP: net.ParseIP("192.168.1.5"), Mask: net.IPv4Mask(255, 255, 255, 0)},
	}
	var buf bytes.Buffer
	ListAll(&buf, snap)

	want := "eth0:\n - 192.168.1.5/24 (255.255.255.0)\n\n"
	if got := buf.String(); got != want {
		t.Fatalf("ListAll output %q, want %q", got, want)
	}
}

func TestListAllIsIdempotent(t *testing.T) {
	snap := testSnapshot()
	var first, second bytes.Buffer
	ListAll(&first, snap)
	ListAll(&second, snap)

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatalf("two renders differ:\n%q\n%q", first.String(), second.String())
	}
}

func TestListOneMixedFamilies(t *testing.T) {
	var buf bytes.Buffer
	ListOne(&buf, testSnapshot(), "eth0")

	want := "eth0:\n" +
		" - 192.168.1.5/24 (255.255.255.0)\n" +
		" - fe80::1%eth0\n"
	if got := buf.String(); got != want {
		t.Fatalf("ListOne output:\n%q\nwant:\n%q", got, want)
	}
}

// List-one omits the group separator blank line that list-all appends. The
// asymmetry is intentional and preserved.
func TestListOneOmitsGroupSeparator(t *testing.T) {
	var buf bytes.Buffer
	ListOne(&buf, testSnapshot(), "lo")

	out := buf.String()
	if strings.HasSuffix(out, "\n\n") {
		t.Fatalf("list-one output must not end with a blank line: %q", out)
	}
}

func TestListOneExactMatchOnly(t *testing.T) {
	var buf bytes.Buffer
	ListOne(&buf, testSnapshot(), "eth")

	want := "eth:\nInterface 'eth' not found or has no IP address.\n"
	if got := buf.String(); got != want {
		t.Fatalf("ListOne output %q, want %q", got, want)
	}
}

func TestListOneNotFound(t *testing.T) {
	var buf bytes.Buffer
	ListOne(&buf, testSnapshot(), "wlan0")

	want := "wlan0:\nInterface 'wlan0' not found or has no IP address.\n"
	if got := buf.String(); got != want {
		t.Fatalf("ListOne output %q, want %q", got, want)
	}
	if strings.Contains(buf.String(), " - ") {
		t.Fatalf("unexpected bullet in not-found output: %q", buf.String())
	}
}
