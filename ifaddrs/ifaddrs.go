// Package ifaddrs reads the host's configured interface addresses.
package ifaddrs

import (
	"fmt"
	"net"
)

// Family identifies the address family of an Entry. Only IPv4 and IPv6
// entries ever enter a Snapshot; everything else is dropped at query time.
type Family int

const (
	IPv4 Family = iota + 1
	IPv6
)

func (f Family) String() string {
	switch f {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// Entry is one configured address as reported by the OS. Mask is nil when
// the OS reported no netmask for the address. Zone carries the IPv6 scope
// zone for link-local addresses, when reported.
type Entry struct {
	Name string
	IP   net.IP
	Mask net.IPMask
	Zone string
}

// Family reports the entry's address family. ok is false for a nil or
// malformed IP.
func (e Entry) Family() (Family, bool) {
	switch {
	case e.IP.To4() != nil:
		return IPv4, true
	case len(e.IP) == net.IPv6len:
		return IPv6, true
	default:
		return 0, false
	}
}

// Text renders the address numerically: dotted-decimal for IPv4, colon-hex
// for IPv6 with the %zone suffix preserved. Never performs a DNS lookup.
// ok is false when the address cannot be rendered.
func (e Entry) Text() (string, bool) {
	if _, ok := e.Family(); !ok {
		return "", false
	}
	s := e.IP.String()
	if e.Zone != "" {
		s += "%" + e.Zone
	}
	return s, true
}

// DottedMask renders an IPv4 netmask in dotted-decimal form. ok is false
// for IPv6 entries and for absent or oddly sized masks.
func (e Entry) DottedMask() (string, bool) {
	if f, ok := e.Family(); !ok || f != IPv4 {
		return "", false
	}
	m := e.Mask
	if len(m) == net.IPv6len {
		m = m[12:]
	}
	if len(m) != net.IPv4len {
		return "", false
	}
	return fmt.Sprintf("%d.%d.%d.%d", m[0], m[1], m[2], m[3]), true
}
