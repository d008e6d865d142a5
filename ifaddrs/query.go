package ifaddrs

import (
	"fmt"
	"net"
)

// Snapshot is the full set of configured addresses at one instant, in the
// OS's native enumeration order: interfaces in index order, addresses in
// the order the OS reports them. A Snapshot owns its memory and is never
// cached; callers take a fresh one per invocation.
type Snapshot []Entry

// Query retrieves the current interface address table in one pass. Any
// failure means the table could not be retrieved; there is no partial
// result.
func Query() (Snapshot, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("querying interfaces: %w", err)
	}

	var snap Snapshot
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			return nil, fmt.Errorf("querying addresses of %s: %w", iface.Name, err)
		}
		for _, addr := range addrs {
			var entry Entry
			switch a := addr.(type) {
			case *net.IPNet:
				entry = Entry{Name: iface.Name, IP: cloneIP(a.IP), Mask: cloneMask(a.Mask)}
			case *net.IPAddr:
				entry = Entry{Name: iface.Name, IP: cloneIP(a.IP), Zone: a.Zone}
			default:
				continue
			}
			if _, ok := entry.Family(); !ok {
				continue
			}
			snap = append(snap, entry)
		}
	}
	return snap, nil
}

func cloneIP(ip net.IP) net.IP {
	if ip == nil {
		return nil
	}
	return append(net.IP(nil), ip...)
}

func cloneMask(mask net.IPMask) net.IPMask {
	if mask == nil {
		return nil
	}
	return append(net.IPMask(nil), mask...)
}
