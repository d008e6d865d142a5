package ifaddrs

import (
	"fmt"

	psnet "github.com/shirou/gopsutil/v4/net"
)

// Detail carries per-interface hardware facts for display: MTU, MAC and
// the OS flag strings. It is not part of the address snapshot; the plain
// report modes never need it.
type Detail struct {
	MTU   int
	MAC   string
	Flags []string
	Up    bool
}

// Details returns hardware facts keyed by interface name.
func Details() (map[string]Detail, error) {
	stats, err := psnet.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("querying interface details: %w", err)
	}

	details := make(map[string]Detail, len(stats))
	for _, st := range stats {
		d := Detail{MTU: st.MTU, MAC: st.HardwareAddr, Flags: st.Flags}
		for _, f := range st.Flags {
			if f == "up" {
				d.Up = true
				break
			}
		}
		details[st.Name] = d
	}
	return details, nil
}
