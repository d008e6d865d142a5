// Package report renders interface address listings as plain text.
package report

import (
	"fmt"
	"io"

	"github.com/ramborogers/ifshow/ifaddrs"
)

// ListAll writes every interface group in first-seen order: a name header,
// one bullet per address entry in snapshot order, then a blank line after
// each group. Entries with an empty interface name are never headered and
// produce no output.
func ListAll(w io.Writer, snap ifaddrs.Snapshot) {
	seen := make(map[string]struct{})
	var order []string
	for _, e := range snap {
		if e.Name == "" {
			continue
		}
		if _, ok := e.Family(); !ok {
			continue
		}
		if _, ok := seen[e.Name]; ok {
			continue
		}
		seen[e.Name] = struct{}{}
		order = append(order, e.Name)
	}

	for _, name := range order {
		fmt.Fprintf(w, "%s:\n", name)
		for _, e := range snap {
			if e.Name == name {
				writeBullet(w, e)
			}
		}
		fmt.Fprintln(w)
	}
}

// ListOne writes the group for one exactly-matching interface name. The
// header is unconditional; when no entry matches, a not-found line follows
// it. Deliberately no trailing blank line: the group separator belongs to
// list-all output only.
func ListOne(w io.Writer, snap ifaddrs.Snapshot, name string) {
	fmt.Fprintf(w, "%s:\n", name)

	found := false
	for _, e := range snap {
		if e.Name != name {
			continue
		}
		if _, ok := e.Family(); !ok {
			continue
		}
		found = true
		writeBullet(w, e)
	}
	if !found {
		fmt.Fprintf(w, "Interface '%s' not found or has no IP address.\n", name)
	}
}

// writeBullet emits one line for an entry: address/prefix with the dotted
// mask in parentheses for IPv4, address/prefix when only the prefix is
// known, bare address otherwise. An entry whose address cannot be rendered
// is skipped silently.
func writeBullet(w io.Writer, e ifaddrs.Entry) {
	addr, ok := e.Text()
	if !ok {
		return
	}
	prefix, ok := ifaddrs.PrefixLength(e.Mask)
	if !ok {
		fmt.Fprintf(w, " - %s\n", addr)
		return
	}
	if mask, ok := e.DottedMask(); ok {
		fmt.Fprintf(w, " - %s/%d (%s)\n", addr, prefix, mask)
		return
	}
	fmt.Fprintf(w, " - %s/%d\n", addr, prefix)
}
