package ifaddrs

import (
	"math/bits"
	"net"
)

// PrefixLength counts the contiguous run of set bits from the most
// significant bit of mask. Masks are assumed well formed; a gapped mask
// yields the count up to the first unset bit, with no validation of the
// remaining bits. ok is false when the mask is absent or not an IPv4/IPv6
// mask length.
func PrefixLength(mask net.IPMask) (int, bool) {
	if len(mask) != net.IPv4len && len(mask) != net.IPv6len {
		return 0, false
	}
	n := 0
	for _, b := range mask {
		n += bits.LeadingZeros8(^b)
		if b != 0xff {
			break
		}
	}
	return n, true
}
