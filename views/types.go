package views

// Address is one rendered address row for an interface.
type Address struct {
	Text    string
	Prefix  string // CIDR prefix ("/24"), empty when unknown
	Netmask string // dotted-decimal, IPv4 only
	Family  string
}

// Interface aggregates everything the browser shows for one interface.
type Interface struct {
	Name    string
	Addrs   []Address
	MAC     string
	MTU     int
	Flags   []string
	IsUp    bool
	HasInfo bool // false when hardware details were unavailable
}
