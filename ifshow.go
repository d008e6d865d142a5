package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ramborogers/ifshow/ifaddrs"
	"github.com/ramborogers/ifshow/report"
	"github.com/ramborogers/ifshow/views"
)

const version = "0.1.0"

func init() {
	// Log to debug.log when IFSHOW_DEBUG is set, otherwise discard. An env
	// toggle keeps the strict argument table intact.
	if os.Getenv("IFSHOW_DEBUG") != "" {
		f, err := os.OpenFile("debug.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("error opening debug.log: %v", err)
		}
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  ifshow -a                     # Show all interfaces")
	fmt.Fprintln(out, "  ifshow -i <interface_name>    # Show specific interface")
	fmt.Fprintln(out, "  ifshow -t                     # Browse interfaces interactively")
	fmt.Fprintln(out, "  ifshow -version               # Show version information")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, "  ifshow -a")
	fmt.Fprintln(out, "  ifshow -i eth0")
	fmt.Fprintln(out)
}

// run dispatches one invocation. All output, including usage and error
// text, goes to out; callers should match on message text, not stream.
func run(out io.Writer, args []string) int {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintf(out, "\nUnrecognized number of arguments. Please refer to the following:\n\n")
		usage(out)
		return 1
	}

	switch args[0] {
	case "-a":
		if len(args) != 1 {
			fmt.Fprintf(out, "Error: '-a' must be used alone.\n\n")
			usage(out)
			return 1
		}
		snap, err := ifaddrs.Query()
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return 1
		}
		report.ListAll(out, snap)
		return 0

	case "-i":
		if len(args) != 2 {
			fmt.Fprintf(out, "Error: '-i' requires an interface name.\n\n")
			usage(out)
			return 1
		}
		snap, err := ifaddrs.Query()
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return 1
		}
		report.ListOne(out, snap, args[1])
		return 0

	case "-t":
		if len(args) != 1 {
			fmt.Fprintf(out, "Error: '-t' must be used alone.\n\n")
			usage(out)
			return 1
		}
		return runBrowser(out)

	case "-version":
		if len(args) != 1 {
			fmt.Fprintf(out, "Error: '-version' must be used alone.\n\n")
			usage(out)
			return 1
		}
		fmt.Fprintf(out, "ifshow %s\n", version)
		return 0

	default:
		fmt.Fprintf(out, "Unrecognized argument: '%s'. Please refer to the following:\n\n", args[0])
		usage(out)
		return 1
	}
}

// runBrowser takes one snapshot and browses it interactively. No refresh
// loop: the browser shows the table as it was at startup.
func runBrowser(out io.Writer) int {
	snap, err := ifaddrs.Query()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return 1
	}

	details, err := ifaddrs.Details()
	if err != nil {
		log.Printf("interface details unavailable: %v", err)
		details = nil
	}

	p := tea.NewProgram(
		newBrowserModel(buildInterfaces(snap, details)),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(out, "Error running browser: %v\n", err)
		return 1
	}
	return 0
}

// buildInterfaces groups a snapshot into display records, in first-seen
// order, merging in hardware details where known.
func buildInterfaces(snap ifaddrs.Snapshot, details map[string]ifaddrs.Detail) []views.Interface {
	var order []string
	groups := make(map[string][]views.Address)
	for _, e := range snap {
		if e.Name == "" {
			continue
		}
		family, ok := e.Family()
		if !ok {
			continue
		}
		text, ok := e.Text()
		if !ok {
			continue
		}
		addr := views.Address{Text: text, Family: family.String()}
		if prefix, ok := ifaddrs.PrefixLength(e.Mask); ok {
			addr.Prefix = fmt.Sprintf("/%d", prefix)
		}
		if mask, ok := e.DottedMask(); ok {
			addr.Netmask = mask
		}
		if _, ok := groups[e.Name]; !ok {
			order = append(order, e.Name)
		}
		groups[e.Name] = append(groups[e.Name], addr)
	}

	interfaces := make([]views.Interface, 0, len(order))
	for _, name := range order {
		iface := views.Interface{Name: name, Addrs: groups[name]}
		if d, ok := details[name]; ok {
			iface.MAC = d.MAC
			iface.MTU = d.MTU
			iface.Flags = d.Flags
			iface.IsUp = d.Up
			iface.HasInfo = true
		}
		interfaces = append(interfaces, iface)
	}
	return interfaces
}

// browserModel is the bubbletea model for the interactive browser.
type browserModel struct {
	interfaces    []views.Interface
	selectedIndex int
	width         int
	height        int
	browserView   *views.BrowserView
}

func newBrowserModel(interfaces []views.Interface) *browserModel {
	return &browserModel{
		interfaces:  interfaces,
		browserView: views.NewBrowserView(views.NewStyles()),
	}
}

// Init implements tea.Model
func (m *browserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.moveSelection(-1)
		case "down", "j":
			m.moveSelection(1)
		}
	}
	return m, nil
}

func (m *browserModel) moveSelection(delta int) {
	next := m.selectedIndex + delta
	if next < 0 || next > len(m.interfaces)-1 {
		return
	}
	m.selectedIndex = next
}

// View implements tea.Model
func (m *browserModel) View() string {
	m.browserView.SetDimensions(m.width, m.height)
	m.browserView.SetInterfaces(m.interfaces)
	m.browserView.SetSelectedIndex(m.selectedIndex)
	return m.browserView.Render()
}

func main() {
	os.Exit(run(os.Stdout, os.Args[1:]))
}
