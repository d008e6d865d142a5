package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// BrowserView handles the interactive interface browser screen
type BrowserView struct {
	styles        *Styles
	width         int
	height        int
	interfaces    []Interface
	selectedIndex int
}

// NewBrowserView creates a new browser view
func NewBrowserView(styles *Styles) *BrowserView {
	return &BrowserView{
		styles: styles,
	}
}

// SetDimensions updates the view dimensions
func (v *BrowserView) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// SetInterfaces updates the list of interfaces
func (v *BrowserView) SetInterfaces(interfaces []Interface) {
	v.interfaces = interfaces
}

// SetSelectedIndex updates the selected interface index
func (v *BrowserView) SetSelectedIndex(index int) {
	v.selectedIndex = index
}

// Render generates the view
func (v *BrowserView) Render() string {
	title := v.styles.Title.
		Align(lipgloss.Center).
		Render("Network Interfaces")

	if len(v.interfaces) == 0 {
		empty := v.styles.DialogBox.Render(v.styles.Text.Render("No interfaces with IP addresses found"))
		return v.place(lipgloss.JoinVertical(lipgloss.Center, title, empty))
	}

	// Interface list with selection arrow
	var listContent []string
	for i, iface := range v.interfaces {
		item := fmt.Sprintf("%s (%d address%s)", iface.Name, len(iface.Addrs), plural(len(iface.Addrs)))
		if i == v.selectedIndex {
			arrow := v.styles.Text.Copy().
				Foreground(primaryColor).
				Render("▶")
			item = arrow + v.styles.Text.Render(" "+item)
		} else {
			item = v.styles.Text.Render("  " + item)
		}
		listContent = append(listContent, item)
	}
	list := v.styles.DialogBox.Render(strings.Join(listContent, "\n"))

	details := v.renderDetails(v.interfaces[v.selectedIndex])

	help := v.styles.Help.Render("↑↓ Select • q Quit")

	return v.place(lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		list,
		details,
		help,
	))
}

// renderDetails builds the detail box for the selected interface: the
// address table plus hardware facts when they are available.
func (v *BrowserView) renderDetails(iface Interface) string {
	rows := make([]table.Row, 0, len(iface.Addrs))
	for _, a := range iface.Addrs {
		rows = append(rows, table.Row{a.Text, a.Prefix, a.Netmask, a.Family})
	}

	columns := []table.Column{
		{Title: "Address", Width: 40},
		{Title: "Prefix", Width: 7},
		{Title: "Netmask", Width: 16},
		{Title: "Family", Width: 7},
	}

	tableStyle := table.Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Align(lipgloss.Left),
		Selected: lipgloss.NewStyle().
			Foreground(secondaryColor).
			Align(lipgloss.Left),
		Cell: lipgloss.NewStyle().
			Foreground(secondaryColor).
			Align(lipgloss.Left),
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
		table.WithStyles(tableStyle),
	)

	sections := []string{
		v.styles.Title.Render(iface.Name),
		"",
		t.View(),
	}

	if iface.HasInfo {
		status := "DOWN"
		if iface.IsUp {
			status = "UP"
		}
		mac := iface.MAC
		if mac == "" {
			mac = "none"
		}
		sections = append(sections,
			"",
			v.infoLine("MAC", mac),
			v.infoLine("MTU", fmt.Sprintf("%d", iface.MTU)),
			v.infoLine("Flags", strings.Join(iface.Flags, ", ")),
			v.infoLine("Status", status),
		)
	}

	return v.styles.Box.Copy().
		MarginTop(1).
		Align(lipgloss.Left).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (v *BrowserView) infoLine(label, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		v.styles.Label.Render(label),
		"  ",
		v.styles.Text.Render(value),
	)
}

func (v *BrowserView) place(content string) string {
	if v.width == 0 || v.height == 0 {
		return content
	}
	return lipgloss.Place(
		v.width,
		v.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "es"
}
