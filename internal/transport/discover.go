package transport

import (
	"sort"
	"strings"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// stmVID is the USB vendor id of STMicroelectronics boards.
const stmVID = "0483"

var boardKeywords = []string{"stm", "st-link", "stlink", "nucleo", "virtual com"}

// Discover lists candidate ports, likeliest joystick board first.
func Discover() ([]string, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err == nil && len(details) > 0 {
		return rankPorts(details), nil
	}
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrNoPort
	}
	return names, nil
}

// rankPorts orders ports so boards that look like the joystick come first.
// Ties keep enumeration order.
func rankPorts(details []*enumerator.PortDetails) []string {
	ranked := make([]*enumerator.PortDetails, 0, len(details))
	for _, d := range details {
		if d != nil && d.Name != "" {
			ranked = append(ranked, d)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return looksLikeBoard(ranked[i]) && !looksLikeBoard(ranked[j])
	})
	names := make([]string, len(ranked))
	for i, d := range ranked {
		names[i] = d.Name
	}
	return names
}

func looksLikeBoard(d *enumerator.PortDetails) bool {
	if d.IsUSB && strings.EqualFold(d.VID, stmVID) {
		return true
	}
	product := strings.ToLower(d.Product)
	for _, kw := range boardKeywords {
		if strings.Contains(product, kw) {
			return true
		}
	}
	return false
}
