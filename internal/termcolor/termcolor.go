// Package termcolor handles the color encodings used on the terminal wire:
// 24-bit packed integers and OSC 4 style palette-set payloads.
package termcolor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// AsInt packs c into the 0xRRGGBB form used in escape sequences.
func AsInt(c colorful.Color) int {
	r, g, b := c.RGB255()
	return int(r)<<16 | int(g)<<8 | int(b)
}

// FromInt unpacks a 0xRRGGBB value.
func FromInt(v int) colorful.Color {
	return colorful.Color{
		R: float64((v>>16)&0xFF) / 255.0,
		G: float64((v>>8)&0xFF) / 255.0,
		B: float64(v&0xFF) / 255.0,
	}
}

// Entry is one palette assignment from a color-set payload. A nil Color is
// a query for the current value of the slot.
type Entry struct {
	Index int
	Color *colorful.Color
}

// ParseColorSet parses an OSC 4 payload of the form
// "index;spec;index;spec;...". Specs are hex colors ("#rgb", "#rrggbb"),
// X11 "rgb:RR/GG/BB" triples, or "?" to query a slot. Malformed pairs are
// skipped rather than failing the whole payload; an odd number of fields
// discards it entirely.
func ParseColorSet(raw string) []Entry {
	parts := strings.Split(raw, ";")
	if len(parts)%2 != 0 {
		return nil
	}
	var entries []Entry
	for i := 0; i < len(parts); i += 2 {
		idx, err := strconv.Atoi(parts[i])
		if err != nil || idx < 0 || idx > 255 {
			continue
		}
		spec := parts[i+1]
		if spec == "?" {
			entries = append(entries, Entry{Index: idx})
			continue
		}
		c, err := ParseSpec(spec)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Index: idx, Color: &c})
	}
	return entries
}

// ParseSpec parses a single color spec in hex or X11 rgb: notation.
func ParseSpec(spec string) (colorful.Color, error) {
	if strings.HasPrefix(spec, "rgb:") {
		return parseX11RGB(spec[len("rgb:"):])
	}
	if strings.HasPrefix(spec, "#") {
		return colorful.Hex(spec)
	}
	return colorful.Color{}, fmt.Errorf("unrecognized color spec %q", spec)
}

// parseX11RGB handles "RR/GG/BB" with 1 to 4 hex digits per channel, scaling
// each channel to 8 bits the way xlib does.
func parseX11RGB(s string) (colorful.Color, error) {
	chans := strings.Split(s, "/")
	if len(chans) != 3 {
		return colorful.Color{}, fmt.Errorf("rgb: spec needs 3 channels, got %d", len(chans))
	}
	var vals [3]float64
	for i, ch := range chans {
		if len(ch) < 1 || len(ch) > 4 {
			return colorful.Color{}, fmt.Errorf("rgb: channel %q out of range", ch)
		}
		v, err := strconv.ParseUint(ch, 16, 16)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("rgb: channel %q: %w", ch, err)
		}
		max := uint64(1)<<(4*uint(len(ch))) - 1
		vals[i] = float64(v) / float64(max)
	}
	return colorful.Color{R: vals[0], G: vals[1], B: vals[2]}, nil
}
