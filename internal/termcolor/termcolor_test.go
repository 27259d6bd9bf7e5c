package termcolor

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestIntRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    int
	}{
		{name: "black", v: 0x000000},
		{name: "white", v: 0xFFFFFF},
		{name: "red", v: 0xFF0000},
		{name: "arbitrary", v: 0x1A2B3C},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AsInt(FromInt(tt.v)); got != tt.v {
				t.Errorf("AsInt(FromInt(%#06x)) = %#06x", tt.v, got)
			}
		})
	}
}

func TestAsInt(t *testing.T) {
	c := colorful.Color{R: 1, G: 0, B: 0}
	if got := AsInt(c); got != 0xFF0000 {
		t.Errorf("AsInt(red) = %#06x, want 0xFF0000", got)
	}
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    int
		wantErr bool
	}{
		{name: "long hex", spec: "#ff8000", want: 0xFF8000},
		{name: "short hex", spec: "#f80", want: 0xFF8800},
		{name: "x11 two digit channels", spec: "rgb:ff/80/00", want: 0xFF8000},
		{name: "x11 one digit channels", spec: "rgb:f/8/0", want: 0xFF8800},
		{name: "x11 four digit channels", spec: "rgb:ffff/8080/0000", want: 0xFF8000},
		{name: "missing channel", spec: "rgb:ff/80", wantErr: true},
		{name: "junk channel", spec: "rgb:zz/00/00", wantErr: true},
		{name: "bare word", spec: "tomato", wantErr: true},
		{name: "empty", spec: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseSpec(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSpec(%q) succeeded, want error", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSpec(%q) failed: %v", tt.spec, err)
			}
			if got := AsInt(c); got != tt.want {
				t.Errorf("ParseSpec(%q) = %#06x, want %#06x", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseColorSet(t *testing.T) {
	entries := ParseColorSet("0;#ff0000;255;?;300;#00ff00;1;garbage;2;rgb:00/00/ff")
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(entries), entries)
	}

	if entries[0].Index != 0 || entries[0].Color == nil || AsInt(*entries[0].Color) != 0xFF0000 {
		t.Errorf("entry 0 = %+v, want index 0 set to 0xFF0000", entries[0])
	}
	if entries[1].Index != 255 || entries[1].Color != nil {
		t.Errorf("entry 1 = %+v, want index 255 query", entries[1])
	}
	if entries[2].Index != 2 || entries[2].Color == nil || AsInt(*entries[2].Color) != 0x0000FF {
		t.Errorf("entry 2 = %+v, want index 2 set to 0x0000FF", entries[2])
	}
}

func TestParseColorSetOddFieldCount(t *testing.T) {
	if got := ParseColorSet("0;#ff0000;1"); got != nil {
		t.Errorf("odd field count should discard the payload, got %+v", got)
	}
}
