package hal

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		p       uint16
	}{
		{0xFF, 0, 0, 0xF800},
		{0, 0xFF, 0, 0x07E0},
		{0, 0, 0xFF, 0x001F},
		{0xFF, 0xFF, 0xFF, 0xFFFF},
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		if got := rgb565(c.r, c.g, c.b); got != c.p {
			t.Fatalf("rgb565(%d,%d,%d) = %#04x, want %#04x", c.r, c.g, c.b, got, c.p)
		}
		r, g, b := rgb888From565(c.p)
		if r != c.r || g != c.g || b != c.b {
			t.Fatalf("rgb888From565(%#04x) = %d,%d,%d", c.p, r, g, b)
		}
	}
}

func TestFill565(t *testing.T) {
	buf := make([]byte, 5)
	fill565(buf, 0xF800)
	want := []byte{0x00, 0xF8, 0x00, 0xF8, 0x00}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = % x, want % x", buf, want)
		}
	}
}
