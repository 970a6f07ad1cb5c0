package tftui

import (
	"strings"

	"drawbot/button"
)

// Reserved keys in a layout row.
const (
	KeyBackspace = '\x1b'
	KeyAccept    = '\x7f'
)

// Layout is one keyboard page, a list of rows of keys.
type Layout []string

var (
	// Alnum pages through upper case, lower case, digits and symbols.
	Alnum = []Layout{
		{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM", "\x1b \x7f"},
		{"qwertyuiop", "asdfghjkl", "zxcvbnm", "\x1b \x7f"},
		{"!@#$%^&*()", "1234567890", `<>+-_=\?`, "\x1b \x7f"},
		{"+,-./:;", `<=>?@[\]`, "^_`{|}~", "\x1b \x7f"},
	}

	Numeric = []Layout{
		{"123", "456", "789", ".\x1b\x7f"},
	}
)

// keyboardTop is the first text line of the key grid.
const keyboardTop = 4

// keyboard is the cursor and text buffer of one Input call.
type keyboard struct {
	layouts []Layout
	layout  int
	row     int
	col     int
	text    []rune
	max     int
}

func newKeyboard(layouts []Layout, maxLen int, value string) *keyboard {
	return &keyboard{layouts: layouts, max: max(maxLen, 0), text: []rune(value)}
}

func (k *keyboard) rows() Layout { return k.layouts[k.layout] }

func (k *keyboard) keys(row int) []rune { return []rune(k.rows()[row]) }

func (k *keyboard) key() rune { return k.keys(k.row)[k.col] }

// move puts the cursor on row, col. Rows wrap. A column past the end of a
// shorter row lands on its last key; one step past the end wraps to zero.
func (k *keyboard) move(row, col int) {
	k.row = mod(row, len(k.rows()))
	n := len(k.keys(k.row))
	if col > n {
		col = n - 1
	}
	k.col = mod(col, n)
}

// cycle switches layout by dir pages, keeping the cursor in bounds.
func (k *keyboard) cycle(dir int) {
	k.layout = mod(k.layout+dir, len(k.layouts))
	k.move(k.row, k.col)
}

// press applies the key under the cursor. It reports whether it was the
// accept key and whether the text changed.
func (k *keyboard) press() (accept, changed bool) {
	switch c := k.key(); c {
	case KeyAccept:
		return true, false
	case KeyBackspace:
		if len(k.text) == 0 {
			return false, false
		}
		k.text = k.text[:len(k.text)-1]
	default:
		if len(k.text) >= k.max {
			return false, false
		}
		k.text = append(k.text, c)
	}
	return false, true
}

// Input edits value with an on-screen keyboard. The arrows move the key
// cursor, CENTER types the key, CHANGE or long DOWN shows the next layout and
// long UP the previous one. The accept key returns button.Center; ENTER
// returns immediately with its code. Typing stops at maxLen runes; a longer
// value is kept as given.
func (u *UI) Input(label string, maxLen int, value string, layouts []Layout, header string) (button.Code, string) {
	if len(layouts) == 0 {
		layouts = Alnum
	}
	k := newKeyboard(layouts, maxLen, value)
	u.drawKeyboard(k, label, header)

	blink := false
	for {
		u.drawKey(k, u.opts.Active)
		code := u.Read(u.opts.Blink)
		if code != button.None {
			u.drawKey(k, u.opts.Normal)
		}

		switch code {
		case button.Center:
			accept, changed := k.press()
			if accept {
				u.logf("input %q: accepted", label)
				return code, string(k.text)
			}
			if changed {
				u.drawValue(k)
			}
		case button.Up.Long():
			k.cycle(-1)
			u.drawKeyboard(k, label, header)
		case button.Down.Long(), button.Change:
			k.cycle(1)
			u.drawKeyboard(k, label, header)
		case button.Up:
			k.move(k.row-1, k.col)
		case button.Down:
			k.move(k.row+1, k.col)
		case button.Left:
			k.move(k.row, k.col-1)
		case button.Right:
			k.move(k.row, k.col+1)
		case button.Enter, button.Enter.Long():
			return code, string(k.text)
		}

		u.drawCursor(k, blink)
		blink = !blink
	}
}

func (u *UI) drawKeyboard(k *keyboard, label, header string) {
	u.Cls("", 0)
	if header != "" {
		u.Center(header, 0, u.opts.Header)
	}
	u.Writeln(label, 0, 1, u.opts.Normal)
	u.drawValue(k)

	for row := range k.rows() {
		u.Write(keyLabel(k.rows()[row]), u.keyColumn(k, row), keyboardTop+row, u.opts.Normal)
	}
}

func (u *UI) drawValue(k *keyboard) {
	u.Writeln(string(k.text), 0, 2, u.opts.Normal)
	u.Underline(0, 2, k.max, u.opts.Normal.FG)
}

func (u *UI) drawKey(k *keyboard, s Style) {
	u.Write(keyLabel(string(k.key())), u.keyColumn(k, k.row)+k.col, keyboardTop+k.row, s)
}

func (u *UI) drawCursor(k *keyboard, blink bool) {
	f := u.opts.Font
	c := u.opts.Normal.FG
	if blink {
		c = u.opts.Normal.BG
	}
	u.canvas.FillRect(len(k.text)*int(f.Width), 2*int(f.Height), int(f.Width), int(f.Height)-1, c)
}

// keyColumn centers a row of keys.
func (u *UI) keyColumn(k *keyboard, row int) int {
	return max((u.cols-len(k.keys(row)))/2, 0)
}

var keyLabels = strings.NewReplacer(string(KeyBackspace), "<", string(KeyAccept), ">")

// keyLabel makes the reserved keys printable.
func keyLabel(row string) string { return keyLabels.Replace(row) }
