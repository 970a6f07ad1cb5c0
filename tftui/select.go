package tftui

import "drawbot/button"

// Select lets the user cycle through options shown left to right from col
// on line, one cell apart. LEFT and RIGHT wrap around. UP, DOWN or CENTER
// end the selection and are returned with the chosen index.
func (u *UI) Select(col, line int, options []string, value int) (button.Code, int) {
	n := len(options)
	if n == 0 {
		return button.None, value
	}
	value = mod(value, n)

	for {
		u.drawOptions(col, line, options, value, u.opts.Active)

		code := u.Read(0)
		switch code {
		case button.Left:
			value = mod(value-1, n)
		case button.Right:
			value = mod(value+1, n)
		case button.Up, button.Down, button.Center:
			return code, value
		}
	}
}

func (u *UI) drawOptions(col, line int, options []string, value int, selected Style) {
	x := col
	for i, opt := range options {
		s := u.opts.Normal
		if i == value {
			s = selected
		}
		u.Write(opt, x, line, s)
		x += len([]rune(opt)) + 1
	}
}
