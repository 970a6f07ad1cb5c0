package tftui

import (
	"strconv"

	"drawbot/button"
)

// Kind selects how a form field is drawn and edited.
type Kind int

const (
	// Header is Text centered on Line in the header style.
	Header Kind = iota
	// CenterText is Text centered on Line.
	CenterText
	// StaticText is Text at Col, Line.
	StaticText
	// StringInput edits Text with the Alnum keyboard.
	StringInput
	// IntInput edits Int with the Numeric keyboard.
	IntInput
	// Selection picks Value from Options.
	Selection
	// Confirm is a Selection that is live while focused. Choosing an option
	// with CENTER ends the form.
	Confirm
)

var kindNames = [...]string{"header", "center", "text", "string", "int", "select", "confirm"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Field is one row of a form. Which members matter depends on Kind.
type Field struct {
	Kind Kind

	// Label is drawn at LabelCol, LabelLine for input and selection fields.
	// Selections without a label draw only their options.
	Label     string
	LabelCol  int
	LabelLine int

	// Col and Line place the value.
	Col  int
	Line int

	// MaxLen bounds the text of input fields.
	MaxLen int

	// Text is the displayed text, or the value of a StringInput.
	Text string
	Int  int

	Options []string
	Value   int
}

// Focusable reports whether the field takes part in focus traversal.
func (f *Field) Focusable() bool {
	switch f.Kind {
	case Header, CenterText, StaticText:
		return false
	}
	return true
}

// Form draws fields and lets the user edit them in place. UP and DOWN move
// the focus and CENTER edits the focused field. The form ends when an edit
// or the navigation returns ENTER, or when a Confirm field is chosen with
// CENTER. It returns the ending code and the field that had focus, which is
// nil for a form without focusable fields.
func (u *UI) Form(fields []Field) (button.Code, *Field) {
	var header string
	var focus []int
	for i := range fields {
		f := &fields[i]
		if f.Kind == Header && header == "" {
			header = f.Text
		}
		if f.Focusable() {
			focus = append(focus, i)
		}
	}

	if len(focus) == 0 {
		u.layoutForm(fields, -1)
		return button.None, nil
	}

	current := 0
	for {
		f := &fields[focus[current]]
		u.layoutForm(fields, focus[current])

		var code button.Code
		if f.Kind == Confirm {
			code = u.editField(f, header)
			if code == button.Center {
				u.logf("form: confirmed %q", f.Options[f.Value])
				return code, f
			}
			if code == button.None {
				code = u.Read(0)
			}
		} else {
			code = u.Read(0)
			if code == button.Center {
				code = u.editField(f, header)
			}
		}

		switch code {
		case button.Up:
			current = mod(current-1, len(focus))
		case button.Down:
			current = mod(current+1, len(focus))
		case button.Enter, button.Enter.Long():
			u.logf("form: ended by %s", code)
			return code, f
		}
	}
}

func (u *UI) layoutForm(fields []Field, focused int) {
	u.Cls("", 0)
	for i := range fields {
		u.layoutField(&fields[i], i == focused)
	}
}

// layoutField draws the resting state of f and reports whether it is
// focusable.
func (u *UI) layoutField(f *Field, focused bool) bool {
	s := u.opts.Normal
	if focused {
		s = u.opts.Active
	}

	switch f.Kind {
	case Header:
		u.Center(f.Text, f.Line, u.opts.Header)
	case CenterText:
		u.Center(f.Text, f.Line, u.opts.Normal)
	case StaticText:
		u.Write(f.Text, f.Col, f.Line, u.opts.Normal)
	case StringInput, IntInput:
		value := f.Text
		if f.Kind == IntInput {
			value = strconv.Itoa(f.Int)
		}
		u.Write(f.Label, f.LabelCol, f.LabelLine, u.opts.Normal)
		u.Write(pad(value, f.MaxLen), f.Col, f.Line, s)
		u.Underline(f.Col, f.Line, f.MaxLen, u.opts.Normal.FG)
	case Selection, Confirm:
		if f.Label != "" {
			u.Write(f.Label, f.LabelCol, f.LabelLine, s)
		}
		u.drawOptions(f.Col, f.Line, f.Options, f.Value, u.opts.Normal.Inverse())
	}
	return f.Focusable()
}

// editField runs the interaction for f, stores the new value and returns the
// code that ended it.
func (u *UI) editField(f *Field, header string) button.Code {
	switch f.Kind {
	case StringInput:
		code, text := u.Input(f.Label, f.MaxLen, f.Text, Alnum, header)
		f.Text = text
		return code
	case IntInput:
		code, text := u.Input(f.Label, f.MaxLen, strconv.Itoa(f.Int), Numeric, header)
		n, err := strconv.Atoi(text)
		if err != nil {
			u.logf("form: %s: keeping %d: %v", f.Label, f.Int, err)
			return code
		}
		f.Int = n
		return code
	case Selection, Confirm:
		if f.Label != "" {
			u.Write(f.Label, f.LabelCol, f.LabelLine, u.opts.Normal)
		}
		code, v := u.Select(f.Col, f.Line, f.Options, f.Value)
		f.Value = v
		return code
	}
	return button.None
}
