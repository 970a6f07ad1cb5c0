package app

import (
	"fmt"
	"math"
	"strconv"

	"drawbot/button"
	"drawbot/config"
	"drawbot/internal/buildinfo"
	"drawbot/tftui"
	"drawbot/vectorfont"
)

const defaultMessage = "Hello!"

var numbers = []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}

func (a *App) pickNumber() {
	option := 0
	for {
		i, ok := a.ui.Menu("Pick a Number", numbers, option)
		if !ok {
			return
		}
		option = i
		a.ui.Cls("You Picked:", 2)
		a.ui.Center(numbers[i], 3, a.ui.Options().Normal)
		a.pressToContinue()
	}
}

func (a *App) writeMessage() {
	fonts := a.fontNames()
	if len(fonts) == 0 {
		a.notice("No fonts found")
		return
	}

	message := a.store.Get(config.KeyMessage)
	if message == "" {
		message = defaultMessage
	}
	scale, err := strconv.Atoi(a.store.Get(config.KeyScale))
	if err != nil || scale < 1 || scale > 3 {
		scale = 1
	}

	form := []tftui.Field{
		{Kind: tftui.Header, Text: "Write A Message"},
		{Kind: tftui.StringInput, Label: "Message:", LabelLine: 2, Line: 3, MaxLen: 16, Text: message},
		{Kind: tftui.Selection, Label: "Scale:", LabelLine: 5, Col: 6, Line: 5, Options: []string{"1", "2", "3"}, Value: scale - 1},
		{Kind: tftui.Confirm, Line: a.ui.Lines() - 1, Options: []string{"Next", "Cancel"}},
	}

	for {
		code, f := a.ui.Form(form)
		if code != button.Center || f == nil || f.Value != 0 {
			return
		}
		message = form[1].Text
		scale = form[2].Value + 1
		a.put(config.KeyMessage, message)
		a.put(config.KeyScale, strconv.Itoa(scale))

		font, ok := a.ui.Menu("Choose A Font", fonts, indexOf(fonts, a.store.Get(config.KeyFont)))
		if !ok {
			continue
		}
		if a.preview(fonts, font, message, scale) {
			return
		}
	}
}

// preview shows message in each font until Back or Quit is chosen. UP and
// DOWN change the font. It reports whether Quit was chosen.
func (a *App) preview(fonts []string, font int, message string, scale int) bool {
	for {
		a.put(config.KeyFont, fonts[font])
		a.ui.Cls(fonts[font], 0)
		a.drawCentered(fonts[font], message, scale)

		code, choice := a.ui.Select(0, a.ui.Lines()-1, []string{"Back", "Quit"}, 0)
		switch code {
		case button.Center:
			return choice == 1
		case button.Up:
			font = (font - 1 + len(fonts)) % len(fonts)
		case button.Down:
			font = (font + 1) % len(fonts)
		}
	}
}

func (a *App) showFonts() {
	fonts := a.fontNames()
	if len(fonts) == 0 {
		a.notice("No fonts found")
		return
	}

	current := 0
	last := a.ui.Lines() - 1
	for {
		a.ui.Cls(fonts[current], 0)
		a.drawCentered(fonts[current], defaultMessage, 1)
		a.ui.Center("Up-Prev Dn-Next", last-1, a.ui.Options().Normal)
		a.ui.Center("other-exit", last, a.ui.Options().Normal)

		switch a.ui.Read(0) {
		case button.Up:
			current = (current - 1 + len(fonts)) % len(fonts)
		case button.Down:
			current = (current + 1) % len(fonts)
		default:
			return
		}
	}
}

// drawCentered draws message in the named font centered on the screen.
func (a *App) drawCentered(name, message string, scale int) {
	f, err := a.openFont(name)
	if err == nil {
		var w int
		if w, err = a.ui.Size(f, message, scale); err == nil {
			err = a.ui.Draw(f, message, a.ui.Width()/2-w/2, a.ui.Height()/2, scale, a.ui.Options().Normal.FG)
		}
	}
	if err != nil {
		a.logf("app: font %s: %v", name, err)
		a.ui.Center("Bad font", a.ui.Lines()/2, a.ui.Options().Normal)
	}
}

func (a *App) drawStar() {
	form := []tftui.Field{
		{Kind: tftui.Header, Text: "Draw A Star"},
		{Kind: tftui.IntInput, Label: "Points:", LabelLine: 2, Col: 8, Line: 2, MaxLen: 2, Int: 5},
		{Kind: tftui.IntInput, Label: "Length:", LabelLine: 4, Col: 8, Line: 4, MaxLen: 2, Int: 20},
		{Kind: tftui.Confirm, Line: a.ui.Lines() - 1, Options: []string{"Next", "Cancel"}},
	}

	for {
		code, f := a.ui.Form(form)
		if code != button.Center || f == nil || f.Value != 0 {
			return
		}
		points, length := form[1].Int, form[2].Int
		if points < 2 || length < 1 {
			a.notice("Points must be", "at least 2")
			continue
		}

		a.ui.Cls("", 0)
		a.ui.Center(fmt.Sprintf("%d points", points), 0, a.ui.Options().Header)
		a.strokeStar(points, length)
		a.pressToContinue()
		return
	}
}

// strokeStar traces the turtle path of a star and draws it centered.
func (a *App) strokeStar(points, length int) {
	angle := 180.0 - 180.0/float64(points)
	path := make([][2]float64, 0, 2*points+1)
	x, y, heading := 0.0, 0.0, 0.0
	path = append(path, [2]float64{x, y})
	forward := func() {
		rad := heading * math.Pi / 180
		x += float64(length) * math.Cos(rad)
		y -= float64(length) * math.Sin(rad)
		path = append(path, [2]float64{x, y})
	}
	for i := 0; i < points; i++ {
		forward()
		heading += angle
		forward()
	}

	minX, minY, maxX, maxY := path[0][0], path[0][1], path[0][0], path[0][1]
	for _, p := range path {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	dx := float64(a.ui.Width())/2 - (minX+maxX)/2
	dy := float64(a.ui.Height())/2 - (minY+maxY)/2

	c := a.ui.Canvas()
	fg := a.ui.Options().Normal.FG
	for i := 1; i < len(path); i++ {
		p, q := path[i-1], path[i]
		c.Line(int16(math.Round(p[0]+dx)), int16(math.Round(p[1]+dy)), int16(math.Round(q[0]+dx)), int16(math.Round(q[1]+dy)), fg)
	}
}

// apSettings edits the access point name and password. Wi-Fi itself is
// not driven from here.
func (a *App) apSettings() {
	form := []tftui.Field{
		{Kind: tftui.Header, Text: "Access Point"},
		{Kind: tftui.StringInput, Label: "AP Name:", LabelLine: 1, Line: 2, MaxLen: 16, Text: a.store.Get(config.KeyAPName)},
		{Kind: tftui.StringInput, Label: "Password:", LabelLine: 4, Line: 5, MaxLen: 16, Text: a.store.Get(config.KeyAPPass)},
		{Kind: tftui.Confirm, Line: a.ui.Lines() - 1, Options: []string{"Save", "Cancel"}},
	}

	for {
		code, f := a.ui.Form(form)
		if code != button.Center || f == nil || f.Value != 0 {
			return
		}
		name, pass := form[1].Text, form[2].Text
		if n := len(pass); n > 0 && n < 8 {
			a.notice("Password must", "be at least 8")
			continue
		}
		a.put(config.KeyAPName, name)
		a.put(config.KeyAPPass, pass)
		a.notice("Saved", name)
		return
	}
}

func (a *App) resetConfig() {
	a.ui.Cls("Reset", 2)
	a.ui.Center("Config?", 3, a.ui.Options().Normal)

	code, choice := a.ui.Select(0, a.ui.Lines()-1, []string{"Reset", "Cancel"}, 0)
	if code != button.Center || choice != 0 {
		a.notice("Canceled")
		return
	}
	if err := a.store.Reset(config.Defaults()); err != nil {
		a.logf("app: reset config: %v", err)
		a.notice("Reset failed")
		return
	}
	a.notice("Resetting")
}

func (a *App) systemInfo() {
	s := a.ui.Options().Normal
	a.ui.Cls("", 0)
	a.ui.Center("System Info", 0, a.ui.Options().Header)
	a.ui.Center("Version "+buildinfo.Short(), 1, s)

	var size uint32
	if fl := a.h.Flash(); fl != nil {
		size = fl.SizeBytes()
	}
	a.ui.Center("Flash Size", 3, s)
	a.ui.Center(commas(uint64(size)), 4, s)
	a.ui.Center(fmt.Sprintf("%d settings, %d fonts", len(a.store.Keys()), len(a.fontNames())), 6, s)
	a.pressToContinue()
}

func (a *App) put(key, value string) {
	if err := a.store.Put(key, value); err != nil {
		a.logf("app: save %s: %v", key, err)
	}
}

func (a *App) fontNames() []string {
	if a.fonts == nil {
		return nil
	}
	names, err := vectorfont.List(a.fonts, a.dir)
	if err != nil {
		a.logf("app: %v", err)
		return nil
	}
	return names
}

func (a *App) openFont(name string) (*vectorfont.Font, error) {
	return vectorfont.Open(a.fonts, joinPath(a.dir, name))
}

func joinPath(dir, name string) string {
	if dir == "" || dir == "." {
		return name
	}
	return dir + "/" + name
}

func indexOf(items []string, s string) int {
	for i, v := range items {
		if v == s {
			return i
		}
	}
	return 0
}

// commas formats n with thousands separators.
func commas(n uint64) string {
	s := strconv.FormatUint(n, 10)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}
