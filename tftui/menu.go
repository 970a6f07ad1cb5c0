package tftui

import "drawbot/button"

// menuState is the cursor and scroll position of a list shown height rows
// at a time.
type menuState struct {
	active int
	first  int
	count  int
	height int
}

func newMenuState(count, height, active int) menuState {
	m := menuState{count: count, height: max(height, 1)}
	if count > 0 {
		m.active = min(max(active, 0), count-1)
	}
	if m.active >= m.height {
		m.first = m.active - m.height + 1
	}
	return m
}

// menuResult is what a button code did to the menu.
type menuResult int

const (
	menuMoved menuResult = iota
	menuSelected
	menuCanceled
)

func (m *menuState) apply(code button.Code) menuResult {
	switch code {
	case button.Up:
		if m.active > 0 {
			m.active--
			if m.active < m.first {
				m.first--
			}
		}
	case button.Down:
		if m.active < m.count-1 {
			m.active++
			if m.active >= m.first+m.height {
				m.first = m.active - m.height + 1
			}
		}
	case button.Up.Long():
		m.active, m.first = 0, 0
	case button.Down.Long():
		if m.count > 0 {
			m.active = m.count - 1
			m.first = max(m.count-m.height, 0)
		}
	case button.Center, button.Right:
		if m.count > 0 {
			return menuSelected
		}
	case button.Left, button.Left.Long():
		return menuCanceled
	}
	return menuMoved
}

// Menu shows title on the header line and items below it. UP and DOWN move
// the cursor, long UP and long DOWN jump to the ends, CENTER or RIGHT pick
// the active item and LEFT cancels. ok is false when canceled.
func (u *UI) Menu(title string, items []string, active int) (selected int, ok bool) {
	return u.MenuFunc(title, len(items), func(i int) string { return items[i] }, active)
}

// MenuFunc is Menu over count items labeled by label.
func (u *UI) MenuFunc(title string, count int, label func(int) string, active int) (int, bool) {
	m := newMenuState(count, u.lines-1, active)

	u.Cls("", 0)
	u.Center(title, 0, u.opts.Header)
	for {
		for row := 0; row < m.height; row++ {
			item := m.first + row
			if item >= count {
				break
			}
			s := u.opts.Normal
			if item == m.active {
				s = u.opts.Active
			}
			u.Writeln(label(item), 0, row+1, s)
		}

		switch m.apply(u.Read(0)) {
		case menuSelected:
			u.logf("menu %q: selected %d", title, m.active)
			return m.active, true
		case menuCanceled:
			u.logf("menu %q: canceled", title)
			return 0, false
		}
	}
}
