package ui

import (
	"fmt"
	"intrack/internal/model"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

//////// InternshipList

/*

Shows the model's filtered view, one line per internship, numbered the way commands index them.

The widget registers itself as a listener on the view, so every mutation made through the model
redraws the list before the mutating call returns.

CTRL-Y - copy the highlighted internship to the clipboard
DEL    - delete the highlighted internship (after confirmation)

*/

type InternshipListWidget struct {
	*tview.Box
	items  *tview.List
	model  *model.ModelManager
	window *MainWindow
}

func NewInternshipListWidget(m *model.ModelManager) *InternshipListWidget {
	l := &InternshipListWidget{
		Box:   tview.NewBox().SetBorder(true),
		items: tview.NewList().ShowSecondaryText(false),
		model: m,
	}

	l.SetDrawFunc(l.list_draw)
	l.items.SetSelectedBackgroundColor(tview.Styles.ContrastBackgroundColor)
	l.items.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		if l.window != nil {
			l.window.ShowDetails(l.Current())
		}
	})

	m.FilteredInternshipList().AddListener(l.Refresh)
	l.Refresh()
	return l
}

// Refresh rebuilds the list lines from the model's view, keeping the highlight where it was if possible
func (l *InternshipListWidget) Refresh() {
	current := l.items.GetCurrentItem()
	l.items.Clear()
	view := l.model.FilteredInternshipList()
	for idx, i := range view.Items() {
		l.items.AddItem(fmt.Sprintf("%d. %s - %s [%s]", idx+1, i.Company, i.Role, i.Status), "", 0, nil)
	}
	if n := l.items.GetItemCount(); n > 0 {
		l.items.SetCurrentItem(min(current, n-1))
	}
	l.SetTitle(fmt.Sprintf(" internships - sorted by %s %s ", l.model.ComparatorPrefix(), l.model.ComparatorOrder()))
	if l.window != nil {
		l.window.ShowDetails(l.Current())
	}
}

// Current returns the highlighted internship, or the zero Internship when the list is empty
func (l *InternshipListWidget) Current() model.Internship {
	i, _ := l.model.FilteredInternshipList().Get(l.items.GetCurrentItem())
	return i
}

func (l *InternshipListWidget) Count() int { return l.items.GetItemCount() }

func (l *InternshipListWidget) SetWindow(w *MainWindow) { l.window = w }

func (l *InternshipListWidget) Focus(delegate func(p tview.Primitive)) {
	l.window.SetLastFocused(l)
	l.Box.Focus(delegate)
}

func (l *InternshipListWidget) Draw(screen tcell.Screen) {
	l.Box.DrawForSubclass(screen, l)
	x, y, width, height := l.GetInnerRect()
	l.items.SetRect(x, y, width, height)
	l.items.Draw(screen)
}

func (l *InternshipListWidget) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return l.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyCtrlY:
			if err := l.CopyCurrent(); err != nil {
				l.window.Error(err.Error())
			}
		case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
			if l.Count() > 0 {
				l.window.ShowModal("deleteinternshipmodal",
					fmt.Sprintf("Do you want to delete '%s - %s'?", l.Current().Company, l.Current().Role))
			}
		default:
			if handler := l.items.InputHandler(); handler != nil {
				handler(event, setFocus)
				return
			}
		}
	})
}

func (l *InternshipListWidget) CopyCurrent() error {
	if l.Count() == 0 {
		return nil
	}
	if err := clipboard.WriteAll(l.Current().String()); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

func (l *InternshipListWidget) DeleteCurrent() error {
	if l.Count() == 0 {
		return nil
	}
	return l.model.DeleteInternship(l.Current())
}

// additional draw function for the list that writes the active filter and the item count into the
// bottom border. Adheres to the requirement stated by tview.Box.SetDrawFunc()
func (l *InternshipListWidget) list_draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	innerx := x + 1
	innery := y + 1
	innerw := width - 2
	innerh := height - 2
	bottom_border := y + height - 1
	style := tcell.StyleDefault.
		Background(tview.Styles.PrimitiveBackgroundColor).
		Foreground(tview.Styles.PrimaryTextColor)

	// Show active filter (left-justified)
	if p := l.model.FilterParameter(); p != model.DefaultFilterMetadata {
		filterMsg := fmt.Sprintf(" filter %s%s ", p, l.model.FilterValue())
		col := x + 1
		for _, r := range filterMsg {
			screen.SetContent(col, bottom_border, r, nil, style)
			col++
		}
	}

	// Show item count (right-justified)
	tag := "item"
	if l.items.GetItemCount() != 1 {
		tag = "items"
	}
	msg := fmt.Sprintf(" %d %s ", l.items.GetItemCount(), tag)
	startx := x + width - len(msg) - 1 // align right
	for i, r := range msg {
		screen.SetContent(startx+i, bottom_border, r, nil, style)
	}
	return innerx, innery, innerw, innerh
}
