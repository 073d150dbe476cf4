package ui

import (
	"fmt"
	"intrack/internal/command"
	"intrack/internal/data"
	"intrack/internal/model"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
)

// Override the global Styles fields for the colors we want
func setStyles() {
	tview.Styles.PrimitiveBackgroundColor = tcell.ColorBlack
	tview.Styles.ContrastBackgroundColor = tcell.ColorTeal
	tview.Styles.MoreContrastBackgroundColor = tcell.ColorYellow
	tview.Styles.BorderColor = tcell.ColorWhite
	tview.Styles.TitleColor = tcell.ColorYellow
	tview.Styles.GraphicsColor = tcell.ColorWhite
	tview.Styles.PrimaryTextColor = tcell.ColorWhite
	tview.Styles.SecondaryTextColor = tcell.ColorGreen
	tview.Styles.TertiaryTextColor = tcell.ColorYellow
	tview.Styles.InverseTextColor = tcell.ColorBlue
	tview.Styles.ContrastSecondaryTextColor = tcell.ColorNavy
}

type MainWindow struct {
	*tview.Application
	mainView     *tview.Grid
	last_focused tview.Primitive
	pages        *tview.Pages
	listwidget   *InternshipListWidget
	details      *tview.TextView
	feedback     *tview.TextView
	inputField   *tview.InputField
	modals       map[string]*tview.Modal
	model        *model.ModelManager
	store        data.Store
	log          zerolog.Logger
}

func (m *MainWindow) createModals() {

	m.modals["errormodal"] = tview.NewModal().
		SetText("Error!").
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			m.closeModal()
		})

	m.modals["deleteinternshipmodal"] = tview.NewModal().
		AddButtons([]string{"Delete", "Cancel"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			m.closeModal()
			if buttonIndex == 0 {
				if err := m.listwidget.DeleteCurrent(); err != nil {
					m.Error(err.Error())
					return
				}
				m.Save()
			}
		})
}

func NewMainWindow(mm *model.ModelManager, s data.Store, log zerolog.Logger) *MainWindow {

	setStyles()

	m := &MainWindow{
		Application: tview.NewApplication(),
		pages:       tview.NewPages(),
		listwidget:  NewInternshipListWidget(mm),
		details:     tview.NewTextView().SetWrap(true).SetWordWrap(true),
		feedback:    tview.NewTextView(),
		inputField:  tview.NewInputField(),
		model:       mm,
		store:       s,
		log:         log,
	}

	m.modals = make(map[string]*tview.Modal)
	m.createModals()

	m.listwidget.SetWindow(m)
	m.listwidget.SetTitleAlign(tview.AlignLeft)
	m.details.SetBorder(true).SetTitle(" details ").SetTitleAlign(tview.AlignLeft)

	m.inputField.SetLabel("> ").
		SetFieldBackgroundColor(tview.Styles.PrimitiveBackgroundColor).
		SetDoneFunc(func(key tcell.Key) {
			switch key {
			case tcell.KeyEnter:
				m.RunCommand(m.inputField.GetText())
			case tcell.KeyESC:
				m.inputField.SetText("")
				m.SetFocus(m.listwidget)
			}
		})

	listWidth := max(mm.GuiSettings().ListWidth, 1)
	m.mainView = tview.NewGrid().
		SetRows(0, 1, 1).
		AddItem(m.listwidget, 0, 0, 1, listWidth, 0, 0, false).
		AddItem(m.details, 0, listWidth, 1, 2, 0, 0, false).
		AddItem(m.feedback, 1, 0, 1, listWidth+2, 0, 0, false).
		AddItem(m.inputField, 2, 0, 1, listWidth+2, 0, 0, false)

	m.pages.AddPage("mainview", m.mainView, true, true)

	m.SetInputCapture(m.HandleEvent)
	m.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		m.recordScreenSize(screen.Size())
		return false
	})

	m.SetRoot(m.pages, true).EnableMouse(true).EnablePaste(true).SetFocus(m.inputField)

	m.ShowDetails(m.listwidget.Current())
	return m
}

func (m *MainWindow) HandleEvent(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlC: // override default tview where CTRL-C quits app
		return tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)
	case tcell.KeyCtrlQ:
		m.Save()
		m.Stop()
		return nil
	case tcell.KeyESC:
		name, _ := m.pages.GetFrontPage()
		if name == "modal" {
			// Pass along if a modal is open (it should close the modal)
			return event
		}
	case tcell.KeyTAB:
		if m.GetFocus() == m.inputField {
			m.SetFocus(m.listwidget)
		} else {
			m.SetFocus(m.inputField)
		}
		return nil
	}

	return event
}

// RunCommand parses and executes one command line. Errors go to the error modal; successful
// commands are saved right away.
func (m *MainWindow) RunCommand(text string) {
	cmd, err := command.Parse(text)
	if err != nil {
		m.Error(err.Error())
		return
	}
	result, err := cmd.Execute(m.model)
	if err != nil {
		m.log.Info().Err(err).Str("command", text).Msg("command failed")
		m.Error(err.Error())
		return
	}
	m.inputField.SetText("")
	m.feedback.SetText(result.Feedback)
	m.Save()
	if result.Exit {
		m.Stop()
	}
}

// Save writes the internships and the current sort/filter description to the store
func (m *MainWindow) Save() {
	if m.store == nil {
		return
	}
	if err := m.store.SaveInternships(m.model.InternshipBook()); err != nil {
		m.log.Error().Err(err).Msg("saving internships")
		m.Error(fmt.Sprintf("Could not save internships: %s", err))
		return
	}
	err := m.store.SaveLastView(data.ViewMetadata{
		SortPrefix:      m.model.ComparatorPrefix(),
		SortOrder:       m.model.ComparatorOrder(),
		FilterParameter: m.model.FilterParameter(),
		FilterValue:     m.model.FilterValue(),
	})
	if err != nil {
		m.log.Error().Err(err).Msg("saving view")
	}
}

// recordScreenSize keeps the terminal size in the GUI settings, which are saved on exit.
// A terminal cannot report its window position, so X and Y are left as loaded.
func (m *MainWindow) recordScreenSize(width, height int) {
	g := m.model.GuiSettings()
	if g.WindowWidth == width && g.WindowHeight == height {
		return
	}
	g.WindowWidth, g.WindowHeight = width, height
	m.model.SetGuiSettings(g)
}

func (m *MainWindow) ShowDetails(i model.Internship) {
	if i.IsZero() {
		m.details.SetText("No internships to show. Try: add c/COMPANY r/ROLE")
		return
	}
	text := fmt.Sprintf("Company:  %s\nRole:     %s\nStatus:   %s\nLocation: %s\nDeadline: %s\n\n%s",
		i.Company, i.Role, i.Status, i.Location, i.DeadlineString(), i.Remark)
	m.details.SetText(text)
}

func (m *MainWindow) Error(text string) { m.ShowModal("errormodal", text) }

func (m *MainWindow) ListWidget() *InternshipListWidget { return m.listwidget }

func (m *MainWindow) ShowModal(name string, text string) {
	modal := m.modals[name]
	if modal != nil {
		if text != "" {
			modal.SetText(text)
		}
		m.pages.AddPage("modal", modal, false, true)
		m.pages.ShowPage("modal")
		m.EnableMouse(false)
	}
}

func (m *MainWindow) SetLastFocused(p tview.Primitive) { m.last_focused = p }
func (m *MainWindow) GetLastFocused() tview.Primitive  { return m.last_focused }

func (m *MainWindow) closeModal() {
	m.pages.RemovePage("modal")
	m.EnableMouse(true)
	if m.last_focused != nil {
		m.SetFocus(m.last_focused)
	} else {
		m.SetFocus(m.inputField)
	}
}
