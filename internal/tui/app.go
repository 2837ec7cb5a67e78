// Package tui is the interactive menu shown when rosterkit runs with no
// subcommand. It follows the bubbletea Elm loop: the App model holds all
// state, Update reacts to messages, View renders the current screen.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/opshr/rosterkit/internal/config"
	"github.com/opshr/rosterkit/internal/domain/roster"
	"github.com/opshr/rosterkit/internal/render"
)

const dateLayout = "2006-01-02"

// appState represents which screen the menu is on.
type appState int

const (
	stateMenu appState = iota
	stateKeywordPrompt
	stateWithinPrompt
	stateReferencePrompt
	stateReport
)

type menuAction int

const (
	actionSummary menuAction = iota
	actionListAll
	actionListActive
	actionSearch
	actionProbation
	actionQuit
)

// menuItem implements list.Item for the main menu.
type menuItem struct {
	title  string
	desc   string
	action menuAction
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// App is the interactive menu model.
type App struct {
	state  appState
	svc    *roster.Service
	roster *roster.Roster
	cfg    config.Config
	styles render.Styles

	menu  list.Model
	input textinput.Model

	withinDays int
	report     string
	status     string

	width  int
	height int
}

// NewApp builds the menu over an already loaded roster.
func NewApp(svc *roster.Service, r *roster.Roster, cfg config.Config) *App {
	items := []list.Item{
		menuItem{"Summary", "Headline statistics for the whole roster", actionSummary},
		menuItem{"All staff", "Every employee in roster order", actionListAll},
		menuItem{"Active staff", "Employees without a resignation date", actionListActive},
		menuItem{"Search", "Find employees by name, team or title", actionSearch},
		menuItem{"Probation deadlines", "Upcoming probation end dates", actionProbation},
		menuItem{"Quit", "Leave the roster menu", actionQuit},
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Roster menu"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	input := textinput.New()
	input.CharLimit = 64

	return &App{
		state:      stateMenu,
		svc:        svc,
		roster:     r,
		cfg:        cfg,
		styles:     render.DefaultStyles(),
		menu:       menu,
		input:      input,
		withinDays: cfg.Probation.WithinDays,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(msg.Width, msg.Height-2)
		return a, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		switch a.state {
		case stateMenu:
			return a.updateMenu(msg)
		case stateKeywordPrompt:
			return a.updateKeywordPrompt(msg)
		case stateWithinPrompt:
			return a.updateWithinPrompt(msg)
		case stateReferencePrompt:
			return a.updateReferencePrompt(msg)
		case stateReport:
			return a.backToMenu()
		}
	}
	return a, nil
}

func (a *App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "enter":
		item, ok := a.menu.SelectedItem().(menuItem)
		if !ok {
			return a, nil
		}
		return a.runAction(item.action)
	}
	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

func (a *App) runAction(action menuAction) (tea.Model, tea.Cmd) {
	switch action {
	case actionSummary:
		a.report = render.Summary(a.svc.Summarize(a.roster, time.Time{}), a.styles)
		a.state = stateReport
	case actionListAll:
		a.showRecords(a.svc.List(a.roster, roster.ListOptions{}))
	case actionListActive:
		a.showRecords(a.svc.List(a.roster, roster.ListOptions{ActiveOnly: true}))
	case actionSearch:
		a.promptFor("keyword", stateKeywordPrompt)
	case actionProbation:
		a.promptFor(fmt.Sprintf("days ahead (blank for %d)", a.cfg.Probation.WithinDays), stateWithinPrompt)
	case actionQuit:
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) updateKeywordPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return a.backToMenu()
	case tea.KeyEnter:
		keyword := strings.TrimSpace(a.input.Value())
		if keyword == "" {
			a.status = "Keyword must not be empty."
			return a, nil
		}
		matches := a.svc.Search(a.roster, keyword)
		if len(matches) == 0 {
			a.report = fmt.Sprintf("No employees match %q.\n", keyword)
		} else {
			a.report = fmt.Sprintf("%d match(es)\n", len(matches)) + render.RecordTable(matches, a.styles)
		}
		a.state = stateReport
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) updateWithinPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return a.backToMenu()
	case tea.KeyEnter:
		raw := strings.TrimSpace(a.input.Value())
		within := a.cfg.Probation.WithinDays
		if raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				a.status = "Enter a non-negative number of days."
				return a, nil
			}
			within = n
		}
		a.withinDays = within
		a.promptFor("reference date YYYY-MM-DD (blank for today)", stateReferencePrompt)
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) updateReferencePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return a.backToMenu()
	case tea.KeyEnter:
		raw := strings.TrimSpace(a.input.Value())
		var ref time.Time
		if raw != "" {
			parsed, err := time.Parse(dateLayout, raw)
			if err != nil {
				a.status = "Enter the date as YYYY-MM-DD."
				return a, nil
			}
			ref = parsed
		}
		results, err := a.svc.ProbationEnding(a.roster, roster.ProbationOptions{
			WithinDays:    a.withinDays,
			ReferenceDate: ref,
		})
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		if len(results) == 0 {
			a.report = "No probation periods end within the window.\n"
		} else {
			shown := ref
			if shown.IsZero() {
				shown = time.Now()
			}
			a.report = render.Probation(results, shown, a.styles)
		}
		a.state = stateReport
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) showRecords(records []roster.Record) {
	if len(records) == 0 {
		a.report = "No employees to show.\n"
	} else {
		a.report = render.RecordTable(records, a.styles)
	}
	a.state = stateReport
}

func (a *App) promptFor(placeholder string, next appState) {
	a.input.SetValue("")
	a.input.Placeholder = placeholder
	a.input.Focus()
	a.status = ""
	a.state = next
}

func (a *App) backToMenu() (tea.Model, tea.Cmd) {
	a.input.Blur()
	a.report = ""
	a.status = ""
	a.state = stateMenu
	return a, nil
}

func (a *App) View() string {
	switch a.state {
	case stateMenu:
		return a.menu.View()
	case stateKeywordPrompt, stateWithinPrompt, stateReferencePrompt:
		view := a.input.View() + "\n"
		if a.status != "" {
			view += a.styles.Muted.Render(a.status) + "\n"
		}
		return view + a.styles.Muted.Render("enter to confirm, esc to go back")
	case stateReport:
		return a.report + "\n" + a.styles.Muted.Render("press any key to return to the menu")
	}
	return ""
}
