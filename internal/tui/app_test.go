package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/opshr/rosterkit/internal/config"
	"github.com/opshr/rosterkit/internal/domain/roster"
)

func newTestApp(records []roster.Record) *App {
	cfg := config.Config{
		Probation: config.ProbationConfig{WithinDays: 30},
	}
	return NewApp(roster.NewService(nil), roster.New(records), cfg)
}

func testRecords() []roster.Record {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	probation := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	resigned := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []roster.Record{
		{EmployeeID: "E001", Name: "Mina Park", Team: "GURM", Title: "Analyst", StartDate: &start, ProbationEnd: &probation, EmploymentStatus: "employed"},
		{EmployeeID: "E002", Name: "Jae Lee", Team: "Ops", ResignationDate: &resigned, EmploymentStatus: "resigned"},
	}
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestNewApp_StartsOnMenu(t *testing.T) {
	app := newTestApp(testRecords())
	require.Equal(t, stateMenu, app.state)
	require.Equal(t, 30, app.withinDays)
}

func TestSummaryAction(t *testing.T) {
	app := newTestApp(testRecords())
	model, _ := app.runAction(actionSummary)
	app = model.(*App)

	require.Equal(t, stateReport, app.state)
	require.Contains(t, app.report, "Total headcount:  2")
	require.Contains(t, app.report, "Active headcount: 1")
}

func TestListActive_EmptyRoster(t *testing.T) {
	app := newTestApp(nil)
	model, _ := app.runAction(actionListActive)
	app = model.(*App)

	require.Equal(t, stateReport, app.state)
	require.Contains(t, app.report, "No employees to show.")
}

func TestSearchFlow(t *testing.T) {
	app := newTestApp(testRecords())
	model, _ := app.runAction(actionSearch)
	app = model.(*App)
	require.Equal(t, stateKeywordPrompt, app.state)

	// Blank keyword is rejected and the prompt stays up.
	model, _ = app.Update(enterKey())
	app = model.(*App)
	require.Equal(t, stateKeywordPrompt, app.state)
	require.Equal(t, "Keyword must not be empty.", app.status)

	app.input.SetValue("mina")
	model, _ = app.Update(enterKey())
	app = model.(*App)
	require.Equal(t, stateReport, app.state)
	require.Contains(t, app.report, "1 match(es)")
	require.Contains(t, app.report, "Mina Park")
}

func TestProbationFlow(t *testing.T) {
	app := newTestApp(testRecords())
	model, _ := app.runAction(actionProbation)
	app = model.(*App)
	require.Equal(t, stateWithinPrompt, app.state)

	app.input.SetValue("-5")
	model, _ = app.Update(enterKey())
	app = model.(*App)
	require.Equal(t, stateWithinPrompt, app.state)
	require.NotEmpty(t, app.status)

	app.input.SetValue("30")
	model, _ = app.Update(enterKey())
	app = model.(*App)
	require.Equal(t, stateReferencePrompt, app.state)
	require.Equal(t, 30, app.withinDays)

	app.input.SetValue("not-a-date")
	model, _ = app.Update(enterKey())
	app = model.(*App)
	require.Equal(t, stateReferencePrompt, app.state)
	require.NotEmpty(t, app.status)

	app.input.SetValue("2026-08-25")
	model, _ = app.Update(enterKey())
	app = model.(*App)
	require.Equal(t, stateReport, app.state)
	require.Contains(t, app.report, "Mina Park")
	require.Contains(t, app.report, "D-10")
}

func TestReportReturnsToMenu(t *testing.T) {
	app := newTestApp(testRecords())
	model, _ := app.runAction(actionSummary)
	app = model.(*App)
	require.Equal(t, stateReport, app.state)

	model, _ = app.Update(enterKey())
	app = model.(*App)
	require.Equal(t, stateMenu, app.state)
	require.Empty(t, app.report)
}

func TestQuit(t *testing.T) {
	app := newTestApp(nil)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}
