package tui

import (
	"context"
	"fmt"
	"strings"

	"stocksight/internal/dashboard/dto"
	"stocksight/internal/dashboard/service"
	"stocksight/internal/dashboard/view"
	"stocksight/pkg/logger"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tab int

const (
	tabHome tab = iota
	tabPredict
	tabHistory
	tabCompare
	tabNews
	tabCount
)

var tabNames = [tabCount]string{"Home", "Prediction", "Historical", "Compare", "News"}

var emptyHints = [tabCount]string{
	"Enter a stock symbol (e.g. AAPL) and press enter.",
	"Enter a stock symbol to generate a prediction.",
	"Enter a stock symbol, pick a range with ctrl+t and press enter.",
	"Enter two stock symbols to compare them.",
	"Enter a stock symbol to see related news.",
}

// Styles.
var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 1)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

const chromeHeight = 4 // tabs, inputs, blank line, footer

// submittedMsg reports that a page request resolved.
type submittedMsg struct {
	tab tab
	err error
}

// exportedMsg reports the outcome of a CSV export.
type exportedMsg struct {
	path string
	err  error
}

// Model is the interactive dashboard.
type Model struct {
	ctx       context.Context
	pages     *service.Dashboard
	log       *logger.Logger
	exportDir string

	tab          tab
	inputs       [tabCount]textinput.Model
	compareInput textinput.Model
	compareFocus int
	rng          dto.Range
	selected     int // selected recent card, -1 for none
	inflight     [tabCount]int

	spinner  spinner.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	status   string
}

// New creates the dashboard model. ctx bounds every request it issues.
func New(ctx context.Context, pages *service.Dashboard, defaultRange dto.Range, exportDir string, log *logger.Logger) Model {
	m := Model{
		ctx:          ctx,
		pages:        pages,
		log:          log,
		exportDir:    exportDir,
		rng:          defaultRange,
		selected:     -1,
		spinner:      view.NewLoadingSpinner(),
		compareInput: newSymbolInput("Symbol 2: "),
	}
	for i := range m.inputs {
		prompt := "Symbol: "
		if tab(i) == tabCompare {
			prompt = "Symbol 1: "
		}
		m.inputs[i] = newSymbolInput(prompt)
	}
	m.inputs[tabHome].Focus()
	return m
}

func newSymbolInput(prompt string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "AAPL"
	ti.CharLimit = 12
	ti.Width = 14
	return ti
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case submittedMsg:
		if m.inflight[msg.tab] > 0 {
			m.inflight[msg.tab]--
		}
		if msg.err != nil {
			m.log.Debug("Page request finished with error",
				logger.StringField("page", tabNames[msg.tab]),
				logger.ErrorField(msg.err),
			)
		}
		if msg.tab == tabHome {
			m.selected = -1
		}

	case exportedMsg:
		switch {
		case msg.err != nil:
			m.status = "Export failed: " + msg.err.Error()
		case msg.path == "":
			m.status = "Nothing to export"
		default:
			m.status = "Saved " + msg.path
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.switchTab((m.tab + 1) % tabCount)
		case "shift+tab":
			m.switchTab((m.tab + tabCount - 1) % tabCount)
		case "enter":
			cmds = append(cmds, m.submit())
		case "ctrl+r":
			cmds = append(cmds, m.retry())
		case "esc":
			m.dismiss()
		case "ctrl+t":
			if m.tab == tabHistory {
				m.rng = m.rng.Next()
			}
		case "ctrl+s":
			if m.tab == tabHistory {
				cmds = append(cmds, m.export())
			}
		case "up", "down":
			m.move(msg.String() == "up")
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		default:
			var cmd tea.Cmd
			input := m.focusedInput()
			*input, cmd = input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.ready {
		m.viewport.SetContent(m.renderContent())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) switchTab(t tab) {
	m.focusedInput().Blur()
	m.tab = t
	m.status = ""
	m.focusedInput().Focus()
	if m.ready {
		m.viewport.GotoTop()
	}
}

func (m *Model) focusedInput() *textinput.Model {
	if m.tab == tabCompare && m.compareFocus == 1 {
		return &m.compareInput
	}
	return &m.inputs[m.tab]
}

func (m *Model) move(up bool) {
	switch m.tab {
	case tabHome:
		recent := m.pages.Home.Recent()
		if len(recent) == 0 {
			m.selected = -1
			return
		}
		if up {
			m.selected = max(m.selected-1, 0)
		} else {
			m.selected = min(m.selected+1, len(recent)-1)
		}
	case tabCompare:
		m.focusedInput().Blur()
		m.compareFocus = 1 - m.compareFocus
		m.focusedInput().Focus()
	}
}

// busy reports whether the tab's submit control is disabled.
func (m *Model) busy(t tab) bool {
	if m.inflight[t] > 0 {
		return true
	}
	switch t {
	case tabHome:
		return m.pages.Home.Loading()
	case tabPredict:
		return m.pages.Predict.Loading()
	case tabHistory:
		return m.pages.History.Loading()
	case tabCompare:
		return m.pages.Compare.Loading()
	default:
		return m.pages.News.Loading()
	}
}

func (m *Model) submit() tea.Cmd {
	if m.busy(m.tab) {
		return nil
	}
	symbol := strings.TrimSpace(m.inputs[m.tab].Value())
	pages := m.pages

	var run func(ctx context.Context) error
	switch m.tab {
	case tabHome:
		if symbol == "" {
			recent := pages.Home.Recent()
			if m.selected < 0 || m.selected >= len(recent) {
				return nil
			}
			symbol = recent[m.selected].Symbol
		}
		run = func(ctx context.Context) error {
			_, err := pages.Home.Submit(ctx, symbol)
			return err
		}
	case tabPredict:
		run = func(ctx context.Context) error {
			_, err := pages.Predict.Submit(ctx, symbol)
			return err
		}
	case tabHistory:
		param := dto.HistoryParam{Symbol: symbol, Range: m.rng}
		run = func(ctx context.Context) error {
			_, err := pages.History.Submit(ctx, param)
			return err
		}
	case tabCompare:
		param := dto.CompareParam{Symbol1: symbol, Symbol2: strings.TrimSpace(m.compareInput.Value())}
		if param.Symbol1 == "" || param.Symbol2 == "" {
			return nil
		}
		run = func(ctx context.Context) error {
			_, err := pages.Compare.Submit(ctx, param)
			return err
		}
	case tabNews:
		run = func(ctx context.Context) error {
			_, err := pages.News.Submit(ctx, symbol)
			return err
		}
	}
	if symbol == "" {
		return nil
	}
	return m.dispatch(run)
}

func (m *Model) retry() tea.Cmd {
	if m.busy(m.tab) {
		return nil
	}
	pages := m.pages
	var run func(ctx context.Context) error
	switch m.tab {
	case tabHome:
		run = func(ctx context.Context) error { _, err := pages.Home.Retry(ctx); return err }
	case tabPredict:
		run = func(ctx context.Context) error { _, err := pages.Predict.Retry(ctx); return err }
	case tabHistory:
		run = func(ctx context.Context) error { _, err := pages.History.Retry(ctx); return err }
	case tabCompare:
		run = func(ctx context.Context) error { _, err := pages.Compare.Retry(ctx); return err }
	case tabNews:
		run = func(ctx context.Context) error { _, err := pages.News.Retry(ctx); return err }
	}
	return m.dispatch(run)
}

func (m *Model) dispatch(run func(ctx context.Context) error) tea.Cmd {
	t, ctx := m.tab, m.ctx
	m.inflight[t]++
	m.status = ""
	return func() tea.Msg {
		return submittedMsg{tab: t, err: run(ctx)}
	}
}

func (m *Model) dismiss() {
	switch m.tab {
	case tabHome:
		m.pages.Home.DismissError()
	case tabPredict:
		m.pages.Predict.DismissError()
	case tabHistory:
		m.pages.History.DismissError()
	case tabCompare:
		m.pages.Compare.DismissError()
	case tabNews:
		m.pages.News.DismissError()
	}
	m.status = ""
}

func (m *Model) export() tea.Cmd {
	history, dir := m.pages.History, m.exportDir
	return func() tea.Msg {
		path, err := history.SaveCSV(dir)
		return exportedMsg{path: path, err: err}
	}
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	tabs := make([]string, tabCount)
	for i, name := range tabNames {
		if tab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = inactiveTabStyle.Render(name)
		}
	}

	footer := " tab switch  enter submit  ctrl+r retry  esc dismiss  pgup/pgdn scroll  ctrl+c quit"
	if m.status != "" {
		footer = " " + m.status
	}

	return strings.Join([]string{
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		m.renderInputs(),
		"",
		m.viewport.View(),
		footerStyle.Width(m.width).Render(footer),
	}, "\n")
}

func (m Model) renderInputs() string {
	line := m.inputs[m.tab].View()
	switch m.tab {
	case tabHistory:
		line += dimStyle.Render(fmt.Sprintf("   Range: %s (ctrl+t)   ctrl+s export CSV", m.rng))
	case tabCompare:
		line += "   " + m.compareInput.View() + dimStyle.Render("   up/down switch field")
	case tabHome:
		if len(m.pages.Home.Recent()) > 0 {
			line += dimStyle.Render("   up/down select recent, enter on empty input to open")
		}
	}
	if m.busy(m.tab) {
		line += "  " + dimStyle.Render("(loading)")
	}
	return line
}

func (m Model) renderContent() string {
	width := m.width
	switch m.tab {
	case tabHome:
		v := m.pages.Home.View()
		body := view.RenderPage(m.frame(v.Status, v.Message), v.HasResult, emptyHints[tabHome], func() string {
			return view.RenderHome(v.Result, width)
		})
		if recent := view.RenderRecent(m.pages.Home.Recent(), m.selected); recent != "" {
			body += "\n\n" + recent
		}
		return body
	case tabPredict:
		v := m.pages.Predict.View()
		return view.RenderPage(m.frame(v.Status, v.Message), v.HasResult, emptyHints[tabPredict], func() string {
			return view.RenderPrediction(v.Result, width)
		})
	case tabHistory:
		v := m.pages.History.View()
		return view.RenderPage(m.frame(v.Status, v.Message), v.HasResult, emptyHints[tabHistory], func() string {
			return view.RenderHistory(v.Result, width)
		})
	case tabCompare:
		v := m.pages.Compare.View()
		return view.RenderPage(m.frame(v.Status, v.Message), v.HasResult, emptyHints[tabCompare], func() string {
			return view.RenderComparison(v.Result, width)
		})
	default:
		v := m.pages.News.View()
		return view.RenderPage(m.frame(v.Status, v.Message), v.HasResult, emptyHints[tabNews], func() string {
			return view.RenderNews(v.Result, width)
		})
	}
}

// frame treats a dispatched but not yet started request as loading.
func (m Model) frame(status service.Status, message string) view.Frame {
	if m.inflight[m.tab] > 0 {
		status = service.StatusLoading
	}
	return view.Frame{
		Status:       status,
		Message:      message,
		SpinnerFrame: m.spinner.View(),
		Interactive:  true,
		Width:        m.width,
	}
}
