// Package tui provides the interactive Bubble Tea dashboard for hisab.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/hisab/internal/advisor"
	"github.com/theirongolddev/hisab/internal/book"
	"github.com/theirongolddev/hisab/internal/cli"
	"github.com/theirongolddev/hisab/internal/config"
	"github.com/theirongolddev/hisab/internal/model"
	"github.com/theirongolddev/hisab/internal/tui/components"
	"github.com/theirongolddev/hisab/internal/tui/theme"
)

// AdviceMsg is sent when the daily advisory fetch completes.
type AdviceMsg struct {
	Text string
}

// StrategyMsg is sent when the strategy advisory fetch completes.
type StrategyMsg struct {
	Text string
}

// Tab indices, matching components.Tabs order.
const (
	tabDashboard = iota
	tabHistory
	tabGoals
	tabDebts
	tabStrategy
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// App is the root Bubble Tea model.
type App struct {
	book   *book.Book
	client *advisor.Client
	cfg    config.Config

	// Snapshot rendered by all tabs; refreshed after every mutation.
	state model.FinancialState

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	status    string

	// Advisory text, fetched in the background
	advice          string
	adviceLoading   bool
	strategy        string
	strategyLoading bool

	// List cursors
	histCursor int
	goalCursor int
	debtCursor int

	// Modal forms (huh)
	entryForm *huh.Form
	entryVals entryValues
	payForm   *huh.Form
	payVals   paymentValues
	payTarget model.Liability
}

// Run starts the dashboard and blocks until the user quits.
func Run(b *book.Book, client *advisor.Client, cfg config.Config) error {
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor so background styling always produces ANSI codes;
	// the "terminal" theme sticks to the basic palette.
	if cfg.Appearance.Theme != "terminal" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	app := NewApp(b, client, cfg)
	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

// NewApp creates the root TUI model.
func NewApp(b *book.Book, client *advisor.Client, cfg config.Config) App {
	return App{
		book:          b,
		client:        client,
		cfg:           cfg,
		state:         b.Snapshot(),
		adviceLoading: true,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return fetchAdviceCmd(a.client, a.state)
}

// refresh re-snapshots the book and clamps cursors to the new lists.
func (a *App) refresh() {
	a.state = a.book.Snapshot()
	a.histCursor = clampCursor(a.histCursor, len(a.state.Transactions))
	a.goalCursor = clampCursor(a.goalCursor, len(a.state.Goals))
	a.debtCursor = clampCursor(a.debtCursor, len(a.state.Liabilities))
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.entryForm != nil {
			a.entryForm = a.entryForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.payForm != nil {
			a.payForm = a.payForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Modal forms intercept all keys while open
		if a.entryForm != nil {
			return a.updateEntryForm(msg)
		}
		if a.payForm != nil {
			return a.updatePayForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit

		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil

		case "a":
			a.entryVals = entryValues{}
			a.entryForm = newEntryForm(&a.entryVals)
			if a.width > 0 {
				a.entryForm = a.entryForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.entryForm.Init()

		case "p":
			if a.activeTab == tabDebts && len(a.state.Liabilities) > 0 {
				a.payTarget = a.state.Liabilities[a.debtCursor]
				a.payVals = paymentValues{}
				a.payForm = newPaymentForm(a.payTarget, a.cfg.General.Currency, &a.payVals)
				if a.width > 0 {
					a.payForm = a.payForm.WithWidth(a.width).WithHeight(a.height)
				}
				return a, a.payForm.Init()
			}
			return a, nil

		case "x":
			return a.deleteSelected()

		case "r":
			return a.startAdviceFetch()

		case "j", "down":
			a.moveCursor(1)
			return a, nil
		case "k", "up":
			a.moveCursor(-1)
			return a, nil
		case "g":
			// Jump to top doubles as the Goals tab key; top wins on list tabs
			if a.setCursor(0) {
				return a, nil
			}
		case "G":
			a.setCursorEnd()
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				if idx == tabStrategy && a.strategy == "" && !a.strategyLoading {
					a.strategyLoading = true
					return a, fetchStrategyCmd(a.client, a.state)
				}
			}
		}
		return a, nil

	case AdviceMsg:
		a.advice = msg.Text
		a.adviceLoading = false
		return a, nil

	case StrategyMsg:
		a.strategy = msg.Text
		a.strategyLoading = false
		return a, nil
	}

	// Forward unhandled messages to open forms (cursor blinks, etc.)
	if a.entryForm != nil {
		return a.updateEntryForm(msg)
	}
	if a.payForm != nil {
		return a.updatePayForm(msg)
	}

	return a, nil
}

// moveCursor moves the active tab's list cursor by delta.
func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case tabHistory:
		a.histCursor = clampCursor(a.histCursor+delta, len(a.state.Transactions))
	case tabGoals:
		a.goalCursor = clampCursor(a.goalCursor+delta, len(a.state.Goals))
	case tabDebts:
		a.debtCursor = clampCursor(a.debtCursor+delta, len(a.state.Liabilities))
	}
}

// setCursor jumps the active list cursor; reports whether the active
// tab has a list at all.
func (a *App) setCursor(pos int) bool {
	switch a.activeTab {
	case tabHistory:
		a.histCursor = clampCursor(pos, len(a.state.Transactions))
	case tabGoals:
		a.goalCursor = clampCursor(pos, len(a.state.Goals))
	case tabDebts:
		a.debtCursor = clampCursor(pos, len(a.state.Liabilities))
	default:
		return false
	}
	return true
}

func (a *App) setCursorEnd() {
	switch a.activeTab {
	case tabHistory:
		a.histCursor = clampCursor(len(a.state.Transactions)-1, len(a.state.Transactions))
	case tabGoals:
		a.goalCursor = clampCursor(len(a.state.Goals)-1, len(a.state.Goals))
	case tabDebts:
		a.debtCursor = clampCursor(len(a.state.Liabilities)-1, len(a.state.Liabilities))
	}
}

// deleteSelected removes the item under the cursor on list tabs.
// Transaction deletes reverse their balance effect in the book.
func (a App) deleteSelected() (tea.Model, tea.Cmd) {
	var kind book.ItemKind
	var id, title string

	switch a.activeTab {
	case tabHistory:
		if len(a.state.Transactions) == 0 {
			return a, nil
		}
		t := a.state.Transactions[a.histCursor]
		kind, id, title = book.KindTransaction, t.ID, t.Category
	case tabGoals:
		if len(a.state.Goals) == 0 {
			return a, nil
		}
		g := a.state.Goals[a.goalCursor]
		kind, id, title = book.KindGoal, g.ID, g.Title
	case tabDebts:
		if len(a.state.Liabilities) == 0 {
			return a, nil
		}
		l := a.state.Liabilities[a.debtCursor]
		kind, id, title = book.KindLiability, l.ID, l.Title
	default:
		return a, nil
	}

	if err := a.book.Delete(kind, id); err != nil {
		a.status = err.Error()
		return a, nil
	}
	a.refresh()
	a.status = fmt.Sprintf("Deleted %s %q", kind, title)
	return a, nil
}

// startAdviceFetch refetches the advisory text for the visible tab.
func (a App) startAdviceFetch() (tea.Model, tea.Cmd) {
	if a.activeTab == tabStrategy {
		if a.strategyLoading {
			return a, nil
		}
		a.strategyLoading = true
		return a, fetchStrategyCmd(a.client, a.state)
	}
	if a.adviceLoading {
		return a, nil
	}
	a.adviceLoading = true
	return a, fetchAdviceCmd(a.client, a.state)
}

func (a App) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.entryForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.entryForm = f
	}

	if a.entryForm.State == huh.StateCompleted {
		if err := a.entryVals.apply(a.book); err != nil {
			a.status = err.Error()
		} else {
			a.refresh()
			a.status = "Saved"
		}
		a.entryForm = nil
		return a, nil
	}

	if a.entryForm.State == huh.StateAborted {
		a.entryForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) updatePayForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.payForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.payForm = f
	}

	if a.payForm.State == huh.StateCompleted {
		if err := a.payVals.apply(a.book, a.payTarget.ID); err != nil {
			a.status = err.Error()
		} else {
			a.refresh()
			a.status = fmt.Sprintf("Paid toward %s", a.payTarget.Title)
		}
		a.payForm = nil
		return a, nil
	}

	if a.payForm.State == huh.StateAborted {
		a.payForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.entryForm != nil {
		return a.entryForm.View()
	}
	if a.payForm != nil {
		return a.payForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  hisab needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"d h g b s", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
		{"g G", "Top / Bottom of list"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"a", "Add entry (transaction, goal, debt...)"},
		{"p", "Pay selected debt (Debts tab)"},
		{"x", "Delete selected item"},
		{"r", "Refresh analyst advice"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(theme.Active.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w) + "\n"

	left := " [a]dd  [?]help  [q]uit"
	if a.status != "" {
		left += "  " + a.status
	}
	right := fmt.Sprintf("Balance: %s ", cli.FormatAmount(a.cfg.General.Currency, a.state.BankBalance))
	statusBar := components.RenderStatusBar(w, left, right)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabHistory:
		content = a.renderHistoryTab(cw, contentH)
	case tabGoals:
		content = a.renderGoalsTab(cw)
	case tabDebts:
		content = a.renderDebtsTab(cw)
	case tabStrategy:
		content = a.renderStrategyTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fetchAdviceCmd fetches the daily advisory text in the background.
// The client handles nil receivers and failures by returning fallbacks,
// so this command always yields renderable text.
func fetchAdviceCmd(client *advisor.Client, state model.FinancialState) tea.Cmd {
	digest := advisor.NewDigest(state)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		return AdviceMsg{Text: client.DailyUpdate(ctx, digest)}
	}
}

// fetchStrategyCmd fetches the strategy advisory text in the background.
func fetchStrategyCmd(client *advisor.Client, state model.FinancialState) tea.Cmd {
	digest := advisor.NewDigest(state)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		return StrategyMsg{Text: client.StrategyPlan(ctx, digest)}
	}
}
