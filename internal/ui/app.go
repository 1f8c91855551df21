package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/recycler/internal/config"
	"github.com/gravitrone/recycler/internal/layout"
	"github.com/gravitrone/recycler/internal/recycle"
	"github.com/gravitrone/recycler/internal/ui/components"
)

const maxJumpDigits = 9

// --- Messages ---

// revealMsg fires when the earliest staggered reveal is due.
type revealMsg time.Time

// --- App Model ---

// App is the grid browser: the terminal is the viewport and every cell is
// one layout unit.
type App struct {
	config   config.Config
	spec     layout.Spec
	keys     KeyMap
	host     *tileHost
	rect     *recycle.ScrollRect[*Tile]
	total    int
	fullGrid bool
	width    int
	height   int
	err      string
	now      func() time.Time

	jumpOpen     bool
	jumpInput    string
	resetConfirm bool
	help         string
}

// NewApp binds a grid to cfg. The configured viewport is used until the
// first window size message arrives.
func NewApp(cfg config.Config) (App, error) {
	spec, err := cfg.Spec()
	if err != nil {
		return App{}, fmt.Errorf("grid config: %w", err)
	}
	a := App{
		config:   cfg,
		spec:     spec,
		keys:     DefaultKeyMap(),
		total:    cfg.Total,
		fullGrid: cfg.FullGrid,
		now:      time.Now,
	}
	if err := a.bind(0); err != nil {
		return App{}, err
	}
	return a, nil
}

func (a App) Init() tea.Cmd {
	return a.revealCmd()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		size := a.viewportFor(msg.Width, msg.Height)
		if size == a.spec.Viewport {
			return a, nil
		}
		first := a.firstVisible()
		prev := a.spec.Viewport
		a.spec.Viewport = size
		if err := a.bind(first); err != nil {
			a.spec.Viewport = prev
			a.err = err.Error()
			return a, nil
		}
		return a, a.revealCmd()

	case revealMsg:
		a.rect.Tick(time.Time(msg))
		return a, a.revealCmd()

	case tea.KeyMsg:
		return a.handleKeys(msg)
	}
	return a, nil
}

func (a App) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.err = ""
	if msg.Type == tea.KeyCtrlC {
		a.rect.Close()
		return a, tea.Quit
	}
	if a.jumpOpen {
		return a.handleJumpKeys(msg)
	}
	if a.resetConfirm {
		return a.handleResetConfirm(msg)
	}
	if a.help != "" {
		a.help = ""
		return a, nil
	}
	page := a.rect.Plan().ViewportAlong()

	switch {
	case isQuit(a.keys, msg):
		a.rect.Close()
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.help = renderHelp(a.keys, a.config.Theme, int(a.spec.Viewport.W)-4)
	case key.Matches(msg, a.keys.Jump):
		a.jumpOpen = true
		a.jumpInput = ""
	case key.Matches(msg, a.keys.Back):
		a.rect.OnScrollOffsetChanged(-1)
	case key.Matches(msg, a.keys.Forward):
		a.rect.OnScrollOffsetChanged(1)
	case key.Matches(msg, a.keys.PageBack):
		a.rect.OnScrollOffsetChanged(-page)
	case key.Matches(msg, a.keys.PageFwd):
		a.rect.OnScrollOffsetChanged(page)
	case key.Matches(msg, a.keys.Top):
		a.setErr(a.rect.JumpToIndex(0, 1))
	case key.Matches(msg, a.keys.Bottom):
		if n := a.rect.Total(); n > 0 {
			a.setErr(a.rect.JumpToIndex(n-1, 1))
		}
	case key.Matches(msg, a.keys.FullGrid):
		a.fullGrid = !a.fullGrid
		a.rect.SetFullGridPadding(a.fullGrid)
		a.setErr(a.rect.SetCellCount(a.total, false))
		return a, a.revealCmd()
	case key.Matches(msg, a.keys.Hide):
		a.rect.HideAllSlots()
	case key.Matches(msg, a.keys.Reset):
		if a.rect.Total() > 0 {
			a.resetConfirm = true
			return a, nil
		}
		a.setErr(a.rect.SetCellCount(a.total, true))
		return a, a.revealCmd()
	case key.Matches(msg, a.keys.Grow):
		a.total = max(1, a.total*2)
		a.setErr(a.rect.SetCellCount(a.total, false))
		return a, a.revealCmd()
	case key.Matches(msg, a.keys.Shrink):
		a.total /= 2
		a.setErr(a.rect.SetCellCount(a.total, false))
		return a, a.revealCmd()
	}
	return a, nil
}

func (a App) handleJumpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.jumpOpen = false
	case tea.KeyEnter:
		a.jumpOpen = false
		n, err := strconv.Atoi(a.jumpInput)
		if err != nil {
			a.err = fmt.Sprintf("jump: %q is not an index", a.jumpInput)
			return a, nil
		}
		a.setErr(a.rect.JumpToIndex(n, 1))
	case tea.KeyBackspace:
		if r := []rune(a.jumpInput); len(r) > 0 {
			a.jumpInput = string(r[:len(r)-1])
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' && len(a.jumpInput) < maxJumpDigits {
				a.jumpInput += string(r)
			}
		}
	}
	return a, nil
}

func (a App) handleResetConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		a.resetConfirm = false
		a.setErr(a.rect.ResetList())
	case "n", "N", "esc":
		a.resetConfirm = false
	}
	return a, nil
}

func (a App) View() string {
	header := a.renderHeader()
	grid := a.renderGrid()
	switch {
	case a.jumpOpen:
		grid = a.overlay(components.InputDialog("Jump to index", a.jumpInput))
	case a.help != "":
		grid = a.overlay(a.help)
	case a.resetConfirm:
		grid = a.overlay(components.ConfirmDialog("Reset", fmt.Sprintf("Drop all %d items?", a.rect.Total())))
	case a.err != "":
		grid = a.overlay(components.ErrorBox("Error", a.err, a.width))
	case a.rect.Total() == 0:
		grid = a.overlay(RenderBanner())
	}
	status := MutedStyle.Render(a.statusLine())
	hints := components.StatusBar(a.statusHints(), a.width)

	return header + "\n" + grid + "\n" + status + "\n" + hints
}

// overlay centers block in the grid area, scrollbar included.
func (a App) overlay(block string) string {
	w, h := int(a.spec.Viewport.W), int(a.spec.Viewport.H)
	if a.spec.Axis == layout.Vertical {
		w++
	} else {
		h++
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, block)
}

// bind builds an engine for the current spec, scrolls it back to first and
// swaps it in. On failure the previous engine stays bound.
func (a *App) bind(first int) error {
	host := newTileHost(a.config.LabelFormat)
	rect, err := recycle.New[*Tile](a.spec, host,
		recycle.WithRevealDelay(a.config.RowDelay, a.config.ColDelay),
		recycle.WithClock(a.now),
	)
	if err != nil {
		return fmt.Errorf("bind grid: %w", err)
	}
	rect.OnCellUpdate(host.bind)
	rect.SetFullGridPadding(a.fullGrid)
	if err := rect.SetCellCount(a.total, true); err != nil {
		rect.Close()
		return fmt.Errorf("bind grid: %w", err)
	}
	if first > 0 {
		if err := rect.JumpToIndex(first, 1); err != nil {
			rect.Close()
			return fmt.Errorf("bind grid: %w", err)
		}
	}
	if a.rect != nil {
		a.rect.Close()
	}
	a.host = host
	a.rect = rect
	return nil
}

func (a *App) setErr(err error) {
	if err != nil {
		a.err = err.Error()
	}
}

// revealCmd waits for the next pending reveal, if any.
func (a App) revealCmd() tea.Cmd {
	at, ok := a.rect.NextReveal()
	if !ok {
		return nil
	}
	d := at.Sub(a.now())
	if d < 0 {
		d = 0
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return revealMsg(t)
	})
}

// firstVisible is the first index on the line at the scroll offset.
func (a App) firstVisible() int {
	total := a.rect.Total()
	if total == 0 {
		return 0
	}
	return min(a.rect.Line()*a.rect.Plan().Cross, total-1)
}

// viewportFor is the grid area left after the header, status line, hint bar
// and scrollbar.
func (a App) viewportFor(width, height int) layout.Size {
	chrome := 2 + lipgloss.Height(components.StatusBar(a.statusHints(), width))
	w, h := width, height-chrome
	if a.spec.Axis == layout.Vertical {
		w--
	} else {
		h--
	}
	return layout.Size{W: float64(max(w, 1)), H: float64(max(h, 1))}
}

func (a App) renderHeader() string {
	plan := a.rect.Plan()
	mode := "static"
	if plan.Recycling {
		mode = "recycling"
	}
	shape := "list"
	if a.spec.Grid {
		shape = "grid"
	}
	title := TitleStyle.Render("recycler")
	info := fmt.Sprintf(" %d items · %s %s · %d per line · %s", plan.Total, a.spec.Axis, shape, plan.Cross, mode)
	if a.fullGrid {
		info += " · full grid"
	}
	return title + MutedStyle.Render(info)
}

func (a App) renderGrid() string {
	vw := int(a.spec.Viewport.W)
	vh := int(a.spec.Viewport.H)
	c := newCanvas(vw, vh)

	off := a.rect.Offset()
	item := a.spec.Item
	for _, s := range a.rect.Slots() {
		if !s.Visible {
			continue
		}
		x, y := s.Pos.X, -s.Pos.Y
		if a.spec.Axis == layout.Vertical {
			y -= off
		} else {
			x -= off
		}
		c.tile(round(x), round(y), round(item.W), round(item.H), s.Item.Label)
	}

	style := tileStyle(a.config.Theme)
	lines := c.lines()
	plan := a.rect.Plan()
	content := plan.Content.H
	if a.spec.Axis == layout.Horizontal {
		content = plan.Content.W
	}

	if a.spec.Axis == layout.Vertical {
		bar := components.VerticalScrollbar(vh, content, plan.ViewportAlong(), off)
		for i := range lines {
			lines[i] = style.Render(lines[i]) + bar[i]
		}
		return strings.Join(lines, "\n")
	}
	for i := range lines {
		lines[i] = style.Render(lines[i])
	}
	lines = append(lines, components.HorizontalScrollbar(vw, content, plan.ViewportAlong(), off))
	return strings.Join(lines, "\n")
}

func (a App) statusLine() string {
	from, to := a.rect.VisibleRange()
	live, cached := a.rect.PoolStats()
	line := fmt.Sprintf("offset %d/%d  line %d  window %d..%d  slots %d live %d cached  arena %d  created %d  updates %d",
		int(a.rect.Offset()), int(a.rect.Plan().MaxOffset()), a.rect.Line(),
		from, to, live, cached, a.rect.ArenaSize(), a.host.created, a.host.updates)
	if n := a.rect.PendingReveals(); n > 0 {
		line += fmt.Sprintf("  revealing %d", n)
	}
	return line
}

func (a App) statusHints() []string {
	return components.KeyHints(a.keys.hints()...)
}

func round(v float64) int {
	return int(math.Round(v))
}
