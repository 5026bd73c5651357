package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/askoeller/menuboard/pkg/board"
	"github.com/askoeller/menuboard/pkg/catalog"
	"github.com/askoeller/menuboard/pkg/pipeline"
	"github.com/askoeller/menuboard/pkg/render"
)

// Preview styles
var (
	previewTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewSlideStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	previewStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	previewErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// previewWidths are the screen widths the TUI cycles through with "w".
// Index -1 means the width the command was started with.
var previewWidths = []float64{1280, 1920, 2560, 3840}

// =============================================================================
// previewModel - Interactive slide browser
// =============================================================================

// previewModel is the bubbletea model for the slide browser. Every slide or
// width change recomputes the layout through the shared pipeline runner, so
// the preview always shows what a display would receive.
type previewModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	tmpl   *board.Template
	cat    *catalog.Catalog
	opts   pipeline.Options

	slideIdx int // index into tmpl.Slides
	widthIdx int // index into previewWidths, -1 keeps the start width
	height   int // terminal rows available for the body

	body   string
	status string
	err    error
}

// newPreviewModel creates the slide browser and computes the first slide.
func newPreviewModel(ctx context.Context, runner *pipeline.Runner, t *board.Template, cat *catalog.Catalog, opts pipeline.Options) previewModel {
	m := previewModel{
		ctx:      ctx,
		runner:   runner,
		tmpl:     t,
		cat:      cat,
		opts:     opts,
		widthIdx: -1,
		height:   24,
	}
	return m.compute(false)
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.slideIdx > 0 {
				m.slideIdx--
				return m.compute(false), nil
			}
		case "right", "l":
			if m.slideIdx < len(m.tmpl.Slides)-1 {
				m.slideIdx++
				return m.compute(false), nil
			}
		case "w":
			m.widthIdx++
			if m.widthIdx >= len(previewWidths) {
				m.widthIdx = -1
			}
			return m.compute(false), nil
		case "r":
			return m.compute(true), nil
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
		if m.height < 8 {
			m.height = 8
		}
	}
	return m, nil
}

// compute runs the layout pipeline for the current slide and width and
// renders the text grid. refresh bypasses the layout cache.
func (m previewModel) compute(refresh bool) previewModel {
	slide := m.tmpl.Slides[m.slideIdx]

	opts := m.opts
	opts.Refresh = refresh
	if m.widthIdx >= 0 {
		opts.ScreenWidth = previewWidths[m.widthIdx]
	}

	content, lay, err := m.runner.ComputeLayout(m.ctx, m.tmpl, m.cat, slide, opts)
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil

	currency := m.cat.Currency
	if m.tmpl.Display.Currency != "" {
		currency = m.tmpl.Display.Currency
	}
	m.body = string(render.RenderText(content, lay, render.WithCurrency(currency)))
	m.status = fmt.Sprintf("%d columns · %dpx font · %.0fpx screen · %d products",
		lay.Columns, lay.FontSizePx, opts.ResolveScreenWidth(m.tmpl), content.ProductCount())

	return m
}

func (m previewModel) View() string {
	var b strings.Builder

	slide := m.tmpl.Slides[m.slideIdx]
	name := slide.Name
	if name == "" {
		name = slide.ID
	}
	title := m.tmpl.Name
	if title == "" {
		title = "Menu Board"
	}

	b.WriteString(previewTitleStyle.Render(title))
	b.WriteString(previewSlideStyle.Render(fmt.Sprintf("  [%d/%d] %s", m.slideIdx+1, len(m.tmpl.Slides), name)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ slide  w width  r recompute  q quit"))
	b.WriteString("\n")
	b.WriteString(previewStatusStyle.Render(m.status))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(previewErrorStyle.Render(fmt.Sprintf("layout failed: %v", m.err)))
		return b.String()
	}

	b.WriteString(clampLines(m.body, m.height-5))
	return b.String()
}

// clampLines truncates s to at most n lines, marking the cut with an
// ellipsis line so the user knows content is hidden.
func clampLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n-1], "\n") + "\n" + StyleDim.Render("…")
}
