package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cerebro/internal/badge"
	"cerebro/internal/intel"
	"cerebro/internal/ui/textutil"
)

// IntelligencePage is the feed of gathered intelligence, most urgent
// first. j/k move the cursor; the selected item shows its full content.
type IntelligencePage struct {
	items   []intel.Item
	cursor  int
	loaded  bool
	loadErr error
	spinner spinner.Model
	width   int
	height  int
}

var _ View = (*IntelligencePage)(nil)

func NewIntelligencePage() *IntelligencePage {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &IntelligencePage{spinner: s}
}

// Init implements View.
func (p *IntelligencePage) Init() tea.Cmd {
	return p.spinner.Tick
}

// Update implements View.
func (p *IntelligencePage) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil
	case spinner.TickMsg:
		if p.loaded || p.loadErr != nil {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	case IntelLoadedMsg:
		p.loaded = msg.Err == nil
		p.loadErr = msg.Err
		p.items = sortedByUrgency(msg.Items)
		if p.cursor >= len(p.items) {
			p.cursor = 0
		}
		return p, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if p.cursor < len(p.items)-1 {
				p.cursor++
			}
		case "k", "up":
			if p.cursor > 0 {
				p.cursor--
			}
		case "g":
			p.cursor = 0
		case "G":
			if len(p.items) > 0 {
				p.cursor = len(p.items) - 1
			}
		}
		return p, nil
	}
	return p, nil
}

// sortedByUrgency orders items by threat rank, then newest first within a
// rank. Stable so equal items keep backend order.
func sortedByUrgency(items []intel.Item) []intel.Item {
	out := make([]intel.Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].ThreatLevel.Rank(), out[j].ThreatLevel.Rank()
		if ri != rj {
			return ri < rj
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// View implements View.
func (p *IntelligencePage) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Intelligence"))
	b.WriteString("\n\n")

	if p.loadErr != nil {
		b.WriteString(Styles.ErrorText.Render("backend unavailable: " + p.loadErr.Error()))
		return b.String()
	}
	if !p.loaded {
		b.WriteString(p.spinner.View() + Styles.Muted.Render(" loading…"))
		return b.String()
	}
	if len(p.items) == 0 {
		b.WriteString(Styles.Empty.Render("no intelligence gathered"))
		return b.String()
	}

	for i, item := range p.items {
		marker := "  "
		titleStyle := Styles.Normal
		if i == p.cursor {
			marker = Styles.Selected.Render("> ")
			titleStyle = Styles.Selected
		}
		title := item.Title
		if p.width > 30 {
			title = textutil.Truncate(title, p.width-30)
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n",
			marker,
			badge.Render(typeVariant(item.Type), strings.ToUpper(string(item.Type))),
			badge.Render(threatVariant(item.ThreatLevel), string(item.ThreatLevel)),
			titleStyle.Render(title),
		))
	}

	sel := p.items[p.cursor]
	b.WriteString("\n")
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("  %s · %s", sel.Source, sel.Timestamp.Format("2006-01-02 15:04"))))
	b.WriteString("\n")
	content := sel.Content
	if p.width > 4 {
		content = textutil.Truncate(content, (p.width-4)*3)
	}
	b.WriteString("  " + Styles.Normal.Render(content))
	if len(sel.RelatedProjects) > 0 {
		b.WriteString("\n")
		b.WriteString(Styles.Muted.Render("  related: " + strings.Join(sel.RelatedProjects, ", ")))
	}
	return b.String()
}
