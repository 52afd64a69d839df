package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notekw/internal/domain"
)

// NotePort is the TUI-facing subset of the note service.
type NotePort interface {
	Query(text string, topK int) (domain.Analysis, error)
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service  NotePort
	input    textinput.Model
	viewport viewport.Model
	analysis *domain.Analysis
	summary  string
	status   string
	cursor   int
	ready    bool
}

// New creates a new TUI model instance.
func New(service NotePort, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a note and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{service: service, input: ti, viewport: vp, summary: summary, status: "Loaded. Type a note to analyse."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header+summary, status, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrent())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				a, err := m.service.Query(q, 10)
				if err != nil {
					m.status = "Error: " + err.Error()
					m.analysis = nil
				} else {
					m.status = fmt.Sprintf("Keywords: %s", strings.Join(a.Keywords, ", "))
					m.analysis = &a
					m.cursor = 0
				}
				m.viewport.SetContent(m.renderCurrent())
				return m, nil
			}
		case "down":
			if n := m.similarCount(); n > 0 {
				m.cursor = (m.cursor + 1) % n
				m.viewport.SetContent(m.renderCurrent())
				return m, nil
			}
		case "up":
			if n := m.similarCount(); n > 0 {
				m.cursor = (m.cursor - 1 + n) % n
				m.viewport.SetContent(m.renderCurrent())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and current result.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Note Keywords")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.summary)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + summary + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) similarCount() int {
	if m.analysis == nil {
		return 0
	}
	return len(m.analysis.Similar)
}

func (m Model) renderCurrent() string {
	if m.analysis == nil {
		return "No note analysed yet."
	}
	kws := "(none)"
	if len(m.analysis.Keywords) > 0 {
		kws = highlightStyle.Render(strings.Join(m.analysis.Keywords, "  "))
	}
	if len(m.analysis.Similar) == 0 {
		return "Keywords: " + kws + "\n\nNo similar notes."
	}
	r := m.analysis.Similar[m.cursor]
	title := fmt.Sprintf("Similar %d/%d  score=%.3f  group=%d  %s",
		m.cursor+1, len(m.analysis.Similar), r.Score, r.Note.Cluster, r.Note.Source)
	body := highlightTerms(r.Note.Text, r.Note.Keywords)
	return "Keywords: " + kws + "\n\n" + title + "\n\n" + body
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// highlightTerms renders every occurrence of a term in text with
// highlightStyle. Longer terms win where two terms overlap.
func highlightTerms(text string, terms []string) string {
	if strings.TrimSpace(text) == "" || len(terms) == 0 {
		return text
	}
	ordered := make([]string, 0, len(terms))
	for _, t := range terms {
		if t != "" {
			ordered = append(ordered, t)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })

	var b strings.Builder
	for i := 0; i < len(text); {
		matched := ""
		for _, t := range ordered {
			if len(text)-i >= len(t) && strings.EqualFold(text[i:i+len(t)], t) {
				matched = t
				break
			}
		}
		if matched == "" {
			b.WriteByte(text[i])
			i++
			continue
		}
		b.WriteString(highlightStyle.Render(text[i : i+len(matched)]))
		i += len(matched)
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
