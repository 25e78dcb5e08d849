// Package tui provides an interactive terminal view over the question
// answering service.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/admitlab/admit-cli/internal/core/domain"
	"github.com/admitlab/admit-cli/internal/core/ports/driving"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	answerStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	refusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	sourceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// answerMsg carries the outcome of an asked question back into Update.
type answerMsg struct {
	question string
	answer   domain.Answer
	err      error
}

// Model is the Bubble Tea model for the ask view.
type Model struct {
	service driving.AskService

	input    textinput.Model
	viewport viewport.Model

	status string
	asking bool
	ready  bool
}

// New creates the ask view.
func New(service driving.AskService) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Вопрос про поступление, Enter для отправки"
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		service:  service,
		input:    ti,
		viewport: viewport.New(0, 0),
		status:   "Готов. Задайте вопрос.",
	}
}

// Init starts the input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window and answer events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ah := answerStyle.GetFrameSize()
		_, qh := queryStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header, status, query box, spacer
		vh := msg.Height - reserved - ah
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width)
		m.viewport.Height = vh
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if msg.String() == "enter" && !m.asking {
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, tea.Quit
			}
			m.asking = true
			m.status = "Ищу ответ..."
			m.input.SetValue("")
			return m, m.ask(question)
		}

	case answerMsg:
		m.asking = false
		if msg.err != nil {
			m.status = "Ошибка: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("Ответ на %q", msg.question)
		m.viewport.SetContent(renderAnswer(msg.answer))
		m.viewport.GotoTop()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the layout.
func (m Model) View() string {
	if !m.ready {
		return "Загрузка..."
	}
	header := headerStyle.Render("Вопросы о поступлении")
	answer := answerStyle.Render(m.viewport.View())
	input := queryStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + answer + "\n" + input + "\n" + status
}

// ask runs the answer path off the UI goroutine.
func (m Model) ask(question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := m.service.Ask(context.Background(), question)
		return answerMsg{question: question, answer: answer, err: err}
	}
}

// renderAnswer formats the answer text plus its evidence list.
func renderAnswer(answer domain.Answer) string {
	var b strings.Builder

	if answer.Grounded {
		b.WriteString(answer.Text)
	} else {
		b.WriteString(refusedStyle.Render(answer.Text))
	}

	if len(answer.Hits) > 0 {
		b.WriteString("\n\n")
		b.WriteString(sourceStyle.Render("Источники:"))
		for i, hit := range answer.Hits {
			line := fmt.Sprintf("\n%d. %.4f | %s | %s",
				i+1, hit.Score, hit.Payload.Title, hit.Payload.Source)
			b.WriteString(sourceStyle.Render(line))
		}
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
