package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Varun5711/promokit/internal/models"
)

type wizardStep int

const (
	stepTypeSelect wizardStep = iota
	stepDetails
	stepExtra
	stepPreview
)

// WizardModel walks the user through campaign creation one step at a
// time: campaign type, shared details, type-specific fields, preview.
type WizardModel struct {
	step         wizardStep
	typeCursor   int
	campaignType string

	inputs       []string
	focusedInput int
	err          error

	details []string
	extra   []string
}

func NewWizardModel() *WizardModel {
	return &WizardModel{
		step: stepTypeSelect,
	}
}

func (m *WizardModel) Init() tea.Cmd {
	return nil
}

func (m *WizardModel) fieldLabels() []string {
	switch m.step {
	case stepDetails:
		return []string{"Campaign Name", "Target Audience", "Budget"}
	case stepExtra:
		if m.campaignType == "product" {
			return []string{"Product Name", "Product Price", "Product Description"}
		}
		return []string{"Service Name", "Service Description", "Who is it for?"}
	}
	return nil
}

func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.step {
	case stepTypeSelect:
		switch keyMsg.String() {
		case "up", "k", "down", "j", "tab":
			m.typeCursor = (m.typeCursor + 1) % 2
		case "enter":
			if m.typeCursor == 0 {
				m.campaignType = "product"
			} else {
				m.campaignType = "service"
			}
			m.step = stepDetails
			m.inputs = make([]string, 3)
			m.focusedInput = 0
			m.err = nil
		}

	case stepDetails:
		if done := m.updateInputs(keyMsg); done {
			m.details = append([]string(nil), m.inputs...)
			m.step = stepExtra
			m.inputs = make([]string, 3)
			m.focusedInput = 0
		}

	case stepExtra:
		if done := m.updateInputs(keyMsg); done {
			m.extra = append([]string(nil), m.inputs...)
			m.step = stepPreview
		}

	case stepPreview:
		switch keyMsg.String() {
		case "enter":
			return m, func() tea.Msg {
				return wizardDoneMsg{campaign: m.buildCampaign()}
			}
		case "b":
			m.step = stepExtra
			m.inputs = append([]string(nil), m.extra...)
			m.focusedInput = 0
		}
	}

	return m, nil
}

// updateInputs handles text entry for the current step's three fields.
// Returns true once all fields are filled and the user hits enter on
// the last one.
func (m *WizardModel) updateInputs(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "tab":
		m.focusedInput = (m.focusedInput + 1) % len(m.inputs)
	case "shift+tab":
		m.focusedInput = (m.focusedInput + len(m.inputs) - 1) % len(m.inputs)
	case "enter":
		for i, v := range m.inputs {
			if v == "" {
				m.focusedInput = i
				m.err = fmt.Errorf("%s cannot be empty", m.fieldLabels()[i])
				return false
			}
		}
		m.err = nil
		return true
	case "backspace":
		if len(m.inputs[m.focusedInput]) > 0 {
			m.inputs[m.focusedInput] = m.inputs[m.focusedInput][:len(m.inputs[m.focusedInput])-1]
		}
	case "ctrl+l":
		for i := range m.inputs {
			m.inputs[i] = ""
		}
		m.err = nil
	default:
		if len(msg.String()) == 1 {
			m.inputs[m.focusedInput] += msg.String()
		}
	}
	return false
}

func (m *WizardModel) buildCampaign() models.Campaign {
	c := models.Campaign{
		Type:   m.campaignType,
		Name:   m.details[0],
		Target: m.details[1],
		Budget: m.details[2],
	}
	if m.campaignType == "product" {
		c.Product = &models.ProductDetails{
			ProductName:  m.extra[0],
			ProductPrice: m.extra[1],
			ProductDesc:  m.extra[2],
		}
	} else {
		c.Service = &models.ServiceDetails{
			ServiceName:     m.extra[0],
			ServiceDesc:     m.extra[1],
			ServiceAudience: m.extra[2],
		}
	}
	return c
}

func (m *WizardModel) View() string {
	switch m.step {
	case stepTypeSelect:
		return m.viewTypeSelect()
	case stepDetails, stepExtra:
		return m.viewInputs()
	case stepPreview:
		return m.viewPreview()
	}
	return ""
}

func (m *WizardModel) viewTypeSelect() string {
	var b strings.Builder

	header := TitleStyle.Render("🚀 NEW CAMPAIGN")
	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		MarginBottom(1).
		Render(header))
	b.WriteString("\n")
	b.WriteString(centered(InfoStyle.Render("What are you promoting?")))
	b.WriteString("\n\n")

	options := []string{"📦 A Product", "🛠  A Service"}
	var items []string
	for i, opt := range options {
		cursor := "  "
		style := ItemStyle
		if i == m.typeCursor {
			cursor = "> "
			style = SelectedItemStyle
		}
		items = append(items, style.Render(cursor+opt))
	}
	box := BoxStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, items...))
	b.WriteString(centered(box))
	b.WriteString("\n\n")

	help := InfoStyle.Render("↑/↓ choose  •  enter next  •  esc cancel")
	b.WriteString(centered(help))

	return lipgloss.NewStyle().
		Width(80).
		Height(20).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (m *WizardModel) viewInputs() string {
	var b strings.Builder

	var header string
	if m.step == stepDetails {
		header = TitleStyle.Render("📋 CAMPAIGN DETAILS")
	} else if m.campaignType == "product" {
		header = TitleStyle.Render("📦 PRODUCT DETAILS")
	} else {
		header = TitleStyle.Render("🛠  SERVICE DETAILS")
	}
	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		MarginBottom(2).
		Render(header))
	b.WriteString("\n\n")

	for i, label := range m.fieldLabels() {
		fieldLabel := LabelStyle.Render(label + ":")
		style := InputStyle
		if i == m.focusedInput {
			style = FocusedInputStyle
		}
		value := style.Width(45).Render(m.inputs[i])
		field := lipgloss.JoinHorizontal(lipgloss.Left, fieldLabel, value)
		b.WriteString(centered(field))
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(centered(ErrorStyle.Render("❌ " + m.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("tab switch  •  enter next  •  ctrl+l clear  •  esc cancel")
	b.WriteString(centered(help))

	return BoxStyle.Width(76).Render(b.String())
}

func (m *WizardModel) viewPreview() string {
	var b strings.Builder

	header := TitleStyle.Render("👀 PREVIEW")
	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		MarginBottom(2).
		Render(header))
	b.WriteString("\n\n")

	row := func(label, value string) {
		line := lipgloss.JoinHorizontal(lipgloss.Left,
			LabelStyle.Render(label+":"),
			ValueStyle.Render(value))
		b.WriteString(centered(line))
		b.WriteString("\n")
	}

	row("Type", m.campaignType)
	row("Campaign Name", m.details[0])
	row("Target Audience", m.details[1])
	row("Budget", m.details[2])
	b.WriteString("\n")
	if m.campaignType == "product" {
		row("Product Name", m.extra[0])
		row("Product Price", m.extra[1])
		row("Description", m.extra[2])
	} else {
		row("Service Name", m.extra[0])
		row("Description", m.extra[1])
		row("Who is it for?", m.extra[2])
	}

	b.WriteString("\n")
	help := InfoStyle.Render("enter generate plan  •  b back  •  esc cancel")
	b.WriteString(centered(help))

	return BoxStyle.Width(76).Render(b.String())
}
