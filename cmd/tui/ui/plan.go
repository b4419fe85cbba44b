package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Varun5711/promokit/cmd/tui/client"
	"github.com/Varun5711/promokit/internal/models"
)

type planResultMsg struct {
	plan *models.MarketingPlan
}

type planErrorMsg struct {
	err error
}

type PlanModel struct {
	loading   bool
	plan      *models.MarketingPlan
	err       error
	apiClient *client.Client
}

func NewPlanModel(c *client.Client) *PlanModel {
	return &PlanModel{apiClient: c}
}

func (m *PlanModel) Init() tea.Cmd {
	return nil
}

// Generate kicks off plan generation for a finished campaign.
func (m *PlanModel) Generate(c models.Campaign) tea.Cmd {
	m.loading = true
	m.plan = nil
	m.err = nil

	req := planRequestFor(c)
	apiClient := m.apiClient
	return func() tea.Msg {
		plan, err := apiClient.GeneratePlan(req)
		if err != nil {
			return planErrorMsg{err: err}
		}
		return planResultMsg{plan: plan}
	}
}

// planRequestFor flattens the wizard's campaign into the three fields
// the planner service expects.
func planRequestFor(c models.Campaign) models.PlanRequest {
	businessType := c.Type
	if c.Type == "product" && c.Product != nil {
		businessType = fmt.Sprintf("product: %s (%s), %s",
			c.Product.ProductName, c.Product.ProductPrice, c.Product.ProductDesc)
	} else if c.Service != nil {
		businessType = fmt.Sprintf("service: %s for %s, %s",
			c.Service.ServiceName, c.Service.ServiceAudience, c.Service.ServiceDesc)
	}

	return models.PlanRequest{
		BusinessName: c.Name,
		BusinessType: businessType,
		Goal:         fmt.Sprintf("reach %s with a budget of %s", c.Target, c.Budget),
	}
}

func (m *PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planResultMsg:
		m.loading = false
		m.plan = msg.plan
		m.err = nil
		return m, nil

	case planErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

func (m *PlanModel) View() string {
	var b strings.Builder

	header := TitleStyle.Render("🧠 MARKETING PLAN")
	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		MarginBottom(2).
		Render(header))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(centered(InfoStyle.Render("🔄 Asking the AI for a plan, hang tight...")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(centered(ErrorStyle.Render("❌ " + m.err.Error())))
		b.WriteString("\n")
	}

	if m.plan != nil {
		section := lipgloss.NewStyle().Foreground(Accent).Bold(true)

		b.WriteString(centered(section.Render("Social Posts")))
		b.WriteString("\n")
		for i, post := range m.plan.SocialPosts {
			line := ItemStyle.Render(fmt.Sprintf("%d. %s", i+1, post))
			b.WriteString(centered(line))
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(centered(section.Render("7-Day Plan")))
		b.WriteString("\n")
		for i, day := range m.plan.DayPlan {
			line := ItemStyle.Render(fmt.Sprintf("Day %d: %s", i+1, day))
			b.WriteString(centered(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	help := InfoStyle.Render("q back to menu")
	b.WriteString(centered(help))

	return BoxStyle.Width(76).Render(b.String())
}
