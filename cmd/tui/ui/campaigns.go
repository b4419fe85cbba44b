package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Varun5711/promokit/internal/models"
)

// CampaignsModel lists the campaigns created during this session.
// Nothing is persisted server-side, so the list resets on restart.
type CampaignsModel struct {
	campaigns []models.Campaign
	cursor    int
}

func NewCampaignsModel() *CampaignsModel {
	return &CampaignsModel{}
}

func (m *CampaignsModel) Init() tea.Cmd {
	return nil
}

func (m *CampaignsModel) Add(c models.Campaign) {
	m.campaigns = append(m.campaigns, c)
}

func (m *CampaignsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.campaigns)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *CampaignsModel) View() string {
	var b strings.Builder

	header := TitleStyle.Render("📣 MY CAMPAIGNS")
	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		MarginBottom(2).
		Render(header))
	b.WriteString("\n\n")

	if len(m.campaigns) == 0 {
		b.WriteString(centered(InfoStyle.Render("No campaigns yet. Create one from the menu.")))
	} else {
		var rows []string
		for i, c := range m.campaigns {
			icon := "📦"
			subject := ""
			if c.Type == "service" {
				icon = "🛠 "
				if c.Service != nil {
					subject = c.Service.ServiceName
				}
			} else if c.Product != nil {
				subject = c.Product.ProductName
			}

			line := fmt.Sprintf("%s %s  →  %s (budget %s)", icon, c.Name, subject, c.Budget)
			style := ItemStyle
			if i == m.cursor {
				style = SelectedItemStyle
			}
			rows = append(rows, style.Render(line))
		}
		box := BoxStyle.Width(70).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
		b.WriteString(centered(box))
	}

	b.WriteString("\n\n")
	help := InfoStyle.Render("↑/↓ navigate  •  q back")
	b.WriteString(centered(help))

	return lipgloss.NewStyle().
		Width(80).
		Height(20).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}
