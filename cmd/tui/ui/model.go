package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Varun5711/promokit/cmd/tui/client"
	"github.com/Varun5711/promokit/internal/models"
)

type View int

const (
	LoginView View = iota
	SignupView
	MenuView
	WizardView
	CampaignsView
	PlanView
)

type Model struct {
	currentView View
	login       *LoginModel
	signup      *SignupModel
	menu        *MenuModel
	wizard      *WizardModel
	campaigns   *CampaignsModel
	plan        *PlanModel
	client      *client.Client
	width       int
	height      int

	isAuthenticated bool
	userName        string
	userEmail       string
}

func NewModel(apiClient *client.Client) Model {
	loginModel := NewLoginModel(apiClient)
	signupModel := NewSignupModel(apiClient)

	return Model{
		currentView: LoginView,
		login:       loginModel,
		signup:      signupModel,
		menu:        NewMenuModel(),
		wizard:      NewWizardModel(),
		campaigns:   NewCampaignsModel(),
		plan:        NewPlanModel(apiClient),
		client:      apiClient,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loginSuccessMsg:
		m.isAuthenticated = true
		m.userName = msg.name
		m.userEmail = msg.email
		m.client.SetToken(msg.token)
		m.currentView = MenuView
		return m, nil

	case wizardDoneMsg:
		m.campaigns.Add(msg.campaign)
		m.currentView = PlanView
		return m, m.plan.Generate(msg.campaign)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.currentView == MenuView || m.currentView == LoginView || m.currentView == SignupView {
				return m, tea.Quit
			}
			if m.currentView != WizardView {
				m.currentView = MenuView
				return m, nil
			}

		case "esc":
			if m.currentView == WizardView {
				m.wizard = NewWizardModel()
				m.currentView = MenuView
				return m, nil
			}

		case "ctrl+s":
			// Toggle between login and signup
			if m.currentView == LoginView {
				m.currentView = SignupView
				return m, nil
			} else if m.currentView == SignupView {
				m.currentView = LoginView
				return m, nil
			}
		}
	}

	switch m.currentView {
	case LoginView:
		updated, cmd := m.login.Update(msg)
		m.login = updated.(*LoginModel)
		return m, cmd

	case SignupView:
		updated, cmd := m.signup.Update(msg)
		m.signup = updated.(*SignupModel)
		return m, cmd

	case MenuView:
		updated, cmd := m.menu.Update(msg)
		m.menu = updated.(*MenuModel)
		if m.menu.selected != -1 {
			switch m.menu.selected {
			case 0:
				m.wizard = NewWizardModel()
				m.currentView = WizardView
			case 1:
				m.currentView = CampaignsView
			case 2:
				m.menu.selected = -1
				return m, tea.Quit
			}
			m.menu.selected = -1
		}
		return m, cmd

	case WizardView:
		updated, cmd := m.wizard.Update(msg)
		m.wizard = updated.(*WizardModel)
		return m, cmd

	case CampaignsView:
		updated, cmd := m.campaigns.Update(msg)
		m.campaigns = updated.(*CampaignsModel)
		return m, cmd

	case PlanView:
		updated, cmd := m.plan.Update(msg)
		m.plan = updated.(*PlanModel)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	var statusBar string
	if m.isAuthenticated && m.currentView != LoginView && m.currentView != SignupView {
		userInfo := lipgloss.NewStyle().
			Foreground(Success).
			Render("👤 " + m.userName)

		emailInfo := lipgloss.NewStyle().
			Foreground(Muted).
			Render(" (" + m.userEmail + ")")

		statusBar = lipgloss.NewStyle().
			Width(80).
			Align(lipgloss.Left).
			Background(BgDark).
			Padding(0, 2).
			Render(userInfo + emailInfo)
	}

	var mainContent string
	switch m.currentView {
	case LoginView:
		mainContent = m.login.View()
	case SignupView:
		mainContent = m.signup.View()
	case MenuView:
		mainContent = m.menu.View()
	case WizardView:
		mainContent = m.wizard.View()
	case CampaignsView:
		mainContent = m.campaigns.View()
	case PlanView:
		mainContent = m.plan.View()
	}

	if statusBar != "" {
		return lipgloss.JoinVertical(lipgloss.Left, statusBar, "\n", mainContent)
	}
	return mainContent
}

type wizardDoneMsg struct {
	campaign models.Campaign
}
