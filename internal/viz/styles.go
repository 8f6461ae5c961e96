package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	statusStyles = map[string]lipgloss.Style{
		"idle":      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		"playing":   lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true),
		"paused":    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		"completed": lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
	}

	compareStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	swapStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	sortedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	pivotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	settingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	outsideStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)
