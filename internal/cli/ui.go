package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey    = lipgloss.NewStyle().Foreground(colorDim)
	styleLabel  = lipgloss.NewStyle().Bold(true)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleEvent  = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim    = lipgloss.NewStyle().Foreground(colorGray)
	styleError  = lipgloss.NewStyle().Foreground(colorRed)
)

func num(v float64) string {
	return styleNumber.Render(fmt.Sprintf("%g", v))
}

func pair(v [2]float64) string {
	return num(v[0]) + styleDim.Render("×") + num(v[1])
}
