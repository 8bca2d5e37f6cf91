package output

import (
	"github.com/charmbracelet/lipgloss"
)

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Render(branchName + " (current)")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(branchName)
}

// ColorIssue colors an issue marker
func ColorIssue(marker string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("5")).
		Render(marker)
}

// ColorPath styles a filesystem path
func ColorPath(path string) string {
	return lipgloss.NewStyle().
		Underline(true).
		Render(path)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}
