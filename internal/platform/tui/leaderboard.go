package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/currentlycrafting/survival/internal/storage"
	"github.com/currentlycrafting/survival/internal/survival"
)

// maxRuns is how many past runs the game-over leaderboard shows.
const maxRuns = 5

// newLeaderboard creates the table listing the longest runs of this process.
func newLeaderboard(runs []storage.Run) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Level", Width: 7},
		{Title: "Bosses", Width: 8},
		{Title: "Map", Width: 10},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			survival.FormatClock(r.Seconds),
			fmt.Sprintf("%d", r.Level),
			fmt.Sprintf("%d", r.BossBattles),
			r.Layout,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(max(len(rows), 1)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// gameOverView renders the summary screen shown after the player is caught.
func gameOverView(v survival.View, board table.Model, helpLine string, width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9")).
		MarginBottom(1)
	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("GAME OVER"))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("Survived %s -- Level %d", v.Elapsed, v.Level)))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("Longest Time: %s -- Level: %d", v.Longest, v.Level)))
	b.WriteString("\n")
	if len(board.Rows()) > 0 {
		b.WriteString(board.View())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(helpLine))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
