package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/cipherhunt/internal/leaderboard"
	"github.com/dmitrijs2005/cipherhunt/internal/services"
	"github.com/dustin/go-humanize"
)

var (
	colorSuccess = lipgloss.Color("#8BC34A")
	colorWarning = lipgloss.Color("#FFC107")
	colorError   = lipgloss.Color("#E53935")
	colorMuted   = lipgloss.Color("#6B7280")

	titleStyle    = lipgloss.NewStyle().Bold(true)
	solvedStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	unlockedStyle = lipgloss.NewStyle().Foreground(colorWarning)
	lockedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	currentStyle  = lipgloss.NewStyle().Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	promptStyle   = lipgloss.NewStyle().Italic(true).PaddingLeft(2)
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	highlightCell = cellStyle.Foreground(colorSuccess).Bold(true)
)

// renderLevels lists every level with a marker for its state.
func renderLevels(views []services.LevelView, current int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Levels"))
	b.WriteByte('\n')

	for _, v := range views {
		var line string
		switch {
		case v.Solved:
			line = solvedStyle.Render(fmt.Sprintf("[x] Level %d  solved", v.ID))
		case v.Unlocked:
			line = unlockedStyle.Render(fmt.Sprintf("[ ] Level %d  open", v.ID))
		default:
			line = lockedStyle.Render(fmt.Sprintf("[-] Level %d  locked", v.ID))
		}
		if v.ID == current {
			line = currentStyle.Render(line) + "  <"
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderLevel shows one riddle.
func renderLevel(v services.LevelView) string {
	head := titleStyle.Render(fmt.Sprintf("Level %d", v.ID))
	if v.Solved {
		head += " " + solvedStyle.Render("(solved)")
	}
	return head + "\n" + promptStyle.Render(v.Prompt)
}

// renderBoard draws the leaderboard table. The row of highlight, if
// present, is emphasised.
func renderBoard(entries []leaderboard.Entry, highlight string, now time.Time) string {
	if len(entries) == 0 {
		return lockedStyle.Render("No players yet.")
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Position),
			e.Username,
			strconv.Itoa(e.Solved),
			solvedWhen(e.SolvedAt, now),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("#", "PLAYER", "SOLVED", "WHEN").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(entries) && entries[row].Username == highlight {
				return highlightCell
			}
			return cellStyle
		})

	return t.String()
}

func solvedWhen(at *time.Time, now time.Time) string {
	if at == nil {
		return "-"
	}
	return humanize.RelTime(*at, now, "ago", "from now")
}

func renderPosition(pos int) string {
	if pos == 0 {
		return ""
	}
	return fmt.Sprintf("You are %s.", humanize.Ordinal(pos))
}

func renderError(msg string) string {
	return errorStyle.Render(msg)
}

func renderSuccess(msg string) string {
	return successStyle.Render(msg)
}
