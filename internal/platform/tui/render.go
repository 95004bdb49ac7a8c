package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blind-surfers/internal/game"
)

// transcriptLines is how many recent announcements the view shows.
const transcriptLines = 8

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")).
			MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	alertStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// renderView lays out the status panel, the open menu and the transcript.
func renderView(snap game.Snapshot, transcript []string, helpLine string) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Blind Surfers"))
	sb.WriteString("\n")

	switch snap.State {
	case game.StateMenu:
		sb.WriteString(renderMenu(snap))
	case game.StateRunning:
		sb.WriteString(renderStatus(snap))
	case game.StateGameOver:
		sb.WriteString(alertStyle.Render(fmt.Sprintf("Game over. Score %d", snap.Score)))
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render(fmt.Sprintf("K: use a key (%d left)   Esc: main menu", snap.Keys)))
	}
	sb.WriteString("\n\n")

	if len(transcript) > transcriptLines {
		transcript = transcript[len(transcript)-transcriptLines:]
	}
	sb.WriteString(panelStyle.Render(strings.Join(transcript, "\n")))
	sb.WriteString("\n")
	sb.WriteString(helpLine)
	return sb.String()
}

func renderMenu(snap game.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(valueStyle.Render(snap.MenuTitle))
	sb.WriteString("\n")
	for i, item := range snap.MenuItems {
		if i == snap.MenuIndex {
			sb.WriteString(selectedStyle.Render("> " + item))
		} else {
			sb.WriteString(itemStyle.Render("  " + item))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderStatus(snap game.Snapshot) string {
	field := func(label, value string) string {
		return labelStyle.Render(label+" ") + valueStyle.Render(value)
	}

	lanes := make([]string, game.LaneCount)
	for l := game.LaneLeft; l < game.LaneCount; l++ {
		lanes[l] = "[ ]"
		if l == snap.Lane {
			lanes[l] = "[@]"
		}
	}

	var moves []string
	if snap.Jumping {
		moves = append(moves, "jumping")
	}
	if snap.Rolling {
		moves = append(moves, "rolling")
	}
	if snap.Hoverboard {
		moves = append(moves, "hoverboard")
	}
	for _, e := range snap.Effects {
		moves = append(moves, fmt.Sprintf("%s %.0fs", e.Kind.Title(), e.Remaining))
	}

	rows := []string{
		strings.Join([]string{
			field("Score", fmt.Sprint(snap.Score)),
			field("x", fmt.Sprint(snap.Multiplier)),
			field("Speed", fmt.Sprintf("%.0f", snap.Speed)),
		}, "  "),
		field("Lane", strings.Join(lanes, " ")),
		strings.Join([]string{
			field("Coins", fmt.Sprint(snap.Coins)),
			field("Keys", fmt.Sprint(snap.Keys)),
			field("Tokens", fmt.Sprint(snap.SeasonTokens)),
		}, "  "),
		field("Word", fmt.Sprintf("%s (%s)", snap.Word, snap.WordProgress)),
		field("Obstacles", fmt.Sprint(snap.Obstacles)),
	}
	if len(moves) > 0 {
		rows = append(rows, field("Active", strings.Join(moves, ", ")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
