package report

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/rentdiv/rent"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	negStyle    = numberStyle.Foreground(lipgloss.Color("9"))
)

// Table renders a as a bordered terminal table. Negative prices (agents paid
// to take a room) are highlighted.
func Table(a *rent.Allocation, labels Labels) (string, error) {
	s, err := Summarize(a, labels)
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, []string{
			r.Agent, r.Item,
			num(r.Value), num(round(r.Price)), num(round(r.Subsidy)), num(round(r.Utility)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("AGENT", "ITEM", "VALUE", "PRICE", "SUBSIDY", "UTILITY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col < 2:
				return cellStyle
			case col == 3 && s.Rows[row].Price < -Tolerance:
				return negStyle
			default:
				return numberStyle
			}
		})

	return t.String(), nil
}

func num(x float64) string { return strconv.FormatFloat(x, 'f', 2, 64) }
