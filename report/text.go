package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/rentdiv/rent"
)

// WriteText writes a fixed-width block: one line per agent with its item,
// value, price and utility, a totals line, an envy verdict and the pairs
// that envied each other before pricing. Output is deterministic for a given
// allocation.
func WriteText(w io.Writer, a *rent.Allocation, labels Labels) error {
	s, err := Summarize(a, labels)
	if err != nil {
		return err
	}

	aw, iw := utf8.RuneCountInString("AGENT"), utf8.RuneCountInString("ITEM")
	for _, r := range s.Rows {
		aw = max(aw, utf8.RuneCountInString(r.Agent))
		iw = max(iw, utf8.RuneCountInString(r.Item))
	}

	var util float64
	if _, err = fmt.Fprintf(w, "%-*s  %-*s  %10s  %10s  %10s\n", aw, "AGENT", iw, "ITEM", "VALUE", "PRICE", "UTILITY"); err != nil {
		return err
	}
	for _, r := range s.Rows {
		util += r.Utility
		if _, err = fmt.Fprintf(w, "%-*s  %-*s  %10.2f  %10.2f  %10.2f\n",
			aw, r.Agent, iw, r.Item, r.Value, round(r.Price), round(r.Utility)); err != nil {
			return err
		}
	}
	if _, err = fmt.Fprintf(w, "%-*s  %-*s  %10.2f  %10.2f  %10.2f\n",
		aw, "TOTAL", iw, "", s.Welfare, round(a.TotalPrice()), round(util)); err != nil {
		return err
	}

	verdict := "envy-free"
	if !s.EnvyFree {
		verdict = "NOT envy-free"
	}
	if _, err = fmt.Fprintf(w, "\nrent %.2f, base %.2f, max envy %.2f: %s\n", s.Rent, round(s.Base), s.MaxEnvy, verdict); err != nil {
		return err
	}

	contested := "none"
	if len(s.Contested) > 0 {
		pairs := make([]string, len(s.Contested))
		for k, c := range s.Contested {
			pairs[k] = c.Agent + " → " + c.Other
		}
		contested = strings.Join(pairs, ", ")
	}
	_, err = fmt.Fprintf(w, "contested at equal prices: %s\n", contested)

	return err
}
