package report

import "strconv"

// Labels names agents and items. Missing or empty entries fall back to
// "agent N" and "item N".
type Labels struct {
	Agents []string
	Items  []string
}

// Agent returns the label of agent i.
func (l Labels) Agent(i int) string { return pick(l.Agents, i, "agent ") }

// Item returns the label of item j.
func (l Labels) Item(j int) string { return pick(l.Items, j, "item ") }

func pick(names []string, k int, prefix string) string {
	if k >= 0 && k < len(names) && names[k] != "" {
		return names[k]
	}

	return prefix + strconv.Itoa(k)
}
