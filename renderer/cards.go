package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/ecotrack"
)

// IntelCards renders the tracked competitors.
func IntelCards(entries []ecotrack.IntelEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Market Intel\n\n")
	if len(entries) == 0 {
		fmt.Fprintln(&b, "No competitors tracked.")
		return b.String()
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "## %s\n\n", Cell(e.Name))
		if e.Coords != "" {
			fmt.Fprintf(&b, "*Coords:* %s  \n", Cell(e.Coords))
		}
		fmt.Fprintf(&b, "*ID:* %d\n\n", e.ID)
		if e.Notes != "" {
			fmt.Fprintf(&b, "%s\n\n", Paragraphs(e.Notes))
		}
	}
	return b.String()
}

// NoteCards renders the notes.
func NoteCards(notes []ecotrack.Note) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Notes\n\n")
	if len(notes) == 0 {
		fmt.Fprintln(&b, "No notes.")
		return b.String()
	}
	for _, n := range notes {
		fmt.Fprintf(&b, "## %s\n\n", Cell(n.Title))
		fmt.Fprintf(&b, "*ID:* %d\n\n", n.ID)
		if n.Body != "" {
			fmt.Fprintf(&b, "%s\n\n", Paragraphs(n.Body))
		}
	}
	return b.String()
}

// Risk renders a risk assessment.
func Risk(a ecotrack.RiskAssessment) string {
	return fmt.Sprintf("**Risk Rating: %s** (%s)\n\nReward %s for %s of gear at stake, a ratio of %s.\n",
		strings.ToUpper(a.Level.String()),
		a.Level.Advice(),
		a.Reward,
		a.Gear,
		a.Ratio.StringFixed(2),
	)
}

// Report renders every section of st in one document.
func Report(st ecotrack.State) string {
	return strings.Join([]string{
		NewDashboard(st).Markdown(),
		Shops(NewShopRows(st)),
		IntelCards(st.Intel),
		NoteCards(st.Notes),
	}, "\n")
}
