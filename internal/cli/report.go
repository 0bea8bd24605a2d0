package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/ppinet/pipeline"
)

// printReport writes the ranked score table of res. Scores use two decimals;
// bars are relative to the top score.
func printReport(w io.Writer, res *pipeline.Result) {
	fmt.Fprintln(w, StyleTitle.Render(res.Variant.Label()+" Scores"))
	printKeyValue(w, "run", res.RunID.String())
	printKeyValue(w, "proteins", fmt.Sprint(res.Stats.Nodes))
	printKeyValue(w, "interactions", fmt.Sprint(res.Stats.Edges))
	printKeyValue(w, "compute", res.Stats.ComputeTime.String())
	fmt.Fprintln(w)

	nameWidth := 4
	for _, s := range res.Ranked {
		nameWidth = max(nameWidth, lipgloss.Width(s.Node))
	}
	nameStyle := lipgloss.NewStyle().Width(nameWidth + 2)

	top := 0.0
	if len(res.Ranked) > 0 {
		top = res.Ranked[0].Score
	}
	for i, s := range res.Ranked {
		frac := 0.0
		if top > 0 {
			frac = s.Score / top
		}
		fmt.Fprintf(w, "%s %s %s %s\n",
			StyleDim.Render(fmt.Sprintf("%3d.", i+1)),
			nameStyle.Render(s.Node),
			StyleNumber.Render(fmt.Sprintf("%.2f", s.Score)),
			bar(frac))
	}
}
