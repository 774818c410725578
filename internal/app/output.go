package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/five82/bytescan/internal/render"
	"github.com/five82/bytescan/internal/state"
)

// Print writes every report in snap to w: a header per source, its lines,
// and a grand total when more than one source was scanned.
func Print(w io.Writer, r *render.Renderer, snap state.Snapshot) error {
	styles := r.Styles()
	var sb strings.Builder
	for i, report := range snap.Reports {
		if i > 0 {
			sb.WriteString("\n")
		}
		if len(snap.Reports) > 1 {
			sb.WriteString(styles.AccentText.Render("==> " + report.Source + " <=="))
			sb.WriteString("\n")
		}
		if report.LastError != nil {
			sb.WriteString(styles.DangerText.Render("error: " + report.LastError.Error()))
			sb.WriteString("\n")
			continue
		}
		for _, line := range r.Lines(report.Lines) {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString(r.Summary(report.Totals))
		sb.WriteString("\n")
	}
	if len(snap.Reports) > 1 {
		sb.WriteString("\n")
		sb.WriteString(styles.MutedText.Render("total: "))
		sb.WriteString(r.Summary(snap.Totals()))
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
