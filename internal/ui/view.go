package ui

import (
	"fmt"
	"strings"
)

// renderHeader renders the source bar: name, position, mode and freshness.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	parts := []string{styles.AccentText.Bold(true).Render("bytescan")}

	report, ok := m.current()
	if !ok {
		parts = append(parts, styles.MutedText.Render("no sources"))
		return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
	}

	parts = append(parts,
		styles.MutedText.Render(fmt.Sprintf("[%d/%d]", m.selected+1, len(m.snapshot.Reports))),
		styles.Text.Render(report.Source),
	)
	if m.hexMode {
		parts = append(parts, styles.InfoText.Render("hex"))
	}
	switch {
	case report.IsStale():
		parts = append(parts, styles.DangerText.Render("STALE"))
	case report.LastError != nil:
		parts = append(parts, styles.WarningText.Render("read failed"))
	}
	if !report.LastUpdated.IsZero() {
		parts = append(parts, styles.FaintText.Render(report.LastUpdated.Format("15:04:05")))
	}
	if m.notice != "" {
		parts = append(parts, styles.WarningText.Render(m.notice))
	}
	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderFooter renders totals for the selected source, the legend and key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	r := m.renderer()

	summary := r.Legend()
	if report, ok := m.current(); ok {
		summary = r.Summary(report.Totals) + "  " + summary
	}
	return styles.Footer.Width(m.width).Render(summary + "\n" + m.help.View(m.keys))
}

// renderContent renders the selected source's lines.
func (m Model) renderContent() string {
	styles := m.theme.Styles()
	report, ok := m.current()
	if !ok {
		return styles.MutedText.Render("Waiting for scan results...")
	}

	var b strings.Builder
	if report.LastError != nil {
		b.WriteString(styles.DangerText.Render("error: " + report.LastError.Error()))
		b.WriteString("\n")
	}
	lines := m.renderer().Lines(report.Lines)
	if len(lines) == 0 && report.LastError == nil {
		b.WriteString(styles.FaintText.Render("(empty)"))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}
