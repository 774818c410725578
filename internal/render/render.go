package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/bytescan/internal/logtail"
	"github.com/five82/bytescan/internal/state"
	"github.com/five82/bytescan/internal/strcut"
	"github.com/five82/bytescan/internal/utf8scan"
)

const (
	defaultHexRowBytes = 16
	ellipsis           = "…"
	gutterSep          = " │ "
)

// Options control how bytes are rendered.
type Options struct {
	MaxBytes        int     // cut inputs longer than this; 0 disables
	BinaryThreshold float64 // percent binary above which input is hex dumped
	Hex             bool    // always hex dump
	Width           int     // clamp rows to this many cells; 0 disables
	HexRowBytes     int     // bytes per hex row; 0 uses 16
}

// Renderer turns raw bytes into styled terminal text.
type Renderer struct {
	styles Styles
	opts   Options
}

// New builds a Renderer for theme.
func New(theme Theme, opts Options) *Renderer {
	if opts.HexRowBytes <= 0 {
		opts.HexRowBytes = defaultHexRowBytes
	}
	return &Renderer{styles: theme.Styles(), opts: opts}
}

// Styles exposes the renderer's styles for surrounding chrome.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Dump renders b as escaped text, or as a hex dump when it is mostly binary.
func (r *Renderer) Dump(b []byte) string {
	return strings.Join(r.rows(b, r.opts.Width), "\n")
}

// Lines renders each line behind a line-number gutter.
func (r *Renderer) Lines(lines []logtail.Line) []string {
	if len(lines) == 0 {
		return nil
	}
	digits := len(fmt.Sprint(lines[len(lines)-1].Number))
	gutterWidth := digits + ansi.StringWidth(gutterSep)
	width := 0
	if r.opts.Width > 0 {
		width = max(r.opts.Width-gutterWidth, 1)
	}

	blank := strings.Repeat(" ", digits)
	sep := r.styles.FaintText.Render(gutterSep)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		rows := r.rows(line.Raw, width)
		number := r.styles.MutedText.Render(fmt.Sprintf("%*d", digits, line.Number))
		for i, row := range rows {
			if i == 0 {
				rows[i] = number + sep + row
			} else {
				rows[i] = blank + sep + row
			}
		}
		out = append(out, strings.Join(rows, "\n"))
	}
	return out
}

// Summary renders a one-line overview of totals.
func (r *Renderer) Summary(t state.Totals) string {
	style := r.styles.SuccessText
	switch {
	case t.PercentBinary() > r.opts.BinaryThreshold:
		style = r.styles.DangerText
	case t.InvalidLines > 0 || t.BytesUtf8Control > 0:
		style = r.styles.WarningText
	}
	parts := []string{
		fmt.Sprintf("%d lines", t.Lines),
		fmt.Sprintf("%d invalid", t.InvalidLines),
		fmt.Sprintf("%d bytes", t.Bytes()),
		fmt.Sprintf("%d chars", t.Chars),
		fmt.Sprintf("utf8 %d", t.BytesUtf8),
		fmt.Sprintf("control %d", t.BytesUtf8Control),
		fmt.Sprintf("other %d", t.BytesOther),
	}
	return r.styles.MutedText.Render(strings.Join(parts, " · ")) + " " +
		style.Render(fmt.Sprintf("%.1f%% binary", t.PercentBinary()))
}

// Legend renders one badge per category.
func (r *Renderer) Legend() string {
	cats := []utf8scan.Category{utf8scan.Utf8, utf8scan.Utf8Control, utf8scan.Other}
	badges := make([]string, len(cats))
	for i, c := range cats {
		badges[i] = r.styles.CategoryBadge(c).Render(c.String())
	}
	return strings.Join(badges, " ")
}

func (r *Renderer) rows(b []byte, width int) []string {
	shown := b
	if r.opts.MaxBytes > 0 && len(b) > r.opts.MaxBytes {
		shown = strcut.Cut(b, 0, r.opts.MaxBytes)
	}
	omitted := len(b) - len(shown)

	stats := utf8scan.New(shown).Analyze()
	var rows []string
	if r.opts.Hex || stats.PercentBinary > r.opts.BinaryThreshold {
		hex, err := r.hexRows(shown, stats)
		if err != nil {
			return []string{r.styles.DangerText.Render(err.Error())}
		}
		rows = hex
	} else {
		rows = []string{r.text(stats)}
	}
	if len(rows) == 0 {
		rows = []string{""}
	}
	if omitted > 0 {
		rows[len(rows)-1] += " " + r.styles.MutedText.Render(fmt.Sprintf("[%d more bytes not shown]", omitted))
	}
	if width > 0 {
		for i, row := range rows {
			if ansi.StringWidth(row) > width {
				rows[i] = ansi.Truncate(row, width, ellipsis)
			}
		}
	}
	return rows
}

func (r *Renderer) text(stats utf8scan.Stats) string {
	var sb strings.Builder
	for _, block := range stats.Blocks {
		switch block.Category {
		case utf8scan.Utf8:
			r.writeText(&sb, block.Bytes)
		case utf8scan.Utf8Control:
			sb.WriteString(r.styles.WarningText.Render(escapeControls(block.Bytes)))
		case utf8scan.Other:
			sb.WriteString(r.styles.DangerText.Render(escapeBytes(block.Bytes)))
		}
	}
	return sb.String()
}

// writeText renders printable text, showing CR and LF as escapes so a dump
// always stays on one row.
func (r *Renderer) writeText(sb *strings.Builder, b []byte) {
	start := 0
	flush := func(end int) {
		if end > start {
			sb.WriteString(r.styles.Text.Render(string(b[start:end])))
		}
	}
	for i, c := range b {
		switch c {
		case '\r':
			flush(i)
			sb.WriteString(r.styles.MutedText.Render(`\r`))
			start = i + 1
		case '\n':
			flush(i)
			sb.WriteString(r.styles.MutedText.Render(`\n`))
			start = i + 1
		}
	}
	flush(len(b))
}

// hexRows renders b as offset, hex bytes coloured by category, and a
// printable-ASCII gutter.
func (r *Renderer) hexRows(b []byte, stats utf8scan.Stats) ([]string, error) {
	cats := make([]utf8scan.Category, 0, len(b))
	for _, block := range stats.Blocks {
		for range block.Bytes {
			cats = append(cats, block.Category)
		}
	}

	var rows []string
	cur := utf8scan.NewCursor(b)
	for !cur.Done() {
		offset := cur.Pos()
		chunk, err := cur.Read(r.opts.HexRowBytes)
		if err != nil {
			return nil, fmt.Errorf("hex dump: %w", err)
		}
		rowCats := cats[offset : offset+len(chunk)]

		var sb strings.Builder
		sb.WriteString(r.styles.MutedText.Render(fmt.Sprintf("%08x", offset)))
		sb.WriteString("  ")
		r.writeRuns(&sb, chunk, rowCats, func(run []byte) string {
			parts := make([]string, len(run))
			for i, c := range run {
				parts[i] = fmt.Sprintf("%02x", c)
			}
			return strings.Join(parts, " ")
		}, " ")
		sb.WriteString(strings.Repeat(" ", (r.opts.HexRowBytes-len(chunk))*3))
		sb.WriteString("  |")
		r.writeRuns(&sb, chunk, rowCats, printable, "")
		sb.WriteString("|")
		rows = append(rows, sb.String())
	}
	return rows, nil
}

// writeRuns styles consecutive bytes of one category together.
func (r *Renderer) writeRuns(sb *strings.Builder, chunk []byte, cats []utf8scan.Category, format func([]byte) string, sep string) {
	start := 0
	for i := 1; i <= len(chunk); i++ {
		if i < len(chunk) && cats[i] == cats[start] {
			continue
		}
		if start > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(r.styles.CategoryStyle(cats[start]).Render(format(chunk[start:i])))
		start = i
	}
}

func printable(run []byte) string {
	out := make([]byte, len(run))
	for i, c := range run {
		if c >= 0x20 && c < 0x7F {
			out[i] = c
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

func escapeControls(b []byte) string {
	var sb strings.Builder
	cur := utf8scan.NewCursor(b)
	for {
		ch, ok := cur.Next()
		if !ok {
			break
		}
		if ch.Size == 1 {
			fmt.Fprintf(&sb, `\x%02x`, ch.Bytes[0])
			continue
		}
		r, _ := utf8.DecodeRune(ch.Bytes)
		fmt.Fprintf(&sb, `\u{%04x}`, r)
	}
	return sb.String()
}

func escapeBytes(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		fmt.Fprintf(&sb, `\x%02x`, c)
	}
	return sb.String()
}
