package summarizer

import (
	"fmt"
	"strings"
)

// Formatter defines the interface for formatting a Summary.
type Formatter interface {
	// Format converts a Summary to a formatted string.
	Format(summary *Summary) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder

	b.WriteString("# Meme Summary\n\n")
	fmt.Fprintf(&b, "Generated at %s\n\n", s.GeneratedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("## Input\n\n")
	b.WriteString("| Item | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| File | %s |\n", s.Input.Path)
	fmt.Fprintf(&b, "| Size | %s |\n\n", formatSize(s.Input.Size))

	b.WriteString("## Captions\n\n")
	b.WriteString("| Position | Text |\n|---|---|\n")
	fmt.Fprintf(&b, "| Top | %s |\n", captionCell(s.Captions.Top))
	fmt.Fprintf(&b, "| Bottom | %s |\n\n", captionCell(s.Captions.Bottom))

	b.WriteString("## Output\n\n")
	b.WriteString("| Item | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| File | %s |\n", s.Output.Path)
	fmt.Fprintf(&b, "| Format | %s |\n", s.Output.Format)
	fmt.Fprintf(&b, "| Dimensions | %dx%d |\n", s.Output.Width, s.Output.Height)
	fmt.Fprintf(&b, "| Frames | %d |\n", s.Output.FrameCount)
	if s.Output.Delay > 0 {
		fmt.Fprintf(&b, "| Frame delay | %d (1/100 s) |\n", s.Output.Delay)
	}
	fmt.Fprintf(&b, "| Size | %s |\n", formatSize(s.Output.Size))

	return b.String()
}

// captionCell escapes text for a Markdown table cell.
func captionCell(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "(none)"
	}
	return strings.ReplaceAll(text, "|", `\|`)
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
