// Package report assembles Markdown verdict reports for single comparisons
// and pairwise sweeps, and renders them to HTML for the upload UI.
package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"neurometrics/domain/compare"
	"neurometrics/internal/sweep"
)

// ComparisonMarkdown builds a Markdown report for a single comparison.
func ComparisonMarkdown(labelA, labelB string, sizeA, sizeB int, result compare.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Group Comparison: %s vs %s\n\n", labelA, labelB)
	fmt.Fprintf(&b, "Generated %s\n\n", time.Now().UTC().Format(time.RFC1123))
	fmt.Fprintf(&b, "| Group | Observations |\n|---|---|\n")
	fmt.Fprintf(&b, "| %s | %d |\n", labelA, sizeA)
	fmt.Fprintf(&b, "| %s | %d |\n\n", labelB, sizeB)
	fmt.Fprintf(&b, "**p-value:** %.4f\n\n", result.PValue)
	fmt.Fprintf(&b, "**Significant at 0.05:** %v\n\n", result.Significant)
	fmt.Fprintf(&b, "> %s\n", result.Message)

	return b.String()
}

// SweepMarkdown builds a Markdown report for a full pairwise sweep.
func SweepMarkdown(source string, results []sweep.PairResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Pairwise Comparison Sweep: %s\n\n", source)
	fmt.Fprintf(&b, "Generated %s — %d pairs\n\n", time.Now().UTC().Format(time.RFC1123), len(results))
	fmt.Fprintf(&b, "| Pair | p-value | Significant | Verdict |\n|---|---|---|---|\n")

	for _, r := range results {
		pair := fmt.Sprintf("%s vs %s", r.ColumnA, r.ColumnB)
		if r.Result == nil {
			fmt.Fprintf(&b, "| %s | — | — | %s |\n", pair, r.Error)
			continue
		}
		fmt.Fprintf(&b, "| %s | %.4f | %v | %s |\n",
			pair, r.Result.PValue, r.Result.Significant, r.Result.Message)
	}

	return b.String()
}

// RenderHTML converts a Markdown report to HTML for template embedding.
func RenderHTML(md string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.ToHTML([]byte(md), p, renderer))
}
