package decode

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"vdat/internal"
)

var reSpaceRun = regexp.MustCompile(`  +|\t`)

func DecodePaste(text string) internal.RawGrid {
	if strings.Contains(strings.ToLower(text), "<table") {
		if grid := decodeHTMLTables(text); len(grid) > 0 {
			return grid
		}
	}

	grid := splitByDelimiter(text, "\t")
	if maxColumns(grid) >= 2 {
		return grid
	}
	for _, delim := range []string{";", ","} {
		if alt := splitByDelimiter(text, delim); maxColumns(alt) >= 2 {
			return alt
		}
	}
	lines := nonEmptyLines(text)
	out := make(internal.RawGrid, 0, len(lines))
	for _, line := range lines {
		out = append(out, reSpaceRun.Split(line, -1))
	}
	return out
}

func splitByDelimiter(text, delim string) internal.RawGrid {
	lines := nonEmptyLines(text)
	out := make(internal.RawGrid, 0, len(lines))
	for _, line := range lines {
		out = append(out, strings.Split(line, delim))
	}
	return out
}

func nonEmptyLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

func decodeHTMLTables(html string) internal.RawGrid {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	out := internal.RawGrid{}
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := []string{}
			row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(cell.Text()))
			})
			if len(cells) > 0 {
				out = append(out, cells)
			}
		})
	})
	return out
}
