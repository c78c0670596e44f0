package pipeline

import (
	"regexp"
	"strings"

	"vdat/internal"
	"vdat/internal/util"
)

var (
	reVINStrict = regexp.MustCompile(`\b[A-HJ-NPR-Z0-9]{17}\b`)
	reVINLoose  = regexp.MustCompile(`\b[A-Z0-9]{17}\b`)
)

type OCROptions struct {
	DefaultBrand  string
	DefaultModel  string
	StrictCharset bool
}

func (n *Normalizer) ExtractFromText(text string, opts OCROptions) []internal.VehicleRecord {
	re := reVINLoose
	if opts.StrictCharset {
		re = reVINStrict
	}

	aliases := n.tables.BrandCodes()

	out := []internal.VehicleRecord{}
	for _, line := range util.SplitLines(text) {
		line = strings.ToUpper(line)
		loc := re.FindStringIndex(line)
		if loc == nil {
			continue
		}

		vin := n.correctConfusions(line[loc[0]:loc[1]])
		brand, model := recoverContext(line[:loc[0]], aliases)
		if brand == "" {
			brand = opts.DefaultBrand
			model = opts.DefaultModel
		} else if model == "" {
			model = opts.DefaultModel
		}

		out = append(out, internal.VehicleRecord{
			VIN:    vin,
			Brand:  brand,
			Model:  model,
			Source: internal.ChannelOCR,
		})
	}
	return out
}

func (n *Normalizer) correctConfusions(token string) string {
	return strings.Map(func(r rune) rune {
		if digit, ok := n.tables.OCRConfusions[r]; ok {
			return digit
		}
		return r
	}, token)
}

// The brand token must precede the VIN on the same physical line.
func recoverContext(prefix string, aliases map[string]string) (brand, model string) {
	tokens := strings.Fields(util.StripToAlnumSpace(prefix))
	for i, tok := range tokens {
		if _, ok := aliases[tok]; ok {
			return tok, strings.Join(tokens[i+1:], " ")
		}
	}
	return "", ""
}
