package pipeline

import (
	"strings"

	"vdat/internal/lookup"
	"vdat/internal/util"
)

type Normalizer struct {
	tables lookup.Tables
}

func NewNormalizer(tables lookup.Tables) *Normalizer {
	return &Normalizer{tables: tables}
}

func (n *Normalizer) MapBrand(raw string) string {
	b := util.UpperTrim(raw)
	if b == "" {
		return ""
	}
	for _, alias := range n.tables.Brands {
		if alias.Alias == b {
			return alias.Code
		}
	}
	for _, alias := range n.tables.Brands {
		if strings.Contains(b, alias.Alias) {
			return alias.Code
		}
	}
	return b
}

func (n *Normalizer) CleanModel(rawBrand, rawModel string) string {
	model := util.UpperTrim(rawModel)
	if model == "" {
		return ""
	}

	brand := util.UpperTrim(rawBrand)
	if brand != "" && strings.HasPrefix(model, brand) {
		return strings.TrimSpace(model[len(brand):])
	}

	code := n.MapBrand(rawBrand)
	if prefix, ok := n.tables.ModelPrefixes[code]; ok && strings.HasPrefix(model, prefix) {
		stripped := strings.TrimSpace(model[1:])
		if stripped != "" {
			return stripped
		}
	}
	return model
}
