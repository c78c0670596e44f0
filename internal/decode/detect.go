package decode

import (
	"regexp"
	"strings"
)

type DetectResult struct {
	IsManifest bool
	Score      float64
	Reason     string
}

var manifestKeywords = []string{"vin", "manifest", "voyage", "load list", "vehicle", "chassis", "shipping"}

var reVINToken = regexp.MustCompile(`\b[A-Za-z0-9]{17}\b`)

func DetectManifest(subject, body string, attachmentNames []string) DetectResult {
	subject = strings.ToLower(subject)
	lowerBody := strings.ToLower(body)

	score := 0.0
	for _, kw := range manifestKeywords {
		if strings.Contains(subject, kw) {
			score += 0.2
		}
		if strings.Contains(lowerBody, kw) {
			score += 0.1
		}
	}

	vinHits := len(reVINToken.FindAllString(body, 3))
	if vinHits >= 2 {
		score += 0.4
	} else if vinHits == 1 {
		score += 0.2
	}

	for _, name := range attachmentNames {
		if hasSpreadsheetExt(name) {
			score += 0.25
			break
		}
	}

	if score > 1 {
		score = 1
	}

	isManifest := score >= 0.45
	reason := "rules_negative"
	if isManifest {
		reason = "rules_positive"
	}
	return DetectResult{IsManifest: isManifest, Score: score, Reason: reason}
}
