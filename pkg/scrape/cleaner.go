package scrape

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Korean press boilerplate that survives body extraction and only wastes
// prompt tokens.
var krBoilerplate = []string{
	"무단전재",
	"무단 전재",
	"재배포 금지",
	"재배포금지",
	"저작권자",
	"기사제보",
}

// Clean normalizes extracted article text before it is sent to the
// summarizer. The KR locale additionally folds full-width ASCII forms,
// applies NFC composition, and drops press boilerplate lines. Cleaning
// never fails; unrecognized input passes through with only whitespace
// normalization.
func Clean(text, locale string) string {
	text = stripControl(text)

	if locale == "KR" {
		text = width.Narrow.String(text)
		text = norm.NFC.String(text)
		text = dropBoilerplateLines(text, krBoilerplate)
	}

	return normalizeSpacing(text)
}

// stripControl removes control and zero-width characters, keeping newlines
// so line-based boilerplate filtering still works.
func stripControl(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n':
			return r
		case '\u200b', '\u200c', '\u200d', '\ufeff':
			return -1
		}
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text)
}

func dropBoilerplateLines(text string, phrases []string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		boilerplate := false
		for _, phrase := range phrases {
			if strings.Contains(line, phrase) {
				boilerplate = true
				break
			}
		}
		if !boilerplate {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
