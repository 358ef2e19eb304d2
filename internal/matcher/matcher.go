package matcher

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/tiecvui/api/internal/catalog"
	"github.com/tiecvui/api/internal/quote"
)

const (
	keywordWeight = 3
	nameWeight    = 1
)

// Matcher scores pasted order lines against the food catalog by token
// overlap. Name tokens score 1, curated keywords score 3: keywords are
// maintained precisely to disambiguate dishes that share common words
// ("gà nướng" vs "gà hấp").
type Matcher struct {
	items      []catalog.Item
	nameTokens [][]string
	keywords   [][]string
}

// New creates a Matcher with pre-tokenized names and keywords.
func New(items []catalog.Item) *Matcher {
	m := &Matcher{
		items:      items,
		nameTokens: make([][]string, len(items)),
		keywords:   make([][]string, len(items)),
	}

	for i, item := range items {
		m.nameTokens[i] = tokenize(normalize(item.Name))
		if item.Keywords != "" {
			parts := strings.Split(item.Keywords, ",")
			kws := make([]string, 0, len(parts))
			for _, part := range parts {
				if n := normalize(part); n != "" {
					kws = append(kws, n)
				}
			}
			m.keywords[i] = kws
		}
	}

	return m
}

// Match returns ranked candidates per input line, best first. Lines that
// score against nothing get an empty candidate slice. Implements
// quote.Matcher.
func (m *Matcher) Match(ctx context.Context, lines []string) ([][]quote.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([][]quote.Candidate, len(lines))
	for i, line := range lines {
		results[i] = m.matchLine(line)
	}
	return results, nil
}

func (m *Matcher) matchLine(line string) []quote.Candidate {
	normLine := normalize(line)
	padded := " " + normLine + " "
	inputTokens := make(map[string]bool)
	for _, tok := range tokenize(normLine) {
		inputTokens[tok] = true
	}

	var candidates []quote.Candidate
	for i, item := range m.items {
		score := 0
		// Keywords may be multi-word phrases; match them whole against
		// the normalized line.
		for _, kw := range m.keywords[i] {
			if strings.Contains(padded, " "+kw+" ") {
				score += keywordWeight
			}
		}
		for _, tok := range m.nameTokens[i] {
			if inputTokens[tok] {
				score += nameWeight
			}
		}
		if score > 0 {
			candidates = append(candidates, quote.Candidate{ItemID: item.ID, Confidence: score})
		}
	}

	// Stable so equal scores keep catalog order.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Confidence > candidates[b].Confidence
	})

	return candidates
}

// Vietnamese diacritic folding, so "Gà Nướng" and "ga nuong" tokenize the
// same way.
var foldTable = map[rune]rune{}

func init() {
	groups := map[rune]string{
		'a': "àáạảãâầấậẩẫăằắặẳẵ",
		'e': "èéẹẻẽêềếệểễ",
		'i': "ìíịỉĩ",
		'o': "òóọỏõôồốộổỗơờớợởỡ",
		'u': "ùúụủũưừứựửữ",
		'y': "ỳýỵỷỹ",
		'd': "đ",
	}
	for base, variants := range groups {
		for _, r := range variants {
			foldTable[r] = base
		}
	}
}

// normalize lowercases, folds diacritics, and replaces every other
// non-alphanumeric rune with a space.
func normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for _, r := range s {
		r = unicode.ToLower(r)
		if folded, ok := foldTable[r]; ok {
			r = folded
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

func tokenize(s string) []string {
	return strings.Fields(s)
}
