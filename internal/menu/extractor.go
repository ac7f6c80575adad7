package menu

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// --------------------------------------------------
// Menu text extractor
// --------------------------------------------------
// Best-effort heuristic parser for raw OCR output, NOT a grammar.
// Accuracy depends entirely on OCR quality; upstream grayscale
// conversion and tesseract settings are invisible here. Unparseable
// input yields an empty slice, never an error.

const (
	minLineLength = 3
	minNameLength = 2

	// Upper price sanity bound. Earlier variants used 200; 500 is the
	// more permissive value and the one we keep.
	maxItemPrice = 500
)

// Placeholder/template text that menu builders and photo apps burn
// into images. Matching is substring-based and approximate: the bare
// words "your" and "menu" stay out of this list because too many real
// item names contain them, only the phrase "your menu" is rejected.
var noiseSubstrings = []string{
	"insert",
	"description",
	"placeholder",
	"your menu",
	"add item",
	"edit",
	"delete",
	"example",
	"logo",
	"profile",
}

var (
	// optional currency symbol, 1-3 integer digits, optional 2-decimal
	// fraction, anchored at end of line
	trailingPriceRe = regexp.MustCompile(`\$?\s*(\d{1,3}(?:\.\d{2})?)\s*$`)

	// a line that is nothing but a price token
	priceOnlyRe = regexp.MustCompile(`^\$?\s*(\d{1,3}(?:\.\d{2})?)\s*$`)

	// bullets, box-drawing leftovers and currency junk at line start;
	// lone "e"/"o" are what tesseract tends to read bullet glyphs as
	leadingDecorRe = regexp.MustCompile(`^(?:[•·\-_.…$\[\]|]|[eo©*]\s)+\s*`)

	// decorative runs around an extracted name
	nameEdgeDecorRe = regexp.MustCompile(`^[._\-…•·]+|[._\-…•·]+$`)
)

// ExtractItems parses raw OCR text into menu item candidates, one
// pass over the lines. A line without an inline trailing price may
// take its price from an immediately following price-only line.
func ExtractItems(rawText string) []ItemCandidate {
	lines := strings.Split(rawText, "\n")

	var items []ItemCandidate

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if len(line) < minLineLength || isJunkLine(line) {
			continue
		}

		line = stripLeadingDecoration(line)

		name, price, ok := splitTrailingPrice(line)
		if !ok {
			// Peek: price on its own line right below the name.
			if i+1 < len(lines) {
				if p, priceLine := parsePriceOnly(strings.TrimSpace(lines[i+1])); priceLine {
					name, price, ok = line, p, true
					i++
				}
			}
		}
		if !ok {
			continue
		}

		name = cleanName(name)
		if !validCandidate(name, price) {
			continue
		}

		items = append(items, ItemCandidate{
			ID:          newItemID(),
			Name:        name,
			Price:       math.Round(price*100) / 100,
			Description: "",
		})
	}

	return items
}

// --------------------------------------------------
// Pipeline stages
// --------------------------------------------------

func isJunkLine(line string) bool {
	if digitsOnly(line) {
		return true
	}
	lower := strings.ToLower(line)
	for _, noise := range noiseSubstrings {
		if strings.Contains(lower, noise) {
			return true
		}
	}
	return false
}

func stripLeadingDecoration(line string) string {
	return strings.TrimSpace(leadingDecorRe.ReplaceAllString(line, ""))
}

// splitTrailingPrice pulls an end-of-line price token off the line,
// returning the remaining name and the parsed price.
func splitTrailingPrice(line string) (string, float64, bool) {
	loc := trailingPriceRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", 0, false
	}

	price, err := strconv.ParseFloat(line[loc[2]:loc[3]], 64)
	if err != nil {
		return "", 0, false
	}

	return strings.TrimSpace(line[:loc[0]]), price, true
}

func parsePriceOnly(line string) (float64, bool) {
	m := priceOnlyRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	price, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

func cleanName(name string) string {
	return strings.TrimSpace(nameEdgeDecorRe.ReplaceAllString(name, ""))
}

func validCandidate(name string, price float64) bool {
	if len(name) < minNameLength {
		return false
	}
	if digitsOnly(strings.ReplaceAll(name, " ", "")) {
		return false
	}
	if price <= 0 || price > maxItemPrice {
		return false
	}
	return true
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func newItemID() string {
	return "m_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
