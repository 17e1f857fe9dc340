package csslint

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// checkSelectors runs the selector rules on each comma-separated selector.
func (c *checker) checkSelectors(tokens []token) {
	for _, sel := range splitSelectors(tokens) {
		ids := 0
		for _, tok := range sel {
			if tok.tt == css.HashToken {
				ids++
			}
		}
		switch {
		case ids == 1:
			c.report("ids", sel[0], "Don't use IDs in selectors.")
		case ids > 1:
			c.report("ids", sel[0], fmt.Sprintf("%d IDs in the selector, really?", ids))
		}

		if last := sel[len(sel)-1]; last.is(css.DelimToken, "*") {
			c.report("universal-selector", sel[0], "The universal selector (*) is known to be slow.")
		}
	}
}

// splitSelectors splits a selector list on top-level commas, dropping
// whitespace and comments.
func splitSelectors(tokens []token) [][]token {
	var (
		out   [][]token
		cur   []token
		depth int
	)
	for _, tok := range tokens {
		switch tok.tt {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.LeftParenthesisToken, css.FunctionToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		case css.CommaToken:
			if depth == 0 {
				if len(cur) > 0 {
					out = append(out, cur)
				}
				cur = nil
				continue
			}
		}
		cur = append(cur, tok)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// checkDeclaration runs the property rules on one declaration. seen and
// lastProp carry state across the declarations of one block.
func (c *checker) checkDeclaration(name token, value []token, seen map[string]string, lastProp *string) {
	if name.tt == css.CustomPropertyNameToken || strings.HasPrefix(name.data, "--") {
		// Custom properties hold arbitrary values.
		*lastProp = name.data
		return
	}
	prop := strings.ToLower(name.data)

	important := false
	var parts []string
	for i := 0; i < len(value); i++ {
		tok := value[i]
		if tok.is(css.DelimToken, "!") {
			if j := nextSignificantIndex(value, i+1); j >= 0 && strings.EqualFold(value[j].data, "important") {
				important = true
				i = j
				continue
			}
		}
		if tok.tt == css.CommentToken {
			continue
		}
		parts = append(parts, tok.data)

		if tok.tt == css.DimensionToken || tok.tt == css.PercentageToken {
			if isZeroWithUnit(tok.data) {
				c.report("zero-units", tok, "Values of 0 shouldn't have units specified.")
			}
		}
	}
	val := strings.Join(strings.Fields(strings.Join(parts, "")), " ")

	if important {
		c.important++
		c.report("important", name, "Use of !important")
	}

	if prev, ok := seen[prop]; ok && (*lastProp != prop || prev == val) {
		c.report("duplicate-properties", name, fmt.Sprintf("Duplicate property '%s' found.", prop))
	}
	seen[prop] = val
	*lastProp = prop

	switch prop {
	case "float":
		if !strings.EqualFold(val, "none") {
			c.floats++
		}
	case "font-size":
		c.fontSizes++
	}
}

func nextSignificantIndex(tokens []token, from int) int {
	for i := from; i < len(tokens); i++ {
		if tokens[i].tt != css.WhitespaceToken && tokens[i].tt != css.CommentToken {
			return i
		}
	}
	return -1
}

// isZeroWithUnit reports whether a dimension or percentage is a zero with a
// unit attached. Time units are exempt: 0s is required in some shorthands.
func isZeroWithUnit(data string) bool {
	num := strings.TrimLeft(data, "+-")
	end := 0
	for end < len(num) && (num[end] == '.' || (num[end] >= '0' && num[end] <= '9')) {
		end++
	}
	digits, unit := num[:end], strings.ToLower(num[end:])
	if unit == "" || !strings.Contains(digits, "0") || strings.Trim(digits, "0.") != "" {
		return false
	}
	switch unit {
	case "s", "ms":
		return false
	}
	return true
}
