package csslint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2/css"
	"github.com/yacobolo/sslint/internal/reconcile"
)

// Rollup thresholds
const (
	maxImportant = 10
	maxFloats    = 10
	maxFontSizes = 10
)

// Result holds the messages produced by one Verify call.
type Result struct {
	Messages []reconcile.Diagnostic
}

// ParseError is returned when the CSS cannot be checked at all.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, col %d", e.Message, e.Line, e.Column)
}

func unexpectedEOF(s *tokenStream) error {
	return &ParseError{Line: s.line, Column: s.col, Message: "Unexpected end of input, expected '}'"}
}

// Verify checks css against ruleset. A nil ruleset means DefaultRuleset.
// Messages are ordered by position with rollups last.
func Verify(content string, ruleset Ruleset) (*Result, error) {
	if ruleset == nil {
		ruleset = DefaultRuleset()
	}

	c := &checker{
		ruleset: ruleset,
		lines:   strings.Split(content, "\n"),
	}

	s := newTokenStream(content)
	if err := c.parseRules(s, true); err != nil {
		return nil, err
	}
	c.rollups()

	sort.SliceStable(c.messages, func(i, j int) bool {
		a, b := c.messages[i], c.messages[j]
		if a.Rollup != b.Rollup {
			return b.Rollup
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	return &Result{Messages: c.messages}, nil
}

type checker struct {
	ruleset  Ruleset
	lines    []string
	messages []reconcile.Diagnostic

	important int
	floats    int
	fontSizes int
}

func (c *checker) severity(ruleID string) (reconcile.Severity, bool) {
	switch c.ruleset[ruleID] {
	case Error:
		return reconcile.SeverityError, true
	case Warning:
		return reconcile.SeverityWarning, true
	default:
		return "", false
	}
}

func (c *checker) report(ruleID string, at token, text string) {
	sev, ok := c.severity(ruleID)
	if !ok {
		return
	}

	evidence := ""
	if at.line-1 < len(c.lines) {
		evidence = strings.TrimRight(c.lines[at.line-1], "\r")
	}

	c.messages = append(c.messages, reconcile.Diagnostic{
		Line:     at.line,
		Column:   at.col,
		Severity: sev,
		RuleID:   ruleID,
		Text:     text,
		Evidence: evidence,
	})
}

func (c *checker) rollup(ruleID, text string) {
	sev, ok := c.severity(ruleID)
	if !ok {
		return
	}
	c.messages = append(c.messages, reconcile.Diagnostic{
		Severity: sev,
		RuleID:   ruleID,
		Text:     text,
		Rollup:   true,
	})
}

func (c *checker) rollups() {
	if c.important >= maxImportant {
		c.rollup("important", fmt.Sprintf("Too many !important declarations (%d), try to use less than %d to avoid specificity issues.", c.important, maxImportant))
	}
	if c.floats >= maxFloats {
		c.rollup("floats", fmt.Sprintf("Too many floats (%d), you're probably using them for layout. Consider using a grid system instead.", c.floats))
	}
	if c.fontSizes >= maxFontSizes {
		c.rollup("font-sizes", fmt.Sprintf("Too many font-size declarations (%d), abstraction needed.", c.fontSizes))
	}
}

// parseRules reads rules until EOF (top level) or the '}' closing a group
// rule such as @media.
func (c *checker) parseRules(s *tokenStream, top bool) error {
	for {
		tok := s.nextSignificant()
		switch tok.tt {
		case css.ErrorToken:
			if err := s.err(); err != nil {
				return err
			}
			if !top {
				return unexpectedEOF(s)
			}
			return nil
		case css.RightBraceToken:
			if top {
				return &ParseError{Line: tok.line, Column: tok.col, Message: "Unexpected token '}'"}
			}
			return nil
		case css.CDOToken, css.CDCToken, css.SemicolonToken:
			continue
		case css.AtKeywordToken:
			if err := c.parseAtRule(s, tok); err != nil {
				return err
			}
		default:
			if err := c.parseStyleRule(s, tok); err != nil {
				return err
			}
		}
	}
}

func (c *checker) parseAtRule(s *tokenStream, at token) error {
	name := strings.ToLower(at.data)
	if name == "@import" {
		c.report("import", at, "@import prevents parallel downloads, use <link> instead.")
	}

	for {
		tok := s.next()
		switch tok.tt {
		case css.ErrorToken:
			return s.err()
		case css.SemicolonToken:
			return nil
		case css.RightBraceToken:
			return &ParseError{Line: tok.line, Column: tok.col, Message: "Unexpected token '}'"}
		case css.LeftBraceToken:
			switch {
			case isGroupRule(name):
				return c.parseRules(s, false)
			case isDeclarationAtRule(name):
				_, err := c.parseDeclarations(s)
				return err
			default:
				return s.skipBlock()
			}
		}
	}
}

func isGroupRule(name string) bool {
	switch strings.TrimPrefix(name, "@") {
	case "media", "supports", "document", "-moz-document", "layer", "container", "scope":
		return true
	}
	return strings.HasSuffix(name, "keyframes")
}

func isDeclarationAtRule(name string) bool {
	switch strings.TrimPrefix(name, "@") {
	case "font-face", "page", "viewport", "-ms-viewport", "counter-style", "property", "font-palette-values":
		return true
	}
	return false
}

func (c *checker) parseStyleRule(s *tokenStream, first token) error {
	selector := []token{first}
	if first.tt != css.LeftBraceToken {
		for {
			tok := s.next()
			if tok.tt == css.ErrorToken {
				if err := s.err(); err != nil {
					return err
				}
				return &ParseError{Line: tok.line, Column: tok.col, Message: "Expected '{' after selector"}
			}
			if tok.tt == css.RightBraceToken {
				return &ParseError{Line: tok.line, Column: tok.col, Message: "Unexpected token '}'"}
			}
			if tok.tt == css.LeftBraceToken {
				break
			}
			selector = append(selector, tok)
		}
	} else {
		selector = nil
	}

	c.checkSelectors(selector)

	count, err := c.parseDeclarations(s)
	if err != nil {
		return err
	}
	if count == 0 {
		c.report("empty-rules", first, "Rule is empty.")
	}
	return nil
}

// parseDeclarations reads declarations up to and including the closing '}'
// and returns how many were found.
func (c *checker) parseDeclarations(s *tokenStream) (int, error) {
	seen := make(map[string]string)
	lastProp := ""
	count := 0

	for {
		tok := s.nextSignificant()
		switch tok.tt {
		case css.ErrorToken:
			if err := s.err(); err != nil {
				return count, err
			}
			return count, unexpectedEOF(s)
		case css.RightBraceToken:
			return count, nil
		case css.SemicolonToken:
			continue
		case css.IdentToken, css.CustomPropertyNameToken:
			value, closed, ok, err := readDeclaration(s)
			if err != nil {
				return count, err
			}
			if ok {
				count++
				c.checkDeclaration(tok, value, seen, &lastProp)
			}
			if closed {
				return count, nil
			}
		default:
			// Not a declaration (nested rule or garbage): skip it.
			closed, err := skipStatement(s, tok)
			if err != nil {
				return count, err
			}
			if closed {
				return count, nil
			}
		}
	}
}

// readDeclaration reads ": value" after a property name. closed reports that
// the block's '}' was consumed; ok is false when no colon followed the name.
func readDeclaration(s *tokenStream) (value []token, closed, ok bool, err error) {
	colon := s.nextSignificant()
	switch colon.tt {
	case css.ColonToken:
	case css.RightBraceToken:
		return nil, true, false, nil
	case css.SemicolonToken:
		return nil, false, false, nil
	default:
		closed, err = skipStatement(s, colon)
		return nil, closed, false, err
	}

	depth := 0
	for {
		tok := s.next()
		switch tok.tt {
		case css.ErrorToken:
			if err := s.err(); err != nil {
				return value, false, true, err
			}
			return value, false, true, unexpectedEOF(s)
		case css.LeftParenthesisToken, css.FunctionToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		case css.SemicolonToken:
			if depth == 0 {
				return value, false, true, nil
			}
		case css.RightBraceToken:
			return value, true, true, nil
		case css.LeftBraceToken:
			if err := s.skipBlock(); err != nil {
				return value, false, true, err
			}
			continue
		}
		value = append(value, tok)
	}
}

// skipStatement skips tokens after from until ';' or the end of a nested
// block; closed reports that the enclosing block's '}' was consumed.
func skipStatement(s *tokenStream, from token) (closed bool, err error) {
	tok := from
	for {
		switch tok.tt {
		case css.ErrorToken:
			if err := s.err(); err != nil {
				return false, err
			}
			return false, unexpectedEOF(s)
		case css.SemicolonToken:
			return false, nil
		case css.RightBraceToken:
			return true, nil
		case css.LeftBraceToken:
			return false, s.skipBlock()
		}
		tok = s.next()
	}
}
