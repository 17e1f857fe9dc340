package csslint

import (
	"errors"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// token is a lexer token with its 1-based start position.
type token struct {
	tt   css.TokenType
	data string
	line int
	col  int
}

func (t token) is(tt css.TokenType, data string) bool {
	return t.tt == tt && t.data == data
}

// tokenStream tracks line and column over the css lexer. Every input byte
// belongs to some token, so positions can be advanced from token data.
type tokenStream struct {
	lexer *css.Lexer
	line  int
	col   int
	last  token
}

func newTokenStream(content string) *tokenStream {
	return &tokenStream{
		lexer: css.NewLexer(parse.NewInputString(content)),
		line:  1,
		col:   1,
	}
}

func (s *tokenStream) next() token {
	tt, data := s.lexer.Next()
	tok := token{tt: tt, data: string(data), line: s.line, col: s.col}
	for _, r := range tok.data {
		if r == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
	s.last = tok
	return tok
}

// nextSignificant skips whitespace and comments.
func (s *tokenStream) nextSignificant() token {
	for {
		tok := s.next()
		if tok.tt != css.WhitespaceToken && tok.tt != css.CommentToken {
			return tok
		}
	}
}

// err returns the lexer error, if any, once an ErrorToken was seen.
func (s *tokenStream) err() error {
	if err := s.lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// skipBlock consumes tokens up to and including the '}' that closes a block
// whose '{' was already read.
func (s *tokenStream) skipBlock() error {
	depth := 1
	for depth > 0 {
		tok := s.next()
		switch tok.tt {
		case css.ErrorToken:
			if err := s.err(); err != nil {
				return err
			}
			return unexpectedEOF(s)
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
	}
	return nil
}
