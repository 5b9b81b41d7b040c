// Package tape implements .tape automation scripts for albumdesk: a small
// line-oriented language that drives the desktop headlessly.
package tape

import (
	"fmt"
	"strings"
	"unicode"
)

// TokenType classifies a lexer token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNewline
	TokenIdent
	TokenString
	TokenNumber
	TokenDuration
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of file"
	case TokenNewline:
		return "newline"
	case TokenIdent:
		return "identifier"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// Token is a lexeme with its position.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// Lexer splits tape source into tokens. Comments start with # and run to
// the end of the line.
type Lexer struct {
	input  []rune
	pos    int
	line   int
	column int
}

// NewLexer returns a lexer over input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input), line: 1, column: 1}
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() rune {
	r := l.input[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

// Next returns the next token.
func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.input) {
		r := l.peek()
		if r == '#' {
			for l.pos < len(l.input) && l.peek() != '\n' {
				l.advance()
			}
			continue
		}
		if r == '\n' || !unicode.IsSpace(r) {
			break
		}
		l.advance()
	}

	tok := Token{Line: l.line, Column: l.column}
	if l.pos >= len(l.input) {
		tok.Type = TokenEOF
		return tok, nil
	}

	r := l.peek()
	switch {
	case r == '\n':
		l.advance()
		tok.Type = TokenNewline
		return tok, nil
	case r == '"':
		s, err := l.readString()
		if err != nil {
			return tok, err
		}
		tok.Type, tok.Literal = TokenString, s
		return tok, nil
	case unicode.IsDigit(r) || r == '-' || r == '+':
		word := l.readWord()
		tok.Literal = word
		tok.Type = TokenNumber
		if strings.IndexFunc(strings.TrimLeft(word, "+-"), func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
			tok.Type = TokenDuration
		}
		return tok, nil
	case unicode.IsLetter(r):
		tok.Type, tok.Literal = TokenIdent, l.readWord()
		return tok, nil
	default:
		return tok, fmt.Errorf("%d:%d: unexpected character %q", tok.Line, tok.Column, r)
	}
}

func (l *Lexer) readWord() string {
	start := l.pos
	for l.pos < len(l.input) {
		r := l.peek()
		if unicode.IsSpace(r) || r == '#' || r == '"' {
			break
		}
		l.advance()
	}
	return string(l.input[start:l.pos])
}

func (l *Lexer) readString() (string, error) {
	line, col := l.line, l.column
	l.advance() // opening quote
	var b strings.Builder
	for l.pos < len(l.input) {
		r := l.advance()
		switch r {
		case '"':
			return b.String(), nil
		case '\n':
			return "", fmt.Errorf("%d:%d: unterminated string", line, col)
		case '\\':
			if l.pos >= len(l.input) {
				return "", fmt.Errorf("%d:%d: unterminated string", line, col)
			}
			esc := l.advance()
			switch esc {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			default:
				b.WriteRune(esc)
			}
		default:
			b.WriteRune(r)
		}
	}
	return "", fmt.Errorf("%d:%d: unterminated string", line, col)
}

// Tokenize lexes the whole input.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}
