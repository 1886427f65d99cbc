// Package efg: savefile tokenizer.

package efg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// token identifies one lexical element of the savefile grammar.
type token int

const (
	tokEOF token = iota
	tokInteger
	tokDouble
	tokRational
	tokText
	tokEFG
	tokD
	tokR
	tokC
	tokP
	tokT
	tokLBrace
	tokRBrace
	tokComma
)

func (t token) String() string {
	switch t {
	case tokEOF:
		return "end of file"
	case tokInteger:
		return "integer"
	case tokDouble:
		return "decimal"
	case tokRational:
		return "rational"
	case tokText:
		return "text"
	case tokEFG:
		return "EFG"
	case tokD:
		return "D"
	case tokR:
		return "R"
	case tokC:
		return "c"
	case tokP:
		return "p"
	case tokT:
		return "t"
	case tokLBrace:
		return "{"
	case tokRBrace:
		return "}"
	case tokComma:
		return ","
	}

	return "unknown"
}

func (t token) isNumber() bool {
	return t == tokInteger || t == tokDouble || t == tokRational
}

// lexer produces savefile tokens one at a time, tracking the line number
// for error reports. After next returns, tok holds the current token, lit
// its literal text, and n its value when tok is tokInteger.
type lexer struct {
	r    *bufio.Reader
	line int

	tok token
	lit string
	n   int
}

func newLexer(r io.Reader) *lexer {
	return &lexer{r: bufio.NewReader(r), line: 1}
}

// errf wraps ErrSyntax with the current line number.
func (lx *lexer) errf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, lx.line, fmt.Sprintf(format, args...))
}

// expect advances and demands one specific token.
func (lx *lexer) expect(want token, what string) error {
	if err := lx.next(); err != nil {
		return err
	}
	if lx.tok != want {
		return lx.errf("expected %s, got %s", what, lx.tok)
	}

	return nil
}

// next advances to the following token. A clean end of stream yields
// tokEOF; other read failures surface wrapped.
func (lx *lexer) next() error {
	c, err := lx.skipSpace()
	if err == io.EOF {
		lx.tok = tokEOF
		return nil
	}
	if err != nil {
		return fmt.Errorf("efg: read: %w", err)
	}

	switch c {
	case 'c':
		lx.tok = tokC
		return nil
	case 'D':
		lx.tok = tokD
		return nil
	case 'E':
		return lx.keyword()
	case 'p':
		lx.tok = tokP
		return nil
	case 'R':
		lx.tok = tokR
		return nil
	case 't':
		lx.tok = tokT
		return nil
	case '{':
		lx.tok = tokLBrace
		return nil
	case '}':
		lx.tok = tokRBrace
		return nil
	case ',':
		lx.tok = tokComma
		return nil
	case '"':
		return lx.text()
	}
	if c == '-' || c == '.' || isDigit(c) {
		return lx.number(c)
	}

	return lx.errf("unexpected character %q", c)
}

// skipSpace consumes whitespace and returns the first byte after it.
func (lx *lexer) skipSpace() (byte, error) {
	for {
		c, err := lx.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if c == '\n' {
			lx.line++
			continue
		}
		if !isSpace(c) {
			return c, nil
		}
	}
}

// keyword consumes the FG of an EFG header keyword plus the whitespace
// byte that must follow it.
func (lx *lexer) keyword() error {
	for _, want := range []byte{'F', 'G'} {
		c, err := lx.r.ReadByte()
		if err != nil || c != want {
			return lx.errf("expected EFG keyword")
		}
	}
	c, err := lx.r.ReadByte()
	if err != nil || !isSpace(c) {
		return lx.errf("expected EFG keyword")
	}
	if c == '\n' {
		lx.line++
	}
	lx.tok = tokEFG

	return nil
}

// number scans an integer, decimal or rational literal starting at c. The
// literal text is preserved verbatim so values convert exactly later.
func (lx *lexer) number(c byte) error {
	var sb strings.Builder
	sb.WriteByte(c)

	if c == '.' {
		// Bare decimal such as .25
		if err := lx.digits(&sb); err != nil {
			return err
		}
		lx.tok, lx.lit = tokDouble, sb.String()
		return nil
	}

	if err := lx.digits(&sb); err != nil {
		return err
	}
	sep, err := lx.r.ReadByte()
	if err == io.EOF {
		return lx.integer(sb.String())
	}
	if err != nil {
		return fmt.Errorf("efg: read: %w", err)
	}
	switch sep {
	case '.':
		sb.WriteByte(sep)
		if err := lx.digits(&sb); err != nil {
			return err
		}
		lx.tok, lx.lit = tokDouble, sb.String()
		return nil
	case '/':
		sb.WriteByte(sep)
		if err := lx.digits(&sb); err != nil {
			return err
		}
		lx.tok, lx.lit = tokRational, sb.String()
		return nil
	}
	_ = lx.r.UnreadByte()

	return lx.integer(sb.String())
}

// digits appends consecutive digits and leaves the first non-digit unread.
func (lx *lexer) digits(sb *strings.Builder) error {
	for {
		c, err := lx.r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("efg: read: %w", err)
		}
		if !isDigit(c) {
			return lx.r.UnreadByte()
		}
		sb.WriteByte(c)
	}
}

func (lx *lexer) integer(lit string) error {
	n, err := strconv.Atoi(lit)
	if err != nil {
		return lx.errf("bad integer %q", lit)
	}
	lx.tok, lx.lit, lx.n = tokInteger, lit, n

	return nil
}

// text scans a double-quoted string. A backslash escapes a following
// quote; any other backslash pair is kept whole.
func (lx *lexer) text() error {
	var sb strings.Builder
	slash := false
	for {
		c, err := lx.r.ReadByte()
		if err != nil {
			return lx.errf("unterminated string")
		}
		if c == '\n' {
			lx.line++
		}
		if c == '"' && !slash {
			break
		}
		switch {
		case slash && c == '"':
			sb.WriteByte('"')
		case slash:
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c != '\\':
			sb.WriteByte(c)
		}
		slash = c == '\\'
	}
	lx.tok, lx.lit = tokText, sb.String()

	return nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
