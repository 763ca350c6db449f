package textrep

import (
	"fmt"
	"strings"
)

type tokKind int

const (
	tokEOF tokKind = iota
	tokInt
	tokComma
	tokIllegal
)

type token struct {
	kind    tokKind
	lit     string // digits only: sign, prefix, suffix and underscores removed
	off     int    // offset of the first byte of the token
	neg     bool
	intBase int  // 10 or 16 for tokInt
	suffix  byte // 0, 'u' or 'i'
}

type lexer struct {
	src []byte
	off int
	cur token
}

func newLexer(src []byte) *lexer { return &lexer{src: src} }

func (lx *lexer) next() {
	if off := lx.skipSpaceAndComments(); off >= 0 {
		lx.illegal(off, "unterminated block comment")
		return
	}
	if lx.off >= len(lx.src) {
		lx.cur = token{kind: tokEOF, off: lx.off}
		return
	}
	b := lx.src[lx.off]
	if b == ',' {
		lx.cur = token{kind: tokComma, lit: ",", off: lx.off}
		lx.off++
		return
	}
	if isDigit(b) || (b == '-' && lx.peekIsDigit()) {
		lx.scanInt()
		return
	}
	lx.illegal(lx.off, fmt.Sprintf("unexpected char %q", b))
}

func (lx *lexer) scanInt() {
	start := lx.off
	tok := token{kind: tokInt, off: start, intBase: 10}
	if lx.src[lx.off] == '-' {
		tok.neg = true
		lx.off++
	}
	digit := isDigit
	if lx.src[lx.off] == '0' && lx.off+1 < len(lx.src) && (lx.src[lx.off+1] == 'x' || lx.src[lx.off+1] == 'X') {
		lx.off += 2
		tok.intBase = 16
		digit = isHexDigit
		if lx.off >= len(lx.src) || !digit(lx.src[lx.off]) {
			lx.illegal(start, "hex literal has no digits")
			return
		}
	}
	digits := lx.off
	for lx.off < len(lx.src) && (digit(lx.src[lx.off]) || lx.src[lx.off] == '_') {
		lx.off++
	}
	tok.lit = stripUnderscores(string(lx.src[digits:lx.off]))
	if lx.off < len(lx.src) && (lx.src[lx.off] == 'u' || lx.src[lx.off] == 'i') {
		tok.suffix = lx.src[lx.off]
		lx.off++
	}
	if lx.off < len(lx.src) && !isDelim(lx.src, lx.off) {
		lx.illegal(start, fmt.Sprintf("unexpected char %q in literal", lx.src[lx.off]))
		return
	}
	lx.cur = tok
}

// illegal records a lexing error and stops the scan.
func (lx *lexer) illegal(off int, msg string) {
	lx.cur = token{kind: tokIllegal, lit: msg, off: off}
	lx.off = len(lx.src)
}

// skipSpaceAndComments returns the offset of an unterminated block comment,
// or -1.
func (lx *lexer) skipSpaceAndComments() int {
	for lx.off < len(lx.src) {
		b := lx.src[lx.off]
		if isSpace(b) {
			lx.off++
			continue
		}
		// line comments: # or //
		if b == '#' || (b == '/' && lx.off+1 < len(lx.src) && lx.src[lx.off+1] == '/') {
			for lx.off < len(lx.src) && lx.src[lx.off] != '\n' {
				lx.off++
			}
			continue
		}
		// block comments: /* ... */
		if b == '/' && lx.off+1 < len(lx.src) && lx.src[lx.off+1] == '*' {
			start := lx.off
			lx.off += 2
			for lx.off+1 < len(lx.src) && !(lx.src[lx.off] == '*' && lx.src[lx.off+1] == '/') {
				lx.off++
			}
			if lx.off+1 >= len(lx.src) {
				lx.off = len(lx.src)
				return start
			}
			lx.off += 2
			continue
		}
		break
	}
	return -1
}

func (lx *lexer) peekIsDigit() bool {
	if lx.off+1 >= len(lx.src) {
		return false
	}
	return isDigit(lx.src[lx.off+1])
}

// isDelim reports whether a literal may end right before src[off].
func isDelim(src []byte, off int) bool {
	b := src[off]
	if isSpace(b) || b == ',' || b == '#' {
		return true
	}
	return b == '/' && off+1 < len(src) && (src[off+1] == '/' || src[off+1] == '*')
}

func isSpace(b byte) bool    { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
func isDigit(b byte) bool    { return '0' <= b && b <= '9' }
func isHexDigit(b byte) bool { return isDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F') }

func stripUnderscores(s string) string { return strings.ReplaceAll(s, "_", "") }
