package asm

// TokenKind classifies a lexical token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TokenKeyword  = TokenKind(0) // keyword
	TokenRegister = TokenKind(1) // register
	TokenInt      = TokenKind(2) // int
	TokenHex      = TokenKind(3) // hex
	TokenIdent    = TokenKind(4) // ident
	TokenLabel    = TokenKind(5) // label
)

// Token is a lexical atom with its source location. Value is populated for
// int and hex tokens; Text always carries the lexeme as written (upper cased
// for keywords, colon stripped for labels).
type Token struct {
	Kind   TokenKind
	Text   string
	Value  uint8
	LineNo int
}

// keywords is the mnemonic table. Matching is case-insensitive; the lexer
// upper cases before lookup.
var keywords = map[string]struct{}{
	"NOP":   {},
	"PUSH":  {},
	"PUSHR": {},
	"POP":   {},
	"ADDS":  {},
	"ADDR":  {},
	"SIG":   {},
}
