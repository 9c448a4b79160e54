package asm

import (
	"fmt"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/vm16/vm"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Lexer converts source lines into token streams. It owns the equate table:
// equates substitute at the word level, and $() expressions evaluate to
// decimal immediates, both before classification.
type Lexer struct {
	Verbose bool              // If set, verbosely logs lexed lines.
	Equate  map[string]string // Map of equates.
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// NewLexer creates a lexer with the system equates installed.
func NewLexer() (lx *Lexer) {
	lx = &Lexer{}
	lx.Reset(nil)

	return
}

// Reset restores the equate table to the system set plus predefines.
func (lx *Lexer) Reset(predefine map[string]string) {
	lx.Equate = maps.Clone(sysEquate)
	maps.Copy(lx.Equate, predefine)
}

// equateValue parses an equate value as an integer, in any of the dialect's
// spellings, for export into $() evaluations.
func equateValue(text string) (value int64, err error) {
	switch {
	case strings.HasPrefix(text, "#"):
		value, err = strconv.ParseInt(text[1:], 10, 64)
	case strings.HasPrefix(text, "$"):
		value, err = strconv.ParseInt(text[1:], 16, 64)
	default:
		value, err = strconv.ParseInt(text, 0, 64)
	}

	return
}

// parenEval does compile-time $(...) evaluations.
func (lx *Lexer) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range lx.Equate {
		v, verr := equateValue(str)
		if verr != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}

	return
}

// TokenizeLine converts one source line into its token stream. Blank and
// comment-only lines yield no tokens. The .equ directive is consumed here
// and also yields no tokens.
func (lx *Lexer) TokenizeLine(line string, lineno int) (tokens []Token, err error) {
	// Set line number.
	lx.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	text, _, _ := strings.Cut(line, ";")
	text = strings.TrimSpace(text)

	// Do $() evaluations
	text = parenRe.ReplaceAllStringFunc(text, func(str string) string {
		value, _err := lx.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("#%d", value)
	})
	if err != nil {
		return
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}

	if lx.Verbose {
		log.Printf("asm: %v: %v", lineno, words)
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := lx.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		lx.Equate[words[1]] = words[2]
		return
	}

	for _, word := range words {
		equate, ok := lx.Equate[word]
		if ok {
			word = equate
		}

		var token Token
		token, err = classify(word, lineno)
		if err != nil {
			return
		}
		tokens = append(tokens, token)
	}

	return
}

// isIdent reports whether text is a valid label identifier.
func isIdent(text string) bool {
	for n, r := range text {
		switch {
		case unicode.IsLetter(r) || r == '_':
			// always valid
		case unicode.IsDigit(r):
			if n == 0 {
				return false
			}
		default:
			return false
		}
	}

	return len(text) > 0
}

// classify determines the token class of a single word.
func classify(word string, lineno int) (token Token, err error) {
	token.Text = word
	token.LineNo = lineno

	switch {
	case strings.HasSuffix(word, ":"):
		name := strings.TrimSuffix(word, ":")
		if !isIdent(name) {
			err = ErrToken(word)
			return
		}
		token.Kind = TokenLabel
		token.Text = name
	case strings.HasPrefix(word, "#"):
		value, perr := strconv.ParseUint(word[1:], 10, 8)
		if perr != nil {
			err = ErrNumber(word)
			return
		}
		token.Kind = TokenInt
		token.Value = uint8(value)
	case strings.HasPrefix(word, "$"):
		value, perr := strconv.ParseUint(word[1:], 16, 8)
		if perr != nil {
			err = ErrNumber(word)
			return
		}
		token.Kind = TokenHex
		token.Value = uint8(value)
	default:
		if _, rerr := vm.RegisterFromName(word); rerr == nil {
			token.Kind = TokenRegister
			return
		}
		upper := strings.ToUpper(word)
		if _, ok := keywords[upper]; ok {
			token.Kind = TokenKeyword
			token.Text = upper
			return
		}
		if isIdent(word) {
			token.Kind = TokenIdent
			return
		}
		err = ErrToken(word)
	}

	return
}
