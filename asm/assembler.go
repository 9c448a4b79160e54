// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
)

// Assembler drives the three-stage pipeline: lexer, parser, code generator.
// The first error aborts the assembly and is reported with its source line.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Lexer  *Lexer         // Lexical analysis stage.
	Labels map[string]int // Label table of the last successful Parse.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate, visible to
// every subsequent Parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	if asm.Lexer == nil {
		asm.Lexer = NewLexer()
	}
	asm.Lexer.Verbose = asm.Verbose
	asm.Lexer.Reset(asm.predefine)

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			_, located := err.(*ErrSyntax)
			if !located {
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			}
		}
	}()

	var list []Instruction

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		var tokens []Token
		tokens, err = asm.Lexer.TokenizeLine(line, lineno)
		if err != nil {
			return
		}

		var parsed []Instruction
		parsed, err = parseLine(tokens)
		if err != nil {
			return
		}

		words := make([]string, len(tokens))
		for n, token := range tokens {
			words[n] = token.Text
		}
		for n := range parsed {
			parsed[n].Words = words
		}

		list = append(list, parsed...)
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	cg := &CodeGen{}
	prog, err = cg.Generate(list)
	if err != nil {
		return
	}
	asm.Labels = cg.Labels

	if asm.Verbose {
		log.Printf("asm: %d instructions, %d labels", len(prog.Ops), len(prog.Labels))
	}

	return
}
