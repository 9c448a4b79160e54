// Package asm implements the assembler for the vm16 machine.
//
// Compilation runs in three stages. The Lexer turns each source line into a
// token stream, substituting equates and evaluating $() constant
// expressions. The parser shapes tokens into an instruction list, one node
// per code-emitting line plus one per label declaration. The CodeGen walks
// the list twice: the first pass lays out byte offsets and resolves every
// label, the second emits the two-byte encodings, so forward references
// cost nothing.
//
// The source dialect is line oriented. ';' starts a comment, 'name:'
// declares a label, '#' prefixes decimal immediates and '$' hexadecimal
// ones. Mnemonics and register names match case-insensitively:
//
//	; sum two values into B
//	start:
//	        PUSH #10
//	        PUSH $18
//	        ADDS
//	        POP B
//	        SIG $09     ; halt
package asm
