// Package lexer implements a zero-copy, byte-dispatch tokenizer for the
// JavaScript core grammar: one token per Advance() call, with Automatic
// Semicolon Insertion (ASI) state tracked as a side effect of each call and
// a distinct sublexer mode for template-literal quasis.
package lexer

import "fmt"

// TokenType identifies the lexeme class of the current token. Values are
// small, stable integers so the parser's prefix/infix dispatch tables
// (internal/parser) can be indexed directly by TokenType.
type TokenType int

const (
	EOF TokenType = iota
	UnexpectedToken
	UnexpectedEndOfProgram

	Identifier
	AccessorIdentifier // an identifier-shaped slice read by ReadAccessor after `.`, keywords included

	LiteralString
	LiteralNumber
	LiteralBinary // 0b... radix-tagged numeric literal
	LiteralOctal  // 0o...
	LiteralHex    // 0x...
	LiteralRegex
	TemplateOpen   // a quasi segment immediately followed by `${`
	TemplateClosed // a quasi segment immediately followed by the closing backtick

	// Keywords
	KeywordBreak
	KeywordCase
	KeywordCatch
	KeywordClass
	KeywordConst
	KeywordContinue
	KeywordDebugger
	KeywordDefault
	KeywordDelete
	KeywordDo
	KeywordElse
	KeywordExtends
	KeywordFalse
	KeywordFinally
	KeywordFor
	KeywordFunction
	KeywordIf
	KeywordIn
	KeywordInstanceof
	KeywordLet
	KeywordNew
	KeywordNull
	KeywordOf
	KeywordReturn
	KeywordStatic
	KeywordSuper
	KeywordSwitch
	KeywordThis
	KeywordThrow
	KeywordTrue
	KeywordTry
	KeywordTypeof
	KeywordUndefined
	KeywordVar
	KeywordVoid
	KeywordWhile
	KeywordYield

	// Punctuators
	LParen // (
	RParen // )
	LBrack // [
	RBrack // ]
	LBrace // {
	RBrace // }
	Comma
	Semicolon
	Colon
	Period
	Spread    // ...
	Arrow     // =>
	Question  // ?
	Backtick  // ` (quasi mode entry)

	// Assignment
	Assign
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignExp
	AssignShl
	AssignShr
	AssignSar
	AssignBitAnd
	AssignBitOr
	AssignBitXor

	// Comparison
	StrictEq
	StrictNeq
	Eq
	Neq
	Lt
	Gt
	Lte
	Gte

	// Logical
	LogicalAnd
	LogicalOr
	LogicalNot

	// Bitwise
	BitAnd
	BitOr
	BitXor
	BitNot
	Shl
	Shr
	Sar

	// Arithmetic
	Add
	Sub
	Mul
	Div
	Mod
	Exp
	Increment
	Decrement

	tokenCount // sentinel: one past the last valid TokenType, sizes the dispatch tables
)

// TokenCount is one past the last valid TokenType, exported so the parser's
// prefix/infix dispatch tables (internal/parser) can be sized by it without
// duplicating the token list.
const TokenCount = int(tokenCount)

var tokenNames = map[TokenType]string{
	EOF: "EOF", UnexpectedToken: "UnexpectedToken", UnexpectedEndOfProgram: "UnexpectedEndOfProgram",
	Identifier: "Identifier", AccessorIdentifier: "AccessorIdentifier",
	LiteralString: "String", LiteralNumber: "Number", LiteralBinary: "Binary", LiteralOctal: "Octal", LiteralHex: "Hex",
	LiteralRegex: "Regex", TemplateOpen: "TemplateOpen", TemplateClosed: "TemplateClosed",
	KeywordBreak: "break", KeywordCase: "case", KeywordCatch: "catch", KeywordClass: "class", KeywordConst: "const",
	KeywordContinue: "continue", KeywordDebugger: "debugger", KeywordDefault: "default", KeywordDelete: "delete",
	KeywordDo: "do", KeywordElse: "else", KeywordExtends: "extends", KeywordFalse: "false", KeywordFinally: "finally",
	KeywordFor: "for", KeywordFunction: "function", KeywordIf: "if", KeywordIn: "in", KeywordInstanceof: "instanceof",
	KeywordLet: "let", KeywordNew: "new", KeywordNull: "null", KeywordOf: "of", KeywordReturn: "return",
	KeywordStatic: "static", KeywordSuper: "super", KeywordSwitch: "switch", KeywordThis: "this", KeywordThrow: "throw",
	KeywordTrue: "true", KeywordTry: "try", KeywordTypeof: "typeof", KeywordUndefined: "undefined", KeywordVar: "var",
	KeywordVoid: "void", KeywordWhile: "while", KeywordYield: "yield",
	LParen: "(", RParen: ")", LBrack: "[", RBrack: "]", LBrace: "{", RBrace: "}",
	Comma: ",", Semicolon: ";", Colon: ":", Period: ".", Spread: "...", Arrow: "=>", Question: "?", Backtick: "`",
	Assign: "=", AssignAdd: "+=", AssignSub: "-=", AssignMul: "*=", AssignDiv: "/=", AssignMod: "%=", AssignExp: "**=",
	AssignShl: "<<=", AssignShr: ">>=", AssignSar: ">>>=", AssignBitAnd: "&=", AssignBitOr: "|=", AssignBitXor: "^=",
	StrictEq: "===", StrictNeq: "!==", Eq: "==", Neq: "!=", Lt: "<", Gt: ">", Lte: "<=", Gte: ">=",
	LogicalAnd: "&&", LogicalOr: "||", LogicalNot: "!",
	BitAnd: "&", BitOr: "|", BitXor: "^", BitNot: "~", Shl: "<<", Shr: ">>", Sar: ">>>",
	Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%", Exp: "**", Increment: "++", Decrement: "--",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

var keywords = map[string]TokenType{
	"break": KeywordBreak, "case": KeywordCase, "catch": KeywordCatch, "class": KeywordClass, "const": KeywordConst,
	"continue": KeywordContinue, "debugger": KeywordDebugger, "default": KeywordDefault, "delete": KeywordDelete,
	"do": KeywordDo, "else": KeywordElse, "extends": KeywordExtends, "false": KeywordFalse, "finally": KeywordFinally,
	"for": KeywordFor, "function": KeywordFunction, "if": KeywordIf, "in": KeywordIn, "instanceof": KeywordInstanceof,
	"let": KeywordLet, "new": KeywordNew, "null": KeywordNull, "of": KeywordOf, "return": KeywordReturn,
	"static": KeywordStatic, "super": KeywordSuper, "switch": KeywordSwitch, "this": KeywordThis, "throw": KeywordThrow,
	"true": KeywordTrue, "try": KeywordTry, "typeof": KeywordTypeof, "undefined": KeywordUndefined, "var": KeywordVar,
	"void": KeywordVoid, "while": KeywordWhile, "yield": KeywordYield,
}

// ASI is the three-valued Automatic Semicolon Insertion state attached to
// the current token, updated as a side effect of each Advance call and
// consulted by the parser exactly at statement-terminator decisions.
type ASI int

const (
	// ASINone: no newline was crossed and the current token does not itself
	// permit automatic semicolon insertion.
	ASINone ASI = iota
	// ASIImplicit: the current token is `}`, `)`, EOF, or a newline was
	// crossed to reach it — a semicolon may be inserted here.
	ASIImplicit
	// ASIExplicit: the current token is `;` itself.
	ASIExplicit
)

// Token is a small tagged value identifying the current lexeme. Source text
// is not copied into the token; callers recover it on demand via Start/End
// into the arena's source buffer (see Lexer.TokenText).
type Token struct {
	Type  TokenType
	Start int
	End   int
	Line  int
	asi   ASI
}

// ASI returns the Automatic Semicolon Insertion state in effect for this
// token, as computed when it was produced.
func (tok Token) ASI() ASI { return tok.asi }
