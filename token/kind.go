package token

import "strings"

// Kind is the closed set of token categories. Unlike a grammar with one
// distinct kind per operator, this language keeps the kind set small and
// lets the lexeme carry the rest of the information — dispatch on a
// specific keyword or operator is done by comparing the lexeme, not by
// adding new Kind values.
type Kind int

const (
	kindBegin Kind = iota

	EOF     // no lexeme, marks the end of the token stream
	ERROR   // a lexical error; Lexeme holds the error message
	IDENT   // a non-keyword identifier
	KEYWORD // an identifier whose lexeme is in the keyword set
	NUMBER  // a decimal integer or fractional literal
	STRING  // a quoted or triple-quoted string literal
	OPERATOR
	PUNCT // one of ( ) { } [ ] , . : ; @ # § ? !
	NEWLINE
	COMMENT

	kindEnd
)

var kindNames = [...]string{
	EOF:      "EOF",
	ERROR:    "ERROR",
	IDENT:    "IDENT",
	KEYWORD:  "KEYWORD",
	NUMBER:   "NUMBER",
	STRING:   "STRING",
	OPERATOR: "OPERATOR",
	PUNCT:    "PUNCT",
	NEWLINE:  "NEWLINE",
	COMMENT:  "COMMENT",
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k > kindBegin && k < kindEnd
}

func (k Kind) ensureValid() {
	if !k.IsValid() {
		panic("token: invalid Kind value")
	}
}

// Name returns the constant's identifier, e.g. "KEYWORD".
func (k Kind) Name() string {
	k.ensureValid()
	return kindNames[k]
}

// String renders the kind for diagnostics.
func (k Kind) String() string {
	if !k.IsValid() {
		return "INVALID"
	}
	return kindNames[k]
}

// Is reports whether k equals other.
func (k Kind) Is(other Kind) bool {
	return k == other
}

// Keywords is the closed set of Latin-rooted reserved words recognized
// by the lexer, which consults the flat keywordSet map built from all
// groups. The parser also reads the Declarations and Types groups
// directly.
var Keywords = struct {
	Declarations []string
	Types        []string
	ControlFlow  []string
	Operators    []string
	Other        []string
}{
	Declarations: []string{
		"functio", "varia", "fixum", "figendum", "variandum",
		"genus", "pactum", "ordo", "discretio", "importa",
		"experimentum", "exemplum",
	},
	Types: []string{
		"numerus", "fractus", "textus", "bivalens",
		"nihil", "vacuum", "vacuus", "ignotum",
		"lista", "tabula", "copia", "collectio",
	},
	ControlFlow: []string{
		"si", "secus", "sin", "dum", "fac", "ex", "de",
		"elige", "ceterum", "discerne", "casu", "pro", "ut",
		"custodi", "ergo", "tacet",
		"redde", "reddit", "iace", "iacit", "mori", "moritor",
		"tempta", "cape", "demum",
		"rumpe", "perge",
		"incipit", "incipiet",
		"scribe", "vide", "mone",
		"adfirma",
	},
	Operators: []string{
		"et", "aut", "vel", "non", "inter", "intra",
		"nonnihil", "nonnulla", "positivum", "negativum",
		"nulla", "nonnulla",
		"qua", "innatum", "novum", "finge", "scriptum",
		"numeratum", "fractatum", "textatum", "bivalentum",
		"usque", "ante", "cede",
	},
	Other: []string{
		"ego", "verum", "falsum",
		"publica", "privata", "protecta", "futura", "externa", "abstractus",
		"sic",
	},
}

var keywordSet map[string]bool

func init() {
	keywordSet = make(map[string]bool)
	for _, group := range [][]string{
		Keywords.Declarations,
		Keywords.Types,
		Keywords.ControlFlow,
		Keywords.Operators,
		Keywords.Other,
	} {
		for _, word := range group {
			keywordSet[word] = true
		}
	}
}

// IsKeyword reports whether ident names a reserved word. Lookup is
// case-sensitive: the grammar's keywords are lowercase Latin words and
// an identically-spelled but differently-cased identifier is a plain
// IDENT, matching the lexer's scanIdentifier behavior.
func IsKeyword(ident string) bool {
	return keywordSet[ident]
}

// KindOf returns KEYWORD if ident is reserved, IDENT otherwise.
func KindOf(ident string) Kind {
	if IsKeyword(ident) {
		return KEYWORD
	}
	return IDENT
}

// IsLiteralChar reports whether char may appear in an identifier body
// (letters, digits, or underscore).
func IsLiteralChar(char rune) bool {
	return char == '_' ||
		(char >= 'a' && char <= 'z') ||
		(char >= 'A' && char <= 'Z') ||
		(char >= '0' && char <= '9')
}

// Punctuators is the closed single-character punctuator set.
const Punctuators = "(){}[],.:;@#§?!"

// IsPunctuator reports whether char is one of the fixed punctuator
// characters.
func IsPunctuator(char rune) bool {
	return strings.ContainsRune(Punctuators, char)
}

// Operators is the ordered, longest-prefix-first operator list the
// lexer matches against. Three-character operators come before their
// two-character prefixes, which come before single characters, so a
// greedy linear scan never stops short.
var Operators = []string{
	"===", "!==",
	"==", "!=", "<=", ">=", "&&", "||", "??",
	"+=", "-=", "*=", "/=", "->", "..",
	"+", "-", "*", "/", "%", "<", ">", "=", "&", "|", "^", "~",
}
