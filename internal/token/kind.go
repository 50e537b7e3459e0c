package token

// Kind represents the category of a source token.
// Ordinals are stable: the parser compares them directly.
type Kind uint8

const (
	// Invalid marks a lexical error (unknown char, bad literal, bad dedent).
	Invalid Kind = iota
	// EOF marks the end of the token stream.
	EOF

	// NumberLit is a numeric literal: 12, 1.5, 1e3, 0x1F, 0b101, 0o17.
	NumberLit
	// StringLit is a quoted string literal; Text keeps the quotes.
	StringLit
	// BoolLit is true or false.
	BoolLit
	// NilLit is null.
	NilLit

	// Ident represents an identifier token.
	Ident

	KwFunction    // function
	KwReturn      // return
	KwIf          // if
	KwElseIf      // elseif
	KwElse        // else
	KwFor         // for
	KwWhile       // while
	KwRepeat      // repeat
	KwTimes       // times
	KwIn          // in
	KwImport      // import
	KwAs          // as
	KwBreak       // break
	KwContinue    // continue
	KwClass       // class
	KwStatic      // static
	KwThis        // this
	KwSuper       // super
	KwNew         // new
	KwExtends     // extends
	KwTry         // try
	KwCatch       // catch
	KwThrow       // throw
	KwSwitch      // switch
	KwCase        // case
	KwFallthrough // fallthrough
	KwInstanceof  // instanceof
	KwAsync       // async
	KwAnd         // and
	KwOr          // or
	KwNot         // not

	// Comparison phrases.
	KwIs            // is
	KwIsNot         // is not
	KwIsLessThan    // is less than
	KwIsGreaterThan // is greater than

	Plus     // +
	Minus    // -
	Star     // *
	Slash    // /
	Percent  // %
	Caret    // ^
	Assign   // =
	EqEq     // ==
	BangEq   // !=
	Lt       // <
	LtEq     // <=
	Gt       // >
	GtEq     // >=
	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	LBrace   // {
	RBrace   // }
	Dot      // .
	Comma    // ,
	Colon    // :

	// Newline terminates a logical line.
	Newline
	// Indent opens a deeper indentation level.
	Indent
	// Outdent closes one indentation level.
	Outdent

	kindCount
)

var kindNames = [...]string{
	Invalid:         "Invalid",
	EOF:             "EOF",
	NumberLit:       "NumberLit",
	StringLit:       "StringLit",
	BoolLit:         "BoolLit",
	NilLit:          "NilLit",
	Ident:           "Ident",
	KwFunction:      "KwFunction",
	KwReturn:        "KwReturn",
	KwIf:            "KwIf",
	KwElseIf:        "KwElseIf",
	KwElse:          "KwElse",
	KwFor:           "KwFor",
	KwWhile:         "KwWhile",
	KwRepeat:        "KwRepeat",
	KwTimes:         "KwTimes",
	KwIn:            "KwIn",
	KwImport:        "KwImport",
	KwAs:            "KwAs",
	KwBreak:         "KwBreak",
	KwContinue:      "KwContinue",
	KwClass:         "KwClass",
	KwStatic:        "KwStatic",
	KwThis:          "KwThis",
	KwSuper:         "KwSuper",
	KwNew:           "KwNew",
	KwExtends:       "KwExtends",
	KwTry:           "KwTry",
	KwCatch:         "KwCatch",
	KwThrow:         "KwThrow",
	KwSwitch:        "KwSwitch",
	KwCase:          "KwCase",
	KwFallthrough:   "KwFallthrough",
	KwInstanceof:    "KwInstanceof",
	KwAsync:         "KwAsync",
	KwAnd:           "KwAnd",
	KwOr:            "KwOr",
	KwNot:           "KwNot",
	KwIs:            "KwIs",
	KwIsNot:         "KwIsNot",
	KwIsLessThan:    "KwIsLessThan",
	KwIsGreaterThan: "KwIsGreaterThan",
	Plus:            "Plus",
	Minus:           "Minus",
	Star:            "Star",
	Slash:           "Slash",
	Percent:         "Percent",
	Caret:           "Caret",
	Assign:          "Assign",
	EqEq:            "EqEq",
	BangEq:          "BangEq",
	Lt:              "Lt",
	LtEq:            "LtEq",
	Gt:              "Gt",
	GtEq:            "GtEq",
	LParen:          "LParen",
	RParen:          "RParen",
	LBracket:        "LBracket",
	RBracket:        "RBracket",
	LBrace:          "LBrace",
	RBrace:          "RBrace",
	Dot:             "Dot",
	Comma:           "Comma",
	Colon:           "Colon",
	Newline:         "Newline",
	Indent:          "Indent",
	Outdent:         "Outdent",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k < kindCount }
