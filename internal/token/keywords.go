package token

var keywords = map[string]Kind{
	"function":    KwFunction,
	"return":      KwReturn,
	"if":          KwIf,
	"elseif":      KwElseIf,
	"else":        KwElse,
	"for":         KwFor,
	"while":       KwWhile,
	"repeat":      KwRepeat,
	"times":       KwTimes,
	"in":          KwIn,
	"import":      KwImport,
	"as":          KwAs,
	"break":       KwBreak,
	"continue":    KwContinue,
	"class":       KwClass,
	"static":      KwStatic,
	"this":        KwThis,
	"super":       KwSuper,
	"new":         KwNew,
	"extends":     KwExtends,
	"try":         KwTry,
	"catch":       KwCatch,
	"throw":       KwThrow,
	"switch":      KwSwitch,
	"case":        KwCase,
	"fallthrough": KwFallthrough,
	"instanceof":  KwInstanceof,
	"async":       KwAsync,
	"and":         KwAnd,
	"or":          KwOr,
	"not":         KwNot,
	"is":          KwIs,
	"true":        BoolLit,
	"false":       BoolLit,
	"null":        NilLit,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Регистр важен: распознаются только lowercase версии.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Phrase is a keyword made of several words separated by blanks.
type Phrase struct {
	Words []string
	Kind  Kind
}

// отсортировано по убыванию длины: "is less than" раньше "is not"
var phrases = []Phrase{
	{Words: []string{"is", "greater", "than"}, Kind: KwIsGreaterThan},
	{Words: []string{"is", "less", "than"}, Kind: KwIsLessThan},
	{Words: []string{"is", "not"}, Kind: KwIsNot},
}

// MultiWordKeywords returns the phrase table ordered longest-first.
// Callers must not modify the result.
func MultiWordKeywords() []Phrase { return phrases }

// StartsPhrase reports whether word can begin a multi-word keyword.
func StartsPhrase(word string) bool {
	for _, p := range phrases {
		if p.Words[0] == word {
			return true
		}
	}
	return false
}
