package parser

import (
	"syntek/internal/ast"
	"syntek/internal/token"
)

// Таблица приоритетов: чем больше число, тем сильнее связывание.
const (
	precNone           = 0
	precAssignment     = 1  // =
	precOr             = 2  // or
	precAnd            = 3  // and
	precEquality       = 4  // is, is not, ==, !=
	precComparison     = 5  // < <= > >= is less than, is greater than, instanceof
	precAdditive       = 6  // + -
	precMultiplicative = 7  // * / %
	precExponent       = 8  // ^
	precUnary          = 9  // - + not async
	precCall           = 10 // () [] .
)

// infixPrec возвращает приоритет и правоассоциативность инфиксного токена.
// precNone - токен не продолжает выражение.
func infixPrec(k token.Kind) (int, bool) {
	switch k {
	case token.Assign:
		return precAssignment, true
	case token.KwOr:
		return precOr, false
	case token.KwAnd:
		return precAnd, false
	case token.KwIs, token.KwIsNot, token.EqEq, token.BangEq:
		return precEquality, false
	case token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.KwIsLessThan, token.KwIsGreaterThan, token.KwInstanceof:
		return precComparison, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false
	case token.Caret:
		return precExponent, true
	case token.LParen, token.LBracket, token.Dot:
		return precCall, false
	}
	return precNone, false
}

var binaryOps = map[token.Kind]ast.BinaryOp{
	token.Plus:            ast.BinAdd,
	token.Minus:           ast.BinSub,
	token.Star:            ast.BinMul,
	token.Slash:           ast.BinDiv,
	token.Percent:         ast.BinMod,
	token.Caret:           ast.BinPow,
	token.EqEq:            ast.BinEq,
	token.BangEq:          ast.BinNotEq,
	token.KwIs:            ast.BinIs,
	token.KwIsNot:         ast.BinIsNot,
	token.Lt:              ast.BinLt,
	token.LtEq:            ast.BinLtEq,
	token.Gt:              ast.BinGt,
	token.GtEq:            ast.BinGtEq,
	token.KwIsLessThan:    ast.BinIsLessThan,
	token.KwIsGreaterThan: ast.BinIsGreaterThan,
	token.KwAnd:           ast.BinAnd,
	token.KwOr:            ast.BinOr,
}

var unaryOps = map[token.Kind]ast.UnaryOp{
	token.Minus: ast.UnaryNeg,
	token.Plus:  ast.UnaryPlus,
	token.KwNot: ast.UnaryNot,
}
