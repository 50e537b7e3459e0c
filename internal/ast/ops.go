package ast

// UnaryOp enumerates prefix operators.
type UnaryOp uint8

const (
	UnaryNeg  UnaryOp = iota // -x
	UnaryPlus                // +x
	UnaryNot                 // not x
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNeg:
		return "-"
	case UnaryPlus:
		return "+"
	case UnaryNot:
		return "not"
	}
	return "?"
}

// BinaryOp enumerates infix operators.
type BinaryOp uint8

const (
	// Арифметические
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinPow

	// Равенство
	BinEq
	BinNotEq
	BinIs
	BinIsNot

	// Сравнение
	BinLt
	BinLtEq
	BinGt
	BinGtEq
	BinIsLessThan
	BinIsGreaterThan

	// Логические
	BinAnd
	BinOr
)

var binaryOpText = [...]string{
	BinAdd:           "+",
	BinSub:           "-",
	BinMul:           "*",
	BinDiv:           "/",
	BinMod:           "%",
	BinPow:           "^",
	BinEq:            "==",
	BinNotEq:         "!=",
	BinIs:            "is",
	BinIsNot:         "is not",
	BinLt:            "<",
	BinLtEq:          "<=",
	BinGt:            ">",
	BinGtEq:          ">=",
	BinIsLessThan:    "is less than",
	BinIsGreaterThan: "is greater than",
	BinAnd:           "and",
	BinOr:            "or",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

// LitKind distinguishes literal payloads.
type LitKind uint8

const (
	LitNumber LitKind = iota
	LitString
	LitBool
	LitNil
)

func (k LitKind) String() string {
	switch k {
	case LitNumber:
		return "number"
	case LitString:
		return "string"
	case LitBool:
		return "bool"
	case LitNil:
		return "null"
	}
	return "?"
}
