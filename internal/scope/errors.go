package scope

import (
	"fmt"

	"syntek/internal/ast"
)

// ContractError reports an AST shape the parser never produces, such as an
// else without an enclosing if. Resolve panics with it.
type ContractError struct {
	Node ast.NodeID
	Kind ast.NodeKind
	Msg  string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("scope: %s (node %d, %s)", e.Msg, e.Node, e.Kind)
}
