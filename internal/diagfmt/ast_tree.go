package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"syntek/internal/ast"
	"syntek/internal/source"
)

// ASTNodeOutput is the JSON shape of one syntax node.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Detail   string          `json:"detail,omitempty"`
	Span     source.Span     `json:"span"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTPretty prints the subtree rooted at root with box-drawing guides.
// fs may be nil; then spans are printed as byte offsets.
func FormatASTPretty(w io.Writer, nodes *ast.Nodes, root ast.NodeID, fs *source.FileSet) error {
	if nodes.Get(root) == nil {
		return fmt.Errorf("node %d not found", root)
	}
	var b strings.Builder
	writeNodeLine(&b, nodes, root, fs)
	prettyChildren(&b, nodes, root, fs, "")
	_, err := io.WriteString(w, b.String())
	return err
}

func prettyChildren(b *strings.Builder, nodes *ast.Nodes, id ast.NodeID, fs *source.FileSet, prefix string) {
	kids := nodes.Children(id)
	for i, c := range kids {
		branch, next := "├─ ", "│  "
		if i == len(kids)-1 {
			branch, next = "└─ ", "   "
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		writeNodeLine(b, nodes, c, fs)
		prettyChildren(b, nodes, c, fs, prefix+next)
	}
}

func writeNodeLine(b *strings.Builder, nodes *ast.Nodes, id ast.NodeID, fs *source.FileSet) {
	b.WriteString(nodes.Kind(id).String())
	if d := NodeDetail(nodes, id); d != "" {
		b.WriteByte(' ')
		b.WriteString(d)
	}
	fmt.Fprintf(b, " (span: %s)\n", formatSpan(nodes.Span(id), fs))
}

// FormatASTJSON writes the subtree rooted at root as nested JSON objects.
func FormatASTJSON(w io.Writer, nodes *ast.Nodes, root ast.NodeID) error {
	if nodes.Get(root) == nil {
		return fmt.Errorf("node %d not found", root)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildASTOutput(nodes, root))
}

func buildASTOutput(nodes *ast.Nodes, id ast.NodeID) ASTNodeOutput {
	out := ASTNodeOutput{
		Type:   nodes.Kind(id).String(),
		Detail: NodeDetail(nodes, id),
		Span:   nodes.Span(id),
	}
	for _, c := range nodes.Children(id) {
		out.Children = append(out.Children, buildASTOutput(nodes, c))
	}
	return out
}

// NodeDetail returns the non-child payload of a node in a compact form:
// names, operators, literal text, parameter lists.
func NodeDetail(nodes *ast.Nodes, id ast.NodeID) string {
	switch nodes.Kind(id) {
	case ast.VariableDecl:
		v, _ := nodes.VariableDecl(id)
		return typed(v.Type, v.Name)
	case ast.FunctionDecl:
		f, _ := nodes.FunctionDecl(id)
		params := make([]string, len(f.Params))
		for i, p := range f.Params {
			params[i] = typed(p.Type, p.Name)
		}
		s := f.Name + "(" + strings.Join(params, ", ") + ")"
		if f.Static {
			s = "static " + s
		}
		return s
	case ast.ClassDecl:
		c, _ := nodes.ClassDecl(id)
		if len(c.Extends) == 0 {
			return c.Name
		}
		parents := make([]string, len(c.Extends))
		for i, p := range c.Extends {
			parents[i] = p.Text
		}
		return c.Name + " extends " + strings.Join(parents, ", ")
	case ast.ImportDecl:
		imp, _ := nodes.ImportDecl(id)
		if imp.Alias.Text != "" {
			return imp.PathString() + " as " + imp.Alias.Text
		}
		return imp.PathString()
	case ast.UnaryExpr:
		u, _ := nodes.Unary(id)
		return u.Op.String()
	case ast.BinaryExpr:
		bin, _ := nodes.Binary(id)
		return bin.Op.String()
	case ast.MemberExpr:
		m, _ := nodes.Member(id)
		return "." + m.Property
	case ast.ObjectExpr:
		o, _ := nodes.Object(id)
		keys := make([]string, len(o.Entries))
		for i, e := range o.Entries {
			keys[i] = e.Key
		}
		return "{" + strings.Join(keys, ", ") + "}"
	case ast.Identifier:
		ident, _ := nodes.Ident(id)
		return ident.Name
	case ast.Literal:
		lit, _ := nodes.Literal(id)
		return lit.Kind.String() + " " + lit.Raw
	case ast.ForStmt:
		f, _ := nodes.For(id)
		return typed(f.VarType, f.Var)
	case ast.CatchStmt:
		c, _ := nodes.Catch(id)
		return typed(c.ParamType, c.Param)
	}
	return ""
}

func typed(t ast.TypeRef, name string) string {
	if t.IsZero() {
		return name
	}
	return t.String() + " " + name
}

func formatSpan(sp source.Span, fs *source.FileSet) string {
	if fs == nil || fs.Get(sp.File) == nil {
		return fmt.Sprintf("%d..%d", sp.Start, sp.End)
	}
	start, end := fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}
