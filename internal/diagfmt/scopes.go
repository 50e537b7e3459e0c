package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"syntek/internal/ast"
	"syntek/internal/scope"
	"syntek/internal/source"
)

// ScopeOutput is the JSON shape of one scope and its nested scopes.
type ScopeOutput struct {
	ID        scope.ID      `json:"id"`
	Kind      string        `json:"kind"`
	Opener    string        `json:"opener"`
	Name      string        `json:"name,omitempty"`
	Header    source.Span   `json:"header"`
	Imports   []string      `json:"imports,omitempty"`
	Variables []string      `json:"variables,omitempty"`
	Children  []ScopeOutput `json:"children,omitempty"`
}

// FormatScopesPretty prints the scope tree from its root. Each scope line
// names the opening node and the header span; declared names follow as
// leaf lines before nested scopes.
func FormatScopesPretty(w io.Writer, tree *scope.Tree, fs *source.FileSet) error {
	if tree == nil || tree.Get(tree.Root) == nil {
		return fmt.Errorf("empty scope tree")
	}
	var b strings.Builder
	writeScopeLine(&b, tree, tree.Root, fs)
	prettyScope(&b, tree, tree.Root, fs, "")
	_, err := io.WriteString(w, b.String())
	return err
}

func prettyScope(b *strings.Builder, tree *scope.Tree, id scope.ID, fs *source.FileSet, prefix string) {
	s := tree.Get(id)
	var leaves []string
	if names := declNames(tree, s.Imports); len(names) > 0 {
		leaves = append(leaves, "imports: "+strings.Join(names, ", "))
	}
	if names := declNames(tree, s.Variables); len(names) > 0 {
		leaves = append(leaves, "vars: "+strings.Join(names, ", "))
	}
	kids := s.Children()
	total := len(leaves) + len(kids)
	row := 0
	guide := func() (string, string) {
		row++
		if row == total {
			return "└─ ", "   "
		}
		return "├─ ", "│  "
	}
	for _, l := range leaves {
		branch, _ := guide()
		b.WriteString(prefix + branch + l + "\n")
	}
	for _, c := range kids {
		branch, next := guide()
		b.WriteString(prefix + branch)
		writeScopeLine(b, tree, c, fs)
		prettyScope(b, tree, c, fs, prefix+next)
	}
}

func writeScopeLine(b *strings.Builder, tree *scope.Tree, id scope.ID, fs *source.FileSet) {
	s := tree.Get(id)
	fmt.Fprintf(b, "%s #%d %s", s.Kind, id, tree.Nodes.Kind(s.Node))
	if name := tree.DeclName(s.Node); name != "" {
		b.WriteString(" " + name)
	}
	fmt.Fprintf(b, " (header: %s)\n", formatSpan(s.Header, fs))
}

func declNames(tree *scope.Tree, ids []ast.NodeID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, tree.DeclName(id))
	}
	return out
}

// FormatScopesJSON writes the scope tree as nested JSON objects.
func FormatScopesJSON(w io.Writer, tree *scope.Tree) error {
	if tree == nil || tree.Get(tree.Root) == nil {
		return fmt.Errorf("empty scope tree")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildScopeOutput(tree, tree.Root))
}

func buildScopeOutput(tree *scope.Tree, id scope.ID) ScopeOutput {
	s := tree.Get(id)
	out := ScopeOutput{
		ID:        id,
		Kind:      s.Kind.String(),
		Opener:    tree.Nodes.Kind(s.Node).String(),
		Name:      tree.DeclName(s.Node),
		Header:    s.Header,
		Imports:   declNames(tree, s.Imports),
		Variables: declNames(tree, s.Variables),
	}
	if len(out.Imports) == 0 {
		out.Imports = nil
	}
	if len(out.Variables) == 0 {
		out.Variables = nil
	}
	for _, c := range s.Children() {
		out.Children = append(out.Children, buildScopeOutput(tree, c))
	}
	return out
}
