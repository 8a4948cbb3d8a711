/*
File    : di/pretty/dump.go
Project : di compiler front-end
*/

package pretty

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zuiderkwast/di/ast"
	"github.com/zuiderkwast/di/value"
)

// Dump renders a tree verbatim in the dict shape of the data model: every
// node prints its syntax tag, position, node-specific fields and, when
// present, the varset, action and env annotations. Varsets are printed
// with sorted keys and defs in definition order, so the output is
// deterministic.
func Dump(tree ast.Node) string {
	var sb strings.Builder
	dumpNode(&sb, tree, 0)
	sb.WriteString("\n")
	return sb.String()
}

func dumpNode(sb *strings.Builder, e ast.Node, ind int) {
	line, col := e.Pos()
	fmt.Fprintf(sb, "{syntax: %q, line: %d, column: %d", e.Syntax(), line, col)
	switch n := e.(type) {
	case *ast.Lit:
		fmt.Fprintf(sb, ", value: %s", n.Value.ToString())
	case *ast.Var:
		fmt.Fprintf(sb, ", name: %q", n.Name)
		if n.Action != "" {
			fmt.Fprintf(sb, ", action: %q", n.Action)
		}
	case *ast.Regex:
		fmt.Fprintf(sb, ", regex: %s", value.Quote(n.Regex))
	case *ast.Array:
		dumpSeqField(sb, "elems", n.Elems, ind)
	case *ast.Dict:
		dumpEntries(sb, n.Entries, ind)
	case *ast.DictUp:
		dumpField(sb, "subj", n.Subj, ind)
		dumpEntries(sb, n.Entries, ind)
	case *ast.Apply:
		dumpField(sb, "func", n.Func, ind)
		dumpSeqField(sb, "args", n.Args, ind)
	case *ast.If:
		dumpField(sb, "cond", n.Cond, ind)
		dumpField(sb, "then", n.Then, ind)
		dumpField(sb, "else", n.Else, ind)
	case *ast.Case:
		dumpField(sb, "subj", n.Subj, ind)
		dumpClauses(sb, n.Clauses, ind)
	case *ast.Clause:
		dumpSeqField(sb, "pats", n.Pats, ind)
		dumpField(sb, "body", n.Body, ind)
	case *ast.Do:
		dumpSeqField(sb, "seq", n.Seq, ind)
		sb.WriteString(",\n")
		indent(sb, ind+1)
		sb.WriteString("defs: {")
		for i, name := range n.DefNames {
			if i > 0 {
				sb.WriteString(",\n")
				indent(sb, ind+8)
			}
			def := n.Defs[name]
			fmt.Fprintf(sb, "%s: {arity: %d", name, def.Arity)
			if def.Env != nil {
				sb.WriteString(", env: ")
				dumpVarset(sb, def.Env)
			}
			dumpClauses(sb, def.Clauses, ind+8)
			sb.WriteString("}")
		}
		sb.WriteString("}")
	case *ast.Unary:
		dumpField(sb, "right", n.Right, ind)
	case *ast.Binary:
		dumpField(sb, "left", n.Left, ind)
		dumpField(sb, "right", n.Right, ind)
	case *ast.Entry:
		dumpField(sb, "key", n.Key, ind)
		dumpField(sb, "value", n.Value, ind)
	}
	if vs := e.Vars(); len(vs) > 0 {
		sb.WriteString(", varset: ")
		dumpVarset(sb, vs)
	}
	sb.WriteString("}")
}

func dumpField(sb *strings.Builder, name string, e ast.Node, ind int) {
	sb.WriteString(",\n")
	indent(sb, ind+1)
	sb.WriteString(name)
	sb.WriteString(": ")
	dumpNode(sb, e, ind+1)
}

func dumpSeqField(sb *strings.Builder, name string, es []ast.Node, ind int) {
	sb.WriteString(",\n")
	indent(sb, ind+1)
	sb.WriteString(name)
	sb.WriteString(": [")
	for i, e := range es {
		if i > 0 {
			sb.WriteString(",\n")
			indent(sb, ind+2)
		}
		dumpNode(sb, e, ind+2)
	}
	sb.WriteString("]")
}

func dumpClauses(sb *strings.Builder, cs []*ast.Clause, ind int) {
	sb.WriteString(",\n")
	indent(sb, ind+1)
	sb.WriteString("clauses: [")
	for i, c := range cs {
		if i > 0 {
			sb.WriteString(",\n")
			indent(sb, ind+2)
		}
		dumpNode(sb, c, ind+2)
	}
	sb.WriteString("]")
}

func dumpEntries(sb *strings.Builder, es []*ast.Entry, ind int) {
	sb.WriteString(",\n")
	indent(sb, ind+1)
	sb.WriteString("entries: [")
	for i, e := range es {
		if i > 0 {
			sb.WriteString(",\n")
			indent(sb, ind+2)
		}
		dumpNode(sb, e, ind+2)
	}
	sb.WriteString("]")
}

func dumpVarset(sb *strings.Builder, vs ast.Varset) {
	names := make([]string, 0, len(vs))
	for name := range vs {
		names = append(names, name)
	}
	sort.Strings(names)
	sb.WriteString("{")
	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%s: %q", name, vs[name])
	}
	sb.WriteString("}")
}
