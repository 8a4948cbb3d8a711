/*
File    : di/pretty/pretty.go
Project : di compiler front-end
*/

// Package pretty renders syntax trees back into source-like text and
// produces the verbatim annotated dumps used by the dlc debug commands.
// Neither output is specified bit-exactly; both are diagnostic only.
package pretty

import (
	"strings"

	"github.com/zuiderkwast/di/ast"
)

// Print renders a tree source-like: binary operators parenthesized, case
// and if expressions laid out over multiple lines.
func Print(tree ast.Node) string {
	var sb strings.Builder
	expr(&sb, tree, 0)
	sb.WriteString("\n")
	return sb.String()
}

func indent(sb *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte(' ')
	}
}

func expr(sb *strings.Builder, e ast.Node, ind int) {
	switch n := e.(type) {
	case *ast.Lit:
		sb.WriteString(n.Value.ToString())
	case *ast.Var:
		sb.WriteString(n.Name)
	case *ast.Regex:
		sb.WriteString("/")
		sb.WriteString(n.Regex)
		sb.WriteString("/")
	case *ast.Array:
		if len(n.Elems) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[")
		for i, el := range n.Elems {
			expr(sb, el, ind+1)
			if i < len(n.Elems)-1 {
				sb.WriteString(",\n")
				indent(sb, ind+1)
			}
		}
		sb.WriteString("]")
	case *ast.Dict:
		entries(sb, n.Entries, ind)
	case *ast.DictUp:
		expr(sb, n.Subj, ind)
		entries(sb, n.Entries, ind)
	case *ast.Apply:
		expr(sb, n.Func, ind)
		sb.WriteString("(")
		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			expr(sb, arg, ind+1)
		}
		sb.WriteString(")")
	case *ast.Case:
		sb.WriteString("case ")
		expr(sb, n.Subj, ind+5)
		sb.WriteString(" of")
		for _, c := range n.Clauses {
			sb.WriteString("\n")
			indent(sb, ind+8)
			expr(sb, c.Pats[0], ind+8)
			sb.WriteString(" -> ")
			expr(sb, c.Body, ind+16)
		}
		sb.WriteString("\n")
		indent(sb, ind)
		sb.WriteString("end")
	case *ast.If:
		sb.WriteString("if ")
		expr(sb, n.Cond, ind+3)
		sb.WriteString("\n")
		indent(sb, ind+8)
		sb.WriteString("then ")
		expr(sb, n.Then, ind+13)
		sb.WriteString("\n")
		indent(sb, ind+8)
		sb.WriteString("else ")
		expr(sb, n.Else, ind+13)
	case *ast.Do:
		sb.WriteString("do ")
		first := true
		for _, name := range n.DefNames {
			def := n.Defs[name]
			for _, c := range def.Clauses {
				if !first {
					sb.WriteString("\n")
					indent(sb, ind+3)
				}
				first = false
				sb.WriteString(name)
				sb.WriteString("(")
				for i, p := range c.Pats {
					if i > 0 {
						sb.WriteString(", ")
					}
					expr(sb, p, ind+3)
				}
				sb.WriteString(") = ")
				expr(sb, c.Body, ind+3)
			}
		}
		for _, e := range n.Seq {
			if !first {
				sb.WriteString("\n")
				indent(sb, ind+3)
			}
			first = false
			expr(sb, e, ind+3)
		}
		sb.WriteString("\n")
		indent(sb, ind)
		sb.WriteString("end")
	case *ast.Unary:
		sb.WriteString(n.Op)
		if n.Op == "not" {
			sb.WriteString(" ")
		}
		expr(sb, n.Right, ind)
	case *ast.Binary:
		sb.WriteString("(")
		expr(sb, n.Left, ind+1)
		sb.WriteString(" ")
		sb.WriteString(n.Op)
		sb.WriteString(" ")
		expr(sb, n.Right, ind+1)
		sb.WriteString(")")
	default:
		sb.WriteString("<unknown expression>")
	}
}

func entries(sb *strings.Builder, es []*ast.Entry, ind int) {
	if len(es) == 0 {
		sb.WriteString("{}")
		return
	}
	sb.WriteString("{")
	for i, entry := range es {
		expr(sb, entry.Key, ind+1)
		sb.WriteString(": ")
		expr(sb, entry.Value, ind+1)
		if i < len(es)-1 {
			sb.WriteString(",\n")
			indent(sb, ind+1)
		}
	}
	sb.WriteString("}")
}
