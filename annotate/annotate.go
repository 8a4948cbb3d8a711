/*
File    : di/annotate/annotate.go
Project : di compiler front-end
*/

// Package annotate implements the pass after parsing which resolves every
// variable reference and computes the lifetime information a code
// generator needs to insert reference-count operations:
//
//   - Check that variables are bound before they are accessed, and that
//     closures are not accessed before the variables they capture are
//     bound.
//   - Annotate the tree with variable binds and accesses: Varset is the
//     set of free variables used within a subtree; Action is the
//     per-occurrence variable action on var nodes.
//   - Bind means the variable is bound in this pattern. Discard means it
//     is bound but never accessed (an "unused variable" warning is given
//     unless the name starts with an underscore). First is the guaranteed
//     first access, last the guaranteed last, only the only access, and
//     access any access that is neither guaranteed first nor last.
//   - Every access to a function counts as an access to each variable
//     captured in its environment, transitively through other functions
//     it may call.
//
// The tree is annotated in place and returned. The first error aborts the
// pass; warnings are collected and returned alongside.
package annotate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zuiderkwast/di/ast"
	"github.com/zuiderkwast/di/diag"
)

type annotator struct {
	scopes    *Scope
	warnings  []diag.Warning
	funcDepth int
}

// Annotate annotates a parsed tree. The root must be a do node (the
// parser's implicit top-level block). It returns the annotated tree, the
// unused-binding warnings, and the first error encountered, if any.
func Annotate(tree *ast.Do) (annotated *ast.Do, warnings []diag.Warning, err error) {
	a := &annotator{}
	defer func() {
		if r := recover(); r != nil {
			if d, ok := r.(*diag.Error); ok {
				annotated = nil
				warnings = nil
				err = d
				return
			}
			panic(r)
		}
	}()
	a.block(tree)
	return tree, a.warnings, nil
}

func (a *annotator) warn(at interface{ Pos() (int, int) }, format string, args ...any) {
	line, col := at.Pos()
	a.warnings = append(a.warnings, diag.Warning{
		Line:    line,
		Column:  col,
		Message: fmt.Sprintf(format, args...),
	})
}

func (a *annotator) errorNode(n ast.Node, kind diag.Kind, format string, args ...any) {
	line, col := n.Pos()
	panic(diag.Errorf(kind, line, col, format, args...))
}

// block annotates the top-level sequence or the body of a do expression.
// The block's function names are declared in a new scope before any clause
// body is analyzed, so sibling functions may refer to each other in any
// order. On exit the last and first accesses of every name bound in the
// scope are marked and unused bindings are detected.
func (a *annotator) block(blk *ast.Do) {
	scope := newScope(a.scopes)
	scope.pending = pendingBindings(blk.Seq)
	for _, name := range blk.DefNames {
		scope.declare(name, entry{isFunc: true})
	}
	a.scopes = scope

	// Function definitions first. Each definition's environment (the free
	// variables of its clauses) becomes the scope value for its name, so
	// that accessing the function before its environment variables are
	// bound can be detected:
	//
	//     map(f, xs)     -- Error: can't use f before y is bound
	//     y = 2
	//     f(x) = x + y
	for _, name := range blk.DefNames {
		def := blk.Defs[name]
		a.funcdef(def)
		scope.declare(name, entry{isFunc: true, env: def.Env})
	}

	// The sequence of expressions including let bindings.
	for _, e := range blk.Seq {
		a.exprOrLet(e)
	}

	// End of the variable scope. Mark the last and first accesses of each
	// name that goes out of scope and detect unused bindings.
	for _, name := range scope.order {
		ent := scope.names[name]
		if !a.markLastAccessInSeq(blk.Seq, name) {
			if ent.isFunc {
				if !strings.HasPrefix(name, "_") {
					a.warn(blk.Defs[name], "Unused function '%s'", name)
				}
				continue
			}
			a.errorNode(blk, diag.KindInternal,
				"No occurrence of %s in its scope", name)
		}
		a.markFirstAccessInSeq(blk.Seq, name)
	}

	// The block's varset is the set of variables bound outside it: the
	// accesses of the sequence minus the local scope.
	blk.SetVars(ast.VarsOfSeq(blk.Seq).Diff(scope.boundSet()))
	a.scopes = scope.parent
}

// funcdef annotates one function definition and installs its closure
// environment: the free variables of its clauses, minus the function's own
// name so self-recursion does not capture itself.
func (a *annotator) funcdef(def *ast.FuncDef) {
	a.funcDepth++
	a.clauses(def.Clauses)
	a.funcDepth--

	var env ast.Varset
	for _, c := range def.Clauses {
		env = env.Union(c.Vars())
	}
	if env.Contains(def.Name) {
		env = env.Diff(map[string]bool{def.Name: true})
	}
	def.Env = env
}

// clauses annotates function or case clauses. Each clause's patterns bind
// parameters in a new inner scope; on leaving the clause the last and
// first accesses of the clause-local names are marked and the clause's
// varset is reduced to the variables with a scope outside it.
func (a *annotator) clauses(cs []*ast.Clause) {
	for _, c := range cs {
		scope := newScope(a.scopes)
		a.scopes = scope
		for _, p := range c.Pats {
			a.pattern(p)
		}
		a.expr(c.Body)
		a.scopes = scope.parent

		// Full varset first, local scope included, so marking can find
		// the local occurrences.
		varset := ast.VarsOfSeq(c.Pats).Union(c.Body.Vars())
		c.SetVars(varset)
		for _, name := range scope.order {
			if !a.markLastAccess(c, name) {
				a.errorNode(c, diag.KindInternal,
					"No occurrence of %s in its scope", name)
			}
			a.markFirstAccess(c, name)
		}
		c.SetVars(varset.Diff(scope.boundSet()))
	}
}

// exprOrLet annotates one form of a block sequence. "x = y" is not really
// an expression: it is only allowed in a do block and on top level, and
// its LHS binds variables in the current scope but not in the scope of the
// RHS.
func (a *annotator) exprOrLet(e ast.Node) {
	if bin, ok := e.(*ast.Binary); ok && bin.Op == "=" {
		a.expr(bin.Right)
		a.pattern(bin.Left)
		bin.SetVars(bin.Left.Vars().Union(bin.Right.Vars()))
		return
	}
	a.expr(e)
}

// exprs annotates a sequence of expressions, such as call arguments.
func (a *annotator) exprs(es []ast.Node) {
	for _, e := range es {
		a.expr(e)
	}
}

// dictEntries annotates dict entries with the given per-side annotator (expr
// in expression context, pattern in pattern context).
func (a *annotator) dictEntries(es []*ast.Entry, side func(ast.Node)) {
	for _, entry := range es {
		side(entry.Key)
		side(entry.Value)
		entry.SetVars(entry.Key.Vars().Union(entry.Value.Vars()))
	}
}

// expr annotates a node in expression context.
func (a *annotator) expr(e ast.Node) {
	switch n := e.(type) {
	case *ast.Binary:
		if !ast.IsOperator(n.Op) {
			a.errorNode(n, diag.KindInternal, "Unknown expression %s", n.Op)
		}
		a.expr(n.Right)
		a.expr(n.Left)
		n.SetVars(n.Left.Vars().Union(n.Right.Vars()))
	case *ast.Unary:
		a.expr(n.Right)
		n.SetVars(n.Right.Vars())
	case *ast.Apply:
		a.expr(n.Func)
		a.exprs(n.Args)
		n.SetVars(n.Func.Vars().Union(ast.VarsOfSeq(n.Args)))
	case *ast.Case:
		a.expr(n.Subj)
		a.clauses(n.Clauses)
		varset := n.Subj.Vars()
		for _, c := range n.Clauses {
			varset = varset.Union(c.Vars())
		}
		n.SetVars(varset)
	case *ast.Do:
		a.block(n)
	case *ast.If:
		a.expr(n.Cond)
		a.expr(n.Then)
		a.expr(n.Else)
		n.SetVars(n.Cond.Vars().Union(n.Then.Vars()).Union(n.Else.Vars()))
	case *ast.Array:
		a.exprs(n.Elems)
		n.SetVars(ast.VarsOfSeq(n.Elems))
	case *ast.Dict:
		a.dictEntries(n.Entries, a.expr)
		n.SetVars(varsOfEntries(n.Entries))
	case *ast.DictUp:
		a.expr(n.Subj)
		a.dictEntries(n.Entries, a.expr)
		n.SetVars(n.Subj.Vars().Union(varsOfEntries(n.Entries)))
	case *ast.Var:
		// Check that the variable, and any variable it depends on through
		// closure environments, is in scope.
		varset := a.recAccessedVarset(n.Name, ast.Varset{}, n)
		n.Action = ast.ActionAccess
		n.SetVars(varset)
	case *ast.Lit:
		// unchanged
	case *ast.Regex:
		a.errorNode(n, diag.KindContext,
			"Regular expression can't be used in this context.")
	default:
		a.errorNode(e, diag.KindInternal, "Unknown expression")
	}
}

// recAccessedVarset adds name and all variables it transitively depends on
// to acc. The accumulator doubles as the visited set, so mutually
// recursive functions don't loop. If any variable on the way is not in
// scope, an undefined-variable error is raised at the originating node.
func (a *annotator) recAccessedVarset(name string, acc ast.Varset, orig ast.Node) ast.Varset {
	if acc.Contains(name) {
		return acc
	}
	ent, ok := a.scopes.lookUp(name)
	if !ok {
		// Inside a function body a variable may be captured before the
		// enclosing block's sequence has bound it; the check moves to the
		// function's access site.
		if a.funcDepth > 0 && a.scopes.pendingVisible(name) {
			acc[name] = ast.ActionAccess
			return acc
		}
		a.errorNode(orig, diag.KindUndefined, "Undefined variable %s", name)
	}
	acc[name] = ast.ActionAccess
	if ent.isFunc && len(ent.env) > 0 {
		// Accessing a function is where its closure may be instantiated,
		// accessing every captured variable.
		deps := make([]string, 0, len(ent.env))
		for dep := range ent.env {
			deps = append(deps, dep)
		}
		sort.Strings(deps)
		for _, dep := range deps {
			acc = a.recAccessedVarset(dep, acc, orig)
		}
	}
	return acc
}

// pattern annotates a node in pattern context. A variable becomes a new
// binding if its name is not visible in any enclosing scope; otherwise the
// occurrence is a comparison against the existing binding. "_" matches
// anything and binds nothing.
func (a *annotator) pattern(p ast.Node) {
	switch n := p.(type) {
	case *ast.Var:
		if n.Name == "_" {
			return
		}
		var action ast.Action
		ent, ok := a.scopes.lookUp(n.Name)
		switch {
		case !ok:
			a.scopes.declare(n.Name, entry{})
			action = ast.ActionBind
		case !ent.isFunc:
			action = ast.ActionAccess
		default:
			// Matching on a function would imply instantiating the
			// closure and accessing all its captured variables here.
			a.errorNode(n, diag.KindContext,
				"Pattern matching on functions not supported")
		}
		n.Action = action
		n.SetVars(ast.Varset{n.Name: action})
	case *ast.Lit:
		// unchanged
	case *ast.Regex:
		// Variable bindings inside regex captures are resolved in a
		// later pass.
	case *ast.Array:
		for _, el := range n.Elems {
			a.pattern(el)
		}
		n.SetVars(ast.VarsOfSeq(n.Elems))
	case *ast.Dict:
		a.dictEntries(n.Entries, a.pattern)
		n.SetVars(varsOfEntries(n.Entries))
	case *ast.DictUp:
		a.pattern(n.Subj)
		a.dictEntries(n.Entries, a.pattern)
		n.SetVars(n.Subj.Vars().Union(varsOfEntries(n.Entries)))
	case *ast.Binary:
		switch n.Op {
		case "@", "~", "=":
			a.pattern(n.Left)
			a.pattern(n.Right)
			n.SetVars(n.Left.Vars().Union(n.Right.Vars()))
		default:
			a.errorNode(n, diag.KindContext, "Invalid pattern %s", n.Op)
		}
	default:
		a.errorNode(p, diag.KindContext, "Invalid pattern %s", p.Syntax())
	}
}

// pendingBindings collects the names bound by the let-binding patterns of
// a block sequence, before the sequence is annotated.
func pendingBindings(seq []ast.Node) map[string]bool {
	set := make(map[string]bool)
	for _, e := range seq {
		if bin, ok := e.(*ast.Binary); ok && bin.Op == "=" {
			collectPatternNames(bin.Left, set)
		}
	}
	return set
}

func collectPatternNames(p ast.Node, set map[string]bool) {
	switch n := p.(type) {
	case *ast.Var:
		if n.Name != "_" {
			set[n.Name] = true
		}
	case *ast.Array:
		for _, el := range n.Elems {
			collectPatternNames(el, set)
		}
	case *ast.Dict:
		for _, entry := range n.Entries {
			collectPatternNames(entry.Key, set)
			collectPatternNames(entry.Value, set)
		}
	case *ast.DictUp:
		collectPatternNames(n.Subj, set)
		for _, entry := range n.Entries {
			collectPatternNames(entry.Key, set)
			collectPatternNames(entry.Value, set)
		}
	case *ast.Binary:
		collectPatternNames(n.Left, set)
		collectPatternNames(n.Right, set)
	}
}

func varsOfEntries(es []*ast.Entry) ast.Varset {
	var out ast.Varset
	for _, entry := range es {
		out = out.Union(entry.Vars())
	}
	return out
}
