/*
File    : di/annotate/scope.go
Project : di compiler front-end
*/

package annotate

import "github.com/zuiderkwast/di/ast"

// entry describes one name bound in a scope. For functions, env holds the
// variables captured in the closure environment; for plain variables env
// is nil.
type entry struct {
	isFunc bool
	env    ast.Varset
}

// Scope is one frame of the nested scope chain. Scopes form a stack: each
// block and each function/case clause pushes a new scope whose parent is
// the enclosing one. Lookups traverse the chain from the innermost scope
// outward, so inner bindings shadow outer ones.
//
// pending holds the names that will be bound later in the owning block's
// sequence. They are visible only from within function definition bodies,
// where a closure may capture a variable before its binding form has been
// processed; expression positions in the sequence itself still see
// use-before-bind as an undefined variable.
type Scope struct {
	names   map[string]entry
	order   []string
	pending map[string]bool
	parent  *Scope
}

// newScope creates a scope nested in parent (nil for the outermost).
func newScope(parent *Scope) *Scope {
	return &Scope{names: make(map[string]entry), parent: parent}
}

// lookUp searches this scope and all parents for name.
func (s *Scope) lookUp(name string) (entry, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if ent, ok := sc.names[name]; ok {
			return ent, true
		}
	}
	return entry{}, false
}

// declare adds a name to this scope, keeping declaration order for
// deterministic scope-exit processing.
func (s *Scope) declare(name string, ent entry) {
	if _, ok := s.names[name]; !ok {
		s.order = append(s.order, name)
	}
	s.names[name] = ent
}

// pendingVisible reports whether name is a pending forward binding in this
// scope or any enclosing one.
func (s *Scope) pendingVisible(name string) bool {
	for sc := s; sc != nil; sc = sc.parent {
		if sc.pending[name] {
			return true
		}
	}
	return false
}

// boundSet returns the names bound in this scope as a set, for varset
// difference on scope exit.
func (s *Scope) boundSet() map[string]bool {
	set := make(map[string]bool, len(s.names))
	for name := range s.names {
		set[name] = true
	}
	return set
}
