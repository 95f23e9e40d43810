package sat

// namespace maps unqualified names to the expression that defined
// them. It is propagated down the scope stack and filled in whenever an
// ASSIGNMENT is appended to a frame, for a later binder/evaluator to
// consume; it is not attached to results. The parser's core never reads
// it (spec §9 "Namespace object").
//
// Supplemented from _examples/original_source/src/sat.cc's Namespace
// struct, whose _names map is filled in during parsing (on every
// ASSIGNMENT) and read during evaluation — a stage out of scope here.
type namespace struct {
	qualifiedName string // e.g. "user:", always ends in ":"
	names         map[string]*Expr
}

func newNamespace(qualifiedName string) *namespace {
	return &namespace{qualifiedName: qualifiedName, names: make(map[string]*Expr)}
}

// scope is one frame of the parser's scope stack (spec §3 "Scope
// frame"), grounded on _examples/original_source/src/sat.cc's Scope
// struct.
type scope struct {
	kind        Type // one of LIST, BLOCK, INLINE_BLOCK, GROUP
	indentLevel int
	ns          *namespace

	list *Expr // head of the in-progress expression list, nil until first append
}

func newScope(kind Type, indentLevel int, ns *namespace) *scope {
	return &scope{kind: kind, indentLevel: indentLevel, ns: ns}
}

// appendExpr adds expr to the frame's list, materializing the list's
// node on first use — mirrors Scope::expr_list_append. Growing the
// list itself is delegated to Expr.Append, which walks to the tail on
// each call, so the sibling-chain discipline stays one code path
// instead of two that could drift apart.
func (s *scope) appendExpr(expr *Expr) {
	if s.list == nil {
		s.list = NewListExpr(s.kind)
	}
	s.list.Append(expr)

	if expr.Type == ASSIGNMENT && s.ns != nil {
		s.ns.names[expr.StrValue().CStr()] = expr
	}
}

// exprList returns the frame's accumulated list expression, or nil if
// nothing was appended.
func (s *scope) exprList() *Expr {
	return s.list
}
