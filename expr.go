package sat

import "github.com/rsms/sat/intern"

// Type is the tag of an expression node (spec §3).
type Type int

const (
	// LIST, BLOCK, INLINE_BLOCK and GROUP are list-shaped: they own a
	// sibling chain reached through Head.
	LIST Type = iota
	BLOCK
	INLINE_BLOCK
	GROUP

	// COMMENT, SYM, ATOM and ASSIGNMENT are string-shaped: they carry
	// one interned string value through StrValue.
	//
	// ATOM is reserved by spec §9 Open Question (a): the tokenizer
	// never emits it today (a future capitalized-identifier
	// convention would), but the tag is kept so downstream consumers
	// (a binder, a printer) can already switch on it.
	COMMENT
	SYM
	ATOM
	ASSIGNMENT
)

func (t Type) String() string {
	switch t {
	case LIST:
		return "LIST"
	case BLOCK:
		return "BLOCK"
	case INLINE_BLOCK:
		return "INLINE_BLOCK"
	case GROUP:
		return "GROUP"
	case COMMENT:
		return "COMMENT"
	case SYM:
		return "SYM"
	case ATOM:
		return "ATOM"
	case ASSIGNMENT:
		return "ASSIGNMENT"
	default:
		return "UNDEFINED"
	}
}

// IsList reports whether nodes of this type own a child list (Head)
// rather than a string payload.
func (t Type) IsList() bool {
	switch t {
	case LIST, BLOCK, INLINE_BLOCK, GROUP:
		return true
	default:
		return false
	}
}

// IsStr reports whether nodes of this type own a string payload
// (StrValue) rather than a child list.
func (t Type) IsStr() bool {
	switch t {
	case SYM, ATOM, ASSIGNMENT, COMMENT:
		return true
	default:
		return false
	}
}

// Expr is a tagged expression node (spec §3). Exactly one of head or
// str is populated, per the node's Type — list-shaped types own head,
// string-shaped types own str. Next links to the node's right sibling
// within its enclosing list, nil at the tail.
//
// Grounded on _examples/original_source/src/expr.hh/expr.cc: the Go
// port keeps the tagged-union shape (a single struct with a type tag)
// rather than the teacher's value.go interface-per-kind hierarchy,
// because spec §8 property 3 ("exactly one of head/string is
// populated") and property 7 (subtree teardown) are about one node
// type's internal discipline, not about dispatch polymorphism across
// unrelated Go types.
type Expr struct {
	Type Type
	Next *Expr

	head *Expr         // populated iff Type.IsList()
	str  *intern.String // populated iff Type.IsStr(), owns one reference
}

// NewListExpr creates an empty list-shaped node of the given type. The
// caller appends children with Append.
func NewListExpr(t Type) *Expr {
	return &Expr{Type: t}
}

// NewStrExpr creates a string-shaped node wrapping s. The node takes
// ownership of the one reference to s that the caller passes in (the
// caller must not Release it separately).
func NewStrExpr(t Type, s *intern.String) *Expr {
	return &Expr{Type: t, str: s}
}

// Head returns the first child of a list-shaped node, or nil.
func (e *Expr) Head() *Expr {
	if e == nil {
		return nil
	}
	return e.head
}

// StrValue returns the interned string payload of a string-shaped
// node, or nil.
func (e *Expr) StrValue() *intern.String {
	if e == nil {
		return nil
	}
	return e.str
}

// Append adds child to the end of e's sibling chain. e must be
// list-shaped.
func (e *Expr) Append(child *Expr) {
	if e.head == nil {
		e.head = child
		return
	}
	tail := e.head
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = child
}

// Release frees the subtree rooted at e: for a list-shaped node, its
// children; for a string-shaped node, its interned string reference;
// in both cases, its sibling chain. Matches spec §3's "the node owns
// its subtree" invariant and the teacher's expr.cc ~Expr() destructor,
// ported to an explicit call since Go has no destructors.
func (e *Expr) Release() {
	for e != nil {
		next := e.Next
		if e.Type.IsList() {
			e.head.Release()
		} else if e.str != nil {
			e.str.Release()
		}
		e = next
	}
}
