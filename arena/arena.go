// Package arena holds the two append-only stores the parser builds its
// tree in: Arena, a slice of AST nodes addressed by index instead of
// pointer, and Buffer, a single growing string that synthesized
// identifiers (e.g. the multi-letter name produced by \operatorname or
// by fusing adjacent single-letter identifiers) are appended to and
// then referenced by byte range. Neither store ever removes an entry,
// and Buffer bytes never change once appended (Arena nodes may be
// rewritten in place through GetPtr); NodeRef and StrRef values stay
// valid for the lifetime of the Arena/Buffer that produced them.
package arena

// NodeRef addresses a node stored in an Arena by its index. Every valid
// NodeRef comes from Arena.Push; the zero value names the first node
// pushed.
type NodeRef int

// StrRef addresses a byte range within a Buffer.
type StrRef struct {
	start, end int
}

// cell is the arena-internal storage for one node: the node's payload
// plus the forward link used to thread NodeList chains through the
// same backing slice.
type cell[N any] struct {
	node N
	next NodeRef
	hasNext bool
}

// Arena is an append-only store of nodes, addressed by NodeRef instead
// of pointer so that nodes can be rewritten in place (font-transform
// and single-letter-fusion passes mutate node payloads through a
// NodeRef without invalidating any other reference into the arena).
type Arena[N any] struct {
	cells []cell[N]
}

// New returns an empty Arena.
func New[N any]() *Arena[N] {
	return &Arena[N]{}
}

// Push appends node and returns a NodeRef identifying it.
func (a *Arena[N]) Push(node N) NodeRef {
	ref := NodeRef(len(a.cells))
	a.cells = append(a.cells, cell[N]{node: node})
	return ref
}

// Get returns the node at ref.
func (a *Arena[N]) Get(ref NodeRef) N {
	return a.cells[ref].node
}

// GetPtr returns a pointer to the node at ref, for in-place rewrites
// (e.g. ast.SetNormalVariant, ast.TransformLetters,
// ast.MergeSingleLetters).
func (a *Arena[N]) GetPtr(ref NodeRef) *N {
	return &a.cells[ref].node
}

// Buffer is an append-only string buffer. Once a StrRef is handed out,
// the bytes it addresses never change or move; the
// parser uses this for identifiers synthesized during parsing, such as
// the multi-character name produced by merging single-letter
// identifiers or by \operatorname.
type Buffer struct {
	data []byte
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// PushString appends s and returns a StrRef addressing it.
func (b *Buffer) PushString(s string) StrRef {
	start := len(b.data)
	b.data = append(b.data, s...)
	return StrRef{start: start, end: len(b.data)}
}

// PushRune appends a single rune and returns a StrRef addressing it.
func (b *Buffer) PushRune(r rune) StrRef {
	start := len(b.data)
	b.data = append(b.data, string(r)...)
	return StrRef{start: start, end: len(b.data)}
}

// Extend appends every rune in rs and returns a StrRef spanning all of
// them.
func (b *Buffer) Extend(rs []rune) StrRef {
	start := len(b.data)
	for _, r := range rs {
		b.data = append(b.data, string(r)...)
	}
	return StrRef{start: start, end: len(b.data)}
}

// Get returns the string addressed by ref.
func (b *Buffer) Get(ref StrRef) string {
	return string(b.data[ref.start:ref.end])
}

// Len returns the number of bytes appended so far.
func (b *Buffer) Len() int {
	return len(b.data)
}

// NodeList is an intrusive, singly-linked, append-only list of nodes
// threaded through an Arena's cells. The zero value is an empty list.
// Chains are acyclic and finite since each push only ever points
// forward to a freshly-allocated cell.
type NodeList struct {
	head    NodeRef
	tail    NodeRef
	hasHead bool
}

// IsEmpty reports whether the list has no elements.
func (l NodeList) IsEmpty() bool {
	return !l.hasHead
}

// Head returns the first element's NodeRef, if any.
func (l NodeList) Head() (NodeRef, bool) {
	return l.head, l.hasHead
}

// Singleton returns the list's sole element, if the list has exactly
// one.
func (l NodeList) Singleton() (NodeRef, bool) {
	if l.hasHead && l.head == l.tail {
		return l.head, true
	}
	return 0, false
}

// Iter returns every NodeRef in the list, in order. This walks the
// arena's chained cells, so it requires the same Arena the list was
// built in.
func Iter[N any](l NodeList, a *Arena[N]) []NodeRef {
	var refs []NodeRef
	cur, ok := l.Head()
	for ok {
		refs = append(refs, cur)
		c := a.cells[cur]
		cur, ok = c.next, c.hasNext
	}
	return refs
}

// NodeListBuilder accumulates a NodeList with O(1) appends by tracking
// the current tail.
type NodeListBuilder[N any] struct {
	list NodeList
}

// Push appends node to the arena and links it onto the end of the
// list being built.
func (bld *NodeListBuilder[N]) Push(a *Arena[N], node N) NodeRef {
	ref := a.Push(node)
	bld.PushRef(a, ref)
	return ref
}

// PushRef links an already-allocated node onto the end of the list
// being built. Since ref becomes the tail, any link it still carries
// from a list it was in before is dropped.
func (bld *NodeListBuilder[N]) PushRef(a *Arena[N], ref NodeRef) {
	a.cells[ref].hasNext = false
	if !bld.list.hasHead {
		bld.list = NodeList{head: ref, tail: ref, hasHead: true}
		return
	}
	tail := &a.cells[bld.list.tail]
	tail.next = ref
	tail.hasNext = true
	bld.list.tail = ref
}

// Build returns the NodeList accumulated so far.
func (bld *NodeListBuilder[N]) Build() NodeList {
	return bld.list
}
