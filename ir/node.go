package ir

import (
	"maps"
	"slices"
	"strings"
)

// Node is a value in a document tree.
//
// Container nodes own their children through a doubly linked sibling
// chain. The parent link is for navigation only.
type Node struct {
	typ   Type
	name  string
	named bool

	str string
	f64 float64
	i64 int64
	raw string

	parent *Node
	child  *Node
	last   *Node
	next   *Node
	prev   *Node
	size   int
}

func New(t Type) *Node {
	return &Node{typ: t}
}

func NewObject() *Node { return New(ObjectType) }
func NewArray() *Node  { return New(ArrayType) }
func Null() *Node      { return New(NullType) }

func FromString(v string) *Node {
	n := &Node{}
	n.SetString(v)
	return n
}

func FromLong(v int64) *Node {
	return FromLongRaw(v, "")
}

// FromLongRaw keeps the source lexeme of the number alongside its value.
func FromLongRaw(v int64, raw string) *Node {
	n := &Node{}
	n.SetLong(v, raw)
	return n
}

func FromDouble(f float64) *Node {
	return FromDoubleRaw(f, "")
}

func FromDoubleRaw(f float64, raw string) *Node {
	n := &Node{}
	n.SetDouble(f, raw)
	return n
}

func FromBool(v bool) *Node {
	n := &Node{}
	n.SetBool(v)
	return n
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object with members in the given order. Values
// attached elsewhere are moved.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewObject()
	for _, kv := range kvs {
		kv.Val.SetName(kv.Key)
		res.adopt(kv.Val)
	}
	return res
}

// FromMap builds an object with members sorted by key.
func FromMap(m map[string]*Node) *Node {
	res := NewObject()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		v := m[key]
		v.SetName(key)
		res.adopt(v)
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := NewArray()
	for _, v := range vs {
		v.ClearName()
		res.adopt(v)
	}
	return res
}

func (n *Node) Type() Type { return n.typ }

// SetType changes the type of n and resets its payload.
func (n *Node) SetType(t Type) {
	n.typ = t
	n.str, n.raw = "", ""
	n.f64, n.i64 = 0, 0
}

func (n *Node) SetString(v string) {
	n.SetType(StringType)
	n.str = v
}

func (n *Node) SetLong(v int64, raw string) {
	n.SetType(LongType)
	n.i64 = v
	n.f64 = float64(v)
	n.raw = raw
}

func (n *Node) SetDouble(f float64, raw string) {
	n.SetType(DoubleType)
	n.f64 = f
	n.i64 = saturateInt64(f)
	n.raw = raw
}

func (n *Node) SetBool(v bool) {
	n.SetType(BoolType)
	if v {
		n.i64 = 1
	}
}

func (n *Node) SetNull() {
	n.SetType(NullType)
}

// Raw returns the source lexeme of a number, if it was kept.
func (n *Node) Raw() string { return n.raw }

func (n *Node) Name() string  { return n.name }
func (n *Node) HasName() bool { return n.named }

func (n *Node) SetName(name string) {
	n.name = name
	n.named = true
}

func (n *Node) ClearName() {
	n.name = ""
	n.named = false
}

func (n *Node) Parent() *Node      { return n.parent }
func (n *Node) FirstChild() *Node  { return n.child }
func (n *Node) LastChild() *Node   { return n.last }
func (n *Node) NextSibling() *Node { return n.next }
func (n *Node) PrevSibling() *Node { return n.prev }

// Len returns the number of children.
func (n *Node) Len() int       { return n.size }
func (n *Node) IsEmpty() bool  { return n.size == 0 }
func (n *Node) NotEmpty() bool { return n.size > 0 }

func (n *Node) IsObject() bool  { return n.typ == ObjectType }
func (n *Node) IsArray() bool   { return n.typ == ArrayType }
func (n *Node) IsString() bool  { return n.typ == StringType }
func (n *Node) IsNumber() bool  { return n.typ.IsNumber() }
func (n *Node) IsDouble() bool  { return n.typ == DoubleType }
func (n *Node) IsLong() bool    { return n.typ == LongType }
func (n *Node) IsBool() bool    { return n.typ == BoolType }
func (n *Node) IsNull() bool    { return n.typ == NullType }
func (n *Node) IsValue() bool   { return n.typ.IsLeaf() }

func (n *Node) IsContainer() bool { return !n.typ.IsLeaf() }

// Get returns the first child whose name matches name, ignoring case.
func (n *Node) Get(name string) *Node {
	c := n.child
	for c != nil && (!c.named || !strings.EqualFold(c.name, name)) {
		c = c.next
	}
	return c
}

// Index returns the i-th child or nil.
func (n *Node) Index(i int) *Node {
	if i < 0 {
		return nil
	}
	c := n.child
	for c != nil && i > 0 {
		i--
		c = c.next
	}
	return c
}

func (n *Node) Has(name string) bool {
	return n.Get(name) != nil
}

func (n *Node) Require(name string) (*Node, error) {
	c := n.Get(name)
	if c == nil {
		return nil, pathErrf(n, ErrNotFound, "child with name %q", name)
	}
	return c, nil
}

func (n *Node) RequireIndex(i int) (*Node, error) {
	c := n.Index(i)
	if c == nil {
		return nil, pathErrf(n, ErrNotFound, "child with index %d", i)
	}
	return c, nil
}

// AddChild appends c to the children of n. A child of an object must be
// named; a child of an array loses its name. If c already has a parent it
// is moved.
func (n *Node) AddChild(c *Node) error {
	switch n.typ {
	case ObjectType:
		if !c.named {
			return pathErrf(n, ErrInvalidStructure, "an object child requires a name")
		}
	case ArrayType:
		c.ClearName()
	default:
		return pathErrf(n, ErrInvalidStructure, "cannot add a child to a %s", n.typ)
	}
	// only a node with children can be an ancestor of n
	if c == n || (c.size > 0 && c.isAncestorOf(n)) {
		return pathErrf(n, ErrInvalidStructure, "cannot add a node beneath itself")
	}
	n.adopt(c)
	return nil
}

// adopt moves c to the end of n, detaching it from any current parent.
func (n *Node) adopt(c *Node) {
	if c.parent != nil {
		c.parent.unlink(c)
	}
	n.link(c)
}

func (n *Node) isAncestorOf(d *Node) bool {
	for a := d.parent; a != nil; a = a.parent {
		if a == n {
			return true
		}
	}
	return false
}

func (n *Node) AddNamedChild(name string, c *Node) error {
	if n.typ == ObjectType {
		c.SetName(name)
	}
	return n.AddChild(c)
}

// link appends c without checks; c must be detached.
func (n *Node) link(c *Node) {
	c.parent = n
	c.next = nil
	c.prev = n.last
	if n.last == nil {
		n.child = c
	} else {
		n.last.next = c
	}
	n.last = c
	n.size++
}

func (n *Node) unlink(c *Node) {
	if c.prev == nil {
		n.child = c.next
	} else {
		c.prev.next = c.next
	}
	if c.next == nil {
		n.last = c.prev
	} else {
		c.next.prev = c.prev
	}
	c.parent, c.next, c.prev = nil, nil, nil
	n.size--
}

// Remove detaches and returns the first child named name, or nil.
func (n *Node) Remove(name string) *Node {
	c := n.Get(name)
	if c == nil {
		return nil
	}
	n.unlink(c)
	return c
}

// RemoveIndex detaches and returns the i-th child, or nil.
func (n *Node) RemoveIndex(i int) *Node {
	c := n.Index(i)
	if c == nil {
		return nil
	}
	n.unlink(c)
	return c
}

// RemoveSelf detaches n from its parent.
func (n *Node) RemoveSelf() error {
	if n.parent == nil {
		return pathErrf(n, ErrInvalidState, "node has no parent")
	}
	n.parent.unlink(n)
	return nil
}

func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Clone returns a detached deep copy of n, keeping its name.
func (n *Node) Clone() *Node {
	res := &Node{
		typ:   n.typ,
		name:  n.name,
		named: n.named,
		str:   n.str,
		f64:   n.f64,
		i64:   n.i64,
		raw:   n.raw,
	}
	for c := n.child; c != nil; c = c.next {
		res.link(c.Clone())
	}
	return res
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for c := n.child; c != nil; c = c.next {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
