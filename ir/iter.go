package ir

import "iter"

// Iterator walks the children of a container. It is restartable and
// tolerates removal of the current child through Remove.
type Iterator struct {
	parent  *Node
	current *Node
	next    *Node
	started bool
}

// Children returns an iterator positioned before the first child of n.
func (n *Node) Children() *Iterator {
	return &Iterator{parent: n}
}

// Next advances to the next child and reports whether there is one.
func (it *Iterator) Next() bool {
	if !it.started {
		it.started = true
		it.next = it.parent.child
	}
	it.current = it.next
	if it.current == nil {
		return false
	}
	it.next = it.current.next
	return true
}

// Node returns the current child.
func (it *Iterator) Node() *Node { return it.current }

// Remove detaches the current child. Iteration continues with the
// child that followed it.
func (it *Iterator) Remove() error {
	if it.current == nil || it.current.parent != it.parent {
		return pathErrf(it.parent, ErrInvalidState, "no current child to remove")
	}
	it.parent.unlink(it.current)
	it.current = nil
	return nil
}

func (it *Iterator) Reset() {
	it.current, it.next = nil, nil
	it.started = false
}

// All ranges over the children of n. The loop body may remove the
// child it was given.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for c := n.child; c != nil; {
			next := c.next
			if !yield(c) {
				return
			}
			c = next
		}
	}
}
