package factory

import (
	"strings"
	"sync"
)

// Constructor builds an implementation from caller-supplied arguments.
type Constructor[T any] func(args ...any) (T, error)

// Node is one type in a capability hierarchy. The root returned by
// NewContract and every node returned by Abstract are abstract; nodes
// returned by Provide are concrete.
type Node[T any] struct {
	mu       *sync.RWMutex // shared by the whole tree
	name     string
	position int // index among the parent's children
	parent   *Node[T]
	ctor     Constructor[T]
	children []*Node[T]
}

// NewContract creates the root of a capability hierarchy.
func NewContract[T any](name string) *Node[T] {
	if name == "" {
		panic("factory: contract name is required")
	}
	return &Node[T]{mu: &sync.RWMutex{}, name: name}
}

// Abstract adds an abstract subtype under n and returns it.
func (n *Node[T]) Abstract(name string) *Node[T] {
	if name == "" {
		panic("factory: abstract layer name is required")
	}
	return n.add(name, nil)
}

// Provide adds a concrete implementation under n and returns its node, which
// may itself be extended.
func (n *Node[T]) Provide(name string, ctor Constructor[T]) *Node[T] {
	if name == "" {
		panic("factory: implementation name is required")
	}
	if ctor == nil {
		panic("factory: nil constructor for " + name)
	}
	return n.add(name, ctor)
}

func (n *Node[T]) add(name string, ctor Constructor[T]) *Node[T] {
	n.mu.Lock()
	defer n.mu.Unlock()
	child := &Node[T]{mu: n.mu, name: name, position: len(n.children), parent: n, ctor: ctor}
	n.children = append(n.children, child)
	return child
}

// Name returns the node's name.
func (n *Node[T]) Name() string { return n.name }

// Position returns the registration index of n among its parent's children.
// The root is at position 0.
func (n *Node[T]) Position() int { return n.position }

// IsAbstract reports whether the node cannot be constructed.
func (n *Node[T]) IsAbstract() bool { return n.ctor == nil }

// Children returns the direct subtypes of n in registration order.
func (n *Node[T]) Children() []*Node[T] {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Node[T], len(n.children))
	copy(out, n.children)
	return out
}

// Path returns the slash-separated names from the root down to n.
func (n *Node[T]) Path() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}
