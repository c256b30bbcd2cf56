package factory

// Entry is one implementation in a factory index.
type Entry[T any] struct {
	Name        string
	Path        string
	Constructor Constructor[T]
}

// Collision records an implementation dropped because an earlier one in
// traversal order already had its name. Siblings registered under the same
// name share a path and are told apart by position.
type Collision struct {
	Name    string
	Kept    string // path of the retained implementation
	Dropped string // path of the discarded implementation

	KeptPosition    int // registration index of the retained node under its parent
	DroppedPosition int // registration index of the discarded node under its parent
}

// Discovery is the result of walking a capability hierarchy.
type Discovery[T any] struct {
	Entries    []Entry[T]
	Collisions []Collision
}

// Discover returns every concrete implementation reachable from contract,
// one per name.
//
// A node's family is its direct children in registration order followed by
// the family of each child in turn. Abstract nodes are dropped from the
// family, then the first node seen for each name is kept.
func Discover[T any](contract *Node[T]) Discovery[T] {
	contract.mu.RLock()
	defer contract.mu.RUnlock()

	var d Discovery[T]
	for _, n := range family(contract, &d.Collisions) {
		d.Entries = append(d.Entries, Entry[T]{
			Name:        n.name,
			Path:        n.Path(),
			Constructor: n.ctor,
		})
	}
	return d
}

// family must be called with the tree lock held.
func family[T any](n *Node[T], collisions *[]Collision) []*Node[T] {
	members := make([]*Node[T], 0, len(n.children))
	members = append(members, n.children...)
	for _, child := range n.children {
		members = append(members, family(child, collisions)...)
	}

	kept := make(map[string]*Node[T], len(members))
	unique := make([]*Node[T], 0, len(members))
	for _, m := range members {
		if m.IsAbstract() {
			continue
		}
		if first, dup := kept[m.name]; dup {
			*collisions = append(*collisions, Collision{
				Name:            m.name,
				Kept:            first.Path(),
				Dropped:         m.Path(),
				KeptPosition:    first.position,
				DroppedPosition: m.position,
			})
			continue
		}
		kept[m.name] = m
		unique = append(unique, m)
	}
	return unique
}
