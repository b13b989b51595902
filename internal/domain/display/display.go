// Package display contains the composite tree used to render an arbitrary
// named grouping of roster entries, such as the top scorers. The tree is a
// transient rendering structure: it is rebuilt on every display request and
// never persisted.
package display

import (
	"errors"
	"strings"
)

// ErrLeafChildren - a child operation was attempted on a leaf. Leaves reject
// mutation with a structural error, not a silent no-op.
var ErrLeafChildren = errors.New("cannot attach children to a leaf")

// Marker is the indentation marker repeated depth times in rendered output.
const Marker = "-"

// Node is a composite tree node: either a Group holding ordered children or
// a childless Leaf.
type Node interface {
	// NodeName returns the display name of the node.
	NodeName() string

	// Add appends a child node. Leaves fail with ErrLeafChildren.
	Add(child Node) error

	// Remove removes the first structurally-equal child, a no-op if absent.
	// Leaves fail with ErrLeafChildren.
	Remove(child Node) error

	// Display renders the node's name indented by Marker repeated depth
	// times; a group then recurses into each child with depth + 2.
	Display(depth int) string
}

// Group is a named container of ordered child nodes.
type Group struct {
	name     string
	children []Node
}

// NewGroup creates an empty group.
func NewGroup(name string) *Group {
	return &Group{name: name, children: make([]Node, 0)}
}

// NodeName implements Node.
func (g *Group) NodeName() string {
	return g.name
}

// Add implements Node.
func (g *Group) Add(child Node) error {
	g.children = append(g.children, child)
	return nil
}

// Remove implements Node. Groups match by identity, leaves by name.
func (g *Group) Remove(child Node) error {
	for i, c := range g.children {
		if equal(c, child) {
			g.children = append(g.children[:i], g.children[i+1:]...)
			return nil
		}
	}
	return nil
}

// Children returns the ordered child nodes.
func (g *Group) Children() []Node {
	out := make([]Node, len(g.children))
	copy(out, g.children)
	return out
}

// Display implements Node.
func (g *Group) Display(depth int) string {
	var sb strings.Builder

	sb.WriteString(strings.Repeat(Marker, depth))
	sb.WriteString(g.name)
	sb.WriteString("\n")

	for _, c := range g.children {
		sb.WriteString(c.Display(depth + 2))
	}
	return sb.String()
}

// Leaf is a named node with no children.
type Leaf struct {
	name string
}

// NewLeaf creates a leaf.
func NewLeaf(name string) *Leaf {
	return &Leaf{name: name}
}

// NodeName implements Node.
func (l *Leaf) NodeName() string {
	return l.name
}

// Add implements Node: always fails.
func (l *Leaf) Add(Node) error {
	return ErrLeafChildren
}

// Remove implements Node: always fails.
func (l *Leaf) Remove(Node) error {
	return ErrLeafChildren
}

// Display implements Node.
func (l *Leaf) Display(depth int) string {
	return strings.Repeat(Marker, depth) + l.name + "\n"
}

// equal reports structural equality between nodes: leaves compare by name,
// groups by identity.
func equal(a, b Node) bool {
	la, aIsLeaf := a.(*Leaf)
	lb, bIsLeaf := b.(*Leaf)
	if aIsLeaf && bIsLeaf {
		return la.name == lb.name
	}
	return a == b
}
