// Package access projects a text box layout into an accessibility tree: one
// inline text node per visual line, with per-character geometry, and a
// selection addressed by (node, character index).
package access

import "fmt"

// NodeID identifies a node of a text box tree. The region node has Line -1;
// line nodes carry the index of their visual line.
type NodeID struct {
	Region uint64
	Line   int
}

// RootID returns the node id of a text box region.
func RootID(region uint64) NodeID {
	return NodeID{Region: region, Line: -1}
}

// Child returns the id of the i-th visual line node under a region.
func (id NodeID) Child(i int) NodeID {
	return NodeID{Region: id.Region, Line: i}
}

func (id NodeID) IsRoot() bool { return id.Line < 0 }

func (id NodeID) String() string {
	if id.IsRoot() {
		return fmt.Sprintf("%d", id.Region)
	}
	return fmt.Sprintf("%d/%d", id.Region, id.Line)
}

type Role uint8

const (
	RoleTextField Role = iota
	RoleInlineTextBox
)

type Direction uint8

const (
	LeftToRight Direction = iota
	RightToLeft
)

// DefaultAction is the action a node performs when activated.
type DefaultAction uint8

const (
	ActionNone DefaultAction = iota
	ActionFocus
)

// Rect is a bounding box in physical units.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// TextPosition addresses a character boundary inside a line node.
// CharacterIndex counts entries of the node's CharacterLengths.
type TextPosition struct {
	Node           NodeID
	CharacterIndex int
}

type TextSelection struct {
	Anchor TextPosition
	Focus  TextPosition
}

// Node is an immutable accessibility node.
type Node struct {
	ID     NodeID
	Parent NodeID
	Role   Role

	Bounds    Rect
	Direction Direction
	Value     string

	CharacterLengths   []int
	CharacterPositions []float32
	CharacterWidths    []float32
	WordLengths        []int

	Children      []NodeID
	Multiline     bool
	DefaultAction DefaultAction
}

// Tree is the exported accessibility view of one text box.
type Tree struct {
	Root      Node
	Lines     []Node
	Selection TextSelection
}

// Line returns the line node with id.
func (t Tree) Line(id NodeID) (Node, bool) {
	if id.Region != t.Root.ID.Region || id.Line < 0 || id.Line >= len(t.Lines) {
		return Node{}, false
	}
	return t.Lines[id.Line], true
}
