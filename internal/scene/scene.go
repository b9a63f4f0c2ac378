// Package scene is a minimal scene graph: translated nodes that may carry a mesh,
// grouped under a root, plus the lights that illuminate them.
//
// A Scene is not safe for concurrent mutation. Readers may traverse concurrently
// as long as nothing adds or removes nodes meanwhile.
package scene

import (
	"queenboard/internal/geometry"
	"queenboard/internal/mathutil"
)

// Material is a flat surface finish. Color is sRGB.
type Material struct {
	Color     [3]uint8
	Metalness float64 // 0 = dielectric (pure Lambert), 1 = metal
	Roughness float64 // 0 = mirror-like highlight, 1 = no highlight
}

// HexColor unpacks 0xRRGGBB.
func HexColor(hex uint32) [3]uint8 {
	return [3]uint8{uint8(hex >> 16), uint8(hex >> 8), uint8(hex)}
}

// Mesh binds geometry to a material.
type Mesh struct {
	Geometry      *geometry.Geometry
	Material      Material
	CastShadow    bool
	ReceiveShadow bool
}

// Node is a translated element of the graph. Nodes with a nil Mesh act as groups.
type Node struct {
	Name     string
	Tag      string
	Position mathutil.Vec3
	Mesh     *Mesh
	Children []*Node

	parent *Node
}

// NewGroup returns an empty group node.
func NewGroup(name string) *Node {
	return &Node{Name: name}
}

// NewMesh returns a node carrying mesh at position.
func NewMesh(name string, mesh *Mesh, position mathutil.Vec3) *Node {
	return &Node{Name: name, Mesh: mesh, Position: position}
}

// Add attaches child, detaching it from any previous parent first.
func (n *Node) Add(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.Children = append(n.Children, child)
}

// Remove detaches a direct child. It reports whether child was found.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			copy(n.Children[i:], n.Children[i+1:])
			n.Children[len(n.Children)-1] = nil
			n.Children = n.Children[:len(n.Children)-1]
			child.parent = nil
			return true
		}
	}
	return false
}

// Parent returns the node this one is attached to, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// WorldPosition sums positions up the parent chain.
func (n *Node) WorldPosition() mathutil.Vec3 {
	p := n.Position
	for a := n.parent; a != nil; a = a.parent {
		p = p.Add(a.Position)
	}
	return p
}

// Traverse visits n and all descendants depth-first.
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Traverse(fn)
	}
}

// Scene is the root of the graph together with its lighting.
type Scene struct {
	root *Node

	Lighting Lighting
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{root: NewGroup("scene")}
}

// Root returns the root group.
func (s *Scene) Root() *Node {
	return s.root
}

// Add attaches n to the root.
func (s *Scene) Add(n *Node) {
	s.root.Add(n)
}

// Remove detaches n from wherever it sits in the graph. It reports whether n was attached to this scene.
func (s *Scene) Remove(n *Node) bool {
	if n == nil || n.parent == nil || !s.contains(n) {
		return false
	}
	return n.parent.Remove(n)
}

// Traverse visits every node below the root, root excluded.
func (s *Scene) Traverse(fn func(*Node)) {
	for _, c := range s.root.Children {
		c.Traverse(fn)
	}
}

// FindTagged collects every node carrying tag. Collection finishes before the
// caller gets the slice, so removing the results is safe.
func (s *Scene) FindTagged(tag string) []*Node {
	var found []*Node
	s.Traverse(func(n *Node) {
		if n.Tag == tag {
			found = append(found, n)
		}
	})
	return found
}

// RemoveTagged removes every node carrying tag and returns how many were removed.
func (s *Scene) RemoveTagged(tag string) int {
	removed := 0
	for _, n := range s.FindTagged(tag) {
		// a tagged node nested in another tagged node may already be gone
		if s.Remove(n) {
			removed++
		}
	}
	return removed
}

// MeshCount returns the number of mesh-carrying nodes.
func (s *Scene) MeshCount() int {
	count := 0
	s.Traverse(func(n *Node) {
		if n.Mesh != nil {
			count++
		}
	})
	return count
}

func (s *Scene) contains(n *Node) bool {
	a := n
	for a.parent != nil {
		a = a.parent
	}
	return a == s.root
}
