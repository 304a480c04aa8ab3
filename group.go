//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package groupq

import (
	"strings"

	"github.com/markkurossi/groupq/spec"
	"github.com/markkurossi/groupq/types"
)

// Node implements one node of a grouped dataset. Inner nodes carry
// the composite grouping key of their level; leaf nodes carry the
// datums sharing the key path.
type Node struct {
	Key      string
	Label    string
	Atoms    []types.Atom
	Datums   []types.Datum
	Children []*Node
}

// Group arranges the argument datums into a grouping tree with one
// tree level per spec level. The datums are ordered with the spec
// comparator so that sibling groups appear in comparator order and
// grouping never disagrees with sorting. The root node carries the
// spec's flatten root label.
func Group(s *spec.Spec, datums []types.Datum) *Node {
	root := &Node{
		Label: s.RootLabel,
	}
	for _, datum := range Sort(s, datums) {
		root.add(s, 0, datum)
	}
	return root
}

func (n *Node) add(s *spec.Spec, level int, datum types.Datum) {
	if level >= s.Depth() {
		n.Datums = append(n.Datums, datum)
		return
	}
	key := s.Levels[level].Key(datum)

	// Equal keys are adjacent in comparator order so only the last
	// child can match.
	var child *Node
	if len(n.Children) > 0 {
		last := n.Children[len(n.Children)-1]
		if last.Key == key.Key {
			child = last
		}
	}
	if child == nil {
		child = &Node{
			Key:   key.Key,
			Label: label(key.Atoms),
			Atoms: key.Atoms,
		}
		n.Children = append(n.Children, child)
	}
	child.add(s, level+1, datum)
}

func label(atoms []types.Atom) string {
	parts := make([]string, 0, len(atoms))
	for _, atom := range atoms {
		parts = append(parts, atom.String())
	}
	return strings.Join(parts, ",")
}

// Count returns the number of datums under the node.
func (n *Node) Count() int {
	count := len(n.Datums)
	for _, child := range n.Children {
		count += child.Count()
	}
	return count
}

// Flatten linearizes the grouping tree. Mode tree-pre returns each
// node before its children and tree-post after them, the root node
// included; any other mode returns the leaf nodes only.
func (n *Node) Flatten(mode spec.FlatteningMode) []*Node {
	switch mode {
	case spec.FlattenTreePre:
		return n.flattenPre(nil)

	case spec.FlattenTreePost:
		return n.flattenPost(nil)

	default:
		return n.leaves(nil)
	}
}

func (n *Node) flattenPre(result []*Node) []*Node {
	result = append(result, n)
	for _, child := range n.Children {
		result = child.flattenPre(result)
	}
	return result
}

func (n *Node) flattenPost(result []*Node) []*Node {
	for _, child := range n.Children {
		result = child.flattenPost(result)
	}
	return append(result, n)
}

func (n *Node) leaves(result []*Node) []*Node {
	if len(n.Children) == 0 {
		return append(result, n)
	}
	for _, child := range n.Children {
		result = child.leaves(result)
	}
	return result
}
