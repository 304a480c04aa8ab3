//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package spec

import (
	"strings"

	"github.com/markkurossi/groupq/types"
)

// Level specifies one grouping level: an ordered sequence of
// dimension orders combined into one composite sort key. The
// dimension order defines the tie-break precedence: the first
// dimension is the primary sort key, the second breaks its ties, and
// so on.
type Level struct {
	Dimensions []*DimensionOrder
	id         string
}

// NewLevel creates a new grouping level from the argument dimension
// orders.
func NewLevel(dims ...*DimensionOrder) *Level {
	ids := make([]string, 0, len(dims))
	for _, dim := range dims {
		ids = append(ids, dim.ID())
	}
	return &Level{
		Dimensions: dims,
		id:         strings.Join(ids, ","),
	}
}

// ID returns the level identity.
func (l *Level) ID() string {
	return l.id
}

// Depth returns the number of dimensions in the level.
func (l *Level) Depth() int {
	return len(l.Dimensions)
}

// Compare compares the argument datums with the level's composite
// comparator: the first non-zero dimension comparison wins, and the
// datums are equal if every dimension ties.
func (l *Level) Compare(a, b types.Datum) int {
	for _, dim := range l.Dimensions {
		v := dim.CompareDatums(a, b)
		if v != 0 {
			return v
		}
	}
	return 0
}

// Key specifies the composite grouping key of one datum: the joined
// global keys and the underlying atoms in dimension order.
type Key struct {
	Key   string
	Atoms []types.Atom
}

// Key derives the composite grouping key of the argument datum. Two
// datums produce equal keys exactly when Compare ranks them equal.
func (l *Level) Key(datum types.Datum) Key {
	atoms := make([]types.Atom, 0, len(l.Dimensions))
	keys := make([]string, 0, len(l.Dimensions))
	for _, dim := range l.Dimensions {
		atom := datum.Atom(dim.Name())
		atoms = append(atoms, atom)
		keys = append(keys, atom.GlobalKey())
	}
	return Key{
		Key:   strings.Join(keys, ","),
		Atoms: atoms,
	}
}

func (l *Level) reversed() *Level {
	dims := make([]*DimensionOrder, 0, len(l.Dimensions))
	for _, dim := range l.Dimensions {
		dims = append(dims, dim.reversed())
	}
	return NewLevel(dims...)
}
