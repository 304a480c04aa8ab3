//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package spec

import (
	"github.com/markkurossi/groupq/types"
)

// DimensionOrder specifies one dimension and its sort direction. The
// comparer is precomputed from the dimension at construction time so
// that it always agrees with the dimension type and the reverse flag.
type DimensionOrder struct {
	Dimension types.Dimension
	Reverse   bool
	id        string
	compare   types.AtomComparer
}

// NewDimensionOrder creates a new dimension order for the argument
// dimension, optionally in descending order.
func NewDimensionOrder(dim types.Dimension, reverse bool) *DimensionOrder {
	suffix := ":1"
	if reverse {
		suffix = ":0"
	}
	return &DimensionOrder{
		Dimension: dim,
		Reverse:   reverse,
		id:        dim.Name() + suffix,
		compare:   dim.AtomComparer(reverse),
	}
}

// Name returns the dimension name.
func (d *DimensionOrder) Name() string {
	return d.Dimension.Name()
}

// ID returns the dimension order identity.
func (d *DimensionOrder) ID() string {
	return d.id
}

// CompareDatums compares the atoms of the argument datums for this
// dimension. Ties are left for the owning level's next dimension.
func (d *DimensionOrder) CompareDatums(a, b types.Datum) int {
	name := d.Dimension.Name()
	return d.compare(a.Atom(name), b.Atom(name))
}

func (d *DimensionOrder) reversed() *DimensionOrder {
	return NewDimensionOrder(d.Dimension, !d.Reverse)
}
