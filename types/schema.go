//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package types

// AtomComparer compares two atoms of one dimension. It returns -1,
// 0, or 1 if the atom a orders before, equal to, or after the atom b.
type AtomComparer func(a, b Atom) int

// Dimension is an interface that defines one named, typed axis of a
// dataset.
type Dimension interface {
	// Name returns the dimension name.
	Name() string
	// IsDiscrete reports if the dimension values are discrete.
	IsDiscrete() bool
	// AtomComparer returns a comparer for the dimension atoms,
	// optionally in reverse order.
	AtomComparer(reverse bool) AtomComparer
}

// ComplexType is an interface that resolves dimension names to
// dimensions.
type ComplexType interface {
	// Dimensions resolves the argument dimension name. Unknown names
	// fail with an error.
	Dimensions(name string) (Dimension, error)
}

// Datum is an interface that defines one record of a dataset,
// exposing named atoms.
type Datum interface {
	// Atom returns the atom of the argument dimension. Missing
	// dimensions return Null.
	Atom(dimension string) Atom
}
