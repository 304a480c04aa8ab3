//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package spec

import (
	"fmt"
	"strings"
	"sync"

	"github.com/markkurossi/groupq/types"
)

// FlatteningMode specifies how a hierarchical grouping is linearized
// into a flat sequence of groups.
type FlatteningMode string

// Flattening modes. FlattenSingleLevel is a normalization sentinel
// accepted only by Spec.Ensure: it collapses all levels into one
// composite level instead of selecting a tree traversal order.
const (
	FlattenNone        FlatteningMode = ""
	FlattenTreePre     FlatteningMode = "tree-pre"
	FlattenTreePost    FlatteningMode = "tree-post"
	FlattenSingleLevel FlatteningMode = "singleLevel"
)

// Spec specifies a multi-level, multi-dimension grouping: how datums
// are ordered and how their composite grouping keys are derived. A
// spec is an immutable value object; the derived variants are
// computed lazily on first request and cached for the lifetime of the
// instance.
type Spec struct {
	Levels    []*Level
	Type      types.ComplexType
	Flatten   FlatteningMode
	RootLabel string

	id        string
	composite bool
	first     types.Dimension

	mu      sync.Mutex
	names   []string
	reverse *Spec
	single  [2]*Spec
}

// New creates a new grouping spec from the argument levels. Levels
// without dimensions are dropped; the spec must retain at least one
// level.
func New(t types.ComplexType, levels []*Level) (*Spec, error) {
	return NewFlattened(t, levels, FlattenNone, "")
}

// NewFlattened creates a new grouping spec with the argument
// flattening mode and root label.
func NewFlattened(t types.ComplexType, levels []*Level,
	mode FlatteningMode, rootLabel string) (*Spec, error) {

	if levels == nil {
		return nil, fmt.Errorf("%w: levels", ErrRequired)
	}
	if t == nil {
		return nil, fmt.Errorf("%w: complex type", ErrRequired)
	}
	spec := newSpec(t, levels, mode, rootLabel)
	if len(spec.Levels) == 0 {
		return nil, fmt.Errorf("%w: grouping without levels", ErrInvalid)
	}
	return spec, nil
}

// newSpec computes the derived metadata in one pass over the levels.
// The derived-variant constructors call it directly: their inputs
// come from an already validated spec.
func newSpec(t types.ComplexType, levels []*Level, mode FlatteningMode,
	rootLabel string) *Spec {

	spec := &Spec{
		Type:      t,
		Flatten:   mode,
		RootLabel: rootLabel,
	}
	var ids []string
	for _, level := range levels {
		if level.Depth() == 0 {
			continue
		}
		spec.Levels = append(spec.Levels, level)
		ids = append(ids, level.ID())
		if level.Depth() > 1 {
			spec.composite = true
		}
	}
	if len(spec.Levels) > 0 {
		spec.first = spec.Levels[0].Dimensions[0].Dimension
	}
	spec.id = string(mode) + "##" + rootLabel + "##" + strings.Join(ids, "||")

	return spec
}

// ID returns the canonical spec identity. Two specs with equal
// identities are interchangeable for caching purposes.
func (s *Spec) ID() string {
	return s.id
}

// Depth returns the number of grouping levels.
func (s *Spec) Depth() int {
	return len(s.Levels)
}

// IsSingleLevel reports if the spec has exactly one level.
func (s *Spec) IsSingleLevel() bool {
	return len(s.Levels) == 1
}

// IsSingleDimension reports if the spec has exactly one level with
// one dimension.
func (s *Spec) IsSingleDimension() bool {
	return s.IsSingleLevel() && !s.composite
}

// HasCompositeLevels reports if any level combines more than one
// dimension.
func (s *Spec) HasCompositeLevels() bool {
	return s.composite
}

// FirstDimension returns the first dimension of the first level.
func (s *Spec) FirstDimension() types.Dimension {
	return s.first
}

// IsDiscrete reports if the grouping is discrete. A multi-dimension
// or multi-level grouping is always discrete; a single-dimension
// grouping is as discrete as its dimension.
func (s *Spec) IsDiscrete() bool {
	if !s.IsSingleDimension() {
		return true
	}
	return s.first.IsDiscrete()
}

// Dimensions returns the dimension orders across all levels, in
// level order and within-level order. The sequence is recomputed for
// each call.
func (s *Spec) Dimensions() []*DimensionOrder {
	var dims []*DimensionOrder
	for _, level := range s.Levels {
		dims = append(dims, level.Dimensions...)
	}
	return dims
}

// DimensionNames returns the dimension names across all levels.
func (s *Spec) DimensionNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.names == nil {
		for _, dim := range s.Dimensions() {
			s.names = append(s.names, dim.Name())
		}
	}
	return s.names
}

// Compare compares the argument datums level by level: the first
// non-zero level comparison wins.
func (s *Spec) Compare(a, b types.Datum) int {
	for _, level := range s.Levels {
		v := level.Compare(a, b)
		if v != 0 {
			return v
		}
	}
	return 0
}

// Options specifies the normalizations requested from Spec.Ensure.
type Options struct {
	Flatten   FlatteningMode
	RootLabel string
	Reverse   bool
}

// Ensure returns a spec satisfying the argument options. The result
// is the receiver itself whenever it already qualifies. Flattening
// normalization happens before reversal.
func (s *Spec) Ensure(options Options) *Spec {
	if options.Flatten == FlattenSingleLevel {
		return s.SingleLevel(options.Reverse)
	}
	spec := s
	if options.Flatten != FlattenNone &&
		(options.Flatten != s.Flatten || options.RootLabel != s.RootLabel) {
		spec = newSpec(s.Type, s.Levels, options.Flatten, options.RootLabel)
	}
	if options.Reverse {
		spec = spec.Reversed()
	}
	return spec
}

// SingleLevel returns a spec with all levels collapsed into one
// composite level, containing every dimension in flattening order.
// With the reverse argument each dimension's direction is inverted.
// An already single-level spec is returned as-is when no reversal is
// requested.
func (s *Spec) SingleLevel(reverse bool) *Spec {
	if s.IsSingleLevel() && !reverse {
		return s
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := 0
	if reverse {
		idx = 1
	}
	if s.single[idx] == nil {
		var dims []*DimensionOrder
		for _, level := range s.Levels {
			for _, dim := range level.Dimensions {
				if reverse {
					dim = dim.reversed()
				}
				dims = append(dims, dim)
			}
		}
		s.single[idx] = newSpec(s.Type, []*Level{NewLevel(dims...)},
			s.Flatten, "")
	}
	return s.single[idx]
}

// Reversed returns a spec with the same level structure but every
// dimension's direction inverted.
func (s *Spec) Reversed() *Spec {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reverse == nil {
		levels := make([]*Level, 0, len(s.Levels))
		for _, level := range s.Levels {
			levels = append(levels, level.reversed())
		}
		s.reverse = newSpec(s.Type, levels, s.Flatten, "")
	}
	return s.reverse
}
