//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package groupq

import (
	"sort"

	"github.com/markkurossi/groupq/spec"
	"github.com/markkurossi/groupq/types"
)

// Sort returns the datums ordered by the spec comparator. The sort
// is stable and the argument slice is left unmodified.
func Sort(s *spec.Spec, datums []types.Datum) []types.Datum {
	sorted := make([]types.Datum, len(datums))
	copy(sorted, datums)

	sort.SliceStable(sorted, func(i, j int) bool {
		return s.Compare(sorted[i], sorted[j]) < 0
	})
	return sorted
}
