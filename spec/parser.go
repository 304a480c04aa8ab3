//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package spec

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/markkurossi/groupq/types"
)

// Parse parses the argument grouping specification text. Commas
// separate grouping levels and pipes separate dimensions within a
// level; each dimension takes an optional trailing case-insensitive
// `asc` or `desc` token, default ascending:
//
//	series1 asc|series2 desc, category
//
// Dimension names are resolved against the argument complex type.
func Parse(text string, t types.ComplexType) (*Spec, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: complex type", ErrRequired)
	}
	fragments := strings.Split(text, ",")
	for idx, fragment := range fragments {
		fragments[idx] = strings.TrimSpace(fragment)
	}
	return ParseLevels(fragments, t)
}

// ParseLevels parses the argument per-level specification fragments.
func ParseLevels(fragments []string, t types.ComplexType) (*Spec, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: complex type", ErrRequired)
	}
	levels := []*Level{}
	for _, fragment := range fragments {
		var dims []*DimensionOrder
		for _, df := range strings.Split(fragment, "|") {
			df = strings.TrimSpace(df)
			if len(df) == 0 {
				continue
			}
			name, reverse, err := parseDimension(df)
			if err != nil {
				return nil, err
			}
			dim, err := t.Dimensions(name)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalid, err)
			}
			dims = append(dims, NewDimensionOrder(dim, reverse))
		}
		levels = append(levels, NewLevel(dims...))
	}
	return New(t, levels)
}

// parseDimension parses one dimension fragment: a dimension name
// followed by an optional order token. The fragment is malformed if
// the name itself still ends in an order token after the optional one
// is consumed.
func parseDimension(fragment string) (string, bool, error) {
	name, token := splitOrderToken(fragment)
	reverse := token == "desc"
	if len(name) == 0 {
		return "", false, fmt.Errorf(
			"%w: invalid dimension specification '%s'", ErrInvalid, fragment)
	}
	rest, token := splitOrderToken(name)
	if len(token) > 0 && len(rest) > 0 {
		return "", false, fmt.Errorf(
			"%w: invalid dimension specification '%s'", ErrInvalid, fragment)
	}
	return name, reverse, nil
}

// splitOrderToken splits a trailing order token off the argument
// fragment. It returns the fragment head and the lowercased token, or
// an empty token if the fragment does not end in one.
func splitOrderToken(fragment string) (string, string) {
	idx := strings.LastIndexFunc(fragment, unicode.IsSpace)
	if idx < 0 {
		return fragment, ""
	}
	token := strings.ToLower(fragment[idx+1:])
	if token != "asc" && token != "desc" {
		return fragment, ""
	}
	return strings.TrimSpace(fragment[:idx]), token
}
