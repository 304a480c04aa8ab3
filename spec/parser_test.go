//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package spec

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/markkurossi/groupq/types"
)

type testDimension struct {
	name     string
	discrete bool
}

func (d *testDimension) Name() string {
	return d.name
}

func (d *testDimension) IsDiscrete() bool {
	return d.discrete
}

func (d *testDimension) AtomComparer(reverse bool) types.AtomComparer {
	if reverse {
		return func(a, b types.Atom) int {
			return types.Compare(b, a)
		}
	}
	return types.Compare
}

type testType map[string]*testDimension

func (t testType) Dimensions(name string) (types.Dimension, error) {
	dim, ok := t[name]
	if !ok {
		return nil, fmt.Errorf("unknown dimension '%s'", name)
	}
	return dim, nil
}

type testDatum map[string]types.Atom

func (d testDatum) Atom(name string) types.Atom {
	atom, ok := d[name]
	if !ok {
		return types.Null
	}
	return atom
}

var testSchema = testType{
	"series1":  {name: "series1", discrete: true},
	"series2":  {name: "series2", discrete: true},
	"category": {name: "category", discrete: true},
	"value":    {name: "value", discrete: false},
}

var parserTests = []struct {
	text    string
	depths  []int
	reverse [][]bool
	err     error
}{
	{
		text:    "category",
		depths:  []int{1},
		reverse: [][]bool{{false}},
	},
	{
		text:    "series1 asc, series2 desc, category",
		depths:  []int{1, 1, 1},
		reverse: [][]bool{{false}, {true}, {false}},
	},
	{
		text:    "series1 asc|series2 desc, category",
		depths:  []int{2, 1},
		reverse: [][]bool{{false, true}, {false}},
	},
	{
		text:    "series1 ASC, series2 DESC",
		depths:  []int{1, 1},
		reverse: [][]bool{{false}, {true}},
	},
	{
		text:    "series1||series2 desc",
		depths:  []int{2},
		reverse: [][]bool{{false, true}},
	},
	{
		text:    "series1, , category",
		depths:  []int{1, 1},
		reverse: [][]bool{{false}, {false}},
	},
	{
		text: "bogus name desc desc",
		err:  ErrInvalid,
	},
	{
		text: "bogus",
		err:  ErrInvalid,
	},
	{
		text: "",
		err:  ErrInvalid,
	},
	{
		text: " , ",
		err:  ErrInvalid,
	},
}

func TestParse(t *testing.T) {
	for _, test := range parserTests {
		s, err := Parse(test.text, testSchema)
		if test.err != nil {
			if err == nil {
				t.Errorf("Parse(%q) did not fail", test.text)
			} else if !errors.Is(err, test.err) {
				t.Errorf("Parse(%q): got error %v, expected %v",
					test.text, err, test.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) failed: %s", test.text, err)
			continue
		}
		if s.Depth() != len(test.depths) {
			t.Errorf("Parse(%q): got depth %d, expected %d",
				test.text, s.Depth(), len(test.depths))
			continue
		}
		for idx, level := range s.Levels {
			if level.Depth() != test.depths[idx] {
				t.Errorf("Parse(%q): level %d: got %d dimensions, expected %d",
					test.text, idx, level.Depth(), test.depths[idx])
				continue
			}
			for di, dim := range level.Dimensions {
				if dim.Reverse != test.reverse[idx][di] {
					t.Errorf("Parse(%q): level %d dimension %d: reverse=%v",
						test.text, idx, di, dim.Reverse)
				}
			}
		}
	}
}

func TestParseMalformedFragment(t *testing.T) {
	_, err := Parse("series1, bogus name desc desc", testSchema)
	if err == nil {
		t.Fatalf("malformed fragment did not fail")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("got error %v, expected ErrInvalid", err)
	}
	// The error names the offending fragment.
	if !strings.Contains(err.Error(), "bogus name desc desc") {
		t.Errorf("error does not name the fragment: %s", err)
	}
}

func TestParseUnknownDimension(t *testing.T) {
	_, err := Parse("x", testSchema)
	if err == nil {
		t.Fatalf("unknown dimension did not fail")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("got error %v, expected ErrInvalid", err)
	}
	if !strings.Contains(err.Error(), "x") {
		t.Errorf("error does not name the dimension: %s", err)
	}
}

func TestParseRequired(t *testing.T) {
	_, err := Parse("category", nil)
	if !errors.Is(err, ErrRequired) {
		t.Errorf("Parse without type: got error %v, expected ErrRequired",
			err)
	}
	_, err = ParseLevels([]string{"category"}, nil)
	if !errors.Is(err, ErrRequired) {
		t.Errorf("ParseLevels without type: got error %v, expected "+
			"ErrRequired", err)
	}
}

func TestParseLevelsEmpty(t *testing.T) {
	_, err := ParseLevels(nil, testSchema)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("ParseLevels(nil): got error %v, expected ErrInvalid", err)
	}
	_, err = ParseLevels([]string{}, testSchema)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("ParseLevels([]): got error %v, expected ErrInvalid", err)
	}
}
