//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package types

import (
	"math"
	"testing"
	"time"
)

var dateTests = []string{
	"2007-04-30T01:01:01.1234567-07:00",
	"2005-12-31 23:59:59.9999999",
	"2005-12-31 23:59:59.999",
	"2005-12-31 23:59:59",
	"2005-12-31",
}

func TestParseDate(t *testing.T) {
	for _, test := range dateTests {
		_, err := ParseDate(test)
		if err != nil {
			t.Errorf("ParseDate(%s) failed: %s", test, err)
		}
	}
}

var compareTests = []struct {
	a Atom
	b Atom
	v int
}{
	{BoolAtom(false), BoolAtom(true), -1},
	{BoolAtom(true), BoolAtom(true), 0},
	{IntAtom(1), IntAtom(2), -1},
	{IntAtom(2), IntAtom(2), 0},
	{IntAtom(3), IntAtom(2), 1},
	{FloatAtom(1.5), FloatAtom(2.5), -1},
	{FloatAtom(2.5), FloatAtom(2.5), 0},
	{FloatAtom(math.NaN()), FloatAtom(2.5), 1},
	{FloatAtom(2.5), FloatAtom(math.NaN()), -1},
	{FloatAtom(math.NaN()), FloatAtom(math.NaN()), 0},
	{StringAtom("a"), StringAtom("b"), -1},
	{StringAtom("b"), StringAtom("b"), 0},
	{Null, StringAtom(""), -1},
	{StringAtom(""), Null, 1},
	{Null, Null, 0},
}

func TestCompare(t *testing.T) {
	for idx, test := range compareTests {
		v := Compare(test.a, test.b)
		if v != test.v {
			t.Errorf("Compare test %d: got %d, expected %d", idx, v, test.v)
		}
		if v != -Compare(test.b, test.a) {
			t.Errorf("Compare test %d: not antisymmetric", idx)
		}
	}
}

func TestCompareDates(t *testing.T) {
	t0 := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	if Compare(NewDateAtom(t0), NewDateAtom(t1)) != -1 {
		t.Errorf("earlier date does not order first")
	}
	if Compare(NewDateAtom(t1), NewDateAtom(t1)) != 0 {
		t.Errorf("equal dates do not compare equal")
	}
}

func TestGlobalKey(t *testing.T) {
	// Equal instants in different zones must produce identical keys.
	utc := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	est := utc.In(time.FixedZone("EST", -5*3600))
	if NewDateAtom(utc).GlobalKey() != NewDateAtom(est).GlobalKey() {
		t.Errorf("date global key is not collation independent")
	}

	if IntAtom(42).GlobalKey() != "42" {
		t.Errorf("unexpected int global key: %s", IntAtom(42).GlobalKey())
	}
	if FloatAtom(1).GlobalKey() != "1" {
		t.Errorf("unexpected float global key: %s", FloatAtom(1).GlobalKey())
	}
	if BoolAtom(true).GlobalKey() != True {
		t.Errorf("unexpected bool global key: %s", BoolAtom(true).GlobalKey())
	}
}
