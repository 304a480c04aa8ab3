//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	_ Atom = BoolAtom(false)
	_ Atom = IntAtom(0)
	_ Atom = FloatAtom(0.0)
	_ Atom = DateAtom{}
	_ Atom = StringAtom("")

	// Null specifies a non-existing atom value.
	Null Atom = NullAtom{}
)

// Atom implements one immutable dimension value of a datum. The
// global key is a stable, collation independent key: two atoms that
// compare equal produce identical global keys.
type Atom interface {
	Bool() (bool, error)
	Int() (int64, error)
	Float() (float64, error)
	String() string
	Type() Type
	GlobalKey() string
}

// Compare compares the argument atoms. It returns -1, 0, or 1 if the
// atom a orders before, equal to, or after the atom b. Null atoms
// order first and real NaN values last.
func Compare(a, b Atom) int {
	_, aNull := a.(NullAtom)
	_, bNull := b.(NullAtom)
	if aNull || bNull {
		if aNull && bNull {
			return 0
		}
		if aNull {
			return -1
		}
		return 1
	}

	switch av := a.(type) {
	case BoolAtom:
		bv, ok := b.(BoolAtom)
		if ok {
			if av == bv {
				return 0
			}
			if !bool(av) {
				return -1
			}
			return 1
		}

	case IntAtom:
		bv, ok := b.(IntAtom)
		if ok {
			if av < bv {
				return -1
			}
			if av > bv {
				return 1
			}
			return 0
		}

	case FloatAtom:
		bv, ok := b.(FloatAtom)
		if ok {
			return compareFloats(float64(av), float64(bv))
		}

	case DateAtom:
		bv, ok := b.(DateAtom)
		if ok {
			if av.time.Before(bv.time) {
				return -1
			}
			if av.time.After(bv.time) {
				return 1
			}
			return 0
		}

	case StringAtom:
		bv, ok := b.(StringAtom)
		if ok {
			return strings.Compare(string(av), string(bv))
		}
	}

	return strings.Compare(a.GlobalKey(), b.GlobalKey())
}

func compareFloats(a, b float64) int {
	aNaN := math.IsNaN(a)
	bNaN := math.IsNaN(b)
	if aNaN || bNaN {
		if aNaN && bNaN {
			return 0
		}
		if aNaN {
			return 1
		}
		return -1
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// BoolAtom implements boolean atoms.
type BoolAtom bool

// Bool implements the Atom.Bool().
func (v BoolAtom) Bool() (bool, error) {
	return bool(v), nil
}

// Int implements the Atom.Int().
func (v BoolAtom) Int() (int64, error) {
	return 0, fmt.Errorf("bool used as int")
}

// Float implements the Atom.Float().
func (v BoolAtom) Float() (float64, error) {
	return 0, fmt.Errorf("bool used as float")
}

func (v BoolAtom) String() string {
	return fmt.Sprintf("%v", bool(v))
}

// Type implements the Atom.Type().
func (v BoolAtom) Type() Type {
	return Bool
}

// GlobalKey implements the Atom.GlobalKey().
func (v BoolAtom) GlobalKey() string {
	if v {
		return True
	}
	return False
}

// IntAtom implements integer atoms.
type IntAtom int64

// Bool implements the Atom.Bool().
func (v IntAtom) Bool() (bool, error) {
	return false, fmt.Errorf("int used as bool")
}

// Int implements the Atom.Int().
func (v IntAtom) Int() (int64, error) {
	return int64(v), nil
}

// Float implements the Atom.Float().
func (v IntAtom) Float() (float64, error) {
	return float64(v), nil
}

func (v IntAtom) String() string {
	return fmt.Sprintf("%d", v)
}

// Type implements the Atom.Type().
func (v IntAtom) Type() Type {
	return Int
}

// GlobalKey implements the Atom.GlobalKey().
func (v IntAtom) GlobalKey() string {
	return strconv.FormatInt(int64(v), 10)
}

// FloatAtom implements floating point atoms.
type FloatAtom float64

// Bool implements the Atom.Bool().
func (v FloatAtom) Bool() (bool, error) {
	return false, fmt.Errorf("float used as bool")
}

// Int implements the Atom.Int().
func (v FloatAtom) Int() (int64, error) {
	return int64(v), nil
}

// Float implements the Atom.Float().
func (v FloatAtom) Float() (float64, error) {
	return float64(v), nil
}

func (v FloatAtom) String() string {
	return fmt.Sprintf("%.2f", float64(v))
}

// Type implements the Atom.Type().
func (v FloatAtom) Type() Type {
	return Float
}

// GlobalKey implements the Atom.GlobalKey().
func (v FloatAtom) GlobalKey() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

// DateAtom implements datetime atoms.
type DateAtom struct {
	time time.Time
}

// NewDateAtom creates a new datetime atom from the argument time.
func NewDateAtom(t time.Time) DateAtom {
	return DateAtom{
		time: t,
	}
}

// Time returns the atom value as time.
func (v DateAtom) Time() time.Time {
	return v.time
}

// Bool implements the Atom.Bool().
func (v DateAtom) Bool() (bool, error) {
	return false, fmt.Errorf("datetime used as bool")
}

// Int implements the Atom.Int().
func (v DateAtom) Int() (int64, error) {
	return v.time.UnixNano(), nil
}

// Float implements the Atom.Float().
func (v DateAtom) Float() (float64, error) {
	return float64(v.time.UnixNano()), nil
}

func (v DateAtom) String() string {
	return v.time.Format(DateTimeLayout)
}

// Type implements the Atom.Type().
func (v DateAtom) Type() Type {
	return Date
}

// GlobalKey implements the Atom.GlobalKey(). The key is normalized
// to UTC so that equal instants in different zones produce identical
// keys.
func (v DateAtom) GlobalKey() string {
	return v.time.UTC().Format(time.RFC3339Nano)
}

// StringAtom implements string atoms.
type StringAtom string

// Bool implements the Atom.Bool().
func (v StringAtom) Bool() (bool, error) {
	val, ok := ParseBoolean(string(v))
	if !ok {
		return false, fmt.Errorf("string value '%s' used as bool", v)
	}
	return val, nil
}

// Int implements the Atom.Int().
func (v StringAtom) Int() (int64, error) {
	return strconv.ParseInt(string(v), 10, 64)
}

// Float implements the Atom.Float().
func (v StringAtom) Float() (float64, error) {
	return strconv.ParseFloat(string(v), 64)
}

func (v StringAtom) String() string {
	return string(v)
}

// Type implements the Atom.Type().
func (v StringAtom) Type() Type {
	return String
}

// GlobalKey implements the Atom.GlobalKey().
func (v StringAtom) GlobalKey() string {
	return string(v)
}

// NullAtom implements a non-existing atom value.
type NullAtom struct {
}

// Bool implements the Atom.Bool().
func (v NullAtom) Bool() (bool, error) {
	return false, errors.New("null used as bool")
}

// Int implements the Atom.Int().
func (v NullAtom) Int() (int64, error) {
	return 0, errors.New("null used as int")
}

// Float implements the Atom.Float().
func (v NullAtom) Float() (float64, error) {
	return 0, errors.New("null used as float")
}

func (v NullAtom) String() string {
	return "null"
}

// Type implements the Atom.Type().
func (v NullAtom) Type() Type {
	return String
}

// GlobalKey implements the Atom.GlobalKey().
func (v NullAtom) GlobalKey() string {
	return ""
}
