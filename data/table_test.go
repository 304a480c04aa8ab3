//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package data

import (
	"io"
	"strings"
	"testing"

	"github.com/markkurossi/groupq/types"
)

var csvData = `Region,Product,Units,Price,Launched,Active
east,alpha,10,1.50,2020-01-02,true
west,alpha,7,1.25,2020-01-02,true
east,beta,3,9.99,2021-06-30,false
west,beta,8,9.99,2021-06-30,true
`

func testCSVTable(t *testing.T) *Table {
	t.Helper()
	source, err := NewCSV([]io.ReadCloser{
		io.NopCloser(strings.NewReader(csvData)),
	}, "headers", nil)
	if err != nil {
		t.Fatalf("NewCSV failed: %s", err)
	}
	table, err := NewTable(source)
	if err != nil {
		t.Fatalf("NewTable failed: %s", err)
	}
	return table
}

func TestTableTypes(t *testing.T) {
	table := testCSVTable(t)

	expected := map[string]types.Type{
		"Region":   types.String,
		"Product":  types.String,
		"Units":    types.Int,
		"Price":    types.Float,
		"Launched": types.Date,
		"Active":   types.Bool,
	}
	for name, typ := range expected {
		dim, err := table.Dimensions(name)
		if err != nil {
			t.Errorf("Dimensions(%s) failed: %s", name, err)
			continue
		}
		if dim.(*Dimension).Type() != typ {
			t.Errorf("dimension %s: got type %s, expected %s",
				name, dim.(*Dimension).Type(), typ)
		}
	}

	_, err := table.Dimensions("Bogus")
	if err == nil {
		t.Errorf("unknown dimension did not fail")
	}
}

func TestTableDatums(t *testing.T) {
	table := testCSVTable(t)

	datums := table.Datums()
	if len(datums) != 4 {
		t.Fatalf("got %d datums, expected 4", len(datums))
	}

	units, err := datums[0].Atom("Units").Int()
	if err != nil {
		t.Errorf("Units atom: %s", err)
	} else if units != 10 {
		t.Errorf("got units %d, expected 10", units)
	}

	active, err := datums[2].Atom("Active").Bool()
	if err != nil {
		t.Errorf("Active atom: %s", err)
	} else if active {
		t.Errorf("got active true, expected false")
	}

	if datums[0].Atom("Bogus") != types.Null {
		t.Errorf("missing dimension is not null")
	}
}

func TestTableDiscreteness(t *testing.T) {
	table := testCSVTable(t)

	discrete := map[string]bool{
		"Region": true,
		"Active": true,
		"Units":  false,
		"Price":  false,
	}
	for name, expected := range discrete {
		dim, err := table.Dimensions(name)
		if err != nil {
			t.Fatalf("Dimensions(%s) failed: %s", name, err)
		}
		if dim.IsDiscrete() != expected {
			t.Errorf("dimension %s: got discrete %v, expected %v",
				name, dim.IsDiscrete(), expected)
		}
	}
}

func TestAtomComparer(t *testing.T) {
	table := testCSVTable(t)

	dim, err := table.Dimensions("Units")
	if err != nil {
		t.Fatal(err)
	}
	cmp := dim.AtomComparer(false)
	if cmp(types.IntAtom(1), types.IntAtom(2)) != -1 {
		t.Errorf("ascending comparer order")
	}
	rev := dim.AtomComparer(true)
	if rev(types.IntAtom(1), types.IntAtom(2)) != 1 {
		t.Errorf("descending comparer order")
	}
}
