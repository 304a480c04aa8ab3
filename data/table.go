//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package data

import (
	"fmt"

	"github.com/markkurossi/groupq/types"
)

var (
	_ types.ComplexType = &Table{}
	_ types.Dimension   = &Dimension{}
	_ types.Datum       = &Datum{}
)

// Table materializes a data source into a typed dataset: the source
// columns become dimensions and the rows become datums with typed
// atoms. Table implements types.ComplexType.
type Table struct {
	columns []ColumnSelector
	dims    map[string]*Dimension
	datums  []types.Datum
}

// NewTable creates a new table from the argument data source.
func NewTable(source Source) (*Table, error) {
	rows, err := source.Get()
	if err != nil {
		return nil, err
	}
	columns := source.Columns()

	// Resolve column types over all values. The sources resolve
	// types as they read their input but a source is not required
	// to.
	for _, row := range rows {
		for i := range columns {
			if i < len(row) {
				columns[i].ResolveString(row[i].String())
			}
		}
	}

	table := &Table{
		columns: columns,
		dims:    make(map[string]*Dimension),
	}
	for _, col := range columns {
		name := col.String()
		table.dims[name] = &Dimension{
			name: name,
			typ:  col.Type,
		}
	}
	for _, row := range rows {
		atoms := make(map[string]types.Atom)
		for i, col := range columns {
			if i >= len(row) {
				atoms[col.String()] = types.Null
				continue
			}
			atoms[col.String()] = parseAtom(row[i].String(), col.Type)
		}
		table.datums = append(table.datums, &Datum{
			atoms: atoms,
		})
	}

	return table, nil
}

// Dimensions implements the types.ComplexType.Dimensions().
func (t *Table) Dimensions(name string) (types.Dimension, error) {
	dim, ok := t.dims[name]
	if !ok {
		return nil, fmt.Errorf("unknown dimension '%s'", name)
	}
	return dim, nil
}

// Columns returns the table columns.
func (t *Table) Columns() []ColumnSelector {
	return t.columns
}

// Datums returns the table records.
func (t *Table) Datums() []types.Datum {
	return t.datums
}

// parseAtom converts the argument raw value into a typed atom. Empty
// values are null; values that do not parse as the column type fall
// back to string atoms.
func parseAtom(val string, t types.Type) types.Atom {
	if len(val) == 0 {
		return types.Null
	}
	switch t {
	case types.Bool:
		v, ok := types.ParseBoolean(val)
		if ok {
			return types.BoolAtom(v)
		}

	case types.Int:
		v, err := types.StringAtom(val).Int()
		if err == nil {
			return types.IntAtom(v)
		}

	case types.Float:
		v, err := types.StringAtom(val).Float()
		if err == nil {
			return types.FloatAtom(v)
		}

	case types.Date:
		v, err := types.ParseDate(val)
		if err == nil {
			return types.NewDateAtom(v)
		}
	}
	return types.StringAtom(val)
}

// Dimension implements types.Dimension over one table column.
type Dimension struct {
	name string
	typ  types.Type
}

// Name implements the types.Dimension.Name().
func (d *Dimension) Name() string {
	return d.name
}

// Type returns the dimension value type.
func (d *Dimension) Type() types.Type {
	return d.typ
}

// IsDiscrete implements the types.Dimension.IsDiscrete(). Boolean
// and string dimensions are discrete, numeric and datetime
// dimensions continuous.
func (d *Dimension) IsDiscrete() bool {
	return d.typ == types.Bool || d.typ == types.String
}

// AtomComparer implements the types.Dimension.AtomComparer().
func (d *Dimension) AtomComparer(reverse bool) types.AtomComparer {
	if reverse {
		return func(a, b types.Atom) int {
			return types.Compare(b, a)
		}
	}
	return types.Compare
}

// Datum implements types.Datum over one table row.
type Datum struct {
	atoms map[string]types.Atom
}

// Atom implements the types.Datum.Atom().
func (d *Datum) Atom(dimension string) types.Atom {
	atom, ok := d.atoms[dimension]
	if !ok {
		return types.Null
	}
	return atom
}
