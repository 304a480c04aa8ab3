//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/markkurossi/jsonq"
)

// JSON implements a data source from JavaScript Object Notation
// (JSON).
type JSON struct {
	columns []ColumnSelector
	rows    []Row
}

// NewJSON creates a new JSON data source from the input. The filter
// is a jsonq selector; without explicit columns the first matched
// object defines the columns, sorted by name.
func NewJSON(input []io.ReadCloser, filter string,
	columns []ColumnSelector) (Source, error) {

	for _, in := range input {
		defer in.Close()
	}

	var rows []Row

	for _, in := range input {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		var v interface{}
		err = json.Unmarshal(data, &v)
		if err != nil {
			return nil, err
		}
		filtered, err := jsonq.Ctx(v).Select(filter).Get()
		if err != nil {
			return nil, err
		}
		if len(filtered) == 0 {
			continue
		}

		if len(columns) == 0 {
			switch obj := filtered[0].(type) {
			case map[string]interface{}:
				for col := range obj {
					columns = append(columns, ColumnSelector{
						Name: col,
					})
				}
				sort.Slice(columns, func(i, j int) bool {
					return columns[i].Name < columns[j].Name
				})

			default:
				return nil, errors.New("json: objects required " +
					"for column discovery")
			}
		}

		rows, err = processJSON(filtered, rows, columns)
		if err != nil {
			return nil, err
		}
	}

	return &JSON{
		columns: columns,
		rows:    rows,
	}, nil
}

func processJSON(filtered []interface{}, rows []Row,
	columns []ColumnSelector) ([]Row, error) {

	for _, f := range filtered {
		var row Row
		for i, col := range columns {
			sel, err := jsonq.Get(f, col.Name)
			if err != nil {
				return nil, err
			}
			row = append(row,
				StringCell(strings.TrimSpace(fmt.Sprintf("%v", sel))))
			columns[i].ResolveString(row[i].String())
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Columns implements the Source.Columns().
func (src *JSON) Columns() []ColumnSelector {
	return src.columns
}

// Get implements the Source.Get().
func (src *JSON) Get() ([]Row, error) {
	return src.rows, nil
}
