//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSV implements a data source from comma-separated values (CSV).
type CSV struct {
	columns []ColumnSelector
	rows    []Row
}

// NewCSV creates a new CSV data source from the input. The filter
// string carries space-separated options: headers, skip=N, comma=R,
// comment=R, and trim-leading-space. With the headers option and no
// explicit columns, every header column becomes a selector.
func NewCSV(input []io.ReadCloser, filter string,
	columns []ColumnSelector) (Source, error) {

	for _, in := range input {
		defer in.Close()
	}

	var skip int
	var headers bool
	var comma, comment rune
	var trimLeadingSpace bool
	var err error

	for _, option := range strings.Split(filter, " ") {
		if len(option) == 0 {
			continue
		}
		parts := strings.Split(option, "=")
		switch len(parts) {
		case 1:
			switch parts[0] {
			case "trim-leading-space":
				trimLeadingSpace = true

			case "headers":
				headers = true

			default:
				return nil, fmt.Errorf("csv: invalid filter flag: %s",
					parts[0])
			}

		case 2:
			switch parts[0] {
			case "skip":
				skip, err = strconv.Atoi(parts[1])
				if err != nil {
					return nil, fmt.Errorf("csv: invalid skip count: %s",
						parts[1])
				}

			case "comma":
				runes := []rune(parts[1])
				if len(runes) != 1 {
					return nil, fmt.Errorf("csv: comma must be rune: %s",
						parts[1])
				}
				comma = runes[0]

			case "comment":
				runes := []rune(parts[1])
				if len(runes) != 1 {
					return nil, fmt.Errorf("csv: comment must be rune: %s",
						parts[1])
				}
				comment = runes[0]

			default:
				return nil, fmt.Errorf("csv: unknown option: %s", parts[0])
			}

		default:
			return nil, fmt.Errorf("csv: invalid filter option: %s", option)
		}
	}

	var rows []Row

	for idx, in := range input {
		reader := csv.NewReader(in)
		reader.TrimLeadingSpace = trimLeadingSpace
		if comma != 0 {
			reader.Comma = comma
		}
		if comment != 0 {
			reader.Comment = comment
		}

		records, err := reader.ReadAll()
		if err != nil {
			return nil, err
		}
		drop := skip
		if drop > len(records) {
			drop = len(records)
		}
		records = records[drop:]

		var indices []int

		if headers {
			if len(records) == 0 {
				continue
			}
			// Mapping from column names to column indices.
			names := make(map[string]int)
			for i, col := range records[0] {
				names[col] = i
			}
			if idx == 0 && len(columns) == 0 {
				for _, col := range records[0] {
					columns = append(columns, ColumnSelector{
						Name: col,
					})
				}
			}
			records = records[1:]

			for _, col := range columns {
				i, ok := names[col.Name]
				if !ok {
					return nil, fmt.Errorf("csv: unknown column: %s",
						col.Name)
				}
				indices = append(indices, i)
			}
		} else {
			if len(columns) == 0 {
				return nil, fmt.Errorf("csv: no columns selected")
			}
			for _, col := range columns {
				i, err := strconv.Atoi(col.Name)
				if err != nil {
					return nil, err
				}
				indices = append(indices, i)
			}
		}

		for _, record := range records {
			var row Row
			for i := range columns {
				ci := indices[i]
				var val string

				if ci < 0 {
					if -ci > len(record) {
						return nil, fmt.Errorf(
							"csv: index %d (%d) out of bounds", i, ci)
					}
					val = record[len(record)+ci]
				} else {
					if ci >= len(record) {
						return nil, fmt.Errorf(
							"csv: index %d (%d) out of bounds", i, ci)
					}
					val = record[ci]
				}
				columns[i].ResolveString(val)
				row = append(row, StringCell(val))
			}
			rows = append(rows, row)
		}
	}

	return &CSV{
		columns: columns,
		rows:    rows,
	}, nil
}

// Columns implements the Source.Columns().
func (c *CSV) Columns() []ColumnSelector {
	return c.columns
}

// Get implements the Source.Get().
func (c *CSV) Get() ([]Row, error) {
	return c.rows, nil
}
