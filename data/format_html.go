//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package data

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTML implements a data source from HTML data.
type HTML struct {
	columns []ColumnSelector
	rows    []Row
}

// NewHTML creates a new HTML data source from the input. The filter
// is a CSS selector matching one element per row; the column names
// are CSS selectors applied within the row element.
func NewHTML(input []io.ReadCloser, filter string,
	columns []ColumnSelector) (Source, error) {

	for _, in := range input {
		defer in.Close()
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("html: no columns selected")
	}

	var rows []Row

	for _, in := range input {
		doc, err := goquery.NewDocumentFromReader(in)
		if err != nil {
			return nil, err
		}

		doc.Find(filter).Each(func(i int, s *goquery.Selection) {
			var row Row
			for i, col := range columns {
				sel := s.Find(col.Name)
				switch sel.Length() {
				case 0:
					row = append(row, StringCell(""))

				case 1:
					row = append(row,
						StringCell(strings.TrimSpace(sel.Text())))

				default:
					values := sel.Map(func(i int, s *goquery.Selection) string {
						return strings.TrimSpace(s.Text())
					})
					row = append(row, StringsCell(values))
				}
				columns[i].ResolveString(row[i].String())
			}
			rows = append(rows, row)
		})
	}

	return &HTML{
		columns: columns,
		rows:    rows,
	}, nil
}

// Columns implements the Source.Columns().
func (html *HTML) Columns() []ColumnSelector {
	return html.columns
}

// Get implements the Source.Get().
func (html *HTML) Get() ([]Row, error) {
	return html.rows, nil
}
