//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package groupq

import (
	"fmt"
	"io"

	"github.com/markkurossi/groupq/data"
	"github.com/markkurossi/groupq/spec"
	"github.com/markkurossi/groupq/types"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/vt100"
)

// Client implements the groupq client: it loads a data source,
// applies a grouping specification, and tabulates the grouped datums
// to the output.
type Client struct {
	out   io.Writer
	style tabulate.Style
}

// NewClient creates a new client for the output writer.
func NewClient(out io.Writer) *Client {
	return &Client{
		out:   out,
		style: tabulate.Unicode,
	}
}

// SetStyle sets the table formatting style.
func (c *Client) SetStyle(name string) error {
	style, ok := tabulate.Styles[name]
	if !ok {
		return fmt.Errorf("unknown table style '%s'", name)
	}
	c.style = style
	return nil
}

// Execute loads the data source from the URL, parses the grouping
// specification against it, groups the datums, and prints the
// result.
func (c *Client) Execute(specText, url, filter string) error {
	source, err := data.New(url, filter, nil)
	if err != nil {
		return err
	}
	table, err := data.NewTable(source)
	if err != nil {
		return err
	}
	s, err := spec.Parse(specText, table)
	if err != nil {
		return err
	}
	return c.Print(s, table, Group(s, table.Datums()))
}

// Print tabulates the grouping tree. With a tree flattening mode
// every node is printed in traversal order; otherwise only the leaf
// groups are printed.
func (c *Client) Print(s *spec.Spec, table *data.Table, root *Node) error {
	for _, node := range root.Flatten(s.Flatten) {
		if len(node.Label) > 0 {
			fmt.Fprintf(c.out, "%s (%d)\n", node.Label, node.Count())
		}
		if len(node.Datums) == 0 {
			continue
		}
		tab := tabulate.New(c.style)
		tab.Measure = func(column string) int {
			w, _, _ := vt100.DisplayWidth(column)
			return w
		}
		columns := table.Columns()
		for _, col := range columns {
			tab.Header(col.String()).SetAlign(col.Type.Align())
		}
		for _, datum := range node.Datums {
			row := tab.Row()
			for _, col := range columns {
				atom := datum.Atom(col.String())
				if atom == types.Null {
					row.Column("")
				} else {
					row.Column(atom.String())
				}
			}
		}
		tab.Print(c.out)
	}
	return nil
}
