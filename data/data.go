//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package data

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/markkurossi/groupq/types"
)

var (
	_ Source = &CSV{}
	_ Source = &HTML{}
	_ Source = &JSON{}
	_ Cell   = StringCell("")
	_ Cell   = StringsCell([]string{})
)

// NewSource defines a constructor for data sources.
type NewSource func(in []io.ReadCloser, filter string,
	columns []ColumnSelector) (Source, error)

// New creates a new data source for the URL.
func New(url, filter string, columns []ColumnSelector) (Source, error) {
	input, format, err := openInput(url)
	if err != nil {
		return nil, err
	}
	return format.New(input, filter, columns)
}

func openInput(input string) ([]io.ReadCloser, Format, error) {
	var resolver Resolver

	u, err := url.Parse(input)
	if err != nil {
		resolver.ResolvePath(input)
	} else {
		resolver.ResolvePath(u.Path)
	}
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		resp, err := http.Get(input)
		if err != nil {
			return nil, 0, err
		}
		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil, 0, fmt.Errorf("HTTP URL '%s' not found", input)
		}

		resolver.ResolveMediaType(resp.Header.Get("Content-Type"))

		format, err := resolver.Format()
		return []io.ReadCloser{resp.Body}, format, err
	}
	if err == nil && u.Scheme == "data" {
		idx := strings.IndexByte(input, ',')
		if idx < 0 {
			return nil, 0, fmt.Errorf("malformed data URI: %s", input)
		}
		data := input[idx+1:]
		contentType := input[5:idx]
		var encoding string

		idx = strings.IndexByte(contentType, ';')
		if idx >= 0 {
			encoding = contentType[idx+1:]
			contentType = contentType[:idx]
		}

		var decoded []byte

		// Decode data.
		switch encoding {
		case "base64":
			decoded, err = base64.StdEncoding.DecodeString(data)
			if err != nil {
				return nil, 0, err
			}
		case "":
			decoded = []byte(data)
		default:
			return nil, 0, fmt.Errorf("unknown data URI encoding: %s", encoding)
		}

		// Resolve format.
		resolver.ResolveMediaType(contentType)

		format, err := resolver.Format()

		return []io.ReadCloser{
			&memory{
				in: bytes.NewReader(decoded),
			},
		}, format, err
	}

	matches, err := filepath.Glob(input)
	if err != nil {
		return nil, 0, err
	}
	var result []io.ReadCloser
	for _, match := range matches {
		f, err := os.Open(match)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, f)
	}

	format, err := resolver.Format()

	return result, format, err
}

type memory struct {
	in io.Reader
}

func (m *memory) Read(p []byte) (n int, err error) {
	return m.in.Read(p)
}

func (m *memory) Close() error {
	return nil
}

// ColumnSelector implements data column selector.
type ColumnSelector struct {
	Name string
	As   string
	Type types.Type
}

// ResolveString resolves the column type based on the argument column
// value. This function must be called once for each value and it will
// resolve the most specific column type that is able to represent all
// values.
func (col *ColumnSelector) ResolveString(val string) {
	// Skip empty values.
	if len(val) == 0 {
		return
	}
	for {
		switch col.Type {
		case types.Bool:
			_, ok := types.ParseBoolean(val)
			if ok {
				return
			}
			col.Type = types.Int

		case types.Int:
			_, err := strconv.ParseInt(val, 10, 64)
			if err == nil {
				return
			}
			col.Type = types.Float

		case types.Float:
			_, err := strconv.ParseFloat(val, 64)
			if err == nil {
				return
			}
			col.Type = types.Date

		case types.Date:
			_, err := types.ParseDate(val)
			if err == nil {
				return
			}
			col.Type = types.String

		case types.String:
			return
		}
	}
}

func (col ColumnSelector) String() string {
	if len(col.As) > 0 {
		return col.As
	}
	return col.Name
}

// Cell defines one raw input value of a row.
type Cell interface {
	String() string
}

// StringCell implements a string cell.
type StringCell string

func (s StringCell) String() string {
	return string(s)
}

// StringsCell implements a string array cell.
type StringsCell []string

func (s StringsCell) String() string {
	return strings.Join(s, ",")
}

// Row defines an input data row.
type Row []Cell

// Source is an interface that defines data input sources.
type Source interface {
	Columns() []ColumnSelector
	Get() ([]Row, error)
}
