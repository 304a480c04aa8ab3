//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package data

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"
)

// Format specifies input data format.
type Format int

// Known input data formats.
const (
	FormatUnknown Format = iota
	FormatCSV
	FormatHTML
	FormatJSON
)

// formatInfo describes one input data format: its name, the file
// suffix and media type it is recognized from, and its source
// constructor.
type formatInfo struct {
	name      string
	suffix    string
	mediatype string
	newSource NewSource
}

var formatInfos = map[Format]formatInfo{
	FormatUnknown: {
		name: "unknown",
	},
	FormatCSV: {
		name:      "csv",
		suffix:    ".csv",
		mediatype: "text/csv",
		newSource: NewCSV,
	},
	FormatHTML: {
		name:      "html",
		suffix:    ".html",
		mediatype: "text/html",
		newSource: NewHTML,
	},
	FormatJSON: {
		name:      "json",
		suffix:    ".json",
		mediatype: "application/json",
		newSource: NewJSON,
	},
}

func (f Format) String() string {
	info, ok := formatInfos[f]
	if ok {
		return info.name
	}
	return fmt.Sprintf("{Format %d}", f)
}

// New creates a new data source of the format from the input.
func (f Format) New(input []io.ReadCloser, filter string,
	columns []ColumnSelector) (Source, error) {

	info, ok := formatInfos[f]
	if !ok || info.newSource == nil {
		return nil, fmt.Errorf("unknown data format '%s'", f)
	}
	return info.newSource(input, filter, columns)
}

func formatBySuffix(suffix string) (Format, bool) {
	for format, info := range formatInfos {
		if len(info.suffix) > 0 && info.suffix == suffix {
			return format, true
		}
	}
	return FormatUnknown, false
}

func formatByMediaType(mediatype string) (Format, bool) {
	for format, info := range formatInfos {
		if len(info.mediatype) > 0 && info.mediatype == mediatype {
			return format, true
		}
	}
	return FormatUnknown, false
}

// Resolver resolves data format from input meta data.
type Resolver struct {
	format Format
	err    error
}

// Format returns the resolved input format.
func (r Resolver) Format() (Format, error) {
	if r.format == FormatUnknown {
		if r.err != nil {
			return r.format, r.err
		}
		return FormatUnknown, errors.New("could not resolve input format")
	}
	return r.format, nil
}

// ResolvePath resolves the input format from file path.
func (r *Resolver) ResolvePath(path string) {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		r.err = errors.New("no file suffix")
		return
	}
	f, ok := formatBySuffix(strings.ToLower(path[idx:]))
	if !ok {
		r.err = fmt.Errorf("unknown file suffix '%s'", path[idx:])
		return
	}
	r.format = f
}

// ResolveMediaType resolves the input format from content media type.
func (r *Resolver) ResolveMediaType(t string) {
	if len(t) == 0 {
		r.err = errors.New("no Content-Type")
		return
	}
	mediatype, _, err := mime.ParseMediaType(t)
	if err != nil {
		r.err = err
		return
	}
	f, ok := formatByMediaType(mediatype)
	if !ok {
		r.err = fmt.Errorf("unknown Content-Type: %s", mediatype)
		return
	}
	r.format = f
}
