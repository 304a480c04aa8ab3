//
// Copyright (c) 2021 Markku Rossi
//
// All rights reserved.
//

package groupq

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/markkurossi/groupq/spec"
)

func TestClientStyle(t *testing.T) {
	client := NewClient(&bytes.Buffer{})
	err := client.SetStyle("ascii")
	if err != nil {
		t.Errorf("client.SetStyle(ascii): %s", err)
	}
	err = client.SetStyle("bogus")
	if err == nil {
		t.Errorf("unknown style did not fail")
	}
}

func TestClientExecute(t *testing.T) {
	var buf bytes.Buffer

	client := NewClient(&buf)
	err := client.SetStyle("ascii")
	if err != nil {
		t.Fatalf("client.SetStyle(ascii): %s", err)
	}
	uri := "data:text/csv;base64," + base64.StdEncoding.EncodeToString(
		[]byte("Region,Product\neast,alpha\nwest,beta\n"))
	err = client.Execute("Region, Product desc", uri, "headers")
	if err != nil {
		t.Fatalf("client.Execute failed: %s", err)
	}
	output := buf.String()
	for _, expected := range []string{"east", "west", "alpha", "beta"} {
		if !strings.Contains(output, expected) {
			t.Errorf("output does not contain '%s':\n%s", expected, output)
		}
	}
}

func TestClientPrintTree(t *testing.T) {
	var buf bytes.Buffer

	table := salesTable(t)
	s, err := spec.Parse("Region", table)
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	s = s.Ensure(spec.Options{
		Flatten:   spec.FlattenTreePre,
		RootLabel: "All",
	})

	client := NewClient(&buf)
	err = client.Print(s, table, Group(s, table.Datums()))
	if err != nil {
		t.Fatalf("client.Print failed: %s", err)
	}
	output := buf.String()
	if !strings.Contains(output, "All (5)") {
		t.Errorf("output does not contain the root label:\n%s", output)
	}
	if !strings.Contains(output, "east (3)") {
		t.Errorf("output does not contain the east group:\n%s", output)
	}
}
