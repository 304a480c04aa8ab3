//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/markkurossi/groupq"
	"github.com/markkurossi/tabulate"
)

func main() {
	groupBy := flag.String("g", "", "grouping specification")
	filter := flag.String("f", "", "data source filter")
	tableFmt := flag.String("t", "uc", "table formatting style")
	flag.Parse()
	log.SetFlags(0)

	program := os.Args[0]
	idx := strings.LastIndex(program, "/")
	if idx >= 0 {
		program = program[idx+1:]
	}

	if len(*groupBy) == 0 {
		log.Fatalf("%s: no grouping specification\n", program)
	}

	client := groupq.NewClient(os.Stdout)
	err := client.SetStyle(*tableFmt)
	if err != nil {
		log.Printf("%s: %s\n", program, err)
		log.Fatalf("Possible styles are: %s\n",
			strings.Join(tabulate.StyleNames(), ", "))
	}

	for _, arg := range flag.Args() {
		err = client.Execute(*groupBy, arg, *filter)
		if err != nil {
			log.Fatalf("%s: %s\n", arg, err)
		}
	}
}
