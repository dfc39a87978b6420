package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/anhle/huffman"
)

var codesFile = flag.String("codes", "", "path to a JSON code table; defaults to the second argument")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] bits [codes-json]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	bits := flag.Arg(0)
	raw := []byte(flag.Arg(1))
	if *codesFile != "" {
		var err error
		raw, err = os.ReadFile(*codesFile)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		log.Fatalf("%v", err)
	}
	codes, err := huffman.ParseCodeTable(m)
	if err != nil {
		log.Fatalf("%v", err)
	}

	result, err := huffman.Decode(bits, codes)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := json.NewEncoder(os.Stdout).Encode(result); err != nil {
		log.Fatalf("%v", err)
	}
}
