package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/anhle/huffman"
)

var noDot = flag.Bool("nodot", false, "omit the tree visualization payload")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] text\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "reads from stdin when text is omitted\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	text := flag.Arg(0)
	if text == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("%v", err)
		}
		text = string(b)
	}

	result, err := huffman.Encode(text)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *noDot {
		result.TreeDOTBase64 = ""
	}
	if err := json.NewEncoder(os.Stdout).Encode(result); err != nil {
		log.Fatalf("%v", err)
	}
}
