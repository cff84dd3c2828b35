// Command docrender converts a JSON document description into a PDF file.
// It is grounded on the teacher's cmd/gompdf/main.go: a flag-parsed
// input/output pair plus a verbose toggle, delegating everything else to
// the library entry point.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/inkfold/docrender/pkg/render"
)

func main() {
	var (
		inputFile  string
		outputFile string
		verbose    bool
	)

	flag.StringVar(&inputFile, "input", "", "Input document JSON file path")
	flag.StringVar(&outputFile, "output", "", "Output PDF file path")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	if inputFile == "" {
		fmt.Println("Error: input file is required")
		flag.Usage()
		os.Exit(1)
	}

	if outputFile == "" {
		ext := filepath.Ext(inputFile)
		outputFile = inputFile[:len(inputFile)-len(ext)] + ".pdf"
	}

	converter := render.New()
	if verbose {
		converter = converter.SetDebug(true)
	}

	if err := converter.ConvertFile(inputFile, outputFile); err != nil {
		fmt.Printf("Error converting file: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("Successfully converted %s to %s\n", inputFile, outputFile)
	}
}
