package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/halcyon-labs/langstat/internal/util"
)

// Outputter is implemented by command results that support the
// shared JSON/YAML/text output switch.
type Outputter interface {
	ToJSON() interface{}
	ToText(w io.Writer)
}

// OutputToFile writes o in the requested format to outputFile, or to
// stdout if outputFile is empty.
func OutputToFile(o Outputter, format, outputFile string) {
	var data []byte
	var err error

	switch util.NormalizeFormat(format) {
	case "json":
		data, err = json.MarshalIndent(o.ToJSON(), "", "  ")
		if err != nil {
			log.Fatalf("langstat: marshal JSON: %v", err)
		}
	case "yaml":
		data, err = yaml.Marshal(o.ToJSON())
		if err != nil {
			log.Fatalf("langstat: marshal YAML: %v", err)
		}
	default: // text
		if outputFile == "" {
			o.ToText(os.Stdout)
			return
		}
		var buf bytes.Buffer
		o.ToText(&buf)
		data = buf.Bytes()
	}

	if outputFile == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		log.Fatalf("langstat: write output file: %v", err)
	}
	fmt.Fprintf(os.Stderr, "results written to %s\n", outputFile)
}

// setupOutputFlags registers the shared --format/--output flags and
// validates --format once parsing completes.
func setupOutputFlags(cmd *cobra.Command, formatPtr, outputPtr *string) {
	cmd.Flags().StringVarP(formatPtr, "format", "f", "text", "Output format: text, json, or yaml")
	cmd.Flags().StringVarP(outputPtr, "output", "o", "", "Output file path (default: stdout)")
	existingPreRunE := cmd.PreRunE
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if existingPreRunE != nil {
			if err := existingPreRunE(cmd, args); err != nil {
				return err
			}
		}
		*formatPtr = util.NormalizeFormat(*formatPtr)
		return util.ValidateOutputFormat(*formatPtr)
	}
}
