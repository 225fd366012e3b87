package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/aldas/go-ais-decoder"
)

func main() {
	input := pflag.StringP("input", "i", "-", "path to a file of !AIVDM/!AIVDO sentences, '-' for stdin")
	pretty := pflag.BoolP("pretty", "p", false, "pretty-print JSON output")
	pflag.Parse()

	var r io.Reader = os.Stdin
	if input != nil && *input != "-" && *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("# failed to open input: %v\n", err)
		}
		defer f.Close()
		r = f
	}

	enc := json.NewEncoder(os.Stdout)
	if pretty != nil && *pretty {
		enc.SetIndent("", "  ")
	}

	msgCount := 0
	errCount := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		payload, _, err := ais.ExtractPayload(line)
		if err != nil {
			errCount++
			log.Printf("# skipping line, %v\n", err)
			continue
		}
		msgCount++
		if err := enc.Encode(ais.Decode(payload)); err != nil {
			log.Printf("# failed to encode decoded message: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("# error reading input: %v\n", err)
	}
	fmt.Fprintf(os.Stderr, "# decoded %d messages, skipped %d lines\n", msgCount, errCount)
}
