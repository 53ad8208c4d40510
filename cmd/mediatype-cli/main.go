// Command mediatype-cli inspects media-type strings: it parses each
// argument (or each line on stdin) and prints the essence components,
// the parameters and any grammar violation with its byte offset.
//
//	$ mediatype-cli 'text/plain; charset=utf-8'
//	$ echo 'application/ld+json' | mediatype-cli
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pior/mediatype"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		exitCode := 0
		for _, arg := range args {
			if !inspect(arg) {
				exitCode = 1
			}
		}
		os.Exit(exitCode)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		inspect(line)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "reading stdin: %v\n", err)
		os.Exit(1)
	}
}

func inspect(input string) bool {
	mt, err := mediatype.Parse(input)
	if err != nil {
		printError(input, err)
		return false
	}

	fmt.Printf("%s\n", input)
	fmt.Printf("  type:    %s\n", mt.Type())
	fmt.Printf("  subtype: %s\n", mt.Subtype())
	if suffix, ok := mt.Suffix(); ok {
		fmt.Printf("  suffix:  %s\n", suffix)
	}
	fmt.Printf("  hash:    %016x\n", mt.Hash64())

	params := mt.Params()
	for params.Next() {
		p := params.Param()
		fmt.Printf("  param:   %s = %q\n", p.Name, p.Value)
	}
	if err := params.Err(); err != nil {
		printError(input, err)
		return false
	}
	return true
}

// printError points at the offending byte when the error carries an offset.
func printError(input string, err error) {
	fmt.Fprintf(os.Stderr, "%s\n", input)
	var parseErr *mediatype.ParseError
	if errors.As(err, &parseErr) {
		fmt.Fprintf(os.Stderr, "%s^\n", strings.Repeat(" ", parseErr.Offset))
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
