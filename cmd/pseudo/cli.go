package main

import (
	"flag"
	"fmt"
	"os"
)

const usage = `usage: pseudo [-ast] <file>

Batch interpreter for pseudocode programs.

  -ast	print the syntax tree and exit instead of executing
`

type CliResult struct {
	PrintAst bool
	Path     string
}

func cli() (CliResult, error) {
	result := CliResult{}

	flags := flag.NewFlagSet("pseudo", flag.ExitOnError)
	flags.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	printAst := flags.Bool("ast", false, "print the syntax tree and exit")
	flags.Parse(os.Args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		return result, fmt.Errorf("expected exactly one source file")
	}

	result.PrintAst = *printAst
	result.Path = flags.Arg(0)
	return result, nil
}
