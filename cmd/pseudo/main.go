package main

import (
	"log"
	"os"

	"github.com/pseudolang/pseudo/internal/ast"
	"github.com/pseudolang/pseudo/internal/diagnostics"
	"github.com/pseudolang/pseudo/internal/interpreter"
	"github.com/pseudolang/pseudo/internal/lexer"
	"github.com/pseudolang/pseudo/internal/parser"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pseudo: ")

	args, err := cli()
	if err != nil {
		os.Exit(1)
	}

	collector := diagnostics.New()

	lex, err := lexer.NewFromFilePath(args.Path, collector)
	if err != nil {
		log.Fatal(err)
	}

	p := parser.New(lex, collector)
	program, err := p.Parse()
	if err != nil {
		// diagnostics were already written to stderr
		os.Exit(1)
	}

	if args.PrintAst {
		ast.Print(os.Stdout, program)
		return
	}

	interp := interpreter.New()
	err = interp.Run(program)
	if err != nil {
		log.Fatal(err)
	}
}
