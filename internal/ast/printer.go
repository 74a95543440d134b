package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes an indented, one-node-per-line dump of the tree to w. It
// never evaluates expressions and never touches interpreter state, so it
// is safe to print a tree and execute it afterwards.
func Print(w io.Writer, node Node) {
	printNode(w, node, 0)
}

func printNode(w io.Writer, node Node, indent int) {
	indentation := strings.Repeat("  ", indent)

	switch node := node.(type) {
	case *Program:
		fmt.Fprintf(w, "%sProgram\n", indentation)
		for _, statement := range node.Body {
			printNode(w, statement, indent+1)
		}
	case *AssignStmt:
		fmt.Fprintf(w, "%sAssignment: %s\n", indentation, node.Name.Name())
		printNode(w, node.Value, indent+1)
	case *OutputStmt:
		fmt.Fprintf(w, "%sOutput\n", indentation)
		printNode(w, node.Value, indent+1)
	case *CondStmt:
		fmt.Fprintf(w, "%sIf\n", indentation)
		printNode(w, node.Cond, indent+1)
		fmt.Fprintf(w, "%s  True Branch\n", indentation)
		for _, statement := range node.Then {
			printNode(w, statement, indent+2)
		}
		fmt.Fprintf(w, "%s  False Branch\n", indentation)
		for _, statement := range node.Else {
			printNode(w, statement, indent+2)
		}
	case *LoopStmt:
		fmt.Fprintf(w, "%sLoop\n", indentation)
		printNode(w, node.Cond, indent+1)
		for _, statement := range node.Body {
			printNode(w, statement, indent+1)
		}
	case *BinaryExpr:
		fmt.Fprintf(w, "%sBinOp: %s\n", indentation, node.Op)
		printNode(w, node.Left, indent+1)
		printNode(w, node.Right, indent+1)
	case *NumberExpr:
		fmt.Fprintf(w, "%sNumber: %d\n", indentation, node.Value)
	case *StringExpr:
		fmt.Fprintf(w, "%sString: %s\n", indentation, node.Value)
	case *IdExpr:
		fmt.Fprintf(w, "%sIdentifier: %s\n", indentation, node.Name.Name())
	default:
		fmt.Fprintf(w, "%sUnknown node: %s\n", indentation, node)
	}
}
