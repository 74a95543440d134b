package ast

type Node interface {
	String() string
}

// Program is the root of every parsed source file.
type Program struct {
	Body []Stmt
}

func (program Program) String() string {
	return "Program"
}
