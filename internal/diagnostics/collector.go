package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrorFound = errors.New("error found")

type Diag struct {
	Message string
}

type Collector struct {
	Diags []Diag

	out io.Writer
}

func New() *Collector {
	return &Collector{out: os.Stderr}
}

// NewWithOutput reports diagnostics to w instead of stderr. Tests use it
// to capture messages.
func NewWithOutput(w io.Writer) *Collector {
	return &Collector{out: w}
}

func (collector *Collector) ReportAndSave(diag Diag) {
	fmt.Fprintln(collector.out, diag.Message)
	collector.Diags = append(collector.Diags, diag)
}
