package argparse

import (
	"bufio"
	"io"
)

// PrintHelp writes the usage text to the IO manager's standard output.
func (p *Parser) PrintHelp() {
	p.WriteHelp(p.io.Out())
}

// WriteHelp renders usage to w:
//
//	Usage: prog [OPTIONS]
//
//	description
//
//	  -n, --numbers VALUE1 VALUE2 ...
//	    List of numbers [required]
//
// Write errors are ignored.
func (p *Parser) WriteHelp(w io.Writer) {
	bw := bufio.NewWriter(w)
	bw.WriteString("Usage: ")
	bw.WriteString(p.ProgramName())
	bw.WriteString(" [OPTIONS]\n\n")
	if p.description != "" {
		bw.WriteString(p.description)
		bw.WriteString("\n\n")
	}
	for _, a := range p.args {
		bw.WriteString("  ")
		bw.WriteString(p.io.Bold(helpNames(a)))
		switch {
		case a.IsList():
			bw.WriteString(p.io.Faint(" VALUE1 VALUE2 ..."))
		case a.Type != ArgTypeBool:
			bw.WriteString(p.io.Faint(" VALUE"))
		}
		bw.WriteString("\n    ")
		bw.WriteString(a.Help)
		if a.Required {
			bw.WriteString(" [required]")
		}
		bw.WriteByte('\n')
	}
	_ = bw.Flush()
}

func helpNames(a *Argument) string {
	switch {
	case a.Short != "" && a.Long != "":
		return a.Short + ", " + a.Long
	case a.Short != "":
		return a.Short
	default:
		return a.Long
	}
}
