// schemadump prints the syscall registry as a table: number, name,
// category and declared signature. Useful for checking which calls the
// tracer can decode symbolically.
package main

import (
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mstrace/mstrace/syscalls"
)

func main() {
	registry, err := syscalls.NewRegistry()
	if err != nil {
		log.Fatalf("failed to build registry: %v", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "name", "category", "signature"})

	filter := ""
	if len(os.Args) > 1 {
		filter = os.Args[1]
	}

	for _, s := range registry.All() {
		if filter != "" && s.Category.String() != filter {
			continue
		}

		t.AppendRow(table.Row{s.Number, s.Name, s.Category.String(), s.Signature()})
	}

	t.Render()
}
