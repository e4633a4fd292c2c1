package syscalls

import (
	"errors"
	"fmt"

	"github.com/mstrace/mstrace/memio"
	"github.com/mstrace/mstrace/structs"
)

// Arg is one rendered argument. Omitted arguments (a mode with no O_CREAT)
// stay in the slice to keep positions aligned with the schema but are
// dropped by the formatters.
type Arg struct {
	Name    string
	Value   string
	Omitted bool
}

// unreadable renders an argument whose memory could not be inspected. The
// pointer is preserved so the line stays greppable.
func unreadable(addr uint64) string {
	return structs.Ptr(addr) + " <unreadable>"
}

// RenderEntry renders every argument that is meaningful before the kernel
// runs: scalars, composites over the captured registers, and pre-call
// memory materializations. Post-call arguments get their pointer as a
// placeholder.
func (s *Schema) RenderEntry(ctx *Context) []Arg {
	args := make([]Arg, len(s.Params))

	for i, p := range s.Params {
		value := ctx.Args[i]
		args[i].Name = p.Name

		switch p.Decoder.Kind {
		case Scalar, Composite:
			rendered, err := p.Decoder.Render(ctx, value)
			if err != nil {
				rendered = fmt.Sprintf("%#x", value)
			}

			if rendered == "" {
				args[i].Omitted = true
				continue
			}

			args[i].Value = rendered

		case PreCallMem:
			rendered, err := p.Decoder.Render(ctx, value)
			if err != nil {
				if errors.Is(err, memio.ErrUnreadable) {
					rendered = unreadable(value)
				} else {
					rendered = structs.Ptr(value)
				}
			}

			args[i].Value = rendered

		case PostCallMem:
			// Filled in at exit, once the kernel has written through it.
			args[i].Value = structs.Ptr(value)
		}
	}

	return args
}

// RenderExit re-renders the post-call arguments now that the kernel has
// filled them. Failed calls keep their entry placeholders: the kernel
// wrote nothing.
func (s *Schema) RenderExit(ctx *Context, args []Arg) {
	if ctx.Errno {
		return
	}

	for i, p := range s.Params {
		if i >= len(args) || p.Decoder.Kind != PostCallMem {
			continue
		}

		rendered, err := p.Decoder.Render(ctx, ctx.Args[i])
		if err != nil {
			if errors.Is(err, memio.ErrUnreadable) {
				args[i].Value = unreadable(ctx.Args[i])
			}

			continue
		}

		args[i].Value = rendered
	}
}

// RawArgs renders the six captured registers as hex, the degraded form for
// syscall numbers the registry does not know.
func RawArgs(values [6]uint64) []Arg {
	args := make([]Arg, len(values))

	for i, v := range values {
		args[i] = Arg{
			Name:  fmt.Sprintf("arg%d", i),
			Value: fmt.Sprintf("%#x", v),
		}
	}

	return args
}

// RawName names an unknown syscall number.
func RawName(num uint64) string {
	return fmt.Sprintf("syscall_%d", num)
}
