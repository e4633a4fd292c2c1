// Package syscalls models BSD syscall signatures — parameter descriptors,
// decoders and categories — and indexes them in a registry built once per
// tracing session. The schemas are data the tracer ingests; the capture
// machinery never special-cases a syscall by name.
package syscalls

import (
	"fmt"

	"github.com/mstrace/mstrace/memio"
	"github.com/mstrace/mstrace/structs"
)

// Direction says when a pointer argument's referent is meaningful.
type Direction int

const (
	// In parameters are read by the kernel; their memory is materialized
	// before the call.
	In Direction = iota

	// Out parameters are filled by the kernel; materialized after return.
	Out

	// InOut parameters are both.
	InOut
)

// DecoderKind is the closed capability set for argument decoders. Dispatch
// over it is exhaustive; there is no other way to render an argument.
type DecoderKind int

const (
	// Scalar renders from the captured register value alone.
	Scalar DecoderKind = iota

	// PreCallMem renders from target memory before the kernel runs.
	PreCallMem

	// PostCallMem renders from target memory after the kernel returned.
	PostCallMem

	// Composite renders from the register value plus other captured
	// arguments or the return value (buffer sizes, vector counts).
	Composite
)

// Context carries everything a decoder may consult. Decoders never mutate
// the target; memory access is strictly observational.
type Context struct {
	Mem     *memio.Reader
	Structs *structs.Renderer

	// Args are the six captured argument registers of the current call.
	Args [6]uint64

	// Ret and Errno are only meaningful at exit time.
	Ret   int64
	Errno bool

	AtExit   bool
	NoAbbrev bool
	Limit    int
}

// RenderFunc renders one argument value. Memory-capability decoders
// receive the register value as the address to chase.
type RenderFunc func(ctx *Context, value uint64) (string, error)

// Decoder tags a render function with its capability.
type Decoder struct {
	Kind   DecoderKind
	Render RenderFunc
}

// Param describes one syscall parameter.
type Param struct {
	Name    string
	Type    string
	Dir     Direction
	Decoder Decoder
}

// RetRenderFunc renders the return value; the default is the errno
// decoder.
type RetRenderFunc func(ctx *Context) string

// Schema is one syscall's complete signature. Schemas are immutable once
// installed in a Registry.
type Schema struct {
	Number   uint64
	Name     string
	Category Category
	Params   []Param
	Ret      RetRenderFunc
}

// Signature renders the declared parameter list for diagnostics and the
// schemadump tool.
func (s *Schema) Signature() string {
	out := s.Name + "("

	for i, p := range s.Params {
		if i > 0 {
			out += ", "
		}

		out += p.Type + " " + p.Name
	}

	return out + ")"
}

// Def builds a schema with the default errno return decoder.
func Def(number uint64, name string, params ...Param) *Schema {
	return &Schema{Number: number, Name: name, Params: params, Ret: RetDefault}
}

// DefRet builds a schema with a custom return decoder.
func DefRet(number uint64, name string, ret RetRenderFunc, params ...Param) *Schema {
	return &Schema{Number: number, Name: name, Params: params, Ret: ret}
}

// P builds a parameter descriptor.
func P(name, typ string, dir Direction, dec Decoder) Param {
	return Param{Name: name, Type: typ, Dir: dir, Decoder: dec}
}

func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	case InOut:
		return "inout"
	default:
		return fmt.Sprintf("direction_%d", int(d))
	}
}
