package syscalls

import (
	"fmt"

	"github.com/mstrace/mstrace/structs"
	"github.com/mstrace/mstrace/symbols"
)

// Scalar decoder constructors. With --no-abbrev active the flag, enum and
// octal-mode scalars fall back to the raw hex rendering; Dirfd falls back
// to the plain decimal descriptor.

// Int renders a signed integer.
func Int() Decoder {
	return Decoder{Kind: Scalar, Render: func(_ *Context, v uint64) (string, error) {
		return fmt.Sprintf("%d", int64(v)), nil
	}}
}

// Uint renders an unsigned integer.
func Uint() Decoder {
	return Decoder{Kind: Scalar, Render: func(_ *Context, v uint64) (string, error) {
		return fmt.Sprintf("%d", v), nil
	}}
}

// Fd renders a file descriptor.
func Fd() Decoder {
	return Decoder{Kind: Scalar, Render: func(_ *Context, v uint64) (string, error) {
		return fmt.Sprintf("%d", int64(v)), nil
	}}
}

// Dirfd renders a *at() directory descriptor, naming AT_FDCWD.
func Dirfd() Decoder {
	return Decoder{Kind: Scalar, Render: func(ctx *Context, v uint64) (string, error) {
		if ctx.NoAbbrev {
			return fmt.Sprintf("%d", int64(v)), nil
		}

		return symbols.Dirfd(int64(int32(v))), nil
	}}
}

// Ptr renders a raw pointer.
func Ptr() Decoder {
	return Decoder{Kind: Scalar, Render: func(_ *Context, v uint64) (string, error) {
		return structs.Ptr(v), nil
	}}
}

// Flags renders a flag bit-set through fs.
func Flags(fs symbols.FlagSet) Decoder {
	return Decoder{Kind: Scalar, Render: func(ctx *Context, v uint64) (string, error) {
		if ctx.NoAbbrev {
			return fmt.Sprintf("%#x", v), nil
		}

		return fs.Decode(v), nil
	}}
}

// Const renders an enum constant through e.
func Const(e symbols.Enum) Decoder {
	return Decoder{Kind: Scalar, Render: func(ctx *Context, v uint64) (string, error) {
		if ctx.NoAbbrev {
			return fmt.Sprintf("%#x", v), nil
		}

		return e.Decode(int64(v)), nil
	}}
}

// Octal renders a permission mode in octal.
func Octal() Decoder {
	return Decoder{Kind: Scalar, Render: func(ctx *Context, v uint64) (string, error) {
		if ctx.NoAbbrev {
			return fmt.Sprintf("%#x", v), nil
		}

		return symbols.Octal(v), nil
	}}
}

// Hex renders an opaque request word (ioctl commands, kdebug codes).
func Hex() Decoder {
	return Decoder{Kind: Scalar, Render: func(_ *Context, v uint64) (string, error) {
		return fmt.Sprintf("%#x", v), nil
	}}
}

// Sig renders a signal number symbolically.
func Sig() Decoder {
	return Const(symbols.Signals)
}

// ModeIfCreat renders open's mode argument, which only exists when O_CREAT
// is in the flags argument; otherwise the argument is omitted.
func ModeIfCreat(flagsArg int) Decoder {
	return Decoder{Kind: Composite, Render: func(ctx *Context, v uint64) (string, error) {
		if ctx.Args[flagsArg]&symbols.OCreat == 0 {
			return "", nil
		}

		return symbols.Octal(v), nil
	}}
}

// Memory decoder constructors. The register value is the address chased.

// Path materializes a NUL-terminated path before the call.
func Path() Decoder {
	return Decoder{Kind: PreCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		if v == 0 {
			return "NULL", nil
		}

		return ctx.Structs.CString(v)
	}}
}

// InBuffer materializes a write-style buffer before the call; the length
// is in argument sizeArg.
func InBuffer(sizeArg int) Decoder {
	return Decoder{Kind: PreCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		return ctx.Structs.Buffer(v, int(int64(ctx.Args[sizeArg])))
	}}
}

// OutBuffer materializes a read-style buffer after return. The rendered
// length is the return value when it is a byte count, bounded by the
// declared size argument.
func OutBuffer(sizeArg int) Decoder {
	return Decoder{Kind: PostCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		n := ctx.Ret
		if n < 0 {
			return structs.Ptr(v), nil
		}

		if max := int64(ctx.Args[sizeArg]); n > max {
			n = max
		}

		return ctx.Structs.Buffer(v, int(n))
	}}
}

// StatOut renders a struct stat out-parameter.
func StatOut() Decoder {
	return Decoder{Kind: PostCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		return ctx.Structs.Stat(v)
	}}
}

// StatfsOut renders a struct statfs out-parameter.
func StatfsOut() Decoder {
	return Decoder{Kind: PostCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		return ctx.Structs.Statfs(v)
	}}
}

// SockaddrIn renders a caller-supplied socket address (connect, bind,
// sendto).
func SockaddrIn() Decoder {
	return Decoder{Kind: PreCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		if v == 0 {
			return "NULL", nil
		}

		return ctx.Structs.Sockaddr(v)
	}}
}

// SockaddrOut renders a kernel-filled socket address (accept, getpeername,
// recvfrom).
func SockaddrOut() Decoder {
	return Decoder{Kind: PostCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		if v == 0 {
			return "NULL", nil
		}

		return ctx.Structs.Sockaddr(v)
	}}
}

// IovecIn renders a writev-style vector before the call; the count is in
// argument countArg.
func IovecIn(countArg int) Decoder {
	return Decoder{Kind: PreCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		return ctx.Structs.IovecArray(v, int(int64(ctx.Args[countArg])))
	}}
}

// IovecOut renders a readv-style vector after return.
func IovecOut(countArg int) Decoder {
	return Decoder{Kind: PostCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		return ctx.Structs.IovecArray(v, int(int64(ctx.Args[countArg])))
	}}
}

// MsghdrIn renders a sendmsg message header before the call.
func MsghdrIn() Decoder {
	return Decoder{Kind: PreCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		return ctx.Structs.Msghdr(v)
	}}
}

// MsghdrOut renders a recvmsg message header after return.
func MsghdrOut() Decoder {
	return Decoder{Kind: PostCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		return ctx.Structs.Msghdr(v)
	}}
}

// KeventIn renders a kevent changelist; the count is in argument countArg.
func KeventIn(countArg int) Decoder {
	return Decoder{Kind: PreCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		return ctx.Structs.KeventArray(v, int(int64(ctx.Args[countArg])))
	}}
}

// KeventOut renders a kevent eventlist after return; the count of valid
// records is the return value.
func KeventOut() Decoder {
	return Decoder{Kind: PostCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		if ctx.Ret <= 0 {
			return structs.Ptr(v), nil
		}

		return ctx.Structs.KeventArray(v, int(ctx.Ret))
	}}
}

// TimespecIn renders a caller-supplied struct timespec.
func TimespecIn() Decoder {
	return Decoder{Kind: PreCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		if v == 0 {
			return "NULL", nil
		}

		return ctx.Structs.Timespec(v)
	}}
}

// TimevalIn renders a caller-supplied struct timeval.
func TimevalIn() Decoder {
	return Decoder{Kind: PreCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		if v == 0 {
			return "NULL", nil
		}

		return ctx.Structs.Timeval(v)
	}}
}

// TimevalOut renders a kernel-filled struct timeval.
func TimevalOut() Decoder {
	return Decoder{Kind: PostCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		if v == 0 {
			return "NULL", nil
		}

		return ctx.Structs.Timeval(v)
	}}
}

// RusageOut renders a struct rusage out-parameter.
func RusageOut() Decoder {
	return Decoder{Kind: PostCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		if v == 0 {
			return "NULL", nil
		}

		return ctx.Structs.Rusage(v)
	}}
}

// SigactionIn renders the new-action argument of sigaction.
func SigactionIn() Decoder {
	return Decoder{Kind: PreCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		if v == 0 {
			return "NULL", nil
		}

		return ctx.Structs.Sigaction(v)
	}}
}

// SigactionOut renders the old-action out-parameter of sigaction.
func SigactionOut() Decoder {
	return Decoder{Kind: PostCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		if v == 0 {
			return "NULL", nil
		}

		return ctx.Structs.Sigaction(v)
	}}
}

// IntPtrOut renders an int out-parameter.
func IntPtrOut() Decoder {
	return Decoder{Kind: PostCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		if v == 0 {
			return "NULL", nil
		}

		return ctx.Structs.IntPtr(v)
	}}
}

// IntPtrIn renders an int the caller passed by pointer (sigprocmask's new
// mask).
func IntPtrIn() Decoder {
	return Decoder{Kind: PreCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		if v == 0 {
			return "NULL", nil
		}

		return ctx.Structs.IntPtr(v)
	}}
}

// IntPairOut renders pipe's two-int out-array.
func IntPairOut() Decoder {
	return Decoder{Kind: PostCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		if v == 0 {
			return "NULL", nil
		}

		return ctx.Structs.IntPair(v)
	}}
}

// StringArray materializes a NULL-terminated pointer array of C strings,
// the execve argv/envp shape. At most eight entries render before an
// ellipsis.
func StringArray() Decoder {
	const maxEntries = 8

	return Decoder{Kind: PreCallMem, Render: func(ctx *Context, v uint64) (string, error) {
		if v == 0 {
			return "NULL", nil
		}

		out := "["

		for i := 0; i < maxEntries; i++ {
			ptr, err := ctx.Mem.ReadU64(v + uint64(i*8))
			if err != nil {
				return structs.Ptr(v), nil
			}

			if ptr == 0 {
				return out + "]", nil
			}

			if i > 0 {
				out += ", "
			}

			s, err := ctx.Structs.CString(ptr)
			if err != nil {
				s = structs.Ptr(ptr)
			}

			out += s
		}

		return out + ", ...]", nil
	}}
}

// Return decoders.

// RetDefault renders the return value, decoding a negated errno when the
// error indicator is set.
func RetDefault(ctx *Context) string {
	if ctx.Errno {
		errno := ctx.Ret
		if errno < 0 {
			errno = -errno
		}

		return symbols.DecodeErrno(-errno)
	}

	return fmt.Sprintf("%d", ctx.Ret)
}

// RetPtr renders pointer-returning syscalls such as mmap.
func RetPtr(ctx *Context) string {
	if ctx.Errno {
		return RetDefault(ctx)
	}

	return structs.Ptr(uint64(ctx.Ret))
}

// RetFcntl renders fcntl returns, which depend on the command argument.
func RetFcntl(ctx *Context) string {
	if ctx.Errno {
		return RetDefault(ctx)
	}

	const (
		fGetfd = 1
		fGetfl = 3
	)

	if ctx.NoAbbrev {
		return fmt.Sprintf("%d", ctx.Ret)
	}

	switch int64(ctx.Args[1]) {
	case fGetfl:
		return fmt.Sprintf("%s (%#x)", symbols.OpenFlags.Decode(uint64(ctx.Ret)), ctx.Ret)
	case fGetfd:
		if ctx.Ret&1 != 0 {
			return "FD_CLOEXEC"
		}

		return fmt.Sprintf("%d", ctx.Ret)
	default:
		return fmt.Sprintf("%d", ctx.Ret)
	}
}
