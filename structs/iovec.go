package structs

import (
	"fmt"
	"strings"

	"github.com/mstrace/mstrace/symbols"
)

// struct iovec: base pointer, length. 16 bytes on both ABIs.
const iovecSize = 16

// IovecArray renders count iovec records with their buffer contents, the
// readv/writev argument form: [{iov_base="...", iov_len=N}, ...].
func (r *Renderer) IovecArray(addr uint64, count int) (string, error) {
	if count <= 0 || count > maxIovecs {
		return Ptr(addr), nil
	}

	elems, truncated, err := r.mem.ReadArray(addr, iovecSize, count)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(elems))

	for _, e := range elems {
		base := u64(e[0:8])
		length := i64(e[8:16])

		buf := "?"
		if base != 0 && length > 0 {
			if rendered, err := r.Buffer(base, int(length)); err == nil {
				buf = rendered
			}
		}

		parts = append(parts, fmt.Sprintf("{iov_base=%s, iov_len=%d}", buf, length))
	}

	out := "[" + strings.Join(parts, ", ") + "]"
	if truncated {
		out += "..."
	}

	return out, nil
}

// struct msghdr layout on Darwin: name ptr, namelen u32 (+pad), iov ptr,
// iovlen i32 (+pad), control ptr, controllen u32 (+pad), flags i32.
const msghdrSize = 48

// Msghdr renders a struct msghdr, recursing into its socket address, its
// iovec array, and noting its control buffer when non-zero.
func (r *Renderer) Msghdr(addr uint64) (string, error) {
	raw, truncated, err := r.mem.ReadBytes(addr, msghdrSize)
	if err != nil {
		return "", err
	}

	if truncated {
		return Ptr(addr), nil
	}

	var f fields

	name := u64(raw[0:8])
	namelen := u32(raw[8:12])

	if name != 0 {
		rendered, err := r.Sockaddr(name)
		if err != nil {
			rendered = Ptr(name)
		}

		f.add("msg_name", rendered)
		f.addInt("msg_namelen", int64(namelen))
	} else {
		f.add("msg_name", "NULL")
	}

	iov := u64(raw[16:24])
	iovlen := i32(raw[24:28])

	if iov != 0 && iovlen > 0 {
		rendered, err := r.IovecArray(iov, int(iovlen))
		if err != nil {
			rendered = Ptr(iov)
		}

		f.add("msg_iov", rendered)
	} else {
		f.add("msg_iov", "NULL")
	}

	f.addInt("msg_iovlen", int64(iovlen))

	control := u64(raw[32:40])
	controllen := u32(raw[40:44])

	if control != 0 && controllen > 0 {
		f.add("msg_control", Ptr(control))
		f.addInt("msg_controllen", int64(controllen))
	}

	if flags := u32(raw[44:48]); flags != 0 {
		f.add("msg_flags", symbols.MsgFlags.Decode(uint64(flags)))
	}

	return f.String(), nil
}
