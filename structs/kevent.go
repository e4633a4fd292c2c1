package structs

import (
	"fmt"
	"strings"

	"github.com/mstrace/mstrace/symbols"
)

// struct kevent: ident, filter i16, flags u16, fflags u32, data i64,
// udata ptr. 32 bytes.
const keventSize = 32

// KeventArray renders count kevent records, the kevent changelist/eventlist
// argument form.
func (r *Renderer) KeventArray(addr uint64, count int) (string, error) {
	if count <= 0 || count > maxKevents {
		return Ptr(addr), nil
	}

	elems, truncated, err := r.mem.ReadArray(addr, keventSize, count)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(elems))

	for _, e := range elems {
		filter := int64(i16(e[8:10]))

		var f fields

		f.addInt("ident", i64(e[0:8]))
		f.add("filter", symbols.EvFilters.Decode(filter))
		f.add("flags", symbols.EvFlags.Decode(uint64(u16(e[10:12]))))

		if fflags := u32(e[12:16]); fflags != 0 {
			f.add("fflags", keventFflags(filter, uint64(fflags)))
		}

		if data := i64(e[16:24]); data != 0 {
			f.addInt("data", data)
		}

		if udata := u64(e[24:32]); udata != 0 {
			f.add("udata", Ptr(udata))
		}

		parts = append(parts, f.String())
	}

	out := "[" + strings.Join(parts, ", ") + "]"
	if truncated {
		out += "..."
	}

	return out, nil
}

// keventFflags picks the NOTE_* namespace matching the event's filter.
func keventFflags(filter int64, fflags uint64) string {
	const (
		evfiltVnode = -4
		evfiltProc  = -5
	)

	switch filter {
	case evfiltVnode:
		return symbols.NoteVnodeFlags.Decode(fflags)
	case evfiltProc:
		return symbols.NoteProcFlags.Decode(fflags)
	default:
		return fmt.Sprintf("%#x", fflags)
	}
}
