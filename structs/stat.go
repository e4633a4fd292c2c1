package structs

import (
	"fmt"

	"github.com/mstrace/mstrace/symbols"
)

// Darwin struct stat (sys/stat.h, the 64-bit-inode layout both current
// ABIs use). 144 bytes.
const statSize = 144

// Stat renders a struct stat. Timestamps render as seconds.nanoseconds;
// st_mode gets its file-type symbol and octal permissions.
func (r *Renderer) Stat(addr uint64) (string, error) {
	raw, truncated, err := r.mem.ReadBytes(addr, statSize)
	if err != nil {
		return "", err
	}

	if truncated {
		return Ptr(addr), nil
	}

	var f fields

	f.add("st_dev", symbols.Dev(uint64(u32(raw[0:4]))))
	f.add("st_mode", symbols.FileMode(uint64(u16(raw[4:6]))))
	f.addInt("st_nlink", int64(u16(raw[6:8])))
	f.addInt("st_ino", i64(raw[8:16]))
	f.addInt("st_uid", int64(u32(raw[16:20])))
	f.addInt("st_gid", int64(u32(raw[20:24])))

	if rdev := u32(raw[24:28]); rdev != 0 {
		f.add("st_rdev", symbols.Dev(uint64(rdev)))
	}

	f.add("st_atime", timespecValue(raw[32:48]))
	f.add("st_mtime", timespecValue(raw[48:64]))
	f.add("st_ctime", timespecValue(raw[64:80]))
	f.add("st_birthtime", timespecValue(raw[80:96]))
	f.addInt("st_size", i64(raw[96:104]))
	f.addInt("st_blocks", i64(raw[104:112]))
	f.addInt("st_blksize", int64(i32(raw[112:116])))

	if flags := u32(raw[116:120]); flags != 0 {
		f.add("st_flags", symbols.ChflagsFlags.Decode(uint64(flags)))
	}

	return f.String(), nil
}

// timespecValue renders a 16-byte timespec as seconds.nanoseconds.
func timespecValue(b []byte) string {
	return fmt.Sprintf("%d.%09d", i64(b[0:8]), i64(b[8:16]))
}

// Timespec renders a standalone struct timespec.
func (r *Renderer) Timespec(addr uint64) (string, error) {
	raw, truncated, err := r.mem.ReadBytes(addr, 16)
	if err != nil {
		return "", err
	}

	if truncated {
		return Ptr(addr), nil
	}

	var f fields

	f.addInt("tv_sec", i64(raw[0:8]))
	f.addInt("tv_nsec", i64(raw[8:16]))

	return f.String(), nil
}

// Timeval renders a struct timeval (microsecond resolution; tv_usec is a
// 32-bit field on Darwin, padded to 8).
func (r *Renderer) Timeval(addr uint64) (string, error) {
	raw, truncated, err := r.mem.ReadBytes(addr, 16)
	if err != nil {
		return "", err
	}

	if truncated {
		return Ptr(addr), nil
	}

	var f fields

	f.addInt("tv_sec", i64(raw[0:8]))
	f.addInt("tv_usec", int64(i32(raw[8:12])))

	return f.String(), nil
}

// Darwin struct statfs64 prefix: the fixed numeric fields plus the
// f_fstypename array and the head of f_mntonname.
const statfsReadSize = 88 + 64

// Statfs renders the interesting prefix of a struct statfs.
func (r *Renderer) Statfs(addr uint64) (string, error) {
	raw, truncated, err := r.mem.ReadBytes(addr, statfsReadSize)
	if err != nil {
		return "", err
	}

	if truncated {
		return Ptr(addr), nil
	}

	var f fields

	f.addInt("f_bsize", int64(u32(raw[0:4])))
	f.addInt("f_blocks", i64(raw[8:16]))
	f.addInt("f_bfree", i64(raw[16:24]))
	f.addInt("f_bavail", i64(raw[24:32]))
	f.addInt("f_files", i64(raw[32:40]))
	f.addInt("f_ffree", i64(raw[40:48]))
	f.add("f_fstypename", `"`+cstr(raw[72:88])+`"`)
	f.add("f_mntonname", `"`+cstr(raw[88:88+64])+`"`)

	return f.String(), nil
}

// Rusage renders the head of a struct rusage: the two timevals and the
// maximum resident set size, which is what strace shows by default.
func (r *Renderer) Rusage(addr uint64) (string, error) {
	raw, truncated, err := r.mem.ReadBytes(addr, 40)
	if err != nil {
		return "", err
	}

	if truncated {
		return Ptr(addr), nil
	}

	var f fields

	f.add("ru_utime", fmt.Sprintf("{tv_sec=%d, tv_usec=%d}", i64(raw[0:8]), i32(raw[8:12])))
	f.add("ru_stime", fmt.Sprintf("{tv_sec=%d, tv_usec=%d}", i64(raw[16:24]), i32(raw[24:28])))
	f.addInt("ru_maxrss", i64(raw[32:40]))

	return f.String(), nil
}

// Sigaction renders a Darwin struct sigaction: handler, mask and flags.
func (r *Renderer) Sigaction(addr uint64) (string, error) {
	raw, truncated, err := r.mem.ReadBytes(addr, 16)
	if err != nil {
		return "", err
	}

	if truncated {
		return Ptr(addr), nil
	}

	var f fields

	switch handler := u64(raw[0:8]); handler {
	case 0:
		f.add("sa_handler", "SIG_DFL")
	case 1:
		f.add("sa_handler", "SIG_IGN")
	default:
		f.add("sa_handler", Ptr(handler))
	}

	if mask := u32(raw[8:12]); mask != 0 {
		f.add("sa_mask", fmt.Sprintf("%#x", mask))
	}

	f.add("sa_flags", symbols.SaFlags.Decode(uint64(u32(raw[12:16]))))

	return f.String(), nil
}

// IntPtr renders the int an out-parameter points at, e.g. the pipe fd pair
// element or posix_spawn's pid. Rendered in brackets to mark indirection.
func (r *Renderer) IntPtr(addr uint64) (string, error) {
	v, err := r.mem.ReadU32(addr)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("[%d]", int32(v)), nil
}

// IntPair renders two consecutive ints, the shape of pipe's fd out-array.
func (r *Renderer) IntPair(addr uint64) (string, error) {
	raw, truncated, err := r.mem.ReadBytes(addr, 8)
	if err != nil {
		return "", err
	}

	if truncated {
		return Ptr(addr), nil
	}

	return fmt.Sprintf("[%d, %d]", i32(raw[0:4]), i32(raw[4:8])), nil
}
