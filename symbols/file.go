package symbols

import "fmt"

// File-related Darwin constants. Values are from sys/fcntl.h, sys/stat.h and
// friends; they differ from the Linux values with the same names.

// OpenFlags decodes the O_* bit-set for open/openat. O_RDONLY is the zero
// value of the access-mode bits, so a plain read open renders as O_RDONLY.
var OpenFlags = FlagSet{
	ZeroName: "O_RDONLY",
	Flags: []Flag{
		{0x0001, "O_WRONLY"},
		{0x0002, "O_RDWR"},
		{0x0004, "O_NONBLOCK"},
		{0x0008, "O_APPEND"},
		{0x0010, "O_SHLOCK"},
		{0x0020, "O_EXLOCK"},
		{0x0040, "O_ASYNC"},
		{0x0080, "O_SYNC"},
		{0x0100, "O_NOFOLLOW"},
		{0x0200, "O_CREAT"},
		{0x0400, "O_TRUNC"},
		{0x0800, "O_EXCL"},
		{0x00008000, "O_EVTONLY"},
		{0x00020000, "O_NOCTTY"},
		{0x00100000, "O_DIRECTORY"},
		{0x00200000, "O_SYMLINK"},
		{0x00400000, "O_DSYNC"},
		{0x01000000, "O_CLOEXEC"},
		{0x20000000, "O_NOFOLLOW_ANY"},
		{0x40000000, "O_EXEC"},
	},
}

// OCreat is needed by the open/openat schemas: the mode argument only exists
// when O_CREAT is set.
const OCreat = 0x0200

// AtFdcwd is the dirfd sentinel for the *at() family.
const AtFdcwd = -2

// AtFlags decodes AT_* flags for the *at() family.
var AtFlags = FlagSet{
	Flags: []Flag{
		{0x0010, "AT_EACCESS"},
		{0x0020, "AT_SYMLINK_NOFOLLOW"},
		{0x0040, "AT_SYMLINK_FOLLOW"},
		{0x0080, "AT_REMOVEDIR"},
	},
}

// AccessModes decodes the mode argument of access/faccessat. F_OK is the
// zero value.
var AccessModes = FlagSet{
	ZeroName: "F_OK",
	Flags: []Flag{
		{1, "X_OK"},
		{2, "W_OK"},
		{4, "R_OK"},
	},
}

// SeekWhence decodes the whence argument of lseek.
var SeekWhence = Enum{
	Prefix: "SEEK",
	Values: map[int64]string{
		0: "SEEK_SET",
		1: "SEEK_CUR",
		2: "SEEK_END",
		3: "SEEK_HOLE",
		4: "SEEK_DATA",
	},
}

// FcntlCmds decodes the fcntl command argument.
var FcntlCmds = Enum{
	Prefix: "F",
	Values: map[int64]string{
		0:   "F_DUPFD",
		1:   "F_GETFD",
		2:   "F_SETFD",
		3:   "F_GETFL",
		4:   "F_SETFL",
		7:   "F_GETLK",
		8:   "F_SETLK",
		9:   "F_SETLKW",
		42:  "F_PREALLOCATE",
		44:  "F_RDADVISE",
		45:  "F_RDAHEAD",
		48:  "F_NOCACHE",
		49:  "F_LOG2PHYS",
		50:  "F_GETPATH",
		51:  "F_FULLFSYNC",
		55:  "F_GLOBAL_NOCACHE",
		62:  "F_NODIRECT",
		65:  "F_LOG2PHYS_EXT",
		67:  "F_DUPFD_CLOEXEC",
		85:  "F_BARRIERFSYNC",
		90:  "F_OFD_SETLK",
		91:  "F_OFD_SETLKW",
		92:  "F_OFD_GETLK",
		102: "F_GETPATH_NOFIRMLINK",
	},
}

// FdFlags decodes F_GETFD/F_SETFD values.
var FdFlags = FlagSet{
	Flags: []Flag{
		{1, "FD_CLOEXEC"},
	},
}

// FlockOps decodes the flock operation bit-set.
var FlockOps = FlagSet{
	Flags: []Flag{
		{1, "LOCK_SH"},
		{2, "LOCK_EX"},
		{4, "LOCK_NB"},
		{8, "LOCK_UN"},
	},
}

// PollEvents decodes pollfd event bit-sets.
var PollEvents = FlagSet{
	Flags: []Flag{
		{0x0001, "POLLIN"},
		{0x0002, "POLLPRI"},
		{0x0004, "POLLOUT"},
		{0x0008, "POLLERR"},
		{0x0010, "POLLHUP"},
		{0x0020, "POLLNVAL"},
		{0x0040, "POLLRDNORM"},
		{0x0080, "POLLRDBAND"},
		{0x0100, "POLLWRBAND"},
	},
}

// XattrFlags decodes the options argument of the *xattr family.
var XattrFlags = FlagSet{
	Flags: []Flag{
		{0x0001, "XATTR_NOFOLLOW"},
		{0x0002, "XATTR_CREATE"},
		{0x0004, "XATTR_REPLACE"},
		{0x0008, "XATTR_NOSECURITY"},
		{0x0010, "XATTR_NODEFAULT"},
		{0x0020, "XATTR_SHOWCOMPRESSION"},
	},
}

// ChflagsFlags decodes chflags/fchflags file flags.
var ChflagsFlags = FlagSet{
	Flags: []Flag{
		{0x00000001, "UF_NODUMP"},
		{0x00000002, "UF_IMMUTABLE"},
		{0x00000004, "UF_APPEND"},
		{0x00000008, "UF_OPAQUE"},
		{0x00000020, "UF_COMPRESSED"},
		{0x00000040, "UF_TRACKED"},
		{0x00008000, "UF_HIDDEN"},
		{0x00010000, "SF_ARCHIVED"},
		{0x00020000, "SF_IMMUTABLE"},
		{0x00040000, "SF_APPEND"},
	},
}

// MsyncFlags decodes msync flags.
var MsyncFlags = FlagSet{
	Flags: []Flag{
		{0x0001, "MS_ASYNC"},
		{0x0002, "MS_INVALIDATE"},
		{0x0004, "MS_KILLPAGES"},
		{0x0008, "MS_DEACTIVATE"},
		{0x0010, "MS_SYNC"},
	},
}

const sIfmt = 0o170000

var fileTypes = map[uint64]string{
	0o010000: "S_IFIFO",
	0o020000: "S_IFCHR",
	0o040000: "S_IFDIR",
	0o060000: "S_IFBLK",
	0o100000: "S_IFREG",
	0o120000: "S_IFLNK",
	0o140000: "S_IFSOCK",
}

// FileMode renders a full st_mode: file-type symbol plus octal permission
// bits, e.g. "S_IFREG|0644".
func FileMode(mode uint64) string {
	perm := Octal(mode)

	if typ, ok := fileTypes[mode&sIfmt]; ok {
		return typ + "|" + perm
	}

	if mode&sIfmt != 0 {
		return fmt.Sprintf("%#o|%s", mode&sIfmt, perm)
	}

	return perm
}

// Dirfd renders a *at() directory file descriptor, mapping the AT_FDCWD
// sentinel to its name.
func Dirfd(fd int64) string {
	if fd == AtFdcwd {
		return "AT_FDCWD"
	}

	return fmt.Sprintf("%d", fd)
}
