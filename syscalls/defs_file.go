package syscalls

import "github.com/mstrace/mstrace/symbols"

// File I/O and filesystem syscalls.
var fileSyscalls = []*Schema{
	Def(sysRead, "read",
		P("fd", "int", In, Fd()),
		P("buf", "void *", Out, OutBuffer(2)),
		P("nbyte", "size_t", In, Uint()),
	),
	Def(sysWrite, "write",
		P("fd", "int", In, Fd()),
		P("buf", "const void *", In, InBuffer(2)),
		P("nbyte", "size_t", In, Uint()),
	),
	Def(sysOpen, "open",
		P("path", "const char *", In, Path()),
		P("flags", "int", In, Flags(symbols.OpenFlags)),
		P("mode", "mode_t", In, ModeIfCreat(1)),
	),
	Def(sysClose, "close",
		P("fd", "int", In, Fd()),
	),
	Def(sysLink, "link",
		P("path", "const char *", In, Path()),
		P("link", "const char *", In, Path()),
	),
	Def(sysUnlink, "unlink",
		P("path", "const char *", In, Path()),
	),
	Def(sysChdir, "chdir",
		P("path", "const char *", In, Path()),
	),
	Def(sysFchdir, "fchdir",
		P("fd", "int", In, Fd()),
	),
	Def(sysMknod, "mknod",
		P("path", "const char *", In, Path()),
		P("mode", "mode_t", In, Octal()),
		P("dev", "dev_t", In, Int()),
	),
	Def(sysChmod, "chmod",
		P("path", "const char *", In, Path()),
		P("mode", "mode_t", In, Octal()),
	),
	Def(sysChown, "chown",
		P("path", "const char *", In, Path()),
		P("uid", "uid_t", In, Int()),
		P("gid", "gid_t", In, Int()),
	),
	Def(sysAccess, "access",
		P("path", "const char *", In, Path()),
		P("amode", "int", In, Flags(symbols.AccessModes)),
	),
	Def(sysChflags, "chflags",
		P("path", "const char *", In, Path()),
		P("flags", "u_long", In, Flags(symbols.ChflagsFlags)),
	),
	Def(sysFchflags, "fchflags",
		P("fd", "int", In, Fd()),
		P("flags", "u_long", In, Flags(symbols.ChflagsFlags)),
	),
	Def(sysSync, "sync"),
	Def(sysDup, "dup",
		P("fd", "int", In, Fd()),
	),
	Def(sysRevoke, "revoke",
		P("path", "const char *", In, Path()),
	),
	Def(sysSymlink, "symlink",
		P("path", "const char *", In, Path()),
		P("link", "const char *", In, Path()),
	),
	Def(sysReadlink, "readlink",
		P("path", "const char *", In, Path()),
		P("buf", "char *", Out, OutBuffer(2)),
		P("bufsize", "size_t", In, Uint()),
	),
	Def(sysUmask, "umask",
		P("numask", "mode_t", In, Octal()),
	),
	Def(sysChroot, "chroot",
		P("path", "const char *", In, Path()),
	),
	Def(sysDup2, "dup2",
		P("from", "int", In, Fd()),
		P("to", "int", In, Fd()),
	),
	DefRet(sysFcntl, "fcntl", RetFcntl,
		P("fd", "int", In, Fd()),
		P("cmd", "int", In, Const(symbols.FcntlCmds)),
		P("arg", "long", In, Int()),
	),
	Def(sysSelect, "select",
		P("nd", "int", In, Int()),
		P("in", "fd_set *", InOut, Ptr()),
		P("ou", "fd_set *", InOut, Ptr()),
		P("ex", "fd_set *", InOut, Ptr()),
		P("tv", "struct timeval *", In, TimevalIn()),
	),
	Def(sysFsync, "fsync",
		P("fd", "int", In, Fd()),
	),
	Def(sysReadv, "readv",
		P("fd", "int", In, Fd()),
		P("iovp", "struct iovec *", Out, IovecOut(2)),
		P("iovcnt", "int", In, Int()),
	),
	Def(sysWritev, "writev",
		P("fd", "int", In, Fd()),
		P("iovp", "struct iovec *", In, IovecIn(2)),
		P("iovcnt", "int", In, Int()),
	),
	Def(sysFchown, "fchown",
		P("fd", "int", In, Fd()),
		P("uid", "uid_t", In, Int()),
		P("gid", "gid_t", In, Int()),
	),
	Def(sysFchmod, "fchmod",
		P("fd", "int", In, Fd()),
		P("mode", "mode_t", In, Octal()),
	),
	Def(sysRename, "rename",
		P("from", "const char *", In, Path()),
		P("to", "const char *", In, Path()),
	),
	Def(sysFlock, "flock",
		P("fd", "int", In, Fd()),
		P("operation", "int", In, Flags(symbols.FlockOps)),
	),
	Def(sysMkfifo, "mkfifo",
		P("path", "const char *", In, Path()),
		P("mode", "mode_t", In, Octal()),
	),
	Def(sysMkdir, "mkdir",
		P("path", "const char *", In, Path()),
		P("mode", "mode_t", In, Octal()),
	),
	Def(sysRmdir, "rmdir",
		P("path", "const char *", In, Path()),
	),
	Def(sysUtimes, "utimes",
		P("path", "const char *", In, Path()),
		P("tptr", "struct timeval *", In, TimevalIn()),
	),
	Def(sysFutimes, "futimes",
		P("fd", "int", In, Fd()),
		P("tptr", "struct timeval *", In, TimevalIn()),
	),
	Def(sysPread, "pread",
		P("fd", "int", In, Fd()),
		P("buf", "void *", Out, OutBuffer(2)),
		P("nbyte", "size_t", In, Uint()),
		P("offset", "off_t", In, Int()),
	),
	Def(sysPwrite, "pwrite",
		P("fd", "int", In, Fd()),
		P("buf", "const void *", In, InBuffer(2)),
		P("nbyte", "size_t", In, Uint()),
		P("offset", "off_t", In, Int()),
	),
	Def(sysStatfs, "statfs",
		P("path", "const char *", In, Path()),
		P("buf", "struct statfs *", Out, StatfsOut()),
	),
	Def(sysFstatfs, "fstatfs",
		P("fd", "int", In, Fd()),
		P("buf", "struct statfs *", Out, StatfsOut()),
	),
	Def(sysMount, "mount",
		P("type", "const char *", In, Path()),
		P("path", "const char *", In, Path()),
		P("flags", "int", In, Uint()),
		P("data", "caddr_t", In, Ptr()),
	),
	Def(sysFdatasync, "fdatasync",
		P("fd", "int", In, Fd()),
	),
	Def(sysStat, "stat",
		P("path", "const char *", In, Path()),
		P("ub", "struct stat *", Out, StatOut()),
	),
	Def(sysFstat, "fstat",
		P("fd", "int", In, Fd()),
		P("ub", "struct stat *", Out, StatOut()),
	),
	Def(sysLstat, "lstat",
		P("path", "const char *", In, Path()),
		P("ub", "struct stat *", Out, StatOut()),
	),
	Def(sysPathconf, "pathconf",
		P("path", "const char *", In, Path()),
		P("name", "int", In, Int()),
	),
	Def(sysFpathconf, "fpathconf",
		P("fd", "int", In, Fd()),
		P("name", "int", In, Int()),
	),
	Def(sysGetdirentries, "getdirentries",
		P("fd", "int", In, Fd()),
		P("buf", "char *", Out, Ptr()),
		P("count", "u_int", In, Uint()),
		P("basep", "long *", Out, IntPtrOut()),
	),
	Def(sysLseek, "lseek",
		P("fd", "int", In, Fd()),
		P("offset", "off_t", In, Int()),
		P("whence", "int", In, Const(symbols.SeekWhence)),
	),
	Def(sysTruncate, "truncate",
		P("path", "const char *", In, Path()),
		P("length", "off_t", In, Int()),
	),
	Def(sysFtruncate, "ftruncate",
		P("fd", "int", In, Fd()),
		P("length", "off_t", In, Int()),
	),
	Def(sysPoll, "poll",
		P("fds", "struct pollfd *", InOut, Ptr()),
		P("nfds", "u_int", In, Uint()),
		P("timeout", "int", In, Int()),
	),
	Def(sysGetxattr, "getxattr",
		P("path", "const char *", In, Path()),
		P("attrname", "const char *", In, Path()),
		P("value", "void *", Out, OutBuffer(3)),
		P("size", "size_t", In, Uint()),
		P("position", "uint32_t", In, Uint()),
		P("options", "int", In, Flags(symbols.XattrFlags)),
	),
	Def(sysFgetxattr, "fgetxattr",
		P("fd", "int", In, Fd()),
		P("attrname", "const char *", In, Path()),
		P("value", "void *", Out, OutBuffer(3)),
		P("size", "size_t", In, Uint()),
		P("position", "uint32_t", In, Uint()),
		P("options", "int", In, Flags(symbols.XattrFlags)),
	),
	Def(sysSetxattr, "setxattr",
		P("path", "const char *", In, Path()),
		P("attrname", "const char *", In, Path()),
		P("value", "const void *", In, InBuffer(3)),
		P("size", "size_t", In, Uint()),
		P("position", "uint32_t", In, Uint()),
		P("options", "int", In, Flags(symbols.XattrFlags)),
	),
	Def(sysFsetxattr, "fsetxattr",
		P("fd", "int", In, Fd()),
		P("attrname", "const char *", In, Path()),
		P("value", "const void *", In, InBuffer(3)),
		P("size", "size_t", In, Uint()),
		P("position", "uint32_t", In, Uint()),
		P("options", "int", In, Flags(symbols.XattrFlags)),
	),
	Def(sysRemovexattr, "removexattr",
		P("path", "const char *", In, Path()),
		P("attrname", "const char *", In, Path()),
		P("options", "int", In, Flags(symbols.XattrFlags)),
	),
	Def(sysFremovexattr, "fremovexattr",
		P("fd", "int", In, Fd()),
		P("attrname", "const char *", In, Path()),
		P("options", "int", In, Flags(symbols.XattrFlags)),
	),
	Def(sysListxattr, "listxattr",
		P("path", "const char *", In, Path()),
		P("namebuf", "char *", Out, OutBuffer(2)),
		P("size", "size_t", In, Uint()),
		P("options", "int", In, Flags(symbols.XattrFlags)),
	),
	Def(sysFlistxattr, "flistxattr",
		P("fd", "int", In, Fd()),
		P("namebuf", "char *", Out, OutBuffer(2)),
		P("size", "size_t", In, Uint()),
		P("options", "int", In, Flags(symbols.XattrFlags)),
	),
	Def(sysStat64, "stat64",
		P("path", "const char *", In, Path()),
		P("ub", "struct stat64 *", Out, StatOut()),
	),
	Def(sysFstat64, "fstat64",
		P("fd", "int", In, Fd()),
		P("ub", "struct stat64 *", Out, StatOut()),
	),
	Def(sysLstat64, "lstat64",
		P("path", "const char *", In, Path()),
		P("ub", "struct stat64 *", Out, StatOut()),
	),
	Def(sysGetdirentries64, "getdirentries64",
		P("fd", "int", In, Fd()),
		P("buf", "void *", Out, Ptr()),
		P("bufsize", "size_t", In, Uint()),
		P("position", "off_t *", Out, IntPtrOut()),
	),
	Def(sysStatfs64, "statfs64",
		P("path", "const char *", In, Path()),
		P("buf", "struct statfs64 *", Out, StatfsOut()),
	),
	Def(sysFstatfs64, "fstatfs64",
		P("fd", "int", In, Fd()),
		P("buf", "struct statfs64 *", Out, StatfsOut()),
	),
	Def(sysOpenat, "openat",
		P("fd", "int", In, Dirfd()),
		P("path", "const char *", In, Path()),
		P("flags", "int", In, Flags(symbols.OpenFlags)),
		P("mode", "mode_t", In, ModeIfCreat(2)),
	),
	Def(sysRenameat, "renameat",
		P("fromfd", "int", In, Dirfd()),
		P("from", "const char *", In, Path()),
		P("tofd", "int", In, Dirfd()),
		P("to", "const char *", In, Path()),
	),
	Def(sysFaccessat, "faccessat",
		P("fd", "int", In, Dirfd()),
		P("path", "const char *", In, Path()),
		P("amode", "int", In, Flags(symbols.AccessModes)),
		P("flag", "int", In, Flags(symbols.AtFlags)),
	),
	Def(sysFchmodat, "fchmodat",
		P("fd", "int", In, Dirfd()),
		P("path", "const char *", In, Path()),
		P("mode", "mode_t", In, Octal()),
		P("flag", "int", In, Flags(symbols.AtFlags)),
	),
	Def(sysFchownat, "fchownat",
		P("fd", "int", In, Dirfd()),
		P("path", "const char *", In, Path()),
		P("uid", "uid_t", In, Int()),
		P("gid", "gid_t", In, Int()),
		P("flag", "int", In, Flags(symbols.AtFlags)),
	),
	Def(sysFstatat64, "fstatat64",
		P("fd", "int", In, Dirfd()),
		P("path", "const char *", In, Path()),
		P("ub", "struct stat64 *", Out, StatOut()),
		P("flag", "int", In, Flags(symbols.AtFlags)),
	),
	Def(sysLinkat, "linkat",
		P("fd1", "int", In, Dirfd()),
		P("path", "const char *", In, Path()),
		P("fd2", "int", In, Dirfd()),
		P("link", "const char *", In, Path()),
		P("flag", "int", In, Flags(symbols.AtFlags)),
	),
	Def(sysUnlinkat, "unlinkat",
		P("fd", "int", In, Dirfd()),
		P("path", "const char *", In, Path()),
		P("flag", "int", In, Flags(symbols.AtFlags)),
	),
	Def(sysReadlinkat, "readlinkat",
		P("fd", "int", In, Dirfd()),
		P("path", "const char *", In, Path()),
		P("buf", "char *", Out, OutBuffer(3)),
		P("bufsize", "size_t", In, Uint()),
	),
	Def(sysSymlinkat, "symlinkat",
		P("path", "const char *", In, Path()),
		P("fd", "int", In, Dirfd()),
		P("link", "const char *", In, Path()),
	),
	Def(sysMkdirat, "mkdirat",
		P("fd", "int", In, Dirfd()),
		P("path", "const char *", In, Path()),
		P("mode", "mode_t", In, Octal()),
	),
	Def(sysIoctl, "ioctl",
		P("fd", "int", In, Fd()),
		P("com", "u_long", In, Hex()),
		P("data", "caddr_t", In, Ptr()),
	),
}
