package syscalls

import "github.com/mstrace/mstrace/symbols"

// Memory-management syscalls.
var memorySyscalls = []*Schema{
	DefRet(sysMmap, "mmap", RetPtr,
		P("addr", "caddr_t", In, Ptr()),
		P("len", "size_t", In, Uint()),
		P("prot", "int", In, Flags(symbols.ProtFlags)),
		P("flags", "int", In, Flags(symbols.MapFlags)),
		P("fd", "int", In, Fd()),
		P("pos", "off_t", In, Int()),
	),
	Def(sysMunmap, "munmap",
		P("addr", "caddr_t", In, Ptr()),
		P("len", "size_t", In, Uint()),
	),
	Def(sysMprotect, "mprotect",
		P("addr", "caddr_t", In, Ptr()),
		P("len", "size_t", In, Uint()),
		P("prot", "int", In, Flags(symbols.ProtFlags)),
	),
	Def(sysMadvise, "madvise",
		P("addr", "caddr_t", In, Ptr()),
		P("len", "size_t", In, Uint()),
		P("behav", "int", In, Const(symbols.MadviseAdvice)),
	),
	Def(sysMincore, "mincore",
		P("addr", "caddr_t", In, Ptr()),
		P("len", "size_t", In, Uint()),
		P("vec", "char *", Out, Ptr()),
	),
	Def(sysMsync, "msync",
		P("addr", "caddr_t", In, Ptr()),
		P("len", "size_t", In, Uint()),
		P("flags", "int", In, Flags(symbols.MsyncFlags)),
	),
	Def(sysMlock, "mlock",
		P("addr", "caddr_t", In, Ptr()),
		P("len", "size_t", In, Uint()),
	),
	Def(sysMunlock, "munlock",
		P("addr", "caddr_t", In, Ptr()),
		P("len", "size_t", In, Uint()),
	),
	Def(sysMinherit, "minherit",
		P("addr", "void *", In, Ptr()),
		P("len", "size_t", In, Uint()),
		P("inherit", "int", In, Int()),
	),
}
