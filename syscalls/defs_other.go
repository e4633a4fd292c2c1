package syscalls

import "github.com/mstrace/mstrace/symbols"

// IPC syscalls: pipes, POSIX shared memory and semaphores, kqueue.
var ipcSyscalls = []*Schema{
	Def(sysPipe, "pipe",
		P("fildes", "int *", Out, IntPairOut()),
	),
	Def(sysShmOpen, "shm_open",
		P("name", "const char *", In, Path()),
		P("oflag", "int", In, Flags(symbols.OpenFlags)),
		P("mode", "mode_t", In, ModeIfCreat(1)),
	),
	Def(sysShmUnlink, "shm_unlink",
		P("name", "const char *", In, Path()),
	),
	Def(sysSemOpen, "sem_open",
		P("name", "const char *", In, Path()),
		P("oflag", "int", In, Flags(symbols.OpenFlags)),
		P("mode", "mode_t", In, ModeIfCreat(1)),
		P("value", "int", In, Int()),
	),
	Def(sysSemClose, "sem_close",
		P("sem", "sem_t *", In, Ptr()),
	),
	Def(sysSemUnlink, "sem_unlink",
		P("name", "const char *", In, Path()),
	),
	Def(sysSemWait, "sem_wait",
		P("sem", "sem_t *", In, Ptr()),
	),
	Def(sysSemTrywait, "sem_trywait",
		P("sem", "sem_t *", In, Ptr()),
	),
	Def(sysSemPost, "sem_post",
		P("sem", "sem_t *", In, Ptr()),
	),
	Def(sysKqueue, "kqueue"),
	Def(sysKevent, "kevent",
		P("fd", "int", In, Fd()),
		P("changelist", "const struct kevent *", In, KeventIn(2)),
		P("nchanges", "int", In, Int()),
		P("eventlist", "struct kevent *", Out, KeventOut()),
		P("nevents", "int", In, Int()),
		P("timeout", "const struct timespec *", In, TimespecIn()),
	),
	Def(sysKevent64, "kevent64",
		P("fd", "int", In, Fd()),
		P("changelist", "const struct kevent64_s *", In, Ptr()),
		P("nchanges", "int", In, Int()),
		P("eventlist", "struct kevent64_s *", Out, Ptr()),
		P("nevents", "int", In, Int()),
		P("flags", "unsigned int", In, Uint()),
		// Remaining arguments are beyond the six capture registers.
	),
}

// Thread syscalls: the bsdthread layer pthreads is built on.
var threadSyscalls = []*Schema{
	Def(sysBsdthreadCreate, "bsdthread_create",
		P("func", "void *", In, Ptr()),
		P("func_arg", "void *", In, Ptr()),
		P("stack", "void *", In, Ptr()),
		P("pthread", "void *", In, Ptr()),
		P("flags", "uint32_t", In, Hex()),
	),
	Def(sysBsdthreadTerminate, "bsdthread_terminate",
		P("stackaddr", "void *", In, Ptr()),
		P("freesize", "size_t", In, Uint()),
		P("port", "uint32_t", In, Uint()),
		P("sem", "uint32_t", In, Uint()),
	),
	Def(sysBsdthreadRegister, "bsdthread_register",
		P("threadstart", "void *", In, Ptr()),
		P("wqthread", "void *", In, Ptr()),
		P("flags", "int", In, Hex()),
		P("stack_addr_hint", "void *", In, Ptr()),
		P("targetconc_ptr", "void *", In, Ptr()),
		P("dispatchqueue_offset", "uint32_t", In, Uint()),
	),
	Def(sysThreadSelfid, "thread_selfid"),
	Def(sysUlockWait, "ulock_wait",
		P("operation", "uint32_t", In, Hex()),
		P("addr", "void *", In, Ptr()),
		P("value", "uint64_t", In, Uint()),
		P("timeout", "uint32_t", In, Uint()),
	),
	Def(sysUlockWake, "ulock_wake",
		P("operation", "uint32_t", In, Hex()),
		P("addr", "void *", In, Ptr()),
		P("wake_value", "uint64_t", In, Uint()),
	),
}

// Time syscalls.
var timeSyscalls = []*Schema{
	Def(sysGettimeofday, "gettimeofday",
		P("tp", "struct timeval *", Out, TimevalOut()),
		P("tzp", "struct timezone *", Out, Ptr()),
	),
	Def(sysSettimeofday, "settimeofday",
		P("tv", "const struct timeval *", In, TimevalIn()),
		P("tzp", "const struct timezone *", In, Ptr()),
	),
	Def(sysGetitimer, "getitimer",
		P("which", "int", In, Const(symbols.ItimerWhich)),
		P("itv", "struct itimerval *", Out, Ptr()),
	),
	Def(sysSetitimer, "setitimer",
		P("which", "int", In, Const(symbols.ItimerWhich)),
		P("itv", "const struct itimerval *", In, Ptr()),
		P("oitv", "struct itimerval *", Out, Ptr()),
	),
	Def(sysAdjtime, "adjtime",
		P("delta", "const struct timeval *", In, TimevalIn()),
		P("olddelta", "struct timeval *", Out, TimevalOut()),
	),
}

// System information syscalls.
var sysinfoSyscalls = []*Schema{
	Def(sysSysctl, "sysctl",
		P("name", "int *", In, Ptr()),
		P("namelen", "u_int", In, Uint()),
		P("old", "void *", Out, Ptr()),
		P("oldlenp", "size_t *", InOut, IntPtrOut()),
		P("new", "const void *", In, Ptr()),
		P("newlen", "size_t", In, Uint()),
	),
	Def(sysGetdtablesize, "getdtablesize"),
	Def(sysProcInfo, "proc_info",
		P("callnum", "int32_t", In, Int()),
		P("pid", "int32_t", In, Int()),
		P("flavor", "uint32_t", In, Uint()),
		P("arg", "uint64_t", In, Uint()),
		P("buffer", "void *", Out, Ptr()),
		P("buffersize", "int32_t", In, Int()),
	),
	Def(sysGetentropy, "getentropy",
		P("buffer", "void *", Out, Ptr()),
		P("size", "size_t", In, Uint()),
	),
}

// Security syscalls.
var securitySyscalls = []*Schema{
	Def(sysIssetugid, "issetugid"),
	Def(sysCsops, "csops",
		P("pid", "pid_t", In, Int()),
		P("ops", "uint32_t", In, Hex()),
		P("useraddr", "void *", Out, Ptr()),
		P("usersize", "size_t", In, Uint()),
	),
}

// Debug syscalls.
var debugSyscalls = []*Schema{
	Def(sysPtrace, "ptrace",
		P("req", "int", In, Int()),
		P("pid", "pid_t", In, Int()),
		P("addr", "caddr_t", In, Ptr()),
		P("data", "int", In, Int()),
	),
	Def(sysKdebugTrace, "kdebug_trace",
		P("code", "uint32_t", In, Hex()),
		P("arg1", "u_long", In, Uint()),
		P("arg2", "u_long", In, Uint()),
		P("arg3", "u_long", In, Uint()),
		P("arg4", "u_long", In, Uint()),
	),
}

// Everything the other classes don't cover.
var miscSyscalls = []*Schema{
	Def(sysUndelete, "undelete",
		P("path", "const char *", In, Path()),
	),
}
