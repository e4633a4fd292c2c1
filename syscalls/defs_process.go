package syscalls

import "github.com/mstrace/mstrace/symbols"

// Process lifecycle and identity syscalls.
var processSyscalls = []*Schema{
	Def(sysExit, "exit",
		P("rval", "int", In, Int()),
	),
	Def(sysFork, "fork"),
	Def(sysVfork, "vfork"),
	Def(sysWait4, "wait4",
		P("pid", "int", In, Int()),
		P("status", "int *", Out, IntPtrOut()),
		P("options", "int", In, Flags(symbols.WaitOptions)),
		P("rusage", "struct rusage *", Out, RusageOut()),
	),
	Def(sysWaitid, "waitid",
		P("idtype", "idtype_t", In, Const(symbols.IdTypes)),
		P("id", "id_t", In, Int()),
		P("infop", "siginfo_t *", Out, Ptr()),
		P("options", "int", In, Flags(symbols.WaitidOptions)),
	),
	Def(sysExecve, "execve",
		P("fname", "const char *", In, Path()),
		P("argp", "char *const *", In, StringArray()),
		P("envp", "char *const *", In, StringArray()),
	),
	Def(sysPosixSpawn, "posix_spawn",
		P("pid", "pid_t *", Out, IntPtrOut()),
		P("path", "const char *", In, Path()),
		P("adesc", "const posix_spawn_file_actions_t *", In, Ptr()),
		P("attr", "const posix_spawnattr_t *", In, Ptr()),
		P("argv", "char *const *", In, StringArray()),
		P("envp", "char *const *", In, StringArray()),
	),
	Def(sysGetpid, "getpid"),
	Def(sysGetppid, "getppid"),
	Def(sysGetuid, "getuid"),
	Def(sysGeteuid, "geteuid"),
	Def(sysGetgid, "getgid"),
	Def(sysGetegid, "getegid"),
	Def(sysSetuid, "setuid",
		P("uid", "uid_t", In, Int()),
	),
	Def(sysSetgid, "setgid",
		P("gid", "gid_t", In, Int()),
	),
	Def(sysSetegid, "setegid",
		P("egid", "gid_t", In, Int()),
	),
	Def(sysSeteuid, "seteuid",
		P("euid", "uid_t", In, Int()),
	),
	Def(sysSetreuid, "setreuid",
		P("ruid", "uid_t", In, Int()),
		P("euid", "uid_t", In, Int()),
	),
	Def(sysGetgroups, "getgroups",
		P("gidsetsize", "int", In, Int()),
		P("gidset", "gid_t *", Out, Ptr()),
	),
	Def(sysSetgroups, "setgroups",
		P("gidsetsize", "int", In, Int()),
		P("gidset", "const gid_t *", In, Ptr()),
	),
	Def(sysGetpgrp, "getpgrp"),
	Def(sysGetpgid, "getpgid",
		P("pid", "pid_t", In, Int()),
	),
	Def(sysSetpgid, "setpgid",
		P("pid", "pid_t", In, Int()),
		P("pgid", "pid_t", In, Int()),
	),
	Def(sysSetsid, "setsid"),
	Def(sysGetpriority, "getpriority",
		P("which", "int", In, Const(symbols.PrioWhich)),
		P("who", "id_t", In, Int()),
	),
	Def(sysSetpriority, "setpriority",
		P("which", "int", In, Const(symbols.PrioWhich)),
		P("who", "id_t", In, Int()),
		P("prio", "int", In, Int()),
	),
	Def(sysGetrusage, "getrusage",
		P("who", "int", In, Const(symbols.RusageWho)),
		P("rusage", "struct rusage *", Out, RusageOut()),
	),
	Def(sysGetrlimit, "getrlimit",
		P("which", "int", In, Const(symbols.RlimitResources)),
		P("rlp", "struct rlimit *", Out, Ptr()),
	),
	Def(sysSetrlimit, "setrlimit",
		P("which", "int", In, Const(symbols.RlimitResources)),
		P("rlp", "const struct rlimit *", In, Ptr()),
	),
}
