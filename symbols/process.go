package symbols

// Process-management Darwin constants.

// WaitOptions decodes wait4/waitpid option bits.
var WaitOptions = FlagSet{
	Flags: []Flag{
		{0x00000001, "WNOHANG"},
		{0x00000002, "WUNTRACED"},
		{0x00000010, "WCONTINUED"},
	},
}

// IdTypes decodes the idtype argument of waitid.
var IdTypes = Enum{
	Prefix: "P",
	Values: map[int64]string{
		0: "P_ALL",
		1: "P_PID",
		2: "P_PGID",
	},
}

// WaitidOptions decodes waitid option bits.
var WaitidOptions = FlagSet{
	Flags: []Flag{
		{0x00000004, "WEXITED"},
		{0x00000008, "WSTOPPED"},
		{0x00000010, "WCONTINUED"},
		{0x00000020, "WNOWAIT"},
	},
}

// PrioWhich decodes the which argument of get/setpriority.
var PrioWhich = Enum{
	Prefix: "PRIO",
	Values: map[int64]string{
		0:      "PRIO_PROCESS",
		1:      "PRIO_PGRP",
		2:      "PRIO_USER",
		3:      "PRIO_DARWIN_THREAD",
		4:      "PRIO_DARWIN_PROCESS",
		0x1000: "PRIO_DARWIN_BG",
	},
}

// RusageWho decodes the who argument of getrusage.
var RusageWho = Enum{
	Prefix: "RUSAGE",
	Values: map[int64]string{
		-1: "RUSAGE_CHILDREN",
		0:  "RUSAGE_SELF",
	},
}

// RlimitResources decodes the resource argument of get/setrlimit.
var RlimitResources = Enum{
	Prefix: "RLIMIT",
	Values: map[int64]string{
		0: "RLIMIT_CPU",
		1: "RLIMIT_FSIZE",
		2: "RLIMIT_DATA",
		3: "RLIMIT_STACK",
		4: "RLIMIT_CORE",
		5: "RLIMIT_AS",
		6: "RLIMIT_MEMLOCK",
		7: "RLIMIT_NPROC",
		8: "RLIMIT_NOFILE",
	},
}

// SigprocmaskHow decodes the how argument of sigprocmask.
var SigprocmaskHow = Enum{
	Prefix: "SIG",
	Values: map[int64]string{
		1: "SIG_BLOCK",
		2: "SIG_UNBLOCK",
		3: "SIG_SETMASK",
	},
}
