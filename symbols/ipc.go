package symbols

// System V IPC and interval-timer Darwin constants.

// IpcFlags decodes semget/msgget/shmget flag bits. The low nine bits are a
// permission mode; Decode renders them as the hex residual, not in octal.
var IpcFlags = FlagSet{
	Flags: []Flag{
		{0x200, "IPC_CREAT"},
		{0x400, "IPC_EXCL"},
		{0x800, "IPC_NOWAIT"},
	},
}

// IpcCmds decodes semctl/msgctl/shmctl commands.
var IpcCmds = Enum{
	Prefix: "IPC",
	Values: map[int64]string{
		0: "IPC_RMID",
		1: "IPC_SET",
		2: "IPC_STAT",
	},
}

// ShmFlags decodes shmat flag bits.
var ShmFlags = FlagSet{
	Flags: []Flag{
		{0o10000, "SHM_RDONLY"},
		{0o20000, "SHM_RND"},
	},
}

// ItimerWhich decodes the which argument of get/setitimer.
var ItimerWhich = Enum{
	Prefix: "ITIMER",
	Values: map[int64]string{
		0: "ITIMER_REAL",
		1: "ITIMER_VIRTUAL",
		2: "ITIMER_PROF",
	},
}
