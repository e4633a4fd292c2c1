package syscalls

// Darwin BSD syscall numbers (bsd/kern/syscalls.master). Only the numbers
// the definition tables reference are mirrored here.
const (
	sysExit          = 1
	sysFork          = 2
	sysRead          = 3
	sysWrite         = 4
	sysOpen          = 5
	sysClose         = 6
	sysWait4         = 7
	sysLink          = 9
	sysUnlink        = 10
	sysChdir         = 12
	sysFchdir        = 13
	sysMknod         = 14
	sysChmod         = 15
	sysChown         = 16
	sysGetpid        = 20
	sysSetuid        = 23
	sysGetuid        = 24
	sysGeteuid       = 25
	sysPtrace        = 26
	sysRecvmsg       = 27
	sysSendmsg       = 28
	sysRecvfrom      = 29
	sysAccept        = 30
	sysGetpeername   = 31
	sysGetsockname   = 32
	sysAccess        = 33
	sysChflags       = 34
	sysFchflags      = 35
	sysSync          = 36
	sysKill          = 37
	sysGetppid       = 39
	sysDup           = 41
	sysPipe          = 42
	sysGetegid       = 43
	sysSigaction     = 46
	sysGetgid        = 47
	sysSigprocmask   = 48
	sysSigpending    = 52
	sysSigaltstack   = 53
	sysIoctl         = 54
	sysRevoke        = 56
	sysSymlink       = 57
	sysReadlink      = 58
	sysExecve        = 59
	sysUmask         = 60
	sysChroot        = 61
	sysMsync         = 65
	sysVfork         = 66
	sysMunmap        = 73
	sysMprotect      = 74
	sysMadvise       = 75
	sysMincore       = 78
	sysGetgroups     = 79
	sysSetgroups     = 80
	sysGetpgrp       = 81
	sysSetpgid       = 82
	sysSetitimer     = 83
	sysGetitimer     = 86
	sysGetdtablesize = 89
	sysDup2          = 90
	sysFcntl         = 92
	sysSelect        = 93
	sysFsync         = 95
	sysSetpriority   = 96
	sysSocket        = 97
	sysConnect       = 98
	sysGetpriority   = 100
	sysBind          = 104
	sysSetsockopt    = 105
	sysListen        = 106
	sysSigsuspend    = 111
	sysGettimeofday  = 116
	sysGetrusage     = 117
	sysGetsockopt    = 118
	sysReadv         = 120
	sysWritev        = 121
	sysSettimeofday  = 122
	sysFchown        = 123
	sysFchmod        = 124
	sysSetreuid      = 126
	sysRename        = 128
	sysFlock         = 131
	sysMkfifo        = 132
	sysSendto        = 133
	sysShutdown      = 134
	sysSocketpair    = 135
	sysMkdir         = 136
	sysRmdir         = 137
	sysUtimes        = 138
	sysFutimes       = 139
	sysAdjtime       = 140
	sysSetsid        = 147
	sysGetpgid       = 151
	sysPread         = 153
	sysPwrite        = 154
	sysStatfs        = 157
	sysFstatfs       = 158
	sysMount         = 167
	sysCsops         = 169
	sysWaitid        = 173
	sysKdebugTrace   = 180
	sysSetgid        = 181
	sysSetegid       = 182
	sysSeteuid       = 183
	sysFdatasync     = 187
	sysStat          = 188
	sysFstat         = 189
	sysLstat         = 190
	sysPathconf      = 191
	sysFpathconf     = 192
	sysGetrlimit     = 194
	sysSetrlimit     = 195
	sysGetdirentries = 196
	sysMmap          = 197
	sysLseek         = 199
	sysTruncate      = 200
	sysFtruncate     = 201
	sysSysctl        = 202
	sysMlock         = 203
	sysMunlock       = 204
	sysUndelete      = 205
	sysPoll          = 230
	sysGetxattr      = 234
	sysFgetxattr     = 235
	sysSetxattr      = 236
	sysFsetxattr     = 237
	sysRemovexattr   = 238
	sysFremovexattr  = 239
	sysListxattr     = 240
	sysFlistxattr    = 241
	sysPosixSpawn    = 245
	sysMinherit      = 250
	sysShmOpen       = 266
	sysShmUnlink     = 267
	sysSemOpen       = 271
	sysSemClose      = 272
	sysSemUnlink     = 273
	sysSemWait       = 274
	sysSemTrywait    = 275
	sysSemPost       = 276
	sysIssetugid     = 327
	sysProcInfo      = 336
	sysStat64        = 338
	sysFstat64       = 339
	sysLstat64       = 340
	sysGetdirentries64 = 344
	sysStatfs64      = 345
	sysFstatfs64     = 346
	sysBsdthreadCreate    = 360
	sysBsdthreadTerminate = 361
	sysKqueue        = 362
	sysKevent        = 363
	sysBsdthreadRegister  = 366
	sysKevent64      = 369
	sysThreadSelfid  = 372
	sysOpenat        = 463
	sysRenameat      = 465
	sysFaccessat     = 466
	sysFchmodat      = 467
	sysFchownat      = 468
	sysFstatat64     = 469
	sysLinkat        = 470
	sysUnlinkat      = 471
	sysReadlinkat    = 472
	sysSymlinkat     = 473
	sysMkdirat       = 474
	sysGetentropy    = 500
	sysUlockWait     = 515
	sysUlockWake     = 516
)
