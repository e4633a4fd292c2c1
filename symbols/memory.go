package symbols

// Memory-management Darwin constants (sys/mman.h).

// ProtFlags decodes mmap/mprotect protection bits.
var ProtFlags = FlagSet{
	ZeroName: "PROT_NONE",
	Flags: []Flag{
		{1, "PROT_READ"},
		{2, "PROT_WRITE"},
		{4, "PROT_EXEC"},
	},
}

// MapFlags decodes mmap flags.
var MapFlags = FlagSet{
	Flags: []Flag{
		{0x0001, "MAP_SHARED"},
		{0x0002, "MAP_PRIVATE"},
		{0x0010, "MAP_FIXED"},
		{0x0020, "MAP_RENAME"},
		{0x0040, "MAP_NORESERVE"},
		{0x0100, "MAP_NOEXTEND"},
		{0x0200, "MAP_HASSEMAPHORE"},
		{0x0400, "MAP_NOCACHE"},
		{0x0800, "MAP_JIT"},
		{0x1000, "MAP_ANON"},
		{0x2000, "MAP_RESILIENT_CODESIGN"},
		{0x4000, "MAP_RESILIENT_MEDIA"},
		{0x8000, "MAP_32BIT"},
	},
}

// MadviseAdvice decodes the madvise advice argument.
var MadviseAdvice = Enum{
	Prefix: "MADV",
	Values: map[int64]string{
		0:  "MADV_NORMAL",
		1:  "MADV_RANDOM",
		2:  "MADV_SEQUENTIAL",
		3:  "MADV_WILLNEED",
		4:  "MADV_DONTNEED",
		5:  "MADV_FREE",
		6:  "MADV_ZERO_WIRED_PAGES",
		7:  "MADV_FREE_REUSABLE",
		8:  "MADV_FREE_REUSE",
		9:  "MADV_CAN_REUSE",
		10: "MADV_PAGEOUT",
	},
}

// MlockallFlags decodes mlockall flags.
var MlockallFlags = FlagSet{
	Flags: []Flag{
		{0x0001, "MCL_CURRENT"},
		{0x0002, "MCL_FUTURE"},
	},
}
