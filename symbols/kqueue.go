package symbols

// kqueue/kevent Darwin constants (sys/event.h).

// EvFilters decodes the negative EVFILT_* filter ids in a kevent.
var EvFilters = Enum{
	Prefix: "EVFILT",
	Values: map[int64]string{
		-1:  "EVFILT_READ",
		-2:  "EVFILT_WRITE",
		-3:  "EVFILT_AIO",
		-4:  "EVFILT_VNODE",
		-5:  "EVFILT_PROC",
		-6:  "EVFILT_SIGNAL",
		-7:  "EVFILT_TIMER",
		-8:  "EVFILT_MACHPORT",
		-9:  "EVFILT_FS",
		-10: "EVFILT_USER",
		-12: "EVFILT_VM",
		-15: "EVFILT_EXCEPT",
	},
}

// EvFlags decodes the EV_* action/status bits in a kevent.
var EvFlags = FlagSet{
	Flags: []Flag{
		{0x0001, "EV_ADD"},
		{0x0002, "EV_DELETE"},
		{0x0004, "EV_ENABLE"},
		{0x0008, "EV_DISABLE"},
		{0x0010, "EV_ONESHOT"},
		{0x0020, "EV_CLEAR"},
		{0x0040, "EV_RECEIPT"},
		{0x0080, "EV_DISPATCH"},
		{0x4000, "EV_ERROR"},
		{0x8000, "EV_EOF"},
	},
}

// NoteVnodeFlags decodes NOTE_* fflags for EVFILT_VNODE.
var NoteVnodeFlags = FlagSet{
	Flags: []Flag{
		{0x00000001, "NOTE_DELETE"},
		{0x00000002, "NOTE_WRITE"},
		{0x00000004, "NOTE_EXTEND"},
		{0x00000008, "NOTE_ATTRIB"},
		{0x00000010, "NOTE_LINK"},
		{0x00000020, "NOTE_RENAME"},
		{0x00000040, "NOTE_REVOKE"},
	},
}

// NoteProcFlags decodes NOTE_* fflags for EVFILT_PROC.
var NoteProcFlags = FlagSet{
	Flags: []Flag{
		{0x80000000, "NOTE_EXIT"},
		{0x40000000, "NOTE_FORK"},
		{0x20000000, "NOTE_EXEC"},
		{0x08000000, "NOTE_SIGNAL"},
		{0x04000000, "NOTE_EXITSTATUS"},
	},
}
