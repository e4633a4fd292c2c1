package syscalls

import "github.com/mstrace/mstrace/symbols"

// Signal-handling syscalls.
var signalSyscalls = []*Schema{
	Def(sysKill, "kill",
		P("pid", "int", In, Int()),
		P("signum", "int", In, Sig()),
	),
	Def(sysSigaction, "sigaction",
		P("signum", "int", In, Sig()),
		P("nsa", "const struct sigaction *", In, SigactionIn()),
		P("osa", "struct sigaction *", Out, SigactionOut()),
	),
	Def(sysSigprocmask, "sigprocmask",
		P("how", "int", In, Const(symbols.SigprocmaskHow)),
		P("mask", "const sigset_t *", In, IntPtrIn()),
		P("omask", "sigset_t *", Out, IntPtrOut()),
	),
	Def(sysSigpending, "sigpending",
		P("osv", "sigset_t *", Out, IntPtrOut()),
	),
	Def(sysSigaltstack, "sigaltstack",
		P("nss", "const stack_t *", In, Ptr()),
		P("oss", "stack_t *", Out, Ptr()),
	),
	Def(sysSigsuspend, "sigsuspend",
		P("mask", "sigset_t", In, Hex()),
	),
}
