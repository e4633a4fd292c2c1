package syscalls

import "github.com/mstrace/mstrace/symbols"

// Socket-layer syscalls.
var networkSyscalls = []*Schema{
	Def(sysSocket, "socket",
		P("domain", "int", In, Const(symbols.AddressFamilies)),
		P("type", "int", In, Const(symbols.SocketTypes)),
		P("protocol", "int", In, Const(symbols.IPProtocols)),
	),
	Def(sysConnect, "connect",
		P("s", "int", In, Fd()),
		P("name", "const struct sockaddr *", In, SockaddrIn()),
		P("namelen", "socklen_t", In, Uint()),
	),
	Def(sysAccept, "accept",
		P("s", "int", In, Fd()),
		P("name", "struct sockaddr *", Out, SockaddrOut()),
		P("anamelen", "socklen_t *", Out, IntPtrOut()),
	),
	Def(sysBind, "bind",
		P("s", "int", In, Fd()),
		P("name", "const struct sockaddr *", In, SockaddrIn()),
		P("namelen", "socklen_t", In, Uint()),
	),
	Def(sysListen, "listen",
		P("s", "int", In, Fd()),
		P("backlog", "int", In, Int()),
	),
	Def(sysGetpeername, "getpeername",
		P("fdes", "int", In, Fd()),
		P("asa", "struct sockaddr *", Out, SockaddrOut()),
		P("alen", "socklen_t *", Out, IntPtrOut()),
	),
	Def(sysGetsockname, "getsockname",
		P("fdes", "int", In, Fd()),
		P("asa", "struct sockaddr *", Out, SockaddrOut()),
		P("alen", "socklen_t *", Out, IntPtrOut()),
	),
	Def(sysSetsockopt, "setsockopt",
		P("s", "int", In, Fd()),
		P("level", "int", In, Const(symbols.SocketLevels)),
		P("name", "int", In, Const(symbols.SocketOptions)),
		P("val", "const void *", In, InBuffer(4)),
		P("valsize", "socklen_t", In, Uint()),
	),
	Def(sysGetsockopt, "getsockopt",
		P("s", "int", In, Fd()),
		P("level", "int", In, Const(symbols.SocketLevels)),
		P("name", "int", In, Const(symbols.SocketOptions)),
		P("val", "void *", Out, Ptr()),
		P("avalsize", "socklen_t *", Out, IntPtrOut()),
	),
	Def(sysSendto, "sendto",
		P("s", "int", In, Fd()),
		P("buf", "const void *", In, InBuffer(2)),
		P("len", "size_t", In, Uint()),
		P("flags", "int", In, Flags(symbols.MsgFlags)),
		P("to", "const struct sockaddr *", In, SockaddrIn()),
		P("tolen", "socklen_t", In, Uint()),
	),
	Def(sysRecvfrom, "recvfrom",
		P("s", "int", In, Fd()),
		P("buf", "void *", Out, OutBuffer(2)),
		P("len", "size_t", In, Uint()),
		P("flags", "int", In, Flags(symbols.MsgFlags)),
		P("from", "struct sockaddr *", Out, SockaddrOut()),
		P("fromlenaddr", "socklen_t *", Out, IntPtrOut()),
	),
	Def(sysSendmsg, "sendmsg",
		P("s", "int", In, Fd()),
		P("msg", "const struct msghdr *", In, MsghdrIn()),
		P("flags", "int", In, Flags(symbols.MsgFlags)),
	),
	Def(sysRecvmsg, "recvmsg",
		P("s", "int", In, Fd()),
		P("msg", "struct msghdr *", InOut, MsghdrOut()),
		P("flags", "int", In, Flags(symbols.MsgFlags)),
	),
	Def(sysShutdown, "shutdown",
		P("s", "int", In, Fd()),
		P("how", "int", In, Const(symbols.ShutdownHow)),
	),
	Def(sysSocketpair, "socketpair",
		P("domain", "int", In, Const(symbols.AddressFamilies)),
		P("type", "int", In, Const(symbols.SocketTypes)),
		P("protocol", "int", In, Const(symbols.IPProtocols)),
		P("rsv", "int *", Out, IntPairOut()),
	),
}
