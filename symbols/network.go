package symbols

// Socket-layer Darwin constants (sys/socket.h, netinet/in.h).

// AddressFamilies decodes the AF_* argument of socket and the sa_family
// field of socket addresses.
var AddressFamilies = Enum{
	Prefix: "AF",
	Values: map[int64]string{
		0:  "AF_UNSPEC",
		1:  "AF_UNIX",
		2:  "AF_INET",
		16: "AF_APPLETALK",
		17: "AF_ROUTE",
		18: "AF_LINK",
		27: "AF_NDRV",
		28: "AF_ISDN",
		30: "AF_INET6",
		32: "AF_SYSTEM",
		34: "AF_PPP",
		38: "AF_UTUN",
		40: "AF_VSOCK",
	},
}

// Address family numbers used by the sockaddr renderer.
const (
	AfUnix  = 1
	AfInet  = 2
	AfInet6 = 30
)

// SocketTypes decodes the SOCK_* argument of socket.
var SocketTypes = Enum{
	Prefix: "SOCK",
	Values: map[int64]string{
		1: "SOCK_STREAM",
		2: "SOCK_DGRAM",
		3: "SOCK_RAW",
		4: "SOCK_RDM",
		5: "SOCK_SEQPACKET",
	},
}

// IPProtocols decodes the protocol argument of socket.
var IPProtocols = Enum{
	Prefix: "IPPROTO",
	Values: map[int64]string{
		0:   "IPPROTO_IP",
		1:   "IPPROTO_ICMP",
		6:   "IPPROTO_TCP",
		17:  "IPPROTO_UDP",
		41:  "IPPROTO_IPV6",
		58:  "IPPROTO_ICMPV6",
		255: "IPPROTO_RAW",
	},
}

// MsgFlags decodes MSG_* bit-sets on send*/recv* and in msghdr.msg_flags.
var MsgFlags = FlagSet{
	Flags: []Flag{
		{0x1, "MSG_OOB"},
		{0x2, "MSG_PEEK"},
		{0x4, "MSG_DONTROUTE"},
		{0x8, "MSG_EOR"},
		{0x10, "MSG_TRUNC"},
		{0x20, "MSG_CTRUNC"},
		{0x40, "MSG_WAITALL"},
		{0x80, "MSG_DONTWAIT"},
		{0x100, "MSG_EOF"},
		{0x80000, "MSG_NOSIGNAL"},
	},
}

// SocketLevels decodes the level argument of get/setsockopt.
var SocketLevels = Enum{
	Prefix: "SOL",
	Values: map[int64]string{
		0:      "SOL_LOCAL",
		0xffff: "SOL_SOCKET",
	},
}

// SocketOptions decodes SO_* option names at SOL_SOCKET level.
var SocketOptions = Enum{
	Prefix: "SO",
	Values: map[int64]string{
		0x0001: "SO_DEBUG",
		0x0002: "SO_ACCEPTCONN",
		0x0004: "SO_REUSEADDR",
		0x0008: "SO_KEEPALIVE",
		0x0010: "SO_DONTROUTE",
		0x0020: "SO_BROADCAST",
		0x0080: "SO_LINGER",
		0x0100: "SO_OOBINLINE",
		0x0200: "SO_REUSEPORT",
		0x0400: "SO_TIMESTAMP",
		0x1001: "SO_SNDBUF",
		0x1002: "SO_RCVBUF",
		0x1003: "SO_SNDLOWAT",
		0x1004: "SO_RCVLOWAT",
		0x1005: "SO_SNDTIMEO",
		0x1006: "SO_RCVTIMEO",
		0x1007: "SO_ERROR",
		0x1008: "SO_TYPE",
		0x1022: "SO_NOSIGPIPE",
		0x1080: "SO_LINGER_SEC",
	},
}

// ShutdownHow decodes the how argument of shutdown.
var ShutdownHow = Enum{
	Prefix: "SHUT",
	Values: map[int64]string{
		0: "SHUT_RD",
		1: "SHUT_WR",
		2: "SHUT_RDWR",
	},
}
