package structs

import (
	"fmt"
	"net/netip"

	"github.com/mstrace/mstrace/symbols"
)

// Sockaddr renders a struct sockaddr, dispatching on sa_family. Darwin
// socket addresses lead with a one-byte length then a one-byte family.
func (r *Renderer) Sockaddr(addr uint64) (string, error) {
	head, truncated, err := r.mem.ReadBytes(addr, 2)
	if err != nil {
		return "", err
	}

	if truncated {
		return Ptr(addr), nil
	}

	family := int64(head[1])

	switch family {
	case symbols.AfUnix:
		return r.sockaddrUn(addr)
	case symbols.AfInet:
		return r.sockaddrIn(addr)
	case symbols.AfInet6:
		return r.sockaddrIn6(addr)
	default:
		var f fields
		f.add("sa_family", symbols.AddressFamilies.Decode(family))

		return f.String(), nil
	}
}

// sockaddr_un: len, family, then a 104-byte path.
func (r *Renderer) sockaddrUn(addr uint64) (string, error) {
	raw, truncated, err := r.mem.ReadBytes(addr, 2+104)
	if err != nil {
		return "", err
	}

	var f fields

	f.add("sa_family", "AF_UNIX")

	if !truncated {
		if path := cstr(raw[2:]); path != "" {
			f.add("sun_path", `"`+path+`"`)
		}
	}

	return f.String(), nil
}

// sockaddr_in: len, family, port (network order), 4-byte address.
func (r *Renderer) sockaddrIn(addr uint64) (string, error) {
	raw, truncated, err := r.mem.ReadBytes(addr, 8)
	if err != nil {
		return "", err
	}

	if truncated {
		return Ptr(addr), nil
	}

	var f fields

	f.add("sa_family", "AF_INET")

	if port := uint16(raw[2])<<8 | uint16(raw[3]); port != 0 {
		f.add("sin_port", fmt.Sprintf("htons(%d)", port))
	}

	ip, _ := netip.AddrFromSlice(raw[4:8])
	f.add("sin_addr", fmt.Sprintf("inet_addr(%q)", ip.String()))

	return f.String(), nil
}

// sockaddr_in6: len, family, port, flowinfo, 16-byte address, scope id.
func (r *Renderer) sockaddrIn6(addr uint64) (string, error) {
	raw, truncated, err := r.mem.ReadBytes(addr, 28)
	if err != nil {
		return "", err
	}

	if truncated {
		return Ptr(addr), nil
	}

	var f fields

	f.add("sa_family", "AF_INET6")

	if port := uint16(raw[2])<<8 | uint16(raw[3]); port != 0 {
		f.add("sin6_port", fmt.Sprintf("htons(%d)", port))
	}

	ip, _ := netip.AddrFromSlice(raw[8:24])
	f.add("sin6_addr", fmt.Sprintf("inet_pton(AF_INET6, %q)", ip.String()))

	if scope := u32(raw[24:28]); scope != 0 {
		f.addInt("sin6_scope_id", int64(scope))
	}

	return f.String(), nil
}
