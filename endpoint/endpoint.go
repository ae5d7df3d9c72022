// File: endpoint/endpoint.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Endpoint representation collaborator: a closed variant over the
// address families the connect path supports. Each variant carries a
// fixed-size native address; conversion to the kernel layout goes
// through unix.Sockaddr so the connect syscall always receives the
// variant's exact native length, never a one-size constant.

package endpoint

import (
	"errors"
	"fmt"
	"net/netip"

	"golang.org/x/sys/unix"
)

// Family tags the address variant of an Endpoint.
type Family int

const (
	FamilyInvalid Family = iota
	FamilyIPv4
	FamilyIPv6
	FamilyUnix
)

// ErrInvalidEndpoint reports a zero or malformed endpoint that has no
// native representation.
var ErrInvalidEndpoint = errors.New("endpoint: no native address representation")

// Endpoint is one remote address in exactly one family. The zero value
// is invalid and rejected by Sockaddr.
type Endpoint struct {
	family Family
	addr4  [4]byte
	addr6  [16]byte
	zone   uint32
	port   uint16
	path   string
}

// IPv4 builds an IPv4 endpoint from a native 4-byte address and port.
func IPv4(addr [4]byte, port uint16) Endpoint {
	return Endpoint{family: FamilyIPv4, addr4: addr, port: port}
}

// IPv6 builds an IPv6 endpoint. zone is the scope identifier for
// link-local addresses, zero otherwise.
func IPv6(addr [16]byte, port uint16, zone uint32) Endpoint {
	return Endpoint{family: FamilyIPv6, addr6: addr, port: port, zone: zone}
}

// Unix builds a local-domain endpoint from a filesystem path.
func Unix(path string) Endpoint {
	return Endpoint{family: FamilyUnix, path: path}
}

// FromAddrPort builds an IPv4 or IPv6 endpoint from a parsed
// address:port pair, picking the variant from the address itself.
func FromAddrPort(ap netip.AddrPort) Endpoint {
	addr := ap.Addr()
	if addr.Is4() || addr.Is4In6() {
		return IPv4(addr.Unmap().As4(), ap.Port())
	}
	return IPv6(addr.As16(), ap.Port(), 0)
}

// Family returns the variant tag.
func (e Endpoint) Family() Family { return e.family }

// Sockaddr converts the endpoint into the kernel's native sockaddr for
// its family. The returned value carries the family-specific byte
// layout and true length; the unix package derives both from the
// concrete Sockaddr type, so no fixed-size assumption leaks into the
// connect call.
func (e Endpoint) Sockaddr() (unix.Sockaddr, error) {
	switch e.family {
	case FamilyIPv4:
		return &unix.SockaddrInet4{Port: int(e.port), Addr: e.addr4}, nil
	case FamilyIPv6:
		return &unix.SockaddrInet6{Port: int(e.port), Addr: e.addr6, ZoneId: e.zone}, nil
	case FamilyUnix:
		if e.path == "" {
			return nil, ErrInvalidEndpoint
		}
		return &unix.SockaddrUnix{Name: e.path}, nil
	}
	return nil, ErrInvalidEndpoint
}

// Network returns the family as a dial-style network name.
func (e Endpoint) Network() string {
	switch e.family {
	case FamilyIPv4:
		return "tcp4"
	case FamilyIPv6:
		return "tcp6"
	case FamilyUnix:
		return "unix"
	}
	return "invalid"
}

// String implements fmt.Stringer.
func (e Endpoint) String() string {
	switch e.family {
	case FamilyIPv4:
		return netip.AddrPortFrom(netip.AddrFrom4(e.addr4), e.port).String()
	case FamilyIPv6:
		return netip.AddrPortFrom(netip.AddrFrom16(e.addr6), e.port).String()
	case FamilyUnix:
		return e.path
	}
	return fmt.Sprintf("invalid endpoint (family %d)", int(e.family))
}
