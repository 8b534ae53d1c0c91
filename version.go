package quicversion

import (
	"fmt"
	"strings"
)

// TransportVersion identifies a revision of the QUIC wire format.
type TransportVersion uint32

const (
	// TransportUnsupported is the sentinel for "no transport version".
	TransportUnsupported TransportVersion = 0

	/*
	 * Legacy Google revisions
	 * The value matches the decimal tag in the wire label (Q043 -> 43).
	 */
	Transport43 TransportVersion = 43
	Transport46 TransportVersion = 46
	Transport50 TransportVersion = 50
	Transport51 TransportVersion = 51

	/*
	 * IETF draft revisions
	 * The value is the draft number plus 44, so drafts sort after every
	 * legacy revision they postdate.
	 */
	TransportDraft29 TransportVersion = 73

	// TransportReservedForNegotiation marks the randomized slot advertised
	// alongside real versions to keep peers honest about negotiation.
	TransportReservedForNegotiation TransportVersion = 999
)

// HandshakeProtocol identifies the cryptographic handshake a version runs.
type HandshakeProtocol uint8

const (
	HandshakeUnsupported HandshakeProtocol = iota
	HandshakeQUICCrypto
	HandshakeTLS13
)

// Version pairs a handshake protocol with a transport revision. Versions are
// compared structurally: two values denote the same version exactly when
// both fields match.
type Version struct {
	Handshake HandshakeProtocol
	Transport TransportVersion
}

// Go has no struct constants, so the named versions below are variables.
// Treat them as read-only: the catalog and the per-version switches are
// built against their initial values.
var (
	// VersionDraft29 is IETF QUIC draft-29 over the TLS 1.3 handshake.
	VersionDraft29 = Version{Handshake: HandshakeTLS13, Transport: TransportDraft29}

	// VersionT051 is Google revision 51 over the TLS 1.3 handshake.
	VersionT051 = Version{Handshake: HandshakeTLS13, Transport: Transport51}

	// VersionQ050 is Google revision 50 over the QUIC Crypto handshake.
	VersionQ050 = Version{Handshake: HandshakeQUICCrypto, Transport: Transport50}

	// VersionQ046 is Google revision 46 over the QUIC Crypto handshake.
	VersionQ046 = Version{Handshake: HandshakeQUICCrypto, Transport: Transport46}

	// VersionQ043 is Google revision 43 over the QUIC Crypto handshake.
	VersionQ043 = Version{Handshake: HandshakeQUICCrypto, Transport: Transport43}

	// VersionUnsupported is returned wherever peer or operator input does
	// not resolve to a supported version.
	VersionUnsupported = Version{Handshake: HandshakeUnsupported, Transport: TransportUnsupported}

	// VersionReservedForNegotiation stands for the greased version slot; its
	// wire label is randomized per encoding.
	VersionReservedForNegotiation = Version{Handshake: HandshakeUnsupported, Transport: TransportReservedForNegotiation}
)

// numSupportedVersions pins the size of the supported-version list. The
// exhaustive switches in Label, VersionConfig.IsEnabled and
// VersionConfig.set are written against exactly this many versions and
// panic past it, so a new version cannot land without touching each of them.
const numSupportedVersions = 5

// supportedVersions holds every version this package can negotiate, most
// preferred first. The array is never mutated after initialization.
var supportedVersions = [numSupportedVersions]Version{
	VersionDraft29,
	VersionT051,
	VersionQ050,
	VersionQ046,
	VersionQ043,
}

// SupportedVersions returns all supported versions, most preferred first.
// The returned slice is the caller's to modify.
func SupportedVersions() []Version {
	versions := make([]Version, numSupportedVersions)
	copy(versions, supportedVersions[:])
	return versions
}

// SupportedTransportVersions returns the transport revision of each
// supported version, most preferred first.
func SupportedTransportVersions() []TransportVersion {
	transports := make([]TransportVersion, numSupportedVersions)
	for i, v := range supportedVersions {
		transports[i] = v.Transport
	}
	return transports
}

// SupportedVersionsWithQUICCrypto returns the supported versions that run
// the QUIC Crypto handshake, most preferred first.
func SupportedVersionsWithQUICCrypto() []Version {
	versions := make([]Version, 0, numSupportedVersions)
	for _, v := range supportedVersions {
		if v.Handshake == HandshakeQUICCrypto {
			versions = append(versions, v)
		}
	}
	if len(versions) == 0 {
		panic("quicversion: no supported version uses QUIC Crypto")
	}
	return versions
}

// SupportedVersionsWithTLS returns the supported versions that run the
// TLS 1.3 handshake, most preferred first.
func SupportedVersionsWithTLS() []Version {
	versions := make([]Version, 0, numSupportedVersions)
	for _, v := range supportedVersions {
		if v.Handshake == HandshakeTLS13 {
			versions = append(versions, v)
		}
	}
	if len(versions) == 0 {
		panic("quicversion: no supported version uses TLS")
	}
	return versions
}

// LegacyVersionForEncapsulation returns the version spoken on the outer
// connection of legacy QUIC encapsulation.
func LegacyVersionForEncapsulation() Version {
	return VersionQ043
}

// TransportVersions extracts the transport revision of each version,
// preserving order.
func TransportVersions(versions []Version) []TransportVersion {
	transports := make([]TransportVersion, len(versions))
	for i, v := range versions {
		transports[i] = v.Transport
	}
	return transports
}

// IsKnown reports whether v is one of the supported versions. Capability
// and label queries require a known version.
func (v Version) IsKnown() bool {
	for _, supported := range supportedVersions {
		if v == supported {
			return true
		}
	}
	return false
}

// IsValid reports whether the handshake/transport pairing ever shipped.
// Valid is wider than known: revision 51 over QUIC Crypto validates even
// though only its TLS pairing is in the supported list.
func (v Version) IsValid() bool {
	switch v.Transport {
	case TransportUnsupported, TransportReservedForNegotiation:
	default:
		recognized := false
		for _, supported := range supportedVersions {
			if v.Transport == supported.Transport {
				recognized = true
				break
			}
		}
		if !recognized {
			return false
		}
	}
	switch v.Handshake {
	case HandshakeUnsupported:
		return v.Transport == TransportUnsupported ||
			v.Transport == TransportReservedForNegotiation
	case HandshakeQUICCrypto:
		return v.Transport != TransportUnsupported &&
			v.Transport != TransportReservedForNegotiation &&
			v.Transport != TransportDraft29
	case HandshakeTLS13:
		return v.Transport != TransportUnsupported &&
			v.Transport != TransportReservedForNegotiation &&
			v.Transport.UsesCryptoFrames()
	}
	return false
}

func (p HandshakeProtocol) String() string {
	switch p {
	case HandshakeUnsupported:
		return "unsupported"
	case HandshakeQUICCrypto:
		return "quic-crypto"
	case HandshakeTLS13:
		return "tls1.3"
	}
	return fmt.Sprintf("unknown(%d)", uint8(p))
}

func (tv TransportVersion) String() string {
	switch tv {
	case TransportUnsupported:
		return "unsupported"
	case Transport43:
		return "43"
	case Transport46:
		return "46"
	case Transport50:
		return "50"
	case Transport51:
		return "51"
	case TransportDraft29:
		return "draft29"
	case TransportReservedForNegotiation:
		return "reserved"
	}
	return fmt.Sprintf("unknown(%d)", uint32(tv))
}

// String renders the version the way it is logged: "0" for the unsupported
// sentinel, "draft29" for the IETF draft, otherwise the wire-label text.
// The reserved version renders as a fresh grease label.
func (v Version) String() string {
	switch {
	case v == VersionUnsupported:
		return "0"
	case v == VersionDraft29:
		return "draft29"
	case v == VersionReservedForNegotiation || v.IsKnown():
		return v.Label().String()
	}
	return "0"
}

// TransportVersionVectorToString renders transport revisions as a
// comma-separated list for logs.
func TransportVersionVectorToString(transports []TransportVersion) string {
	var b strings.Builder
	for i, tv := range transports {
		if i != 0 {
			b.WriteString(",")
		}
		b.WriteString(tv.String())
	}
	return b.String()
}

// VersionVectorToString renders versions for logs, writing "..." in place
// of every version past the skipAfterNth index. The cap keeps log lines
// bounded when a peer sends an arbitrarily long negotiation list.
func VersionVectorToString(versions []Version, separator string, skipAfterNth int) string {
	var b strings.Builder
	for i, v := range versions {
		if i != 0 {
			b.WriteString(separator)
		}
		if i > skipAfterNth {
			b.WriteString("...")
			break
		}
		b.WriteString(v.String())
	}
	return b.String()
}
