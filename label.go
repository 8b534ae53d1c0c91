package quicversion

import (
	"fmt"
	"strings"
)

// VersionLabel is the 32-bit version identifier carried in packet headers
// and negotiation lists. Labels are serialized big-endian, so the label for
// Q043 reads as the ASCII bytes 'Q' '0' '4' '3' on the wire.
type VersionLabel uint32

// makeVersionLabel packs the four on-the-wire bytes of a label.
func makeVersionLabel(a, b, c, d byte) VersionLabel {
	return VersionLabel(a)<<24 | VersionLabel(b)<<16 | VersionLabel(c)<<8 | VersionLabel(d)
}

// Label returns the wire label of a supported version. Legacy versions use
// their ASCII tag, IETF drafts the 0xff0000 prefix plus the draft number,
// and the reserved negotiation version a freshly greased label. Any other
// version is a caller bug and panics.
func (v Version) Label() VersionLabel {
	switch v {
	case VersionDraft29:
		return makeVersionLabel(0xff, 0x00, 0x00, 29)
	case VersionT051:
		return makeVersionLabel('T', '0', '5', '1')
	case VersionQ050:
		return makeVersionLabel('Q', '0', '5', '0')
	case VersionQ046:
		return makeVersionLabel('Q', '0', '4', '6')
	case VersionQ043:
		return makeVersionLabel('Q', '0', '4', '3')
	case VersionReservedForNegotiation:
		return greaseLabel()
	}
	panic(fmt.Sprintf("quicversion: no label for unsupported version %s %s", v.Handshake, v.Transport))
}

// Label returns the wire label of the QUIC Crypto pairing of a legacy
// transport revision, and panics for revisions that never had one.
func (tv TransportVersion) Label() VersionLabel {
	return Version{Handshake: HandshakeQUICCrypto, Transport: tv}.Label()
}

// LabelsForVersions encodes each version in order.
func LabelsForVersions(versions []Version) []VersionLabel {
	labels := make([]VersionLabel, len(versions))
	for i, v := range versions {
		labels[i] = v.Label()
	}
	return labels
}

// ParseVersionLabel resolves a wire label received from a peer. Labels that
// do not match a supported version resolve to VersionUnsupported; peer
// bytes never panic.
func ParseVersionLabel(label VersionLabel) Version {
	for _, v := range supportedVersions {
		if label == v.Label() {
			return v
		}
	}
	return VersionUnsupported
}

// String renders the label as its four ASCII characters when every byte is
// printable, otherwise as eight hex digits in wire order.
func (l VersionLabel) String() string {
	chars := [4]byte{byte(l >> 24), byte(l >> 16), byte(l >> 8), byte(l)}
	for _, c := range chars {
		if c < 0x20 || c > 0x7e {
			return fmt.Sprintf("%08x", uint32(l))
		}
	}
	return string(chars[:])
}

// LabelVectorToString renders labels for logs, writing "..." in place of
// every label past the skipAfterNth index. The cap keeps log lines bounded
// when a peer sends an arbitrarily long negotiation list.
func LabelVectorToString(labels []VersionLabel, separator string, skipAfterNth int) string {
	var b strings.Builder
	for i, label := range labels {
		if i != 0 {
			b.WriteString(separator)
		}
		if i > skipAfterNth {
			b.WriteString("...")
			break
		}
		b.WriteString(label.String())
	}
	return b.String()
}

// UsesFourBitConnectionIDLength reports whether the label belongs to the
// closed historical set that encoded connection ID lengths in a 4-bit
// header field: Q044 through Q048, T048, and IETF drafts 11 through 21.
// None of those versions is supported anymore, but version negotiation
// packets sent for them still need the old encoding.
func (l VersionLabel) UsesFourBitConnectionIDLength() bool {
	for c := byte('4'); c <= '8'; c++ {
		if l == makeVersionLabel('Q', '0', '4', c) {
			return true
		}
	}
	if l == makeVersionLabel('T', '0', '4', '8') {
		return true
	}
	for draft := byte(11); draft <= 21; draft++ {
		if l == makeVersionLabel(0xff, 0x00, 0x00, draft) {
			return true
		}
	}
	return false
}
