package quicversion

import "fmt"

// Capability queries are only answerable for supported versions. Asking
// about any other version is a caller bug and panics rather than guessing,
// so a missing answer for a newly added version surfaces immediately.
func (v Version) assertKnown() {
	if !v.IsKnown() {
		panic(fmt.Sprintf("quicversion: capability query on unsupported version %s %s", v.Handshake, v.Transport))
	}
}

// UsesTLS reports whether the version handshakes with TLS 1.3.
func (v Version) UsesTLS() bool {
	v.assertKnown()
	return v.Handshake == HandshakeTLS13
}

// UsesQUICCrypto reports whether the version handshakes with QUIC Crypto.
func (v Version) UsesQUICCrypto() bool {
	v.assertKnown()
	return v.Handshake == HandshakeQUICCrypto
}

// KnowsWhichDecrypterToUse reports whether receivers can tell from the
// packet header which decrypter applies, instead of trial decryption.
func (v Version) KnowsWhichDecrypterToUse() bool {
	v.assertKnown()
	return v.Transport > Transport46
}

// UsesInitialObfuscators reports whether Initial packets are obfuscated
// with keys derived from the version salt. Obfuscators arrived with
// revision 50.
func (v Version) UsesInitialObfuscators() bool {
	v.assertKnown()
	return v.Transport > Transport46
}

// AllowsLowFlowControlLimits reports whether the version honors flow
// control limits below the defaults. IETF versions do.
func (v Version) AllowsLowFlowControlLimits() bool {
	v.assertKnown()
	return v.UsesHTTP3()
}

// HasHeaderProtection reports whether packet headers are protected.
// Header protection arrived with revision 50.
func (v Version) HasHeaderProtection() bool {
	v.assertKnown()
	return v.Transport > Transport46
}

// SupportsRetry reports whether the version supports Retry packets.
// Retry arrived with revision 47.
func (v Version) SupportsRetry() bool {
	v.assertKnown()
	return v.Transport > Transport46
}

// HasRetryIntegrityTag reports whether Retry packets carry an integrity
// tag over the original connection ID.
func (v Version) HasRetryIntegrityTag() bool {
	v.assertKnown()
	return v.Handshake == HandshakeTLS13
}

// SendsVariableLengthPacketNumberInLongHeader reports whether long headers
// encode packet numbers with variable length.
func (v Version) SendsVariableLengthPacketNumberInLongHeader() bool {
	v.assertKnown()
	return v.Transport > Transport46
}

// AllowsVariableLengthConnectionIDs reports whether connection IDs may be
// any length up to the limit, rather than exactly eight bytes.
func (v Version) AllowsVariableLengthConnectionIDs() bool {
	v.assertKnown()
	return v.Transport.AllowsVariableLengthConnectionIDs()
}

// SupportsClientConnectionIDs reports whether the client can require a
// connection ID of its own. Client connection IDs arrived with revision 49.
func (v Version) SupportsClientConnectionIDs() bool {
	v.assertKnown()
	return v.Transport > Transport46
}

// HasLengthPrefixedConnectionIDs reports whether long headers carry
// length-prefixed connection IDs.
func (v Version) HasLengthPrefixedConnectionIDs() bool {
	v.assertKnown()
	return v.Transport.HasLengthPrefixedConnectionIDs()
}

// SupportsAntiAmplificationLimit reports whether servers bound the data
// sent to an unvalidated address. IETF versions do.
func (v Version) SupportsAntiAmplificationLimit() bool {
	v.assertKnown()
	return v.UsesHTTP3()
}

// CanSendCoalescedPackets reports whether multiple packets may share one
// UDP datagram. Coalescing needs long-header length fields and the TLS
// handshake.
func (v Version) CanSendCoalescedPackets() bool {
	v.assertKnown()
	return v.Transport.HasLongHeaderLengths() && v.Handshake == HandshakeTLS13
}

// SupportsGoogleAltSvcFormat reports whether the version is advertised in
// the Google Alt-Svc list format.
func (v Version) SupportsGoogleAltSvcFormat() bool {
	v.assertKnown()
	return v.Transport.SupportsGoogleAltSvcFormat()
}

// HasIETFInvariantHeader reports whether packet headers follow the IETF
// invariants rather than the original Google layout.
func (v Version) HasIETFInvariantHeader() bool {
	v.assertKnown()
	return v.Transport.HasIETFInvariantHeader()
}

// SupportsMessageFrames reports whether the version supports MESSAGE
// frames.
func (v Version) SupportsMessageFrames() bool {
	v.assertKnown()
	return v.Transport.SupportsMessageFrames()
}

// UsesHTTP3 reports whether application data rides HTTP/3 rather than
// Google QUIC framing.
func (v Version) UsesHTTP3() bool {
	v.assertKnown()
	return v.Transport.UsesHTTP3()
}

// HasLongHeaderLengths reports whether long headers carry explicit
// payload-length fields.
func (v Version) HasLongHeaderLengths() bool {
	v.assertKnown()
	return v.Transport.HasLongHeaderLengths()
}

// UsesCryptoFrames reports whether handshake data rides in CRYPTO frames
// rather than a dedicated crypto stream.
func (v Version) UsesCryptoFrames() bool {
	v.assertKnown()
	return v.Transport.UsesCryptoFrames()
}

// HasIETFQUICFrames reports whether the version uses the IETF frame set
// and numbering.
func (v Version) HasIETFQUICFrames() bool {
	v.assertKnown()
	return v.Transport.HasIETFQUICFrames()
}

// HasHandshakeDone reports whether the server confirms the handshake with
// HANDSHAKE_DONE. Supported by T051 and IETF drafts since draft-25.
func (v Version) HasHandshakeDone() bool {
	v.assertKnown()
	return v.UsesTLS()
}

// HasVarIntTransportParams reports whether transport parameters use
// variable-length integer encoding. Supported by T051 and IETF drafts
// since draft-27.
func (v Version) HasVarIntTransportParams() bool {
	v.assertKnown()
	return v.UsesTLS()
}

// AuthenticatesHandshakeConnectionIDs reports whether the connection IDs
// used during the handshake are authenticated in transport parameters.
// Supported by T051 and IETF drafts since draft-28.
func (v Version) AuthenticatesHandshakeConnectionIDs() bool {
	v.assertKnown()
	return v.UsesTLS()
}

/*
 * Transport-revision predicates
 * These answer for any revision, including ones outside the supported
 * list; header and negotiation code applies them to peer-announced
 * revisions before any version is agreed on.
 */

// UsesCryptoFrames reports whether handshake data rides in CRYPTO frames.
func (tv TransportVersion) UsesCryptoFrames() bool {
	return tv > Transport46
}

// UsesHTTP3 reports whether application data rides HTTP/3.
func (tv TransportVersion) UsesHTTP3() bool {
	return tv >= TransportDraft29
}

// HasLongHeaderLengths reports whether long headers carry explicit
// payload-length fields. Length fields arrived with revision 49.
func (tv TransportVersion) HasLongHeaderLengths() bool {
	return tv > Transport46
}

// HasIETFQUICFrames reports whether the revision uses the IETF frame set.
func (tv TransportVersion) HasIETFQUICFrames() bool {
	return tv.UsesHTTP3()
}

// HasIETFInvariantHeader reports whether headers follow the IETF
// invariants.
func (tv TransportVersion) HasIETFInvariantHeader() bool {
	return tv > Transport43
}

// SupportsMessageFrames reports whether the revision supports MESSAGE
// frames.
func (tv TransportVersion) SupportsMessageFrames() bool {
	return tv > Transport43
}

// SupportsGoogleAltSvcFormat reports whether the revision is advertised in
// the Google Alt-Svc list format.
func (tv TransportVersion) SupportsGoogleAltSvcFormat() bool {
	return tv <= Transport46
}

// AllowsVariableLengthConnectionIDs reports whether connection IDs may be
// any length up to the limit.
func (tv TransportVersion) AllowsVariableLengthConnectionIDs() bool {
	return tv > Transport46
}

// HasLengthPrefixedConnectionIDs reports whether long headers carry
// length-prefixed connection IDs. The prefix arrived with revision 49.
func (tv TransportVersion) HasLengthPrefixedConnectionIDs() bool {
	return tv > Transport46
}
