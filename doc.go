// Package quicversion implements the version identity, capability, and
// negotiation layer of a QUIC transport.
//
// The package knows every wire-protocol revision the transport can speak,
// from the legacy Google QUIC revisions (Q043 through Q050, T051) to IETF
// QUIC draft-29. It converts versions to and from their 32-bit wire labels,
// answers per-version capability questions (framing, header protection,
// handshake behaviors), filters the supported set through an enablement
// gate, and generates greased reserved labels that keep peers from
// ossifying on today's version list.
//
// # Key Features
//
//   - Fixed, ordered catalog of supported versions with named accessors
//   - Per-version capability predicates resolved from protocol history
//   - Wire-label encoding, decoding, and diagnostic rendering
//   - Negotiation filtering through a pluggable enablement gate
//   - Version token and list parsing for configuration and ALPN input
//   - Randomized reserved labels for negotiation greasing
//
// # Basic Usage
//
// To restrict negotiation to the versions an operator enabled:
//
//	config := quicversion.NewVersionConfig()
//	config.Disable(quicversion.VersionQ043)
//	versions := quicversion.CurrentSupportedVersions(config)
//
// To resolve a peer-announced wire label:
//
//	version := quicversion.ParseVersionLabel(label)
//	if version == quicversion.VersionUnsupported {
//	    // fall back to version negotiation
//	}
//
// # Failure Model
//
// Operations split along the trust boundary. Parsing peer or operator
// input (ParseVersionLabel, ParseVersion, ParseVersions) never panics and
// degrades to VersionUnsupported. Capability and label queries on versions
// outside the supported list are caller bugs and panic, so a version added
// to the catalog without answers cannot slip through silently.
//
// # Concurrency
//
// The catalog is immutable after initialization and every operation is a
// pure function over it, safe for any number of concurrent callers.
// GreaseSource serializes reads of its randomness source internally.
//
// For more information, visit: https://github.com/OkutaniDaichi0106/goquicversion
package quicversion
