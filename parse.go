package quicversion

import (
	"strconv"
	"strings"
)

// ParseVersion resolves a version token from configuration, command line,
// or ALPN input. Tokens are tried in order: a positive decimal number in
// 32-bit range names a legacy QUIC Crypto revision, then the canonical
// string, ALPN token, or bare revision number of each supported version,
// then the wire-label text of HTTP/3-capable versions. Anything else,
// including the empty string, resolves to VersionUnsupported; operator
// input never panics.
func ParseVersion(token string) Version {
	if token == "" {
		return VersionUnsupported
	}

	if n, err := strconv.ParseInt(token, 10, 32); err == nil && n > 0 {
		transport := TransportVersion(n)
		recognized := false
		for _, supported := range supportedVersions {
			if transport == supported.Transport {
				recognized = true
				break
			}
		}
		v := Version{Handshake: HandshakeQUICCrypto, Transport: transport}
		if !recognized || !v.IsValid() {
			return VersionUnsupported
		}
		return v
	}

	for _, v := range supportedVersions {
		if token == v.String() || token == v.ALPN() ||
			(v.Handshake == HandshakeQUICCrypto && token == v.Transport.String()) {
			return v
		}
	}

	for _, v := range supportedVersions {
		if v.UsesHTTP3() && token == v.Label().String() {
			return v
		}
	}

	return VersionUnsupported
}

// ParseVersions resolves a comma-separated version list. Whitespace around
// tokens is ignored, tokens that do not resolve to a supported version are
// dropped, and repeats keep only their first occurrence. Order is
// preserved.
func ParseVersions(list string) []Version {
	tokens := strings.Split(list, ",")
	versions := make([]Version, 0, len(tokens))
	for _, token := range tokens {
		v := ParseVersion(strings.TrimSpace(token))
		if !v.IsKnown() || containsVersion(versions, v) {
			continue
		}
		versions = append(versions, v)
	}
	return versions
}

func containsVersion(versions []Version, v Version) bool {
	for _, seen := range versions {
		if seen == v {
			return true
		}
	}
	return false
}
