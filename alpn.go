package quicversion

// ALPN returns the application protocol token advertised for the version
// during the TLS handshake. IETF draft-29 uses its registered "h3-29"
// token; every other version derives its token from the canonical version
// string.
func (v Version) ALPN() string {
	if v == VersionDraft29 {
		return "h3-29"
	}
	return "h3-" + v.String()
}

// ALPNs returns the ALPN token of each version in order, in the form
// tls.Config.NextProtos expects.
func ALPNs(versions []Version) []string {
	protos := make([]string, len(versions))
	for i, v := range versions {
		protos[i] = v.ALPN()
	}
	return protos
}

// SelectALPN picks the most preferred enabled version whose ALPN token the
// peer offered. ok is false when no offered token matches an enabled
// version.
func SelectALPN(offered []string, gate VersionGate) (v Version, ok bool) {
	for _, candidate := range CurrentSupportedVersions(gate) {
		for _, proto := range offered {
			if proto == candidate.ALPN() {
				return candidate, true
			}
		}
	}
	return VersionUnsupported, false
}
