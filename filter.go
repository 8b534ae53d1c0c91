package quicversion

import "fmt"

// VersionGate reports whether a supported version is currently enabled for
// negotiation. Implementations own their own synchronization; filtering
// reads the gate once per version per call and caches nothing, so a gate
// backed by live configuration takes effect on the next call.
type VersionGate interface {
	IsEnabled(Version) bool
}

// VersionConfig enables or disables each supported version individually.
// It carries exactly one field per supported version; asking it about any
// other version panics, so a new version cannot ship without an explicit
// enablement decision. The zero value disables every version.
type VersionConfig struct {
	EnableDraft29 bool
	EnableT051    bool
	EnableQ050    bool
	EnableQ046    bool
	EnableQ043    bool
}

var _ VersionGate = (*VersionConfig)(nil)

// NewVersionConfig returns a configuration with every supported version
// enabled.
func NewVersionConfig() *VersionConfig {
	return &VersionConfig{
		EnableDraft29: true,
		EnableT051:    true,
		EnableQ050:    true,
		EnableQ046:    true,
		EnableQ043:    true,
	}
}

// IsEnabled implements VersionGate.
func (c *VersionConfig) IsEnabled(v Version) bool {
	switch v {
	case VersionDraft29:
		return c.EnableDraft29
	case VersionT051:
		return c.EnableT051
	case VersionQ050:
		return c.EnableQ050
	case VersionQ046:
		return c.EnableQ046
	case VersionQ043:
		return c.EnableQ043
	}
	panic(fmt.Sprintf("quicversion: version %s %s has no enable flag", v.Handshake, v.Transport))
}

// Enable turns a supported version on.
func (c *VersionConfig) Enable(v Version) {
	c.set(v, true)
}

// Disable turns a supported version off.
func (c *VersionConfig) Disable(v Version) {
	c.set(v, false)
}

func (c *VersionConfig) set(v Version, enable bool) {
	switch v {
	case VersionDraft29:
		c.EnableDraft29 = enable
	case VersionT051:
		c.EnableT051 = enable
	case VersionQ050:
		c.EnableQ050 = enable
	case VersionQ046:
		c.EnableQ046 = enable
	case VersionQ043:
		c.EnableQ043 = enable
	default:
		verb := "disable"
		if enable {
			verb = "enable"
		}
		panic(fmt.Sprintf("quicversion: cannot %s version %s %s: no enable flag", verb, v.Handshake, v.Transport))
	}
}

// FilterSupportedVersions drops the versions the gate has disabled,
// preserving the order of the input. Versions outside the supported list
// have no enablement state and panic regardless of the gate.
func FilterSupportedVersions(versions []Version, gate VersionGate) []Version {
	filtered := make([]Version, 0, len(versions))
	for _, v := range versions {
		if !v.IsKnown() {
			panic(fmt.Sprintf("quicversion: version %s %s has no enable flag", v.Handshake, v.Transport))
		}
		if gate.IsEnabled(v) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// CurrentSupportedVersions returns the supported versions the gate has
// enabled, most preferred first.
func CurrentSupportedVersions(gate VersionGate) []Version {
	return FilterSupportedVersions(SupportedVersions(), gate)
}

// CurrentSupportedVersionsWithQUICCrypto returns the enabled versions that
// run the QUIC Crypto handshake, most preferred first. The result is empty
// when the gate has disabled them all.
func CurrentSupportedVersionsWithQUICCrypto(gate VersionGate) []Version {
	versions := make([]Version, 0, numSupportedVersions)
	for _, v := range CurrentSupportedVersions(gate) {
		if v.Handshake == HandshakeQUICCrypto {
			versions = append(versions, v)
		}
	}
	return versions
}

// CurrentSupportedVersionsWithTLS returns the enabled versions that run the
// TLS 1.3 handshake, most preferred first. The result is empty when the
// gate has disabled them all.
func CurrentSupportedVersionsWithTLS(gate VersionGate) []Version {
	versions := make([]Version, 0, numSupportedVersions)
	for _, v := range CurrentSupportedVersions(gate) {
		if v.Handshake == HandshakeTLS13 {
			versions = append(versions, v)
		}
	}
	return versions
}

// VersionIsEnabled reports whether the gate currently has the version on.
// Versions outside the supported list are never enabled.
func VersionIsEnabled(v Version, gate VersionGate) bool {
	return containsVersion(CurrentSupportedVersions(gate), v)
}
