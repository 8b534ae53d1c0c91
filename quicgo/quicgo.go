// Package quicgo bridges the version catalog to quic-go's version numbers.
//
// Only versions that use the IETF long header invariants are expressible
// on a quic-go connection. Versions from the Google wire format era have
// no quic-go equivalent and are silently skipped.
package quicgo

import (
	"github.com/quic-go/quic-go"

	quicversion "github.com/OkutaniDaichi0106/goquicversion"
)

// Versions maps each HTTP/3-capable version to its wire version number.
// Versions that quic-go cannot express are skipped.
func Versions(versions []quicversion.Version) []quic.Version {
	mapped := make([]quic.Version, 0, len(versions))
	for _, v := range versions {
		if !v.UsesHTTP3() {
			continue
		}
		mapped = append(mapped, quic.Version(v.Label()))
	}
	return mapped
}

// CurrentVersions maps the enabled HTTP/3-capable versions, in preference
// order, to quic-go version numbers. The result is suitable for
// quic.Config.Versions.
func CurrentVersions(gate quicversion.VersionGate) []quic.Version {
	return Versions(quicversion.CurrentSupportedVersions(gate))
}

// Resolve looks up the catalog version a quic-go version number belongs to.
// It reports false for version numbers outside the catalog and for catalog
// versions that predate HTTP/3.
func Resolve(qv quic.Version) (quicversion.Version, bool) {
	v := quicversion.ParseVersionLabel(quicversion.VersionLabel(qv))
	if !v.IsKnown() || !v.UsesHTTP3() {
		return quicversion.VersionUnsupported, false
	}
	return v, true
}
