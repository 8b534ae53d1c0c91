package quicgo

import (
	"testing"

	"github.com/quic-go/quic-go"
	"github.com/stretchr/testify/assert"

	quicversion "github.com/OkutaniDaichi0106/goquicversion"
)

func TestVersions(t *testing.T) {
	tests := map[string]struct {
		versions []quicversion.Version
		want     []quic.Version
	}{
		"full catalog keeps only h3 versions": {
			versions: quicversion.SupportedVersions(),
			want:     []quic.Version{quic.Version(0xff00001d)},
		},
		"google era versions have no equivalent": {
			versions: []quicversion.Version{quicversion.VersionQ043, quicversion.VersionQ050},
			want:     []quic.Version{},
		},
		"empty": {
			versions: nil,
			want:     []quic.Version{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Versions(tt.versions))
		})
	}
}

func TestCurrentVersions(t *testing.T) {
	gate := quicversion.NewVersionConfig()
	assert.Equal(t, []quic.Version{quic.Version(0xff00001d)}, CurrentVersions(gate))

	gate.Disable(quicversion.VersionDraft29)
	assert.Empty(t, CurrentVersions(gate))
}

func TestResolve(t *testing.T) {
	tests := map[string]struct {
		number quic.Version
		want   quicversion.Version
		ok     bool
	}{
		"draft29": {
			number: quic.Version(0xff00001d),
			want:   quicversion.VersionDraft29,
			ok:     true,
		},
		"quic v1 is outside the catalog": {
			number: quic.Version1,
			want:   quicversion.VersionUnsupported,
		},
		"quic v2 is outside the catalog": {
			number: quic.Version2,
			want:   quicversion.VersionUnsupported,
		},
		"google era numbers do not resolve": {
			number: quic.Version(0x51303433),
			want:   quicversion.VersionUnsupported,
		},
		"greased": {
			number: quic.Version(0xda5a3a3a),
			want:   quicversion.VersionUnsupported,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := Resolve(tt.number)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
