package quicversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedVersions_Order(t *testing.T) {
	versions := SupportedVersions()

	require.Len(t, versions, numSupportedVersions)
	assert.Equal(t, []Version{
		VersionDraft29,
		VersionT051,
		VersionQ050,
		VersionQ046,
		VersionQ043,
	}, versions, "versions should be listed most preferred first")
}

func TestSupportedVersions_ReturnsCopy(t *testing.T) {
	versions := SupportedVersions()
	versions[0] = VersionQ043

	assert.Equal(t, VersionDraft29, SupportedVersions()[0], "mutating the returned slice should not affect the catalog")
}

func TestNamedVersions(t *testing.T) {
	assert.Equal(t, Version{Handshake: HandshakeTLS13, Transport: TransportDraft29}, VersionDraft29)
	assert.Equal(t, Version{Handshake: HandshakeTLS13, Transport: Transport51}, VersionT051)
	assert.Equal(t, Version{Handshake: HandshakeQUICCrypto, Transport: Transport50}, VersionQ050)
	assert.Equal(t, Version{Handshake: HandshakeQUICCrypto, Transport: Transport46}, VersionQ046)
	assert.Equal(t, Version{Handshake: HandshakeQUICCrypto, Transport: Transport43}, VersionQ043)
	assert.Equal(t, Version{Handshake: HandshakeUnsupported, Transport: TransportUnsupported}, VersionUnsupported)
	assert.Equal(t, Version{Handshake: HandshakeUnsupported, Transport: TransportReservedForNegotiation}, VersionReservedForNegotiation)
}

func TestSupportedTransportVersions(t *testing.T) {
	assert.Equal(t, []TransportVersion{
		TransportDraft29,
		Transport51,
		Transport50,
		Transport46,
		Transport43,
	}, SupportedTransportVersions())
}

func TestSupportedVersionsByHandshake(t *testing.T) {
	assert.Equal(t, []Version{VersionQ050, VersionQ046, VersionQ043}, SupportedVersionsWithQUICCrypto(),
		"QUIC Crypto versions should keep catalog order")
	assert.Equal(t, []Version{VersionDraft29, VersionT051}, SupportedVersionsWithTLS(),
		"TLS versions should keep catalog order")
}

func TestLegacyVersionForEncapsulation(t *testing.T) {
	assert.Equal(t, VersionQ043, LegacyVersionForEncapsulation())
}

func TestTransportVersions(t *testing.T) {
	versions := []Version{VersionT051, VersionQ043}

	assert.Equal(t, []TransportVersion{Transport51, Transport43}, TransportVersions(versions))
	assert.Empty(t, TransportVersions(nil))
}

func TestVersion_IsKnown(t *testing.T) {
	tests := map[string]struct {
		version Version
		want    bool
	}{
		"draft29":     {version: VersionDraft29, want: true},
		"t051":        {version: VersionT051, want: true},
		"q050":        {version: VersionQ050, want: true},
		"q046":        {version: VersionQ046, want: true},
		"q043":        {version: VersionQ043, want: true},
		"unsupported": {version: VersionUnsupported, want: false},
		"reserved":    {version: VersionReservedForNegotiation, want: false},
		"valid but unlisted": {
			version: Version{Handshake: HandshakeQUICCrypto, Transport: Transport51},
			want:    false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.version.IsKnown())
		})
	}
}

func TestVersion_IsValid(t *testing.T) {
	tests := map[string]struct {
		version Version
		want    bool
	}{
		"draft29":     {version: VersionDraft29, want: true},
		"t051":        {version: VersionT051, want: true},
		"q050":        {version: VersionQ050, want: true},
		"q046":        {version: VersionQ046, want: true},
		"q043":        {version: VersionQ043, want: true},
		"unsupported": {version: VersionUnsupported, want: true},
		"reserved":    {version: VersionReservedForNegotiation, want: true},
		"quic crypto 51 is valid though unlisted": {
			version: Version{Handshake: HandshakeQUICCrypto, Transport: Transport51},
			want:    true,
		},
		"quic crypto never pairs with draft29": {
			version: Version{Handshake: HandshakeQUICCrypto, Transport: TransportDraft29},
			want:    false,
		},
		"tls needs crypto frames": {
			version: Version{Handshake: HandshakeTLS13, Transport: Transport43},
			want:    false,
		},
		"tls 46 predates crypto frames": {
			version: Version{Handshake: HandshakeTLS13, Transport: Transport46},
			want:    false,
		},
		"tls 50 is valid though unlisted": {
			version: Version{Handshake: HandshakeTLS13, Transport: Transport50},
			want:    true,
		},
		"unsupported handshake with real transport": {
			version: Version{Handshake: HandshakeUnsupported, Transport: Transport46},
			want:    false,
		},
		"quic crypto with sentinel transport": {
			version: Version{Handshake: HandshakeQUICCrypto, Transport: TransportReservedForNegotiation},
			want:    false,
		},
		"transport that never shipped": {
			version: Version{Handshake: HandshakeQUICCrypto, Transport: 44},
			want:    false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.version.IsValid())
		})
	}
}

func TestHandshakeProtocol_String(t *testing.T) {
	assert.Equal(t, "unsupported", HandshakeUnsupported.String())
	assert.Equal(t, "quic-crypto", HandshakeQUICCrypto.String())
	assert.Equal(t, "tls1.3", HandshakeTLS13.String())
	assert.Equal(t, "unknown(7)", HandshakeProtocol(7).String())
}

func TestTransportVersion_String(t *testing.T) {
	tests := map[string]struct {
		transport TransportVersion
		want      string
	}{
		"unsupported": {transport: TransportUnsupported, want: "unsupported"},
		"43":          {transport: Transport43, want: "43"},
		"46":          {transport: Transport46, want: "46"},
		"50":          {transport: Transport50, want: "50"},
		"51":          {transport: Transport51, want: "51"},
		"draft29":     {transport: TransportDraft29, want: "draft29"},
		"reserved":    {transport: TransportReservedForNegotiation, want: "reserved"},
		"unknown":     {transport: TransportVersion(44), want: "unknown(44)"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.transport.String())
		})
	}
}

func TestVersion_String(t *testing.T) {
	tests := map[string]struct {
		version Version
		want    string
	}{
		"unsupported": {version: VersionUnsupported, want: "0"},
		"draft29":     {version: VersionDraft29, want: "draft29"},
		"t051":        {version: VersionT051, want: "T051"},
		"q050":        {version: VersionQ050, want: "Q050"},
		"q046":        {version: VersionQ046, want: "Q046"},
		"q043":        {version: VersionQ043, want: "Q043"},
		"valid but unlisted": {
			version: Version{Handshake: HandshakeQUICCrypto, Transport: Transport51},
			want:    "0",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.version.String())
		})
	}
}

func TestVersion_String_Reserved(t *testing.T) {
	s := VersionReservedForNegotiation.String()

	assert.NotEqual(t, "0", s, "reserved version should render its grease label")
	assert.NotEmpty(t, s)
}

func TestTransportVersionVectorToString(t *testing.T) {
	tests := map[string]struct {
		transports []TransportVersion
		want       string
	}{
		"empty":    {transports: nil, want: ""},
		"single":   {transports: []TransportVersion{Transport43}, want: "43"},
		"multiple": {transports: []TransportVersion{TransportDraft29, Transport46, Transport43}, want: "draft29,46,43"},
		"sentinel": {transports: []TransportVersion{TransportUnsupported, Transport50}, want: "unsupported,50"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, TransportVersionVectorToString(tt.transports))
		})
	}
}

func TestVersionVectorToString(t *testing.T) {
	tests := map[string]struct {
		versions     []Version
		separator    string
		skipAfterNth int
		want         string
	}{
		"empty": {
			versions:     nil,
			separator:    ",",
			skipAfterNth: 0,
			want:         "",
		},
		"single": {
			versions:     []Version{VersionDraft29},
			separator:    ",",
			skipAfterNth: 0,
			want:         "draft29",
		},
		"within cap": {
			versions:     []Version{VersionDraft29, VersionQ043},
			separator:    ",",
			skipAfterNth: 1,
			want:         "draft29,Q043",
		},
		"truncated after second": {
			versions:     []Version{VersionDraft29, VersionT051, VersionQ050, VersionQ046},
			separator:    ",",
			skipAfterNth: 1,
			want:         "draft29,T051,...",
		},
		"truncated after first": {
			versions:     []Version{VersionDraft29, VersionT051, VersionQ050},
			separator:    " ",
			skipAfterNth: 0,
			want:         "draft29 ...",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, VersionVectorToString(tt.versions, tt.separator, tt.skipAfterNth))
		})
	}
}
