package quicversion

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"
)

// Grease labels keep the low nibble of every byte at 0xa so analyzers can
// recognize the reserved slot, and randomize the high nibbles so peers
// cannot hard-code the one reserved value they saw yesterday. No supported
// version's label has 0xa in all four low nibbles, so a grease label never
// collides with a real one.
const (
	greaseRandomMask VersionLabel = 0xf0f0f0f0
	greaseMarker     VersionLabel = 0x0a0a0a0a

	// greaseFixedSeed replaces the random bits in deterministic mode.
	greaseFixedSeed VersionLabel = 0xd157383f
)

// GreaseSource generates wire labels for the reserved negotiation version.
// The zero value reads from crypto/rand and is ready for use; a GreaseSource
// must not be copied after first use.
type GreaseSource struct {
	// Rand supplies the randomized bits. nil means crypto/rand.Reader.
	Rand io.Reader

	// Deterministic substitutes a fixed bit pattern for the random bits so
	// negotiation is reproducible in tests.
	Deterministic bool

	mu sync.Mutex
}

// Label returns a fresh reserved-for-negotiation wire label.
func (s *GreaseSource) Label() VersionLabel {
	return s.seed()&greaseRandomMask | greaseMarker
}

func (s *GreaseSource) seed() VersionLabel {
	if s.Deterministic {
		return greaseFixedSeed
	}

	// The reader may not be safe for concurrent callers.
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.Rand
	if r == nil {
		r = rand.Reader
	}
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		panic("quicversion: grease randomness unavailable: " + err.Error())
	}
	return VersionLabel(binary.BigEndian.Uint32(buf[:]))
}

// greaseSource backs Version.Label for VersionReservedForNegotiation.
var greaseSource GreaseSource

func greaseLabel() VersionLabel {
	return greaseSource.Label()
}
