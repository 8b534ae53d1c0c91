package quicversion

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreaseSource_Deterministic(t *testing.T) {
	source := &GreaseSource{Deterministic: true}

	first := source.Label()
	second := source.Label()

	assert.Equal(t, VersionLabel(0xda5a3a3a), first, "deterministic mode should always draw the same label")
	assert.Equal(t, first, second, "deterministic draws should be stable across calls")
}

func TestGreaseSource_MaskedRandom(t *testing.T) {
	var source GreaseSource

	for i := 0; i < 100; i++ {
		label := source.Label()

		assert.Equal(t, VersionLabel(0x0a0a0a0a), label&0x0f0f0f0f,
			"every greased label should carry 0x0a in the low nibble of each byte")
		assert.Equal(t, VersionUnsupported, ParseVersionLabel(label),
			"greased labels should never collide with a supported version")
	}
}

func TestGreaseSource_Varies(t *testing.T) {
	var source GreaseSource

	seen := make(map[VersionLabel]struct{})
	for i := 0; i < 100; i++ {
		seen[source.Label()] = struct{}{}
	}

	assert.Greater(t, len(seen), 1, "random draws should not be stable")
}

func TestGreaseSource_CustomReader(t *testing.T) {
	source := &GreaseSource{
		Rand: bytes.NewReader([]byte{0x12, 0x34, 0x56, 0x78}),
	}

	assert.Equal(t, VersionLabel(0x1a3a5a7a), source.Label(),
		"label should keep the high nibbles of the drawn bytes")
}

func TestGreaseSource_ExhaustedReaderPanics(t *testing.T) {
	tests := map[string][]byte{
		"empty":       nil,
		"short draw":  {0x12, 0x34},
		"second draw": {0x12, 0x34, 0x56, 0x78},
	}

	for name, seed := range tests {
		t.Run(name, func(t *testing.T) {
			source := &GreaseSource{
				Rand: bytes.NewReader(seed),
			}
			if len(seed) == 4 {
				source.Label()
			}

			assert.Panics(t, func() {
				source.Label()
			}, "a failing randomness source should panic rather than emit a fixed label")
		})
	}
}

func TestGreaseSource_Concurrent(t *testing.T) {
	var source GreaseSource

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 32; j++ {
				label := source.Label()
				assert.Equal(t, VersionLabel(0x0a0a0a0a), label&0x0f0f0f0f)
			}
		}()
	}
	wg.Wait()
}
