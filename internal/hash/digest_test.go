package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSum64 verifies known xxHash64 digests so the wire-visible digest never
// drifts across library upgrades.
func TestSum64(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		digest uint64
	}{
		{"nil", nil, 0xef46db3751d8e999},
		{"empty", []byte{}, 0xef46db3751d8e999},
		{"short", []byte("test"), 0x4fdcca5ddb678139},
		{"long", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
		{"another", []byte("another test string"), 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.digest, Sum64(tt.data))
		})
	}
}

func TestSum64_Deterministic(t *testing.T) {
	data := []byte{0x00, 0x01, 0xFF, 0x7E}

	assert.Equal(t, Sum64(data), Sum64(data))
	assert.NotEqual(t, Sum64(data), Sum64(data[:3]))
}

func BenchmarkSum64(b *testing.B) {
	data := make([]byte, 1024)
	for i := range data {
		data[i] = byte(i)
	}

	b.ResetTimer()
	for b.Loop() {
		_ = Sum64(data)
	}
}
