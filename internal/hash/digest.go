// Package hash wraps the xxHash64 function used for content digests.
package hash

import (
	"github.com/cespare/xxhash/v2"
)

// Sum64 returns the xxHash64 digest of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
