// Package cache stores the output of layout engine runs between
// invocations.
//
// Running a layout engine over a large graph is by far the slowest part of a
// conversion, and the result depends only on the engine, its Graphviz
// release and the input bytes. The CLI keys laid-out DOT by [LayoutKey] and
// keeps it in a [FileCache] under the user's cache directory; --no-cache
// swaps in a [NullCache].
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/matzehuels/dot2tikz/pkg/buildinfo"
)

// TTLLayout is how long a laid-out graph stays valid.
const TTLLayout = 30 * 24 * time.Hour

const layoutPrefix = "layout:"

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is reported as (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// LayoutKey returns the key for the output of engine run over input. The
// embedded Graphviz release is part of the key, so upgrading the engine
// invalidates every stored layout.
func LayoutKey(engine string, input []byte) string {
	h := sha256.New()
	var n [8]byte
	for _, part := range [][]byte{[]byte(buildinfo.Engine()), []byte(engine), input} {
		binary.BigEndian.PutUint64(n[:], uint64(len(part)))
		h.Write(n[:])
		h.Write(part)
	}
	return layoutPrefix + hex.EncodeToString(h.Sum(nil))
}

// NullCache never stores anything; every Get misses.
type NullCache struct{}

// NewNullCache returns the cache used when layouts must always be recomputed.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)         { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
