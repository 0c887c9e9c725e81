package dashboard

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// KindSeed derives the generator seed for one entity kind, so each store's
// data depends only on the base seed and its own kind.
func KindSeed(base uint64, kind string) uint64 {
	buf := binary.LittleEndian.AppendUint64(make([]byte, 0, 8+len(kind)), base)
	return murmur3.Sum64(append(buf, kind...))
}
