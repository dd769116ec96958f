package pipeline

import (
	"encoding/binary"

	"github.com/matzehuels/mazetower/pkg/cache"
	"github.com/matzehuels/mazetower/pkg/maze"
)

// GridHash returns the content hash of g: its size followed by every cell
// mask in row-major order. Equal grids hash equally regardless of which
// engine or seed produced them.
func GridHash(g maze.Grid) string {
	buf := make([]byte, 0, 8+g.Len())
	buf = binary.BigEndian.AppendUint64(buf, uint64(g.Size()))
	for _, row := range g.Rows() {
		for _, d := range row {
			buf = append(buf, byte(d))
		}
	}
	return cache.Hash(buf)
}
