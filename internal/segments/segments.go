// Package segments holds the segment table: the hand-off artifact between the
// analysis, normalize, and cut stages.
package segments

import "errors"

// ChunkExt is the container extension assigned to cut chunks.
const ChunkExt = ".mp4"

var (
	ErrEmptyInput = errors.New("segment table is empty")
)

// Segment is one retained time range of the source video. Order within a
// table is positional: adjacency means neighboring rows, not nearest
// timestamps after sorting.
type Segment struct {
	Start       string // HH:MM:SS[.mmm]
	End         string // HH:MM:SS[.mmm]
	File        string // chunk filename, assigned by Normalize
	Description string
}
