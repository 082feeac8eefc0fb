package segments

import (
	"fmt"

	"vidpress/internal/timecode"
)

// Normalize merges temporally adjacent segments and assigns chunk filenames.
//
// Segments are folded left to right into an accumulator: when the gap between
// the previous accumulated end and the next start is <= gapThreshold seconds,
// the next segment is merged into the previous one (end extended, descriptions
// joined with "; "). A negative gap (overlap) always merges. Merging is
// greedy and non-retroactive: once folded, a segment is never re-split.
//
// Each surviving segment gets a 1-based, 4-digit chunk filename (0001.mp4,
// 0002.mp4, ...). The input slice is not modified.
func Normalize(segs []Segment, gapThreshold float64) ([]Segment, error) {
	if len(segs) == 0 {
		return nil, ErrEmptyInput
	}

	merged := []Segment{segs[0]}
	for _, seg := range segs[1:] {
		prev := &merged[len(merged)-1]
		prevEnd, err := timecode.Parse(prev.End)
		if err != nil {
			return nil, err
		}
		currStart, err := timecode.Parse(seg.Start)
		if err != nil {
			return nil, err
		}

		if currStart-prevEnd <= gapThreshold {
			prev.End = seg.End
			prev.Description = prev.Description + "; " + seg.Description
		} else {
			merged = append(merged, seg)
		}
	}

	for i := range merged {
		merged[i].File = fmt.Sprintf("%04d%s", i+1, ChunkExt)
	}
	return merged, nil
}
