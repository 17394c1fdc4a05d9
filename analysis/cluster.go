package analysis

import "fmt"

// clustering is the result of grouping segments by inferred speaker.
type clustering struct {
	// order lists cluster ids by first appearance in the transcript.
	order []string
	// segments holds each cluster's segments in chronological order.
	segments map[string][]Segment
	// hinted marks clusters whose id came from an explicit speaker hint.
	hinted map[string]bool
	// assignments holds the cluster id of each input segment, in input order.
	assignments []string
}

// clusterSegments groups segments into speaker clusters. Hinted segments go
// to the cluster keyed by their hint. Hint-less segments are attributed by
// timing: a silence above Options.SpeakerChangeGap suggests a speaker change
// and cycles to the next previously seen cluster before minting a new one;
// anything shorter keeps the previous speaker. Ambiguity therefore resolves
// to "same speaker continues".
func clusterSegments(segments []Segment, opts Options) clustering {
	c := clustering{
		segments: make(map[string][]Segment),
		hinted:   make(map[string]bool),
	}
	if len(segments) == 0 {
		return c
	}

	var prevID string
	for i, seg := range segments {
		var id string
		switch {
		case seg.SpeakerHint != "":
			id = seg.SpeakerHint
			c.hinted[id] = true
		case i == 0:
			id = c.mintID()
		default:
			gap := seg.Start - segments[i-1].End
			if gap > opts.SpeakerChangeGap {
				id = c.nextAfter(prevID)
			} else {
				id = prevID
			}
		}
		c.add(id, seg)
		c.assignments = append(c.assignments, id)
		prevID = id
	}
	return c
}

func (c *clustering) add(id string, seg Segment) {
	if _, seen := c.segments[id]; !seen {
		c.order = append(c.order, id)
	}
	c.segments[id] = append(c.segments[id], seg)
}

// mintID produces a synthetic cluster id for a speaker with no hint.
func (c *clustering) mintID() string {
	return fmt.Sprintf("speaker_%d", len(c.order))
}

// nextAfter cycles through previously seen clusters starting after prev,
// returning the first id that differs from prev, or a fresh id when prev is
// the only cluster seen so far.
func (c *clustering) nextAfter(prev string) string {
	prevIdx := 0
	for i, id := range c.order {
		if id == prev {
			prevIdx = i
			break
		}
	}
	for step := 1; step <= len(c.order); step++ {
		candidate := c.order[(prevIdx+step)%len(c.order)]
		if candidate != prev {
			return candidate
		}
	}
	return c.mintID()
}
