package analysis

import (
	"fmt"

	"github.com/skillsenselab/speakerkit/errors"
	"github.com/skillsenselab/speakerkit/validation"
)

// validateSegments rejects malformed transcripts before any stage runs. An
// empty transcript is well formed and passes; the stages handle it as a
// degenerate case. Per-segment shape comes from struct tags, cross-segment
// ordering is checked programmatically.
func validateSegments(segments []Segment) error {
	v := validation.New()
	for i, seg := range segments {
		if err := validation.Validate(seg); err != nil {
			msg := err.Error()
			if appErr, ok := errors.AsAppError(err); ok {
				msg = appErr.Message
			}
			v.AddError(fmt.Sprintf("segments[%d]", i), msg)
			continue
		}
		v.Custom(seg.End >= seg.Start, fmt.Sprintf("segments[%d].end", i), "must not precede start")
		if i > 0 {
			v.Custom(seg.Start >= segments[i-1].Start,
				fmt.Sprintf("segments[%d].start", i), "segments must be ordered by start time")
		}
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
