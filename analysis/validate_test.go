package analysis

import (
	"strings"
	"testing"

	"github.com/skillsenselab/speakerkit/errors"
	"github.com/skillsenselab/speakerkit/util"
)

func TestValidateSegments_Valid(t *testing.T) {
	segments := []Segment{
		seg("s1", 0, 2, "hello"),
		seg("s2", 2, 4, "there"),
	}
	if err := validateSegments(segments); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateSegments_EmptyIsValid(t *testing.T) {
	if err := validateSegments(nil); err != nil {
		t.Errorf("expected empty transcript to pass, got %v", err)
	}
}

func TestValidateSegments_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		segments []Segment
		wantMsg  string
	}{
		{
			"unordered starts",
			[]Segment{seg("s1", 5, 6, "later"), seg("s2", 0, 2, "earlier")},
			"ordered by start time",
		},
		{
			"end precedes start",
			[]Segment{seg("s1", 4, 2, "inverted")},
			"must not precede start",
		},
		{
			"missing id",
			[]Segment{seg("", 0, 2, "anonymous")},
			"id",
		},
		{
			"empty text",
			[]Segment{seg("s1", 0, 2, "")},
			"text",
		},
		{
			"confidence out of range",
			[]Segment{{ID: "s1", Start: 0, End: 2, Text: "sure", Confidence: util.Ptr(1.5)}},
			"confidence",
		},
		{
			"negative start",
			[]Segment{seg("s1", -1, 2, "before time")},
			"start",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSegments(tc.segments)
			if err == nil {
				t.Fatal("expected error")
			}
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != errors.ErrCodeInvalidInput {
				t.Errorf("expected code %q, got %q", errors.ErrCodeInvalidInput, appErr.Code)
			}
			if !strings.Contains(appErr.Message, tc.wantMsg) {
				t.Errorf("expected message containing %q, got %q", tc.wantMsg, appErr.Message)
			}
		})
	}
}

func TestValidateSegments_EqualStartsAllowed(t *testing.T) {
	segments := []Segment{
		seg("s1", 0, 5, "overlapping"),
		seg("s2", 0, 3, "same start"),
	}
	if err := validateSegments(segments); err != nil {
		t.Errorf("expected equal starts to pass, got %v", err)
	}
}
