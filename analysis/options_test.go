package analysis

import (
	"strings"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	if o.SpeakerChangeGap != 2.0 {
		t.Errorf("expected speaker_change_gap 2.0, got %v", o.SpeakerChangeGap)
	}
	if o.InterruptionOverlap != 0.5 {
		t.Errorf("expected interruption_overlap 0.5, got %v", o.InterruptionOverlap)
	}
	if o.NeutralConfidence != 0.5 {
		t.Errorf("expected neutral_confidence 0.5, got %v", o.NeutralConfidence)
	}
	if len(o.FillerWords) == 0 {
		t.Error("expected default filler words")
	}
	if err := o.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestOptionsApplyDefaults_KeepsExplicitValues(t *testing.T) {
	o := Options{SpeakerChangeGap: 3.5, Workers: 2}
	o.ApplyDefaults()

	if o.SpeakerChangeGap != 3.5 {
		t.Errorf("expected explicit gap kept, got %v", o.SpeakerChangeGap)
	}
	if o.Workers != 2 {
		t.Errorf("expected explicit workers kept, got %d", o.Workers)
	}
	if o.PauseGap != 1.0 {
		t.Errorf("expected pause_gap default, got %v", o.PauseGap)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantMsg string
	}{
		{"negative gap", func(o *Options) { o.SpeakerChangeGap = -1 }, "speaker_change_gap"},
		{"confidence above one", func(o *Options) { o.HintedConfidence = 1.5 }, "hinted_confidence"},
		{"negative workers", func(o *Options) { o.Workers = -1 }, "workers"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := DefaultOptions()
			tc.mutate(&o)
			err := o.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("expected error mentioning %q, got %q", tc.wantMsg, err.Error())
			}
		})
	}
}
