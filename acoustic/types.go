package acoustic

// ExtractRequest holds parameters for a feature extraction call.
type ExtractRequest struct {
	// AudioPath is the path to the source audio, if the backend needs it.
	AudioPath string `json:"audio_path,omitempty"`
	// Windows contains the time windows to measure, one per transcript segment.
	Windows []Window `json:"windows"`
}

// Window identifies one time range of the source audio.
type Window struct {
	// SegmentID is the transcript segment this window corresponds to.
	SegmentID string `json:"segment_id"`
	// Start is the window start time in seconds.
	Start float64 `json:"start"`
	// End is the window end time in seconds.
	End float64 `json:"end"`
}

// ExtractResponse holds the result of a feature extraction call.
type ExtractResponse struct {
	// Features contains measured features keyed by segment id.
	Features map[string]Features `json:"features"`
}

// Features represents low-level acoustic measurements for one window.
type Features struct {
	// Pitch is the mean fundamental frequency in Hz.
	Pitch float64 `json:"pitch"`
	// Energy is the normalized signal energy (0-1).
	Energy float64 `json:"energy"`
	// Clarity is the normalized articulation clarity estimate (0-1).
	Clarity float64 `json:"clarity"`
	// EmotionalVariance is the normalized prosodic variance estimate (0-1).
	EmotionalVariance float64 `json:"emotional_variance"`
}
