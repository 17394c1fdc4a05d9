package voiceprint

// IdentifyRequest holds the evidence available for one speaker cluster.
type IdentifyRequest struct {
	// ClusterID is the within-conversation cluster being identified.
	ClusterID string `json:"cluster_id"`
	// SpeakerHint is the external hint attached to the cluster, if any.
	SpeakerHint string `json:"speaker_hint,omitempty"`
	// SampleText is concatenated transcript text for the cluster.
	SampleText string `json:"sample_text,omitempty"`
	// SpeakingTime is the cluster's total speaking time in seconds.
	SpeakingTime float64 `json:"speaking_time"`
}

// Match is a successful identification against the voiceprint store.
type Match struct {
	// SpeakerName is the display name of the recognized speaker.
	SpeakerName string `json:"speaker_name"`
	// Confidence is the backend's confidence in the match (0-1).
	Confidence float64 `json:"confidence"`
}
