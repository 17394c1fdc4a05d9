package analysis

// Segment is one transcribed utterance. Segments are produced by an external
// transcription collaborator and are never mutated by the engine; the input
// list must already be sorted by Start ascending.
type Segment struct {
	// ID uniquely identifies the segment within the conversation.
	ID string `json:"id" validate:"required"`
	// Start is the utterance start time in seconds.
	Start float64 `json:"start" validate:"min=0"`
	// End is the utterance end time in seconds.
	End float64 `json:"end" validate:"min=0"`
	// Text is the transcribed text.
	Text string `json:"text" validate:"required"`
	// SpeakerHint is an external speaker identifier, if the transcriber
	// attributed the segment.
	SpeakerHint string `json:"speaker_hint,omitempty"`
	// Confidence is the transcriber's confidence in the segment (0-1),
	// if reported.
	Confidence *float64 `json:"confidence,omitempty" validate:"omitempty,min=0,max=1"`
}

// Duration returns the segment's speaking time in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// VoiceCharacteristics holds per-speaker linguistic and paralinguistic
// features derived from the speaker's segments.
type VoiceCharacteristics struct {
	// WordsPerMinute is the speaker's overall speaking pace.
	WordsPerMinute float64 `json:"words_per_minute"`
	// PaceVariance is the variance of per-segment speaking pace.
	PaceVariance float64 `json:"pace_variance"`
	// PausesPerMinute counts pauses above the pause threshold between the
	// speaker's own consecutive segments, per minute of the speaker's span.
	PausesPerMinute float64 `json:"pauses_per_minute"`
	// Pitch is the mean fundamental frequency in Hz.
	Pitch float64 `json:"pitch"`
	// Energy is the normalized signal energy (0-1).
	Energy float64 `json:"energy"`
	// Clarity is the normalized articulation clarity estimate (0-1).
	Clarity float64 `json:"clarity"`
	// EmotionalVariance is the normalized prosodic variance estimate (0-1).
	EmotionalVariance float64 `json:"emotional_variance"`
	// Measured reports whether the acoustic fields above are real
	// measurements from an acoustic provider. When false they are
	// placeholder constants and the speaker's confidence is penalized.
	Measured bool `json:"measured"`
	// VocabularyComplexity is the type-token ratio of the speaker's text.
	VocabularyComplexity float64 `json:"vocabulary_complexity"`
	// MeanSentenceLength is the mean token count per sentence.
	MeanSentenceLength float64 `json:"mean_sentence_length"`
	// FillerWordRate is the fraction of tokens that are filler words.
	FillerWordRate float64 `json:"filler_word_rate"`
}

// SpeakingPattern summarizes how a speaker takes and holds the floor.
type SpeakingPattern struct {
	// MeanTurnLength is the mean duration of the speaker's segments in seconds.
	MeanTurnLength float64 `json:"mean_turn_length"`
	// InterruptionRate is the number of interruptions the speaker initiated
	// per minute of conversation.
	InterruptionRate float64 `json:"interruption_rate"`
	// MeanResponseLatency is the mean silence in seconds before the speaker
	// replies to a different speaker, over replies within the response window.
	MeanResponseLatency float64 `json:"mean_response_latency"`
	// TopicInitiationRate is the fraction of the speaker's turns that open
	// the conversation or break a silence longer than the speaker-change gap.
	TopicInitiationRate float64 `json:"topic_initiation_rate"`
}

// ParticipationMetrics quantifies a speaker's share of the conversation.
type ParticipationMetrics struct {
	// TotalSpeakingTime is the sum of the speaker's segment durations in seconds.
	TotalSpeakingTime float64 `json:"total_speaking_time"`
	// SegmentCount is the number of segments attributed to the speaker.
	SegmentCount int `json:"segment_count"`
	// WordCount is the total word count across the speaker's segments.
	WordCount int `json:"word_count"`
	// DominanceScore is the speaker's speaking time as a fraction of the
	// conversation span.
	DominanceScore float64 `json:"dominance_score"`
	// EngagementLevel is a composite of question-asking and responsiveness (0-1).
	EngagementLevel float64 `json:"engagement_level"`
}

// RecognitionEvent records one identity confirmation or revision.
type RecognitionEvent struct {
	// Timestamp is the conversation time in seconds when the observation applies.
	Timestamp float64 `json:"timestamp"`
	// Confidence is the identification confidence at this point (0-1).
	Confidence float64 `json:"confidence"`
	// Source names what produced the observation ("hint", "heuristic", "voiceprint").
	Source string `json:"source"`
}

// SpeakerProfile is the complete per-speaker analysis result.
type SpeakerProfile struct {
	// ID is the stable within-conversation speaker identifier.
	ID string `json:"id"`
	// Name is the human-readable display name, if one was provided or recognized.
	Name string `json:"name,omitempty"`
	// FirstAppearance is the speaker's position in order of first speech.
	FirstAppearance int `json:"first_appearance"`
	// IdentificationConfidence is the confidence that the speaker's segments
	// are correctly attributed (0-1).
	IdentificationConfidence float64 `json:"identification_confidence"`
	// Characteristics holds the speaker's voice and linguistic features.
	Characteristics VoiceCharacteristics `json:"characteristics"`
	// Pattern summarizes the speaker's turn-taking behavior.
	Pattern SpeakingPattern `json:"pattern"`
	// Participation quantifies the speaker's share of the conversation.
	Participation ParticipationMetrics `json:"participation"`
	// RecognitionHistory is the append-only list of identity observations.
	RecognitionHistory []RecognitionEvent `json:"recognition_history"`
}

// TransitionKind classifies a speaker change.
type TransitionKind string

const (
	// TransitionSmooth is a speaker change within normal conversational timing.
	TransitionSmooth TransitionKind = "smooth"
	// TransitionInterruption is a speaker change where the new speaker began
	// before the prior speaker finished by more than the overlap threshold.
	TransitionInterruption TransitionKind = "interruption"
	// TransitionGap is a speaker change after a silence longer than the
	// speaker-change gap.
	TransitionGap TransitionKind = "gap"
)

// Turn is one entry in the chronological turn sequence, one per segment.
type Turn struct {
	// SpeakerID is the speaker holding the floor.
	SpeakerID string `json:"speaker_id"`
	// Start is the turn start time in seconds.
	Start float64 `json:"start"`
	// End is the turn end time in seconds.
	End float64 `json:"end"`
}

// Transition is one classified speaker change.
type Transition struct {
	// From is the speaker ceding the floor.
	From string `json:"from"`
	// To is the speaker taking the floor.
	To string `json:"to"`
	// At is the conversation time in seconds when the new speaker began.
	At float64 `json:"at"`
	// Gap is the silence (positive) or overlap (negative) in seconds between
	// the two segments.
	Gap float64 `json:"gap"`
	// Kind is the transition classification.
	Kind TransitionKind `json:"kind"`
}

// TurnTaking is the reconstructed turn structure of the conversation.
type TurnTaking struct {
	// Turns is the chronological turn sequence.
	Turns []Turn `json:"turns"`
	// Transitions lists every classified speaker change.
	Transitions []Transition `json:"transitions"`
	// InterruptionMatrix counts interruptions keyed by interrupter then interrupted.
	InterruptionMatrix map[string]map[string]int `json:"interruption_matrix"`
	// AverageTurnLength is the mean segment duration per speaker in seconds.
	AverageTurnLength map[string]float64 `json:"average_turn_length"`
}

// ConfidencePoint is one sample of the temporal confidence series.
type ConfidencePoint struct {
	// Timestamp echoes the corresponding segment's start time in seconds.
	Timestamp float64 `json:"timestamp"`
	// Confidence is the segment confidence, or the neutral default when the
	// transcriber reported none.
	Confidence float64 `json:"confidence"`
}

// ConfidenceSummary aggregates identification confidence across the analysis.
type ConfidenceSummary struct {
	// Overall is the mean per-speaker confidence, 0 when there are no speakers.
	Overall float64 `json:"overall"`
	// PerSpeaker maps speaker id to identification confidence.
	PerSpeaker map[string]float64 `json:"per_speaker"`
	// Temporal holds one confidence sample per input segment.
	Temporal []ConfidencePoint `json:"temporal"`
}

// Insights holds conversation-level qualitative conclusions.
type Insights struct {
	// DominantSpeaker is the id of the speaker with the highest dominance
	// score, empty when there are no speakers.
	DominantSpeaker string `json:"dominant_speaker"`
	// MostEngaged is the id of the speaker with the highest engagement level.
	MostEngaged string `json:"most_engaged"`
	// ConversationDynamics is a qualitative label for the interaction style.
	ConversationDynamics string `json:"conversation_dynamics"`
	// CollaborationLevel estimates how collaboratively the group conversed (0-1).
	CollaborationLevel float64 `json:"collaboration_level"`
	// MeetingBalance is the inverse-normalized dispersion of speaking time
	// (1 = perfectly even, 0 = one voice or no speech).
	MeetingBalance float64 `json:"meeting_balance"`
}

// ConversationAnalysis is the complete analysis artifact for one transcript.
type ConversationAnalysis struct {
	// AnalysisID uniquely identifies this analysis run. It is the only field
	// not determined by the input.
	AnalysisID string `json:"analysis_id"`
	// EngineVersion records the engine build that produced the analysis.
	EngineVersion string `json:"engine_version"`
	// Duration is the conversation span in seconds (last end minus first start).
	Duration float64 `json:"duration"`
	// Speakers lists the speaker profiles in order of first appearance.
	Speakers []SpeakerProfile `json:"speakers"`
	// SpeakingTime maps speaker id to total speaking time in seconds.
	SpeakingTime map[string]float64 `json:"speaking_time"`
	// TurnTaking is the reconstructed turn structure.
	TurnTaking TurnTaking `json:"turn_taking"`
	// Characteristics maps speaker id to voice characteristics.
	Characteristics map[string]VoiceCharacteristics `json:"characteristics"`
	// Confidence aggregates identification confidence.
	Confidence ConfidenceSummary `json:"confidence"`
	// Insights holds conversation-level conclusions.
	Insights Insights `json:"insights"`
}
