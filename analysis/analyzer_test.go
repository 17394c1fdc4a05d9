package analysis

import (
	"context"
	"reflect"
	"testing"

	"github.com/skillsenselab/speakerkit/errors"
	"github.com/skillsenselab/speakerkit/testutil"
	"github.com/skillsenselab/speakerkit/voiceprint"
)

// twoSpeakerMeeting is a small hinted conversation used across tests:
// alice speaks slightly more than bob.
func twoSpeakerMeeting() []Segment {
	return []Segment{
		hintedSeg("s1", 0, 10, "Good morning everyone, shall we start?", "alice"),
		hintedSeg("s2", 11, 18, "Morning, sounds good.", "bob"),
		hintedSeg("s3", 19, 30, "First item is the rollout plan.", "alice"),
		hintedSeg("s4", 31, 39, "I reviewed it yesterday.", "bob"),
	}
}

func TestAnalyzer_Analyze_ProducesProfiles(t *testing.T) {
	a := New()
	res, err := a.Analyze(context.Background(), twoSpeakerMeeting(), map[string]string{"alice": "Alice", "bob": "Bob"})
	testutil.NoError(t, err)

	if len(res.Speakers) != 2 {
		t.Fatalf("expected 2 speakers, got %d", len(res.Speakers))
	}
	if res.AnalysisID == "" {
		t.Error("expected a non-empty analysis id")
	}
	if res.Speakers[0].ID != "speaker_0" || res.Speakers[0].Name != "Alice" {
		t.Errorf("expected first speaker Alice as speaker_0, got %+v", res.Speakers[0])
	}
	if res.Speakers[1].Name != "Bob" {
		t.Errorf("expected second speaker Bob, got %+v", res.Speakers[1])
	}
	testutil.Near(t, "duration", 39, res.Duration)
	if res.Speakers[0].FirstAppearance != 0 || res.Speakers[1].FirstAppearance != 1 {
		t.Error("expected first-appearance ordering")
	}
}

func TestAnalyzer_Analyze_SpeakingTimeConservation(t *testing.T) {
	a := New()
	segments := twoSpeakerMeeting()
	res, err := a.Analyze(context.Background(), segments, nil)
	testutil.NoError(t, err)

	wantTotal := 0.0
	for _, s := range segments {
		wantTotal += s.Duration()
	}
	gotTotal := 0.0
	for _, v := range res.SpeakingTime {
		gotTotal += v
	}
	testutil.InDelta(t, "total speaking time", wantTotal, gotTotal, 1e-9)

	for _, p := range res.Speakers {
		testutil.InDelta(t, "per-speaker map entry", p.Participation.TotalSpeakingTime, res.SpeakingTime[p.ID], 1e-9)
	}
}

func TestAnalyzer_Analyze_Deterministic(t *testing.T) {
	a := New()
	segments := twoSpeakerMeeting()
	hints := map[string]string{"alice": "Alice"}

	first, err := a.Analyze(context.Background(), segments, hints)
	testutil.NoError(t, err)
	second, err := a.Analyze(context.Background(), segments, hints)
	testutil.NoError(t, err)

	if first.AnalysisID == second.AnalysisID {
		t.Error("expected distinct analysis ids per run")
	}
	first.AnalysisID = ""
	second.AnalysisID = ""
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical artifacts apart from the id\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAnalyzer_Analyze_InputNotMutated(t *testing.T) {
	a := New()
	segments := twoSpeakerMeeting()
	snapshot := make([]Segment, len(segments))
	copy(snapshot, segments)

	_, err := a.Analyze(context.Background(), segments, nil)
	testutil.NoError(t, err)

	if !reflect.DeepEqual(snapshot, segments) {
		t.Error("expected input segments to be unchanged")
	}
}

func TestAnalyzer_Analyze_EmptyTranscript(t *testing.T) {
	a := New()
	res, err := a.Analyze(context.Background(), nil, nil)
	testutil.NoError(t, err)

	if len(res.Speakers) != 0 {
		t.Errorf("expected no speakers, got %d", len(res.Speakers))
	}
	if res.SpeakingTime == nil || res.Characteristics == nil {
		t.Error("expected initialized maps in the empty artifact")
	}
	testutil.Near(t, "duration", 0, res.Duration)
	testutil.Near(t, "overall confidence", 0, res.Confidence.Overall)
	testutil.Near(t, "meeting balance", 0, res.Insights.MeetingBalance)
	if res.Insights.ConversationDynamics != DynamicsBalanced {
		t.Errorf("expected balanced dynamics, got %q", res.Insights.ConversationDynamics)
	}
	if res.AnalysisID == "" || res.EngineVersion == "" {
		t.Error("expected id and engine version even for empty input")
	}
}

func TestAnalyzer_Analyze_SingleSpeaker(t *testing.T) {
	a := New()
	segments := []Segment{
		seg("s1", 0, 5, "Talking to myself."),
		seg("s2", 6, 12, "Still going."),
	}
	res, err := a.Analyze(context.Background(), segments, nil)
	testutil.NoError(t, err)

	if len(res.Speakers) != 1 {
		t.Fatalf("expected 1 speaker, got %d", len(res.Speakers))
	}
	if len(res.TurnTaking.Transitions) != 0 {
		t.Errorf("expected no transitions, got %d", len(res.TurnTaking.Transitions))
	}
	testutil.Near(t, "meeting balance", 1, res.Insights.MeetingBalance)
	if res.Insights.ConversationDynamics != DynamicsStructured {
		t.Errorf("expected %q, got %q", DynamicsStructured, res.Insights.ConversationDynamics)
	}
	if res.Insights.DominantSpeaker != "speaker_0" {
		t.Errorf("expected the only speaker to dominate, got %q", res.Insights.DominantSpeaker)
	}
}

func TestAnalyzer_Analyze_DominantSpeakerAndBalance(t *testing.T) {
	a := New()
	res, err := a.Analyze(context.Background(), twoSpeakerMeeting(), nil)
	testutil.NoError(t, err)

	// alice holds 21s to bob's 15s.
	if res.Insights.DominantSpeaker != "speaker_0" {
		t.Errorf("expected speaker_0 dominant, got %q", res.Insights.DominantSpeaker)
	}
	if res.Insights.MeetingBalance <= 0.5 || res.Insights.MeetingBalance > 1 {
		t.Errorf("expected a mostly even meeting, got balance %v", res.Insights.MeetingBalance)
	}
}

func TestAnalyzer_Analyze_InterruptionsSurface(t *testing.T) {
	a := New()
	segments := []Segment{
		hintedSeg("s1", 0, 5, "As I was saying", "alice"),
		hintedSeg("s2", 4, 8, "Hold on a second", "bob"), // 1s overlap
	}
	res, err := a.Analyze(context.Background(), segments, nil)
	testutil.NoError(t, err)

	if got := res.TurnTaking.InterruptionMatrix["speaker_1"]["speaker_0"]; got != 1 {
		t.Errorf("expected one recorded interruption, got %d", got)
	}
	if res.TurnTaking.Transitions[0].Kind != TransitionInterruption {
		t.Errorf("expected interruption transition, got %q", res.TurnTaking.Transitions[0].Kind)
	}
}

func TestAnalyzer_Analyze_PeriodicGapsAlternateSpeakers(t *testing.T) {
	a := New()
	// A 3s silence before every third segment.
	var segments []Segment
	start := 0.0
	for i := 0; i < 9; i++ {
		if i > 0 {
			start += 0.5
			if i%3 == 0 {
				start += 3
			}
		}
		segments = append(segments, seg(segID(i), start, start+2, "steady utterance"))
		start += 2
	}

	res, err := a.Analyze(context.Background(), segments, nil)
	testutil.NoError(t, err)

	if len(res.Speakers) != 2 {
		t.Errorf("expected 2 inferred speakers, got %d", len(res.Speakers))
	}
}

func TestAnalyzer_Analyze_RejectsUnorderedInput(t *testing.T) {
	a := New()
	segments := []Segment{
		seg("s1", 10, 12, "second"),
		seg("s2", 0, 2, "first"),
	}

	_, err := a.Analyze(context.Background(), segments, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestAnalyzer_Analyze_RejectsInvertedSegment(t *testing.T) {
	a := New()
	_, err := a.Analyze(context.Background(), []Segment{seg("s1", 5, 3, "backwards")}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestAnalyzer_Analyze_RejectsInvalidOptions(t *testing.T) {
	a := New(WithOptions(Options{Workers: -2}))
	_, err := a.Analyze(context.Background(), twoSpeakerMeeting(), nil)
	if err == nil {
		t.Fatal("expected error for invalid options")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestAnalyzer_Analyze_BoundedWorkersSameResult(t *testing.T) {
	serial := New(WithOptions(Options{Workers: 1}))
	parallel := New()
	segments := twoSpeakerMeeting()

	a, err := serial.Analyze(context.Background(), segments, nil)
	testutil.NoError(t, err)
	b, err := parallel.Analyze(context.Background(), segments, nil)
	testutil.NoError(t, err)

	a.AnalysisID = ""
	b.AnalysisID = ""
	if !reflect.DeepEqual(a, b) {
		t.Error("expected worker bound to not affect the artifact")
	}
}

func TestAnalyzer_Analyze_VoiceprintRecognition(t *testing.T) {
	vp := &fakeVoiceprint{
		available: true,
		matches: map[string]*voiceprint.Match{
			"alice": {SpeakerName: "Alice Smith", Confidence: 0.95},
		},
	}
	a := New(WithVoiceprintProvider(vp))

	res, err := a.Analyze(context.Background(), twoSpeakerMeeting(), nil)
	testutil.NoError(t, err)

	alice := res.Speakers[0]
	if alice.Name != "Alice Smith" {
		t.Errorf("expected recognized name, got %q", alice.Name)
	}
	if len(alice.RecognitionHistory) != 2 {
		t.Errorf("expected hint + voiceprint events, got %d", len(alice.RecognitionHistory))
	}
	bob := res.Speakers[1]
	if bob.Name != "" {
		t.Errorf("expected bob unrecognized, got %q", bob.Name)
	}
}

func TestAnalyzer_Analyze_ConfidenceReflectsPlaceholders(t *testing.T) {
	a := New()
	res, err := a.Analyze(context.Background(), twoSpeakerMeeting(), nil)
	testutil.NoError(t, err)

	// Hinted clusters start at 0.9; without acoustic measurements the
	// placeholder penalty brings them to 0.8.
	for id, conf := range res.Confidence.PerSpeaker {
		testutil.InDelta(t, "confidence for "+id, 0.8, conf, 1e-9)
	}
	testutil.InDelta(t, "overall", 0.8, res.Confidence.Overall, 1e-9)
	if len(res.Confidence.Temporal) != 4 {
		t.Errorf("expected one temporal point per segment, got %d", len(res.Confidence.Temporal))
	}
}

func segID(i int) string {
	return "s" + string(rune('a'+i))
}
