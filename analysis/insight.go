package analysis

import "github.com/skillsenselab/speakerkit/util"

// Conversation dynamics labels.
const (
	DynamicsInterruptive = "dynamic with frequent interruptions"
	DynamicsStructured   = "structured with polite turn-taking"
	DynamicsBalanced     = "balanced"
)

// synthesizeInsights combines the speaker profiles and turn structure into
// conversation-level conclusions. It is a pure function of its inputs and is
// defined for 0, 1, and N speakers: with no speakers the speaker fields are
// empty, the dynamics label is "balanced", and both scalars are 0.
func synthesizeInsights(profiles []SpeakerProfile, tt TurnTaking) Insights {
	in := Insights{ConversationDynamics: DynamicsBalanced}

	// Profiles are ordered by first appearance, so strict > keeps the
	// earliest speaker on ties.
	maxDominance := -1.0
	maxEngagement := -1.0
	var engagements []float64
	var speakingTimes []float64
	for _, p := range profiles {
		if p.Participation.DominanceScore > maxDominance {
			maxDominance = p.Participation.DominanceScore
			in.DominantSpeaker = p.ID
		}
		if p.Participation.EngagementLevel > maxEngagement {
			maxEngagement = p.Participation.EngagementLevel
			in.MostEngaged = p.ID
		}
		engagements = append(engagements, p.Participation.EngagementLevel)
		speakingTimes = append(speakingTimes, p.Participation.TotalSpeakingTime)
	}

	interruptions := 0
	for _, row := range tt.InterruptionMatrix {
		for _, n := range row {
			interruptions += n
		}
	}
	speakerCount := len(profiles)
	switch {
	case speakerCount > 0 && interruptions > 2*speakerCount:
		in.ConversationDynamics = DynamicsInterruptive
	case speakerCount > 0 && interruptions < speakerCount:
		in.ConversationDynamics = DynamicsStructured
	}

	if len(engagements) > 0 {
		in.CollaborationLevel = util.Clamp(mean(engagements)*1.2, 0, 1)
	}
	in.MeetingBalance = meetingBalance(speakingTimes)
	return in
}

// meetingBalance is the inverse-normalized dispersion of speaking time:
// 1 for a single speaker (no variance to penalize), 0 when nobody spoke.
func meetingBalance(speakingTimes []float64) float64 {
	if len(speakingTimes) == 0 {
		return 0
	}
	if len(speakingTimes) == 1 {
		return 1
	}
	m := mean(speakingTimes)
	if m <= 0 {
		return 0
	}
	return util.Clamp(1-stdDev(speakingTimes)/m, 0, 1)
}
