package analysis

import (
	"reflect"
	"testing"
)

func TestTokenize_LowercasesAndTrimsPunctuation(t *testing.T) {
	got := tokenize(`Well, "Hello" there!`)
	want := []string{"well", "hello", "there"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenize_DropsPurePunctuation(t *testing.T) {
	got := tokenize("yes ... no")
	want := []string{"yes", "no"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWordCount(t *testing.T) {
	if got := wordCount("one two  three"); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
	if got := wordCount("   "); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("Hello there. How are you? Fine!")
	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(got), got)
	}
}

func TestSplitSentences_IgnoresEmptyRuns(t *testing.T) {
	got := splitSentences("Wait... what?")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(got), got)
	}
}

func TestCountFillers_Singles(t *testing.T) {
	tokens := tokenize("um I was like thinking")
	if got := countFillers(tokens, DefaultFillerWords); got != 2 {
		t.Errorf("got %d fillers, want 2", got)
	}
}

func TestCountFillers_PhraseCountsOnce(t *testing.T) {
	tokens := tokenize("it was you know complicated")
	if got := countFillers(tokens, DefaultFillerWords); got != 1 {
		t.Errorf("got %d fillers, want 1", got)
	}
}

func TestCountFillers_PhraseConsumesTokens(t *testing.T) {
	// "you know you know" is two phrase matches, not three.
	tokens := []string{"you", "know", "you", "know"}
	if got := countFillers(tokens, DefaultFillerWords); got != 2 {
		t.Errorf("got %d fillers, want 2", got)
	}
}

func TestEndsWithQuestion(t *testing.T) {
	if !endsWithQuestion("Are you sure? ") {
		t.Error("expected trailing question mark to be detected")
	}
	if endsWithQuestion("Quite sure.") {
		t.Error("expected statement to not be a question")
	}
}
