package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("id", "seg_1")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("id", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty required field")
	}

	v3 := New()
	v3.Required("id", "   ")
	if !v3.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorRequiredUUID(t *testing.T) {
	validUUID := uuid.New().String()

	v := New()
	v.RequiredUUID("analysis_id", validUUID)
	if v.HasErrors() {
		t.Errorf("expected no errors for valid UUID, got %v", v.Errors())
	}

	v2 := New()
	v2.RequiredUUID("analysis_id", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty UUID")
	}

	v3 := New()
	v3.RequiredUUID("analysis_id", "not-a-uuid")
	if !v3.HasErrors() {
		t.Error("expected error for invalid UUID")
	}

	v4 := New()
	v4.RequiredUUID("analysis_id", uuid.Nil.String())
	if !v4.HasErrors() {
		t.Error("expected error for nil UUID")
	}
}

func TestValidatorNonNegative(t *testing.T) {
	v := New()
	v.NonNegative("start", 0).NonNegative("end", 4.5)
	if v.HasErrors() {
		t.Error("expected no errors for non-negative values")
	}

	v2 := New()
	v2.NonNegative("start", -0.1)
	if !v2.HasErrors() {
		t.Error("expected error for negative value")
	}
}

func TestValidatorPositive(t *testing.T) {
	v := New()
	v.Positive("speaker_change_gap", 2.0)
	if v.HasErrors() {
		t.Error("expected no error for positive value")
	}

	v2 := New()
	v2.Positive("speaker_change_gap", 0)
	if !v2.HasErrors() {
		t.Error("expected error for zero value")
	}
}

func TestValidatorUnitInterval(t *testing.T) {
	v := New()
	v.UnitInterval("confidence", 0).UnitInterval("confidence", 0.5).UnitInterval("confidence", 1)
	if v.HasErrors() {
		t.Errorf("expected no errors for values within [0, 1], got %v", v.Errors())
	}

	v2 := New()
	v2.UnitInterval("confidence", 1.2)
	if !v2.HasErrors() {
		t.Error("expected error for value above 1")
	}

	v3 := New()
	v3.UnitInterval("confidence", -0.2)
	if !v3.HasErrors() {
		t.Error("expected error for value below 0")
	}
}

func TestValidatorMinMax(t *testing.T) {
	v := New()
	v.Min("workers", 4, 1)
	v.Max("workers", 4, 64)
	if v.HasErrors() {
		t.Error("expected no errors")
	}

	v2 := New()
	v2.Min("workers", 0, 1)
	if !v2.HasErrors() {
		t.Error("expected error for value below min")
	}

	v3 := New()
	v3.Max("workers", 128, 64)
	if !v3.HasErrors() {
		t.Error("expected error for value above max")
	}
}

func TestValidatorOneOf(t *testing.T) {
	v := New()
	v.OneOf("format", "json", []string{"json", "console"})
	if v.HasErrors() {
		t.Error("expected no error for valid oneOf value")
	}

	v2 := New()
	v2.OneOf("format", "xml", []string{"json", "console"})
	if !v2.HasErrors() {
		t.Error("expected error for invalid oneOf value")
	}

	// Empty should be skipped
	v3 := New()
	v3.OneOf("format", "", []string{"json"})
	if v3.HasErrors() {
		t.Error("expected no error for empty oneOf value")
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New()
	v.Custom(true, "field", "should pass")
	if v.HasErrors() {
		t.Error("expected no error for true condition")
	}

	v2 := New()
	v2.Custom(false, "end", "must not precede start")
	if !v2.HasErrors() {
		t.Error("expected error for false condition")
	}
	if v2.Errors()[0].Message != "must not precede start" {
		t.Errorf("expected custom message, got %q", v2.Errors()[0].Message)
	}
}

func TestValidatorValidate(t *testing.T) {
	v := New()
	v.Required("id", "seg_1")
	appErr := v.Validate()
	if appErr != nil {
		t.Error("expected nil for valid input")
	}

	v2 := New()
	v2.Required("id", "")
	v2.Required("text", "")
	appErr2 := v2.Validate()
	if appErr2 == nil {
		t.Fatal("expected error")
	}
	if appErr2.Details == nil {
		t.Fatal("expected details in error")
	}
	if !strings.Contains(appErr2.Message, "id") || !strings.Contains(appErr2.Message, "text") {
		t.Errorf("expected both fields in message, got %q", appErr2.Message)
	}
}

func TestValidatorChaining(t *testing.T) {
	v := New()
	result := v.Required("id", "seg_1").NonNegative("start", 1.5).Min("workers", 4, 1)
	if result != v {
		t.Error("expected chaining to return same validator")
	}
	if v.HasErrors() {
		t.Error("expected no errors for valid chained validation")
	}
}

func TestStructValidateValid(t *testing.T) {
	type segment struct {
		ID   string `json:"id" validate:"required"`
		Text string `json:"text" validate:"required"`
	}

	err := Validate(segment{ID: "seg_1", Text: "hello there"})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	type segment struct {
		ID   string `json:"id" validate:"required"`
		Text string `json:"text" validate:"required"`
	}

	err := Validate(segment{ID: "", Text: "hello there"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "id") {
		t.Errorf("expected error to mention 'id', got %q", err.Error())
	}
}

func TestStructValidateRange(t *testing.T) {
	type scored struct {
		Confidence float64 `json:"confidence" validate:"min=0,max=1"`
	}

	if err := Validate(scored{Confidence: 0.9}); err != nil {
		t.Errorf("expected valid, got %v", err)
	}

	if err := Validate(scored{Confidence: 1.5}); err == nil {
		t.Error("expected error for confidence above 1")
	}
}

func TestRequiredFunc(t *testing.T) {
	err := Required("id", "seg_1")
	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	err = Required("id", "")
	if err == nil {
		t.Error("expected error for empty required field")
	}
}
