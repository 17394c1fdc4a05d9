// Package validation provides input validation utilities for speakerkit.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// recommended for data carried on the wire, such as transcript segments;
// programmatic validation covers cross-field rules like chronological
// ordering that tags cannot express.
//
// # Struct Tag Validation
//
//	type Segment struct {
//	    ID   string `json:"id" validate:"required"`
//	    Text string `json:"text" validate:"required"`
//	}
//	err := validation.Validate(seg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.NonNegative("start", seg.Start)
//	v.Custom(seg.End >= seg.Start, "end", "must not precede start")
//	err := v.Validate()
package validation
