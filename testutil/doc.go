// Package testutil provides small assertion helpers shared by speakerkit
// tests. The analysis pipeline produces floating-point metrics, so most
// helpers compare within a tolerance.
package testutil
