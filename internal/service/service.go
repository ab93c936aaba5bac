// Package service defines the shared interface for duration operations.
// Commands and the MCP server depend on this interface rather than on the
// parser and formatter directly, so both surfaces report results the same way.
package service

import (
	"github.com/jpl-au/workdur/internal/duration"
	"github.com/jpl-au/workdur/internal/numeric"
)

// Service defines all duration operations.
//
// Use New or FromConfig to obtain an implementation. Instances are immutable
// and safe for concurrent use; to change configuration build a new one.
//
// Example:
//
//	svc, err := service.New(numeric.Options{}, numeric.Day)
//	if err != nil {
//	    return err
//	}
//	res := svc.Parse("1 4:35", numeric.Day)
//	fmt.Println(res.FormattedValue) // 1d 4h 35m
type Service interface {
	// Parse reads text under p and reports the outcome as a Result.
	// A rejection is an invalid Result, never an error. Panics if p is not
	// a valid pattern.
	Parse(text string, p numeric.Pattern) Result

	// ParseOptional is Parse for input that may be absent. A nil text is
	// an invalid Result with a nil RawValue, and p is not checked.
	ParseOptional(text *string, p numeric.Pattern) Result

	// Format renders d as whole minutes under p. A nil d renders as "" and
	// p is not checked; otherwise panics if p is not a valid pattern.
	Format(d *duration.Duration, p numeric.Pattern) string

	// FormatMinutes renders a minute count under p with the configured
	// day length, or with dayLength when it is non-zero.
	FormatMinutes(minutes int64, p numeric.Pattern, dayLength duration.Duration) string

	// Export renders d as a count of calendar days, nil passing through.
	Export(d *duration.Duration) *string

	// Explain returns the stage-by-stage trace of parsing text under p.
	Explain(text string, p numeric.Pattern) numeric.Trace

	// Compare parses text under p and compares its buckets with a whole
	// number of days: -1 fewer, 0 exactly, 1 more.
	Compare(text string, days int64, p numeric.Pattern) (int, error)

	// Pattern returns the configured default pattern.
	Pattern() numeric.Pattern

	// DayLength returns the configured length of one workday.
	DayLength() duration.Duration
}

// Result is the outcome of one parse, shaped for input-binding layers.
// IsValid is ParsedValue != nil, and FormattedValue is "" when invalid.
type Result struct {
	RawValue       *string            `json:"raw_value"`
	ParsedValue    *duration.Duration `json:"-"`
	IsValid        bool               `json:"is_valid"`
	FormattedValue string             `json:"formatted_value"`

	// Minutes and Days mirror Coerce and Export of ParsedValue.
	Minutes *int64  `json:"minutes"`
	Days    *string `json:"days"`

	// Err is the rejection cause when invalid and RawValue is set.
	Err    error  `json:"-"`
	Reason string `json:"reason,omitempty"`
}
