package service

import "github.com/jpl-au/workdur/internal/numeric"

// Explanation is a trace shaped for JSON output: the duration and error
// are rendered as text.
type Explanation struct {
	numeric.Trace
	Minutes *int64 `json:"minutes,omitempty"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Explain traces text under p with svc and renders the outcome.
func Explain(svc Service, text string, p numeric.Pattern) Explanation {
	tr := svc.Explain(text, p)
	out := Explanation{Trace: tr}
	if tr.Err != nil {
		out.Error = tr.Err.Error()
		return out
	}
	m := tr.Duration.InMinutes()
	out.Minutes = &m
	out.Result = svc.Format(&tr.Duration, p)
	return out
}
