// Package research aggregates public company information from independent
// source adapters into a single lead record. Every adapter degrades to an
// empty outcome on failure; no stage can abort the pipeline.
package research

// Status classifies an adapter outcome so callers and tests can tell
// "no data" apart from "provider failed" and "no credential configured"
// without parsing logs.
type Status int

const (
	// StatusOK means the adapter returned usable data.
	StatusOK Status = iota
	// StatusEmpty means the provider answered but had nothing relevant.
	StatusEmpty
	// StatusNoCredential means the adapter short-circuited because its
	// API key is not configured.
	StatusNoCredential
	// StatusError means the provider call failed after retries.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusNoCredential:
		return "no_credential"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
