package importer

import "fmt"

// Result is the outcome of one import run, suitable for display to the
// operator after the run completes. It is produced once and not persisted.
type Result struct {
	Success   bool     `json:"success"`
	Processed int      `json:"processed"`
	Created   int      `json:"created"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Failed    int      `json:"failed"`
	Log       []string `json:"log"`
	Errors    []string `json:"errors"`
	Warnings  []string `json:"warnings"`
}

func (r *Result) logf(format string, args ...any) {
	r.Log = append(r.Log, fmt.Sprintf(format, args...))
}

func (r *Result) errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.Errors = append(r.Errors, msg)
	r.Log = append(r.Log, msg)
}

// StructuralError describes a malformed file: the batch never starts.
type StructuralError struct {
	Reason         string
	MissingHeaders []string
}

func (e *StructuralError) Error() string {
	if len(e.MissingHeaders) > 0 {
		return fmt.Sprintf("%s: %v", e.Reason, e.MissingHeaders)
	}
	return e.Reason
}
