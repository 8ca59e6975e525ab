package cmdrun

import (
	"strings"

	"github.com/arthur-debert/outfit/pkg/types"
)

// Recorder is a Runner fake that records invocations instead of
// executing them. Canned outputs and errors can be registered per
// command line.
type Recorder struct {
	// Calls holds each invocation as a single space-joined string
	Calls []string

	// Outputs maps a full command line to the bytes Output returns
	Outputs map[string][]byte

	// Errs maps a full command line to the error Run/Output return
	Errs map[string]error
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{
		Outputs: make(map[string][]byte),
		Errs:    make(map[string]error),
	}
}

var _ types.Runner = (*Recorder)(nil)

func (r *Recorder) key(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// Run records the invocation
func (r *Recorder) Run(name string, args ...string) error {
	k := r.key(name, args)
	r.Calls = append(r.Calls, k)
	return r.Errs[k]
}

// Output records the invocation and returns any canned output
func (r *Recorder) Output(name string, args ...string) ([]byte, error) {
	k := r.key(name, args)
	r.Calls = append(r.Calls, k)
	return r.Outputs[k], r.Errs[k]
}

// Ran reports whether a command line was invoked
func (r *Recorder) Ran(cmdline string) bool {
	for _, call := range r.Calls {
		if call == cmdline {
			return true
		}
	}
	return false
}
