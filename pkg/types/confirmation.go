package types

// ConfirmationRequest represents a request for user confirmation before
// a file is modified or a module takes effect
type ConfirmationRequest struct {
	// Module is the name of the module requesting confirmation
	Module string

	// Operation indicates what kind of change is pending, e.g. "insert" or "remove"
	Operation string

	// Description provides a human-readable account of what will happen.
	// It is shown verbatim in prompts and logs.
	Description string

	// Items lists specific items that will be affected (lines, packages, files)
	Items []string

	// Default indicates the default response if the user just presses enter
	Default bool
}

// Confirmer decides whether a pending change may proceed.
// Policies are explicit values threaded through every call; there is no
// ambient global flag.
type Confirmer interface {
	// Confirm returns true when the change may proceed
	Confirm(req ConfirmationRequest) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface
type ConfirmerFunc func(req ConfirmationRequest) (bool, error)

// Confirm implements Confirmer
func (f ConfirmerFunc) Confirm(req ConfirmationRequest) (bool, error) {
	return f(req)
}
