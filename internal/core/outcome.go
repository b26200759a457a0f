package core

// Outcome is the uniform result shape returned by every mutation and import
// operation. The UI renders Errors next to their fields and Message at page
// level, so both sides of a form submission share one contract.
type Outcome struct {
	Errors  FieldErrors `json:"errors,omitempty"`
	Message string      `json:"message,omitempty"`

	ok bool
}

// Success returns an Outcome for a completed operation.
func Success(message string) Outcome {
	return Outcome{Message: message, ok: true}
}

// Invalid returns an Outcome for a submission that failed validation.
func Invalid(errors FieldErrors, message string) Outcome {
	return Outcome{Errors: errors, Message: message}
}

// Failure returns an Outcome for an operation that failed after validation,
// typically a persistence error already downgraded to a generic message.
func Failure(message string) Outcome {
	return Outcome{Message: message}
}

// OK reports whether the operation completed.
func (o Outcome) OK() bool {
	return o.ok
}
