package types

// Form submission states. A form progresses idle -> loading -> success
// or error, then back to idle when the owner resets it.
const (
	SubmitIdle    = "idle"
	SubmitLoading = "loading"
	SubmitSuccess = "success"
	SubmitError   = "error"
)

// validSubmitStates is the set of recognized submission state values.
var validSubmitStates = map[string]bool{
	SubmitIdle:    true,
	SubmitLoading: true,
	SubmitSuccess: true,
	SubmitError:   true,
}

// SubmissionStatus is the tagged status of one form instance. Exactly one
// state is active at a time; Message is set only for success and error.
type SubmissionStatus struct {
	State   string `json:"state"`
	Message string `json:"message,omitempty"`
}

// Valid reports whether the status carries a recognized state and a
// message only where one is allowed.
func (s SubmissionStatus) Valid() bool {
	if !validSubmitStates[s.State] {
		return false
	}
	if s.Message != "" && (s.State == SubmitIdle || s.State == SubmitLoading) {
		return false
	}
	return true
}

// Terminal reports whether the status is success or error, the states
// the owning form returns to idle from.
func (s SubmissionStatus) Terminal() bool {
	return s.State == SubmitSuccess || s.State == SubmitError
}
