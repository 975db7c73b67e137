// Package forms implements the submission state machine shared by the
// contact, newsletter, and join-request forms. One Form instance owns one
// status: idle -> loading -> success or error -> idle.
package forms

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nepalailab/labsite/internal/httpapi"
	"github.com/nepalailab/labsite/pkg/types"
)

// Form is one submission instance. It is safe for concurrent use; a
// submission while another is loading is rejected, not queued.
type Form struct {
	client   *httpapi.Client
	log      *zap.Logger
	endpoint string
	required []string
	validate func(fields map[string]string) string
	success  string
	generic  string

	mu     sync.Mutex
	fields map[string]string
	status types.SubmissionStatus
}

func newForm(client *httpapi.Client, logger *zap.Logger, endpoint string) *Form {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Form{
		client:   client,
		log:      logger,
		endpoint: endpoint,
		fields:   make(map[string]string),
		status:   types.SubmissionStatus{State: types.SubmitIdle},
	}
}

// SetField records one field value.
func (f *Form) SetField(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields[key] = value
}

// Fields returns a copy of the current field set.
func (f *Form) Fields() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.fields))
	for k, v := range f.fields {
		out[k] = v
	}
	return out
}

// Status returns the current submission status.
func (f *Form) Status() types.SubmissionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Reset returns the form to idle. Field values are kept; they are cleared
// only by a successful submission.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = types.SubmissionStatus{State: types.SubmitIdle}
}

// ResetAfter schedules a Reset once the delay elapses, for owners that
// auto-dismiss the success or error message. The returned timer can be
// stopped when the owning UI is dismissed early.
func (f *Form) ResetAfter(delay time.Duration) *time.Timer {
	return time.AfterFunc(delay, f.Reset)
}

// Submit validates required fields and posts the field set. On success the
// status carries the form's confirmation message and all fields are
// cleared; on failure the status message is derived from the server detail,
// the HTTP status, a no-response notice, or the form's generic message, in
// that order. A submit while one is loading returns the loading status
// unchanged.
func (f *Form) Submit(ctx context.Context) types.SubmissionStatus {
	f.mu.Lock()
	if f.status.State == types.SubmitLoading {
		status := f.status
		f.mu.Unlock()
		return status
	}

	for _, key := range f.required {
		if f.fields[key] == "" {
			f.status = types.SubmissionStatus{
				State:   types.SubmitError,
				Message: fmt.Sprintf("%s is required.", key),
			}
			status := f.status
			f.mu.Unlock()
			return status
		}
	}

	if f.validate != nil {
		if msg := f.validate(f.fields); msg != "" {
			f.status = types.SubmissionStatus{State: types.SubmitError, Message: msg}
			status := f.status
			f.mu.Unlock()
			return status
		}
	}

	body := make(map[string]string, len(f.fields))
	for k, v := range f.fields {
		body[k] = v
	}
	f.status = types.SubmissionStatus{State: types.SubmitLoading}
	f.mu.Unlock()

	_, err := f.client.Post(ctx, f.endpoint, body)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.log.Warn("form submission failed",
			zap.String("endpoint", f.endpoint),
			zap.Error(err))
		f.status = types.SubmissionStatus{
			State:   types.SubmitError,
			Message: httpapi.UserMessage(err, f.generic),
		}
		return f.status
	}

	f.fields = make(map[string]string)
	f.status = types.SubmissionStatus{
		State:   types.SubmitSuccess,
		Message: f.success,
	}
	return f.status
}
