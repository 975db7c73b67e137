package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionStatusValid(t *testing.T) {
	tests := []struct {
		name   string
		status SubmissionStatus
		want   bool
	}{
		{name: "idle", status: SubmissionStatus{State: SubmitIdle}, want: true},
		{name: "loading", status: SubmissionStatus{State: SubmitLoading}, want: true},
		{name: "success with message", status: SubmissionStatus{State: SubmitSuccess, Message: "sent"}, want: true},
		{name: "error with message", status: SubmissionStatus{State: SubmitError, Message: "bad input"}, want: true},
		{name: "unknown state", status: SubmissionStatus{State: "done"}, want: false},
		{name: "idle with message", status: SubmissionStatus{State: SubmitIdle, Message: "sent"}, want: false},
		{name: "loading with message", status: SubmissionStatus{State: SubmitLoading, Message: "wait"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Valid())
		})
	}
}

func TestSubmissionStatusTerminal(t *testing.T) {
	assert.False(t, SubmissionStatus{State: SubmitIdle}.Terminal())
	assert.False(t, SubmissionStatus{State: SubmitLoading}.Terminal())
	assert.True(t, SubmissionStatus{State: SubmitSuccess}.Terminal())
	assert.True(t, SubmissionStatus{State: SubmitError}.Terminal())
}
