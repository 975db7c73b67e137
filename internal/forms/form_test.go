package forms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepalailab/labsite/internal/httpapi"
	"github.com/nepalailab/labsite/pkg/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *httpapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return httpapi.New(httpapi.Config{BaseURL: srv.URL + "/api/"})
}

func fillContact(f *Form) {
	f.SetField(FieldFullName, "Asha Rai")
	f.SetField(FieldEmail, "asha@example.com")
	f.SetField(FieldSubject, "Partnership")
	f.SetField(FieldMessage, "Hello")
}

func TestContactSubmitSuccess(t *testing.T) {
	var posted map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contact-messages/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	})

	f := NewContact(client, nil)
	assert.Equal(t, types.SubmitIdle, f.Status().State)

	fillContact(f)
	status := f.Submit(context.Background())

	assert.Equal(t, types.SubmitSuccess, status.State)
	assert.Equal(t, "Message sent successfully! We will get back to you soon.", status.Message)
	assert.Equal(t, "Asha Rai", posted[FieldFullName])
	assert.Empty(t, f.Fields(), "fields are cleared on success")
}

func TestContactSubmitServerDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"bad input"}`))
	})

	f := NewContact(client, nil)
	fillContact(f)
	status := f.Submit(context.Background())

	assert.Equal(t, types.SubmitError, status.State)
	assert.Equal(t, "bad input", status.Message)
	assert.NotEmpty(t, f.Fields(), "fields are kept on failure")
}

func TestSubmitNoResponse(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := httpapi.New(httpapi.Config{BaseURL: srv.URL + "/api/"})

	f := NewNewsletter(client, nil)
	f.SetField(FieldEmail, "me@example.com")
	status := f.Submit(context.Background())

	assert.Equal(t, types.SubmitError, status.State)
	assert.Contains(t, status.Message, "No response from server")
}

func TestSubmitRequiredFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("submit must not reach the server with missing fields")
	})

	f := NewNewsletter(client, nil)
	status := f.Submit(context.Background())

	assert.Equal(t, types.SubmitError, status.State)
	assert.Equal(t, "email is required.", status.Message)
}

func TestJoinInterestAreaClosedSet(t *testing.T) {
	tests := []struct {
		name      string
		area      string
		wantState string
	}{
		{name: "research accepted", area: "research", wantState: types.SubmitSuccess},
		{name: "development accepted", area: "development", wantState: types.SubmitSuccess},
		{name: "partnership accepted", area: "partnership", wantState: types.SubmitSuccess},
		{name: "unknown rejected", area: "marketing", wantState: types.SubmitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{}`))
			})

			f := NewJoin(client, nil)
			f.SetField(FieldFullName, "Asha Rai")
			f.SetField(FieldEmail, "asha@example.com")
			f.SetField(FieldInterestArea, tt.area)
			f.SetField(FieldMessage, "I want to contribute")

			status := f.Submit(context.Background())
			assert.Equal(t, tt.wantState, status.State)
		})
	}
}

func TestSubmitWhileLoadingRejected(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	})

	f := NewNewsletter(client, nil)
	f.SetField(FieldEmail, "me@example.com")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.Submit(context.Background())
	}()

	// Wait for the first submit to reach loading.
	require.Eventually(t, func() bool {
		return f.Status().State == types.SubmitLoading
	}, time.Second, 5*time.Millisecond)

	status := f.Submit(context.Background())
	assert.Equal(t, types.SubmitLoading, status.State, "second submit is rejected, not queued")

	close(release)
	wg.Wait()
	assert.Equal(t, types.SubmitSuccess, f.Status().State)
}

func TestResetAndResetAfter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	})

	f := NewNewsletter(client, nil)
	f.SetField(FieldEmail, "me@example.com")
	f.Submit(context.Background())
	require.Equal(t, types.SubmitSuccess, f.Status().State)

	f.Reset()
	assert.Equal(t, types.SubmitIdle, f.Status().State)

	f.SetField(FieldEmail, "me@example.com")
	f.Submit(context.Background())
	f.ResetAfter(10 * time.Millisecond)
	assert.Eventually(t, func() bool {
		return f.Status().State == types.SubmitIdle
	}, time.Second, 5*time.Millisecond)
}
