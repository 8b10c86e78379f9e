package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/bodycam_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(Config{URL: srv.URL + "/", AnonKey: "anon-test", Timeout: time.Second})
	require.NoError(t, err)
	return c, srv
}

var draft = models.ComplaintDraft{
	FullName: "Jane Roe",
	Country:  "Ireland",
	City:     "Dublin",
	Summary:  "Officer shouted at me",
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(Config{AnonKey: "k"})
	assert.Error(t, err)
	_, err = New(Config{URL: "http://x"})
	assert.Error(t, err)
}

func TestCreateComplaint_Success(t *testing.T) {
	// Подготовка
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/complaints", r.URL.Path)
		assert.Equal(t, "anon-test", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-test", r.Header.Get("Authorization"))
		assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))
		assert.Equal(t, "key-1", r.Header.Get("Idempotency-Key"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"full_name": "Jane Roe",
			"country":   "Ireland",
			"city":      "Dublin",
			"summary":   "Officer shouted at me",
		}, body)
		w.WriteHeader(http.StatusCreated)
	})

	// Действие
	err := c.CreateComplaint(context.Background(), draft, "key-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestCreateComplaint_RejectedIsNotRetried(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"bad row"}`)
	})

	err := c.CreateComplaint(context.Background(), draft, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrServerRejected)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "bad row")
	assert.Equal(t, 1, calls)
}

func TestCreateComplaint_TransportFailure(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	err := c.CreateComplaint(context.Background(), draft, "")

	assert.ErrorIs(t, err, models.ErrTransport)
	assert.NotErrorIs(t, err, models.ErrServerRejected)
}

func TestCreateComplaint_Timeout(t *testing.T) {
	release := make(chan struct{})
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.CreateComplaint(ctx, draft, "")

	assert.ErrorIs(t, err, models.ErrTimeout)
}

func TestListComplaints_Success(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":1,"full_name":"A","country":"B","city":"C","summary":"D"},{"id":2,"full_name":"E","country":"F","city":"G","summary":"H"}]`)
	})

	complaints, err := c.ListComplaints(context.Background())

	require.NoError(t, err)
	require.Len(t, complaints, 2)
	assert.Equal(t, models.Complaint{ID: 1, FullName: "A", Country: "B", City: "C", Summary: "D"}, complaints[0])
	assert.Equal(t, int64(2), complaints[1].ID)
}

func TestListComplaints_Empty(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})

	complaints, err := c.ListComplaints(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, complaints)
	assert.Empty(t, complaints)
}

func TestListComplaints_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "ошибка сервера", handler: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{name: "битый json", handler: func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[{"id":1,`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, tt.handler)

			complaints, err := c.ListComplaints(context.Background())

			assert.ErrorIs(t, err, models.ErrFetch)
			assert.Nil(t, complaints)
		})
	}
}

func TestSignIn(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "secret1" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"invalid_grant"}`)
			return
		}
		_, _ = io.WriteString(w, `{"access_token":"tok"}`)
	})

	session, err := c.SignIn(context.Background(), models.Credentials{Email: "a@b.io", Password: "secret1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"access_token":"tok"}`, string(session))

	_, err = c.SignIn(context.Background(), models.Credentials{Email: "a@b.io", Password: "wrong"})
	assert.ErrorIs(t, err, models.ErrAuthRejected)
}

func TestSignUp(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.SignUp(context.Background(), models.Credentials{Email: "a@b.io", Password: "secret1"})

	assert.ErrorIs(t, err, models.ErrServerRejected)
	assert.NotErrorIs(t, err, models.ErrAuthRejected)
}
