package detection

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testQueryID = "550e8400-e29b-41d4-a716-446655440000"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:   srv.URL + "/",
		APIKey:    "test-key",
		ClientID:  "client-1",
		RateLimit: 1000,
		RateBurst: 100,
	})
}

func TestSubmit_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/detecciones", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))

		var req SubmitRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, testQueryID, req.QueryID)
		assert.Equal(t, "https://img.example.com/a.jpg", req.ImageURL)

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"estado":"procesando","uuid_consulta":"`+testQueryID+`","success":true}`)
	})

	resp, err := client.Submit(context.Background(), testQueryID, "https://img.example.com/a.jpg")

	require.NoError(t, err)
	assert.Equal(t, "procesando", resp.Status)
	assert.Equal(t, testQueryID, resp.QueryID)
}

func TestSubmit_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"invalid api key"}`)
	})

	_, err := client.Submit(context.Background(), testQueryID, "https://img.example.com/a.jpg")

	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, http.StatusUnauthorized, submitErr.StatusCode)
	assert.ErrorContains(t, err, "invalid api key")
}

func TestSubmit_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(Config{BaseURL: srv.URL, APIKey: "k"})

	_, err := client.Submit(context.Background(), testQueryID, "https://img.example.com/a.jpg")

	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Zero(t, submitErr.StatusCode)
}

func TestFetchResult_NotReady(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/detecciones/"+testQueryID, r.URL.Path)
		_, _ = io.WriteString(w, `{"estado":"procesando","resultado":null,"uuid_consulta":"`+testQueryID+`"}`)
	})

	_, err := client.FetchResult(context.Background(), testQueryID)

	assert.ErrorIs(t, err, ErrNotReady)
}

func TestFetchResult_Completed(t *testing.T) {
	body := `{
		"client_id":"client-1",
		"estado":"completado",
		"resultado":{
			"categoria":"bache",
			"confianza":0.93,
			"detalles":{"boxes":[[1,2,3,4]]},
			"num_detecciones":2,
			"timestamp":"2025-11-09T04:47:48",
			"url_resultado":"https://res.example.com/annotated.jpg"
		},
		"uuid_consulta":"` + testQueryID + `"
	}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, body)
	})

	res, err := client.FetchResult(context.Background(), testQueryID)

	require.NoError(t, err)
	assert.Equal(t, "bache", res.Category)
	assert.Equal(t, 0.93, res.Confidence)
	assert.Equal(t, 2, res.DetectionCount)
	assert.Equal(t, "https://res.example.com/annotated.jpg", res.ResultURL)
	assert.JSONEq(t, `{"boxes":[[1,2,3,4]]}`, string(res.Details))
	assert.JSONEq(t, body, string(res.Raw))
}

func TestFetchResult_UnknownID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.FetchResult(context.Background(), testQueryID)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.False(t, errors.Is(err, ErrNotReady))
}

func TestFetchResult_Malformed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"resultado":`)
	})

	_, err := client.FetchResult(context.Background(), testQueryID)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestVerifyCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/clients/verify", r.URL.Path)
		_, _ = io.WriteString(w, `{"success":true,"client":{"client_id":"client-1","is_active":true,"name":"muni"}}`)
	})

	creds, err := client.VerifyCredentials(context.Background())

	require.NoError(t, err)
	assert.True(t, creds.Client.IsActive)
}

func TestVerifyCredentials_ClientMismatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"client":{"client_id":"other","is_active":true}}`)
	})

	_, err := client.VerifyCredentials(context.Background())

	assert.ErrorContains(t, err, "expected \"client-1\"")
}

func TestFetchResult_ConfidenceOutOfRange(t *testing.T) {
	for _, confidence := range []string{"1.5", "-0.1"} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"estado":"completado","resultado":{"categoria":"bache","confianza":`+confidence+`}}`)
		})

		_, err := client.FetchResult(context.Background(), testQueryID)

		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr, confidence)
		assert.ErrorContains(t, err, "outside [0, 1]")
	}
}

func TestAwaitResult_RateLimitBeyondDeadlineIsExhaustion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"estado":"procesando","resultado":null}`)
	}))
	t.Cleanup(srv.Close)

	// Один токен на старте, следующий только через ~1000 секунд
	client := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key", RateLimit: 0.001, RateBurst: 1})
	policy := PollPolicy{
		Interval:    time.Millisecond,
		MaxAttempts: 5,
		Timeout:     2 * time.Second,
	}

	_, attempts, err := AwaitResult(context.Background(), client, testQueryID, policy)

	assert.ErrorIs(t, err, ErrPollExhausted)
	var fetchErr *FetchError
	assert.False(t, errors.As(err, &fetchErr))
	assert.Equal(t, 2, attempts)
}
