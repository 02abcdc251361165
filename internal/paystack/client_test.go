package paystack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyTransaction_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/tx_123", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"status": "success",
				"reference": "tx_123",
				"amount": 500000,
				"currency": "NGN",
				"gateway_response": "Successful"
			}
		}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	data, err := client.VerifyTransaction(context.Background(), "sk_test_abc", "tx_123")

	assert.NoError(t, err)
	assert.Equal(t, "success", data.Status)
	assert.Equal(t, "tx_123", data.Reference)
	assert.Equal(t, int64(500000), data.Amount)
}

func TestVerifyTransaction_HostileReference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The reference must stay a single path segment no matter what the
		// callback handed us.
		assert.Equal(t, "/transaction/verify/..%2Frefund%2Fref123", r.URL.EscapedPath())
		assert.Empty(t, r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": false, "message": "Transaction reference not found"}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	_, err := client.VerifyTransaction(context.Background(), "sk_test_abc", "../refund/ref123")

	assert.Error(t, err)
}

func TestVerifyTransaction_QueryInjectionReference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/tx_1%3Ffoo=bar", r.URL.EscapedPath())
		assert.Empty(t, r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": false, "message": "Transaction reference not found"}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	_, err := client.VerifyTransaction(context.Background(), "sk_test_abc", "tx_1?foo=bar")

	assert.Error(t, err)
}

func TestVerifyTransaction_EmptyReference(t *testing.T) {
	client := NewClientWithBaseURL("http://paystack.invalid")
	_, err := client.VerifyTransaction(context.Background(), "sk_test_abc", "")

	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestVerifyTransaction_FailedTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {"status": "failed", "reference": "tx_123", "amount": 500000, "gateway_response": "Declined"}
		}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	data, err := client.VerifyTransaction(context.Background(), "sk_test_abc", "tx_123")

	// A declined transaction is still a successful API call; the caller
	// inspects data.Status.
	assert.NoError(t, err)
	assert.Equal(t, "failed", data.Status)
}

func TestVerifyTransaction_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	_, err := client.VerifyTransaction(context.Background(), "sk_bad", "tx_123")

	assert.Error(t, err)
}

func TestVerifyTransaction_EnvelopeFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": false, "message": "Transaction reference not found"}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	_, err := client.VerifyTransaction(context.Background(), "sk_test_abc", "tx_missing")

	assert.Error(t, err)
}
