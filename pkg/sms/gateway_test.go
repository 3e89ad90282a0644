package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-backoffice-api/pkg/config"
)

func TestHTTPGatewaySend(t *testing.T) {
	var got httpRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"msg-1","status":"queued"}`))
	}))
	defer srv.Close()

	gw := NewHTTPGateway(config.SMSConfig{GatewayURL: srv.URL, APIKey: "key", SenderID: "SCHOOL", Timeout: time.Second}, nil)
	receipt, err := gw.Send(context.Background(), Message{To: "0123", Body: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", receipt.ProviderID)
	assert.Equal(t, "key", got.APIKey)
	assert.Equal(t, "0123", got.To)
	assert.Equal(t, "hello", got.Message)
}

func TestHTTPGatewayRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":"insufficient balance"}`))
	}))
	defer srv.Close()

	gw := NewHTTPGateway(config.SMSConfig{GatewayURL: srv.URL}, nil)
	_, err := gw.Send(context.Background(), Message{To: "0123", Body: "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient balance")
}

func TestHTTPGatewayNotConfigured(t *testing.T) {
	gw := NewHTTPGateway(config.SMSConfig{}, nil)
	_, err := gw.Send(context.Background(), Message{To: "1", Body: "x"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewDisabledReturnsLogGateway(t *testing.T) {
	gw := New(config.SMSConfig{Enabled: false}, nil)
	_, ok := gw.(*LogGateway)
	assert.True(t, ok)
}
