package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL), srv
}

func TestFetchProductsBareArray(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		w.Write([]byte(`[{"product_id":"cf01","product_name":"Latte","category":"Coffees","sizes":[{"size":"S","size_id":"s1","price":40000}]}]`))
	})
	defer srv.Close()

	records, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "cf01", records[0].ProductID)
	assert.Equal(t, "Latte", records[0].ProductName)
	require.Len(t, records[0].Sizes, 1)
	assert.Equal(t, 40000.0, records[0].Sizes[0].Price)
}

func TestFetchProductsWrappedObject(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"product_id":"cf01"},{"product_id":"cf02"}]}`))
	})
	defer srv.Close()

	records, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "cf02", records[1].ProductID)
}

func TestFetchProductsUnexpectedShape(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"maintenance"}`))
	})
	defer srv.Close()

	_, err := client.FetchProducts(context.Background())
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "/api/products", formatErr.Endpoint)
}

func TestFetchProductsServerError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := client.FetchProducts(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer srv.Close()

	_, err := client.FetchCart(context.Background(), "expired-token")
	assert.True(t, errors.Is(err, ErrNotAuthenticated))
}

func TestBearerTokenForwarded(t *testing.T) {
	var gotAuth string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})
	defer srv.Close()

	_, err := client.FetchCart(context.Background(), "tok123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestFetchCartDecodesLines(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"cart_id":"c1","product_id":"cf01","size":"S","size_id":"s1","quantity":2,"discounted_price":32000,"product_name":"Latte"}]`))
	})
	defer srv.Close()

	lines, err := client.FetchCart(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "c1", lines[0].CartID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 32000.0, lines[0].DiscountedPrice)
}

func TestFetchMessagesEnvelope(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user_messages/cust1", r.URL.Path)
		w.Write([]byte(`{"success":true,"messages":[{"message_id":"MS1","content":"hi","direction":"user_to_admin"}]}`))
	})
	defer srv.Close()

	messages, err := client.FetchMessages(context.Background(), "tok", "cust1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "MS1", messages[0].MessageID)
}

func TestFetchMessagesRejected(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"unknown customer"}`))
	})
	defer srv.Close()

	_, err := client.FetchMessages(context.Background(), "tok", "cust1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown customer")
}

func TestSendMessageAck(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send_message", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"success":true,"message_id":"MS42","time":"2025-06-01 12:00"}`))
	})
	defer srv.Close()

	msg, err := client.SendMessage(context.Background(), "tok", "cust1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "MS42", msg.MessageID)
	assert.Equal(t, "hello", msg.Content)
	assert.Equal(t, "user_to_admin", msg.Direction)
}
