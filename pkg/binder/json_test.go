package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikiai/kbaccess/pkg/binder"
)

type checkRequest struct {
	Resource string   `json:"resource"`
	Action   string   `json:"action"`
	Tags     []string `json:"tags"`
	Owner    *struct {
		ID string `json:"id"`
	} `json:"owner"`
}

func newRequest(body, contentType string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestJSON(t *testing.T) {
	t.Parallel()
	bind := binder.JSON()

	t.Run("decodes and trims", func(t *testing.T) {
		var req checkRequest
		err := bind(newRequest(`{"resource":" files ","action":"read\n","tags":[" a "],"owner":{"id":" u1 "}}`, "application/json; charset=utf-8"), &req)
		require.NoError(t, err)
		assert.Equal(t, "files", req.Resource)
		assert.Equal(t, "read", req.Action)
		assert.Equal(t, []string{"a"}, req.Tags)
		require.NotNil(t, req.Owner)
		assert.Equal(t, "u1", req.Owner.ID)
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		want        error
	}{
		{name: "missing content type", body: `{}`, want: binder.ErrMissingContentType},
		{name: "wrong content type", body: `{}`, contentType: "text/plain", want: binder.ErrUnsupportedMediaType},
		{name: "malformed content type", body: `{}`, contentType: ";;", want: binder.ErrUnsupportedMediaType},
		{name: "empty body", body: ``, contentType: "application/json", want: binder.ErrFailedToParseJSON},
		{name: "syntax error", body: `{"resource":`, contentType: "application/json", want: binder.ErrFailedToParseJSON},
		{name: "unknown field", body: `{"resource":"files","extra":1}`, contentType: "application/json", want: binder.ErrFailedToParseJSON},
		{name: "wrong type", body: `{"resource":1}`, contentType: "application/json", want: binder.ErrFailedToParseJSON},
		{name: "trailing data", body: `{"resource":"files"}{}`, contentType: "application/json", want: binder.ErrFailedToParseJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req checkRequest
			assert.ErrorIs(t, bind(newRequest(tt.body, tt.contentType), &req), tt.want)
		})
	}
}

func TestJSON_MaxSize(t *testing.T) {
	t.Parallel()
	bind := binder.JSON(binder.WithMaxSize(16))

	var req checkRequest
	err := bind(newRequest(`{"resource":"`+strings.Repeat("x", 32)+`"}`, "application/json"), &req)
	assert.ErrorIs(t, err, binder.ErrBodyTooLarge)

	require.NoError(t, bind(newRequest(`{"action":"r"}`, "application/json"), &req))
}

func TestJSON_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := newRequest(`{}`, "application/json").WithContext(ctx)

	var req checkRequest
	assert.ErrorIs(t, binder.JSON()(r, &req), binder.ErrFailedToParseJSON)
}
