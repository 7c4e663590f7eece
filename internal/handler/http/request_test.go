package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "single object", body: `{"name":"Sara"}`, want: "Sara"},
		{name: "trailing whitespace", body: "{\"name\":\"Sara\"}\n  ", want: "Sara"},
		{name: "empty body", body: "", want: ""},
		{name: "second value", body: `{"name":"Sara"}{"name":"Omar"}`, wantErr: true},
		{name: "trailing garbage", body: `{"name":"Sara"} junk`, wantErr: true},
		{name: "malformed", body: `{"name":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var got payload
			err := decodeJSON(httptest.NewRecorder(), req, &got)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidBody)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestDecodeJSON_RejectsOversizedBody(t *testing.T) {
	body := `{"name":"` + strings.Repeat("x", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var got struct {
		Name string `json:"name"`
	}
	assert.ErrorIs(t, decodeJSON(httptest.NewRecorder(), req, &got), errInvalidBody)
}
