package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WD-Technology/muzagrouppingpong/services"
)

func requestWithURLParam(param, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(param, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetIDFromURL(t *testing.T) {
	testCases := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "valid id", value: "42", want: 42},
		{name: "not a number", value: "abc", wantErr: true},
		{name: "zero", value: "0", wantErr: true},
		{name: "negative", value: "-3", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := getIDFromURL(requestWithURLParam("id", tc.value), "id")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestReadJSON(t *testing.T) {
	type input struct {
		Name string `json:"name"`
	}

	testCases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"name":"Ana"}`},
		{name: "empty body", body: "", wantErr: "body must not be empty"},
		{name: "malformed", body: `{"name":`, wantErr: "badly-formed JSON"},
		{name: "unknown field", body: `{"nickname":"Ana"}`, wantErr: "unknown key"},
		{name: "wrong type", body: `{"name":7}`, wantErr: `incorrect JSON type for field "name"`},
		{name: "trailing value", body: `{"name":"Ana"}{}`, wantErr: "single JSON value"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var dst input
			err := readJSON(w, r, &dst)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "Ana", dst.Name)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestMapServiceErrorToHTTP(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "player not found", err: services.ErrPlayerNotFound, wantStatus: http.StatusNotFound},
		{name: "match not found", err: services.ErrMatchNotFound, wantStatus: http.StatusNotFound},
		{name: "tournament not found", err: services.ErrTournamentNotFound, wantStatus: http.StatusNotFound},
		{name: "already finished", err: services.ErrMatchAlreadyFinished, wantStatus: http.StatusConflict},
		{name: "insufficient players", err: services.ErrInsufficientPlayers, wantStatus: http.StatusBadRequest},
		{name: "invalid side", err: services.ErrInvalidSide, wantStatus: http.StatusBadRequest},
		{name: "undecided", err: services.ErrMatchUndecided, wantStatus: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/matches/1", nil)
			mapServiceErrorToHTTP(w, r, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body, "error")
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	headers := http.Header{}
	headers.Set("X-Request-Id", "abc")

	err := writeJSON(w, http.StatusCreated, jsonResponse{"ok": true}, headers)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "abc", w.Header().Get("X-Request-Id"))
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}
