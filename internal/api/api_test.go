package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohada-dev/fisc/internal/auditlog"
	"github.com/ohada-dev/fisc/internal/toolkit"
)

func newTestServer(t *testing.T, rec Recorder) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(&Handler{Registry: toolkit.New(), Recorder: rec}))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListTools(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/v1/tools")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tools []toolDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tools))
	assert.NotEmpty(t, tools)

	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
		assert.NotEmpty(t, tool.Description, "tool %s has no description", tool.Name)
	}
	assert.Contains(t, names, "is_calculate")
	assert.Contains(t, names, "benford_analyze")
}

func TestCallTool(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := postJSON(t, srv.URL+"/v1/tools/vat_compute",
		`{"amount_excl_tax": 1000000, "rate": 18}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result, ok := body["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 180000.0, result["vat"])
	assert.Equal(t, 1180000.0, result["amount_incl_tax"])
}

func TestCallTool_EmptyBody(t *testing.T) {
	srv := newTestServer(t, nil)

	// countries_list takes no arguments; an empty body must work.
	resp, err := http.Post(srv.URL+"/v1/tools/countries_list", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCallTool_Unknown(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := postJSON(t, srv.URL+"/v1/tools/no_such_tool", `{}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body["error"], "no_such_tool")
}

func TestCallTool_BadJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := postJSON(t, srv.URL+"/v1/tools/vat_compute", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "invalid JSON")
}

func TestCallTool_BusinessError(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := postJSON(t, srv.URL+"/v1/tools/breakeven_compute",
		`{"revenue": 0, "variable_costs": 100}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func TestRecorder(t *testing.T) {
	var recorded []auditlog.Entry
	srv := newTestServer(t, func(e auditlog.Entry) { recorded = append(recorded, e) })

	_, _ = postJSON(t, srv.URL+"/v1/tools/vat_compute", `{"amount_excl_tax": 100, "rate": 18}`)
	_, _ = postJSON(t, srv.URL+"/v1/tools/no_such_tool", `{}`)

	require.Len(t, recorded, 2)
	assert.Equal(t, "vat_compute", recorded[0].Tool)
	assert.Equal(t, "ok", recorded[0].Status)
	assert.Contains(t, recorded[0].Summary, "rate=18")
	assert.Equal(t, "error", recorded[1].Status)
}
