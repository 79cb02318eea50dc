package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/callegarimattia/battleship/internal/dto"
	"github.com/stretchr/testify/require"
)

// TestE2E_FullGameScenario drives a complete board against the local
// practice judge over real HTTP, firing blind until the board reports
// finished, mirroring the teacher's httptest.NewServer(app.E) harness.
func TestE2E_FullGameScenario(t *testing.T) {
	t.Parallel()

	app := &Application{}
	app.Setup()

	ts := httptest.NewServer(app.E)
	defer ts.Close()

	client := &testClient{t: t, baseURL: ts.URL, token: "e2e-token", client: ts.Client()}

	status := client.status()
	require.Equal(t, "", status.Cell)
	require.False(t, status.Finished)

	var last dto.FireResponse
	for y := 0; y < 12 && !last.Finished; y++ {
		for x := 0; x < 12 && !last.Finished; x++ {
			last = client.fire(y, x)
		}
	}

	require.True(t, last.Finished, "board must become fully discovered after firing every cell")
	require.LessOrEqual(t, last.MoveCount, 144)
}

// TestE2E_MissingTokenForbidden verifies the 403 bearer-token contract.
func TestE2E_MissingTokenForbidden(t *testing.T) {
	t.Parallel()

	app := &Application{}
	app.Setup()

	ts := httptest.NewServer(app.E)
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/fire")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// TestE2E_ResetWipe exercises S6: reset wipes both board and user data.
func TestE2E_ResetWipe(t *testing.T) {
	t.Parallel()

	app := &Application{}
	app.Setup()

	ts := httptest.NewServer(app.E)
	defer ts.Close()

	client := &testClient{t: t, baseURL: ts.URL, token: "reset-token", client: ts.Client()}

	client.fire(0, 0)
	client.reset(true)

	status := client.status()
	require.Equal(t, 0, status.MoveCount)
}

// --- Test Helper ---

type testClient struct {
	t       *testing.T
	baseURL string
	token   string
	client  *http.Client
}

func (c *testClient) do(path string) *http.Response {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	require.NoError(c.t, err)
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	require.NoError(c.t, err)
	return resp
}

func (c *testClient) decode(resp *http.Response, dest any) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	require.Equal(c.t, http.StatusOK, resp.StatusCode, string(body))
	require.NoError(c.t, json.Unmarshal(body, dest))
}

func (c *testClient) status() dto.FireResponse {
	var resp dto.FireResponse
	c.decode(c.do("/fire"), &resp)
	return resp
}

func (c *testClient) fire(row, column int) dto.FireResponse {
	var resp dto.FireResponse
	c.decode(c.do(fmt.Sprintf("/fire/%d/%d", row, column)), &resp)
	return resp
}

func (c *testClient) reset(wipe bool) {
	path := "/reset"
	if wipe {
		path += "?wipe"
	}
	resp := c.do(path)
	defer resp.Body.Close()
	require.Equal(c.t, http.StatusOK, resp.StatusCode)
}
