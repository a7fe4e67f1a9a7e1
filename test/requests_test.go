//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/gymtrack/internal/middleware"

	"github.com/stretchr/testify/require"
)

// doRequest sends an authorized request and returns the status code and body.
func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path string, body any) (int, []byte) {
	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", serverEndpoint, path), reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set(middleware.AuthTokenHeader, testAppToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	return resp.StatusCode, respBytes
}

// doJSON sends an authorized request, checks the status and decodes the response into out.
func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path string, body any, wantStatus int, out any) {
	status, respBytes := s.doRequest(ctx, method, path, body)
	require.Equal(s.T(), wantStatus, status, string(respBytes))
	if out != nil {
		require.NoError(s.T(), json.Unmarshal(respBytes, out))
	}
}

func (s *IntegrationTestSuite) resetState(ctx context.Context) {
	_, err := s.DB.ExecContext(ctx, "TRUNCATE workout_session_exercise, workout_session, exercise, gymtrack_settings CASCADE")
	require.NoError(s.T(), err)

	status, _ := s.doRequest(ctx, http.MethodDelete, "/gymstats/session", nil)
	require.Equal(s.T(), http.StatusOK, status)
}

func (s *IntegrationTestSuite) countRows(ctx context.Context, query string, args ...any) int {
	var count int
	require.NoError(s.T(), s.DB.QueryRowContext(ctx, query, args...).Scan(&count))
	return count
}
