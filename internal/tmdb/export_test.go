package tmdb

import "testing"

// TestableClient creates a Client pointed at a test server.
func TestableClient(t *testing.T, apiKey, baseURL string) *Client {
	t.Helper()

	client := NewClient(apiKey, "")
	client.http.SetBaseURL(baseURL)

	return client
}
