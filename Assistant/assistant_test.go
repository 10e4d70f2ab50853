package Assistant

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testClient(baseURL string) *Client {
	return &Client{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "gemini-2.0-flash",
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

func TestCompleteReturnsModelText(t *testing.T) {
	var gotSystem string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.0-flash:generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
			gotSystem = req.SystemInstruction.Parts[0].Text
		}
		if req.GenerationConfig == nil || req.GenerationConfig.Temperature != 0.65 {
			t.Error("generation config not forwarded")
		}
		json.NewEncoder(w).Encode(GenerateResponse{
			Candidates: []struct {
				Content Content `json:"content"`
			}{
				{Content: Content{Role: "model", Parts: []Part{{Text: "Uplink active. All nodes nominal."}}}},
			},
		})
	}))
	defer server.Close()

	got := testClient(server.URL).Complete("system status?")
	if got != "Uplink active. All nodes nominal." {
		t.Fatalf("unexpected reply: %q", got)
	}
	if !strings.Contains(gotSystem, "MISSION CONTEXT") || !strings.Contains(gotSystem, "Deepak") {
		t.Fatal("system briefing missing the roster context")
	}
}

func TestCompleteMissingKey(t *testing.T) {
	c := testClient("http://127.0.0.1:0")
	c.APIKey = ""
	if got := c.Complete("hello"); got != MsgMissingKey {
		t.Fatalf("expected missing-key fallback, got %q", got)
	}
}

func TestCompleteTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	if got := testClient(server.URL).Complete("hello"); got != MsgTransport {
		t.Fatalf("expected transport fallback, got %q", got)
	}
}

func TestCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	if got := testClient(server.URL).Complete("hello"); got != MsgTransport {
		t.Fatalf("expected transport fallback on API error, got %q", got)
	}
}

func TestCompleteEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	if got := testClient(server.URL).Complete("hello"); got != MsgEmptyReply {
		t.Fatalf("expected empty-reply fallback, got %q", got)
	}
}
