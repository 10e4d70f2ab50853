package Assistant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"MissionControl/Models"
)

// Fallback texts surfaced to the operator in place of an error. The chat
// endpoint never fails; connectivity problems become one of these strings.
const (
	MsgMissingKey = "ERROR: System API Key missing. Please initialize environment variables."
	MsgEmptyReply = "Uplink silent. No data received from the neural network."
	MsgTransport  = "CRITICAL_ERROR: Transmission interrupted. Connection to the AI Node failed."

	// Greeting is the canned first assistant message shown by the chat panel.
	Greeting = "Mission Control AI online. How can I assist your workflow today?"
)

// Client talks to the Gemini generateContent API.
type Client struct {
	APIKey  string
	BaseURL string
	Model   string
	HTTP    *http.Client
}

// GenerateRequest is the generateContent payload.
type GenerateRequest struct {
	SystemInstruction *Content          `json:"system_instruction,omitempty"`
	Contents          []Content         `json:"contents"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GenerationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

// GenerateResponse is the subset of the API response the assistant reads.
type GenerateResponse struct {
	Candidates []struct {
		Content Content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewClient builds an assistant client from the environment.
func NewClient() *Client {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Client{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: "https://generativelanguage.googleapis.com/v1beta",
		Model:   model,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// briefing is the fixed system instruction, with the static team roster
// embedded as mission context.
func briefing() string {
	roster, err := json.MarshalIndent(Models.TeamData, "", "  ")
	if err != nil {
		roster = []byte("[]")
	}
	return fmt.Sprintf(`
You are the AI Mission Control Assistant for Casuall Camping. Your objective is to help team members and stakeholders navigate the high-performance operational workflow.

MISSION CONTEXT:
%s

OPERATIONAL PROTOCOLS:
1. RESPONSE STYLE: Professional, technical, concise, and slightly futuristic.
2. DATA INTEGRITY: Only refer to the provided team matrix for person-to-task mapping.
3. TERMINOLOGY: Use terms like 'Node synchronization', 'Uplink active', 'Operational parameters', and 'Logistics deployment'.
4. ASSISTANCE: Be highly efficient. Do not provide unnecessary fluff. Provide direct answers to system status queries.
`, roster)
}

// Complete forwards a prompt to the model and returns the reply text. All
// failures degrade to a fallback string; the caller never sees an error.
func (c *Client) Complete(prompt string) string {
	if c.APIKey == "" {
		return MsgMissingKey
	}

	payload := GenerateRequest{
		SystemInstruction: &Content{Parts: []Part{{Text: briefing()}}},
		Contents:          []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		GenerationConfig:  &GenerationConfig{Temperature: 0.65, TopP: 0.9},
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		log.Printf("assistant: marshal failed: %v", err)
		return MsgTransport
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		log.Printf("assistant: request build failed: %v", err)
		return MsgTransport
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("assistant: connectivity error: %v", err)
		return MsgTransport
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("assistant: read failed: %v", err)
		return MsgTransport
	}

	var parsed GenerateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Printf("assistant: decode failed: %v", err)
		return MsgTransport
	}
	if resp.StatusCode != http.StatusOK || parsed.Error != nil {
		if parsed.Error != nil {
			log.Printf("assistant: api error %d: %s", parsed.Error.Code, parsed.Error.Message)
		} else {
			log.Printf("assistant: unexpected status %d", resp.StatusCode)
		}
		return MsgTransport
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return MsgEmptyReply
	}
	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return MsgEmptyReply
	}
	return text
}
