// resources.go implements MCP resource handlers for guides and configuration.
//
// MCP resources provide read-only access via URI schemes, letting LLM clients
// load the syntax guide as context without calling a tool.
//
// URIs follow workdur://guide/{topic} and workdur://config.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/workdur/guide"
	"github.com/jpl-au/workdur/internal/config"
)

var (
	// ErrInvalidURI indicates a malformed resource URI, helping clients
	// debug URI construction issues.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyTopic indicates a missing topic in a guide URI.
	ErrEmptyTopic = errors.New("empty guide topic")
)

// readGuide returns a guide page as resource contents.
func (h *handlers) readGuide(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) { //nolint:revive // ctx for future use
	uri := req.Params.URI
	topic, err := parseGuideURI(uri)
	if err != nil {
		return nil, err
	}

	content, err := guide.Get(topic)
	if err != nil {
		return nil, fmt.Errorf("guide %q: %w", topic, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// readConfig returns the effective configuration as JSON.
func (h *handlers) readConfig(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) { //nolint:revive // ctx for future use
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(cfg.All(), "", "  ")
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// parseGuideURI extracts the topic from workdur://guide/{topic}.
func parseGuideURI(uri string) (string, error) {
	const prefix = "workdur://guide/"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	topic := strings.TrimPrefix(uri, prefix)
	if topic == "" {
		return "", ErrEmptyTopic
	}
	if strings.Contains(topic, "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return topic, nil
}
