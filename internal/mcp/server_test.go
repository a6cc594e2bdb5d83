package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hashcompose/reqforge/internal/classifier"
	"github.com/hashcompose/reqforge/internal/composer"
	"github.com/hashcompose/reqforge/internal/db"
	"github.com/hashcompose/reqforge/internal/history"
	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/ladder"
)

// newTestMCPServer wires an MCP server over an in-memory database and a
// composer with no providers, so every tool call runs deterministically.
func newTestMCPServer(t *testing.T) *Server {
	t.Helper()

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	kb := knowledge.Default()
	lad := ladder.New(nil, 0)
	comp := composer.New(kb, nil, lad, nil, composer.Options{})
	cls := classifier.New(kb, nil, lad, "")
	return NewServer(comp, cls, history.NewStore(database))
}

// textContent extracts the text payload of a tool result.
func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("tool result content is not text: %T", result.Content[0])
	}
	return text.Text
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"compose_requirement", composeRequirementTool, "compose_requirement"},
		{"classify_requirement", classifyRequirementTool, "classify_requirement"},
		{"list_runs", listRunsTool, "list_runs"},
		{"get_run", getRunTool, "get_run"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestMCPServer(t)
	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.composer == nil || srv.classify == nil || srv.runs == nil {
		t.Error("dependencies not set")
	}
}

func TestHandleComposeRequirement(t *testing.T) {
	srv := newTestMCPServer(t)
	ctx := context.Background()

	t.Run("basic composition", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"description": "Transfer loyalty tokens between customer accounts",
		}

		result, err := srv.handleComposeRequirement(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}

		var run composer.Result
		if err := json.Unmarshal([]byte(textContent(t, result)), &run); err != nil {
			t.Fatalf("result is not a JSON run: %v", err)
		}
		if run.ID == "" {
			t.Error("run carries no ID")
		}
		if len(run.Artifacts) == 0 {
			t.Error("run carries no artifacts")
		}
	})

	t.Run("industry context flows into classification", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"description":           "Track batch custody for drug shipments",
			"industry":              "pharmaceutical",
			"regulatory_frameworks": "FDA CFR Part 11, DSCSA",
		}

		result, err := srv.handleComposeRequirement(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}

		var run composer.Result
		if err := json.Unmarshal([]byte(textContent(t, result)), &run); err != nil {
			t.Fatalf("result is not a JSON run: %v", err)
		}
		if run.Requirement.Context == nil {
			t.Fatal("enterprise context not carried into the run")
		}
		if run.Requirement.Context.Industry != "pharmaceutical" {
			t.Errorf("context industry = %q", run.Requirement.Context.Industry)
		}
		if len(run.Requirement.Context.RegulatoryList) != 2 {
			t.Errorf("regulatory list = %v, want 2 entries", run.Requirement.Context.RegulatoryList)
		}
	})

	t.Run("missing description", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleComposeRequirement(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing description")
		}
	})
}

func TestHandleClassifyRequirement(t *testing.T) {
	srv := newTestMCPServer(t)
	ctx := context.Background()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{
		"description": "Create an immutable audit trail for financial transactions",
	}

	result, err := srv.handleClassifyRequirement(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}

	var cls classifier.Classification
	if err := json.Unmarshal([]byte(textContent(t, result)), &cls); err != nil {
		t.Fatalf("result is not a JSON classification: %v", err)
	}
	if cls.BusinessIntent.Primary == "" {
		t.Error("classification carries no business intent")
	}
	if cls.ConfidenceScore.Overall < 0 || cls.ConfidenceScore.Overall > 100 {
		t.Errorf("overall confidence %d out of range", cls.ConfidenceScore.Overall)
	}
}

func TestHandleListAndGetRuns(t *testing.T) {
	srv := newTestMCPServer(t)
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleListRuns(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatal("empty listing should not be an error")
		}
		if !strings.Contains(textContent(t, result), "No stored runs") {
			t.Error("expected empty-store hint")
		}
	})

	// Compose one run so listing and fetching have something to return.
	composeReq := mcp.CallToolRequest{}
	composeReq.Params.Arguments = map[string]any{
		"description": "Issue digital receipts for retail purchases",
	}
	composeResult, err := srv.handleComposeRequirement(ctx, composeReq)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	var run composer.Result
	if err := json.Unmarshal([]byte(textContent(t, composeResult)), &run); err != nil {
		t.Fatalf("unmarshal composed run: %v", err)
	}

	t.Run("listing includes the run", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleListRuns(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if !strings.Contains(textContent(t, result), run.ID) {
			t.Error("listing does not mention the stored run")
		}
	})

	t.Run("get run by id", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"run_id": run.ID}

		result, err := srv.handleGetRun(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}

		var fetched composer.Result
		if err := json.Unmarshal([]byte(textContent(t, result)), &fetched); err != nil {
			t.Fatalf("result is not a JSON run: %v", err)
		}
		if fetched.ID != run.ID {
			t.Errorf("fetched run %q, want %q", fetched.ID, run.ID)
		}
	})

	t.Run("get missing run", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"run_id": "does-not-exist"}

		result, err := srv.handleGetRun(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing run")
		}
	})

	t.Run("missing run_id param", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleGetRun(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing run_id")
		}
	})
}

func TestFormatRunSummaries(t *testing.T) {
	summaries := []history.RunSummary{
		{
			ID:                "run-1",
			Requirement:       "Transfer tokens",
			Intent:            "asset-tokenization",
			Industry:          "finance",
			Approach:          "template-based",
			OverallConfidence: 82,
			QualityScore:      77,
			ArtifactCount:     2,
		},
	}

	out := formatRunSummaries(summaries)
	for _, want := range []string{"run-1", "Transfer tokens", "asset-tokenization", "template-based", "82"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}
