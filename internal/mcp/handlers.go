package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hashcompose/reqforge/internal/history"
	"github.com/hashcompose/reqforge/internal/requirement"
)

// handleComposeRequirement runs the full pipeline and persists the result.
func (s *Server) handleComposeRequirement(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description, err := request.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: description"), nil
	}

	req := requirement.Requirement{Description: description}

	var ec requirement.EnterpriseContext
	ec.Industry = request.GetString("industry", "")
	if raw := request.GetString("regulatory_frameworks", ""); raw != "" {
		for _, fw := range strings.Split(raw, ",") {
			if fw = strings.TrimSpace(fw); fw != "" {
				ec.RegulatoryList = append(ec.RegulatoryList, fw)
			}
		}
	}
	if !ec.IsEmpty() {
		req.Context = &ec
	}

	result, err := s.composer.Compose(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("composition failed: %v", err)), nil
	}

	if s.runs != nil {
		// Persistence failure should not hide a finished run from the caller.
		_ = s.runs.Save(ctx, result)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

// handleClassifyRequirement classifies without generating code.
func (s *Server) handleClassifyRequirement(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description, err := request.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: description"), nil
	}

	cls := s.classify.Classify(ctx, requirement.Requirement{Description: description})

	out, err := json.MarshalIndent(cls, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding classification: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

// handleListRuns lists stored runs newest-first.
func (s *Server) handleListRuns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}

	summaries, err := s.runs.List(ctx, history.ListFilter{
		Intent:   request.GetString("intent", ""),
		Industry: request.GetString("industry", ""),
		Limit:    limit,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing runs failed: %v", err)), nil
	}

	if len(summaries) == 0 {
		return mcp.NewToolResultText("No stored runs match. Compose a requirement first with compose_requirement."), nil
	}

	return mcp.NewToolResultText(formatRunSummaries(summaries)), nil
}

// handleGetRun fetches one stored run by ID.
func (s *Server) handleGetRun(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("run_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: run_id"), nil
	}

	result, err := s.runs.Get(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding run: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

// formatRunSummaries converts run summaries into a text listing for agent
// consumption.
func formatRunSummaries(summaries []history.RunSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d run(s):\n", len(summaries)))

	for i, sum := range summaries {
		sb.WriteString(fmt.Sprintf("\n--- Run %d ---\n", i+1))
		sb.WriteString(fmt.Sprintf("ID: %s\n", sum.ID))
		if !sum.CreatedAt.IsZero() {
			sb.WriteString(fmt.Sprintf("Created: %s\n", sum.CreatedAt.Format("2006-01-02 15:04:05")))
		}
		sb.WriteString(fmt.Sprintf("Requirement: %s\n", sum.Requirement))
		sb.WriteString(fmt.Sprintf("Intent: %s\n", sum.Intent))
		if sum.Industry != "" {
			sb.WriteString(fmt.Sprintf("Industry: %s\n", sum.Industry))
		}
		sb.WriteString(fmt.Sprintf("Approach: %s\n", sum.Approach))
		sb.WriteString(fmt.Sprintf("Confidence: %d | Quality: %d | Artifacts: %d | Refinement rounds: %d\n",
			sum.OverallConfidence, sum.QualityScore, sum.ArtifactCount, sum.RefinementRounds))
	}

	return sb.String()
}
