package history

import (
	"context"
	"testing"
	"time"

	"github.com/hashcompose/reqforge/internal/classifier"
	"github.com/hashcompose/reqforge/internal/composer"
	"github.com/hashcompose/reqforge/internal/db"
	"github.com/hashcompose/reqforge/internal/generator"
	"github.com/hashcompose/reqforge/internal/quality"
	"github.com/hashcompose/reqforge/internal/requirement"
	"github.com/hashcompose/reqforge/internal/strategy"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func sampleResult(id string) *composer.Result {
	return &composer.Result{
		ID:          id,
		Requirement: requirement.Requirement{Description: "track shipments"},
		Classification: classifier.Classification{
			BusinessIntent: classifier.BusinessIntent{Primary: classifier.IntentSupplyChainCompliance},
			Industry:       classifier.IndustryClassification{Industry: "pharmaceutical"},
			Compliance:     classifier.ComplianceClassification{Level: classifier.ComplianceAdvanced},
			ConfidenceScore: classifier.ConfidenceScore{
				Overall: 72,
			},
			Source: classifier.SourceRules,
		},
		Strategy: strategy.CompositionStrategy{Approach: strategy.ApproachHybrid},
		Artifacts: []generator.Artifact{
			{FilePath: "src/services/tracker.ts", Content: "export class Tracker {}", Language: "typescript", Method: generator.MethodFallback, Confidence: 35},
		},
		Quality: quality.Assessment{
			OverallScore: 55,
			Issues: []quality.Issue{
				{File: "src/services/tracker.ts", Category: "structural", Severity: quality.SeverityMedium, Message: "no error handling"},
			},
		},
		RefinementRounds: 2,
		StartedAt:        time.Now().UTC().Add(-time.Minute),
		FinishedAt:       time.Now().UTC(),
	}
}

func TestSaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	original := sampleResult("run-1")
	if err := store.Save(ctx, original); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Requirement.Description != original.Requirement.Description {
		t.Errorf("requirement = %q, want %q", got.Requirement.Description, original.Requirement.Description)
	}
	if got.Classification.BusinessIntent.Primary != classifier.IntentSupplyChainCompliance {
		t.Errorf("intent = %q", got.Classification.BusinessIntent.Primary)
	}
	if len(got.Artifacts) != 1 || got.Artifacts[0].FilePath != "src/services/tracker.ts" {
		t.Errorf("artifacts = %+v", got.Artifacts)
	}
	if got.Quality.OverallScore != 55 {
		t.Errorf("quality score = %d, want 55", got.Quality.OverallScore)
	}
}

func TestGetMissing(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Get(context.Background(), "no-such-run"); err == nil {
		t.Fatal("expected an error for a missing run")
	}
}

func TestListFiltersAndOrders(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := sampleResult("run-a")
	first.FinishedAt = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	second := sampleResult("run-b")
	second.FinishedAt = time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)
	second.Classification.Industry.Industry = "financial-services"

	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Save first: %v", err)
	}
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	all, err := store.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(all) = %d, want 2", len(all))
	}
	if all[0].ID != "run-b" {
		t.Errorf("first listed = %q, want newest run", all[0].ID)
	}

	pharma, err := store.List(ctx, ListFilter{Industry: "pharmaceutical"})
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(pharma) != 1 || pharma[0].ID != "run-a" {
		t.Errorf("filtered list = %+v", pharma)
	}
}

func TestDeleteBefore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	old := sampleResult("run-old")
	old.FinishedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := store.Save(ctx, old); err != nil {
		t.Fatalf("Save: %v", err)
	}

	deleted, err := store.DeleteBefore(ctx, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("DeleteBefore: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
}
