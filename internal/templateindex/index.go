// Package templateindex provides semantic lookup over the template
// inventory. Keyword matching in the knowledge base stays the
// deterministic baseline; the vector index supplements it when an
// embedder is configured, surfacing templates whose wording differs
// from the requirement's.
package templateindex

import (
	"context"
	"fmt"
	"strings"

	chromem "github.com/philippgille/chromem-go"

	"github.com/hashcompose/reqforge/internal/embeddings"
	"github.com/hashcompose/reqforge/internal/knowledge"
)

const collectionName = "templates"

// Match is one semantic template match.
type Match struct {
	Template   knowledge.Template
	Similarity float32
}

// Index is an in-memory vector index over the template inventory.
type Index struct {
	kb         *knowledge.Base
	db         *chromem.DB
	collection *chromem.Collection
}

// New builds the index and embeds every inventory template once. The
// inventory is small and static, so startup embedding is cheap and the
// index never needs invalidation.
func New(ctx context.Context, kb *knowledge.Base, embedder embeddings.Embedder) (*Index, error) {
	db := chromem.NewDB()
	ef := embeddings.ToChromemFunc(embedder)

	col, err := db.GetOrCreateCollection(collectionName, nil, ef)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	templates := kb.Templates
	docs := make([]chromem.Document, len(templates))
	for i, t := range templates {
		docs[i] = chromem.Document{
			ID:      t.Name,
			Content: templateText(t),
			Metadata: map[string]string{
				"intent": t.Intent,
			},
		}
	}
	if err := col.AddDocuments(ctx, docs, 1); err != nil {
		return nil, fmt.Errorf("indexing templates: %w", err)
	}

	return &Index{kb: kb, db: db, collection: col}, nil
}

// Search returns the templates semantically closest to the requirement
// text, best first.
func (ix *Index) Search(ctx context.Context, query string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 5
	}
	if count := ix.collection.Count(); count == 0 {
		return nil, nil
	} else if limit > count {
		limit = count
	}

	results, err := ix.collection.Query(ctx, query, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	matches := make([]Match, 0, len(results))
	for _, r := range results {
		tpl, ok := ix.kb.TemplateByName(r.ID)
		if !ok {
			continue
		}
		matches = append(matches, Match{Template: tpl, Similarity: r.Similarity})
	}
	return matches, nil
}

// Templates adapts Search for callers that only need the ranked
// inventory entries. It satisfies the strategy selector's search hook.
func (ix *Index) Templates(ctx context.Context, query string, limit int) ([]knowledge.Template, error) {
	matches, err := ix.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	out := make([]knowledge.Template, len(matches))
	for i, m := range matches {
		out[i] = m.Template
	}
	return out, nil
}

// templateText flattens one inventory entry into the text that gets
// embedded.
func templateText(t knowledge.Template) string {
	parts := []string{t.Name, t.Description, t.Intent}
	if len(t.Keywords) > 0 {
		parts = append(parts, strings.Join(t.Keywords, " "))
	}
	if len(t.Components) > 0 {
		parts = append(parts, strings.Join(t.Components, " "))
	}
	return strings.Join(parts, "\n")
}
