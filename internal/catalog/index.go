package catalog

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"sflix-catalog-service/internal/models"
)

// DefaultSearchLimit caps search results when no limit is given.
const DefaultSearchLimit = 20

// Index is an in-memory full-text index over catalog titles.
type Index struct {
	index bleve.Index
}

// NewIndex creates an empty in-memory index.
func NewIndex() (*Index, error) {
	idx, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &Index{index: idx}, nil
}

func buildMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	doc := bleve.NewDocumentMapping()

	title := bleve.NewTextFieldMapping()
	title.Analyzer = en.AnalyzerName
	doc.AddFieldMappingsAt("title", title)

	desc := bleve.NewTextFieldMapping()
	desc.Analyzer = en.AnalyzerName
	desc.Store = false
	doc.AddFieldMappingsAt("description", desc)

	genre := bleve.NewTextFieldMapping()
	genre.Analyzer = en.AnalyzerName
	doc.AddFieldMappingsAt("genre", genre)

	rating := bleve.NewTextFieldMapping()
	rating.Analyzer = keyword.Name
	doc.AddFieldMappingsAt("age_rating", rating)

	indexMapping.DefaultMapping = doc
	return indexMapping
}

func document(t models.Title) map[string]any {
	return map[string]any{
		"title":       t.Title,
		"description": t.Description,
		"genre":       strings.Join(t.Genre, " "),
		"age_rating":  t.AgeRating,
	}
}

// Upsert indexes or reindexes a title.
func (i *Index) Upsert(t models.Title) error {
	return i.index.Index(t.ID, document(t))
}

// IndexAll indexes titles in one batch.
func (i *Index) IndexAll(titles []models.Title) error {
	batch := i.index.NewBatch()
	for _, t := range titles {
		if err := batch.Index(t.ID, document(t)); err != nil {
			return fmt.Errorf("batch index %s: %w", t.ID, err)
		}
	}
	return i.index.Batch(batch)
}

// Remove drops a title from the index.
func (i *Index) Remove(id string) error {
	return i.index.Delete(id)
}

// Search returns matching title ids by relevance.
func (i *Index) Search(text string, limit int) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}, nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	titleQ := bleve.NewMatchQuery(text)
	titleQ.SetField("title")
	titleQ.SetBoost(3)
	titleQ.SetFuzziness(1)

	descQ := bleve.NewMatchQuery(text)
	descQ.SetField("description")

	genreQ := bleve.NewMatchQuery(text)
	genreQ.SetField("genre")
	genreQ.SetBoost(2)

	ratingQ := bleve.NewTermQuery(text)
	ratingQ.SetField("age_rating")

	req := bleve.NewSearchRequestOptions(bleve.NewDisjunctionQuery([]query.Query{titleQ, descQ, genreQ, ratingQ}...), limit, 0, false)
	res, err := i.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	ids := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}

// Close releases the index.
func (i *Index) Close() error {
	return i.index.Close()
}
