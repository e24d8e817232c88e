package repository

import (
	"context"
	"database/sql"
	"fmt"

	"sflix-catalog-service/internal/models"
)

// RecommendationRepository persists the recommendation audit log.
type RecommendationRepository struct {
	db *sql.DB
}

func NewRecommendationRepository(db *sql.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// Record stores the outcome of one gateway call.
func (r *RecommendationRepository) Record(ctx context.Context, e models.RecommendationLogEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO recommendation_log (call_id, kind, input, status, reason, item_count, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (call_id) DO NOTHING
	`, e.CallID, e.Kind, e.Input, e.Status, e.Reason, e.ItemCount, e.DurationMS, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert recommendation log: %w", err)
	}
	return nil
}

// ListRecent returns the latest limit entries, newest first.
func (r *RecommendationRepository) ListRecent(ctx context.Context, limit int) ([]models.RecommendationLogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT call_id, kind, input, status, reason, item_count, duration_ms, created_at
		FROM recommendation_log
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recommendation log: %w", err)
	}
	defer rows.Close()

	entries := []models.RecommendationLogEntry{}
	for rows.Next() {
		var e models.RecommendationLogEntry
		if err := rows.Scan(
			&e.CallID, &e.Kind, &e.Input, &e.Status,
			&e.Reason, &e.ItemCount, &e.DurationMS, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recommendation log: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
