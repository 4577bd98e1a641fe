package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/reputaai/reputaai/internal/domain/review"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/mappers"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/models"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type ExternalReviewRepository struct {
	db     *gorm.DB
	mapper mappers.ExternalReviewMapper
	logger logger.Interface
}

func NewExternalReviewRepository(db *gorm.DB, logger logger.Interface) review.Repository {
	return &ExternalReviewRepository{
		db:     db,
		mapper: mappers.NewExternalReviewMapper(),
		logger: logger,
	}
}

// Upsert inserts or updates a review keyed by external_id. Provider fields
// are always refreshed; local reply state is only overwritten when the
// incoming row carries a provider-side reply, so a reply posted locally
// survives syncs that race the provider's propagation.
func (r *ExternalReviewRepository) Upsert(ctx context.Context, entity *review.ExternalReview) error {
	model := r.mapper.ToModel(entity)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"author_name": gorm.Expr("VALUES(author_name)"),
			"rating":      gorm.Expr("VALUES(rating)"),
			"comment":     gorm.Expr("VALUES(comment)"),
			"synced_at":   gorm.Expr("VALUES(synced_at)"),
			"reply_text":  gorm.Expr("IF(VALUES(reply_text) <> '', VALUES(reply_text), reply_text)"),
			"replied":     gorm.Expr("IF(VALUES(reply_text) <> '', 1, replied)"),
			"replied_at":  gorm.Expr("IF(VALUES(reply_text) <> '', VALUES(replied_at), replied_at)"),
		}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert review", "external_id", entity.ExternalID, "error", err)
		return fmt.Errorf("failed to upsert review: %w", err)
	}

	entity.ID = model.ID
	return nil
}

func (r *ExternalReviewRepository) GetByID(ctx context.Context, id uint) (*review.ExternalReview, error) {
	var model models.ExternalReviewModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *ExternalReviewRepository) GetByExternalID(ctx context.Context, externalID string) (*review.ExternalReview, error) {
	var model models.ExternalReviewModel

	if err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *ExternalReviewRepository) ListByBusinessID(ctx context.Context, businessID uint, filter review.ListFilter) ([]*review.ExternalReview, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ExternalReviewModel{}).Where("business_id = ?", businessID)

	if filter.Rating != nil {
		query = query.Where("rating = ?", *filter.Rating)
	}
	if filter.Replied != nil {
		query = query.Where("replied = ?", *filter.Replied)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var ms []*models.ExternalReviewModel
	err := query.Order("created_at DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&ms).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	return r.mapper.ToEntities(ms), total, nil
}

func (r *ExternalReviewRepository) UpdateReply(ctx context.Context, id uint, replyText string, repliedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.ExternalReviewModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reply_text": replyText,
			"replied":    true,
			"replied_at": repliedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update review reply", "id", id, "error", result.Error)
		return fmt.Errorf("failed to update review reply: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("review not found")
	}
	return nil
}

// StatsByBusinessID aggregates the dashboard figures in three queries:
// totals, the per-rating histogram, and the monthly series.
func (r *ExternalReviewRepository) StatsByBusinessID(ctx context.Context, businessID uint) (*review.Stats, error) {
	stats := &review.Stats{
		ByRating: make(map[int]int64),
		PerMonth: make(map[string]int64),
	}

	var totals struct {
		Total   int64
		Replied int64
		Average float64
	}
	err := r.db.WithContext(ctx).Model(&models.ExternalReviewModel{}).
		Select("COUNT(*) AS total, SUM(replied) AS replied, COALESCE(AVG(NULLIF(rating, 0)), 0) AS average").
		Where("business_id = ?", businessID).
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate review totals: %w", err)
	}
	stats.Total = totals.Total
	stats.Replied = totals.Replied
	stats.AverageRating = totals.Average

	var ratingRows []struct {
		Rating int
		Count  int64
	}
	err = r.db.WithContext(ctx).Model(&models.ExternalReviewModel{}).
		Select("rating, COUNT(*) AS count").
		Where("business_id = ?", businessID).
		Group("rating").
		Scan(&ratingRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate rating histogram: %w", err)
	}
	for _, row := range ratingRows {
		stats.ByRating[row.Rating] = row.Count
	}

	var monthRows []struct {
		Month string
		Count int64
	}
	err = r.db.WithContext(ctx).Model(&models.ExternalReviewModel{}).
		Select("DATE_FORMAT(created_at, '%Y-%m') AS month, COUNT(*) AS count").
		Where("business_id = ?", businessID).
		Group("month").
		Scan(&monthRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly counts: %w", err)
	}
	for _, row := range monthRows {
		stats.PerMonth[row.Month] = row.Count
	}

	return stats, nil
}
