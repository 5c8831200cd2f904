package insights

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/models"
)

// Service loads a user's entry history and feeds it to the pure statistics
// functions. The statistics themselves never touch the database.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) history(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Entry, error) {
	var entries []models.Entry
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if !since.IsZero() {
		q = q.Where("entry_date >= ?", since)
	}
	err := q.Order("entry_date ASC").Find(&entries).Error
	return entries, err
}

func (s *Service) Streaks(ctx context.Context, userID uuid.UUID, today time.Time) (Streaks, error) {
	entries, err := s.history(ctx, userID, time.Time{})
	if err != nil {
		return Streaks{}, err
	}
	return ComputeStreaks(entryDates(entries), today), nil
}

func (s *Service) Trends(ctx context.Context, userID uuid.UUID, today time.Time) (TrendReport, error) {
	entries, err := s.history(ctx, userID, today.AddDate(0, 0, -30))
	if err != nil {
		return TrendReport{}, err
	}
	return AnalyzeTrends(entries, today), nil
}

func (s *Service) Calendar(ctx context.Context, userID uuid.UUID, today time.Time) ([]CalendarDay, error) {
	entries, err := s.history(ctx, userID, today.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	return BuildCalendar(entries, today), nil
}

func (s *Service) Badges(ctx context.Context, userID uuid.UUID, today time.Time) ([]Badge, error) {
	entries, err := s.history(ctx, userID, time.Time{})
	if err != nil {
		return nil, err
	}
	return EvaluateBadges(entries, today), nil
}
