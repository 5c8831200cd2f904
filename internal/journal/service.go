package journal

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/analysis"
	"github.com/Gaurav-yadav-03/moodscape-flow/internal/models"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrInvalidMood   = errors.New("invalid mood")
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD")
	ErrDuplicateDate = errors.New("an entry already exists for this date")
	ErrEmptyContent  = errors.New("content is required")
)

const dateLayout = "2006-01-02"

// pg unique_violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Service owns journal entry CRUD. Every query is scoped to the owning
// user, so a foreign entry ID behaves exactly like a missing one.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, req *CreateEntryRequest) (*models.Entry, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}

	mood := req.Mood
	if mood == "" {
		mood = models.MoodNeutral
	}
	if !models.IsValidMood(mood) {
		return nil, ErrInvalidMood
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		date = parsed
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Entry{}).
		Where("user_id = ? AND entry_date = ?", userID, date).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateDate
	}

	entry := models.Entry{
		UserID:    userID,
		EntryDate: date,
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Mood:      mood,
		Images:    req.Images,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		// Two requests for the same day can both pass the count check.
		if isUniqueViolation(err) {
			return nil, ErrDuplicateDate
		}
		return nil, err
	}

	slog.Info("journal entry created", "user_id", userID, "entry_id", entry.ID, "date", date.Format(dateLayout))
	return &entry, nil
}

func (s *Service) Get(ctx context.Context, userID, entryID uuid.UUID) (*models.Entry, error) {
	var entry models.Entry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns the user's entries newest-first, paginated.
func (s *Service) List(ctx context.Context, userID uuid.UUID, page, limit int) (*ListEntriesResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Entry{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, err
	}

	entries := make([]models.Entry, 0, limit)
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("entry_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return &ListEntriesResponse{Entries: entries, Total: total, Page: page, Limit: limit}, nil
}

// Search matches the query case-insensitively against title and content.
func (s *Service) Search(ctx context.Context, userID uuid.UUID, query string, limit int) ([]models.Entry, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	pattern := "%" + strings.TrimSpace(query) + "%"

	entries := make([]models.Entry, 0, limit)
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND (title ILIKE ? OR content ILIKE ?)", userID, pattern, pattern).
		Order("entry_date DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (s *Service) Update(ctx context.Context, userID, entryID uuid.UUID, req *UpdateEntryRequest) (*models.Entry, error) {
	entry, err := s.Get(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		entry.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, ErrEmptyContent
		}
		entry.Content = *req.Content
		// Stale analysis must not outlive the text it described.
		entry.AISummary = ""
		entry.AIReflection = ""
	}
	if req.Mood != nil {
		if !models.IsValidMood(*req.Mood) {
			return nil, ErrInvalidMood
		}
		entry.Mood = *req.Mood
	}
	if req.Images != nil {
		entry.Images = *req.Images
	}

	if err := s.db.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.Entry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// SaveAnalysis persists analyzer output onto the entry. The suggested mood
// only overwrites the stored one when the caller opted in.
func (s *Service) SaveAnalysis(ctx context.Context, entry *models.Entry, result analysis.EntryAnalysis, applyMood bool) error {
	entry.AISummary = result.Summary
	entry.AIReflection = result.Reflection
	if applyMood && models.IsValidMood(result.Mood.Mood) {
		entry.Mood = result.Mood.Mood
	}
	return s.db.WithContext(ctx).Save(entry).Error
}

// EntriesSince returns the user's entries on or after the cutoff,
// oldest-first.
func (s *Service) EntriesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Entry, error) {
	var entries []models.Entry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date >= ?", userID, since).
		Order("entry_date ASC").
		Find(&entries).Error
	return entries, err
}

// MoodHistory renders the last n days of entries as mood history for
// trend analysis.
func (s *Service) MoodHistory(ctx context.Context, userID uuid.UUID, days int) ([]analysis.MoodDay, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	entries, err := s.EntriesSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	history := make([]analysis.MoodDay, len(entries))
	for i, e := range entries {
		history[i] = analysis.MoodDay{Date: e.EntryDate, Mood: e.Mood}
	}
	return history, nil
}
