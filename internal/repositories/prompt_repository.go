package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"promptly/internal/models/db_models"
)

// PromptFilter narrows the public library listing. Category "" or "All"
// means no category filter; Search matches case-insensitively across
// title, tags and the prompt text itself.
type PromptFilter struct {
	Category string
	Search   string
}

type PromptRepository interface {
	Create(ctx context.Context, prompt *db_models.Prompt) (uuid.UUID, error)
	FindByID(ctx context.Context, id string) (*db_models.Prompt, error)
	List(ctx context.Context, filter PromptFilter, page, pageSize int) ([]db_models.Prompt, int64, error)
}

type promptRepository struct {
	db *gorm.DB
}

func NewPromptRepository(db *gorm.DB) PromptRepository {
	return &promptRepository{db: db}
}

func (r *promptRepository) Create(ctx context.Context, prompt *db_models.Prompt) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(prompt).Error; err != nil {
		return uuid.Nil, err
	}
	return prompt.ID, nil
}

func (r *promptRepository) FindByID(ctx context.Context, id string) (*db_models.Prompt, error) {
	var prompt db_models.Prompt
	err := r.db.WithContext(ctx).First(&prompt, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prompt, nil
}

func (r *promptRepository) List(ctx context.Context, filter PromptFilter, page, pageSize int) ([]db_models.Prompt, int64, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Prompt{})

	if filter.Category != "" && filter.Category != "All" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR tags ILIKE ? OR full_prompt ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var prompts []db_models.Prompt
	offset := (page - 1) * pageSize

	err := query.
		Order("created_at desc").
		Offset(offset).
		Limit(pageSize).
		Find(&prompts).Error
	if err != nil {
		return nil, 0, err
	}
	return prompts, total, nil
}
