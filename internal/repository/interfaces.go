package repository

import (
	"context"

	"github.com/hmiyata/shindan/internal/models"
)

// LeadRepository handles captured-lead data access
type LeadRepository interface {
	Insert(ctx context.Context, lead models.Lead) (int64, error)
	Get(ctx context.Context, id int64) (*models.Lead, error)
	List(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error)
	Count(ctx context.Context, filter models.LeadFilter) (int, error)
	UpdateForwardStatus(ctx context.Context, id int64, status string) error
}
