package haircut

import (
	"context"

	"github.com/vazqueztomas/barbershop/internal/dto"
	"github.com/vazqueztomas/barbershop/internal/models"
)

// Error codes raised by implementations.
const (
	ErrNotFound       = "haircut_not_found"
	ErrClientNotFound = "client_not_found"
)

type Repository interface {
	// -------- CRUD --------
	GetAll(ctx context.Context) ([]models.Haircut, error)

	GetByID(ctx context.Context, id uint) (*models.Haircut, error)

	Create(ctx context.Context, cut *models.Haircut) error

	// Update replaces the mutable fields of an existing record. Unknown
	// ids fail, they are never upserted.
	Update(ctx context.Context, cut *models.Haircut) error

	UpdatePrice(ctx context.Context, id uint, price float64) (*models.Haircut, error)

	Delete(ctx context.Context, id uint) error

	// -------- History --------
	GetByDate(ctx context.Context, date string) ([]models.Haircut, error)

	DeleteByDate(ctx context.Context, date string) (int64, error)

	GetDailySummary(ctx context.Context) ([]dto.DailyTotal, error)

	DaySummary(ctx context.Context, date string) (*dto.DaySummary, error)

	// -------- Client aggregates --------
	UniqueClients(ctx context.Context) ([]string, error)

	ClientStats(ctx context.Context, name string) (*dto.ClientStats, error)

	TopClients(ctx context.Context, limit int) ([]dto.ClientStats, error)

	ClientsBySpent(ctx context.Context, limit int) ([]dto.ClientStats, error)

	ClientHistory(ctx context.Context, name string) ([]models.Haircut, error)
}
