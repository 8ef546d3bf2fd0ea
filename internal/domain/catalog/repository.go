package catalog

import (
	"context"

	"github.com/vazqueztomas/barbershop/internal/models"
)

const (
	ErrNotFound      = "service_not_found"
	ErrAlreadyExists = "service_already_exists"
)

// Repository is the named service → base price catalog.
type Repository interface {
	List(ctx context.Context) ([]models.ServicePrice, error)

	GetByName(ctx context.Context, name string) (*models.ServicePrice, error)

	Create(ctx context.Context, sp *models.ServicePrice) error

	UpdatePrice(ctx context.Context, name string, price int) (*models.ServicePrice, error)

	Delete(ctx context.Context, name string) error
}
