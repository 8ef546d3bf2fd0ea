package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/vazqueztomas/barbershop/internal/domain/catalog"
	"github.com/vazqueztomas/barbershop/internal/httperr"
	"github.com/vazqueztomas/barbershop/internal/models"
)

type ServicePriceGormRepository struct {
	db *gorm.DB
}

func NewServicePriceGormRepository(db *gorm.DB) *ServicePriceGormRepository {
	return &ServicePriceGormRepository{db: db}
}

func (r *ServicePriceGormRepository) List(ctx context.Context) ([]models.ServicePrice, error) {
	var prices []models.ServicePrice
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *ServicePriceGormRepository) GetByName(ctx context.Context, name string) (*models.ServicePrice, error) {
	var sp models.ServicePrice
	if err := r.db.WithContext(ctx).
		Where("service_name = ?", name).
		First(&sp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(domain.ErrNotFound)
		}
		return nil, err
	}
	return &sp, nil
}

func (r *ServicePriceGormRepository) Create(ctx context.Context, sp *models.ServicePrice) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ServicePrice{}).
		Where("service_name = ?", sp.ServiceName).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness(domain.ErrAlreadyExists)
	}
	return r.db.WithContext(ctx).Create(sp).Error
}

func (r *ServicePriceGormRepository) UpdatePrice(ctx context.Context, name string, price int) (*models.ServicePrice, error) {
	res := r.db.WithContext(ctx).
		Model(&models.ServicePrice{}).
		Where("service_name = ?", name).
		Update("base_price", price)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrBusiness(domain.ErrNotFound)
	}
	return r.GetByName(ctx, name)
}

func (r *ServicePriceGormRepository) Delete(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).
		Where("service_name = ?", name).
		Delete(&models.ServicePrice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(domain.ErrNotFound)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ServicePriceGormRepository)(nil)
