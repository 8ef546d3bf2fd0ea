package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/vazqueztomas/barbershop/internal/domain/haircut"
	"github.com/vazqueztomas/barbershop/internal/dto"
	"github.com/vazqueztomas/barbershop/internal/httperr"
	"github.com/vazqueztomas/barbershop/internal/models"
)

type HaircutGormRepository struct {
	db *gorm.DB
}

func NewHaircutGormRepository(db *gorm.DB) *HaircutGormRepository {
	return &HaircutGormRepository{db: db}
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (r *HaircutGormRepository) GetAll(ctx context.Context) ([]models.Haircut, error) {
	var cuts []models.Haircut
	if err := r.db.WithContext(ctx).
		Order("date DESC, id DESC").
		Find(&cuts).Error; err != nil {
		return nil, err
	}
	return cuts, nil
}

func (r *HaircutGormRepository) GetByID(ctx context.Context, id uint) (*models.Haircut, error) {
	var cut models.Haircut
	if err := r.db.WithContext(ctx).First(&cut, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(domain.ErrNotFound)
		}
		return nil, err
	}
	return &cut, nil
}

func (r *HaircutGormRepository) Create(ctx context.Context, cut *models.Haircut) error {
	return r.db.WithContext(ctx).Create(cut).Error
}

func (r *HaircutGormRepository) Update(ctx context.Context, cut *models.Haircut) error {
	res := r.db.WithContext(ctx).
		Model(&models.Haircut{}).
		Where("id = ?", cut.ID).
		Updates(map[string]any{
			"client_name":  cut.ClientName,
			"service_name": cut.ServiceName,
			"price":        cut.Price,
			"date":         cut.Date,
			"time":         cut.Time,
			"count":        cut.Count,
			"tip":          cut.Tip,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(domain.ErrNotFound)
	}
	return nil
}

func (r *HaircutGormRepository) UpdatePrice(ctx context.Context, id uint, price float64) (*models.Haircut, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Haircut{}).
		Where("id = ?", id).
		Update("price", price)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrBusiness(domain.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

func (r *HaircutGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Haircut{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(domain.ErrNotFound)
	}
	return nil
}

// --------------------------------------------------
// History
// --------------------------------------------------

func (r *HaircutGormRepository) GetByDate(ctx context.Context, date string) ([]models.Haircut, error) {
	var cuts []models.Haircut
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("id DESC").
		Find(&cuts).Error; err != nil {
		return nil, err
	}
	return cuts, nil
}

func (r *HaircutGormRepository) DeleteByDate(ctx context.Context, date string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("date = ?", date).
		Delete(&models.Haircut{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *HaircutGormRepository) GetDailySummary(ctx context.Context) ([]dto.DailyTotal, error) {
	var rows []dto.DailyTotal
	if err := r.db.WithContext(ctx).
		Model(&models.Haircut{}).
		Select("date, SUM(price) AS total").
		Group("date").
		Order("date DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *HaircutGormRepository) DaySummary(ctx context.Context, date string) (*dto.DaySummary, error) {
	var row struct {
		Count int64
		Total float64
		Tip   float64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Haircut{}).
		Select("COUNT(*) AS count, COALESCE(SUM(price), 0) AS total, COALESCE(SUM(tip), 0) AS tip").
		Where("date = ?", date).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	return &dto.DaySummary{
		Date:  date,
		Count: row.Count,
		Total: row.Total,
		Tip:   row.Tip,
	}, nil
}

// --------------------------------------------------
// Client aggregates
// --------------------------------------------------

func (r *HaircutGormRepository) UniqueClients(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&models.Haircut{}).
		Distinct("client_name").
		Order("client_name ASC").
		Pluck("client_name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

const clientStatsSelect = "client_name, COUNT(*) AS total_cuts, " +
	"COALESCE(SUM(price), 0) AS total_spent, COALESCE(SUM(tip), 0) AS total_tip, " +
	"MAX(date) AS last_visit"

func (r *HaircutGormRepository) ClientStats(ctx context.Context, name string) (*dto.ClientStats, error) {
	var stats dto.ClientStats
	res := r.db.WithContext(ctx).
		Model(&models.Haircut{}).
		Select(clientStatsSelect).
		Where("client_name = ?", name).
		Group("client_name").
		Scan(&stats)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrBusiness(domain.ErrClientNotFound)
	}

	var services []string
	if err := r.db.WithContext(ctx).
		Model(&models.Haircut{}).
		Distinct("service_name").
		Where("client_name = ?", name).
		Order("service_name ASC").
		Pluck("service_name", &services).Error; err != nil {
		return nil, err
	}
	stats.Services = services

	return &stats, nil
}

// Ranking ties are broken by client name ascending so results stay
// stable across runs.

func (r *HaircutGormRepository) TopClients(ctx context.Context, limit int) ([]dto.ClientStats, error) {
	return r.rankedClients(ctx, "total_cuts DESC, client_name ASC", limit)
}

func (r *HaircutGormRepository) ClientsBySpent(ctx context.Context, limit int) ([]dto.ClientStats, error) {
	return r.rankedClients(ctx, "total_spent DESC, client_name ASC", limit)
}

func (r *HaircutGormRepository) rankedClients(ctx context.Context, order string, limit int) ([]dto.ClientStats, error) {
	var rows []dto.ClientStats
	if err := r.db.WithContext(ctx).
		Model(&models.Haircut{}).
		Select(clientStatsSelect).
		Group("client_name").
		Order(order).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *HaircutGormRepository) ClientHistory(ctx context.Context, name string) ([]models.Haircut, error) {
	var cuts []models.Haircut
	if err := r.db.WithContext(ctx).
		Where("client_name = ?", name).
		Order("date DESC, id DESC").
		Find(&cuts).Error; err != nil {
		return nil, err
	}
	return cuts, nil
}

// Compile-time check
var _ domain.Repository = (*HaircutGormRepository)(nil)
