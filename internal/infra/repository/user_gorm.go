package repository

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "github.com/vazqueztomas/barbershop/internal/domain/user"
	"github.com/vazqueztomas/barbershop/internal/httperr"
	"github.com/vazqueztomas/barbershop/internal/models"
)

type UserGormRepository struct {
	db       *gorm.DB
	resetTTL time.Duration
}

func NewUserGormRepository(db *gorm.DB, resetTTL time.Duration) *UserGormRepository {
	if resetTTL <= 0 {
		resetTTL = time.Hour
	}
	return &UserGormRepository{db: db, resetTTL: resetTTL}
}

func (r *UserGormRepository) CreateUser(ctx context.Context, email, username, fullName, password string) (*models.User, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ErrBusiness(domain.ErrUsernameTaken)
	}

	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ErrBusiness(domain.ErrEmailTaken)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:          email,
		Username:       username,
		FullName:       fullName,
		HashedPassword: string(hashed),
		IsActive:       true,
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(domain.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(domain.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate deliberately collapses "no such user" and "wrong
// password" into one error so callers cannot leak which part failed.
func (r *UserGormRepository) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(domain.ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness(domain.ErrInvalidCredentials)
	}

	return &user, nil
}

func (r *UserGormRepository) CreatePasswordResetToken(ctx context.Context, email string) (string, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}

	token, err := randomToken(32)
	if err != nil {
		return "", err
	}
	expires := time.Now().UTC().Add(r.resetTTL)

	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"password_reset_token":   token,
			"password_reset_expires": expires,
		}).Error; err != nil {
		return "", err
	}

	return token, nil
}

// ResetPassword is a single conditional UPDATE: of two concurrent
// attempts with the same token, exactly one can match the WHERE clause.
func (r *UserGormRepository) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return httperr.ErrBusiness(domain.ErrResetFailed)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("password_reset_token = ? AND password_reset_expires > ?", token, time.Now().UTC()).
		Updates(map[string]any{
			"hashed_password":        string(hashed),
			"password_reset_token":   "",
			"password_reset_expires": nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(domain.ErrResetFailed)
	}
	return nil
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
