package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(ctx context.Context, u *user.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
	ListUsers(ctx context.Context, filter user.ListFilter) ([]user.User, error)
	SaveUser(ctx context.Context, u *user.User) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) CreateUser(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *DBUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	var u user.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) ListUsers(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
	var users []user.User
	q := r.db.WithContext(ctx).Model(&user.User{})
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if err := q.Order("first_name ASC, last_name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *DBUserRepo) SaveUser(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
