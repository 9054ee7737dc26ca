package repository

import (
	"context"
	"encoding/json"

	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/pkg/xcontext"
	"github.com/tamaliftics/backend/pkg/xredis"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateByID(ctx context.Context, id string, user *entity.User) error
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	redisClient xredis.Client
}

func NewUserRepository(redisClient xredis.Client) *userRepository {
	return &userRepository{redisClient: redisClient}
}

func (r *userRepository) cacheKey(id string) string {
	return "users:" + id
}

func (r *userRepository) cacheUser(ctx context.Context, user *entity.User) {
	b, err := json.Marshal(user)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot marshal user for caching: %v", err)
		return
	}

	if err := r.redisClient.Set(ctx, r.cacheKey(user.ID), string(b)); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot cache user: %v", err)
	}
}

func (r *userRepository) invalidateUser(ctx context.Context, id string) {
	if err := r.redisClient.Del(ctx, r.cacheKey(id)); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate cached user: %v", err)
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := xcontext.DB(ctx).Create(user).Error; err != nil {
		return err
	}

	r.cacheUser(ctx, user)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	cached, err := r.redisClient.Get(ctx, r.cacheKey(id))
	if err == nil {
		var user entity.User
		if jsonErr := json.Unmarshal([]byte(cached), &user); jsonErr == nil {
			return &user, nil
		}
	} else if err != xredis.Nil {
		xcontext.Logger(ctx).Warnf("Cannot get cached user: %v", err)
	}

	var user entity.User
	if err := xcontext.DB(ctx).Take(&user, "id=?", id).Error; err != nil {
		return nil, err
	}

	r.cacheUser(ctx, &user)
	return &user, nil
}

func (r *userRepository) GetByName(ctx context.Context, name string) (*entity.User, error) {
	var user entity.User
	if err := xcontext.DB(ctx).Take(&user, "name=?", name).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := xcontext.DB(ctx).Take(&user, "email=?", email).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) UpdateByID(ctx context.Context, id string, user *entity.User) error {
	if err := xcontext.DB(ctx).Model(&entity.User{}).
		Where("id=?", id).
		Updates(user).Error; err != nil {
		return err
	}

	r.invalidateUser(ctx, id)
	return nil
}

func (r *userRepository) DeleteByID(ctx context.Context, id string) error {
	if err := xcontext.DB(ctx).Delete(&entity.User{}, "id=?", id).Error; err != nil {
		return err
	}

	r.invalidateUser(ctx, id)
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := xcontext.DB(ctx).Model(&entity.User{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
