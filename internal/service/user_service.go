package service

import (
	"context"
	"fmt"
	"time"

	"userform/internal/cache"
	"userform/internal/model"
	"userform/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes domain operations.
type UserService interface {
	SaveUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
}

// Cache is the part of cache.Client the service relies on.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) bool
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

var _ Cache = (*cache.Client)(nil)

type userService struct {
	repo  repository.UserRepository
	cache Cache
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache Cache) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) SaveUser(ctx context.Context, user *model.User) (*model.User, error) {
	// an upsert must not leave the old record readable if the write fails
	if user.ID != nil {
		_ = s.cache.Delete(ctx, s.cacheKey(*user.ID))
	}
	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, s.cacheKey(saved.IDValue()), saved, userCacheTTL)
	return saved, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	return user, nil
}
