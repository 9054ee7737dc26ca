package testutil

import (
	"context"

	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

var (
	User1 = &entity.User{
		Base:           entity.Base{ID: "user1"},
		Name:           "user1",
		Email:          "user1@example.com",
		HashedPassword: "",
		Role:           entity.UserRole,
	}

	User2 = &entity.User{
		Base:           entity.Base{ID: "user2"},
		Name:           "user2",
		Email:          "user2@example.com",
		HashedPassword: "",
		Role:           entity.UserRole,
	}
)

func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
}

func insertUsers(ctx context.Context) {
	for _, user := range []*entity.User{User1, User2} {
		if err := xcontext.DB(ctx).Create(user).Error; err != nil {
			panic(err)
		}
	}
}
