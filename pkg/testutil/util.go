package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tamaliftics/backend/config"
	"github.com/tamaliftics/backend/internal/model"
	"github.com/tamaliftics/backend/migration"
	"github.com/tamaliftics/backend/pkg/authenticator"
	"github.com/tamaliftics/backend/pkg/logger"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

func MockContext() context.Context {
	cfg := config.Configs{
		Env: "testing",
		ApiServer: config.ServerConfigs{
			Host: "localhost",
			Port: "8080",
		},
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Secret:     "secret",
				Expiration: time.Minute,
			},
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithTokenEngine(ctx,
		authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken))

	// A named shared in-memory database, so every pooled connection sees the
	// same schema while contexts of different tests stay isolated.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	ctx = xcontext.WithDB(ctx, db)
	if err := migration.Migrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}
