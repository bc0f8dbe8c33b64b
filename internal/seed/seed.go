package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/app/storage"
	"github.com/mertkaya/edumanage/internal/config"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
	"github.com/mertkaya/edumanage/internal/pkg/auth"
)

// CreateDefaultData creates the seed admin account if it does not exist.
func CreateDefaultData(ctx context.Context, store storage.Storage, cfg *config.Config, lgr zerolog.Logger) error {
	if _, err := store.GetUserByUsername(ctx, cfg.Seed.AdminUsername); err == nil {
		lgr.Info().Str("username", cfg.Seed.AdminUsername).Msg("Admin user already exists, skipping creation")
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}

	lgr.Info().Msg("Creating default admin user...")

	hashedPassword, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &models.User{
		Username: cfg.Seed.AdminUsername,
		Password: hashedPassword,
		Email:    cfg.Seed.AdminEmail,
		Role:     models.RoleAdmin,
	}
	if err := store.CreateUser(ctx, admin); err != nil {
		// A concurrent boot may have created it between the check and the insert.
		if errors.Is(err, apperrors.ErrUsernameAlreadyExists) || errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Info().Msg("Admin user created concurrently, skipping")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Str("adminID", admin.ID).Msg("Default admin user created successfully")
	return nil
}
