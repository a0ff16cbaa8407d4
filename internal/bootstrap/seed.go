// Package bootstrap holds one-time startup steps that must run before the
// server accepts traffic.
package bootstrap

import (
	"context"
	"log"

	"github.com/devdynamic/studio-backend/internal/config"
	"github.com/devdynamic/studio-backend/internal/model"
	"github.com/devdynamic/studio-backend/internal/repository"
	"github.com/devdynamic/studio-backend/internal/utils"
)

// SeedAdmin makes sure a default admin account exists.  It is an explicit,
// idempotent step invoked once from main rather than an import side effect,
// so multiple instances starting together at worst race on the unique email
// index and one of them logs a duplicate.  Missing env vars skip seeding;
// failures are logged and never abort startup, since an operator can still
// promote a user by hand.
func SeedAdmin(ctx context.Context, users *repository.UserRepo, cfg config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("seed: DEFAULT_ADMIN_EMAIL/PASSWORD not set, skipping admin seeding")
		return
	}

	existing, err := users.GetByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		if existing.Role == model.RoleAdmin {
			log.Println("seed: admin user already exists")
		} else {
			log.Printf("seed: %s exists with role %s, leaving it untouched", cfg.AdminEmail, existing.Role)
		}
		return
	}
	if err != repository.ErrNotFound {
		log.Printf("seed: lookup failed: %v", err)
		return
	}

	hash, err := utils.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		log.Printf("seed: hash password failed: %v", err)
		return
	}
	if _, err := users.Create(ctx, "Admin", cfg.AdminEmail, hash, model.RoleAdmin); err != nil {
		log.Printf("seed: create admin failed: %v", err)
		return
	}
	log.Println("seed: admin user created")
}
