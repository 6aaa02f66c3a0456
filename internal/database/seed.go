package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/config"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/constants"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
)

// SeedUsers creates the default admin and hr accounts on an empty users
// table. Passwords come from the environment; accounts without a configured
// password are skipped so a bare deployment never gets a guessable login.
func SeedUsers(cfg *config.Config) error {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	seeds := []struct {
		username string
		role     string
		password string
	}{
		{"admin", constants.RoleAdmin, cfg.SeedAdminPassword},
		{"hr", constants.RoleHR, cfg.SeedHRPassword},
	}

	for _, s := range seeds {
		if s.password == "" {
			log.Printf("Seed user %q skipped: no password configured", s.username)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", s.username, err)
		}
		user := models.User{
			Username:     s.username,
			PasswordHash: string(hash),
			Role:         s.role,
		}
		if err := DB.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", s.username, err)
		}
		log.Printf("Seeded %s user %q", s.role, s.username)
	}

	return nil
}
