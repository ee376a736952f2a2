package database

import (
	"fmt"

	"github.com/hobbyconnect/server/internal/config"
	"github.com/hobbyconnect/server/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Initialize opens the database and migrates the schema. Postgres is
// used when a DB host is configured, SQLite otherwise.
func Initialize(cfg config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.Host != "" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			cfg.Host, cfg.User, cfg.Password, cfg.DataBase, cfg.Port, cfg.SSLMode)
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Community{},
		&models.CommunityMember{},
		&models.ChatMessage{},
		&models.HobbyRecommendation{},
		&models.LightningMeetup{},
		&models.LightningMeetupParticipant{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
