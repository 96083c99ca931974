package database

import (
	"fmt"
	"log"

	"survey_backend/internal/config"
	"survey_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Survey{},
		&model.Question{},
		&model.QuestionOption{},
		&model.Response{},
		&model.Answer{},
		&model.AnswerOption{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed an admin account so a fresh deployment is usable; user
	// registration itself lives outside this service.
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin := &model.User{
			Name:     "Administrator",
			Email:    "admin@localhost",
			Password: string(hash),
			Role:     model.Admin,
		}
		db.Create(admin)
		log.Println("Seeded default admin user")
	}

	return db, nil
}
