package database

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mandal-ledger-go/internal/models"
)

var DB *gorm.DB

func Connect() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user, password, host, port, dbname, sslmode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	logrus.Info("connected to PostgreSQL")
	DB = db
}

// Migrate applies the schema. Admin/Mandal go first so the cascade foreign
// keys on the dependent tables can be created.
func Migrate() {
	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.Mandal{},
		&models.SubUser{},
		&models.Month{},
		&models.MemberData{},
	); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}
}

// SeedAdmin ensures the operator account exists. Idempotent.
func SeedAdmin(phone, password string) {
	var count int64
	DB.Model(&models.Admin{}).Where("phone_number = ?", phone).Count(&count)
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Fatal("hashing admin password failed")
	}
	if err := DB.Create(&models.Admin{PhoneNumber: phone, PasswordHash: string(hash)}).Error; err != nil {
		logrus.WithError(err).Error("seeding admin failed")
		return
	}
	logrus.WithField("phone", phone).Info("seeded admin account")
}
