package Models

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	path := os.Getenv("ACCOUNTS_DB_PATH")
	if path == "" {
		path = "database.db"
	}

	connection, err := gorm.Open(sqlite.Open(path))
	if err != nil {
		log.Fatalf("failed to open accounts database: %v", err)
	}
	DB = connection

	if err := DB.AutoMigrate(&User{}); err != nil {
		log.Println(err)
	}

	seedOperators()
}

// seedOperators creates the two fixed operator accounts if they are missing.
// Credentials match the original deployment; hardening is out of scope.
func seedOperators() {
	seed := []struct {
		username   string
		password   string
		permission int
	}{
		{"casuallworkupdate@123", "Casuall@123", PermissionAdmin},
		{"casuall@14", "casuall@14", PermissionAgent},
	}

	for _, s := range seed {
		var count int64
		DB.Model(&User{}).Where("username = ?", s.username).Count(&count)
		if count > 0 {
			continue
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			log.Println(err)
			continue
		}
		user := User{Username: s.username, Password: hashed, Permission: s.permission}
		if err := DB.Create(&user).Error; err != nil {
			log.Println(err)
		}
	}
}
