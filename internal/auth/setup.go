package auth

import (
	"log"

	"github.com/MemberTrackr/MT-Backend/internal/db"
)

func Init() {
	LoadSignKey()

	if err := db.EnsureSchema(db.DB, "app_auth"); err != nil {
		log.Fatal("Failed to ensure schema app_auth: ", err)
	}

	if err := db.DB.AutoMigrate(&User{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
