package reports

import (
	"log"

	"github.com/MemberTrackr/MT-Backend/internal/db"
)

func Init() {
	// Ensure the reports schema exists first
	if err := db.EnsureSchema(db.DB, "reports"); err != nil {
		log.Fatal("Failed to create reports schema: ", err)
	}

	if err := db.DB.AutoMigrate(&Report{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
