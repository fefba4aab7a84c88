package reports

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MemberTrackr/MT-Backend/internal/auth"
	"github.com/MemberTrackr/MT-Backend/internal/db"
	"github.com/MemberTrackr/MT-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserReportsHandler returns all of a member's reports ordered by day.
// An unknown member just gets an empty list.
func UserReportsHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	reports := []Report{}
	err := db.DB.Where("user_id = ?", userID).Order("day asc").Find(&reports).Error
	if err != nil {
		http.Error(w, "Failed to fetch reports", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(reports); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func CreateReportHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID string `json:"user_id"`
		Date   string `json:"date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if input.UserID == "" || input.Date == "" {
		http.Error(w, "user_id and date are required", http.StatusBadRequest)
		return
	}

	// Check the member exists
	var user auth.User
	err := db.DB.First(&user, "user_id = ?", input.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	// Day is computed from current store state, never taken from the client,
	// so the per-member sequence stays 1, 2, 3, ...
	var existing []Report
	if err := db.DB.Where("user_id = ?", input.UserID).Find(&existing).Error; err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	newReport := Report{
		ID:     uuid.NewString(),
		UserID: input.UserID,
		Date:   input.Date,
		Day:    NextDay(existing),
	}
	if err := db.DB.Create(&newReport).Error; err != nil {
		http.Error(w, "Failed to create report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(newReport)
}

func ReportHandler(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "id")

	var report Report
	err := db.DB.First(&report, "id = ?", reportID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func UpdateReportHandler(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "id")

	var input struct {
		Content string `json:"content"`
		Day     *int   `json:"day"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var report Report
	err := db.DB.First(&report, "id = ?", reportID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	// Ownership check comes before any write
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || report.UserID != userID {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	// Day is editable by the owner but must stay a positive integer
	if input.Day != nil && *input.Day < 1 {
		http.Error(w, "Invalid day number", http.StatusBadRequest)
		return
	}

	report.Content = input.Content
	if input.Day != nil {
		report.Day = *input.Day
	}

	if err := db.DB.Save(&report).Error; err != nil {
		http.Error(w, "Failed to update report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
