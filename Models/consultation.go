package Models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Consultation is one persisted triage event. Rows are append-only:
// never updated, never deleted.
type Consultation struct {
	gorm.Model
	UserID          uint   `json:"user_id" gorm:"not null;index"`
	Symptoms        string `json:"symptoms"`
	Diagnosis       string `json:"diagnosis"`
	Recommendations string `json:"recommendations"` // ordered list, JSON-encoded
	Severity        string `json:"severity"`
}

// RecommendationList decodes the stored recommendations back into the
// ordered list they were written as.
func (c *Consultation) RecommendationList() []string {
	var recs []string
	if c.Recommendations == "" {
		return recs
	}
	if err := json.Unmarshal([]byte(c.Recommendations), &recs); err != nil {
		return nil
	}
	return recs
}

// SaveConsultation appends one triage event. Recommendations are stored
// as a JSON array so entries containing commas survive the round trip.
func SaveConsultation(userID uint, symptoms, diagnosis string, recommendations []string, severity string) error {
	encoded, err := json.Marshal(recommendations)
	if err != nil {
		return err
	}
	consultation := Consultation{
		UserID:          userID,
		Symptoms:        symptoms,
		Diagnosis:       diagnosis,
		Recommendations: string(encoded),
		Severity:        severity,
	}
	return DB.Create(&consultation).Error
}

func GetUserConsultations(userID uint) ([]Consultation, error) {
	var consultations []Consultation
	if err := DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&consultations).Error; err != nil {
		return nil, err
	}
	return consultations, nil
}

type ConsultationStats struct {
	Total      int            `json:"total"`
	Critical   int            `json:"critical"`
	High       int            `json:"high"`
	Medium     int            `json:"medium"`
	Low        int            `json:"low"`
	Last30Days int            `json:"last_30_days"`
	Monthly    map[string]int `json:"monthly"` // YYYY-MM -> count
}

// GetConsultationStats aggregates a user's history for the reports page.
func GetConsultationStats(userID uint, now time.Time) (ConsultationStats, error) {
	stats := ConsultationStats{Monthly: map[string]int{}}

	consultations, err := GetUserConsultations(userID)
	if err != nil {
		return stats, err
	}

	cutoff := now.AddDate(0, 0, -30)
	for _, consultation := range consultations {
		stats.Total++
		switch consultation.Severity {
		case "CRITICAL":
			stats.Critical++
		case "High":
			stats.High++
		case "Medium":
			stats.Medium++
		case "Low":
			stats.Low++
		}
		if consultation.CreatedAt.After(cutoff) {
			stats.Last30Days++
		}
		stats.Monthly[consultation.CreatedAt.Format("2006-01")]++
	}

	return stats, nil
}
