package Models

import (
	"testing"
	"time"
)

func TestSaveConsultation_RecommendationsRoundTrip(t *testing.T) {
	openTestDB(t, "consultation_roundtrip")

	recs := []string{
		"🚨 Call emergency services (911) immediately",
		"Do not drive yourself to the hospital",
		"Rest, stay hydrated",
	}
	if err := SaveConsultation(1, "chest pain", "⚠️ EMERGENCY CONDITION DETECTED", recs, "CRITICAL"); err != nil {
		t.Fatalf("SaveConsultation: %v", err)
	}

	consultations, err := GetUserConsultations(1)
	if err != nil {
		t.Fatalf("GetUserConsultations: %v", err)
	}
	if len(consultations) != 1 {
		t.Fatalf("expected 1 consultation, got %d", len(consultations))
	}

	got := consultations[0].RecommendationList()
	if len(got) != len(recs) {
		t.Fatalf("expected %d recommendations, got %d", len(recs), len(got))
	}
	for i := range recs {
		if got[i] != recs[i] {
			t.Fatalf("recommendation %d: got %q, want %q", i, got[i], recs[i])
		}
	}
}

func TestGetUserConsultations_NewestFirst(t *testing.T) {
	openTestDB(t, "consultation_order")

	first := Consultation{UserID: 2, Symptoms: "older", Recommendations: "[]", Severity: "Low"}
	first.CreatedAt = time.Now().Add(-2 * time.Hour)
	if err := DB.Create(&first).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	second := Consultation{UserID: 2, Symptoms: "newer", Recommendations: "[]", Severity: "Low"}
	second.CreatedAt = time.Now().Add(-1 * time.Hour)
	if err := DB.Create(&second).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	consultations, err := GetUserConsultations(2)
	if err != nil {
		t.Fatalf("GetUserConsultations: %v", err)
	}
	if len(consultations) != 2 {
		t.Fatalf("expected 2 consultations, got %d", len(consultations))
	}
	if consultations[0].Symptoms != "newer" || consultations[1].Symptoms != "older" {
		t.Fatalf("expected newest first, got %q then %q", consultations[0].Symptoms, consultations[1].Symptoms)
	}
}

func TestGetConsultationStats(t *testing.T) {
	openTestDB(t, "consultation_stats")

	now := time.Now()
	rows := []struct {
		severity string
		age      time.Duration
	}{
		{"CRITICAL", 24 * time.Hour},
		{"High", 48 * time.Hour},
		{"Low", 24 * 40 * time.Hour},
	}
	for _, row := range rows {
		consultation := Consultation{UserID: 3, Symptoms: "x", Recommendations: "[]", Severity: row.severity}
		consultation.CreatedAt = now.Add(-row.age)
		if err := DB.Create(&consultation).Error; err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	stats, err := GetConsultationStats(3, now)
	if err != nil {
		t.Fatalf("GetConsultationStats: %v", err)
	}
	if stats.Total != 3 {
		t.Fatalf("total = %d, want 3", stats.Total)
	}
	if stats.Critical != 1 || stats.High != 1 || stats.Low != 1 {
		t.Fatalf("severity counts = %d/%d/%d, want 1/1/1", stats.Critical, stats.High, stats.Low)
	}
	if stats.Last30Days != 2 {
		t.Fatalf("last 30 days = %d, want 2", stats.Last30Days)
	}
	sum := 0
	for _, count := range stats.Monthly {
		sum += count
	}
	if sum != 3 {
		t.Fatalf("monthly buckets sum to %d, want 3", sum)
	}
}
