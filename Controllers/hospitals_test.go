package Controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func hospitalRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/protected/FindHospitals", FindHospitals)
	return router
}

func TestFindHospitals_Filters(t *testing.T) {
	router := hospitalRouter()

	recorder := postJSON(t, router, "/api/protected/FindHospitals", map[string]any{
		"min_rating":  4.5,
		"specialties": []string{"Cardiology"},
		"sort_by":     "rating",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", recorder.Code, recorder.Body.String())
	}

	var results []Hospital
	if err := json.Unmarshal(recorder.Body.Bytes(), &results); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(results) == 0 {
		t.Fatalf("expected matches for cardiology above 4.5 rating")
	}
	for index, hospital := range results {
		if hospital.Rating < 4.5 {
			t.Fatalf("%s rating %v below filter", hospital.Name, hospital.Rating)
		}
		if !hasAnySpecialty(hospital, []string{"Cardiology"}) {
			t.Fatalf("%s lacks requested specialty", hospital.Name)
		}
		if index > 0 && results[index-1].Rating < hospital.Rating {
			t.Fatalf("results not sorted by rating descending")
		}
	}
}

func TestFindHospitals_NoFiltersReturnsAll(t *testing.T) {
	router := hospitalRouter()

	recorder := postJSON(t, router, "/api/protected/FindHospitals", map[string]any{})
	if recorder.Code != http.StatusOK {
		t.Fatalf("status %d", recorder.Code)
	}

	var results []Hospital
	if err := json.Unmarshal(recorder.Body.Bytes(), &results); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(results) != len(hospitalDirectory) {
		t.Fatalf("expected %d hospitals, got %d", len(hospitalDirectory), len(results))
	}
}
