package Controllers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

type Hospital struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Rating      float64  `json:"rating"`
	Emergency   bool     `json:"emergency"`
	Specialties []string `json:"specialties"`
	Beds        int      `json:"beds"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
}

// Curated facility directory for the demo region. The map layer is
// rendered client-side from these coordinates.
var hospitalDirectory = []Hospital{
	{
		Name:        "Apollo Hospital Chennai",
		Address:     "21, Greams Lane, Off Greams Road, Chennai, Tamil Nadu",
		Phone:       "044-2829 3333",
		Rating:      4.7,
		Emergency:   true,
		Specialties: []string{"Emergency Medicine", "Cardiology", "Neurology", "Trauma"},
		Beds:        500,
		Lat:         13.0632,
		Lng:         80.2618,
	},
	{
		Name:        "Government General Hospital",
		Address:     "Poonamallee High Rd, Park Town, Chennai, Tamil Nadu",
		Phone:       "044-2530 5000",
		Rating:      4.2,
		Emergency:   true,
		Specialties: []string{"Emergency Medicine", "Surgery", "Pediatrics", "Orthopedics"},
		Beds:        1200,
		Lat:         13.0827,
		Lng:         80.2707,
	},
	{
		Name:        "Kauvery Hospital",
		Address:     "199, Luz Church Road, Mylapore, Chennai, Tamil Nadu",
		Phone:       "044-4000 6000",
		Rating:      4.5,
		Emergency:   true,
		Specialties: []string{"Cardiology", "General Medicine", "Orthopedics"},
		Beds:        300,
		Lat:         13.0337,
		Lng:         80.2549,
	},
	{
		Name:        "MIOT International",
		Address:     "4/112, Mount Poonamallee Road, Manapakkam, Chennai, Tamil Nadu",
		Phone:       "044-4200 2288",
		Rating:      4.6,
		Emergency:   true,
		Specialties: []string{"Emergency Medicine", "Cardiology", "Orthopedics"},
		Beds:        1000,
		Lat:         13.0107,
		Lng:         80.1802,
	},
	{
		Name:        "Fortis Malar Hospital",
		Address:     "52, 1st Main Road, Gandhi Nagar, Adyar, Chennai, Tamil Nadu",
		Phone:       "044-4289 2222",
		Rating:      4.3,
		Emergency:   true,
		Specialties: []string{"Emergency Medicine", "Cardiology", "Neurology"},
		Beds:        180,
		Lat:         13.0067,
		Lng:         80.2570,
	},
}

func FindHospitals(c *gin.Context) {
	var input struct {
		EmergencyOnly bool     `json:"emergency_only"`
		Specialties   []string `json:"specialties"`
		MinRating     float64  `json:"min_rating"`
		SortBy        string   `json:"sort_by"` // "rating" | "emergency"
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := make([]Hospital, 0, len(hospitalDirectory))
	for _, hospital := range hospitalDirectory {
		if input.EmergencyOnly && !hospital.Emergency {
			continue
		}
		if hospital.Rating < input.MinRating {
			continue
		}
		if len(input.Specialties) > 0 && !hasAnySpecialty(hospital, input.Specialties) {
			continue
		}
		results = append(results, hospital)
	}

	switch input.SortBy {
	case "rating":
		sort.SliceStable(results, func(i, j int) bool { return results[i].Rating > results[j].Rating })
	case "emergency":
		sort.SliceStable(results, func(i, j int) bool { return results[i].Emergency && !results[j].Emergency })
	}

	c.JSON(http.StatusOK, results)
}

func hasAnySpecialty(hospital Hospital, wanted []string) bool {
	for _, w := range wanted {
		for _, s := range hospital.Specialties {
			if s == w {
				return true
			}
		}
	}
	return false
}
