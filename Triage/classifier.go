package Triage

import "strings"

// Severity tiers, ordered by urgency.
const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "CRITICAL"
)

const DefaultDiagnosis = "General consultation needed"

// Result is the full verdict for one symptom description.
type Result struct {
	Diagnosis       string   `json:"diagnosis"`
	Severity        string   `json:"severity"`
	Recommendations []string `json:"recommendations"`
	RoleNote        string   `json:"role_note"`
}

// rule is one step of the cascade. Rules are evaluated in order and the
// first keyword hit wins; later categories are never consulted.
type rule struct {
	category        string
	keywords        []string
	diagnosis       string
	severity        string
	recommendations []string
}

var cascade = []rule{
	{
		category: "emergency",
		keywords: []string{
			"chest pain", "difficulty breathing", "severe headache", "stroke", "heart attack",
			"unconscious", "severe bleeding", "poisoning", "overdose", "seizure",
			"anaphylaxis", "severe allergic reaction", "choking", "cardiac arrest",
		},
		diagnosis: "⚠️ EMERGENCY CONDITION DETECTED",
		severity:  SeverityCritical,
		recommendations: []string{
			"🚨 CALL 911 IMMEDIATELY",
			"Go to the nearest emergency room",
			"Do not drive yourself - call ambulance",
			"Have someone stay with you",
			"Prepare list of current medications",
			"Stay calm and follow emergency operator instructions",
		},
	},
	{
		category: "high_risk",
		keywords: []string{
			"fever over 103", "persistent vomiting", "severe abdominal pain",
			"difficulty swallowing", "severe dehydration", "diabetic emergency",
			"severe burns", "head trauma", "loss of consciousness",
		},
		diagnosis: "High-risk condition - Urgent medical attention needed",
		severity:  SeverityHigh,
		recommendations: []string{
			"Seek immediate medical attention within 2-4 hours",
			"Visit urgent care or emergency room",
			"Contact your primary care physician immediately",
			"Monitor symptoms closely and call 911 if worsening",
			"Avoid eating or drinking until medical evaluation",
			"Have someone available to drive you to medical facility",
		},
	},
	{
		category: "medium_risk",
		keywords: []string{
			"moderate fever", "persistent cough", "shortness of breath", "severe pain",
			"blood in stool", "blood in urine", "severe diarrhea", "fainting",
		},
		diagnosis: "Moderate concern - Medical evaluation recommended within 24 hours",
		severity:  SeverityMedium,
		recommendations: []string{
			"Schedule appointment with healthcare provider within 24 hours",
			"Monitor symptoms and seek urgent care if worsening",
			"Take temperature regularly and keep symptom log",
			"Stay hydrated and rest",
			"Avoid strenuous activities",
		},
	},
	{
		category:  "cold",
		keywords:  []string{"runny nose", "sneezing", "mild fever", "cough", "sore throat"},
		diagnosis: "Possible common cold or upper respiratory infection",
		severity:  SeverityLow,
		recommendations: []string{
			"Rest and stay well hydrated with warm fluids",
			"Use over-the-counter medications as directed",
			"Gargle with warm salt water for sore throat",
			"Use humidifier to ease congestion",
			"See a doctor if symptoms worsen or persist beyond 7-10 days",
			"Isolate to prevent spreading to others",
		},
	},
	{
		category:  "digestive",
		keywords:  []string{"nausea", "stomach pain", "diarrhea", "indigestion", "heartburn"},
		diagnosis: "Possible digestive issue or gastroenteritis",
		severity:  SeverityLow,
		recommendations: []string{
			"Stay hydrated with clear fluids and electrolyte solutions",
			"Follow BRAT diet (bananas, rice, applesauce, toast)",
			"Avoid dairy, caffeine, alcohol, and fatty foods",
			"Rest and allow digestive system to recover",
			"See a doctor if symptoms persist beyond 48 hours",
			"Seek immediate care if signs of severe dehydration appear",
		},
	},
	{
		category:  "musculoskeletal",
		keywords:  []string{"back pain", "joint pain", "muscle ache", "stiffness"},
		diagnosis: "Possible musculoskeletal condition or injury",
		severity:  SeverityLow,
		recommendations: []string{
			"Apply RICE protocol: Rest, Ice, Compression, Elevation",
			"Use over-the-counter anti-inflammatory medications as directed",
			"Gentle stretching and movement as tolerated",
			"Heat therapy after initial 48 hours if helpful",
			"See a doctor if pain is severe or persists beyond a week",
			"Physical therapy may be beneficial for chronic issues",
		},
	},
	{
		category:  "mental_health",
		keywords:  []string{"anxiety", "depression", "stress", "panic attack", "insomnia"},
		diagnosis: "Possible mental health concern",
		severity:  SeverityMedium,
		recommendations: []string{
			"Consider speaking with a mental health professional",
			"Practice stress reduction techniques (meditation, deep breathing)",
			"Maintain regular sleep schedule and healthy diet",
			"Stay connected with supportive friends and family",
			"Contact crisis helpline if having thoughts of self-harm: 988",
			"Regular exercise can help improve mood and reduce anxiety",
		},
	},
}

var roleNotes = map[string]string{
	"medical_student":         "\n📚 Educational Context: Consider differential diagnoses and evidence-based treatment protocols.",
	"healthcare_professional": "\n👩‍⚕️ Professional Assessment: Review clinical guidelines and consider patient comorbidities.",
}

// Classify maps a free-text symptom description to a verdict. Matching
// is case-insensitive substring containment against the cascade, first
// match wins. Empty text falls through to the default result. The role
// only selects the appended note.
func Classify(symptoms string, role string) Result {
	lowered := strings.ToLower(symptoms)

	result := Result{
		Diagnosis: DefaultDiagnosis,
		Severity:  SeverityLow,
		RoleNote:  roleNotes[role],
	}

	for _, r := range cascade {
		if containsAny(lowered, r.keywords) {
			result.Diagnosis = r.diagnosis
			result.Severity = r.severity
			result.Recommendations = append([]string{}, r.recommendations...)
			return result
		}
	}

	return result
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
