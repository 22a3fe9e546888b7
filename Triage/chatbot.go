package Triage

import "strings"

var chatPrefixes = map[string]string{
	"medical_student":         "📚 **Educational Response:** ",
	"healthcare_professional": "👩‍⚕️ **Professional Insight:** ",
}

type chatTopic struct {
	keywords []string
	answer   string
}

var chatTopics = []chatTopic{
	{
		keywords: []string{"fever", "temperature"},
		answer: `🌡️ **About Fever:**

A fever is generally considered a temperature above 100.4°F (38°C).

**Assessment Guidelines:**
- Low-grade: 100.4-102°F (38-38.9°C)
- Moderate: 102-104°F (38.9-40°C)
- High-grade: >104°F (>40°C)

**When to seek immediate care:**
- Temperature above 103°F (39.4°C)
- Fever lasting more than 3 days
- Accompanied by severe symptoms (difficulty breathing, chest pain, severe headache)

**Evidence-based management:**
- Maintain hydration
- Antipyretics: Acetaminophen or Ibuprofen as directed
- Cool compresses and rest in a cool environment`,
	},
	{
		keywords: []string{"headache", "head pain"},
		answer: `🤕 **About Headaches:**

**Classification:**
- Primary: Tension-type (90%), Migraine, Cluster
- Secondary: Due to underlying pathology

**Red flag symptoms (require immediate evaluation):**
- Sudden onset "thunderclap" headache
- Headache with fever, neck stiffness, altered consciousness
- New headache in patient >50 years
- Headache following head trauma

**Management approach:**
- Acute: NSAIDs, triptans (for migraines), avoid medication overuse
- Non-pharmacological: Sleep hygiene, stress management, trigger avoidance`,
	},
	{
		keywords: []string{"chest pain", "cardiac", "heart"},
		answer: `❤️ **About Chest Pain:**

**⚠️ CRITICAL: Chest pain requires immediate professional evaluation**

**High-risk features:**
- Crushing, pressure-like substernal pain
- Radiation to left arm, jaw, or back
- Associated with diaphoresis, nausea, dyspnea

**Immediate actions:**
1. Call 911 if suspected cardiac etiology
2. Position patient comfortably
3. Monitor vital signs

**Never ignore chest pain - early intervention saves lives**`,
	},
	{
		keywords: []string{"mental health", "depression", "anxiety"},
		answer: `🧠 **About Mental Health:**

**Crisis resources:**
- National Suicide Prevention Lifeline: 988
- Crisis Text Line: Text HOME to 741741
- Emergency services: 911

**Professional referral indicators:**
- Persistent symptoms >2 weeks
- Functional impairment
- Suicidal ideation

**Lifestyle interventions:**
- Regular exercise (30 min, 5x/week)
- Sleep hygiene (7-9 hours)
- Mindfulness and social connection`,
	},
}

const chatFallback = `🩺 **Comprehensive Health Information:**

I provide evidence-based medical information tailored to your professional level.

**Available topics:**
- Symptom assessment and triage
- Emergency recognition and management
- Preventive health measures
- Mental health screening and support

Please ask about specific symptoms, conditions, or health topics for detailed responses.`

// Answer returns the canned response whose keyword set first matches
// the question, prefixed for student and professional roles.
func Answer(question string, role string) string {
	lowered := strings.ToLower(question)
	prefix := chatPrefixes[role]

	for _, topic := range chatTopics {
		if containsAny(lowered, topic.keywords) {
			return prefix + topic.answer
		}
	}
	return prefix + chatFallback
}
