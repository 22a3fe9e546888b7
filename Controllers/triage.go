package Controllers

import (
	"log"
	"net/http"

	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Models"
	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Triage"
	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Utils/Token"

	"github.com/gin-gonic/gin"
)

// AnalyzeSymptoms runs the classifier over the submitted description
// and appends the verdict to the user's consultation history.
func AnalyzeSymptoms(c *gin.Context) {
	var input struct {
		Symptoms string `json:"symptoms" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := Models.GetUserByID(user_id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := Triage.Classify(input.Symptoms, user.Role)

	if err := Models.SaveConsultation(user_id, input.Symptoms, result.Diagnosis, result.Recommendations, result.Severity); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save consultation"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func AskChatbot(c *gin.Context) {
	var input struct {
		Question string `json:"question" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := Models.GetUserByID(user_id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": Triage.Answer(input.Question, user.Role)})
}
