package Controllers

import (
	"net/http"
	"time"

	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Models"
	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Utils/Token"

	"github.com/gin-gonic/gin"
)

// FetchNotifications is the session's lazy surfacing check: every
// unsent notification whose scheduled time has elapsed is marked sent
// and returned, oldest first. A notification shows up here exactly
// once.
func FetchNotifications(c *gin.Context) {
	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	due, err := Models.CollectDueNotifications(user_id, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	type notificationOutput struct {
		ID            uint   `json:"id"`
		Type          string `json:"type"`
		Message       string `json:"message"`
		ScheduledTime string `json:"scheduled_time"`
	}

	output := make([]notificationOutput, 0, len(due))
	for index := range due {
		output = append(output, notificationOutput{
			ID:            due[index].ID,
			Type:          due[index].Type,
			Message:       due[index].Message,
			ScheduledTime: due[index].ScheduledTime,
		})
	}

	c.JSON(http.StatusOK, output)
}
