package Controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Models"
	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Utils/Token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AddMedicineReminder(c *gin.Context) {
	var input struct {
		MedicineName string   `json:"medicine_name" binding:"required"`
		Dosage       string   `json:"dosage" binding:"required"`
		Frequency    string   `json:"frequency"`
		TimeSlots    []string `json:"time_slots" binding:"required"`
		StartDate    string   `json:"start_date"`
		EndDate      string   `json:"end_date"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, slot := range input.TimeSlots {
		if _, err := time.Parse("15:04", slot); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Time slots must be HH:MM"})
			return
		}
	}

	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Models.AddMedicineReminder(user_id, input.MedicineName, input.Dosage, input.Frequency, input.TimeSlots, input.StartDate, input.EndDate); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reminder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medication reminder created successfully"})
}

func FetchMedicineReminders(c *gin.Context) {
	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminders, err := Models.GetUserReminders(user_id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	type reminderOutput struct {
		ID           uint     `json:"id"`
		MedicineName string   `json:"medicine_name"`
		Dosage       string   `json:"dosage"`
		Frequency    string   `json:"frequency"`
		TimeSlots    []string `json:"time_slots"`
		StartDate    string   `json:"start_date"`
		EndDate      string   `json:"end_date"`
		Active       bool     `json:"active"`
	}

	output := make([]reminderOutput, 0, len(reminders))
	for index := range reminders {
		output = append(output, reminderOutput{
			ID:           reminders[index].ID,
			MedicineName: reminders[index].MedicineName,
			Dosage:       reminders[index].Dosage,
			Frequency:    reminders[index].Frequency,
			TimeSlots:    reminders[index].TimeSlotList(),
			StartDate:    reminders[index].StartDate,
			EndDate:      reminders[index].EndDate,
			Active:       reminders[index].Active,
		})
	}

	c.JSON(http.StatusOK, output)
}

func DeactivateReminder(c *gin.Context) {
	var input struct {
		ID uint `json:"id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Models.SetReminderActive(input.ID, false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		} else {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate reminder"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deactivated"})
}

func EnableWaterReminders(c *gin.Context) {
	var input struct {
		IntervalHours int `json:"interval_hours"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.IntervalHours == 0 {
		input.IntervalHours = 2
	}

	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Models.ScheduleDailyWaterReminders(user_id, input.IntervalHours, time.Now()); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule water reminders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Water reminders set for every %d hours", input.IntervalHours)})
}
