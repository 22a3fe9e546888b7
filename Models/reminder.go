package Models

import (
	"encoding/json"

	"gorm.io/gorm"
)

type MedicineReminder struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"not null;index"`
	MedicineName string `json:"medicine_name" gorm:"not null"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	TimeSlots    string `json:"time_slots"` // ordered HH:MM list, JSON-encoded
	StartDate    string `json:"start_date"` // 2006-01-02
	EndDate      string `json:"end_date"`   // 2006-01-02
	Active       bool   `json:"active" gorm:"default:true"`
}

func (r *MedicineReminder) TimeSlotList() []string {
	var slots []string
	if r.TimeSlots == "" {
		return slots
	}
	if err := json.Unmarshal([]byte(r.TimeSlots), &slots); err != nil {
		return nil
	}
	return slots
}

// CoversDate reports whether the reminder's date range includes the
// given 2006-01-02 day. String comparison is safe for this layout.
func (r *MedicineReminder) CoversDate(day string) bool {
	if r.StartDate != "" && day < r.StartDate {
		return false
	}
	if r.EndDate != "" && day > r.EndDate {
		return false
	}
	return true
}

func AddMedicineReminder(userID uint, medicineName, dosage, frequency string, timeSlots []string, startDate, endDate string) error {
	encoded, err := json.Marshal(timeSlots)
	if err != nil {
		return err
	}
	reminder := MedicineReminder{
		UserID:       userID,
		MedicineName: medicineName,
		Dosage:       dosage,
		Frequency:    frequency,
		TimeSlots:    string(encoded),
		StartDate:    startDate,
		EndDate:      endDate,
		Active:       true,
	}
	return DB.Create(&reminder).Error
}

// GetUserReminders returns the user's active reminders, newest first.
func GetUserReminders(userID uint) ([]MedicineReminder, error) {
	var reminders []MedicineReminder
	if err := DB.Where("user_id = ? AND active = ?", userID, true).Order("created_at DESC").Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func SetReminderActive(reminderID uint, active bool) error {
	result := DB.Model(&MedicineReminder{}).Where("id = ?", reminderID).Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
