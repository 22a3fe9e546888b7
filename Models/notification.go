package Models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	NotificationTypeWater    = "water"
	NotificationTypeMedicine = "medicine"
)

const WaterReminderMessage = "💧 Time to drink water! Stay hydrated for better health."

// Water reminders span the waking day, both endpoints inclusive.
const (
	waterStartHour = 8
	waterEndHour   = 22
)

type Notification struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"not null;index"`
	Type          string `json:"type"`
	Message       string `json:"message"`
	ScheduledTime string `json:"scheduled_time"` // 2006-01-02 15:04:05
	Sent          bool   `json:"sent" gorm:"default:false"`
}

// ScheduleDailyWaterReminders replaces the user's water notifications
// for the current day with one slot per intervalHours from 08:00 to
// 22:00 inclusive. Re-invoking on the same day replaces rather than
// duplicates.
func ScheduleDailyWaterReminders(userID uint, intervalHours int, now time.Time) error {
	if intervalHours <= 0 {
		return fmt.Errorf("invalid reminder interval: %d", intervalHours)
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	tx := DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Unscoped().
		Where("user_id = ? AND type = ? AND scheduled_time >= ? AND scheduled_time < ?",
			userID, NotificationTypeWater, dayStart.Format(TimeLayout), dayEnd.Format(TimeLayout)).
		Delete(&Notification{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	for hour := waterStartHour; hour <= waterEndHour; hour += intervalHours {
		slot := dayStart.Add(time.Duration(hour) * time.Hour)
		notification := Notification{
			UserID:        userID,
			Type:          NotificationTypeWater,
			Message:       WaterReminderMessage,
			ScheduledTime: slot.Format(TimeLayout),
		}
		if err := tx.Create(&notification).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// CollectDueNotifications returns the user's unsent notifications whose
// scheduled time has elapsed, ordered by scheduled time ascending, and
// marks them sent in the same transaction. Each notification is
// surfaced at most once.
func CollectDueNotifications(userID uint, now time.Time) ([]Notification, error) {
	tx := DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var due []Notification
	if err := tx.
		Where("user_id = ? AND sent = ? AND scheduled_time <= ?", userID, false, now.Format(TimeLayout)).
		Order("scheduled_time ASC").
		Find(&due).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for index := range due {
		if err := tx.Model(&Notification{}).Where("id = ?", due[index].ID).Update("sent", true).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		due[index].Sent = true
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return due, nil
}

// CreateMedicineNotification inserts a medicine-slot notification
// unless one with the same schedule already exists, so the cron sweep
// stays idempotent per reminder per slot per day.
func CreateMedicineNotification(userID uint, message string, scheduledTime time.Time) (bool, error) {
	formatted := scheduledTime.Format(TimeLayout)

	var count int64
	if err := DB.Model(&Notification{}).
		Where("user_id = ? AND type = ? AND message = ? AND scheduled_time = ?",
			userID, NotificationTypeMedicine, message, formatted).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	notification := Notification{
		UserID:        userID,
		Type:          NotificationTypeMedicine,
		Message:       message,
		ScheduledTime: formatted,
	}
	if err := DB.Create(&notification).Error; err != nil {
		return false, err
	}
	return true, nil
}
