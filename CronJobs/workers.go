package CronJobs

import (
	"fmt"
	"log"
	"time"

	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/FirebaseMessaging"
	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Models"
	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/SSE"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// MedicineReminderSweep turns active reminder schedules into
// notification rows as their HH:MM slots come due.
type MedicineReminderSweep struct {
	DB *gorm.DB
}

func NewMedicineReminderSweep(db *gorm.DB) *MedicineReminderSweep {
	return &MedicineReminderSweep{
		DB: db,
	}
}

// StartReminderCron starts the cron job that checks reminder slots.
func (mr *MedicineReminderSweep) StartReminderCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Minutes().Do(func() {
		if err := mr.FireDueSlots(time.Now()); err != nil {
			log.Printf("Error firing reminder slots: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Medicine reminder cron job started")

	return scheduler
}

// FireDueSlots inserts a medicine notification for every active
// reminder slot that came due since the previous sweep, then pushes it
// to the user's devices. Insertion is deduplicated per slot per day, so
// overlapping sweeps cannot double-fire.
func (mr *MedicineReminderSweep) FireDueSlots(now time.Time) error {
	today := now.Format(Models.DateLayout)

	var reminders []Models.MedicineReminder
	if err := mr.DB.Where("active = ?", true).Find(&reminders).Error; err != nil {
		return fmt.Errorf("failed to query active reminders: %w", err)
	}

	fired := 0
	for _, reminder := range reminders {
		if !reminder.CoversDate(today) {
			continue
		}

		for _, slot := range reminder.TimeSlotList() {
			slotTime, err := time.ParseInLocation("2006-01-02 15:04", today+" "+slot, now.Location())
			if err != nil {
				log.Printf("Failed to parse slot %q for reminder ID %d: %v", slot, reminder.ID, err)
				continue
			}

			if slotTime.After(now) || now.Sub(slotTime) > time.Minute {
				continue
			}

			message := fmt.Sprintf("💊 Time to take %s (%s)", reminder.MedicineName, reminder.Dosage)
			created, err := Models.CreateMedicineNotification(reminder.UserID, message, slotTime)
			if err != nil {
				log.Printf("Failed to create notification for reminder ID %d: %v", reminder.ID, err)
				continue
			}
			if !created {
				continue
			}
			fired++

			fcms, _ := Models.GetFCMsByID(reminder.UserID)
			if len(fcms) > 0 {
				FirebaseMessaging.SendMessage(Models.NotificationRequest{Tokens: fcms, Title: "Medication Reminder", Body: message})
			}

			log.Printf("Reminder fired for user %d: %s at %s", reminder.UserID, reminder.MedicineName, slot)
		}
	}

	if fired > 0 {
		SSE.Broadcaster.Broadcast("refresh")
	}

	return nil
}
