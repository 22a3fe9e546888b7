package Models

import (
	"testing"
	"time"
)

func TestScheduleDailyWaterReminders_SlotCount(t *testing.T) {
	openTestDB(t, "water_slots")

	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.Local)
	if err := ScheduleDailyWaterReminders(5, 2, now); err != nil {
		t.Fatalf("ScheduleDailyWaterReminders: %v", err)
	}

	var notifications []Notification
	if err := DB.Where("user_id = ? AND type = ?", 5, NotificationTypeWater).
		Order("scheduled_time ASC").Find(&notifications).Error; err != nil {
		t.Fatalf("find: %v", err)
	}

	// 08:00 through 22:00 inclusive, every 2 hours.
	if len(notifications) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(notifications))
	}
	if notifications[0].ScheduledTime != "2026-03-10 08:00:00" {
		t.Fatalf("first slot = %q", notifications[0].ScheduledTime)
	}
	if notifications[7].ScheduledTime != "2026-03-10 22:00:00" {
		t.Fatalf("last slot = %q", notifications[7].ScheduledTime)
	}
	for _, notification := range notifications {
		if notification.Message != WaterReminderMessage {
			t.Fatalf("unexpected message %q", notification.Message)
		}
	}
}

func TestScheduleDailyWaterReminders_Idempotent(t *testing.T) {
	openTestDB(t, "water_idempotent")

	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.Local)
	if err := ScheduleDailyWaterReminders(6, 2, now); err != nil {
		t.Fatalf("first schedule: %v", err)
	}
	if err := ScheduleDailyWaterReminders(6, 2, now); err != nil {
		t.Fatalf("second schedule: %v", err)
	}

	var count int64
	if err := DB.Model(&Notification{}).
		Where("user_id = ? AND type = ?", 6, NotificationTypeWater).
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 8 {
		t.Fatalf("expected 8 slots after rescheduling, got %d", count)
	}
}

func TestScheduleDailyWaterReminders_InvalidInterval(t *testing.T) {
	openTestDB(t, "water_invalid")

	if err := ScheduleDailyWaterReminders(7, 0, time.Now()); err == nil {
		t.Fatalf("expected error for zero interval")
	}
}

func TestCollectDueNotifications(t *testing.T) {
	openTestDB(t, "collect_due")

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	rows := []Notification{
		{UserID: 8, Type: NotificationTypeWater, Message: WaterReminderMessage, ScheduledTime: "2026-03-10 10:00:00"},
		{UserID: 8, Type: NotificationTypeWater, Message: WaterReminderMessage, ScheduledTime: "2026-03-10 08:00:00"},
		{UserID: 8, Type: NotificationTypeWater, Message: WaterReminderMessage, ScheduledTime: "2026-03-10 20:00:00"},
	}
	for index := range rows {
		if err := DB.Create(&rows[index]).Error; err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	due, err := CollectDueNotifications(8, now)
	if err != nil {
		t.Fatalf("CollectDueNotifications: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 due notifications, got %d", len(due))
	}
	if due[0].ScheduledTime != "2026-03-10 08:00:00" || due[1].ScheduledTime != "2026-03-10 10:00:00" {
		t.Fatalf("expected ascending order, got %q then %q", due[0].ScheduledTime, due[1].ScheduledTime)
	}

	// Already surfaced notifications never come back.
	again, err := CollectDueNotifications(8, now)
	if err != nil {
		t.Fatalf("second collect: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected no notifications on second collect, got %d", len(again))
	}
}

func TestCreateMedicineNotification_Dedup(t *testing.T) {
	openTestDB(t, "medicine_dedup")

	slot := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	created, err := CreateMedicineNotification(9, "💊 Time to take Aspirin (100mg)", slot)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if !created {
		t.Fatalf("expected first insert to report created")
	}

	created, err = CreateMedicineNotification(9, "💊 Time to take Aspirin (100mg)", slot)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if created {
		t.Fatalf("expected duplicate insert to be skipped")
	}

	var count int64
	if err := DB.Model(&Notification{}).Where("user_id = ?", 9).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}
}
