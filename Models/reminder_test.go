package Models

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestAddMedicineReminder_TimeSlotsRoundTrip(t *testing.T) {
	openTestDB(t, "reminder_roundtrip")

	slots := []string{"08:00", "14:00", "20:00"}
	if err := AddMedicineReminder(1, "Aspirin", "100mg", "Three times daily", slots, "2026-03-01", "2026-03-31"); err != nil {
		t.Fatalf("AddMedicineReminder: %v", err)
	}

	reminders, err := GetUserReminders(1)
	if err != nil {
		t.Fatalf("GetUserReminders: %v", err)
	}
	if len(reminders) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(reminders))
	}

	got := reminders[0].TimeSlotList()
	if len(got) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(got))
	}
	for index, slot := range slots {
		if got[index] != slot {
			t.Fatalf("slot %d: got %q, want %q", index, got[index], slot)
		}
	}
}

func TestSetReminderActive(t *testing.T) {
	openTestDB(t, "reminder_deactivate")

	if err := AddMedicineReminder(2, "Ibuprofen", "200mg", "Twice daily", []string{"09:00", "21:00"}, "2026-03-01", ""); err != nil {
		t.Fatalf("AddMedicineReminder: %v", err)
	}

	reminders, err := GetUserReminders(2)
	if err != nil {
		t.Fatalf("GetUserReminders: %v", err)
	}
	if len(reminders) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(reminders))
	}

	if err := SetReminderActive(reminders[0].ID, false); err != nil {
		t.Fatalf("SetReminderActive: %v", err)
	}

	remaining, err := GetUserReminders(2)
	if err != nil {
		t.Fatalf("GetUserReminders after deactivate: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected deactivated reminder to be excluded, got %d", len(remaining))
	}

	if err := SetReminderActive(9999, false); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for unknown id, got %v", err)
	}
}

func TestCoversDate(t *testing.T) {
	reminder := MedicineReminder{StartDate: "2026-03-01", EndDate: "2026-03-31"}

	cases := []struct {
		day  string
		want bool
	}{
		{"2026-02-28", false},
		{"2026-03-01", true},
		{"2026-03-15", true},
		{"2026-03-31", true},
		{"2026-04-01", false},
	}
	for _, tc := range cases {
		if got := reminder.CoversDate(tc.day); got != tc.want {
			t.Fatalf("CoversDate(%q) = %v, want %v", tc.day, got, tc.want)
		}
	}

	openEnded := MedicineReminder{StartDate: "2026-03-01"}
	if !openEnded.CoversDate("2030-01-01") {
		t.Fatalf("open-ended reminder should cover any future day")
	}
}
