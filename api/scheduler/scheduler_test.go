package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pharmassist/pharmassist-api/api/scheduler"
	"github.com/pharmassist/pharmassist-api/databases/mocks"
	"github.com/pharmassist/pharmassist-api/models"
	notifymocks "github.com/pharmassist/pharmassist-api/notify/mocks"
)

func TestSendDailyReminders_EmailsPatientsWithMedicines(t *testing.T) {
	mdb := &mocks.MedicineDatabase{}
	udb := &mocks.UserDatabase{}
	lockDB := &mocks.SchedulerLockDatabase{}
	mailer := &notifymocks.Mailer{}

	withMeds := models.User{ID: primitive.NewObjectID(), Name: "Anita", Email: "anita@example.com", Role: models.RolePatient}
	noMeds := models.User{ID: primitive.NewObjectID(), Name: "Joseph", Email: "joseph@example.com", Role: models.RolePatient}
	medicines := []models.Medicine{{UserID: withMeds.ID, Name: "Metformin", Dosage: "500mg"}}

	lockDB.On("TryAcquireLock", mock.Anything, "daily_reminder_job", mock.Anything, mock.Anything).Return(true, nil)
	lockDB.On("ReleaseLock", mock.Anything, "daily_reminder_job", mock.Anything).Return(nil)
	udb.On("GetUsersByRole", mock.Anything, models.RolePatient).Return([]models.User{withMeds, noMeds}, nil)
	mdb.On("GetMedicinesByUserID", mock.Anything, withMeds.ID).Return(medicines, nil)
	mdb.On("GetMedicinesByUserID", mock.Anything, noMeds.ID).Return([]models.Medicine{}, nil)
	mailer.On("SendDailyReminderEmail", "anita@example.com", "Anita", medicines).Return(nil)

	s := scheduler.NewScheduler(mdb, udb, lockDB, mailer, "Asia/Kolkata")
	s.SendDailyReminders()

	mailer.AssertNumberOfCalls(t, "SendDailyReminderEmail", 1)
	mailer.AssertNotCalled(t, "SendDailyReminderEmail", "joseph@example.com", mock.Anything, mock.Anything)
}

func TestSendDailyReminders_SkipsWhenLockHeldElsewhere(t *testing.T) {
	mdb := &mocks.MedicineDatabase{}
	udb := &mocks.UserDatabase{}
	lockDB := &mocks.SchedulerLockDatabase{}
	mailer := &notifymocks.Mailer{}

	lockDB.On("TryAcquireLock", mock.Anything, "daily_reminder_job", mock.Anything, mock.Anything).Return(false, nil)

	s := scheduler.NewScheduler(mdb, udb, lockDB, mailer, "Asia/Kolkata")
	s.SendDailyReminders()

	udb.AssertNotCalled(t, "GetUsersByRole", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "SendDailyReminderEmail", mock.Anything, mock.Anything, mock.Anything)
}
