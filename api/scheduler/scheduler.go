package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/pharmassist/pharmassist-api/databases"
	"github.com/pharmassist/pharmassist-api/models"
	"github.com/pharmassist/pharmassist-api/notify"
)

const dailyReminderLock = "daily_reminder_job"

// Scheduler handles periodic background jobs for medication reminders
type Scheduler struct {
	cron       *cron.Cron
	MDB        databases.MedicineDatabase
	UDB        databases.UserDatabase
	LockDB     databases.SchedulerLockDatabase
	Mailer     notify.Mailer
	instanceID string
}

// NewScheduler creates a new scheduler instance. Jobs run in the given
// timezone so "7 AM" means the patients' morning, not the server's.
func NewScheduler(
	mDB databases.MedicineDatabase,
	uDB databases.UserDatabase,
	lockDB databases.SchedulerLockDatabase,
	mailer notify.Mailer,
	timezone string,
) *Scheduler {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		zap.S().Warnw("unknown reminder timezone, falling back to UTC", "timezone", timezone)
		loc = time.UTC
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(loc)),
		MDB:        mDB,
		UDB:        uDB,
		LockDB:     lockDB,
		Mailer:     mailer,
		instanceID: uuid.New().String(),
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Daily medication reminder emails at 7 AM local time
	_, err := s.cron.AddFunc("0 7 * * *", s.SendDailyReminders)
	if err != nil {
		zap.S().Errorw("failed to register daily reminder job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("reminder scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("reminder scheduler stopped")
}

// SendDailyReminders emails every patient their medication schedule for the
// day. The distributed lock keeps the job on one instance per run.
func (s *Scheduler) SendDailyReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	acquired, err := s.LockDB.TryAcquireLock(ctx, dailyReminderLock, s.instanceID, 10*time.Minute)
	if err != nil {
		zap.S().Errorw("failed to acquire lock for daily reminder job", "error", err)
		return
	}
	if !acquired {
		zap.S().Debug("daily reminder job already running on another instance, skipping")
		return
	}
	defer s.LockDB.ReleaseLock(ctx, dailyReminderLock, s.instanceID)

	zap.S().Infow("running daily reminder job", "instance", s.instanceID)

	patients, err := s.UDB.GetUsersByRole(ctx, models.RolePatient)
	if err != nil {
		zap.S().Errorw("failed to fetch patients for reminders", "error", err)
		return
	}

	sent := 0
	for _, patient := range patients {
		medicines, err := s.MDB.GetMedicinesByUserID(ctx, patient.ID)
		if err != nil {
			zap.S().Errorw("failed to fetch medicines for patient",
				"error", err, "userId", patient.ID.Hex())
			continue
		}
		if len(medicines) == 0 {
			continue
		}

		if err := s.Mailer.SendDailyReminderEmail(patient.Email, patient.Name, medicines); err != nil {
			zap.S().Errorw("failed to send daily reminder email",
				"error", err, "userId", patient.ID.Hex())
			continue
		}
		sent++
	}

	zap.S().Infow("daily reminder job complete",
		"patientsChecked", len(patients),
		"remindersSent", sent,
	)
}
