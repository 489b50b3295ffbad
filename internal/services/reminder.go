package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/studytrack/studytrack/internal/config"
	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/pkg/logger"
	"gorm.io/gorm"
)

// ReminderService scans for due deadline reminders on a schedule and hands
// them to the task queue for delivery.
type ReminderService struct {
	db            *gorm.DB
	queue         TaskQueue
	cfg           *config.ReminderConfig
	cronScheduler *cron.Cron
}

func NewReminderService(db *gorm.DB, queue TaskQueue, cfg *config.ReminderConfig) *ReminderService {
	return &ReminderService{
		db:    db,
		queue: queue,
		cfg:   cfg,
	}
}

func (s *ReminderService) StartScheduler() error {
	s.cronScheduler = cron.New()

	if _, err := s.cronScheduler.AddFunc(s.cfg.ScanCron, func() {
		if err := s.ScanDueReminders(); err != nil {
			logger.Errorf("[Reminder] Scan failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid reminder scan schedule %q: %w", s.cfg.ScanCron, err)
	}

	// Activity logs are pruned nightly.
	if _, err := s.cronScheduler.AddFunc("0 3 * * *", func() {
		logSvc := NewActivityLogService(s.db)
		removed, err := logSvc.Cleanup(s.cfg.LogRetentionDays)
		if err != nil {
			logger.Errorf("[Reminder] Activity log cleanup failed: %v", err)
			return
		}
		logger.Infof("[Reminder] Activity log cleanup removed %d rows", removed)
	}); err != nil {
		return err
	}

	s.cronScheduler.Start()
	logger.Infof("[Reminder] Scheduler started (scan: %s)", s.cfg.ScanCron)
	return nil
}

func (s *ReminderService) StopScheduler() {
	if s.cronScheduler != nil {
		ctx := s.cronScheduler.Stop()
		<-ctx.Done()
	}
}

// ScanDueReminders enqueues every deadline whose reminder time has passed and
// that has not been reminded yet. A deadline is marked reminded as soon as it
// is enqueued so a slow delivery cannot cause duplicates on the next tick.
func (s *ReminderService) ScanDueReminders() error {
	var deadlines []models.Deadline
	err := s.db.
		Where("reminder_date IS NOT NULL AND reminder_date <= ? AND reminded = ?", time.Now(), false).
		Find(&deadlines).Error
	if err != nil {
		return err
	}

	for _, d := range deadlines {
		task := &ReminderTask{
			DeadlineID: d.ID,
			Title:      d.Title,
			DueDate:    d.DueDate,
			TaskID:     d.TaskID,
			SubjectID:  d.SubjectID,
		}
		if err := s.queue.Enqueue(task); err != nil {
			logger.Errorf("[Reminder] Failed to enqueue deadline %d: %v", d.ID, err)
			continue
		}
		if err := s.db.Model(&models.Deadline{}).
			Where("id = ?", d.ID).
			Update("reminded", true).Error; err != nil {
			logger.Errorf("[Reminder] Failed to mark deadline %d reminded: %v", d.ID, err)
		}
	}
	return nil
}

// DeliverReminder is the queue processor: it records the reminder in the
// activity log where the client surfaces it.
func (s *ReminderService) DeliverReminder(ctx context.Context, task *ReminderTask) error {
	message := fmt.Sprintf("deadline %q due %s", task.Title, task.DueDate.Format("2006-01-02 15:04"))
	LogInfo("reminder", "deliver", message, nil, "", "", task)
	logger.Infof("[Reminder] Delivered reminder for deadline %d", task.DeadlineID)
	return nil
}
