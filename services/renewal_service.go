// services/renewal_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"bizops-backend/models"
	"bizops-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// RenewalService checks agreements against their renewal window and
// dispatches a notice for each one currently inside it. Checks run on a
// background worker so the triggering request never waits on delivery.
// A due agreement is re-notified on every check; no dedup state is kept.
type RenewalService struct {
	db       *gorm.DB
	notifier Notifier
	queue    chan uuid.UUID
}

func NewRenewalService(db *gorm.DB, notifier Notifier) *RenewalService {
	return &RenewalService{
		db:       db,
		notifier: notifier,
		queue:    make(chan uuid.UUID, 64),
	}
}

// Start launches the worker draining the check queue.
func (s *RenewalService) Start() {
	go func() {
		for id := range s.queue {
			s.CheckAgreement(id)
		}
	}()
}

// Enqueue schedules a renewal check without ever blocking the caller.
// When the queue is full the check runs on its own goroutine instead.
func (s *RenewalService) Enqueue(id uuid.UUID) {
	select {
	case s.queue <- id:
	default:
		go s.CheckAgreement(id)
	}
}

// CheckAll enqueues one check per stored agreement and reports how many
// were scheduled.
func (s *RenewalService) CheckAll() (int, error) {
	var ids []uuid.UUID
	if err := s.db.Model(&models.Agreement{}).Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	for _, id := range ids {
		s.Enqueue(id)
	}
	return len(ids), nil
}

// CheckAgreement re-evaluates one agreement's renewal window and notifies
// the configured recipient when it is inside the due window. Failures are
// logged and swallowed; the triggering request has already been answered.
func (s *RenewalService) CheckAgreement(id uuid.UUID) {
	var agreement models.Agreement
	if err := s.db.First(&agreement, "id = ?", id).Error; err != nil {
		log.Printf("Renewal check: agreement %s not loadable: %v", id, err)
		return
	}

	_, status, ok := AgreementRenewal(agreement.EndDate, time.Now())
	if !ok || status != models.RenewalStatusDue {
		return
	}

	end, _ := utils.ParseDate(agreement.EndDate)
	daysLeft := utils.DaysBetween(time.Now().UTC(), end)

	subject := fmt.Sprintf("Renewal due for %s (%s)", agreement.Name, agreement.Type)
	body := fmt.Sprintf("Agreement %s for customer %s ends on %s (%d days out).\nPlease review and renew.",
		agreement.Name, agreement.CustomerID, agreement.EndDate, daysLeft)

	if err := s.notifier.Send(s.recipients(), subject, body); err != nil {
		log.Printf("Renewal notice for agreement %s failed: %v", id, err)
	}
}

func (s *RenewalService) recipients() []string {
	admin := os.Getenv("ADMIN_EMAIL")
	if admin == "" {
		admin = "admin@example.com"
	}
	return []string{admin}
}

// StartScheduler registers a periodic bulk check when RENEWAL_CRON is
// set, e.g. "0 9 * * *" for a daily 9 AM sweep.
func (s *RenewalService) StartScheduler() {
	spec := os.Getenv("RENEWAL_CRON")
	if spec == "" {
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		n, err := s.CheckAll()
		if err != nil {
			log.Printf("Scheduled renewal sweep failed: %v", err)
			return
		}
		log.Printf("Scheduled renewal sweep enqueued %d checks", n)
	}); err != nil {
		log.Printf("Invalid RENEWAL_CRON %q: %v", spec, err)
		return
	}

	c.Start()
	log.Println("Renewal scheduler started")
}
