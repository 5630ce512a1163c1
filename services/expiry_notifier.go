package services

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"powergym-backend/config"
	"powergym-backend/models"
)

// expiryWindowDays is how far ahead of the end date customers get warned.
const expiryWindowDays = 3

// ExpiryNotifier sends customers a heads-up before their subscription's
// end date passes. It only notifies: subscription status is never touched
// here, so status and date validity keep diverging exactly as the rest of
// the system assumes.
type ExpiryNotifier struct {
	db     *gorm.DB
	cfg    *config.Settings
	client *twilio.RestClient
	cron   *cron.Cron
}

func NewExpiryNotifier(db *gorm.DB, cfg *config.Settings) *ExpiryNotifier {
	return &ExpiryNotifier{
		db:  db,
		cfg: cfg,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
	}
}

// Enabled reports whether Twilio credentials are configured.
func (n *ExpiryNotifier) Enabled() bool {
	return n.cfg.TwilioAccountSID != "" && n.cfg.TwilioAuthToken != ""
}

// Start schedules the daily run at 9 AM server time.
func (n *ExpiryNotifier) Start() {
	n.cron = cron.New()
	n.cron.AddFunc("0 9 * * *", n.SendExpiryReminders)
	n.cron.Start()
	log.Println("Expiry notifier started")
}

func (n *ExpiryNotifier) Stop() {
	if n.cron != nil {
		n.cron.Stop()
	}
}

// SendExpiryReminders messages every customer whose active subscription
// ends within the next few days, and logs each attempt.
func (n *ExpiryNotifier) SendExpiryReminders() {
	log.Println("Starting expiry reminder processing...")

	today := models.Today()
	cutoff := today.AddDays(expiryWindowDays)

	var subs []models.Subscription
	err := n.db.
		Where("status = ? AND end_date >= ? AND end_date <= ?",
			models.SubscriptionActive, today, cutoff).
		Find(&subs).Error
	if err != nil {
		log.Printf("Failed to fetch expiring subscriptions: %v", err)
		return
	}

	for _, sub := range subs {
		n.notify(sub)
	}

	log.Println("Expiry reminder processing completed")
}

func (n *ExpiryNotifier) notify(sub models.Subscription) {
	var customer models.Customer
	if err := n.db.First(&customer, "id = ?", sub.CustomerID).Error; err != nil {
		log.Printf("Subscription %s: failed to load customer: %v", sub.ID, err)
		return
	}
	if customer.Phone == "" || customer.Status != models.StatusActive {
		return
	}

	message := fmt.Sprintf(
		"Hi %s, your gym membership ends on %s. Visit the front desk to renew and keep training without interruption!",
		customer.FirstName, sub.EndDate.String(),
	)

	channel := "sms"
	to := customer.Phone
	params := &twilioApi.CreateMessageParams{}
	if len(customer.Phone) > 0 && customer.Phone[0] == '+' && n.cfg.TwilioWhatsAppNumber != "" {
		channel = "whatsapp"
		to = "whatsapp:" + customer.Phone
		params.SetFrom("whatsapp:" + n.cfg.TwilioWhatsAppNumber)
	} else {
		params.SetFrom(n.cfg.TwilioPhoneNumber)
	}
	params.SetTo(to)
	params.SetBody(message)

	status := "sent"
	errorMsg := ""
	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", customer.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", customer.Phone, *resp.Sid)
	}

	entry := models.NotificationLog{
		CustomerID:     customer.ID,
		SubscriptionID: sub.ID,
		Message:        message,
		Status:         status,
		ErrorMessage:   errorMsg,
		Channel:        channel,
		SentAt:         time.Now(),
	}
	if err := n.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log reminder for customer %s: %v", customer.ID, err)
	}
}
