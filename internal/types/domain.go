// Package types defines the domain model shared across the dateminder worker:
// tracked people and their dates, subscribers, computed alerts, the delivery
// configuration document, and the application error taxonomy.
package types

// CustomDate is a labeled extra date attached to a Person, e.g. a graduation
// or a first-met anniversary.
type CustomDate struct {
	Label string `firestore:"label"`
	Date  string `firestore:"date"`
}

// Person is a record whose dates are tracked. Date strings are either "MM-DD"
// or the legacy "YYYY-MM-DD" form; the year never affects recurrence.
//
// OwnerEmail restricts visibility of the person's dates to the subscriber with
// that (case-insensitive) email. An empty OwnerEmail marks a legacy record
// visible to every subscriber.
type Person struct {
	Name        string       `firestore:"name"`
	Birthday    string       `firestore:"birthday"`
	Anniversary string       `firestore:"anniversary"`
	Custom      []CustomDate `firestore:"custom"`
	OwnerEmail  string       `firestore:"ownerEmail"`
}

// Subscriber is a recipient of reminder digests.
type Subscriber struct {
	Name  string `firestore:"name"`
	Email string `firestore:"email"`
}

// DeliveryConfig is the config/emailConfig document in the store. ServiceID,
// TemplateID and PubKey identify the EmailJS service, template and account;
// all three must be present for a run to send anything.
type DeliveryConfig struct {
	ServiceID  string `firestore:"serviceId"`
	TemplateID string `firestore:"templateId"`
	PubKey     string `firestore:"pubKey"`
	Sender     string `firestore:"sender"`
}

// defaultSenderName is used when the config document has no sender field.
const defaultSenderName = "Date Reminder"

// IsComplete reports whether every required delivery field is populated.
func (c *DeliveryConfig) IsComplete() bool {
	return c != nil && c.ServiceID != "" && c.TemplateID != "" && c.PubKey != ""
}

// SenderName returns the configured sender display name, or a default.
func (c *DeliveryConfig) SenderName() string {
	if c != nil && c.Sender != "" {
		return c.Sender
	}
	return defaultSenderName
}

// Alert is a date falling inside the lookahead window, ready for rendering.
// Alerts are built fresh per subscriber per run and never persisted.
type Alert struct {
	Label string
	Days  int
}

// SendInput defines the contract for one email transmission.
type SendInput struct {
	To        string
	FromName  string
	EventList string
	Delivery  DeliveryConfig
}
