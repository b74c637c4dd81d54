package notify

import (
	"fmt"
	"strings"
	"time"

	"dogwalking/internal/domain/bookings"
	"dogwalking/internal/domain/contacts"
)

type Kind string

const (
	KindBooking Kind = "booking"
	KindContact Kind = "contact"
)

// Message es lo que recibe el negocio por cada alta. Subject/Body siguen el
// formato del correo que armaba el formulario.
type Message struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	RecordID  int64     `json:"recordId"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Key identifica el registro; la usa Kafka para particionar.
func (m Message) Key() string {
	return fmt.Sprintf("%s-%d", m.Kind, m.RecordID)
}

func bookingMessage(id string, b bookings.Booking) Message {
	service := string(b.ServiceType)
	if p, ok := bookings.LookupPlan(b.ServiceType); ok {
		service = fmt.Sprintf("%s (R%d)", p.Label, p.PriceZAR)
	}

	var sb strings.Builder
	sb.WriteString("Booking Request Details:\n\n")
	line(&sb, "Owner Name", b.OwnerName)
	line(&sb, "Phone", b.Phone)
	line(&sb, "Email", b.Email)
	line(&sb, "Dog Name", b.DogName)
	line(&sb, "Dog Breed", b.DogBreed)
	line(&sb, "Service Type", service)
	line(&sb, "Preferred Date", b.PreferredDate)
	line(&sb, "Special Instructions", b.Instructions)

	return Message{
		ID:        id,
		Kind:      KindBooking,
		RecordID:  b.ID,
		Subject:   "Dog Walking Booking Request - " + b.DogName,
		Body:      sb.String(),
		CreatedAt: b.CreatedAt,
	}
}

func contactMessage(id string, c contacts.Contact) Message {
	var sb strings.Builder
	sb.WriteString("Contact Message:\n\n")
	line(&sb, "Name", c.Name)
	line(&sb, "Phone", c.Phone)
	line(&sb, "Email", c.Email)
	line(&sb, "Message", c.Message)

	return Message{
		ID:        id,
		Kind:      KindContact,
		RecordID:  c.ID,
		Subject:   "Contact Message from " + c.Name,
		Body:      sb.String(),
		CreatedAt: c.CreatedAt,
	}
}

func line(sb *strings.Builder, label, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Fprintf(sb, "%s: %s\n", label, value)
}
