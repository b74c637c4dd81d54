package contacts

import "time"

// Contact es un mensaje enviado desde el formulario de contacto.
type Contact struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	Message   string
	CreatedAt time.Time
}

type NewContact struct {
	Name    string
	Phone   string
	Email   string
	Message string
}

func (n NewContact) Materialize(id int64, createdAt time.Time) Contact {
	return Contact{
		ID:        id,
		Name:      n.Name,
		Phone:     n.Phone,
		Email:     n.Email,
		Message:   n.Message,
		CreatedAt: createdAt,
	}
}
