package bookings

import "time"

// Booking es una solicitud de paseo tal como quedó guardada.
// DogBreed e Instructions son opcionales: "" significa "no informado".
type Booking struct {
	ID int64

	OwnerName string
	Phone     string
	Email     string

	DogName  string
	DogBreed string

	ServiceType   ServiceType
	PreferredDate string // fecha tal como la envía el cliente
	Instructions  string

	CreatedAt time.Time
}

// NewBooking son los campos que aporta el cliente. ID y CreatedAt los asigna el store.
type NewBooking struct {
	OwnerName     string
	Phone         string
	Email         string
	DogName       string
	DogBreed      string
	ServiceType   ServiceType
	PreferredDate string
	Instructions  string
}

// Materialize arma el registro completo. Lo usan los adapters de storage.
func (n NewBooking) Materialize(id int64, createdAt time.Time) Booking {
	return Booking{
		ID:            id,
		OwnerName:     n.OwnerName,
		Phone:         n.Phone,
		Email:         n.Email,
		DogName:       n.DogName,
		DogBreed:      n.DogBreed,
		ServiceType:   n.ServiceType,
		PreferredDate: n.PreferredDate,
		Instructions:  n.Instructions,
		CreatedAt:     createdAt,
	}
}
