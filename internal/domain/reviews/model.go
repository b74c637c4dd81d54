package reviews

import "time"

// Review es una reseña publicada por un cliente. Rating se espera en 1..5,
// pero el store no lo controla: eso queda en el borde HTTP.
type Review struct {
	ID           int64
	CustomerName string
	PetName      string
	Rating       int
	Comment      string
	CreatedAt    time.Time
}

type NewReview struct {
	CustomerName string
	PetName      string
	Rating       int
	Comment      string
}

func (n NewReview) Materialize(id int64, createdAt time.Time) Review {
	return Review{
		ID:           id,
		CustomerName: n.CustomerName,
		PetName:      n.PetName,
		Rating:       n.Rating,
		Comment:      n.Comment,
		CreatedAt:    createdAt,
	}
}
