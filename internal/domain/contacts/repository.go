package contacts

import "context"

type Repository interface {
	Create(ctx context.Context, in NewContact) (Contact, error)
	List(ctx context.Context) ([]Contact, error)
}
