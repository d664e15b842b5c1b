package shared

import "context"

// OwnedRepository is a repository whose rows each belong to exactly one user.
// Every read is scoped by the owner so one user cannot read another user's ids.
type OwnedRepository[T any] interface {
	FindByIDForUser(ctx context.Context, userID, id int64) (*T, error)
	FindAllForUser(ctx context.Context, userID int64) ([]T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int64) error
	DeleteForUser(ctx context.Context, userID, id int64) error
}
