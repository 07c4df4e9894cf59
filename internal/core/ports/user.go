package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskhub/internal/core/domain"
)

type UserRepository interface {
	// ListSummaries returns every user's public fields sorted by name,
	// password excluded at projection level.
	ListSummaries(ctx context.Context) ([]domain.UserSummary, error)
	FindSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]domain.UserSummary, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Insert(ctx context.Context, user domain.User) (primitive.ObjectID, error)
}

type UserService interface {
	List(ctx context.Context) ([]domain.UserSummary, error)
	Register(ctx context.Context, input domain.RegisterInput) (domain.User, error)
	Authenticate(ctx context.Context, email, password string) (domain.User, error)
}
