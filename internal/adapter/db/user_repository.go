package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type UserRepository struct {
	users *mongo.Collection
}

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// userSummaryDoc carries the directory projection. The password field
// is excluded in the store query itself, not filtered after fetch.
type userSummaryDoc struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
}

var summaryProjection = bson.M{"_id": 1, "name": 1, "email": 1}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(collections Collections) *UserRepository {
	return &UserRepository{users: collections.Users}
}

func (r *UserRepository) ListSummaries(ctx context.Context) ([]domain.UserSummary, error) {
	opts := options.Find().
		SetProjection(summaryProjection).
		SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []userSummaryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	summaries := make([]domain.UserSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, domain.UserSummary(doc))
	}
	return summaries, nil
}

func (r *UserRepository) FindSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]domain.UserSummary, error) {
	if len(ids) == 0 {
		return map[primitive.ObjectID]domain.UserSummary{}, nil
	}

	opts := options.Find().SetProjection(summaryProjection)
	cursor, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}

	var docs []userSummaryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	summaries := make(map[primitive.ObjectID]domain.UserSummary, len(docs))
	for _, doc := range docs {
		summaries[doc.ID] = domain.UserSummary(doc)
	}
	return summaries, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var doc userDoc
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:           doc.ID,
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

func (r *UserRepository) Insert(ctx context.Context, user domain.User) (primitive.ObjectID, error) {
	doc := userDoc{
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	result, err := r.users.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}
