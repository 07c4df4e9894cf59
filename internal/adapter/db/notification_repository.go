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

type NotificationRepository struct {
	notifications *mongo.Collection
}

type notificationDoc struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Type      string              `bson:"type"`
	Content   string              `bson:"content"`
	UserID    primitive.ObjectID  `bson:"userId"`
	TaskID    *primitive.ObjectID `bson:"taskId"`
	Read      bool                `bson:"read"`
	CreatedAt time.Time           `bson:"createdAt"`
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(collections Collections) *NotificationRepository {
	return &NotificationRepository{notifications: collections.Notifications}
}

func (r *NotificationRepository) ListUnread(ctx context.Context, userID primitive.ObjectID) ([]domain.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.notifications.Find(ctx, bson.M{"userId": userID, "read": false}, opts)
	if err != nil {
		return nil, err
	}

	var docs []notificationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(docs))
	for _, doc := range docs {
		notifications = append(notifications, mapNotificationDoc(doc))
	}
	return notifications, nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (domain.Notification, error) {
	var doc notificationDoc
	err := r.notifications.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Notification{}, domain.ErrNotificationNotFound
	}
	if err != nil {
		return domain.Notification{}, err
	}
	return mapNotificationDoc(doc), nil
}

func (r *NotificationRepository) SetRead(ctx context.Context, id primitive.ObjectID, read bool) error {
	result, err := r.notifications.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": read}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) Insert(ctx context.Context, notification domain.Notification) (primitive.ObjectID, error) {
	doc := notificationDoc{
		Type:      notification.Type,
		Content:   notification.Content,
		UserID:    notification.UserID,
		TaskID:    notification.TaskID,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	}

	result, err := r.notifications.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (r *NotificationRepository) DeleteByTask(ctx context.Context, taskID primitive.ObjectID) error {
	_, err := r.notifications.DeleteMany(ctx, bson.M{"taskId": taskID})
	return err
}

func mapNotificationDoc(doc notificationDoc) domain.Notification {
	return domain.Notification{
		ID:        doc.ID,
		Type:      doc.Type,
		Content:   doc.Content,
		UserID:    doc.UserID,
		TaskID:    doc.TaskID,
		Read:      doc.Read,
		CreatedAt: doc.CreatedAt,
	}
}
