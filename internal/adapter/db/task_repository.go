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

type TaskRepository struct {
	tasks *mongo.Collection
}

// taskDoc mirrors the tasks collection. Nullable fields are pointers:
// the overwrite update contract persists nulls, and decoding must
// survive them.
type taskDoc struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	Title        *string             `bson:"title"`
	Description  *string             `bson:"description"`
	Status       *string             `bson:"status"`
	Priority     *string             `bson:"priority"`
	DueDate      *time.Time          `bson:"dueDate"`
	CreatedByID  primitive.ObjectID  `bson:"createdById"`
	AssignedToID *primitive.ObjectID `bson:"assignedToId"`
	CreatedAt    time.Time           `bson:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(collections Collections) *TaskRepository {
	return &TaskRepository{tasks: collections.Tasks}
}

// BuildTaskFilter translates a task query into the store predicate.
// The visibility clause (creator OR assignee) occupies the $or slot;
// an assignedTo filter narrows it to one side. A search clause also
// lands in the $or slot and therefore evicts the visibility
// restriction entirely. That is how the product behaves today and is
// kept on purpose.
func BuildTaskFilter(q domain.TaskQuery) bson.M {
	filter := bson.M{}

	switch q.Filter.AssignedTo {
	case domain.AssignedFilterMe:
		filter["assignedToId"] = q.RequesterID
	case domain.AssignedFilterCreated:
		filter["createdById"] = q.RequesterID
	default:
		filter["$or"] = bson.A{
			bson.M{"createdById": q.RequesterID},
			bson.M{"assignedToId": q.RequesterID},
		}
	}

	if q.Filter.Status != "" && q.Filter.Status != domain.FilterAll {
		filter["status"] = q.Filter.Status
	}
	if q.Filter.Priority != "" && q.Filter.Priority != domain.FilterAll {
		filter["priority"] = q.Filter.Priority
	}

	if q.Filter.Search != "" {
		pattern := primitive.Regex{Pattern: q.Filter.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	return filter
}

func (r *TaskRepository) List(ctx context.Context, query domain.TaskQuery) ([]domain.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.tasks.Find(ctx, BuildTaskFilter(query), opts)
	if err != nil {
		return nil, err
	}

	var docs []taskDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, mapTaskDocToDomainTask(doc))
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id primitive.ObjectID) (domain.Task, error) {
	var doc taskDoc
	err := r.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return mapTaskDocToDomainTask(doc), nil
}

func (r *TaskRepository) Insert(ctx context.Context, task domain.Task) (primitive.ObjectID, error) {
	status := string(task.Status)
	priority := string(task.Priority)
	doc := taskDoc{
		Title:        &task.Title,
		Description:  task.Description,
		Status:       &status,
		Priority:     &priority,
		DueDate:      task.DueDate,
		CreatedByID:  task.CreatedByID,
		AssignedToID: task.AssignedToID,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}

	result, err := r.tasks.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (r *TaskRepository) Update(ctx context.Context, id primitive.ObjectID, input domain.UpdateTaskInput, updatedAt time.Time) error {
	// Every field goes into $set, nil pointers included: omitted
	// fields are cleared to null, never left unchanged. createdById
	// is absent from the set document and so cannot change.
	set := bson.M{
		"title":        input.Title,
		"description":  input.Description,
		"status":       input.Status,
		"priority":     input.Priority,
		"dueDate":      input.DueDate,
		"assignedToId": input.AssignedToID,
		"updatedAt":    updatedAt,
	}

	result, err := r.tasks.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.tasks.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) FindRefs(ctx context.Context, ids []primitive.ObjectID) ([]domain.TaskRef, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	opts := options.Find().SetProjection(bson.M{"_id": 1, "title": 1})
	cursor, err := r.tasks.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}

	var docs []struct {
		ID    primitive.ObjectID `bson:"_id"`
		Title *string            `bson:"title"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	refs := make([]domain.TaskRef, 0, len(docs))
	for _, doc := range docs {
		ref := domain.TaskRef{ID: doc.ID}
		if doc.Title != nil {
			ref.Title = *doc.Title
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func mapTaskDocToDomainTask(doc taskDoc) domain.Task {
	task := domain.Task{
		ID:           doc.ID,
		Description:  doc.Description,
		DueDate:      doc.DueDate,
		CreatedByID:  doc.CreatedByID,
		AssignedToID: doc.AssignedToID,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}

	if doc.Title != nil {
		task.Title = *doc.Title
	}
	if doc.Status != nil {
		task.Status = domain.TaskStatus(*doc.Status)
	}
	if doc.Priority != nil {
		task.Priority = domain.TaskPriority(*doc.Priority)
	}

	return task
}
