package repositories

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saurav266/CureWrap-sub001/domain"
)

// ReplacementRepository persists replacement requests. The
// one-active-request-per-order-item constraint is enforced here, at
// the storage layer, so concurrent requests for the same item cannot
// both succeed.
type ReplacementRepository interface {
	Save(ctx context.Context, rep *domain.Replacement) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Replacement, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Replacement, error)
	List(ctx context.Context, status domain.ReplacementStatus) ([]domain.Replacement, error)
	UpdateStatus(ctx context.Context, rep *domain.Replacement) error
}

type mongoReplacementRepository struct {
	coll *mongo.Collection
}

// NewMongoReplacementRepository builds the repository and ensures the
// partial unique index backing the single-active-request constraint.
func NewMongoReplacementRepository(coll *mongo.Collection) ReplacementRepository {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	active := domain.ActiveReplacementStatuses()
	statuses := make([]string, len(active))
	for i, s := range active {
		statuses[i] = string(s)
	}

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "orderId", Value: 1},
			{Key: "item.productId", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": bson.M{"$in": statuses}}),
	})
	if err != nil {
		log.WithError(err).Error("Failed to ensure replacement uniqueness index")
	}

	return &mongoReplacementRepository{coll: coll}
}

func (r *mongoReplacementRepository) Save(ctx context.Context, rep *domain.Replacement) error {
	_, err := r.coll.InsertOne(ctx, rep)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrActiveReplacementExists
	}
	return err
}

func (r *mongoReplacementRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Replacement, error) {
	var rep domain.Replacement
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rep)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrReplacementNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// FindByUser returns the user's replacement requests, most recent
// first.
func (r *mongoReplacementRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Replacement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reps []domain.Replacement
	if err := cursor.All(ctx, &reps); err != nil {
		return nil, err
	}
	return reps, nil
}

func (r *mongoReplacementRepository) List(ctx context.Context, status domain.ReplacementStatus) ([]domain.Replacement, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reps []domain.Replacement
	if err := cursor.All(ctx, &reps); err != nil {
		return nil, err
	}
	return reps, nil
}

func (r *mongoReplacementRepository) UpdateStatus(ctx context.Context, rep *domain.Replacement) error {
	update := bson.M{
		"status":  rep.Status,
		"history": rep.History,
	}
	if rep.AdminNotes != "" {
		update["adminNotes"] = rep.AdminNotes
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": rep.ID}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrReplacementNotFound
	}
	return nil
}
