package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saurav266/CureWrap-sub001/domain"
)

// OrderRepository is the persistence boundary the order and
// replacement surfaces talk through. The domain package never touches
// storage itself.
type OrderRepository interface {
	Load(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	UpdateDelivery(ctx context.Context, order *domain.Order) error
}

type mongoOrderRepository struct {
	coll *mongo.Collection
}

func NewMongoOrderRepository(coll *mongo.Collection) OrderRepository {
	return &mongoOrderRepository{coll: coll}
}

func (r *mongoOrderRepository) Load(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	var order domain.Order
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *mongoOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	_, err := r.coll.InsertOne(ctx, order)
	return err
}

// UpdateDelivery writes the delivery fields of an order that already
// went through domain.Order.ApplyDelivery.
func (r *mongoOrderRepository) UpdateDelivery(ctx context.Context, order *domain.Order) error {
	set := bson.M{
		"deliveryStatus": order.DeliveryStatus,
		"updatedAt":      time.Now(),
	}
	update := bson.M{"$set": set}
	// DeliveredAt is present exactly when status is delivered; mirror
	// the aggregate's invariant in the document.
	if order.DeliveredAt != nil {
		set["deliveredAt"] = order.DeliveredAt
	} else {
		update["$unset"] = bson.M{"deliveredAt": ""}
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": order.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
