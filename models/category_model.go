package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Category struct {
	Id    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name" validate:"required"`
	Image string             `json:"image,omitempty" bson:"image,omitempty"`
}
