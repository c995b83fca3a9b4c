package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction is one listed or sold product, as stored in the record collection.
type Transaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Sold        bool               `bson:"sold" json:"sold"`
	Category    string             `bson:"category" json:"category"`
	DateOfSale  time.Time          `bson:"dateOfSale" json:"dateOfSale"`
}

// CategoryCount is one slice of the per-category breakdown. The category is exposed as _id,
// the shape produced by a $group stage.
type CategoryCount struct {
	Category string `bson:"_id" json:"_id"`
	Count    int64  `bson:"count" json:"count"`
}
