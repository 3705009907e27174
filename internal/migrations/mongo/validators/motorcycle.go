package validators

import "go.mongodb.org/mongo-driver/bson"

var MotorcycleValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"name", "active", "created_at"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id": bson.M{"bsonType": "objectId"},
			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},
			"image": bson.M{
				"bsonType":  "string",
				"maxLength": 500,
			},
			"description": bson.M{
				"bsonType":  "string",
				"maxLength": 1000,
			},
			"active":     bson.M{"bsonType": "bool"},
			"created_at": bson.M{"bsonType": "date"},
		},
	},
}
