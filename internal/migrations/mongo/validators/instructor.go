package validators

import "go.mongodb.org/mongo-driver/bson"

var InstructorValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"name", "surname", "email", "active", "created_at"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id": bson.M{"bsonType": "objectId"},
			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},
			"surname": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},
			"email": bson.M{
				"bsonType":  "string",
				"maxLength": 254,
				"pattern":   "^[^@\\s]+@[^@\\s]+\\.[^@\\s]+$",
			},
			"bio": bson.M{
				"bsonType":  "string",
				"maxLength": 1000,
			},
			"photo": bson.M{
				"bsonType":  "string",
				"maxLength": 500,
			},
			"active":     bson.M{"bsonType": "bool"},
			"is_admin":   bson.M{"bsonType": "bool"},
			"created_at": bson.M{"bsonType": "date"},
		},
	},
}
