package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"motorcycle_id",
			"instructor_id",
			"date",
			"time_slot",
			"customer",
			"status",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"motorcycle_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"instructor_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  "^\\d{4}-\\d{2}-\\d{2}$",
			},

			"time_slot": bson.M{
				"bsonType": "string",
				"pattern":  "^([01][0-9]|2[0-3]):[0-5][0-9]$",
			},

			"customer": bson.M{
				"bsonType": "object",
				"required": []string{"name", "surname", "gender", "age", "height_cm", "phone"},
				"properties": bson.M{
					"name":    bson.M{"bsonType": "string", "minLength": 2, "maxLength": 100},
					"surname": bson.M{"bsonType": "string", "minLength": 2, "maxLength": 100},
					"gender":  bson.M{"enum": []string{"Male", "Female", "Other"}},
					"age": bson.M{
						"bsonType": "int",
						"minimum":  16,
						"maximum":  99,
					},
					"height_cm": bson.M{
						"bsonType": "int",
						"minimum":  1,
						"maximum":  250,
					},
					"phone": bson.M{"bsonType": "string"},
				},
			},

			"status": bson.M{
				"enum": []string{"pending", "confirmed", "cancelled"},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
