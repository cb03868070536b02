package auth

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/user/projtrack-go/db"
)

// MongoRepository is the MongoDB-backed implementation of Repository.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a MongoRepository bound to the users collection.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: database.Collection(db.UsersCollection)}
}

// Create inserts the user. A duplicate-key error from the unique email index
// maps to ErrDuplicateEmail.
func (r *MongoRepository) Create(ctx context.Context, user *User) (*User, error) {
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

// FindByEmail returns the user with the given email.
func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID returns the user with the given hex id. Malformed ids are reported
// as not found rather than as a distinct error.
func (r *MongoRepository) FindByID(ctx context.Context, id string) (*User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var user User
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SetResetToken stores the reset token and expiry on the user document.
func (r *MongoRepository) SetResetToken(ctx context.Context, userID, token string, expires time.Time) error {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"resetPasswordToken":   token,
			"resetPasswordExpires": expires,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ResetPassword replaces the password hash of the user holding an unexpired
// reset token and clears both reset fields in the same single-document update,
// so the token cannot be exchanged twice.
func (r *MongoRepository) ResetPassword(ctx context.Context, token string, now time.Time, hashedPassword string) error {
	filter := bson.M{
		"resetPasswordToken":   token,
		"resetPasswordExpires": bson.M{"$gt": now},
	}
	update := bson.M{
		"$set":   bson.M{"password": hashedPassword},
		"$unset": bson.M{"resetPasswordToken": "", "resetPasswordExpires": ""},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
