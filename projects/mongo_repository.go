package projects

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/user/projtrack-go/db"
)

// MongoRepository is the MongoDB-backed implementation of Repository.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a MongoRepository bound to the projects collection.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: database.Collection(db.ProjectsCollection)}
}

// ownerFilter builds the {_id, owner} filter shared by update and delete.
// Malformed ids yield ErrNotFound: from the caller's point of view a project
// with a bad id simply does not exist.
func ownerFilter(ownerID, projectID string) (bson.M, error) {
	owner, err := bson.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}
	id, err := bson.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, ErrNotFound
	}
	return bson.M{"_id": id, "owner": owner}, nil
}

// Create inserts the project with its owner set from ownerID.
func (r *MongoRepository) Create(ctx context.Context, ownerID string, project *Project) (*Project, error) {
	owner, err := bson.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}
	project.Owner = owner
	if project.ID.IsZero() {
		project.ID = bson.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ListByOwner returns all projects owned by ownerID.
func (r *MongoRepository) ListByOwner(ctx context.Context, ownerID string) ([]Project, error) {
	owner, err := bson.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}
	cursor, err := r.coll.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Update applies the non-nil patch fields in a single find-and-modify scoped
// by owner, returning the post-update document.
func (r *MongoRepository) Update(ctx context.Context, ownerID, projectID string, patch *UpdateProjectRequest) (*Project, error) {
	filter, err := ownerFilter(ownerID, projectID)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.StartDate != nil {
		set["startDate"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		set["endDate"] = *patch.EndDate
	}
	if patch.HoursPerWeek != nil {
		set["hoursPerWeek"] = *patch.HoursPerWeek
	}
	if patch.TotalDays != nil {
		set["totalDays"] = *patch.TotalDays
	}
	if patch.Objective != nil {
		set["objective"] = *patch.Objective
	}
	if patch.TargetAudience != nil {
		set["targetAudience"] = *patch.TargetAudience
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Challenges != nil {
		set["challenges"] = *patch.Challenges
	}
	if patch.Achievements != nil {
		set["achievements"] = *patch.Achievements
	}
	if patch.Learnings != nil {
		set["learnings"] = *patch.Learnings
	}
	if patch.EvidenceLinks != nil {
		set["evidenceLinks"] = patch.EvidenceLinks
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}

	var updated Project
	err = r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes the project matching both id and owner.
func (r *MongoRepository) Delete(ctx context.Context, ownerID, projectID string) error {
	filter, err := ownerFilter(ownerID, projectID)
	if err != nil {
		return err
	}
	err = r.coll.FindOneAndDelete(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
