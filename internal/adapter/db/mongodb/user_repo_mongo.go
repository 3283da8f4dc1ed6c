package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"users-service/internal/domain/user"
	pkgerrors "users-service/pkg/errors"
)

// Collection is the subset of *mongo.Collection the repository needs.
type Collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

// UserRepoMongo implements the Repository interface on a MongoDB collection.
type UserRepoMongo struct {
	coll Collection
	log  *zap.Logger
}

// NewUserRepoMongo creates a new instance of UserRepoMongo.
func NewUserRepoMongo(coll Collection, log *zap.Logger) *UserRepoMongo {
	return &UserRepoMongo{coll: coll, log: log}
}

// UserDocument is the stored shape of a user.
type UserDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
}

func (d UserDocument) toDomain() user.User {
	return user.User{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Email: d.Email,
	}
}

// Create inserts a new document and returns it with the ObjectID the driver assigned.
func (r *UserRepoMongo) Create(ctx context.Context, name, email string) (*user.User, error) {
	doc := UserDocument{
		Name:  name,
		Email: email,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		r.log.Error("failed to insert user document", zap.Error(err))
		return nil, pkgerrors.NewStorageError("create", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		err := fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
		r.log.Error("failed to read inserted id", zap.Error(err))
		return nil, pkgerrors.NewStorageError("create", err)
	}
	doc.ID = id

	r.log.Info("user document inserted", zap.String("id", id.Hex()))
	u := doc.toDomain()
	return &u, nil
}

// FindAll loads every document in the collection.
func (r *UserRepoMongo) FindAll(ctx context.Context) ([]user.User, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		r.log.Error("failed to query user documents", zap.Error(err))
		return nil, pkgerrors.NewStorageError("find_all", err)
	}

	var docs []UserDocument
	if err := cur.All(ctx, &docs); err != nil {
		r.log.Error("failed to decode user documents", zap.Error(err))
		return nil, pkgerrors.NewStorageError("find_all", err)
	}

	users := make([]user.User, len(docs))
	for i, d := range docs {
		users[i] = d.toDomain()
	}

	return users, nil
}
