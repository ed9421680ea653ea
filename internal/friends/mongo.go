package friends

import (
	"context"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hangtime-app/hangtime/internal/repo"
	"github.com/hangtime-app/hangtime/pkg/errors"
	"github.com/hangtime-app/hangtime/pkg/logger"
	"github.com/hangtime-app/hangtime/pkg/mongotools"
)

type Config struct {
	Mongo      repo.MongoConfig `yaml:"mongo"`
	Collection string           `yaml:"collection"`
}

func New(ctx context.Context, log logger.Logger, cfg Config) (API, error) {
	db, err := repo.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, errors.WrapFail(err, "init friends repo")
	}

	return &mongoFriends{
		coll: db.Collection(cfg.Collection),
		log:  log.With("friends"),
	}, nil
}

type mongoFriends struct {
	coll *mongo.Collection
	log  logger.Logger
}

func (m *mongoFriends) Upsert(ctx context.Context, user User) error {
	upsert := true
	_, err := m.coll.UpdateOne(
		ctx,
		mongotools.Field(FieldID, user.ID),
		mongotools.SetAll(
			mongotools.Field("username", user.Username),
			mongotools.Field("telegram", user.Telegram),
		),
		&options.UpdateOptions{Upsert: &upsert},
	)

	return errors.WrapFail(err, "upsert user")
}

func (m *mongoFriends) Get(ctx context.Context, id string) (*User, error) {
	r := m.coll.FindOne(ctx, mongotools.Field(FieldID, id))

	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find user by id")
	}

	var user User
	err = r.Decode(&user)
	if err != nil {
		return nil, errors.WrapFail(err, "decode user")
	}

	return &user, nil
}

func (m *mongoFriends) Exists(ctx context.Context, id string) (bool, error) {
	u, err := m.Get(ctx, id)
	return u != nil, err
}

func (m *mongoFriends) Allowed(ctx context.Context, requester, target string) (bool, error) {
	if requester == target {
		return true, nil
	}

	req, err := m.Get(ctx, requester)
	if err != nil {
		return false, errors.WrapFail(err, "get requester")
	}

	tgt, err := m.Get(ctx, target)
	if err != nil {
		return false, errors.WrapFail(err, "get target")
	}

	if req == nil || tgt == nil {
		return false, nil
	}

	return slices.Contains(req.Friends, target) && slices.Contains(tgt.Friends, requester), nil
}

func (m *mongoFriends) AddFriend(ctx context.Context, user, friend string) error {
	_, err := m.coll.UpdateOne(
		ctx,
		mongotools.Field(FieldID, user),
		bson.M{"$addToSet": bson.M{FieldFriends: friend}},
	)

	return errors.WrapFail(err, "add friend")
}

func (m *mongoFriends) Close(ctx context.Context) error {
	return repo.Disconnect(ctx, m.coll.Database())
}
