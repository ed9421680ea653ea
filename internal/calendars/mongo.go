package calendars

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hangtime-app/hangtime/internal/repo"
	"github.com/hangtime-app/hangtime/pkg/errors"
	"github.com/hangtime-app/hangtime/pkg/logger"
	"github.com/hangtime-app/hangtime/pkg/mongotools"
)

type Config struct {
	Mongo repo.MongoConfig `yaml:"mongo"`

	Collections struct {
		Manual      string `yaml:"manual"`
		Repeating   string `yaml:"repeating"`
		Imported    string `yaml:"imported"`
		Commitments string `yaml:"commitments"`
	} `yaml:"collections"`
}

func New(ctx context.Context, log logger.Logger, cfg Config) (API, error) {
	db, err := repo.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, errors.WrapFail(err, "init calendars repo")
	}

	return &mongoCalendars{
		manual:      db.Collection(cfg.Collections.Manual),
		repeating:   db.Collection(cfg.Collections.Repeating),
		imported:    db.Collection(cfg.Collections.Imported),
		commitments: db.Collection(cfg.Collections.Commitments),
		log:         log.With("calendars"),
	}, nil
}

type mongoCalendars struct {
	manual      *mongo.Collection
	repeating   *mongo.Collection
	imported    *mongo.Collection
	commitments *mongo.Collection
	log         logger.Logger
}

func (m *mongoCalendars) ManualRanges(ctx context.Context, user string) ([]ManualRange, error) {
	return byUser[ManualRange](ctx, m.manual, user)
}

func (m *mongoCalendars) RepeatingRanges(ctx context.Context, user string) ([]RepeatingRange, error) {
	return byUser[RepeatingRange](ctx, m.repeating, user)
}

func (m *mongoCalendars) ImportedRanges(ctx context.Context, user string) ([]ImportedRange, error) {
	return byUser[ImportedRange](ctx, m.imported, user)
}

func (m *mongoCalendars) Commitments(ctx context.Context, user string) ([]Commitment, error) {
	c, err := m.commitments.Find(ctx, mongotools.Field(FieldAttendees, user))
	if err != nil {
		return nil, errors.WrapFail(err, "select commitments by attendee")
	}

	return mongotools.Decode[Commitment](ctx, c)
}

func (m *mongoCalendars) AddManualRange(ctx context.Context, r ManualRange) (ManualRange, error) {
	if !r.Start.Before(r.End) {
		return ManualRange{}, errors.Wrap(ErrInvalidRange, "manual range must end after it starts")
	}

	r.ID = uuid.NewString()

	existing, err := m.ManualRanges(ctx, r.User)
	if err != nil {
		return ManualRange{}, errors.WrapFail(err, "load manual calendar")
	}

	sort.Slice(existing, func(a, b int) bool {
		return existing[a].Start.Before(existing[b].Start)
	})

	res := resolveOverlaps(r, existing)

	if len(res.removes) > 0 {
		filter := bson.M{FieldUser: r.User, FieldID: bson.M{"$in": res.removes}}
		_, err = m.manual.DeleteMany(ctx, filter)
		if err != nil {
			return ManualRange{}, errors.WrapFail(err, "delete swallowed ranges")
		}
	}

	for _, upd := range res.updates {
		_, err = m.manual.UpdateOne(
			ctx,
			bson.M{FieldUser: upd.User, FieldID: upd.ID},
			mongotools.SetAll(
				mongotools.Field(FieldStart, upd.Start),
				mongotools.Field(FieldEnd, upd.End),
			),
		)
		if err != nil {
			return ManualRange{}, errors.WrapFail(err, "trim overlapping range")
		}
	}

	for _, ins := range res.inserts {
		ins.ID = uuid.NewString()
		_, err = m.manual.InsertOne(ctx, ins)
		if err != nil {
			return ManualRange{}, errors.WrapFail(err, "insert split fragment")
		}
	}

	_, err = m.manual.InsertOne(ctx, res.add)
	if err != nil {
		return ManualRange{}, errors.WrapFail(err, "insert manual range")
	}

	return res.add, nil
}

func (m *mongoCalendars) DeleteManualRange(ctx context.Context, user, id string) (bool, error) {
	r, err := m.manual.DeleteOne(ctx, bson.M{FieldUser: user, FieldID: id})
	if err != nil {
		return false, errors.WrapFail(err, "delete manual range")
	}

	return r.DeletedCount == 1, nil
}

func (m *mongoCalendars) AddRepeatingRange(ctx context.Context, r RepeatingRange) (RepeatingRange, error) {
	if _, err := r.Expand(r.Start); err != nil {
		return RepeatingRange{}, err
	}

	r.ID = uuid.NewString()

	_, err := m.repeating.InsertOne(ctx, r)
	if err != nil {
		return RepeatingRange{}, errors.WrapFail(err, "insert repeating range")
	}

	return r, nil
}

func (m *mongoCalendars) DeleteRepeatingRange(ctx context.Context, user, id string) (bool, error) {
	r, err := m.repeating.DeleteOne(ctx, bson.M{FieldUser: user, FieldID: id})
	if err != nil {
		return false, errors.WrapFail(err, "delete repeating range")
	}

	return r.DeletedCount == 1, nil
}

func (m *mongoCalendars) ReplaceImported(ctx context.Context, user string, ranges []ImportedRange) error {
	_, err := m.imported.DeleteMany(ctx, mongotools.Field(FieldUser, user))
	if err != nil {
		return errors.WrapFail(err, "drop old imported calendar")
	}

	if len(ranges) == 0 {
		return nil
	}

	docs := make([]any, 0, len(ranges))
	for _, r := range ranges {
		r.User = user
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		docs = append(docs, r)
	}

	_, err = m.imported.InsertMany(ctx, docs)
	return errors.WrapFail(err, "insert imported calendar")
}

func (m *mongoCalendars) AddCommitment(ctx context.Context, c Commitment) (Commitment, error) {
	if !c.Start.Before(c.End) {
		return Commitment{}, errors.Wrap(ErrInvalidRange, "commitment must end after it starts")
	}

	c.ID = uuid.NewString()

	_, err := m.commitments.InsertOne(ctx, c)
	if err != nil {
		return Commitment{}, errors.WrapFail(err, "insert commitment")
	}

	return c, nil
}

func (m *mongoCalendars) Close(ctx context.Context) error {
	return repo.Disconnect(ctx, m.manual.Database())
}

func byUser[T any](ctx context.Context, coll *mongo.Collection, user string) ([]T, error) {
	c, err := coll.Find(ctx, mongotools.Field(FieldUser, user))
	if err != nil {
		return nil, errors.WrapFail(err, "select ranges by user")
	}

	return mongotools.Decode[T](ctx, c)
}
