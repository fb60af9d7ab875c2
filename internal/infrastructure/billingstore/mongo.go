package billingstore

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/medrep-crm/internal/domain/entity"
	"github.com/sangkips/medrep-crm/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// NewMongoRegistry creates a registry backed by one collection per user in db.
// Collections are created by MongoDB on first write; opening one only makes
// sure the timestamp index exists.
func NewMongoRegistry(db *mongo.Database, prefix string, timeout time.Duration, log *zap.Logger) *Registry {
	return NewRegistry(prefix, func(ctx context.Context, name string) (repository.BillingNamespace, error) {
		ns := &mongoNamespace{coll: db.Collection(name), timeout: timeout}
		if err := ns.ensureIndexes(ctx); err != nil {
			// listing still works without the index
			log.Warn("billing index creation failed",
				zap.String("collection", name),
				zap.Error(err),
			)
		}
		return ns, nil
	})
}

type mongoNamespace struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func (n *mongoNamespace) Name() string {
	return n.coll.Name()
}

func (n *mongoNamespace) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if n.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, n.timeout)
}

func (n *mongoNamespace) ensureIndexes(ctx context.Context) error {
	ctx, cancel := n.withTimeout(ctx)
	defer cancel()

	_, err := n.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	return err
}

func (n *mongoNamespace) FindAll(ctx context.Context, filter repository.EntryFilter) ([]entity.BillingEntry, error) {
	ctx, cancel := n.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := n.coll.Find(ctx, filterDocument(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]entity.BillingEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (n *mongoNamespace) FindByID(ctx context.Context, id string) (*entity.BillingEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := n.withTimeout(ctx)
	defer cancel()

	var entry entity.BillingEntry
	err = n.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (n *mongoNamespace) Insert(ctx context.Context, entry *entity.BillingEntry) error {
	ctx, cancel := n.withTimeout(ctx)
	defer cancel()

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	_, err := n.coll.InsertOne(ctx, entry)
	return err
}

func (n *mongoNamespace) InsertMany(ctx context.Context, entries []*entity.BillingEntry) error {
	if len(entries) == 0 {
		return nil
	}

	ctx, cancel := n.withTimeout(ctx)
	defer cancel()

	docs := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		if e.ID.IsZero() {
			e.ID = primitive.NewObjectID()
		}
		docs = append(docs, e)
	}
	_, err := n.coll.InsertMany(ctx, docs)
	return err
}

func (n *mongoNamespace) UpdateByID(ctx context.Context, id string, patch *entity.BillingPatch) (*entity.BillingEntry, error) {
	set := setDocument(patch)
	if len(set) == 0 {
		return n.FindByID(ctx, id)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := n.withTimeout(ctx)
	defer cancel()

	var entry entity.BillingEntry
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = n.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (n *mongoNamespace) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := n.withTimeout(ctx)
	defer cancel()

	res, err := n.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (n *mongoNamespace) DeleteMany(ctx context.Context, filter repository.EntryFilter) (int64, error) {
	ctx, cancel := n.withTimeout(ctx)
	defer cancel()

	res, err := n.coll.DeleteMany(ctx, filterDocument(filter))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func filterDocument(filter repository.EntryFilter) bson.M {
	query := bson.M{}

	if filter.From != nil || filter.To != nil {
		window := bson.M{}
		if filter.From != nil {
			window["$gte"] = *filter.From
		}
		if filter.To != nil {
			window["$lte"] = *filter.To
		}
		query["timestamp"] = window
	}

	if filter.MissingDoctorIdentity {
		// {field: null} matches both a null value and a missing field
		query["$or"] = bson.A{
			bson.M{"doctorName": nil},
			bson.M{"doctorName": ""},
			bson.M{"doctorDegree": nil},
			bson.M{"doctorDegree": ""},
		}
	}

	return query
}

func setDocument(p *entity.BillingPatch) bson.M {
	set := bson.M{}
	if p == nil {
		return set
	}
	if p.DoctorName != nil {
		set["doctorName"] = *p.DoctorName
	}
	if p.DoctorDegree != nil {
		set["doctorDegree"] = *p.DoctorDegree
	}
	if p.DoctorLocation != nil {
		set["doctorLocation"] = *p.DoctorLocation
	}
	if p.SampleUnits != nil {
		set["sampleUnits"] = *p.SampleUnits
	}
	if p.TotalOrderAmount != nil {
		set["totalOrderAmount"] = *p.TotalOrderAmount
	}
	if p.DiscountPercentage != nil {
		set["discountPercentage"] = *p.DiscountPercentage
	}
	if p.NetAmount != nil {
		set["netAmount"] = *p.NetAmount
	}
	if p.TotalAmount != nil {
		set["totalAmount"] = *p.TotalAmount
	}
	if p.AmountToPay != nil {
		set["amountToPay"] = *p.AmountToPay
	}
	if p.MRAmount != nil {
		set["mrAmount"] = *p.MRAmount
	}
	return set
}
