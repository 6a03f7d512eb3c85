package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fcamara/user-address-api/internal/core/domain"
	"github.com/fcamara/user-address-api/internal/core/ports"
)

const addressCollection = "addresses"

// AddressRepository is the MongoDB adapter for ports.AddressRepository.
type AddressRepository struct {
	coll *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{coll: db.Collection(addressCollection)}
}

type mongoAddress struct {
	ID         string `bson:"_id"`
	ZipCode    string `bson:"zip_code"`
	Number     string `bson:"number"`
	Complement string `bson:"complement,omitempty"`
	Street     string `bson:"street"`
	District   string `bson:"district"`
	City       string `bson:"city"`
	State      string `bson:"state"`
	UserID     string `bson:"user_id"`
}

var addressSortFields = map[string]string{
	"state":    "state",
	"city":     "city",
	"district": "district",
	"street":   "street",
	"zipCode":  "zip_code",
}

func (r *AddressRepository) FindByID(ctx context.Context, id string) (*domain.Address, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *AddressRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Address, error) {
	return r.findOne(ctx, bson.M{"_id": id, "user_id": ownerID})
}

func (r *AddressRepository) findOne(ctx context.Context, filter bson.M) (*domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAddress
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	return fromMongoAddress(ma), nil
}

func (r *AddressRepository) FindAllByOwner(ctx context.Context, ownerID string, q ports.PageQuery) ([]*domain.Address, int64, error) {
	return r.findPage(ctx, bson.M{"user_id": ownerID}, q)
}

func (r *AddressRepository) FindAllExcludingOwner(ctx context.Context, ownerID string, q ports.PageQuery) ([]*domain.Address, int64, error) {
	return r.findPage(ctx, bson.M{"user_id": bson.M{"$ne": ownerID}}, q)
}

func (r *AddressRepository) findPage(ctx context.Context, filter bson.M, q ports.PageQuery) ([]*domain.Address, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count addresses: %w", err)
	}

	cur, err := r.coll.Find(ctx, filter, pageOptions(q, addressSortFields, "state"))
	if err != nil {
		return nil, 0, fmt.Errorf("list addresses: %w", err)
	}
	defer cur.Close(ctx)

	var addresses []*domain.Address
	for cur.Next(ctx) {
		var ma mongoAddress
		if err := cur.Decode(&ma); err != nil {
			return nil, 0, fmt.Errorf("decode address: %w", err)
		}
		addresses = append(addresses, fromMongoAddress(ma))
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list addresses: %w", err)
	}
	return addresses, total, nil
}

func (r *AddressRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"user_id": ownerID})
}

func (r *AddressRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}

// Save upserts the address document by id.
func (r *AddressRepository) Save(ctx context.Context, address *domain.Address) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAddress{
		ID:         address.ID,
		ZipCode:    address.ZipCode,
		Number:     address.Number,
		Complement: address.Complement,
		Street:     address.Street,
		District:   address.District,
		City:       address.City,
		State:      address.State,
		UserID:     address.UserID,
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": address.ID}, doc, opts); err != nil {
		return fmt.Errorf("save address: %w", err)
	}
	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, address *domain.Address) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": address.ID})
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by the per-user queries.
func (r *AddressRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

func fromMongoAddress(ma mongoAddress) *domain.Address {
	return &domain.Address{
		ID:         ma.ID,
		ZipCode:    ma.ZipCode,
		Number:     ma.Number,
		Complement: ma.Complement,
		Street:     ma.Street,
		District:   ma.District,
		City:       ma.City,
		State:      ma.State,
		UserID:     ma.UserID,
	}
}
