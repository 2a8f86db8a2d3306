package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/habitatmx/realestate-api/internal/core/domain"
)

const collectionProperties = "properties"

type PropertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{col: db.Collection(collectionProperties)}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := propertyDoc{}
	doc.fromDomain(p)

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	var doc propertyDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// List returns listings, optionally restricted to published ones, newest first.
func (r *PropertyRepository) List(ctx context.Context, publishedOnly bool) ([]domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []propertyDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	properties := make([]domain.Property, len(docs))
	for i, doc := range docs {
		properties[i] = *doc.toDomain()
	}
	return properties, nil
}

func (r *PropertyRepository) Update(ctx context.Context, id string, p *domain.Property) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":       p.Title,
		"description": p.Description,
		"type":        p.Type,
		"price":       p.Price,
		"currency":    p.Currency,
		"bedrooms":    p.Bedrooms,
		"bathrooms":   p.Bathrooms,
		"area_m2":     p.AreaM2,
		"location":    p.Location,
		"image_urls":  p.ImageURLs,
		"published":   p.Published,
		"updated_at":  p.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc propertyDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPropertyNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the properties collection.
func (r *PropertyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "published", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

type propertyDoc struct {
	ID          primitive.ObjectID      `bson:"_id,omitempty"`
	Title       string                  `bson:"title"`
	Description string                  `bson:"description"`
	Type        string                  `bson:"type"`
	Price       float64                 `bson:"price"`
	Currency    string                  `bson:"currency"`
	Bedrooms    int                     `bson:"bedrooms"`
	Bathrooms   int                     `bson:"bathrooms"`
	AreaM2      float64                 `bson:"area_m2"`
	Location    domain.PropertyLocation `bson:"location"`
	ImageURLs   []string                `bson:"image_urls,omitempty"`
	Published   bool                    `bson:"published"`
	CreatedAt   time.Time               `bson:"created_at"`
	UpdatedAt   time.Time               `bson:"updated_at"`
}

func (d *propertyDoc) fromDomain(p *domain.Property) {
	d.Title = p.Title
	d.Description = p.Description
	d.Type = p.Type
	d.Price = p.Price
	d.Currency = p.Currency
	d.Bedrooms = p.Bedrooms
	d.Bathrooms = p.Bathrooms
	d.AreaM2 = p.AreaM2
	d.Location = p.Location
	d.ImageURLs = p.ImageURLs
	d.Published = p.Published
	d.CreatedAt = p.CreatedAt
	d.UpdatedAt = p.UpdatedAt
}

func (d propertyDoc) toDomain() *domain.Property {
	return &domain.Property{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Type:        d.Type,
		Price:       d.Price,
		Currency:    d.Currency,
		Bedrooms:    d.Bedrooms,
		Bathrooms:   d.Bathrooms,
		AreaM2:      d.AreaM2,
		Location:    d.Location,
		ImageURLs:   d.ImageURLs,
		Published:   d.Published,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
