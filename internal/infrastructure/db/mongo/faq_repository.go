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

const collectionFAQs = "faqs"

type FAQRepository struct {
	col *mongo.Collection
}

func NewFAQRepository(db *mongo.Database) *FAQRepository {
	return &FAQRepository{col: db.Collection(collectionFAQs)}
}

func (r *FAQRepository) Create(ctx context.Context, f *domain.FAQ) (*domain.FAQ, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := faqDoc{
		Question:  f.Question,
		Answer:    f.Answer,
		Order:     f.Order,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	created := *f
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *FAQRepository) List(ctx context.Context) ([]domain.FAQ, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []faqDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	faqs := make([]domain.FAQ, len(docs))
	for i, doc := range docs {
		faqs[i] = domain.FAQ{
			ID:        doc.ID.Hex(),
			Question:  doc.Question,
			Answer:    doc.Answer,
			Order:     doc.Order,
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		}
	}
	return faqs, nil
}

func (r *FAQRepository) Update(ctx context.Context, id string, f *domain.FAQ) (*domain.FAQ, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFAQNotFound
	}

	update := bson.M{"$set": bson.M{
		"question":   f.Question,
		"answer":     f.Answer,
		"order":      f.Order,
		"updated_at": f.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc faqDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFAQNotFound
		}
		return nil, err
	}

	return &domain.FAQ{
		ID:        doc.ID.Hex(),
		Question:  doc.Question,
		Answer:    doc.Answer,
		Order:     doc.Order,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func (r *FAQRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrFAQNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrFAQNotFound
	}
	return nil
}

type faqDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Question  string             `bson:"question"`
	Answer    string             `bson:"answer"`
	Order     int                `bson:"order"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}
