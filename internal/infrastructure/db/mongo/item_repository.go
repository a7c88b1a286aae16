package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foundly/lostfound-api/internal/core/domain"
	"github.com/foundly/lostfound-api/internal/core/ports"
)

const collectionItems = "items"

type ItemRepository struct {
	col *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{col: db.Collection(collectionItems)}
}

type mongoItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	Type        string             `bson:"type"`
	Location    string             `bson:"location"`
	Date        time.Time          `bson:"date"`
	Contact     string             `bson:"contact"`
	Status      string             `bson:"status"`
	ReportedBy  string             `bson:"reported_by"`
	ResolvedAt  *time.Time         `bson:"resolved_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mi mongoItem) toDomain() *domain.Item {
	return &domain.Item{
		ID:          mi.ID.Hex(),
		Name:        mi.Name,
		Description: mi.Description,
		Category:    domain.ItemCategory(mi.Category),
		Type:        domain.ItemType(mi.Type),
		Location:    mi.Location,
		Date:        mi.Date,
		Contact:     mi.Contact,
		Status:      domain.ItemStatus(mi.Status),
		ReportedBy:  mi.ReportedBy,
		ResolvedAt:  mi.ResolvedAt,
		CreatedAt:   mi.CreatedAt,
		UpdatedAt:   mi.UpdatedAt,
	}
}

func (r *ItemRepository) Insert(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoItem{
		Name:        item.Name,
		Description: item.Description,
		Category:    string(item.Category),
		Type:        string(item.Type),
		Location:    item.Location,
		Date:        item.Date,
		Contact:     item.Contact,
		Status:      string(item.Status),
		ReportedBy:  item.ReportedBy,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	created := *item
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrItemNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mi mongoItem
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return mi.toDomain(), nil
}

// List returns matching items sorted by creation time descending. Search is
// a case-insensitive substring match OR-ed over name, description, location.
func (r *ItemRepository) List(ctx context.Context, filter ports.ListItemsFilter) ([]*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.ReportedBy != "" {
		query["reported_by"] = filter.ReportedBy
	}
	if filter.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
			bson.M{"location": re},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer cur.Close(ctx)

	items := []*domain.Item{}
	for cur.Next(ctx) {
		var mi mongoItem
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		items = append(items, mi.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// Update applies patch as a single $set and returns the updated document.
func (r *ItemRepository) Update(ctx context.Context, id string, patch ports.ItemPatch) (*domain.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrItemNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Category != nil {
		set["category"] = string(*patch.Category)
	}
	if patch.Type != nil {
		set["type"] = string(*patch.Type)
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.Contact != nil {
		set["contact"] = *patch.Contact
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.ResolvedAt != nil {
		set["resolved_at"] = *patch.ResolvedAt
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mi mongoItem
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return mi.toDomain(), nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrItemNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Stats runs the four dashboard counts.
func (r *ItemRepository) Stats(ctx context.Context) (*ports.ItemStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}
	lost, err := r.col.CountDocuments(ctx, bson.M{"type": string(domain.TypeLost)})
	if err != nil {
		return nil, fmt.Errorf("count lost items: %w", err)
	}
	found, err := r.col.CountDocuments(ctx, bson.M{"type": string(domain.TypeFound)})
	if err != nil {
		return nil, fmt.Errorf("count found items: %w", err)
	}
	resolved, err := r.col.CountDocuments(ctx, bson.M{"status": string(domain.StatusResolved)})
	if err != nil {
		return nil, fmt.Errorf("count resolved items: %w", err)
	}

	return &ports.ItemStats{
		TotalItems:    total,
		LostItems:     lost,
		FoundItems:    found,
		ResolvedCases: resolved,
	}, nil
}

// EnsureIndexes creates the filter and sort indexes on the items collection.
func (r *ItemRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "reported_by", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
