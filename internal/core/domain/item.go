package domain

import (
	"errors"
	"time"
)

// ItemType distinguishes a lost report from a found report.
type ItemType string

const (
	TypeLost  ItemType = "lost"
	TypeFound ItemType = "found"
)

// ItemCategory is the fixed category taxonomy for postings.
type ItemCategory string

const (
	CategoryElectronics ItemCategory = "electronics"
	CategoryClothing    ItemCategory = "clothing"
	CategoryAccessories ItemCategory = "accessories"
	CategoryDocuments   ItemCategory = "documents"
	CategoryJewelry     ItemCategory = "jewelry"
	CategoryOther       ItemCategory = "other"
)

// ItemStatus represents the lifecycle state of a posting.
type ItemStatus string

const (
	StatusActive   ItemStatus = "active"
	StatusResolved ItemStatus = "resolved"
)

var ErrItemNotFound = errors.New("item not found")
var ErrForbidden = errors.New("access forbidden")
var ErrAlreadyResolved = errors.New("item already resolved")

// ValidType reports whether t is one of the enumerated item types.
func ValidType(t ItemType) bool {
	return t == TypeLost || t == TypeFound
}

// ValidCategory reports whether c is one of the enumerated categories.
func ValidCategory(c ItemCategory) bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryAccessories,
		CategoryDocuments, CategoryJewelry, CategoryOther:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the enumerated statuses.
func ValidStatus(s ItemStatus) bool {
	return s == StatusActive || s == StatusResolved
}

// Reporter is the expanded owner projection attached to item responses.
type Reporter struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email" bson:"email"`
	AvatarColor string `json:"avatarColor" bson:"avatar_color"`
}

// Item is a lost or found posting.
//
// ReportedBy holds the owning user's id; Reporter is populated by the
// service layer before the item leaves the API and is never persisted.
type Item struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	Name        string       `json:"name" bson:"name"`
	Description string       `json:"description" bson:"description"`
	Category    ItemCategory `json:"category" bson:"category"`
	Type        ItemType     `json:"type" bson:"type"`
	Location    string       `json:"location" bson:"location"`
	Date        time.Time    `json:"date" bson:"date"`
	Contact     string       `json:"contact" bson:"contact"`
	Status      ItemStatus   `json:"status" bson:"status"`
	ReportedBy  string       `json:"-" bson:"reported_by"`
	Reporter    *Reporter    `json:"reportedBy,omitempty" bson:"-"`
	ResolvedAt  *time.Time   `json:"resolvedAt,omitempty" bson:"resolved_at,omitempty"`
	CreatedAt   time.Time    `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" bson:"updated_at"`
}

// OwnedBy reports whether the item belongs to the given user id.
func (i *Item) OwnedBy(userID string) bool {
	return i.ReportedBy == userID
}
