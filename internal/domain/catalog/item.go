// Package catalog defines the product snapshot the ranking engine reads.
package catalog

import "strings"

// Item is an immutable-per-query catalog product snapshot.
// TextVector and ImageVector are populated independently and either may be
// nil; scoring passes skip items missing the vector their mode requires.
type Item struct {
	id          string
	name        string
	description string
	category    string
	color       string
	season      string
	brand       string
	imageURL    string
	price       int
	textVector  []float32
	imageVector []float32
}

// New creates a catalog item without vectors.
func New(id, name, description, category, color, season, brand, imageURL string, price int) Item {
	return Item{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		color:       color,
		season:      season,
		brand:       brand,
		imageURL:    imageURL,
		price:       price,
	}
}

// WithVectors returns a copy of the item with the given vectors attached.
// Either vector may be nil.
func (i Item) WithVectors(text, image []float32) Item {
	i.textVector = text
	i.imageVector = image
	return i
}

// ID returns the stable product identifier.
func (i *Item) ID() string { return i.id }

// Name returns the product name.
func (i *Item) Name() string { return i.name }

// Description returns the optional product description.
func (i *Item) Description() string { return i.description }

// Category returns the product category.
func (i *Item) Category() string { return i.category }

// Color returns the product color.
func (i *Item) Color() string { return i.color }

// Season returns the free-form season tag (may contain multiple tags, e.g. "사계절").
func (i *Item) Season() string { return i.season }

// Brand returns the product brand.
func (i *Item) Brand() string { return i.brand }

// ImageURL returns the product image URL.
func (i *Item) ImageURL() string { return i.imageURL }

// Price returns the product price in KRW.
func (i *Item) Price() int { return i.price }

// TextVector returns the precomputed text embedding, or nil.
func (i *Item) TextVector() []float32 { return i.textVector }

// ImageVector returns the precomputed image embedding, or nil.
func (i *Item) ImageVector() []float32 { return i.imageVector }

// SearchText returns the lowercased name+description+color text the symbolic
// scoring rules match against.
func (i *Item) SearchText() string {
	return strings.ToLower(i.name + " " + i.description + " " + i.color)
}
