package catalog

import (
	"strconv"

	"github.com/lookbook-io/lookbook/internal/db"
	domcat "github.com/lookbook-io/lookbook/internal/domain/catalog"
)

// Hash field names for a stored product.
const (
	fieldName        = "name"
	fieldDescription = "description"
	fieldCategory    = "category"
	fieldColor       = "color"
	fieldSeason      = "season"
	fieldBrand       = "brand"
	fieldImageURL    = "image_url"
	fieldPrice       = "price"
	fieldTextVec     = "text_vec"
	fieldImageVec    = "image_vec"
)

// toFields flattens an item into a Redis hash. Vectors are stored as packed
// float32 bytes; absent vectors get no field at all.
func toFields(item domcat.Item) map[string]string {
	fields := map[string]string{
		fieldName:        item.Name(),
		fieldDescription: item.Description(),
		fieldCategory:    item.Category(),
		fieldColor:       item.Color(),
		fieldSeason:      item.Season(),
		fieldBrand:       item.Brand(),
		fieldImageURL:    item.ImageURL(),
		fieldPrice:       strconv.Itoa(item.Price()),
	}
	if v := item.TextVector(); v != nil {
		fields[fieldTextVec] = string(db.EncodeVector(v))
	}
	if v := item.ImageVector(); v != nil {
		fields[fieldImageVec] = string(db.EncodeVector(v))
	}
	return fields
}

// fromFields rebuilds an item from a Redis hash. A corrupt vector field is
// treated as absent rather than failing the whole load.
func fromFields(id string, fields map[string]string) domcat.Item {
	price, _ := strconv.Atoi(fields[fieldPrice])

	item := domcat.New(
		id,
		fields[fieldName],
		fields[fieldDescription],
		fields[fieldCategory],
		fields[fieldColor],
		fields[fieldSeason],
		fields[fieldBrand],
		fields[fieldImageURL],
		price,
	)

	var textVec, imageVec []float32
	if raw := fields[fieldTextVec]; raw != "" {
		if v, err := db.DecodeVector([]byte(raw)); err == nil {
			textVec = v
		}
	}
	if raw := fields[fieldImageVec]; raw != "" {
		if v, err := db.DecodeVector([]byte(raw)); err == nil {
			imageVec = v
		}
	}
	return item.WithVectors(textVec, imageVec)
}
