package models

import "math"

// Menu item stock status values as stored in the menu_items table.
const (
	StockStatusIn  = "In Stock"
	StockStatusOut = "Out of Stock"
)

// MenuItem is a row of the menu_items table as served by the items API.
type MenuItem struct {
	ID              int      `json:"id"`
	ItemID          string   `json:"item_id,omitempty"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Description     string   `json:"description,omitempty"`
	OriginalPrice   *float64 `json:"original_price,omitempty"`
	DiscountedPrice float64  `json:"discounted_price"`
	PrepTime        string   `json:"prep_time,omitempty"`
	Status          string   `json:"status,omitempty"`
	Picture         string   `json:"picture,omitempty"`
}

// Product is the storefront view of a menu item. Price is the effective
// (discounted) price; OriginalPrice is only set when a markdown applies.
type Product struct {
	ID            int      `json:"id"`
	ItemID        string   `json:"item_id,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Category      string   `json:"category,omitempty"`
	Image         string   `json:"image,omitempty"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	InStock       bool     `json:"inStock"`
	PrepTime      string   `json:"prepTime,omitempty"`
}

// Product converts the raw menu row into its storefront shape.
func (m MenuItem) Product() Product {
	p := Product{
		ID:          m.ID,
		ItemID:      m.ItemID,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		Image:       m.Picture,
		Price:       m.DiscountedPrice,
		InStock:     m.Status == StockStatusIn,
		PrepTime:    m.PrepTime,
	}
	if m.OriginalPrice != nil && *m.OriginalPrice > 0 && *m.OriginalPrice != m.DiscountedPrice {
		orig := *m.OriginalPrice
		p.OriginalPrice = &orig
	}
	return p
}

// ProductsFromMenuItems converts a menu listing into storefront products.
func ProductsFromMenuItems(items []MenuItem) []Product {
	products := make([]Product, 0, len(items))
	for _, item := range items {
		products = append(products, item.Product())
	}
	return products
}

// Discount returns the markdown percentage, rounded to the nearest whole
// number. It is derived on demand from the two prices and never stored; the
// second return value reports whether a discount applies at all.
func (p Product) Discount() (int, bool) {
	if p.OriginalPrice == nil || *p.OriginalPrice <= 0 || *p.OriginalPrice == p.Price {
		return 0, false
	}
	pct := math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100)
	return int(pct), true
}
