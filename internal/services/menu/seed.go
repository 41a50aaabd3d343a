package menu

import (
	"context"
	"fmt"

	"kapehan/internal/models"
)

func price(v float64) *float64 { return &v }

// sampleMenu is the starter coffee menu loaded by the seed-menu mode.
var sampleMenu = []models.MenuItem{
	{ItemID: "ESP-001", Name: "Espresso", Category: "Espresso", Description: "Double shot of our signature house blend", DiscountedPrice: 120, PrepTime: "2 mins", Status: models.StockStatusIn},
	{ItemID: "ESP-002", Name: "Americano", Category: "Espresso", Description: "Espresso lengthened with hot water", DiscountedPrice: 140, PrepTime: "3 mins", Status: models.StockStatusIn},
	{ItemID: "ESP-003", Name: "Cortado", Category: "Espresso", Description: "Equal parts espresso and steamed milk", OriginalPrice: price(180), DiscountedPrice: 150, PrepTime: "3 mins", Status: models.StockStatusIn},
	{ItemID: "LAT-001", Name: "Cafe Latte", Category: "Lattes", Description: "Espresso with velvety steamed milk", DiscountedPrice: 150, PrepTime: "4 mins", Status: models.StockStatusIn},
	{ItemID: "LAT-002", Name: "Caramel Macchiato", Category: "Lattes", Description: "Vanilla latte finished with caramel drizzle", OriginalPrice: price(380), DiscountedPrice: 310, PrepTime: "5 mins", Status: models.StockStatusIn},
	{ItemID: "LAT-003", Name: "Spanish Latte", Category: "Lattes", Description: "Sweetened condensed milk latte", OriginalPrice: price(330), DiscountedPrice: 275, PrepTime: "4 mins", Status: models.StockStatusIn},
	{ItemID: "FRP-001", Name: "Mocha Frappe", Category: "Frappes", Description: "Blended chocolate espresso topped with cream", OriginalPrice: price(400), DiscountedPrice: 330, PrepTime: "5 mins", Status: models.StockStatusIn},
	{ItemID: "FRP-002", Name: "Java Chip Frappe", Category: "Frappes", Description: "Chocolate chips blended with cold brew", OriginalPrice: price(400), DiscountedPrice: 345, PrepTime: "6 mins", Status: models.StockStatusIn},
	{ItemID: "FRP-003", Name: "Matcha Frappe", Category: "Frappes", Description: "Ceremonial matcha blended over ice", DiscountedPrice: 360, PrepTime: "5 mins", Status: models.StockStatusOut},
	{ItemID: "SPC-001", Name: "Ube Latte", Category: "Specialty", Description: "Purple yam latte, a local favorite", DiscountedPrice: 290, PrepTime: "5 mins", Status: models.StockStatusIn},
	{ItemID: "SPC-002", Name: "Coconut Cold Brew", Category: "Specialty", Description: "Slow-steeped cold brew with coconut cream", OriginalPrice: price(350), DiscountedPrice: 295, PrepTime: "3 mins", Status: models.StockStatusIn},
	{ItemID: "SPC-003", Name: "Honey Citrus Brew", Category: "Specialty", Description: "Cold brew with calamansi and wild honey", DiscountedPrice: 280, PrepTime: "4 mins", Status: models.StockStatusIn},
}

// Seed inserts the sample menu. Items already present (same item_id) are
// left untouched, so seeding is safe to repeat.
func Seed(ctx context.Context, repo Repository) error {
	for _, item := range sampleMenu {
		if err := repo.Insert(ctx, item); err != nil {
			return fmt.Errorf("failed to seed menu item %s: %w", item.ItemID, err)
		}
	}
	return nil
}
