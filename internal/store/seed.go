package store

import "shop-service/internal/models"

// seedProducts returns the startup catalog. There are no product
// create/delete operations; this is the full product lifecycle.
func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:           1,
			Name:         "Wireless Headphones",
			Description:  "High-quality wireless headphones with noise cancellation",
			Price:        99.99,
			Image:        "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
			Category:     "Electronics",
			Stock:        50,
			Rating:       4.5,
			ReviewsCount: 12,
			Discount:     10.0,
		},
		{
			ID:           2,
			Name:         "Smart Watch",
			Description:  "Fitness tracking smartwatch with heart rate monitor",
			Price:        199.99,
			Image:        "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
			Category:     "Electronics",
			Stock:        30,
			Rating:       4.8,
			ReviewsCount: 25,
			Discount:     15.0,
		},
		{
			ID:           3,
			Name:         "Running Shoes",
			Description:  "Comfortable running shoes with excellent grip",
			Price:        79.99,
			Image:        "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400",
			Category:     "Sports",
			Stock:        100,
			Rating:       4.3,
			ReviewsCount: 8,
			Discount:     0.0,
		},
		{
			ID:           4,
			Name:         "Coffee Maker",
			Description:  "Automatic coffee maker with programmable timer",
			Price:        129.99,
			Image:        "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=400",
			Category:     "Beverages",
			Stock:        25,
			Rating:       4.6,
			ReviewsCount: 15,
			Discount:     20.0,
		},
		{
			ID:           5,
			Name:         "Backpack",
			Description:  "Durable laptop backpack with multiple compartments",
			Price:        49.99,
			Image:        "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
			Category:     "Accessories",
			Stock:        75,
			Rating:       4.2,
			ReviewsCount: 6,
			Discount:     5.0,
		},
		{
			ID:           6,
			Name:         "Yoga Mat",
			Description:  "Non-slip yoga mat with carrying strap",
			Price:        29.99,
			Image:        "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=400",
			Category:     "Sports",
			Stock:        60,
			Rating:       4.7,
			ReviewsCount: 20,
			Discount:     0.0,
		},
	}
}
