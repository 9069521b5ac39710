package mockserver

import (
	"time"

	"github.com/google/uuid"
)

// seed loads the sample catalog the real backend installs on first start.
// Seeded recipes have no creator.
func (s *Server) seed() error {
	var count int64
	if err := s.db.Model(&Recipe{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	samples := []Recipe{
		{
			Name:        "Vegetable Biryani",
			Category:    "veg",
			Ingredients: JSONStringArray{"Basmati rice", "Mixed vegetables", "Onions", "Tomatoes", "Spices", "Yogurt"},
			Steps:       JSONStringArray{"Wash and soak rice", "Cook vegetables with spices", "Layer rice and vegetables", "Cook on low heat"},
			CookingTime: "45 minutes",
			Difficulty:  "medium",
			Image:       "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=800&h=600&fit=crop",
		},
		{
			Name:        "Paneer Tikka",
			Category:    "veg",
			Ingredients: JSONStringArray{"Paneer cubes", "Bell peppers", "Onions", "Yogurt", "Tikka masala", "Lemon juice"},
			Steps:       JSONStringArray{"Marinate paneer in yogurt and spices", "Skewer with vegetables", "Grill until golden", "Serve with chutney"},
			CookingTime: "30 minutes",
			Difficulty:  "easy",
			Image:       "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8?w=800&h=600&fit=crop",
		},
		{
			Name:        "Butter Chicken",
			Category:    "non-veg",
			Ingredients: JSONStringArray{"Chicken", "Butter", "Tomatoes", "Cream", "Spices", "Kasuri methi"},
			Steps:       JSONStringArray{"Marinate and cook chicken", "Prepare tomato gravy", "Add cream and butter", "Simmer and serve"},
			CookingTime: "50 minutes",
			Difficulty:  "medium",
			Image:       "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?w=800&h=600&fit=crop",
		},
		{
			Name:        "Grilled Chicken",
			Category:    "non-veg",
			Ingredients: JSONStringArray{"Chicken breast", "Olive oil", "Garlic", "Herbs", "Lemon", "Salt and pepper"},
			Steps:       JSONStringArray{"Marinate chicken with oil and herbs", "Preheat grill", "Grill for 6-7 minutes each side", "Rest before serving"},
			CookingTime: "25 minutes",
			Difficulty:  "easy",
			Image:       "https://images.unsplash.com/photo-1532550907401-a500c9a57435?w=800&h=600&fit=crop",
		},
		{
			Name:        "Chocolate Cake",
			Category:    "dessert",
			Ingredients: JSONStringArray{"All-purpose flour", "Cocoa powder", "Sugar", "Eggs", "Butter", "Milk"},
			Steps:       JSONStringArray{"Mix dry ingredients", "Beat eggs and sugar", "Combine all ingredients", "Bake at 180°C for 30 minutes"},
			CookingTime: "45 minutes",
			Difficulty:  "medium",
			Image:       "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=800&h=600&fit=crop",
		},
		{
			Name:        "Tiramisu",
			Category:    "dessert",
			Ingredients: JSONStringArray{"Ladyfinger biscuits", "Mascarpone cheese", "Coffee", "Cocoa powder", "Sugar", "Eggs"},
			Steps:       JSONStringArray{"Prepare coffee mixture", "Layer soaked biscuits and cream", "Refrigerate overnight", "Dust with cocoa"},
			CookingTime: "30 minutes + chilling",
			Difficulty:  "hard",
			Image:       "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=800&h=600&fit=crop",
		},
		{
			Name:        "French Fries",
			Category:    "fast-food",
			Ingredients: JSONStringArray{"Potatoes", "Oil", "Salt"},
			Steps:       JSONStringArray{"Cut potatoes into strips", "Soak in cold water", "Deep fry until golden", "Season with salt"},
			CookingTime: "20 minutes",
			Difficulty:  "easy",
			Image:       "https://images.unsplash.com/photo-1576107232684-1279f390859f?w=800&h=600&fit=crop",
		},
		{
			Name:        "Pizza Margherita",
			Category:    "fast-food",
			Ingredients: JSONStringArray{"Pizza dough", "Tomato sauce", "Mozzarella cheese", "Basil", "Olive oil"},
			Steps:       JSONStringArray{"Roll out pizza dough", "Spread tomato sauce", "Add cheese and basil", "Bake at 220°C"},
			CookingTime: "25 minutes",
			Difficulty:  "medium",
			Image:       "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=800&h=600&fit=crop",
		},
	}

	for i := range samples {
		samples[i].ID = uuid.NewString()
		samples[i].CreatedAt = now
	}

	return s.db.Create(&samples).Error
}
