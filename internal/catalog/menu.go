package catalog

import (
	"github.com/nikolayk812/foodcart-demo/internal/domain"
)

// Items returns the static menu in display order. The slice is rebuilt on
// every call so callers can never mutate the catalog.
func Items() []domain.MenuItem {
	items := make([]domain.MenuItem, len(menu))
	copy(items, menu)
	return items
}

// ItemByID looks an item up by its identifier, ok=false when absent.
func ItemByID(id string) (domain.MenuItem, bool) {
	for _, item := range menu {
		if item.ID == id {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

var menu = []domain.MenuItem{
	{
		ID:          "1",
		Name:        "Chicken Biryani",
		Type:        "Hyderabadi Style",
		Category:    "Biryani",
		Price:       domain.USD("12.99"),
		Rating:      4.8,
		Description: "Fragrant basmati rice layered with marinated chicken, saffron and fried onions, slow-cooked on dum.",
		Ingredients: []string{"basmati rice", "chicken", "saffron", "yogurt", "fried onions", "mint"},
		Image:       "chicken_biryani.jpg",
	},
	{
		ID:          "2",
		Name:        "Mutton Biryani",
		Type:        "Lucknowi Style",
		Category:    "Biryani",
		Price:       domain.USD("15.49"),
		Rating:      4.7,
		Description: "Tender mutton and long-grain rice sealed together with kewra water and whole spices.",
		Ingredients: []string{"basmati rice", "mutton", "kewra water", "ghee", "whole spices"},
		Image:       "mutton_biryani.jpg",
	},
	{
		ID:          "3",
		Name:        "Veg Biryani",
		Type:        "Garden Vegetables",
		Category:    "Biryani",
		Price:       domain.USD("10.99"),
		Rating:      4.4,
		Description: "Seasonal vegetables and paneer tossed through spiced rice with cashews and raisins.",
		Ingredients: []string{"basmati rice", "paneer", "carrot", "beans", "cashews", "raisins"},
		Image:       "veg_biryani.jpg",
	},
	{
		ID:          "4",
		Name:        "Prawn Biryani",
		Type:        "Coastal Style",
		Category:    "Biryani",
		Price:       domain.USD("14.99"),
		Rating:      4.6,
		Description: "Juicy prawns in a coconut-tinged masala folded into steamed basmati rice.",
		Ingredients: []string{"basmati rice", "prawns", "coconut", "curry leaves", "chili"},
		Image:       "prawn_biryani.jpg",
	},
	{
		ID:          "5",
		Name:        "Chicken 65",
		Type:        "Spicy Starter",
		Category:    "Starters",
		Price:       domain.USD("8.99"),
		Rating:      4.5,
		Description: "Crisp fried chicken bites tempered with curry leaves, garlic and red chili.",
		Ingredients: []string{"chicken", "curry leaves", "garlic", "red chili", "rice flour"},
		Image:       "chicken_65.jpg",
	},
	{
		ID:          "6",
		Name:        "Paneer Tikka",
		Type:        "Tandoori Starter",
		Category:    "Starters",
		Price:       domain.USD("9.49"),
		Rating:      4.3,
		Description: "Char-grilled cottage cheese cubes in a smoky yogurt marinade with peppers and onion.",
		Ingredients: []string{"paneer", "yogurt", "bell pepper", "onion", "garam masala"},
		Image:       "paneer_tikka.jpg",
	},
	{
		ID:          "7",
		Name:        "Butter Chicken",
		Type:        "Creamy Curry",
		Category:    "Curries",
		Price:       domain.USD("13.49"),
		Rating:      4.9,
		Description: "Tandoori chicken simmered in a silky tomato, butter and cream gravy.",
		Ingredients: []string{"chicken", "tomato", "butter", "cream", "fenugreek"},
		Image:       "butter_chicken.jpg",
	},
	{
		ID:          "8",
		Name:        "Dal Makhani",
		Type:        "Slow-cooked Lentils",
		Category:    "Curries",
		Price:       domain.USD("9.99"),
		Rating:      4.4,
		Description: "Black lentils simmered overnight with butter and finished with cream.",
		Ingredients: []string{"black lentils", "kidney beans", "butter", "cream", "ginger"},
		Image:       "dal_makhani.jpg",
	},
	{
		ID:          "9",
		Name:        "Garlic Naan",
		Type:        "Tandoor Bread",
		Category:    "Breads",
		Price:       domain.USD("3.49"),
		Rating:      4.6,
		Description: "Soft leavened bread brushed with garlic butter and coriander.",
		Ingredients: []string{"flour", "garlic", "butter", "coriander"},
		Image:       "garlic_naan.jpg",
	},
	{
		ID:          "10",
		Name:        "Gulab Jamun",
		Type:        "Sweet",
		Category:    "Desserts",
		Price:       domain.USD("4.99"),
		Rating:      4.7,
		Description: "Milk dumplings soaked in rose-scented sugar syrup, served warm.",
		Ingredients: []string{"milk solids", "sugar", "rose water", "cardamom"},
		Image:       "gulab_jamun.jpg",
	},
	{
		ID:          "11",
		Name:        "Mango Lassi",
		Type:        "Cold Drink",
		Category:    "Drinks",
		Price:       domain.USD("4.49"),
		Rating:      4.5,
		Description: "Thick yogurt shake blended with ripe mango pulp and a pinch of cardamom.",
		Ingredients: []string{"yogurt", "mango", "sugar", "cardamom"},
		Image:       "mango_lassi.jpg",
	},
	{
		ID:          "12",
		Name:        "Masala Chai",
		Type:        "Hot Drink",
		Category:    "Drinks",
		Price:       domain.USD("2.99"),
		Rating:      4.2,
		Description: "Strong black tea brewed with milk, ginger and crushed spices.",
		Ingredients: []string{"black tea", "milk", "ginger", "cardamom", "clove"},
		Image:       "masala_chai.jpg",
	},
}
