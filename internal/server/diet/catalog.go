package diet

// Recipe is one dish the planner can schedule. DietType classifies the
// dish for preference filtering ("vegetarian", "vegan", or anything else
// for dishes with meat).
type Recipe struct {
	Name     string
	Calories int
	Protein  int
	Carbs    int
	Fat      int
	Cuisine  string
	DietType string
}

// Catalog returns the built-in recipe pool. Dishes span diet types,
// cuisines, and the calorie bands the meal split asks for.
func Catalog() []Recipe {
	return []Recipe{
		{Name: "Masala Oats", Calories: 320, Protein: 11, Carbs: 52, Fat: 8, Cuisine: "indian", DietType: "vegetarian"},
		{Name: "Vegetable Poha", Calories: 290, Protein: 7, Carbs: 55, Fat: 6, Cuisine: "indian", DietType: "vegan"},
		{Name: "Paneer Bhurji", Calories: 410, Protein: 22, Carbs: 9, Fat: 31, Cuisine: "indian", DietType: "vegetarian"},
		{Name: "Chana Masala with Rice", Calories: 620, Protein: 21, Carbs: 98, Fat: 14, Cuisine: "indian", DietType: "vegan"},
		{Name: "Chicken Tikka with Naan", Calories: 740, Protein: 48, Carbs: 62, Fat: 30, Cuisine: "indian", DietType: "non-vegetarian"},
		{Name: "Dal Tadka with Roti", Calories: 520, Protein: 20, Carbs: 78, Fat: 13, Cuisine: "indian", DietType: "vegan"},
		{Name: "Palak Paneer with Rice", Calories: 640, Protein: 24, Carbs: 72, Fat: 27, Cuisine: "indian", DietType: "vegetarian"},
		{Name: "Fish Curry with Rice", Calories: 680, Protein: 38, Carbs: 74, Fat: 24, Cuisine: "indian", DietType: "non-vegetarian"},
		{Name: "Greek Yogurt with Berries", Calories: 240, Protein: 17, Carbs: 28, Fat: 6, Cuisine: "mediterranean", DietType: "vegetarian"},
		{Name: "Hummus and Falafel Bowl", Calories: 560, Protein: 19, Carbs: 64, Fat: 25, Cuisine: "mediterranean", DietType: "vegan"},
		{Name: "Grilled Chicken Souvlaki", Calories: 590, Protein: 46, Carbs: 41, Fat: 25, Cuisine: "mediterranean", DietType: "non-vegetarian"},
		{Name: "Tabbouleh with Grilled Halloumi", Calories: 480, Protein: 18, Carbs: 44, Fat: 26, Cuisine: "mediterranean", DietType: "vegetarian"},
		{Name: "Lentil Soup with Pita", Calories: 430, Protein: 19, Carbs: 66, Fat: 9, Cuisine: "mediterranean", DietType: "vegan"},
		{Name: "Avocado Toast with Egg", Calories: 380, Protein: 15, Carbs: 33, Fat: 22, Cuisine: "american", DietType: "vegetarian"},
		{Name: "Scrambled Eggs with Toast", Calories: 350, Protein: 20, Carbs: 28, Fat: 17, Cuisine: "american", DietType: "vegetarian"},
		{Name: "Turkey Club Sandwich", Calories: 550, Protein: 32, Carbs: 48, Fat: 25, Cuisine: "american", DietType: "non-vegetarian"},
		{Name: "Grilled Salmon with Quinoa", Calories: 630, Protein: 42, Carbs: 44, Fat: 30, Cuisine: "american", DietType: "non-vegetarian"},
		{Name: "Cobb Salad", Calories: 520, Protein: 31, Carbs: 16, Fat: 38, Cuisine: "american", DietType: "non-vegetarian"},
		{Name: "Peanut Butter Banana Smoothie", Calories: 420, Protein: 16, Carbs: 56, Fat: 16, Cuisine: "american", DietType: "vegan"},
		{Name: "Oatmeal with Almonds", Calories: 310, Protein: 10, Carbs: 48, Fat: 10, Cuisine: "american", DietType: "vegan"},
		{Name: "Margherita Pasta", Calories: 610, Protein: 19, Carbs: 92, Fat: 18, Cuisine: "italian", DietType: "vegetarian"},
		{Name: "Minestrone Soup", Calories: 340, Protein: 12, Carbs: 52, Fat: 9, Cuisine: "italian", DietType: "vegan"},
		{Name: "Chicken Parmigiana", Calories: 710, Protein: 45, Carbs: 52, Fat: 35, Cuisine: "italian", DietType: "non-vegetarian"},
		{Name: "Mushroom Risotto", Calories: 560, Protein: 14, Carbs: 82, Fat: 19, Cuisine: "italian", DietType: "vegetarian"},
		{Name: "Caprese Salad with Bread", Calories: 440, Protein: 17, Carbs: 35, Fat: 26, Cuisine: "italian", DietType: "vegetarian"},
		{Name: "Vegetable Stir-Fry with Tofu", Calories: 480, Protein: 24, Carbs: 46, Fat: 22, Cuisine: "chinese", DietType: "vegan"},
		{Name: "Kung Pao Chicken with Rice", Calories: 690, Protein: 38, Carbs: 72, Fat: 27, Cuisine: "chinese", DietType: "non-vegetarian"},
		{Name: "Vegetable Fried Rice", Calories: 530, Protein: 13, Carbs: 84, Fat: 15, Cuisine: "chinese", DietType: "vegetarian"},
		{Name: "Steamed Dumplings", Calories: 390, Protein: 17, Carbs: 54, Fat: 11, Cuisine: "chinese", DietType: "non-vegetarian"},
		{Name: "Congee with Scallions", Calories: 280, Protein: 7, Carbs: 58, Fat: 3, Cuisine: "chinese", DietType: "vegan"},
		{Name: "Black Bean Burrito", Calories: 580, Protein: 21, Carbs: 86, Fat: 17, Cuisine: "mexican", DietType: "vegan"},
		{Name: "Chicken Fajita Bowl", Calories: 640, Protein: 41, Carbs: 58, Fat: 26, Cuisine: "mexican", DietType: "non-vegetarian"},
		{Name: "Huevos Rancheros", Calories: 470, Protein: 22, Carbs: 42, Fat: 24, Cuisine: "mexican", DietType: "vegetarian"},
		{Name: "Veggie Quesadilla", Calories: 510, Protein: 19, Carbs: 51, Fat: 25, Cuisine: "mexican", DietType: "vegetarian"},
		{Name: "Fish Tacos", Calories: 540, Protein: 30, Carbs: 56, Fat: 21, Cuisine: "mexican", DietType: "non-vegetarian"},
		{Name: "Fruit and Nut Granola Bowl", Calories: 360, Protein: 9, Carbs: 54, Fat: 13, Cuisine: "american", DietType: "vegan"},
		{Name: "Tofu Buddha Bowl", Calories: 550, Protein: 26, Carbs: 62, Fat: 22, Cuisine: "american", DietType: "vegan"},
		{Name: "Beef Stir-Fry with Noodles", Calories: 720, Protein: 40, Carbs: 70, Fat: 30, Cuisine: "chinese", DietType: "non-vegetarian"},
		{Name: "Idli with Sambar", Calories: 330, Protein: 11, Carbs: 62, Fat: 4, Cuisine: "indian", DietType: "vegan"},
		{Name: "Shakshuka with Bread", Calories: 450, Protein: 21, Carbs: 38, Fat: 24, Cuisine: "mediterranean", DietType: "vegetarian"},
	}
}
