package data

import "morsel/internal/model"

// Authored journal entries. New records go at the end of the matching slice;
// IDs follow the lowercase country code plus a running number for dishes and
// r-numbers for restaurants.

var seedDishes = []model.Dish{
	{
		ID:          "us-1",
		Name:        "Cajun Pasta",
		Country:     "US",
		CountryName: "United States",
		DateCooked:  "2024-03-15",
		Rating:      4.8,
		Difficulty:  model.DifficultyMedium,
		RecipeDetails: "A spicy pasta dish with chorizo (substituted for pineapple sausage), " +
			"shrimp, and a creamy sauce. The perfect blend of Southern and Italian flavors " +
			"with a kick of heat. The dish combines rigatoni pasta with sautéed chorizo, " +
			"shrimp, and a rich cream sauce seasoned with Cajun spices.",
		Ingredients: []string{
			"1 lb rigatoni pasta",
			"2 pineapple sausages (substituted with chorizo)",
			"3 cloves garlic, minced",
			"3 sun dried tomatoes, chopped",
			"5 cherry tomatoes, chopped",
			"10 tiger shrimp (seasoned with salt & pepper)",
			"2 tbsp butter",
			"1 tbsp tomato paste",
			"2 cups heavy cream",
			"2 tsp salt",
			"2 tsp pepper",
			"2 tsp Cajun seasoning",
			"2 tsp lemon pepper",
			"2 tsp smoked paprika",
			"2 tsp onion powder",
			"2 tsp garlic powder",
			"1/4 cup parmesan cheese",
			"Shredded cheese (optional, for extra cheesiness)",
		},
		MainImage: "/images/dishes/cajun-pasta/CajunPasta.jpg",
		Photos: []string{
			"/images/dishes/cajun-pasta/CajunPasta.jpg",
			"/images/dishes/cajun-pasta/prep-work-sausage.heic",
			"/images/dishes/cajun-pasta/prep-work-tomato.heic",
			"/images/dishes/cajun-pasta/sauce.heic",
		},
		PrepTime:  "15 minutes",
		CookTime:  "20 minutes",
		TotalTime: "35 minutes",
		Servings:  4,
		Notes: "We substituted chorizo for the pineapple sausage in this recipe. Adjust the " +
			"Cajun seasoning and cayenne to control the heat level. For a lighter version, " +
			"use half-and-half instead of heavy cream.",
		Tags: []string{"American", "Pasta", "Spicy", "Seafood", "Chorizo"},
	},
	{
		ID:          "it-1",
		Name:        "Garlic Bread",
		Country:     "IT",
		CountryName: "Italy",
		DateCooked:  "2024-04-02",
		Rating:      4.5,
		Difficulty:  model.DifficultyEasy,
		RecipeDetails: "Crusty Italian bread slathered with garlic-infused butter and herbs, " +
			"then toasted to golden perfection. A simple yet irresistible side that pairs " +
			"perfectly with pasta dishes.",
		Ingredients: []string{
			"Italian bread",
			"Butter",
			"Fresh garlic",
			"Parsley",
			"Parmesan cheese",
			"Salt",
			"Oregano",
			"Olive oil",
			"Black pepper",
		},
		MainImage: "/images/dishes/garlic-bread/GarlicBread.jpg",
		Photos: []string{
			"/images/dishes/garlic-bread/GarlicBread.jpg",
			"/images/dishes/garlic-bread/prep-work-add-cheese.heic",
			"/images/dishes/garlic-bread/prep-work-baste.heic",
			"/images/dishes/garlic-bread/prep-work-stuffing.heic",
		},
		PrepTime:  "10 minutes",
		CookTime:  "12 minutes",
		TotalTime: "22 minutes",
		Servings:  6,
		Tags:      []string{"Italian", "Bread", "Side Dish", "Vegetarian"},
	},
	{
		ID:          "jp-1",
		Name:        "Chicken Katsu Curry",
		Country:     "JP",
		CountryName: "Japan",
		DateCooked:  "2024-04-21",
		Rating:      4.9,
		Difficulty:  model.DifficultyMedium,
		RecipeDetails: "Panko-crusted chicken cutlet over sticky rice, drowned in a thick " +
			"Japanese curry made from scratch with a roux of butter, flour, and curry " +
			"powder. The cutlet stays crisp under the sauce if you pour at the table.",
		Ingredients: []string{
			"2 chicken breasts, butterflied",
			"1 cup panko breadcrumbs",
			"2 eggs, beaten",
			"1/2 cup flour",
			"1 onion, diced",
			"2 carrots, chopped",
			"2 tbsp butter",
			"2 tbsp curry powder",
			"1 tbsp garam masala",
			"3 cups chicken stock",
			"1 tbsp soy sauce",
			"1 tsp honey",
			"Cooked short-grain rice",
		},
		MainImage: "/images/dishes/katsu-curry/KatsuCurry.jpg",
		Photos: []string{
			"/images/dishes/katsu-curry/KatsuCurry.jpg",
			"/images/dishes/katsu-curry/roux.heic",
			"/images/dishes/katsu-curry/frying.heic",
		},
		PrepTime:  "25 minutes",
		CookTime:  "35 minutes",
		TotalTime: "1 hour",
		Servings:  2,
		Notes:     "Rest the cutlet on a rack, not paper towels, or the crust steams soft.",
		Tags:      []string{"Japanese", "Curry", "Fried", "Comfort Food"},
		SourceLinks: []model.SourceLink{
			{URL: "https://www.justonecookbook.com/chicken-katsu-curry/", Type: "recipe", Description: "Base recipe we followed"},
		},
	},
	{
		ID:          "fr-1",
		Name:        "Ratatouille",
		Country:     "FR",
		CountryName: "France",
		DateCooked:  "2024-05-10",
		Rating:      4.2,
		Difficulty:  model.DifficultyHard,
		RecipeDetails: "The confit byaldi version: thin-sliced zucchini, eggplant, and tomato " +
			"shingled over a piperade base and baked low until silky. Takes an afternoon " +
			"and a mandoline, but the presentation is worth it.",
		Ingredients: []string{
			"2 zucchini",
			"1 eggplant",
			"4 roma tomatoes",
			"1 yellow squash",
			"2 bell peppers",
			"1 onion",
			"4 cloves garlic",
			"Fresh thyme",
			"Olive oil",
			"Sherry vinegar",
		},
		MainImage: "/images/dishes/ratatouille/Ratatouille.jpg",
		Photos: []string{
			"/images/dishes/ratatouille/Ratatouille.jpg",
			"/images/dishes/ratatouille/shingling.heic",
		},
		PrepTime:  "45 minutes",
		CookTime:  "2 hours",
		TotalTime: "2 hours 45 minutes",
		Servings:  4,
		Tags:      []string{"French", "Vegetarian", "Vegetables", "Project Cook"},
		VideoURL:  "https://www.youtube.com/watch?v=RQlp-p9D9QE",
	},
	{
		ID:          "in-1",
		Name:        "Butter Chicken",
		Country:     "IN",
		CountryName: "India",
		DateCooked:  "2024-06-01",
		Rating:      4.7,
		Difficulty:  model.DifficultyMedium,
		RecipeDetails: "Tandoori-marinated chicken thighs finished in a tomato-cream gravy " +
			"heavy on kasuri methi. Marinated overnight and charred under the broiler " +
			"before going into the sauce.",
		Ingredients: []string{
			"2 lb chicken thighs",
			"1 cup yogurt",
			"2 tbsp tandoori masala",
			"1 can crushed tomatoes",
			"1/2 cup heavy cream",
			"4 tbsp butter",
			"1 tbsp kasuri methi",
			"Ginger-garlic paste",
			"Garam masala",
		},
		MainImage: "/images/dishes/butter-chicken/ButterChicken.jpg",
		Photos: []string{
			"/images/dishes/butter-chicken/ButterChicken.jpg",
			"/images/dishes/butter-chicken/marinade.heic",
			"/images/dishes/butter-chicken/gravy.heic",
		},
		PrepTime:  "20 minutes (plus overnight marinade)",
		CookTime:  "40 minutes",
		TotalTime: "1 hour",
		Servings:  4,
		Notes:     "Next time double the kasuri methi and serve with garlic naan instead of rice.",
		Tags:      []string{"Indian", "Curry", "Chicken", "Spicy"},
	},
	{
		ID:          "mx-1",
		Name:        "Tacos al Pastor",
		Country:     "MX",
		CountryName: "Mexico",
		DateCooked:  "2024-06-22",
		Rating:      4.6,
		Difficulty:  model.DifficultyMedium,
		RecipeDetails: "Achiote-and-guajillo marinated pork shoulder, stacked and roasted on a " +
			"vertical skewer improvised from a loaf pan, shaved onto corn tortillas with " +
			"charred pineapple, cilantro, and onion.",
		Ingredients: []string{
			"3 lb pork shoulder, thin sliced",
			"4 guajillo chiles",
			"2 tbsp achiote paste",
			"1/2 pineapple",
			"Corn tortillas",
			"White onion",
			"Cilantro",
			"Lime",
		},
		MainImage: "/images/dishes/al-pastor/AlPastor.jpg",
		Photos: []string{
			"/images/dishes/al-pastor/AlPastor.jpg",
			"/images/dishes/al-pastor/trompo.heic",
		},
		PrepTime:  "30 minutes (plus 4 hour marinade)",
		CookTime:  "1 hour 30 minutes",
		TotalTime: "2 hours",
		Servings:  6,
		Tags:      []string{"Mexican", "Pork", "Tacos", "Grilled"},
	},
	{
		ID:          "th-1",
		Name:        "Pad Thai",
		Country:     "TH",
		CountryName: "Thailand",
		DateCooked:  "2024-07-08",
		Rating:      4.0,
		Difficulty:  model.DifficultyEasy,
		RecipeDetails: "Rice noodles tossed in a tamarind-fish sauce-palm sugar sauce with " +
			"shrimp, egg, and tofu. Cooked in two batches so the wok stays screaming hot.",
		Ingredients: []string{
			"8 oz flat rice noodles",
			"1/2 lb shrimp",
			"4 oz firm tofu",
			"2 eggs",
			"3 tbsp tamarind paste",
			"2 tbsp fish sauce",
			"2 tbsp palm sugar",
			"Bean sprouts",
			"Garlic chives",
			"Crushed peanuts",
		},
		MainImage: "/images/dishes/pad-thai/PadThai.jpg",
		Photos: []string{
			"/images/dishes/pad-thai/PadThai.jpg",
		},
		PrepTime:  "15 minutes",
		CookTime:  "10 minutes",
		TotalTime: "25 minutes",
		Servings:  2,
		Notes:     "Sauce was a touch too sweet; pull back the palm sugar to 1.5 tbsp.",
		Tags:      []string{"Thai", "Noodles", "Seafood", "Quick"},
	},
}

var seedRestaurants = []model.Restaurant{
	{
		ID:   "r1",
		Name: "Le Petit Bistro",
		Location: model.Location{
			Lat:           48.8566,
			Lng:           2.3522,
			Address:       "123 Rue de Paris, Paris, France",
			City:          "Paris",
			Country:       "France",
			GoogleMapsURL: "https://goo.gl/maps/MQvmS3uQQx4EbHip8",
		},
		Rating:    4.5,
		VisitDate: "2024-02-15",
		Review: "Amazing French cuisine in the heart of Paris. The beef bourguignon was " +
			"perfectly cooked and the chocolate mousse was divine. The service was attentive " +
			"and the atmosphere was cozy and authentic.",
		Cuisine:    "French",
		PriceRange: "€€€",
		Photos: []string{
			"https://images.unsplash.com/photo-1600891964599-f61ba0e24092?auto=format&fit=crop&w=800&q=60",
			"https://images.unsplash.com/photo-1414235077428-338989a2e8c0?auto=format&fit=crop&w=800&q=60",
		},
		GooglePlaceID: "ChIJR3122p9v5kcRRIUyZYQRmX8",
		GoogleRating:  4.7,
		PhoneNumber:   "+33 1 23 45 67 89",
		Website:       "https://example.com/le-petit-bistro",
		OpeningHours: []string{
			"Monday: 12:00 PM - 10:00 PM",
			"Tuesday: 12:00 PM - 10:00 PM",
			"Wednesday: 12:00 PM - 10:00 PM",
			"Thursday: 12:00 PM - 10:00 PM",
			"Friday: 12:00 PM - 11:00 PM",
			"Saturday: 12:00 PM - 11:00 PM",
			"Sunday: Closed",
		},
		Tags: []string{"French", "Paris", "Fine Dining", "Romantic"},
	},
	{
		ID:   "r2",
		Name: "Sushi Iwa",
		Location: model.Location{
			Lat:     35.6717,
			Lng:     139.7647,
			Address: "8-4-5 Ginza, Chuo City, Tokyo, Japan",
			City:    "Tokyo",
			Country: "Japan",
		},
		Rating:    4.9,
		VisitDate: "2024-04-19",
		Review: "Eight-seat counter, no menu, just whatever came off the boat that morning. " +
			"The aji and the tamago were the standouts. Worth every yen and the three-week " +
			"wait for a reservation.",
		Cuisine:    "Japanese",
		PriceRange: "¥¥¥¥",
		Photos: []string{
			"/images/restaurants/sushi-iwa/counter.jpg",
			"/images/restaurants/sushi-iwa/nigiri.jpg",
		},
		GooglePlaceID: "ChIJr0TcshGLGGARjT7nXgCyaTA",
		PhoneNumber:   "+81 3 3555 1234",
		Tags:          []string{"Japanese", "Sushi", "Omakase", "Tokyo"},
	},
	{
		ID:   "r3",
		Name: "El Huequito",
		Location: model.Location{
			Lat:     19.4326,
			Lng:     -99.1380,
			Address: "Ayuntamiento 21, Centro Histórico, Mexico City, Mexico",
			City:    "Mexico City",
			Country: "Mexico",
		},
		Rating:    4.3,
		VisitDate: "2024-06-20",
		Review: "The al pastor that sent us home determined to build a trompo in the back " +
			"yard. Standing room only, tacos arrive faster than you can eat them.",
		Cuisine:    "Mexican",
		PriceRange: "$",
		Photos: []string{
			"/images/restaurants/el-huequito/pastor.jpg",
		},
		Tags: []string{"Mexican", "Tacos", "Street Food"},
	},
	{
		ID:   "r4",
		Name: "Lucali",
		Location: model.Location{
			Lat:     40.6782,
			Lng:     -74.0006,
			Address: "575 Henry St, Brooklyn, NY 11231",
			City:    "New York",
			Country: "United States",
		},
		Rating:    4.4,
		VisitDate: "2024-07-27",
		Review: "Thin-crust pies made in candlelight by a guy who looks like he was born " +
			"holding a rolling pin. BYOB, cash only, two-hour line. Get the calzone too.",
		Cuisine:    "Pizza",
		PriceRange: "$$",
		Photos: []string{
			"/images/restaurants/lucali/pie.jpg",
			"/images/restaurants/lucali/line.jpg",
		},
		Website: "https://www.lucali.com",
		Tags:    []string{"Pizza", "Brooklyn", "BYOB"},
	},
}
