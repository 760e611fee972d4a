package service

import "github.com/guttosm/packing-service/internal/domain/model"

func sample(name string, category model.Category, seasons []model.Season, conditions []string, color, description string) model.ClothingItem {
	return model.ClothingItem{
		Name:              name,
		Category:          category,
		Seasons:           seasons,
		WeatherConditions: conditions,
		Color:             color,
		Description:       description,
	}
}

// sampleCatalog is the starter wardrobe inserted by SeedSampleData.
var sampleCatalog = sampleWardrobe()

func sampleWardrobe() []model.ClothingItem {
	spring, summer, fall, winter, all := model.SeasonSpring, model.SeasonSummer, model.SeasonFall, model.SeasonWinter, model.SeasonAll

	return []model.ClothingItem{
		sample("Blue T-Shirt", model.CategoryShirts, []model.Season{spring, summer, fall}, []string{"sunny", "warm", "hot"}, "blue", "Comfortable cotton t-shirt"),
		sample("White Button-Down", model.CategoryShirts, []model.Season{spring, summer, fall, winter}, []string{"mild", "warm", "indoor"}, "white", "Formal button-down shirt"),
		sample("Striped Polo", model.CategoryShirts, []model.Season{spring, summer}, []string{"mild", "warm", "hot", "sunny"}, "multi", "Navy and white striped polo"),

		sample("Khaki Chinos", model.CategoryPants, []model.Season{spring, fall, winter}, []string{"mild", "cool", "cold"}, "beige", "Classic khaki pants"),
		sample("Blue Jeans", model.CategoryPants, []model.Season{all}, []string{"cool", "mild", "cold"}, "blue", "Versatile denim jeans"),
		sample("Black Dress Pants", model.CategoryPants, []model.Season{all}, []string{"mild", "cool", "indoor"}, "black", "Formal dress pants"),

		sample("Khaki Shorts", model.CategoryShorts, []model.Season{summer}, []string{"hot", "sunny", "warm"}, "beige", "Summer khaki shorts"),
		sample("Athletic Shorts", model.CategoryShorts, []model.Season{spring, summer}, []string{"warm", "hot", "humid"}, "gray", "Breathable exercise shorts"),

		sample("Gray Hoodie", model.CategoryHoodies, []model.Season{fall, winter}, []string{"cool", "cold", "windy"}, "gray", "Warm pullover hoodie"),
		sample("Black Zip-Up Hoodie", model.CategoryHoodies, []model.Season{spring, fall}, []string{"cool", "mild", "windy"}, "black", "Lightweight zip-up hoodie"),

		sample("Rain Jacket", model.CategoryJackets, []model.Season{spring, fall}, []string{"rainy", "wet", "windy"}, "yellow", "Waterproof rain jacket"),
		sample("Winter Parka", model.CategoryJackets, []model.Season{winter}, []string{"cold", "snow", "freezing"}, "black", "Heavy insulated winter coat"),
		sample("Light Windbreaker", model.CategoryJackets, []model.Season{spring, fall}, []string{"mild", "windy", "cool"}, "blue", "Lightweight windbreaker jacket"),

		sample("Walking Shoes", model.CategoryShoes, []model.Season{all}, []string{"mild", "dry", "sunny"}, "gray", "Comfortable walking shoes"),
		sample("Waterproof Boots", model.CategoryShoes, []model.Season{fall, winter}, []string{"rainy", "snow", "wet", "cold"}, "brown", "Insulated waterproof boots"),
		sample("Sandals", model.CategoryShoes, []model.Season{summer}, []string{"hot", "sunny", "beach"}, "brown", "Casual summer sandals"),

		sample("Winter Hat", model.CategoryAccessories, []model.Season{winter}, []string{"cold", "snow", "freezing"}, "black", "Warm knit beanie"),
		sample("Sunglasses", model.CategoryAccessories, []model.Season{spring, summer}, []string{"sunny", "bright"}, "black", "UV protective sunglasses"),
		sample("Umbrella", model.CategoryAccessories, []model.Season{all}, []string{"rainy", "wet"}, "black", "Compact travel umbrella"),

		sample("Boxers", model.CategoryUnderwear, []model.Season{all}, []string{"all"}, "various", "Everyday boxers"),
		sample("Briefs", model.CategoryUnderwear, []model.Season{all}, []string{"all"}, "various", "Everyday briefs"),

		sample("Crew Socks", model.CategorySocks, []model.Season{all}, []string{"all"}, "black", "Everyday crew socks"),
		sample("Wool Socks", model.CategorySocks, []model.Season{fall, winter}, []string{"cold", "snow", "freezing"}, "gray", "Warm wool socks"),
		sample("No-Show Socks", model.CategorySocks, []model.Season{spring, summer}, []string{"warm", "hot"}, "white", "Low-cut no-show socks"),
	}
}
