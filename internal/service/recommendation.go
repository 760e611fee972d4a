package service

import (
	"strings"
	"time"

	"github.com/guttosm/packing-service/internal/domain/model"
)

// EssentialRule asks for up to Count items drawn from any of Categories.
type EssentialRule struct {
	Categories []model.Category
	Count      int
}

// WeatherRule adds up to Count items per category when the aggregated forecast matches.
// A temperature rule matches when min >= MinTemp and max <= MaxTemp, for the bounds that are set.
// A condition rule matches when any forecast condition contains one of Conditions.
type WeatherRule struct {
	Name       string
	MinTemp    *float64
	MaxTemp    *float64
	Conditions []string
	Categories []model.Category
	Count      int
}

// Matches reports whether the rule applies to profile.
func (r WeatherRule) Matches(profile model.WeatherProfile) bool {
	if profile.Empty() {
		return false
	}
	if len(r.Conditions) > 0 {
		for _, keyword := range r.Conditions {
			keyword = strings.ToLower(keyword)
			for _, condition := range profile.Conditions {
				if strings.Contains(strings.ToLower(condition), keyword) {
					return true
				}
			}
		}
		return false
	}
	if r.MinTemp != nil && profile.MinTemp < *r.MinTemp {
		return false
	}
	if r.MaxTemp != nil && profile.MaxTemp > *r.MaxTemp {
		return false
	}
	return true
}

// RuleSet is the data driving the recommendation engine.
type RuleSet struct {
	Essentials map[model.TripLength][]EssentialRule
	Weather    []WeatherRule
}

func degrees(f float64) *float64 { return &f }

// DefaultRuleSet returns the built-in essentials and weather rules.
func DefaultRuleSet() RuleSet {
	var (
		shirts      = model.CategoryShirts
		pants       = model.CategoryPants
		shorts      = model.CategoryShorts
		hoodies     = model.CategoryHoodies
		jackets     = model.CategoryJackets
		shoes       = model.CategoryShoes
		accessories = model.CategoryAccessories
		underwear   = model.CategoryUnderwear
		socks       = model.CategorySocks
	)

	essentials := func(basics, tops, bottoms int) []EssentialRule {
		return []EssentialRule{
			{Categories: []model.Category{underwear, socks}, Count: basics},
			{Categories: []model.Category{shirts}, Count: tops},
			{Categories: []model.Category{pants, shorts}, Count: bottoms},
		}
	}

	return RuleSet{
		Essentials: map[model.TripLength][]EssentialRule{
			model.TripLengthShort:  essentials(4, 3, 2),
			model.TripLengthMedium: essentials(8, 6, 4),
			// long trips assume laundry along the way
			model.TripLengthLong: essentials(10, 8, 5),
		},
		Weather: []WeatherRule{
			{Name: "hotWeather", MinTemp: degrees(80),
				Categories: []model.Category{shirts, shorts, shoes, accessories}, Count: 2},
			{Name: "warmWeather", MinTemp: degrees(70), MaxTemp: degrees(80),
				Categories: []model.Category{shirts, shorts, pants, shoes, accessories}, Count: 1},
			{Name: "mildWeather", MinTemp: degrees(60), MaxTemp: degrees(70),
				Categories: []model.Category{shirts, pants, hoodies, shoes, accessories}, Count: 1},
			{Name: "coolWeather", MinTemp: degrees(50), MaxTemp: degrees(60),
				Categories: []model.Category{shirts, pants, hoodies, jackets, shoes, accessories}, Count: 1},
			{Name: "coldWeather", MaxTemp: degrees(50),
				Categories: []model.Category{shirts, pants, hoodies, jackets, shoes, accessories}, Count: 2},
			{Name: "rainyConditions", Conditions: []string{"rain", "rainy", "thunderstorm", "drizzle"},
				Categories: []model.Category{jackets, pants, shoes}, Count: 1},
			{Name: "snowyConditions", Conditions: []string{"snow", "snowy", "blizzard"},
				Categories: []model.Category{jackets, pants, shoes}, Count: 1},
		},
	}
}

// RecommendationEngine builds packing lists from the catalog and a forecast.
// It is a greedy, order-stable rule evaluator and holds no state besides its rules.
type RecommendationEngine struct {
	rules RuleSet
}

// EngineOption configures a RecommendationEngine.
type EngineOption func(*RecommendationEngine)

// WithRuleSet replaces the default rules.
func WithRuleSet(rules RuleSet) EngineOption {
	return func(e *RecommendationEngine) {
		e.rules = rules
	}
}

// NewRecommendationEngine creates an engine with DefaultRuleSet unless overridden.
func NewRecommendationEngine(opts ...EngineOption) *RecommendationEngine {
	e := &RecommendationEngine{rules: DefaultRuleSet()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluation is the detailed result of a recommendation run.
type Evaluation struct {
	TripLength   model.TripLength
	Days         int
	Weather      model.WeatherProfile
	MatchedRules []string
	Items        []model.ClothingItem
}

// Recommend returns the suggested items, essentials first and then weather
// additions in rule order. Each catalog item appears at most once.
func (e *RecommendationEngine) Recommend(catalog []model.ClothingItem, forecast []model.WeatherForecast, start, end time.Time) []model.ClothingItem {
	return e.Evaluate(catalog, forecast, start, end).Items
}

// Evaluate runs the essentials and weather passes and reports which rules fired.
func (e *RecommendationEngine) Evaluate(catalog []model.ClothingItem, forecast []model.WeatherForecast, start, end time.Time) Evaluation {
	days := model.TripLengthDays(start, end)
	length := model.ClassifyTripLength(days)
	profile := model.NewWeatherProfile(forecast)

	sel := newSelection(catalog)
	for _, rule := range e.rules.Essentials[length] {
		sel.take(rule.Count, rule.Categories...)
	}

	matched := []string{}
	for _, rule := range e.rules.Weather {
		if !rule.Matches(profile) {
			continue
		}
		matched = append(matched, rule.Name)
		for _, category := range rule.Categories {
			sel.take(rule.Count, category)
		}
	}

	return Evaluation{
		TripLength:   length,
		Days:         days,
		Weather:      profile,
		MatchedRules: matched,
		Items:        sel.items,
	}
}

type selection struct {
	catalog []model.ClothingItem
	picked  []bool
	items   []model.ClothingItem
}

func newSelection(catalog []model.ClothingItem) *selection {
	return &selection{
		catalog: catalog,
		picked:  make([]bool, len(catalog)),
		items:   []model.ClothingItem{},
	}
}

// take appends up to count unpicked catalog items whose category is in categories, in catalog order.
func (s *selection) take(count int, categories ...model.Category) {
	for i := 0; i < len(s.catalog) && count > 0; i++ {
		if s.picked[i] || !categoryIn(s.catalog[i].Category, categories) {
			continue
		}
		s.picked[i] = true
		s.items = append(s.items, s.catalog[i])
		count--
	}
}

func categoryIn(c model.Category, set []model.Category) bool {
	for _, candidate := range set {
		if c == candidate {
			return true
		}
	}
	return false
}
