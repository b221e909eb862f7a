// Package catalog bundles the read-only species reference data. Entries are
// compiled into the binary; there is no external fetch and nothing here is
// user-owned. Adding a plant from the catalog copies the suggested
// frequencies into a fresh schedule.
package catalog

import (
	"sort"
	"strings"

	"github.com/verdantapp/verdant/internal/models"
)

// All returns every catalog entry in display order.
func All() []models.Species {
	out := make([]models.Species, len(species))
	copy(out, species)
	return out
}

// ByID looks up a species by its catalog ID.
func ByID(id string) (models.Species, bool) {
	for _, sp := range species {
		if sp.ID == id {
			return sp, true
		}
	}
	return models.Species{}, false
}

// Search returns entries whose common or scientific name contains the query,
// case-insensitively. An empty query returns the full catalog.
func Search(query string) []models.Species {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return All()
	}

	var out []models.Species
	for _, sp := range species {
		if strings.Contains(strings.ToLower(sp.CommonName), query) ||
			strings.Contains(strings.ToLower(sp.ScientificName), query) {
			out = append(out, sp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CommonName < out[j].CommonName })
	return out
}

var species = []models.Species{
	{
		ID:             "monstera-deliciosa",
		CommonName:     "Monstera Deliciosa",
		ScientificName: "Monstera deliciosa",
		ImageURL:       "https://images.unsplash.com/photo-1614594975525-e45190c55d0b?auto=format&fit=crop&q=80&w=800",
		Description:    "Famous for its natural leaf holes, this tropical beauty is a favorite for its dramatic foliage and easy-going nature.",
		Care: models.CareRequirements{
			Water:       "Water every 1-2 weeks, allowing soil to dry out between waterings.",
			Light:       "Bright to medium indirect light. Avoid direct sun.",
			Temperature: "65°F - 85°F (18°C - 30°C)",
			Humidity:    "Normal to high humidity preferred.",
		},
		CommonIssues:                []string{"Yellowing leaves (overwatering)", "Brown tips (low humidity)", "Leggy growth (low light)"},
		SuggestedWaterFrequency:     10,
		SuggestedMistFrequency:      3,
		SuggestedFertilizeFrequency: 30,
	},
	{
		ID:             "snake-plant",
		CommonName:     "Snake Plant",
		ScientificName: "Sansevieria trifasciata",
		ImageURL:       "https://images.unsplash.com/photo-1593482886875-6647f38fa83f?auto=format&fit=crop&q=80&w=800",
		Description:    "An architectural plant with upright leaves. Extremely hardy and excellent at purifying air.",
		Care: models.CareRequirements{
			Water:       "Water every 2-3 weeks. Allow soil to dry completely.",
			Light:       "Low to bright indirect light. Can tolerate some direct sun.",
			Temperature: "55°F - 85°F (13°C - 30°C)",
			Humidity:    "Low to normal humidity.",
		},
		CommonIssues:                []string{"Root rot (overwatering)", "Mushy leaves (cold damage)"},
		SuggestedWaterFrequency:     21,
		SuggestedMistFrequency:      0,
		SuggestedFertilizeFrequency: 60,
	},
	{
		ID:             "fiddle-leaf-fig",
		CommonName:     "Fiddle Leaf Fig",
		ScientificName: "Ficus lyrata",
		ImageURL:       "https://images.unsplash.com/photo-1597055181300-e30ba1546d26?auto=format&fit=crop&q=80&w=800",
		Description:    "Known for its large, violin-shaped leaves. It can be finicky but makes a stunning statement piece.",
		Care: models.CareRequirements{
			Water:       "Water once a week. Keep soil consistently moist but not soaking.",
			Light:       "Bright, filtered light. Rotating the plant helps even growth.",
			Temperature: "60°F - 75°F (15°C - 24°C)",
			Humidity:    "High humidity is essential.",
		},
		CommonIssues:                []string{"Dropping leaves (drafts/dryness)", "Brown spots (root rot)"},
		SuggestedWaterFrequency:     7,
		SuggestedMistFrequency:      2,
		SuggestedFertilizeFrequency: 30,
	},
	{
		ID:             "pothos",
		CommonName:     "Golden Pothos",
		ScientificName: "Epipremnum aureum",
		ImageURL:       "https://images.unsplash.com/photo-1596722889246-81765c71d24c?auto=format&fit=crop&q=80&w=800",
		Description:    "The ultimate beginner plant. Fast-growing trailing vines that tolerate neglect and low light.",
		Care: models.CareRequirements{
			Water:       "Water every 1-2 weeks. Tolerates erratic watering.",
			Light:       "Low to bright indirect light.",
			Temperature: "60°F - 85°F (15°C - 30°C)",
			Humidity:    "Any humidity level.",
		},
		CommonIssues:                []string{"Yellow leaves (overwatering)", "Loss of variegation (low light)"},
		SuggestedWaterFrequency:     10,
		SuggestedMistFrequency:      7,
		SuggestedFertilizeFrequency: 30,
	},
	{
		ID:             "zz-plant",
		CommonName:     "ZZ Plant",
		ScientificName: "Zamioculcas zamiifolia",
		ImageURL:       "https://images.unsplash.com/photo-1632207691143-643e2a9a9361?auto=format&fit=crop&q=80&w=800",
		Description:    "With waxy, shiny leaves, the ZZ plant is drought tolerant and thrives in low light conditions.",
		Care: models.CareRequirements{
			Water:       "Water every 2-3 weeks. Allow soil to dry out.",
			Light:       "Low to bright indirect light.",
			Temperature: "60°F - 75°F (15°C - 24°C)",
			Humidity:    "Low to average humidity.",
		},
		CommonIssues:                []string{"Yellowing lower leaves (overwatering)", "Wrinkled stems (severe underwatering)"},
		SuggestedWaterFrequency:     21,
		SuggestedMistFrequency:      0,
		SuggestedFertilizeFrequency: 90,
	},
	{
		ID:             "peace-lily",
		CommonName:     "Peace Lily",
		ScientificName: "Spathiphyllum",
		ImageURL:       "https://images.unsplash.com/photo-1593691509543-c55ce32e0112?auto=format&fit=crop&q=80&w=800",
		Description:    "Elegant white flowers and dark green leaves. It dramatically droops when thirsty, acting as its own sensor.",
		Care: models.CareRequirements{
			Water:       "Keep soil moist. Water weekly or when leaves droop.",
			Light:       "Low to medium indirect light.",
			Temperature: "65°F - 80°F (18°C - 26°C)",
			Humidity:    "High humidity preferred.",
		},
		CommonIssues:                []string{"Brown tips (tap water chemicals)", "Green flowers (low light)"},
		SuggestedWaterFrequency:     7,
		SuggestedMistFrequency:      2,
		SuggestedFertilizeFrequency: 45,
	},
	{
		ID:             "spider-plant",
		CommonName:     "Spider Plant",
		ScientificName: "Chlorophytum comosum",
		ImageURL:       "https://images.unsplash.com/photo-1572688484279-a27d0354ea47?auto=format&fit=crop&q=80&w=800",
		Description:    "Produces \"babies\" or spiderettes that dangle from the mother plant. Very easy to propagate.",
		Care: models.CareRequirements{
			Water:       "Water weekly. Keep soil evenly moist.",
			Light:       "Bright, indirect light.",
			Temperature: "55°F - 80°F (13°C - 27°C)",
			Humidity:    "Average humidity.",
		},
		CommonIssues:                []string{"Brown tips (fluoride in water)", "Fading stripes (low light)"},
		SuggestedWaterFrequency:     7,
		SuggestedMistFrequency:      3,
		SuggestedFertilizeFrequency: 30,
	},
	{
		ID:             "aloe-vera",
		CommonName:     "Aloe Vera",
		ScientificName: "Aloe barbadensis miller",
		ImageURL:       "https://images.unsplash.com/photo-1554631221-f9603e6808be?auto=format&fit=crop&q=80&w=800",
		Description:    "A succulent known for its healing gel. Requires very little water and loves the sun.",
		Care: models.CareRequirements{
			Water:       "Water deeply every 3 weeks. Soil must dry completely.",
			Light:       "Bright, direct sunlight.",
			Temperature: "55°F - 80°F (13°C - 27°C)",
			Humidity:    "Low humidity.",
		},
		CommonIssues:                []string{"Mushy stems (rot)", "Flat leaves (insufficient light)"},
		SuggestedWaterFrequency:     21,
		SuggestedMistFrequency:      0,
		SuggestedFertilizeFrequency: 60,
	},
	{
		ID:             "rubber-plant",
		CommonName:     "Rubber Plant",
		ScientificName: "Ficus elastica",
		ImageURL:       "https://images.unsplash.com/photo-1598880940371-c756e026eff3?auto=format&fit=crop&q=80&w=800",
		Description:    "Has thick, glossy, rubbery leaves. Can grow into a large indoor tree.",
		Care: models.CareRequirements{
			Water:       "Water every 1-2 weeks. Keep soil moist in summer.",
			Light:       "Bright, indirect light.",
			Temperature: "60°F - 75°F (15°C - 24°C)",
			Humidity:    "Normal to high humidity.",
		},
		CommonIssues:                []string{"Dropping lower leaves (low light)", "Dusty leaves (needs wiping)"},
		SuggestedWaterFrequency:     10,
		SuggestedMistFrequency:      3,
		SuggestedFertilizeFrequency: 30,
	},
	{
		ID:             "bird-of-paradise",
		CommonName:     "Bird of Paradise",
		ScientificName: "Strelitzia reginae",
		ImageURL:       "https://images.unsplash.com/photo-1550505417-0c0e7b4742a1?auto=format&fit=crop&q=80&w=800",
		Description:    "Known for its large, banana-like leaves and exotic flowers resembling birds. Needs plenty of space and light.",
		Care: models.CareRequirements{
			Water:       "Water every 1-2 weeks. Keep soil moist but not soggy.",
			Light:       "Bright, direct to indirect light.",
			Temperature: "65°F - 85°F (18°C - 30°C)",
			Humidity:    "High humidity preferred.",
		},
		CommonIssues:                []string{"Splitting leaves (natural)", "Curling leaves (underwatering)"},
		SuggestedWaterFrequency:     10,
		SuggestedMistFrequency:      3,
		SuggestedFertilizeFrequency: 14,
	},
	{
		ID:             "pilea-peperomioides",
		CommonName:     "Chinese Money Plant",
		ScientificName: "Pilea peperomioides",
		ImageURL:       "https://images.unsplash.com/photo-1628639692461-82782e4f0c4d?auto=format&fit=crop&q=80&w=800",
		Description:    "Famous for its coin-shaped leaves. Fast grower that produces many \"pups\" you can share with friends.",
		Care: models.CareRequirements{
			Water:       "Water weekly. Allow soil to dry out slightly.",
			Light:       "Bright, indirect light. Rotate frequently.",
			Temperature: "60°F - 75°F (15°C - 24°C)",
			Humidity:    "Average humidity.",
		},
		CommonIssues:                []string{"Curling leaves (heat stress)", "Drooping stems (needs water)"},
		SuggestedWaterFrequency:     7,
		SuggestedMistFrequency:      0,
		SuggestedFertilizeFrequency: 30,
	},
	{
		ID:             "calathea-orbifolia",
		CommonName:     "Calathea Orbifolia",
		ScientificName: "Goeppertia orbifolia",
		ImageURL:       "https://images.unsplash.com/photo-1629813580436-1e5b53051412?auto=format&fit=crop&q=80&w=800",
		Description:    "Stunning oversized leaves with silver stripes. Known as a \"prayer plant\" as leaves fold up at night.",
		Care: models.CareRequirements{
			Water:       "Water every 1-2 weeks. Keep consistently moist with distilled water.",
			Light:       "Medium to low indirect light.",
			Temperature: "65°F - 80°F (18°C - 27°C)",
			Humidity:    "Very high humidity required.",
		},
		CommonIssues:                []string{"Brown edges (low humidity/tap water)", "Fading pattern (too much light)"},
		SuggestedWaterFrequency:     7,
		SuggestedMistFrequency:      1,
		SuggestedFertilizeFrequency: 30,
	},
	{
		ID:             "jade-plant",
		CommonName:     "Jade Plant",
		ScientificName: "Crassula ovata",
		ImageURL:       "https://images.unsplash.com/photo-1596516398863-125039a0669b?auto=format&fit=crop&q=80&w=800",
		Description:    "A popular succulent symbolizing good luck. Forms a miniature tree structure with thick, woody stems.",
		Care: models.CareRequirements{
			Water:       "Water every 2-3 weeks. Allow soil to dry completely.",
			Light:       "Bright, direct sunlight for at least 4 hours.",
			Temperature: "65°F - 75°F (18°C - 24°C)",
			Humidity:    "Low humidity.",
		},
		CommonIssues:                []string{"Dropping leaves (low light)", "Mushy stems (overwatering)"},
		SuggestedWaterFrequency:     21,
		SuggestedMistFrequency:      0,
		SuggestedFertilizeFrequency: 90,
	},
	{
		ID:             "string-of-pearls",
		CommonName:     "String of Pearls",
		ScientificName: "Senecio rowleyanus",
		ImageURL:       "https://images.unsplash.com/photo-1616616212579-24b42398555c?auto=format&fit=crop&q=80&w=800",
		Description:    "A cascading succulent with pea-shaped leaves. Perfect for hanging baskets in bright spots.",
		Care: models.CareRequirements{
			Water:       "Water every 2-3 weeks. Sensitive to overwatering.",
			Light:       "Bright, indirect light to some direct sun.",
			Temperature: "70°F - 80°F (21°C - 27°C)",
			Humidity:    "Low humidity.",
		},
		CommonIssues:                []string{"Shriveling pearls (underwatering)", "Mushy pearls (overwatering)"},
		SuggestedWaterFrequency:     14,
		SuggestedMistFrequency:      0,
		SuggestedFertilizeFrequency: 60,
	},
	{
		ID:             "boston-fern",
		CommonName:     "Boston Fern",
		ScientificName: "Nephrolepis exaltata",
		ImageURL:       "https://images.unsplash.com/photo-1598509831416-2c701412351d?auto=format&fit=crop&q=80&w=800",
		Description:    "Classic fern with arching fronds. Acts as a natural humidifier but craves moisture.",
		Care: models.CareRequirements{
			Water:       "Water twice a week. Keep soil consistently damp.",
			Light:       "Bright, indirect light to partial shade.",
			Temperature: "60°F - 75°F (15°C - 24°C)",
			Humidity:    "High humidity is crucial.",
		},
		CommonIssues:                []string{"Brown crisping fronds (low humidity)", "Pale leaves (needs fertilizer)"},
		SuggestedWaterFrequency:     4,
		SuggestedMistFrequency:      1,
		SuggestedFertilizeFrequency: 30,
	},
	{
		ID:             "english-ivy",
		CommonName:     "English Ivy",
		ScientificName: "Hedera helix",
		ImageURL:       "https://images.unsplash.com/photo-1620023023075-846312542478?auto=format&fit=crop&q=80&w=800",
		Description:    "A vigorous climber with evergreen leaves. Can be trained to climb supports or trail from baskets.",
		Care: models.CareRequirements{
			Water:       "Water weekly. Let top inch of soil dry out.",
			Light:       "Medium to bright light.",
			Temperature: "50°F - 70°F (10°C - 21°C)",
			Humidity:    "Medium humidity.",
		},
		CommonIssues:                []string{"Spider mites (dry air)", "Slow growth (low light)"},
		SuggestedWaterFrequency:     7,
		SuggestedMistFrequency:      3,
		SuggestedFertilizeFrequency: 30,
	},
	{
		ID:             "african-violet",
		CommonName:     "African Violet",
		ScientificName: "Saintpaulia",
		ImageURL:       "https://images.unsplash.com/photo-1577909033324-44b4da79057b?auto=format&fit=crop&q=80&w=800",
		Description:    "Compact flowering plant that blooms year-round with fuzzy leaves. Bottom watering is best.",
		Care: models.CareRequirements{
			Water:       "Water weekly from bottom. Keep soil moist.",
			Light:       "Bright, indirect light.",
			Temperature: "65°F - 80°F (18°C - 27°C)",
			Humidity:    "Moderate humidity.",
		},
		CommonIssues:                []string{"Spots on leaves (cold water)", "No flowers (low light)"},
		SuggestedWaterFrequency:     7,
		SuggestedMistFrequency:      0,
		SuggestedFertilizeFrequency: 14,
	},
	{
		ID:             "alocasia-polly",
		CommonName:     "Alocasia Polly",
		ScientificName: "Alocasia amazonica",
		ImageURL:       "https://images.unsplash.com/photo-1600854291845-d4420371307b?auto=format&fit=crop&q=80&w=800",
		Description:    "Striking arrow-shaped leaves with bold white veins. A statement plant that loves warmth.",
		Care: models.CareRequirements{
			Water:       "Water weekly. Keep soil moist but allow top to dry slightly.",
			Light:       "Bright, indirect light.",
			Temperature: "65°F - 80°F (18°C - 27°C)",
			Humidity:    "High humidity.",
		},
		CommonIssues:                []string{"Dropping leaves (cold/dry)", "Spider mites (dry air)"},
		SuggestedWaterFrequency:     7,
		SuggestedMistFrequency:      2,
		SuggestedFertilizeFrequency: 14,
	},
	{
		ID:             "bamboo-palm",
		CommonName:     "Bamboo Palm",
		ScientificName: "Chamaedorea seifrizii",
		ImageURL:       "https://images.unsplash.com/photo-1615591322049-556947230d40?auto=format&fit=crop&q=80&w=800",
		Description:    "Adds a tropical touch with feathery fronds. Excellent air purifier and pet-safe.",
		Care: models.CareRequirements{
			Water:       "Water when top third of soil is dry.",
			Light:       "Bright, indirect to low light.",
			Temperature: "65°F - 80°F (18°C - 27°C)",
			Humidity:    "Moderate to high.",
		},
		CommonIssues:                []string{"Brown tips (fluoride/dryness)", "Yellow fronds (overwatering)"},
		SuggestedWaterFrequency:     10,
		SuggestedMistFrequency:      3,
		SuggestedFertilizeFrequency: 30,
	},
	{
		ID:             "majesty-palm",
		CommonName:     "Majesty Palm",
		ScientificName: "Ravenea rivularis",
		ImageURL:       "https://images.unsplash.com/photo-1596722889246-81765c71d24c?auto=format&fit=crop&q=80&w=800",
		Description:    "A large, elegant palm with long, arching green fronds. Thrives near water in nature.",
		Care: models.CareRequirements{
			Water:       "Water frequently. Never let soil dry out completely.",
			Light:       "Bright, indirect light.",
			Temperature: "65°F - 80°F (18°C - 27°C)",
			Humidity:    "High humidity is a must.",
		},
		CommonIssues:                []string{"Spider mites (dry air)", "Brown fronds (underwatering)"},
		SuggestedWaterFrequency:     5,
		SuggestedMistFrequency:      1,
		SuggestedFertilizeFrequency: 30,
	},
}
