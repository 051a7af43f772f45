package destinations

import "github.com/safarnama/safarnama/internal/app/models"

// Catalog returns the built-in destination list. Callers get a fresh
// slice; the entries themselves are treated as read-only.
func Catalog() []models.Destination {
	out := make([]models.Destination, len(catalog))
	copy(out, catalog)
	return out
}

var catalog = []models.Destination{
	{
		ID: "jaipur", Name: "Jaipur", State: "Rajasthan", Region: "north",
		Categories: []string{"heritage", "culture"},
		Latitude:   26.9124, Longitude: 75.7873,
		BestSeason:  "October to March",
		Description: "The Pink City, gateway to Rajasthan's forts and palaces.",
		Highlights:  []string{"Amber Fort", "Hawa Mahal", "City Palace", "Johari Bazaar"},
	},
	{
		ID: "goa", Name: "Goa", State: "Goa", Region: "west",
		Categories: []string{"beach", "nightlife"},
		Latitude:   15.2993, Longitude: 74.124,
		BestSeason:  "November to February",
		Description: "Beaches, Portuguese-era churches and a laid-back coastal scene.",
		Highlights:  []string{"Palolem Beach", "Fort Aguada", "Basilica of Bom Jesus", "Anjuna flea market"},
	},
	{
		ID: "agra", Name: "Agra", State: "Uttar Pradesh", Region: "north",
		Categories: []string{"heritage"},
		Latitude:   27.1767, Longitude: 78.0081,
		BestSeason:  "October to March",
		Description: "Home of the Taj Mahal and the Mughal capital for over a century.",
		Highlights:  []string{"Taj Mahal", "Agra Fort", "Fatehpur Sikri", "Mehtab Bagh"},
	},
	{
		ID: "varanasi", Name: "Varanasi", State: "Uttar Pradesh", Region: "north",
		Categories: []string{"spiritual", "culture"},
		Latitude:   25.3176, Longitude: 82.9739,
		BestSeason:  "October to March",
		Description: "One of the world's oldest living cities, on the banks of the Ganges.",
		Highlights:  []string{"Dashashwamedh Ghat", "Kashi Vishwanath", "Sarnath", "evening aarti"},
	},
	{
		ID: "munnar", Name: "Munnar", State: "Kerala", Region: "south",
		Categories: []string{"nature", "hills"},
		Latitude:   10.0889, Longitude: 77.0595,
		BestSeason:  "September to May",
		Description: "Tea plantations and misty hills in the Western Ghats.",
		Highlights:  []string{"Eravikulam National Park", "Tea Museum", "Top Station", "Mattupetty Dam"},
	},
	{
		ID: "rishikesh", Name: "Rishikesh", State: "Uttarakhand", Region: "north",
		Categories: []string{"spiritual", "adventure"},
		Latitude:   30.0869, Longitude: 78.2676,
		BestSeason:  "September to June",
		Description: "Yoga capital on the Ganges with white-water rafting nearby.",
		Highlights:  []string{"Laxman Jhula", "Triveni Ghat", "rafting on the Ganges", "Beatles Ashram"},
	},
	{
		ID: "udaipur", Name: "Udaipur", State: "Rajasthan", Region: "north",
		Categories: []string{"heritage", "lakes"},
		Latitude:   24.5854, Longitude: 73.7125,
		BestSeason:  "September to March",
		Description: "The City of Lakes, ringed by the Aravalli hills.",
		Highlights:  []string{"Lake Pichola", "City Palace", "Jag Mandir", "Sajjangarh"},
	},
	{
		ID: "hampi", Name: "Hampi", State: "Karnataka", Region: "south",
		Categories: []string{"heritage", "nature"},
		Latitude:   15.335, Longitude: 76.46,
		BestSeason:  "October to February",
		Description: "Boulder-strewn ruins of the Vijayanagara empire.",
		Highlights:  []string{"Virupaksha Temple", "Vittala Temple", "Matanga Hill", "coracle rides"},
	},
	{
		ID: "darjeeling", Name: "Darjeeling", State: "West Bengal", Region: "east",
		Categories: []string{"hills", "nature"},
		Latitude:   27.041, Longitude: 88.2663,
		BestSeason:  "March to May",
		Description: "Himalayan tea country with views of Kangchenjunga.",
		Highlights:  []string{"Tiger Hill sunrise", "toy train", "Happy Valley Tea Estate", "Batasia Loop"},
	},
	{
		ID: "leh", Name: "Leh", State: "Ladakh", Region: "north",
		Categories: []string{"adventure", "nature"},
		Latitude:   34.1526, Longitude: 77.5771,
		BestSeason:  "May to September",
		Description: "High-altitude desert of monasteries and mountain passes.",
		Highlights:  []string{"Pangong Tso", "Thiksey Monastery", "Khardung La", "Nubra Valley"},
	},
	{
		ID: "kochi", Name: "Kochi", State: "Kerala", Region: "south",
		Categories: []string{"culture", "coastal"},
		Latitude:   9.9312, Longitude: 76.2673,
		BestSeason:  "October to March",
		Description: "Spice-trade port layered with Dutch, Portuguese and British history.",
		Highlights:  []string{"Chinese fishing nets", "Fort Kochi", "Mattancherry Palace", "Kathakali shows"},
	},
	{
		ID: "mumbai", Name: "Mumbai", State: "Maharashtra", Region: "west",
		Categories: []string{"city", "culture", "nightlife"},
		Latitude:   19.076, Longitude: 72.8777,
		BestSeason:  "November to February",
		Description: "India's largest city, from colonial landmarks to Bollywood.",
		Highlights:  []string{"Gateway of India", "Marine Drive", "Elephanta Caves", "Chhatrapati Shivaji Terminus"},
	},
}
