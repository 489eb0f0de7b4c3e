// Copyright 2025 Selera Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package taxonomy

import "github.com/selera/menurec/core"

// Default returns the built-in Indonesian/English food taxonomy, compiled.
func Default() *Taxonomy {
	t, err := New(DefaultDefinition())
	if err != nil {
		// The built-in definition is static data; a compile failure here is a bug.
		panic(err)
	}
	return t
}

// DefaultDefinition returns the raw built-in taxonomy data.
func DefaultDefinition() Definition {
	return Definition{
		Categories: map[string]map[string][]string{
			core.CategoryProtein: {
				"ayam":    {"ayam", "chicken", "dada ayam", "paha ayam", "ayam kampung", "ayam broiler", "ayam potong", "ayam fillet", "ayam ungkep"},
				"sapi":    {"sapi", "daging sapi", "beef", "dendeng", "has dalam", "has luar", "sirloin", "tenderloin", "daging"},
				"kambing": {"kambing", "goat", "daging kambing", "kambing muda"},
				"bebek":   {"bebek", "duck", "bebek panggang", "bebek goreng", "itik"},
				"babi":    {"babi", "pork", "daging babi"},
				"telur":   {"telur", "egg", "telor", "telur dadar", "telur mata sapi", "telur rebus", "telur ceplok", "telur puyuh"},

				"ikan":     {"ikan", "fish", "salmon", "tuna", "kakap", "bandeng", "lele", "nila", "tenggiri", "gurame", "mujair", "patin", "baronang", "kembung", "tongkol", "cakalang", "gabus", "mas", "cupang", "bawal", "dori"},
				"udang":    {"udang", "shrimp", "prawn", "udang windu", "udang vannamei", "udang galah", "udang rebon", "udang kering", "ebi"},
				"cumi":     {"cumi", "squid", "sotong", "cumi-cumi", "cumi asin", "cumi basah"},
				"kepiting": {"kepiting", "crab", "rajungan", "ketam"},
				"kerang":   {"kerang", "mussel", "clam", "kerang hijau", "kerang darah", "remis"},
				"lobster":  {"lobster", "udang galah besar"},

				"vegetarian": {
					"vegetarian", "vegan", "nabati", "plant based", "tanpa daging", "non meat",
					"tahu", "tofu", "tahoo", "tahu putih", "tahu kuning", "tahu goreng", "tahu bacem",
					"tempe", "tempeh", "tempe mendoan", "tempe bacem", "tempe goreng",
					"jamur", "mushroom", "jamur kuping", "jamur merang", "jamur shiitake",
				},
			},
			core.CategoryCookingMethod: {
				"goreng":    {"goreng", "fried", "digoreng", "crispy", "garing", "renyah", "deep fry", "pan fry"},
				"bakar":     {"bakar", "grilled", "panggang", "dibakar", "dipanggang", "barbecue", "bbq", "grill"},
				"rebus":     {"rebus", "boiled", "direbus", "tim", "dikukus air"},
				"kukus":     {"kukus", "steamed", "dikukus", "steam"},
				"tumis":     {"tumis", "stir-fry", "ditumis", "menumis", "stir fry", "cah"},
				"oseng":     {"oseng", "dioseng", "oseng-oseng"},
				"rica":      {"rica", "rica-rica", "dirica"},
				"balado":    {"balado", "dibalado", "sambal balado"},
				"gulai":     {"gulai", "curry", "kari", "santan", "berkuah santan"},
				"woku":      {"woku", "diwoku"},
				"rendang":   {"rendang", "kalio", "randang"},
				"pop":       {"pop", "dipop"},
				"pepes":     {"pepes", "dipepes", "wrapped"},
				"asap":      {"asap", "diasap", "smoked"},
				"presto":    {"presto", "dipresto"},
				"serundeng": {"serundeng", "diserudeng"},
				"ungkep":    {"ungkep", "diungkep"},
				"crispy":    {"crispy", "krispi", "renyah", "garing"},
				"karage":    {"karage", "japanese fried"},
				"teriyaki":  {"teriyaki", "teriyaki sauce"},
				"katsu":     {"katsu", "breaded fried"},
			},
			core.CategoryFlavor: {
				"pedas":       {"pedas", "spicy", "hot", "cabai", "chili", "sambal", "cabe", "rica", "balado", "level", "pedes", "nyelekit", "panas"},
				"manis":       {"manis", "sweet", "gula", "kecap manis", "gula jawa", "palm sugar", "gula aren", "manis gurih"},
				"gurih":       {"gurih", "savory", "asin", "salty", "umami", "sedap"},
				"asam":        {"asam", "sour", "tamarind", "belimbing", "jeruk", "lime", "asem", "kecut"},
				"berkuah":     {"kuah", "berkuah", "soup", "broth", "soto", "sup", "kaldu", "sauce", "air", "gravy"},
				"kering":      {"kering", "dry", "tanpa kuah", "tidak berkuah", "sambal kering"},
				"original":    {"original", "ori", "plain", "biasa", "standar", "polos"},
				"segar":       {"segar", "fresh", "sejuk", "dingin"},
				"sehat":       {"sehat", "healthy", "diet", "low fat", "rendah lemak"},
				"bumbu_bali":  {"bumbu bali", "bali", "base genep"},
				"bumbu_rujak": {"bumbu rujak", "rujak", "petis"},
				"kelapa":      {"kelapa", "coconut", "parut", "santan"},
				"mentega":     {"mentega", "butter", "margarin"},
			},
			core.CategoryDishType: {
				"sup":        {"sup", "soup", "soto", "bakso"},
				"soto":       {"soto", "soup", "sup", "coto", "sroto"},
				"nasi":       {"nasi", "rice", "beras", "nasi putih", "nasi merah", "nasi goreng", "nasi campur"},
				"mie":        {"mie", "mi", "noodle", "bakmi", "mee", "noodles", "pasta", "kwetiau", "bihun"},
				"rujak":      {"rujak", "fruit salad", "asinan", "rujak buah"},
				"pecel":      {"pecel", "vegetable salad", "lalapan"},
				"sate":       {"sate", "satay", "tusuk", "sate ayam", "sate kambing"},
				"pempek":     {"pempek", "empek-empek", "pempek kapal selam"},
				"gudeg":      {"gudeg", "nangka muda"},
				"rawon":      {"rawon", "rawon daging"},
				"bakso":      {"bakso", "baso", "meatball"},
				"siomay":     {"siomay", "somay", "dimsum"},
				"martabak":   {"martabak", "terang bulan"},
				"kerak_telor": {"kerak telor", "kerak telur"},
				"ketoprak":   {"ketoprak"},
				"lotek":      {"lotek"},
				"karedok":    {"karedok"},
				"lalapan":    {"lalapan", "lalap", "fresh vegetables"},
				"kerupuk":    {"kerupuk", "krupuk", "crackers"},
				"salad":      {"salad", "vegetable salad", "fruit salad"},

				"vegetarian_dish": {
					"cap cay", "capcay", "sayur asem", "sayur sop", "sayur bayam",
					"kangkung", "terong", "toge", "tahu isi", "tempe orek", "sayur lodeh",
					"urap", "plecing kangkung", "tumis kangkung", "cah kangkung",
					"tumis tahu", "tempe bacem", "oseng tempe", "gudangan", "karedok",
					"pecel sayur", "gado gado", "asinan sayur", "tumis jamur",
				},
			},
			core.CategoryRegion: {
				"padang":    {"padang", "minang", "sumatera barat", "rendang", "gulai", "minangkabau"},
				"manado":    {"manado", "sulawesi utara", "woku", "rica", "minahasa"},
				"jawa":      {"jawa", "javanese", "jogja", "solo", "semarang", "gudeg", "rawon", "yogyakarta"},
				"sunda":     {"sunda", "bandung", "priangan", "karedok", "pepes", "sundanese"},
				"bali":      {"bali", "balinese", "betutu", "bumbu bali"},
				"aceh":      {"aceh", "acehnese", "mie aceh", "kuah pliek"},
				"betawi":    {"betawi", "jakarta", "kerak telor", "ketoprak"},
				"palembang": {"palembang", "sumatera selatan", "pempek", "tekwan", "sumsel"},
				"madura":    {"madura", "madurese", "sate madura"},
				"lombok":    {"lombok", "sasak", "plecing", "ayam taliwang"},
				"medan":     {"medan", "batak", "bika ambon", "soto medan"},
				"makassar":  {"makassar", "bugis", "coto makassar", "konro"},
				"solo":      {"solo", "surakarta", "serabi", "gudeg solo"},
				"chinese":   {"chinese", "cina", "tionghoa", "hakka", "hokkien", "hong kong"},
				"japanese":  {"japanese", "jepang", "sushi", "teriyaki", "katsu"},
				"western":   {"western", "barat", "american", "italian"},
			},
			core.CategoryTexture: {
				"crispy":  {"crispy", "krispi", "renyah", "garing"},
				"tender":  {"tender", "empuk", "lembut"},
				"chewy":   {"chewy", "kenyal", "alot"},
				"creamy":  {"creamy", "krim", "lembut creamy"},
				"crunchy": {"crunchy", "kriuk", "berbunyi"},
				"juicy":   {"juicy", "berair", "segar"},
			},
			core.CategoryServingStyle: {
				"sambal":        {"sambal", "cabe", "lombok", "sauce pedas"},
				"kerupuk":       {"kerupuk", "krupuk", "crackers"},
				"lalapan":       {"lalapan", "lalap", "raw vegetables"},
				"nasi_putih":    {"nasi putih", "nasi", "steamed rice"},
				"kuah_terpisah": {"kuah terpisah", "dipping sauce"},
				"set_meal":      {"paket", "set meal", "combo"},
			},
		},

		Synonyms: map[string][]string{
			"ayam":    {"ayam", "chicken"},
			"sapi":    {"sapi", "beef", "daging sapi"},
			"kambing": {"kambing", "goat"},
			"bebek":   {"bebek", "duck", "itik"},
			"babi":    {"babi", "pork"},
			"telur":   {"telur", "egg", "telor"},

			"ikan":     {"ikan", "fish"},
			"udang":    {"udang", "shrimp", "prawn"},
			"cumi":     {"cumi", "squid", "sotong"},
			"kepiting": {"kepiting", "crab", "rajungan"},
			"kerang":   {"kerang", "mussel", "clam"},

			"vegetarian": {"vegetarian", "vegan", "nabati", "plant based"},
			"tahu":       {"tahu", "tofu", "bean curd"},
			"tempe":      {"tempe", "tempeh"},
			"jamur":      {"jamur", "mushroom"},

			"pedas":  {"pedas", "pedes", "hot", "spicy"},
			"manis":  {"manis", "sweet"},
			"gurih":  {"gurih", "savory", "asin"},
			"goreng": {"goreng", "fried", "fry"},
			"rebus":  {"rebus", "boiled"},
			"bakar":  {"bakar", "grilled", "grill"},
			"tumis":  {"tumis", "stir-fry", "cah"},
			"kukus":  {"kukus", "steamed"},

			"soto":    {"soto", "coto", "sroto"},
			"bakso":   {"bakso", "baso"},
			"mie":     {"mie", "mi", "mee", "noodle"},
			"nasi":    {"nasi", "rice"},
			"rendang": {"rendang", "kalio"},
			"sambal":  {"sambal", "cabe", "cabai"},

			"kangkung": {"kangkung", "water spinach"},
			"bayam":    {"bayam", "spinach"},
			"terong":   {"terong", "eggplant"},
			"toge":     {"toge", "bean sprouts", "tauge"},
			"wortel":   {"wortel", "carrot"},
			"buncis":   {"buncis", "green beans"},
			"jagung":   {"jagung", "corn"},
			"kentang":  {"kentang", "potato"},
		},

		SpecialExpansions: map[string][]string{
			"manis":  {"sweet", "gula"},
			"pedas":  {"spicy", "hot", "cabai", "sambal"},
			"padang": {"minang", "sumatera barat", "rendang"},
			"manado": {"sulawesi utara", "rica", "woku"},
		},

		SeafoodIndicators: []string{
			`\bikan\s+\w+`, `\bikan\b`, `\bfish\b`,
			`\budang\s+\w+`, `\budang\b`, `\bshrimp\b`, `\bprawn\b`,
			`\bcumi\s+\w+`, `\bcumi\b`, `\bsquid\b`, `\bsotong\b`,
			`\bkepiting\b`, `\bcrab\b`, `\brajungan\b`,
			`\bkerang\b`, `\bmussel\b`, `\bclam\b`,
			`\blobster\b`, `\bseafood\b`, `\bmakanan\s+laut\b`,
			`\bsalmon\b`, `\btuna\b`, `\bkakap\b`, `\bgurame\b`,
			`\blele\b`, `\bnila\b`, `\bbandeng\b`, `\btenggiri\b`,
		},
		LandAnimalIndicators: []string{
			`\bayam\b`, `\bchicken\b`, `\bsapi\b`, `\bbeef\b`,
			`\bkambing\b`, `\bgoat\b`, `\bbebek\b`, `\bduck\b`,
			`\btelur\b`, `\begg\b`, `\bdaging\b`,
		},
		VegetarianIndicators: []string{
			`\bvegetarian\b`, `\bvegan\b`, `\bnabati\b`,
			`\btahu\b`, `\btofu\b`, `\btempe\b`, `\btempeh\b`,
			`\bjamur\b`, `\bmushroom\b`,
		},

		SeafoodSpecies: []SpeciesPattern{
			{Tag: "ikan", Pattern: `\bikan\b`},
			{Tag: "udang", Pattern: `\budang\b`},
			{Tag: "cumi", Pattern: `\bcumi\b`},
			{Tag: "kepiting", Pattern: `\bkepiting\b`},
			{Tag: "kerang", Pattern: `\bkerang\b`},
			{Tag: "lobster", Pattern: `\blobster\b`},
		},
		LandSpecies: []SpeciesPattern{
			{Tag: "sapi", Pattern: `\bsapi\b|beef\b|daging\b`},
			{Tag: "ayam", Pattern: `\bayam\b|chicken\b`},
			{Tag: "kambing", Pattern: `\bkambing\b|goat\b`},
			{Tag: "bebek", Pattern: `\bbebek\b|duck\b`},
			{Tag: "telur", Pattern: `\btelur\b|egg\b`},
		},

		FlavorPatterns: []TagPatterns{
			{Tag: "pedas", Patterns: []string{`\bpedas\b`, `\bspicy\b`, `\bhot\b`, `\bcabai\b`, `\bchili\b`, `\bsambal\b`, `\bcabe\b`, `\brica\b`, `\bbalado\b`, `\blevel\b`}},
			{Tag: "manis", Patterns: []string{`\bmanis\b`, `\bsweet\b`, `\bgula\b`, `\bkecap\s+manis\b`, `\bgula\s+jawa\b`, `\bpalm\s+sugar\b`, `\bmanis\s+gurih\b`}},
			{Tag: "gurih", Patterns: []string{`\bgurih\b`, `\bsavory\b`, `\basin\b`, `\bsalty\b`, `\bumami\b`, `\bsedap\b`}},
			// The asin pattern below mirrors the upstream keyword data; the
			// primary keyword list for asam is the separate asam/asem set.
			{Tag: "asam", Patterns: []string{`\basin\b`, `\bsour\b`, `\btamarind\b`, `\bbelimbing\b`, `\bjeruk\b`, `\blime\b`, `\basem\b`, `\bkecut\b`}},
			{Tag: "berkuah", Patterns: []string{`\bkuah\b`, `\bberkuah\b`, `\bsoup\b`, `\bbroth\b`, `\bsoto\b`, `\bsup\b`, `\bkaldu\b`, `\bsauce\b`}},
			{Tag: "kering", Patterns: []string{`\bkering\b`, `\bdry\b`, `\btanpa\s+kuah\b`, `\btidak\s+berkuah\b`}},
			{Tag: "segar", Patterns: []string{`\bsegar\b`, `\bfresh\b`, `\bsejuk\b`, `\bdingin\b`}},
			{Tag: "sehat", Patterns: []string{`\bsehat\b`, `\bhealthy\b`, `\bdiet\b`, `\blow\s+fat\b`}},
		},
		RegionPatterns: []TagPatterns{
			{Tag: "padang", Patterns: []string{`\bpadang\b`, `\bminang\b`, `\bsumatera\s+barat\b`, `\brendang\b`, `\bgulai\b`, `\bminangkabau\b`, `\bmasakan\s+padang\b`}},
			{Tag: "manado", Patterns: []string{`\bmanado\b`, `\bsulawesi\s+utara\b`, `\bwoku\b`, `\brica\b`, `\bminahasa\b`, `\bmasakan\s+manado\b`}},
			{Tag: "jawa", Patterns: []string{`\bjawa\b`, `\bjavanese\b`, `\bjogja\b`, `\bsolo\b`, `\bsemarang\b`, `\bgudeg\b`, `\brawon\b`, `\byogyakarta\b`, `\bmasakan\s+jawa\b`}},
			{Tag: "sunda", Patterns: []string{`\bsunda\b`, `\bbandung\b`, `\bpriangan\b`, `\bkaredok\b`, `\bpepes\b`, `\bsundanese\b`, `\bmasakan\s+sunda\b`}},
			{Tag: "bali", Patterns: []string{`\bbali\b`, `\bbalinese\b`, `\bbetutu\b`, `\bbumbu\s+bali\b`, `\bmasakan\s+bali\b`}},
			{Tag: "aceh", Patterns: []string{`\baceh\b`, `\bacehnese\b`, `\bmie\s+aceh\b`, `\bkuah\s+pliek\b`, `\bmasakan\s+aceh\b`}},
			{Tag: "betawi", Patterns: []string{`\bbetawi\b`, `\bjakarta\b`, `\bkerak\s+telor\b`, `\bketoprak\b`}},
			{Tag: "palembang", Patterns: []string{`\bpalembang\b`, `\bsumatera\s+selatan\b`, `\bpempek\b`, `\btekwan\b`, `\bsumsel\b`}},
			{Tag: "lombok", Patterns: []string{`\blombok\b`, `\bsasak\b`, `\bplecing\b`, `\bayam\s+taliwang\b`}},
			{Tag: "medan", Patterns: []string{`\bmedan\b`, `\bbatak\b`, `\bbika\s+ambon\b`, `\bsoto\s+medan\b`}},
		},

		VegetarianPrefilter: PrefilterDefinition{
			Include: []string{
				`\btahu\b`, `\btofu\b`, `\btempe\b`, `\btempeh\b`,
				`\bvegetarian\b`, `\bvegan\b`, `\bnabati\b`,
				`\bsayur\b`, `\bjamur\b`, `\bmushroom\b`,
			},
			Exclude: []string{
				`\bayam\b`, `\bchicken\b`, `\bikan\b`, `\bfish\b`,
				`\bsapi\b`, `\bbeef\b`, `\budang\b`, `\bshrimp\b`,
				`\bcumi\b`, `\bsquid\b`, `\bdaging\b`, `\bmeat\b`,
			},
		},
		SeafoodPrefilter: PrefilterDefinition{
			Include: []string{
				`\bikan\b`, `\bfish\b`, `\bseafood\b`,
				`\budang\b`, `\bshrimp\b`, `\bprawn\b`,
				`\bcumi\b`, `\bsquid\b`, `\bsotong\b`,
				`\bkepiting\b`, `\bcrab\b`, `\brajungan\b`,
				`\bkerang\b`, `\bmussel\b`, `\bclam\b`,
				`\blobster\b`, `\bmakanan\s+laut\b`,
				`\bsalmon\b`, `\btuna\b`, `\bkakap\b`, `\bgurame\b`,
				`\blele\b`, `\bnila\b`, `\bbandeng\b`, `\btenggiri\b`,
				`\bmujair\b`, `\bpatin\b`, `\bbawal\b`, `\bdori\b`,
			},
			Exclude: []string{
				`\bayam\b`, `\bchicken\b`, `\bsapi\b`, `\bbeef\b`,
				`\bkambing\b`, `\bgoat\b`, `\bbebek\b`, `\bduck\b`,
				`\btelur\b`, `\begg\b`, `\btahu\b`, `\btempe\b`,
			},
		},
	}
}
