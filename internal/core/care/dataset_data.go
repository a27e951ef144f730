package care

// curatedPlants 精選植物資料表，涵蓋常見室內與庭園植物。
// 外部照護資料來源不可用時的後備資料，執行期不可變。
var curatedPlants = map[string]CuratedEntry{
	// 常見室內植物
	"Epipremnum aureum": {
		FoundIn:      "Native to Mo'orea in French Polynesia; widely cultivated in tropical and subtropical regions worldwide",
		Edibility:    "No — Toxic if ingested",
		Medicinal:    "Not used medicinally; contains calcium oxalate crystals which are toxic",
		Toxicity:     "Toxic to humans and pets (cats, dogs). Causes oral irritation, drooling, and difficulty swallowing",
		Usage:        "Indoor/Outdoor (commonly used as indoor houseplant)",
		AirPurifying: "Yes — known to remove formaldehyde and other VOCs",
		Image:        "https://example.com/epipremnum.jpg",
	},
	"Monstera deliciosa": {
		FoundIn:      "Native to tropical rainforests of southern Mexico to Panama",
		Edibility:    "Yes — Ripe fruit is edible; unripe fruit is toxic",
		Medicinal:    "Traditionally used for arthritis and snake bites (not scientifically validated)",
		Toxicity:     "Unripe fruit and leaves contain calcium oxalate crystals; toxic to pets",
		Usage:        "Indoor/Outdoor",
		AirPurifying: "Yes — commonly used indoors for moderate air cleaning",
		Image:        "https://example.com/monstera.jpg",
	},
	"Spathiphyllum wallisii": {
		FoundIn:      "Native to tropical regions of Colombia and Venezuela",
		Edibility:    "No — Toxic if ingested",
		Medicinal:    "Used in NASA studies for air purification",
		Toxicity:     "Toxic to pets and humans; contains calcium oxalate crystals",
		Usage:        "Indoor",
		AirPurifying: "Yes — frequently cited in NASA studies",
		Image:        "https://example.com/spathiphyllum.jpg",
	},
	"Sansevieria trifasciata": {
		FoundIn:      "Native to West Africa from Nigeria to the Congo",
		Edibility:    "No — Can cause nausea if ingested",
		Medicinal:    "Used traditionally for treating ear infections and wounds; contains saponins",
		Toxicity:     "Mildly toxic to pets",
		Usage:        "Indoor",
		AirPurifying: "Yes — helps reduce indoor VOCs",
		Image:        "https://example.com/sansevieria.jpg",
	},
	"Ficus elastica": {
		FoundIn:      "Native to northeast India, Nepal, Bhutan, Myanmar, China, Malaysia, and Indonesia",
		Edibility:    "No — Not edible",
		Medicinal:    "Latex traditionally used for warts and skin conditions",
		Toxicity:     "Mildly toxic; sap can cause skin irritation",
		Usage:        "Indoor/Outdoor",
		AirPurifying: "Yes — removes airborne toxins",
		Image:        "https://example.com/ficus.jpg",
	},
	"Maranta leuconeura": {
		FoundIn:      "Native to Brazilian tropical forests",
		Edibility:    "No — Not typically consumed",
		Medicinal:    "No significant medicinal uses",
		Toxicity:     "Non-toxic to humans and pets",
		Usage:        "Indoor",
		AirPurifying: "No",
		Image:        "https://example.com/maranta.jpg",
	},
	"Chlorophytum comosum": {
		FoundIn:      "Native to tropical and southern Africa",
		Edibility:    "No — Not typically eaten, though not toxic",
		Medicinal:    "Used in traditional African medicine for burns and fractures",
		Toxicity:     "Non-toxic to humans and pets",
		Usage:        "Indoor",
		AirPurifying: "Yes — excellent at removing formaldehyde and xylene",
		Image:        "https://example.com/chlorophytum.jpg",
	},
	"Aloe vera": {
		FoundIn:      "Native to Arabian Peninsula; now cultivated worldwide",
		Edibility:    "Yes — Gel is edible; latex should be avoided",
		Medicinal:    "Extensively used for burns, wound healing, skin conditions, and digestive support",
		Toxicity:     "Generally safe; aloe latex can cause cramping if overconsumed",
		Usage:        "Indoor/Outdoor",
		AirPurifying: "Yes — improves indoor air slightly",
		Image:        "https://example.com/aloe.jpg",
	},
	"Lavandula angustifolia": {
		FoundIn:      "Native to Mediterranean region",
		Edibility:    "Yes — Flowers used in teas, baking, seasoning",
		Medicinal:    "Used for anxiety, insomnia, pain relief, and skin conditions",
		Toxicity:     "Generally safe; high doses may cause drowsiness",
		Usage:        "Outdoor/Indoor in pots",
		AirPurifying: "No — primarily aromatic",
		Image:        "https://example.com/lavender.jpg",
	},
	"Rosa chinensis": {
		FoundIn:      "Native to southwest China; cultivated worldwide",
		Edibility:    "Yes — Petals edible; rose hips rich in vitamin C",
		Medicinal:    "Rose water/oil used for skin care, digestive issues",
		Toxicity:     "Non-toxic",
		Usage:        "Outdoor",
		AirPurifying: "No",
		Image:        "https://example.com/rose.jpg",
	},
	"Dieffenbachia seguine": {
		FoundIn:      "Native to Central and South America",
		Edibility:    "No — Highly toxic if ingested",
		Medicinal:    "Not used due to high toxicity",
		Toxicity:     "Highly toxic; causes severe oral pain, swelling",
		Usage:        "Indoor",
		AirPurifying: "No",
		Image:        "https://example.com/dieffenbachia.jpg",
	},
	"Withania somnifera": {
		FoundIn:      "Native to India, Middle East, parts of Africa",
		Edibility:    "No — Processed for medicinal use",
		Medicinal:    "Important Ayurvedic herb (Ashwagandha) for stress, immunity",
		Toxicity:     "Safe in recommended doses; high doses may cause stomach upset",
		Usage:        "Outdoor/Herb",
		AirPurifying: "No",
		Image:        "https://example.com/ashwagandha.jpg",
	},
	"Ocimum tenuiflorum": {
		FoundIn:      "Native to Indian subcontinent; cultivated throughout Southeast Asia",
		Edibility:    "Yes — Leaves used in cooking and teas",
		Medicinal:    "Used for respiratory infections, fever, stress; contains eugenol",
		Toxicity:     "Generally safe",
		Usage:        "Outdoor/Herb",
		AirPurifying: "No — aromatic",
		Image:        "https://example.com/tulsi.jpg",
	},
	"Philodendron hederaceum": {
		FoundIn:      "Native to Central America and the Caribbean",
		Edibility:    "No — Toxic if ingested",
		Medicinal:    "Not used medicinally",
		Toxicity:     "Toxic to humans and pets; contains calcium oxalate crystals",
		Usage:        "Indoor",
		AirPurifying: "Yes",
		Image:        "https://example.com/philodendron.jpg",
	},
	"Aglaonema commutatum": {
		FoundIn:      "Native to tropical/subtropical Asia",
		Edibility:    "No — Toxic if ingested",
		Medicinal:    "Not used medicinally",
		Toxicity:     "Toxic to humans and pets",
		Usage:        "Indoor",
		AirPurifying: "Yes",
		Image:        "https://example.com/aglaonema.jpg",
	},
	"Zamioculcas zamiifolia": {
		FoundIn:      "Native to eastern Africa",
		Edibility:    "No — All parts toxic",
		Medicinal:    "Used traditionally in Tanzania in small doses",
		Toxicity:     "Toxic to humans and pets; causes irritation",
		Usage:        "Indoor",
		AirPurifying: "No",
		Image:        "https://example.com/zamioculcas.jpg",
	},
	"Dracaena fragrans": {
		FoundIn:      "Native to tropical Africa",
		Edibility:    "No — Not edible",
		Medicinal:    "No significant uses",
		Toxicity:     "Toxic to pets; contains saponins",
		Usage:        "Indoor",
		AirPurifying: "Yes",
		Image:        "https://example.com/dracaena.jpg",
	},
	"Pilea peperomioides": {
		FoundIn:      "Native to Yunnan Province, China",
		Edibility:    "No",
		Medicinal:    "No documented medicinal uses",
		Toxicity:     "Non-toxic to humans and pets",
		Usage:        "Indoor",
		AirPurifying: "No",
		Image:        "https://example.com/pilea.jpg",
	},
	"Calathea orbifolia": {
		FoundIn:      "Native to Bolivia",
		Edibility:    "No",
		Medicinal:    "No documented medicinal uses",
		Toxicity:     "Non-toxic",
		Usage:        "Indoor",
		AirPurifying: "No",
		Image:        "https://example.com/calathea.jpg",
	},
	"Anthurium andraeanum": {
		FoundIn:      "Native to Colombia and Ecuador",
		Edibility:    "No — Toxic if ingested",
		Medicinal:    "Not used medicinally",
		Toxicity:     "Toxic to humans and pets; calcium oxalate crystals",
		Usage:        "Indoor/Outdoor",
		AirPurifying: "Yes",
		Image:        "https://example.com/anthurium.jpg",
	},
	"Begonia maculata": {
		FoundIn:      "Native to Brazil",
		Edibility:    "No",
		Medicinal:    "Some species used for wound healing",
		Toxicity:     "Mildly toxic to pets; causes oral irritation",
		Usage:        "Indoor/Outdoor",
		AirPurifying: "No",
		Image:        "https://example.com/begonia.jpg",
	},
	// 蔬果與香草
	"Solanum melongena": {
		FoundIn:      "Native to India and Southeast Asia; cultivated worldwide",
		Edibility:    "Yes — Fruit widely consumed as vegetable (eggplant/aubergine)",
		Medicinal:    "Used in traditional medicine; contains antioxidants",
		Toxicity:     "Raw contains solanine; cooking eliminates risk",
		Usage:        "Outdoor/Vegetable garden",
		AirPurifying: "No",
		Image:        "https://example.com/eggplant.jpg",
	},
	"Ocimum basilicum": {
		FoundIn:      "Native to tropical regions from central Africa to Southeast Asia",
		Edibility:    "Yes — Widely used culinary herb",
		Medicinal:    "Used for digestion, inflammation, respiratory conditions",
		Toxicity:     "Generally safe; excessive use may cause issues",
		Usage:        "Outdoor/Indoor herb garden",
		AirPurifying: "No",
		Image:        "https://example.com/basil.jpg",
	},
	"Mentha": {
		FoundIn:      "Native to temperate regions worldwide",
		Edibility:    "Yes — Widely used in cooking, teas, and confections",
		Medicinal:    "Used for digestive issues, headaches, respiratory problems",
		Toxicity:     "Generally safe; large amounts of mint oil can be toxic",
		Usage:        "Outdoor/Indoor herb garden",
		AirPurifying: "No",
		Image:        "https://example.com/mentha.jpg",
	},
	"Rosmarinus officinalis": {
		FoundIn:      "Native to the Mediterranean region",
		Edibility:    "Yes — Culinary herb used in cooking, teas, and seasoning",
		Medicinal:    "Used for digestion, circulation, and memory enhancement; contains antioxidants",
		Toxicity:     "Generally safe; excessive intake may cause digestive upset",
		Usage:        "Outdoor/Indoor herb garden",
		AirPurifying: "No",
		Image:        "https://example.com/rosemary.jpg",
	},
	"Thymus vulgaris": {
		FoundIn:      "Native to southern Europe",
		Edibility:    "Yes — Widely used in cooking, teas, and seasoning",
		Medicinal:    "Used for respiratory infections, antiseptic properties; contains thymol",
		Toxicity:     "Safe in culinary amounts; high doses may cause irritation",
		Usage:        "Outdoor/Indoor herb garden",
		AirPurifying: "No",
		Image:        "https://example.com/thyme.jpg",
	},
	"Ocimum gratissimum": {
		FoundIn:      "Native to tropical Africa and Asia",
		Edibility:    "Yes — Leaves used in cooking and teas",
		Medicinal:    "Used traditionally for respiratory and digestive issues",
		Toxicity:     "Generally safe",
		Usage:        "Outdoor/Herb garden",
		AirPurifying: "No",
		Image:        "https://example.com/ocimumgratissimum.jpg",
	},
	"Capsicum annuum": {
		FoundIn:      "Native to Central and South America",
		Edibility:    "Yes — Chili peppers and bell peppers consumed worldwide",
		Medicinal:    "Contains capsaicin; used for pain relief, digestion",
		Toxicity:     "Safe; very spicy varieties may irritate skin and mouth",
		Usage:        "Outdoor/Vegetable garden",
		AirPurifying: "No",
		Image:        "https://example.com/capsicum.jpg",
	},
	"Cucumis sativus": {
		FoundIn:      "Native to India",
		Edibility:    "Yes — Cucumbers eaten raw or cooked",
		Medicinal:    "Used for hydration, skin health; mild diuretic",
		Toxicity:     "Safe",
		Usage:        "Outdoor/Vegetable garden",
		AirPurifying: "No",
		Image:        "https://example.com/cucumber.jpg",
	},
	"Citrus limon": {
		FoundIn:      "Native to Asia",
		Edibility:    "Yes — Fruit widely consumed; zest and juice used in cooking",
		Medicinal:    "Used for vitamin C, digestion, and immune support",
		Toxicity:     "Safe; essential oils may irritate skin in concentrated form",
		Usage:        "Outdoor/Indoor container",
		AirPurifying: "No",
		Image:        "https://example.com/lemon.jpg",
	},
	"Citrus sinensis": {
		FoundIn:      "Native to Southeast Asia",
		Edibility:    "Yes — Oranges widely eaten",
		Medicinal:    "Rich in vitamin C; supports immunity and digestion",
		Toxicity:     "Safe",
		Usage:        "Outdoor/Indoor container",
		AirPurifying: "No",
		Image:        "https://example.com/orange.jpg",
	},
	"Fragaria × ananassa": {
		FoundIn:      "Hybrid, widely cultivated worldwide",
		Edibility:    "Yes — Strawberries eaten fresh, in desserts, jams",
		Medicinal:    "Rich in vitamin C and antioxidants; may improve cardiovascular health",
		Toxicity:     "Safe",
		Usage:        "Outdoor/Indoor container",
		AirPurifying: "No",
		Image:        "https://example.com/strawberry.jpg",
	},
	"Solanum lycopersicum": {
		FoundIn:      "Native to western South America; cultivated worldwide",
		Edibility:    "Yes — Tomatoes eaten raw or cooked",
		Medicinal:    "Contains lycopene; supports heart health and antioxidants",
		Toxicity:     "Raw green parts contain solanine; ripe fruit safe",
		Usage:        "Outdoor/Indoor container",
		AirPurifying: "No",
		Image:        "https://example.com/tomato.jpg",
	},
	"Allium sativum": {
		FoundIn:      "Native to Central Asia",
		Edibility:    "Yes — Garlic widely used in cooking",
		Medicinal:    "Antimicrobial, cardiovascular benefits, immune support",
		Toxicity:     "Safe in culinary amounts; large doses may cause digestive upset",
		Usage:        "Outdoor/Indoor herb garden",
		AirPurifying: "No",
		Image:        "https://example.com/garlic.jpg",
	},
	"Allium cepa": {
		FoundIn:      "Native to Central Asia",
		Edibility:    "Yes — Onion used worldwide",
		Medicinal:    "Antioxidant, antimicrobial, supports heart health",
		Toxicity:     "Safe; can be toxic to pets in large amounts",
		Usage:        "Outdoor/Indoor herb garden",
		AirPurifying: "No",
		Image:        "https://example.com/onion.jpg",
	},
	"Capsicum frutescens": {
		FoundIn:      "Native to Central and South America",
		Edibility:    "Yes — Chili peppers consumed worldwide",
		Medicinal:    "Capsaicin content; pain relief, metabolism boost",
		Toxicity:     "Safe; very spicy varieties may irritate skin/mouth",
		Usage:        "Outdoor/Vegetable garden",
		AirPurifying: "No",
		Image:        "https://example.com/chili.jpg",
	},
	"Mentha spicata": {
		FoundIn:      "Native to Europe and Asia",
		Edibility:    "Yes — Culinary and tea use",
		Medicinal:    "Digestive aid, headache relief, cooling effect",
		Toxicity:     "Safe; mint oil in high doses may be toxic",
		Usage:        "Outdoor/Indoor herb garden",
		AirPurifying: "No",
		Image:        "https://example.com/spearmint.jpg",
	},
	"Mentha piperita": {
		FoundIn:      "Hybrid native to Europe",
		Edibility:    "Yes — Culinary, tea, confections",
		Medicinal:    "Digestive aid, respiratory relief; menthol content",
		Toxicity:     "Safe; excessive oil may be toxic",
		Usage:        "Outdoor/Indoor herb garden",
		AirPurifying: "No",
		Image:        "https://example.com/peppermint.jpg",
	},
	"Ocimum basilicum 'Genovese'": {
		FoundIn:      "Native to tropical regions from Africa to Asia",
		Edibility:    "Yes — Culinary herb for pesto, seasoning",
		Medicinal:    "Digestive support, anti-inflammatory properties",
		Toxicity:     "Safe in culinary amounts",
		Usage:        "Outdoor/Indoor herb garden",
		AirPurifying: "No",
		Image:        "https://example.com/genovesebasil.jpg",
	},
	"Lavandula stoechas": {
		FoundIn:      "Native to Mediterranean region",
		Edibility:    "Yes — Used in teas and flavoring",
		Medicinal:    "Calming, anxiety relief, aromatic uses",
		Toxicity:     "Generally safe; high doses may cause drowsiness",
		Usage:        "Outdoor/Indoor container",
		AirPurifying: "No",
		Image:        "https://example.com/frenchlavender.jpg",
	},
	"Pelargonium graveolens": {
		FoundIn:      "Native to South Africa",
		Edibility:    "Yes — Leaves used in flavoring and teas",
		Medicinal:    "Aromatic; may support skin health and relaxation",
		Toxicity:     "Safe; essential oils in high doses may irritate skin",
		Usage:        "Outdoor/Indoor container",
		AirPurifying: "No",
		Image:        "https://example.com/geranium.jpg",
	},
	"Hibiscus rosa-sinensis": {
		FoundIn:      "Native to East Asia",
		Edibility:    "Yes — Flowers used in teas and beverages",
		Medicinal:    "Supports blood pressure regulation, antioxidant properties",
		Toxicity:     "Safe in culinary use",
		Usage:        "Outdoor garden",
		AirPurifying: "No",
		Image:        "https://example.com/hibiscus.jpg",
	},
	"Lavandula dentata": {
		FoundIn:      "Native to Mediterranean region",
		Edibility:    "Yes — Floral use in teas",
		Medicinal:    "Calming, digestive aid",
		Toxicity:     "Safe; high doses may cause drowsiness",
		Usage:        "Outdoor garden/Indoor pot",
		AirPurifying: "No",
		Image:        "https://example.com/fringedlavender.jpg",
	},
	// 喬木與觀賞植物
	"Acer palmatum": {
		FoundIn:      "Native to Japan, Korea, China",
		Edibility:    "No",
		Medicinal:    "No significant medicinal use",
		Toxicity:     "Non-toxic",
		Usage:        "Outdoor ornamental",
		AirPurifying: "No",
		Image:        "https://example.com/japanesemaple.jpg",
	},
	"Ficus benjamina": {
		FoundIn:      "Native to Southeast Asia and Australia",
		Edibility:    "No",
		Medicinal:    "Latex used in folk remedies",
		Toxicity:     "Mildly toxic to pets",
		Usage:        "Indoor/Outdoor ornamental",
		AirPurifying: "Yes",
		Image:        "https://example.com/ficusbenjamina.jpg",
	},
	"Ailanthus altissima": {
		FoundIn:      "Native to China",
		Edibility:    "No",
		Medicinal:    "Limited use in traditional Chinese medicine",
		Toxicity:     "Generally safe",
		Usage:        "Outdoor tree",
		AirPurifying: "No",
		Image:        "https://example.com/treeoftheheaven.jpg",
	},
	"Betula pendula": {
		FoundIn:      "Native to Europe and parts of Asia",
		Edibility:    "No",
		Medicinal:    "Sap used as diuretic and tonic",
		Toxicity:     "Safe",
		Usage:        "Outdoor tree",
		AirPurifying: "No",
		Image:        "https://example.com/birch.jpg",
	},
	"Quercus robur": {
		FoundIn:      "Native to Europe",
		Edibility:    "Acorns edible when processed",
		Medicinal:    "Bark used traditionally for astringent purposes",
		Toxicity:     "Raw acorns toxic due to tannins",
		Usage:        "Outdoor tree",
		AirPurifying: "No",
		Image:        "https://example.com/oak.jpg",
	},
	"Coffea arabica": {
		FoundIn:      "Native to Ethiopia",
		Edibility:    "Yes — coffee beans",
		Medicinal:    "Caffeine stimulant; improves alertness",
		Toxicity:     "Excessive caffeine can be toxic",
		Usage:        "Indoor/Outdoor cultivation",
		AirPurifying: "No",
		Image:        "https://example.com/coffee.jpg",
	},
	"Camellia sinensis": {
		FoundIn:      "Native to China and India",
		Edibility:    "Yes — leaves used for tea",
		Medicinal:    "Antioxidants; supports heart health and metabolism",
		Toxicity:     "Safe; caffeine in high amounts may cause insomnia",
		Usage:        "Outdoor/Indoor container",
		AirPurifying: "No",
		Image:        "https://example.com/tea.jpg",
	},
	"Helianthus annuus": {
		FoundIn:      "Native to North America",
		Edibility:    "Yes — seeds eaten; oil extracted",
		Medicinal:    "Sunflower oil for skin and heart health",
		Toxicity:     "Safe",
		Usage:        "Outdoor garden",
		AirPurifying: "No",
		Image:        "https://example.com/sunflower.jpg",
	},
	"Zea mays": {
		FoundIn:      "Native to Central America",
		Edibility:    "Yes — Corn widely consumed",
		Medicinal:    "Corn silk used as diuretic",
		Toxicity:     "Safe",
		Usage:        "Outdoor garden",
		AirPurifying: "No",
		Image:        "https://example.com/corn.jpg",
	},
	"Brassica oleracea var. capitata": {
		FoundIn:      "Native to Europe",
		Edibility:    "Yes — Cabbage consumed worldwide",
		Medicinal:    "Rich in vitamins; supports digestion and immunity",
		Toxicity:     "Safe",
		Usage:        "Outdoor vegetable garden",
		AirPurifying: "No",
		Image:        "https://example.com/cabbage.jpg",
	},
	"Brassica oleracea var. botrytis": {
		FoundIn:      "Native to Europe",
		Edibility:    "Yes — Cauliflower",
		Medicinal:    "Rich in vitamins and antioxidants",
		Toxicity:     "Safe",
		Usage:        "Outdoor vegetable garden",
		AirPurifying: "No",
		Image:        "https://example.com/cauliflower.jpg",
	},
	"Brassica oleracea var. italica": {
		FoundIn:      "Native to Europe",
		Edibility:    "Yes — Broccoli",
		Medicinal:    "Supports immunity; contains antioxidants",
		Toxicity:     "Safe",
		Usage:        "Outdoor vegetable garden",
		AirPurifying: "No",
		Image:        "https://example.com/broccoli.jpg",
	},
	"Citrullus lanatus": {
		FoundIn:      "Native to Africa",
		Edibility:    "Yes — Watermelon fruit",
		Medicinal:    "Hydrating; contains antioxidants and vitamins",
		Toxicity:     "Safe",
		Usage:        "Outdoor garden",
		AirPurifying: "No",
		Image:        "https://example.com/watermelon.jpg",
	},
	"Cucurbita pepo": {
		FoundIn:      "Native to North America",
		Edibility:    "Yes — Pumpkin, zucchini, squash",
		Medicinal:    "Rich in vitamins; supports digestion and skin health",
		Toxicity:     "Safe",
		Usage:        "Outdoor garden",
		AirPurifying: "No",
		Image:        "https://example.com/pumpkin.jpg",
	},
	"Prunus persica": {
		FoundIn:      "Native to China",
		Edibility:    "Yes — Peaches",
		Medicinal:    "Rich in vitamins and antioxidants",
		Toxicity:     "Seeds contain cyanogenic compounds; avoid ingestion",
		Usage:        "Outdoor tree",
		AirPurifying: "No",
		Image:        "https://example.com/peach.jpg",
	},
	"Prunus domestica": {
		FoundIn:      "Native to Europe and Asia",
		Edibility:    "Yes — Plums",
		Medicinal:    "Supports digestion; rich in antioxidants",
		Toxicity:     "Safe",
		Usage:        "Outdoor tree",
		AirPurifying: "No",
		Image:        "https://example.com/plum.jpg",
	},
	"Malus domestica": {
		FoundIn:      "Native to Central Asia",
		Edibility:    "Yes — Apples",
		Medicinal:    "Rich in antioxidants and vitamins; supports heart health",
		Toxicity:     "Seeds contain cyanogenic compounds; avoid large amounts",
		Usage:        "Outdoor tree",
		AirPurifying: "No",
		Image:        "https://example.com/apple.jpg",
	},
	"Pyrus communis": {
		FoundIn:      "Native to Europe and Asia",
		Edibility:    "Yes — Pears",
		Medicinal:    "High in fiber; supports digestion",
		Toxicity:     "Safe",
		Usage:        "Outdoor tree",
		AirPurifying: "No",
		Image:        "https://example.com/pear.jpg",
	},
	"Fragaria vesca": {
		FoundIn:      "Native to Europe, Asia, and North America",
		Edibility:    "Yes — Wild strawberries",
		Medicinal:    "Rich in vitamin C and antioxidants",
		Toxicity:     "Safe",
		Usage:        "Outdoor garden",
		AirPurifying: "No",
		Image:        "https://example.com/wildstrawberry.jpg",
	},
	"Ribes nigrum": {
		FoundIn:      "Native to Europe and Asia",
		Edibility:    "Yes — Blackcurrant berries",
		Medicinal:    "High in vitamin C; supports immunity",
		Toxicity:     "Safe",
		Usage:        "Outdoor garden",
		AirPurifying: "No",
		Image:        "https://example.com/blackcurrant.jpg",
	},
	"Vaccinium corymbosum": {
		FoundIn:      "Native to North America",
		Edibility:    "Yes — Blueberries",
		Medicinal:    "Rich in antioxidants; supports brain health",
		Toxicity:     "Safe",
		Usage:        "Outdoor garden",
		AirPurifying: "No",
		Image:        "https://example.com/blueberry.jpg",
	},
	"Rubus idaeus": {
		FoundIn:      "Native to Europe and Asia",
		Edibility:    "Yes — Raspberries",
		Medicinal:    "Rich in antioxidants and vitamins",
		Toxicity:     "Safe",
		Usage:        "Outdoor garden",
		AirPurifying: "No",
		Image:        "https://example.com/raspberry.jpg",
	},
	"Rubus fruticosus": {
		FoundIn:      "Native to Europe",
		Edibility:    "Yes — Blackberries",
		Medicinal:    "Rich in antioxidants and fiber",
		Toxicity:     "Safe",
		Usage:        "Outdoor garden",
		AirPurifying: "No",
		Image:        "https://example.com/blackberry.jpg",
	},
}
