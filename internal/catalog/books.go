package catalog

import "github.com/pagemark/bookstore/internal/models"

// Books is the static seed catalog: fiction, non-fiction, comics and
// feel-good titles. The dev backend loads it into its products table and
// view code queries it directly when the backend is unreachable.
var Books = []models.Product{
	{
		ID:              1,
		Title:           "The Seven Husbands of Evelyn Hugo",
		Author:          "Taylor Jenkins Reid",
		Price:           599,
		DiscountedPrice: 449,
		ImageURL:        "https://picsum.photos/280/400?random=1",
		Description:     "A reclusive Hollywood icon finally tells her story to a young journalist, revealing seven marriages and countless secrets.",
		Category:        "fiction",
		Genre:           "Contemporary Fiction",
		Publisher:       "Atria Books",
		Language:        "English",
		Quantity:        45,
		AverageRating:   4.6,
		NumRatings:      1250,
	},
	{
		ID:              2,
		Title:           "Where the Crawdads Sing",
		Author:          "Delia Owens",
		Price:           650,
		DiscountedPrice: 520,
		ImageURL:        "https://picsum.photos/280/400?random=2",
		Description:     "A mystery and coming-of-age story set in the marshlands of North Carolina.",
		Category:        "fiction",
		Genre:           "Mystery Fiction",
		Publisher:       "G.P. Putnam's Sons",
		Language:        "English",
		Quantity:        32,
		AverageRating:   4.4,
		NumRatings:      2100,
	},
	{
		ID:              3,
		Title:           "The Midnight Library",
		Author:          "Matt Haig",
		Price:           550,
		DiscountedPrice: 440,
		ImageURL:        "https://picsum.photos/280/400?random=3",
		Description:     "Between life and death there is a library, and within that library, the shelves go on forever.",
		Category:        "feel-good",
		Genre:           "Philosophical Fiction",
		Publisher:       "Canongate Books",
		Language:        "English",
		Quantity:        28,
		AverageRating:   4.2,
		NumRatings:      890,
	},
	{
		ID:              4,
		Title:           "The Song of Achilles",
		Author:          "Madeline Miller",
		Price:           575,
		DiscountedPrice: 460,
		ImageURL:        "https://picsum.photos/280/400?random=4",
		Description:     "A tale of gods, kings, immortal fame and the human heart, retelling the story of Achilles and Patroclus.",
		Category:        "fiction",
		Genre:           "Historical Fiction",
		Publisher:       "Ecco",
		Language:        "English",
		Quantity:        22,
		AverageRating:   4.7,
		NumRatings:      1680,
	},
	{
		ID:              5,
		Title:           "Klara and the Sun",
		Author:          "Kazuo Ishiguro",
		Price:           625,
		DiscountedPrice: 500,
		ImageURL:        "https://picsum.photos/280/400?random=5",
		Description:     "A thrilling book that offers a look at our changing world through the eyes of an unforgettable narrator.",
		Category:        "fiction",
		Genre:           "Science Fiction",
		Publisher:       "Faber & Faber",
		Language:        "English",
		Quantity:        35,
		AverageRating:   4.1,
		NumRatings:      756,
	},
	{
		ID:              6,
		Title:           "Educated",
		Author:          "Tara Westover",
		Price:           699,
		DiscountedPrice: 559,
		ImageURL:        "https://picsum.photos/280/400?random=6",
		Description:     "A memoir about a young girl who, kept out of school, leaves her survivalist family and goes on to earn a PhD from Cambridge.",
		Category:        "non-fiction",
		Genre:           "Memoir",
		Publisher:       "Random House",
		Language:        "English",
		Quantity:        40,
		AverageRating:   4.5,
		NumRatings:      1890,
	},
	{
		ID:              7,
		Title:           "Sapiens: A Brief History of Humankind",
		Author:          "Yuval Noah Harari",
		Price:           750,
		DiscountedPrice: 600,
		ImageURL:        "https://picsum.photos/280/400?random=7",
		Description:     "How did our species succeed in the battle for dominance? Why did our foraging ancestors come together to create cities and kingdoms?",
		Category:        "non-fiction",
		Genre:           "History",
		Publisher:       "Harper",
		Language:        "English",
		Quantity:        55,
		AverageRating:   4.3,
		NumRatings:      2340,
	},
	{
		ID:              8,
		Title:           "Atomic Habits",
		Author:          "James Clear",
		Price:           650,
		DiscountedPrice: 520,
		ImageURL:        "https://picsum.photos/280/400?random=8",
		Description:     "An easy & proven way to build good habits & break bad ones. Tiny changes, remarkable results.",
		Category:        "non-fiction",
		Genre:           "Self-Help",
		Publisher:       "Avery",
		Language:        "English",
		Quantity:        48,
		AverageRating:   4.4,
		NumRatings:      1567,
	},
	{
		ID:              9,
		Title:           "Watchmen",
		Author:          "Alan Moore",
		Price:           899,
		DiscountedPrice: 719,
		ImageURL:        "https://picsum.photos/280/400?random=9",
		Description:     "A gripping, labyrinthine piece of comic art, a landmark in the graphic novel medium.",
		Category:        "comics",
		Genre:           "Graphic Novel",
		Publisher:       "DC Comics",
		Language:        "English",
		Quantity:        25,
		AverageRating:   4.6,
		NumRatings:      890,
	},
	{
		ID:              10,
		Title:           "Maus I: A Survivor's Tale",
		Author:          "Art Spiegelman",
		Price:           750,
		DiscountedPrice: 600,
		ImageURL:        "https://picsum.photos/280/400?random=10",
		Description:     "A brutally moving work of art—widely hailed as the greatest graphic novel ever written.",
		Category:        "comics",
		Genre:           "Historical Graphic Novel",
		Publisher:       "Pantheon Books",
		Language:        "English",
		Quantity:        18,
		AverageRating:   4.5,
		NumRatings:      1234,
	},
	{
		ID:              11,
		Title:           "Persepolis",
		Author:          "Marjane Satrapi",
		Price:           695,
		DiscountedPrice: 556,
		ImageURL:        "https://picsum.photos/280/400?random=11",
		Description:     "The story of a precocious and outspoken Iranian girl's coming of age during the Islamic Revolution.",
		Category:        "comics",
		Genre:           "Autobiographical Graphic Novel",
		Publisher:       "Pantheon Books",
		Language:        "English",
		Quantity:        22,
		AverageRating:   4.4,
		NumRatings:      987,
	},
	{
		ID:              12,
		Title:           "The House in the Cerulean Sea",
		Author:          "TJ Klune",
		Price:           525,
		DiscountedPrice: 420,
		ImageURL:        "https://picsum.photos/280/400?random=12",
		Description:     "A magical and heartwarming story about found family, love, and the power of being true to yourself.",
		Category:        "feel-good",
		Genre:           "Fantasy Romance",
		Publisher:       "Tor Books",
		Language:        "English",
		Quantity:        38,
		AverageRating:   4.7,
		NumRatings:      1456,
	},
	{
		ID:              13,
		Title:           "Beach Read",
		Author:          "Emily Henry",
		Price:           475,
		DiscountedPrice: 380,
		ImageURL:        "https://picsum.photos/280/400?random=13",
		Description:     "A romance writer who no longer believes in love and a literary writer stuck in a rut engage in a summer-long challenge.",
		Category:        "feel-good",
		Genre:           "Contemporary Romance",
		Publisher:       "Berkley",
		Language:        "English",
		Quantity:        42,
		AverageRating:   4.3,
		NumRatings:      1123,
	},
	{
		ID:              14,
		Title:           "The Alchemist",
		Author:          "Paulo Coelho",
		Price:           399,
		DiscountedPrice: 319,
		ImageURL:        "https://picsum.photos/280/400?random=14",
		Description:     "A magical story that inspires us to follow our dreams and listen to our hearts.",
		Category:        "feel-good",
		Genre:           "Philosophical Fiction",
		Publisher:       "HarperOne",
		Language:        "English",
		Quantity:        65,
		AverageRating:   4.2,
		NumRatings:      2890,
	},
	{
		ID:              15,
		Title:           "The Silent Patient",
		Author:          "Alex Michaelides",
		Price:           550,
		DiscountedPrice: 440,
		ImageURL:        "https://picsum.photos/280/400?random=15",
		Description:     "A woman's act of violence against her husband and her refusal to speak sends shockwaves through London.",
		Category:        "fiction",
		Genre:           "Psychological Thriller",
		Publisher:       "Celadon Books",
		Language:        "English",
		Quantity:        33,
		AverageRating:   4.1,
		NumRatings:      1678,
	},
	{
		ID:              16,
		Title:           "Normal People",
		Author:          "Sally Rooney",
		Price:           525,
		DiscountedPrice: 420,
		ImageURL:        "https://picsum.photos/280/400?random=16",
		Description:     "A story of mutual fascination, friendship and love between two people who change each other's lives.",
		Category:        "fiction",
		Genre:           "Literary Fiction",
		Publisher:       "Hogarth",
		Language:        "English",
		Quantity:        29,
		AverageRating:   4.0,
		NumRatings:      1345,
	},
	{
		ID:              17,
		Title:           "Becoming",
		Author:          "Michelle Obama",
		Price:           799,
		DiscountedPrice: 639,
		ImageURL:        "https://picsum.photos/280/400?random=17",
		Description:     "An intimate, powerful, and inspiring memoir by the former First Lady of the United States.",
		Category:        "non-fiction",
		Genre:           "Biography",
		Publisher:       "Crown",
		Language:        "English",
		Quantity:        44,
		AverageRating:   4.6,
		NumRatings:      2567,
	},
	{
		ID:              18,
		Title:           "The Power of Now",
		Author:          "Eckhart Tolle",
		Price:           450,
		DiscountedPrice: 360,
		ImageURL:        "https://picsum.photos/280/400?random=18",
		Description:     "A guide to spiritual enlightenment that has the power to transform your life.",
		Category:        "non-fiction",
		Genre:           "Spirituality",
		Publisher:       "New World Library",
		Language:        "English",
		Quantity:        51,
		AverageRating:   4.2,
		NumRatings:      1789,
	},
}

// Featured returns the carousel picks.
func Featured() []models.Product {
	return []models.Product{
		Books[0],  // The Seven Husbands of Evelyn Hugo
		Books[2],  // The Midnight Library
		Books[5],  // Educated
		Books[11], // The House in the Cerulean Sea
		Books[6],  // Sapiens
		Books[8],  // Watchmen
	}
}
