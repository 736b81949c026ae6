package models

// Fixed geographic and commerce vocabularies for generated records. These are
// deliberately small, closed lists so downstream fixtures see repeated values
// the way real regional data does.

// BrazilianStates holds the 27 two-letter state codes.
var BrazilianStates = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA",
	"MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN",
	"RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// BrazilianCities holds the major cities customers are assigned to.
var BrazilianCities = []string{
	"São Paulo", "Rio de Janeiro", "Brasília", "Salvador", "Fortaleza",
	"Belo Horizonte", "Manaus", "Curitiba", "Recife", "Porto Alegre",
	"Goiânia", "Belém", "Guarulhos", "Campinas", "São Luís",
	"São Gonçalo", "Maceió", "Duque de Caxias", "Natal", "Teresina",
}

// ProductCategories is the closed category list; categories without an entry
// in ProductsByCategory get synthesized generic names.
var ProductCategories = []string{
	"Electronics", "Clothing", "Books", "Home & Garden", "Sports",
	"Beauty", "Food", "Toys", "Automotive", "Health",
}

// ProductsByCategory maps a category to its fixed product name vocabulary.
var ProductsByCategory = map[string][]string{
	"Electronics": {
		"Galaxy S23 Smartphone", "Dell Inspiron Laptop", "Bluetooth Headphones",
		"55\" Smart TV", "iPad Tablet", "Canon Digital Camera", "PlayStation 5 Console",
	},
	"Clothing": {
		"Basic T-Shirt", "Denim Jeans", "Casual Dress", "Leather Jacket",
		"Sports Sneakers", "Social Blazer", "Summer Shorts",
	},
	"Books": {
		"The Lord of the Rings", "Harry Potter", "The Great Gatsby", "1984",
		"To Kill a Mockingbird", "Pride and Prejudice", "The Catcher in the Rye",
	},
	"Home & Garden": {
		"Decorative Vase", "Table Lamp", "Cookware Set", "Dining Table",
		"3-Seater Sofa", "Persian Rug", "Abstract Painting",
	},
	"Sports": {
		"Soccer Ball", "Tennis Racket", "Mountain Bike",
		"Surfboard", "Gym Weights", "Running Shoes",
	},
}

// OrderStatuses is the fixed status vocabulary.
var OrderStatuses = []string{
	"pending", "processing", "shipped", "delivered", "cancelled", "returned",
}

// PaymentMethods is the fixed payment method vocabulary.
var PaymentMethods = []string{
	"credit_card", "debit_card", "pix", "boleto", "paypal", "cash",
}
