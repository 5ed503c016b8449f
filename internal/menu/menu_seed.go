package menu

// Seeded catalog. Prices are authored the way the storefront displays them
// and go through pricing.ParseBRL exactly once, at load.
type seedItem struct {
	id       string
	name     string
	category string
	price    string
}

var seedItems = []seedItem{
	{id: "pastel-carne", name: "Pastel de Carne", category: "Pastéis", price: "R$ 8,50"},
	{id: "pastel-queijo", name: "Pastel de Queijo", category: "Pastéis", price: "R$ 8,00"},
	{id: "pastel-frango", name: "Pastel de Frango com Catupiry", category: "Pastéis", price: "R$ 9,50"},
	{id: "pastel-pizza", name: "Pastel de Pizza", category: "Pastéis", price: "R$ 8,50"},
	{id: "pastel-especial", name: "Pastel Especial da Casa", category: "Pastéis", price: "R$ 12,90"},
	{id: "coxinha", name: "Coxinha de Frango", category: "Salgados", price: "R$ 6,50"},
	{id: "kibe", name: "Kibe", category: "Salgados", price: "R$ 6,00"},
	{id: "caldo-cana-300", name: "Caldo de Cana 300ml", category: "Bebidas", price: "R$ 5,00"},
	{id: "caldo-cana-500", name: "Caldo de Cana 500ml", category: "Bebidas", price: "R$ 7,00"},
	{id: "suco-laranja", name: "Suco de Laranja", category: "Bebidas", price: "R$ 8,00"},
	{id: "refrigerante-lata", name: "Refrigerante Lata", category: "Bebidas", price: "R$ 6,00"},
	{id: "agua-mineral", name: "Água Mineral", category: "Bebidas", price: "R$ 4,00"},
}
