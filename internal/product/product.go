package product

type Product struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func Fixed() []Product {
	return []Product{
		{ID: 1, Name: "Widget"},
		{ID: 2, Name: "Gadget"},
	}
}
