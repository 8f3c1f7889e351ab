package address

// Address is a saved shipping address. Checkout can reference one by id
// to prefill the shipping form.
type Address struct {
	ID        int    `json:"addressId"`
	UserID    int    `json:"userId"`
	Label     string `json:"label"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
