package domain

// Address is a postal address owned by exactly one user. Street, district,
// city and state are filled from the postal enrichment lookup at write time
// and are never supplied by the caller. Ownership never changes after
// creation.
type Address struct {
	ID         string `json:"id"`
	ZipCode    string `json:"zip_code"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	Street     string `json:"street"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	UserID     string `json:"user_id"`
}

// PostalAddress is the result of a postal-code enrichment lookup.
type PostalAddress struct {
	Street   string
	District string
	City     string
	State    string
}
