package models

// Warehouseman is an operator identity resolved from a secret key.
type Warehouseman struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	DOB         string `json:"dob"`
	City        string `json:"city"`
	SecretKey   string `json:"secretKey"`
	WarehouseID ID     `json:"warehouseId"`
}

// Profile is the public view of a Warehouseman, without the secret key.
type Profile struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	DOB         string `json:"dob"`
	City        string `json:"city"`
	WarehouseID ID     `json:"warehouseId"`
}

// Profile strips the credential from the record.
func (w Warehouseman) Profile() Profile {
	return Profile{
		ID:          w.ID,
		Name:        w.Name,
		DOB:         w.DOB,
		City:        w.City,
		WarehouseID: w.WarehouseID,
	}
}
