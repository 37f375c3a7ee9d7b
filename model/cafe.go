package model

type Cafe struct {
	ID           uint    `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name         string  `json:"name" gorm:"column:name;size:250;uniqueIndex;not null"`
	MapURL       string  `json:"map_url" gorm:"column:map_url;size:500;not null"`
	ImgURL       string  `json:"img_url" gorm:"column:img_url;size:500;not null"`
	Location     string  `json:"location" gorm:"column:location;size:250;not null"`
	Seats        string  `json:"seats" gorm:"column:seats;size:250;not null"`
	HasToilet    bool    `json:"has_toilet" gorm:"column:has_toilet;not null"`
	HasWifi      bool    `json:"has_wifi" gorm:"column:has_wifi;not null"`
	HasSockets   bool    `json:"has_sockets" gorm:"column:has_sockets;not null"`
	CanTakeCalls bool    `json:"can_take_calls" gorm:"column:can_take_calls;not null"`
	CoffeePrice  *string `json:"coffee_price" gorm:"column:coffee_price;size:250"`
}

// TableName keeps the table named after the record type; the default
// pluralizer would turn "cafe" into "caves".
func (Cafe) TableName() string { return "cafe" }

// ToMap lists every column of the row. A missing coffee price is
// reported as nil so it encodes to JSON null.
func (c Cafe) ToMap() map[string]any {
	var price any
	if c.CoffeePrice != nil {
		price = *c.CoffeePrice
	}
	return map[string]any{
		"id":             c.ID,
		"name":           c.Name,
		"map_url":        c.MapURL,
		"img_url":        c.ImgURL,
		"location":       c.Location,
		"seats":          c.Seats,
		"has_toilet":     c.HasToilet,
		"has_wifi":       c.HasWifi,
		"has_sockets":    c.HasSockets,
		"can_take_calls": c.CanTakeCalls,
		"coffee_price":   price,
	}
}
