package models

// MenuItem is read-only from the API side; the catalog is seeded
// out-of-band (see database.SeedMenu).
type MenuItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"type:varchar(100);not null" json:"name"`
	Category string  `gorm:"type:varchar(20);index" json:"category"`
	Course   string  `gorm:"type:varchar(20);index" json:"course"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL string  `gorm:"type:varchar(200)" json:"image_url"`
}
