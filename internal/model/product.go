package model

// Product is one row of the product master. The catalog is seeded
// out-of-band and is read-only to this service.
type Product struct {
	PrdID int    `gorm:"column:prd_id;primaryKey;autoIncrement" json:"PRD_ID"`
	Code  string `gorm:"column:code;type:varchar(13);uniqueIndex;not null" json:"CODE" validate:"required,max=13"`
	Name  string `gorm:"column:name;type:varchar(50);not null" json:"NAME" validate:"required,max=50"`
	Price int    `gorm:"column:price;not null" json:"PRICE" validate:"gte=0"`
}

// Keep the legacy table name so existing seed data stays reachable.
func (Product) TableName() string { return "m_product_okabe" }
