package models

// Customer is an end client. Customers are not scoped to a shop.
type Customer struct {
	Base

	Name  string  `gorm:"size:255;not null" json:"name"`
	Email *string `gorm:"size:255" json:"email"`
	Phone string  `gorm:"size:20;not null" json:"phone"`
}
