package models

type Shop struct {
	Base

	Name     string  `gorm:"size:255;not null" json:"name"`
	Address  *string `gorm:"type:text" json:"address"`
	Phone    *string `gorm:"size:20" json:"phone"`
	Email    *string `gorm:"size:255" json:"email"`
	Timezone string  `gorm:"size:50;not null" json:"timezone"`
}
