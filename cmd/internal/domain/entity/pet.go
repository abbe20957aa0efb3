package entity

type Pet struct {
	ID        int    `gorm:"primaryKey"`
	UserID    int    `gorm:"not null;index"` // References: users(id)
	Name      string `gorm:"not null"`
	Species   string `gorm:"not null"`
	Breed     string `gorm:"not null"`
	Age       *int
	Weight    *float64
	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null"`

	// Relations
	Owner User `gorm:"foreignKey:UserID;references:ID"`
}
