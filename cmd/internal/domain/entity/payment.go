package entity

type Payment struct {
	ID        int     `gorm:"primaryKey"`
	UserID    int     `gorm:"not null;index"` // References: users(id)
	Date      int64   `gorm:"not null"`       // assigned by the server at creation
	Amount    float64 `gorm:"not null"`
	Status    string  `gorm:"not null"`
	CreatedAt int64   `gorm:"not null"`
}
