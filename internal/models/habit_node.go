package models

// HabitNode is a static catalog entry in the habit tree. Rows are created
// by the seeder only; the API treats the catalog as read-only.
type HabitNode struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	Category string `gorm:"type:varchar(100);not null" json:"category"`
	Title    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"title"`
	Tier     int    `gorm:"not null" json:"tier"`
	Order    int    `gorm:"column:order;not null" json:"order"`
	XPValue  int    `gorm:"column:xp_value;not null" json:"xpValue"`
}
