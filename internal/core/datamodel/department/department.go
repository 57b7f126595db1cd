package department

// Department is the persistence model for the departments table.
type Department struct {
	ID          int64   `gorm:"primaryKey"`
	Name        string  `gorm:"uniqueIndex;not null"`
	Description *string `gorm:""`
	HeadID      *int64  `gorm:"column:head_id"`
	Icon        string  `gorm:"not null"`
	Color       string  `gorm:"not null"`
	MemberCount int     `gorm:"column:member_count;default:0"`
}

func (Department) TableName() string {
	return "departments"
}
