package db_models

// Category groups blog posts on the public site, one row per admin-managed
// category with a UUID primary key.
type Category struct {
	BaseModel
	Name  string     `gorm:"unique;not null"`
	Slug  string     `gorm:"uniqueIndex;not null"`
	Posts []BlogPost `gorm:"foreignKey:CategoryID"`
}
