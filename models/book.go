package models

// Book represents a row in the catalog store
type Book struct {
	BookID          uint    `gorm:"column:book_id;primaryKey;autoIncrement" json:"book_id"`
	Title           string  `gorm:"not null" json:"title"`
	Author          string  `gorm:"not null" json:"author"`
	PublicationYear *int    `json:"publication_year"`
	ImageURL        *string `json:"image_url"`
}

// TableName keeps the table name used by existing catalog files
func (Book) TableName() string {
	return "Books"
}

// BookInput is the payload accepted by the add book endpoint
type BookInput struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	PublicationYear *int    `json:"publication_year"`
	ImageURL        *string `json:"image_url"`
}
