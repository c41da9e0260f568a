package stores

import (
	"context"
	"errors"
	"strings"

	"github.com/Govind-619/BookNook/models"
	"github.com/Govind-619/BookNook/utils"

	"gorm.io/gorm"
)

// CatalogStore reads and writes books in the relational catalog. Every
// call opens its own connection and closes it before returning.
type CatalogStore struct {
	open Opener
}

// NewCatalogStore returns a CatalogStore using open for each operation
func NewCatalogStore(open Opener) (*CatalogStore, error) {
	if open == nil {
		return nil, errors.New("catalog opener is required")
	}
	return &CatalogStore{open: open}, nil
}

// ListBooks returns every book, newest id first
func (s *CatalogStore) ListBooks(ctx context.Context) ([]models.Book, error) {
	books := []models.Book{}
	err := withDB(s.open, func(db *gorm.DB) error {
		return db.WithContext(ctx).Order("book_id DESC").Find(&books).Error
	})
	if err != nil {
		return nil, utils.InternalError(utils.ErrFetchBooks, err)
	}
	return books, nil
}

// AddBook inserts a book. Title and author are required.
func (s *CatalogStore) AddBook(ctx context.Context, input models.BookInput) error {
	if input.Title == "" || input.Author == "" {
		return utils.BadRequestError(utils.ErrBookFieldsRequired, nil)
	}

	book := models.Book{
		Title:           input.Title,
		Author:          input.Author,
		PublicationYear: input.PublicationYear,
		ImageURL:        input.ImageURL,
	}
	err := withDB(s.open, func(db *gorm.DB) error {
		return db.WithContext(ctx).Create(&book).Error
	})
	if err != nil {
		return utils.InternalError(utils.ErrAddBook, err)
	}
	utils.LogDebug("Added book %d: %s", book.BookID, book.Title)
	return nil
}

// SearchBooks returns books whose title or author contains q, ignoring
// case. An empty q matches every book.
func (s *CatalogStore) SearchBooks(ctx context.Context, q string) ([]models.Book, error) {
	pattern := "%" + strings.ToLower(q) + "%"
	books := []models.Book{}
	err := withDB(s.open, func(db *gorm.DB) error {
		return db.WithContext(ctx).
			Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", pattern, pattern).
			Find(&books).Error
	})
	if err != nil {
		return nil, utils.InternalError(utils.ErrSearchBooks, err)
	}
	return books, nil
}
