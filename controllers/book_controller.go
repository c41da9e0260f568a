package controllers

import (
	"context"

	"github.com/Govind-619/BookNook/models"
	"github.com/Govind-619/BookNook/utils"
	"github.com/gin-gonic/gin"
)

// BookStore is the catalog accessor used by BookController
type BookStore interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	AddBook(ctx context.Context, input models.BookInput) error
	SearchBooks(ctx context.Context, q string) ([]models.Book, error)
}

// BookController serves the catalog endpoints
type BookController struct {
	Books BookStore
}

// NewBookController returns a BookController backed by books
func NewBookController(books BookStore) *BookController {
	return &BookController{Books: books}
}

// GetBooks lists every book, newest first
func (bc *BookController) GetBooks(c *gin.Context) {
	utils.LogInfo("GetBooks called")

	books, err := bc.Books.ListBooks(c.Request.Context())
	if err != nil {
		utils.LogError("Failed to fetch books: %v", err)
		utils.RespondError(c, err)
		return
	}

	utils.LogDebug("Found %d books", len(books))
	utils.List(c, books)
}

// AddBook inserts a book from the JSON body
func (bc *BookController) AddBook(c *gin.Context) {
	utils.LogInfo("AddBook called")

	var req models.BookInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid book payload: %v", err)
		utils.BadRequest(c, utils.ErrInvalidJSON)
		return
	}
	utils.LogDebug("Received book - Title: %s, Author: %s", req.Title, req.Author)

	if err := bc.Books.AddBook(c.Request.Context(), req); err != nil {
		utils.LogError("Failed to add book: %v", err)
		utils.RespondError(c, err)
		return
	}

	utils.LogInfo("Book added successfully: %s", req.Title)
	utils.Success(c, utils.MsgBookAdded)
}

// SearchBooks matches the q query parameter against titles and authors
func (bc *BookController) SearchBooks(c *gin.Context) {
	utils.LogInfo("SearchBooks called")

	q := c.Query("q")
	books, err := bc.Books.SearchBooks(c.Request.Context(), q)
	if err != nil {
		utils.LogError("Failed to search books: %v", err)
		utils.RespondError(c, err)
		return
	}

	utils.LogDebug("Search %q matched %d books", q, len(books))
	utils.List(c, books)
}
