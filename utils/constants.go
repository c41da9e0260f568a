package utils

// Application constants
const (
	// Application name
	AppName = "BookNook"

	// Default port
	DefaultPort = "5001"

	// Default catalog database file
	DefaultCatalogDBPath = "db/books_writable.db"

	// Default review store location
	DefaultMongoURI        = "mongodb://127.0.0.1:27017"
	DefaultMongoDB         = "book_reviews_db"
	DefaultMongoCollection = "reviews"

	// Default logging store location
	DefaultLogDBDriver = "mysql"
	DefaultMySQLHost   = "127.0.0.1"
	DefaultMySQLPort   = "3306"
	DefaultMySQLUser   = "root"
	DefaultMySQLDB     = "books"

	// Default directories
	DefaultStaticDir = "" // empty serves the embedded assets
	DefaultLogDir    = "logs"
)

// Error messages
const (
	ErrMongoUnavailable     = "MongoDB connection failed"
	ErrBookFieldsRequired   = "Title and author are required"
	ErrReviewFieldsRequired = "Book ID and review text are required"
	ErrInvalidJSON          = "Request body must be valid JSON"

	ErrFetchBooks   = "Failed to fetch books"
	ErrAddBook      = "Failed to add book"
	ErrSearchBooks  = "Failed to search books"
	ErrFetchReviews = "Failed to fetch reviews"
	ErrAddReview    = "Failed to add review"
)

// Success messages
const (
	MsgBookAdded   = "Book added successfully"
	MsgReviewAdded = "Review added successfully"
)
