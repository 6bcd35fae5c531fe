package database

import (
	"database/sql"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/pagemark/bookstore/internal/catalog"
	"github.com/pagemark/bookstore/internal/models"
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'CUSTOMER',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		price REAL NOT NULL,
		discounted_price REAL,
		image_url TEXT,
		description TEXT,
		category TEXT,
		genre TEXT,
		publisher TEXT,
		language TEXT,
		quantity INTEGER,
		average_rating REAL,
		num_ratings INTEGER
	);

	CREATE TABLE IF NOT EXISTS cart_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		product_id INTEGER NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL,
		price REAL NOT NULL,
		UNIQUE(user_id, product_id)
	);

	CREATE TABLE IF NOT EXISTS reviews (
		id TEXT NOT NULL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		product_id INTEGER NOT NULL REFERENCES products(id),
		review TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS ratings (
		id TEXT NOT NULL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		product_id INTEGER NOT NULL REFERENCES products(id),
		rating INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS payment_information (
		id TEXT NOT NULL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		cardholder_name TEXT NOT NULL,
		card_number TEXT NOT NULL,
		expiration_date TEXT NOT NULL
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}

// Seed loads the static catalog and the demo account so a fresh database is
// immediately usable with the documented demo credentials.
func Seed(db *sql.DB) error {
	for _, p := range catalog.Books {
		_, err := db.Exec(`
			INSERT INTO products (id, title, author, price, discounted_price, image_url, description, category, genre, publisher, language, quantity, average_rating, num_ratings)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING`,
			p.ID, p.Title, p.Author, p.Price, p.DiscountedPrice, p.ImageURL, p.Description,
			p.Category, p.Genre, p.Publisher, p.Language, p.Quantity, p.AverageRating, p.NumRatings,
		)
		if err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users (first_name, last_name, email, password_hash, role)
		VALUES ('Test', 'User', 'test@example.com', ?, ?)
		ON CONFLICT(email) DO NOTHING`,
		string(hash), models.RoleCustomer,
	)
	return err
}
