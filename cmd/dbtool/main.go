package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"transit-delay-service/internal/adapters/repositories"
	"transit-delay-service/internal/config"
	"transit-delay-service/internal/domain"
	"transit-delay-service/internal/platform/db"
	"transit-delay-service/internal/ports"
)

// dbtool initializes the auth store schema and optionally creates an account,
// so operators can provision users without going through the HTTP API.
func main() {
	email := flag.String("email", "", "account email to create (optional)")
	password := flag.String("password", "", "account password (required with -email)")
	name := flag.String("name", "", "display name (optional)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	conn, users, err := open()
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing auth schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if *email == "" {
		return
	}
	if *password == "" {
		log.Fatal("-password is required with -email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hashing failed: %v", err)
	}

	user := domain.User{Email: *email, PasswordHash: string(hash), Name: *name}
	if err := users.CreateUser(context.Background(), user); err != nil {
		log.Fatalf("create user failed: %v", err)
	}
	log.Printf("User %s created.", *email)
}

func open() (*sql.DB, ports.UserRepository, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return pg, repositories.NewSQLUserRepository(pg), nil
	}

	dbPath := config.Get("DB_PATH", "data/auth.db")
	lite, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite database %q: %w", dbPath, err)
	}
	if err := lite.Ping(); err != nil {
		lite.Close()
		return nil, nil, fmt.Errorf("verify sqlite connection to %q: %w", dbPath, err)
	}

	return lite, repositories.NewSqliteUserRepository(lite), nil
}
