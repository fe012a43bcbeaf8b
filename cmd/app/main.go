package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"user-actions-backend/internal/config"
	"user-actions-backend/internal/notifier"
	"user-actions-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	app.Use(logger.New())
	setupCORS(app)

	var repo user.Repository
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()

		// ensure the backing table exists; id is identity-generated and
		// email carries the unique constraint
		if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE,
			age INT NOT NULL DEFAULT 0,
			created_at TEXT
		)`); err != nil {
			panic(err)
		}

		repo = user.NewPostgresRepository(db)
	} else {
		log.Println("DATABASE_URL is not set, using in-memory store")
		repo = user.NewInMemoryRepository(nil)
	}

	var n notifier.Notifier
	if len(cfg.KafkaBrokers) > 0 {
		kafkaNotifier, err := notifier.NewKafkaNotifier(cfg.KafkaClientID, cfg.KafkaBrokers)
		if err != nil {
			panic(err)
		}
		defer kafkaNotifier.Close()
		n = kafkaNotifier
	} else {
		log.Println("KAFKA_BROKERS is not set, notifications will only be logged")
		n = notifier.NewLogNotifier()
	}

	service := user.NewService(repo)
	handler := user.NewHandler(service, n, cfg.KafkaTopic)
	handler.RegisterRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}
