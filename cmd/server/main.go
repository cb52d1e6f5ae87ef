package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prompt-trainer/backend/internal/auth"
	"github.com/prompt-trainer/backend/internal/config"
	"github.com/prompt-trainer/backend/internal/database"
	"github.com/prompt-trainer/backend/internal/evaluation"
	"github.com/prompt-trainer/backend/internal/evaluator"
	"github.com/prompt-trainer/backend/internal/examples"
	"github.com/prompt-trainer/backend/internal/middleware"
	"github.com/prompt-trainer/backend/internal/quiz"
	"github.com/prompt-trainer/backend/internal/scoring"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	rubric, err := scoring.ByVersion(cfg.RubricVersion)
	if err != nil {
		log.Fatalf("Invalid rubric configuration: %v", err)
	}
	log.Printf("Scoring with rubric %s", rubric.Version)

	// Persistence is optional: without a database URL the service
	// still evaluates, quizzes, and serves examples.
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("No database configured; running without persistence")
	}

	bank, err := quiz.LoadBank(cfg.QuizPath)
	if err != nil {
		log.Fatalf("Failed to load quiz bank: %v", err)
	}
	log.Printf("Loaded %d quiz items", bank.Len())

	engine := scoring.NewEngine(rubric)
	ev := evaluator.New(engine, cfg.Evaluator)

	var evalStore *evaluation.Store
	var quizStore *quiz.Store
	if db != nil {
		evalStore = evaluation.NewStore(db)
		quizStore = quiz.NewStore(db)
	}

	secret := []byte(cfg.JWTSecret)
	evalHandler := evaluation.NewHandler(ev, evalStore, cfg.MaxPromptLen)
	quizHandler := quiz.NewHandler(bank, quizStore)
	examplesHandler := examples.NewHandler(examples.NewStore(cfg.ExamplesPath))

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes; evaluate and quiz submit pick up user identity
	// when a token is present.
	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth(secret))
	public.HandleFunc("/evaluate", evalHandler.Evaluate).Methods("POST")
	public.HandleFunc("/quiz", quizHandler.List).Methods("GET")
	public.HandleFunc("/quiz/submit", quizHandler.Submit).Methods("POST")
	public.HandleFunc("/examples", examplesHandler.List).Methods("GET")

	if db != nil {
		authHandler := auth.NewHandler(db, secret)
		api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
		api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

		protected := api.PathPrefix("").Subrouter()
		protected.Use(middleware.Auth(secret))
		protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
		protected.HandleFunc("/history/evaluations", evalHandler.History).Methods("GET")
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	log.Printf("Server starting on %s", cfg.HTTPAddress())
	if err := http.ListenAndServe(cfg.HTTPAddress(), handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
