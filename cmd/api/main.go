package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-crm/internal/infra/database"
	"github.com/xavierca1/ligue-crm/internal/infra/http/handlers"
	appmiddleware "github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/infra/integration/identity"
	"github.com/xavierca1/ligue-crm/internal/infra/integration/prospector"
	"github.com/xavierca1/ligue-crm/internal/infra/mail"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
	"github.com/xavierca1/ligue-crm/internal/infra/storage"
	"github.com/xavierca1/ligue-crm/internal/infra/worker"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Store local (um blob JSON por coleção)
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	blobs, err := storage.NewFileBlobStore(dataDir)
	if err != nil {
		log.Fatal(err)
	}
	store := storage.NewCRMStore(blobs)

	// 2. Postgres, só para as rotas admin de vendedor. Sem DATABASE_URL o
	// resto do CRM funciona normalmente e as rotas admin devolvem 500.
	var db *sql.DB
	var adminRepo *database.SalespersonAdminRepository
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		adminRepo = database.NewSalespersonAdminRepository(db)
	} else {
		log.Println("⚠️ DATABASE_URL não configurada, rotas admin de vendedor desabilitadas")
	}

	// 3. Provedores externos
	var identityClient *identity.Client
	if url := os.Getenv("IDENTITY_URL"); url != "" {
		identityClient = identity.NewClient(url, os.Getenv("IDENTITY_ANON_KEY"))
	} else {
		log.Println("⚠️ IDENTITY_URL não configurada, rotas de auth devolvem 500")
	}

	var prospectorClient *prospector.Client
	if key := os.Getenv("PROSPECTOR_API_KEY"); key != "" {
		prospectorURL := os.Getenv("PROSPECTOR_URL")
		if prospectorURL == "" {
			prospectorURL = "https://api.apollo.io/v1"
		}
		prospectorClient = prospector.NewClient(prospectorURL, key)
	} else {
		log.Println("⚠️ PROSPECTOR_API_KEY não configurada, /api/companies devolve 500")
	}

	// 4. RabbitMQ + worker de notificação (opcional)
	var producer *queue.RabbitMQProducer
	var rabbitConn *queue.RabbitMQ
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitConn, err = queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"),
			os.Getenv("RABBITMQ_PASS"),
			host,
			os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitConn.Conn.Close()
		defer rabbitConn.Ch.Close()

		producer = queue.NewProducer(rabbitConn.Conn, rabbitConn.Ch)

		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), 587,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"),
		)
		stageWorker := queue.NewWorker(rabbitConn.Ch, mailSender, store)
		go stageWorker.Start(queue.QueueName)
	} else {
		log.Println("⚠️ RABBITMQ_HOST não configurado, eventos de stage desabilitados")
	}

	// 5. UseCases
	var moveUC *usecase.MoveLeadUseCase
	if producer != nil {
		moveUC = usecase.NewMoveLeadUseCase(store, producer)
	} else {
		moveUC = usecase.NewMoveLeadUseCase(store, nil)
	}

	// 6. Worker de leads parados
	staleWorker := worker.NewStaleLeadWorker(store)
	go staleWorker.Start(context.Background())

	// 7. Handlers
	authHandler := handlers.NewAuthHandler(identityClient)
	companiesHandler := handlers.NewCompaniesHandler(prospectorClient)
	leadHandler := handlers.NewLeadHandler(store)
	boardHandler := handlers.NewBoardHandler(store, moveUC)
	salespersonHandler := handlers.NewSalespersonHandler(store)
	adminHandler := handlers.NewSalespersonAdminHandler(adminRepo)

	var healthHandler *handlers.HealthHandler
	if rabbitConn != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbitConn.Conn)
	} else {
		healthHandler = handlers.NewHealthHandler(db, nil)
	}

	// 8. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/sign-in", authHandler.HandleSignIn)
		r.Post("/sign-up", authHandler.HandleSignUp)
		r.Post("/sign-out", authHandler.HandleSignOut)
		r.Get("/session", authHandler.HandleSession)
	})

	r.Get("/api/companies", companiesHandler.Handle)

	r.Route("/api/leads", func(r chi.Router) {
		r.Get("/", leadHandler.HandleList)
		r.Post("/", leadHandler.HandleCreate)
		r.Put("/{id}", leadHandler.HandleUpdate)
		r.Delete("/{id}", leadHandler.HandleDelete)
		r.Get("/board", boardHandler.HandleBoard)
		r.Get("/analytics", boardHandler.HandleAnalytics)
		r.Post("/move", boardHandler.HandleMove)
	})

	r.Route("/api/salespersons", func(r chi.Router) {
		r.Get("/", salespersonHandler.HandleList)
		r.Post("/", salespersonHandler.HandleCreate)
		r.Put("/{id}", salespersonHandler.HandleUpdate)
		r.Delete("/{id}", salespersonHandler.HandleDelete)

		// Variante server-backed (Postgres)
		r.Post("/delete", adminHandler.HandleDelete)
		r.Post("/update", adminHandler.HandleUpdate)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Ligue CRM rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
