package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/sdnova/note-ticket-bridge/internal/ai"
	"github.com/sdnova/note-ticket-bridge/internal/ticket"
)

// Notes d'exemple jouées quand le binaire est lancé sans argument.
var exampleNotes = []string{
	"Utilisateur: Dupont - Impossible de se connecter à sa session. Mot de passe bloqué. Réinitialisé le mot de passe via AD, vérif connexion OK.",
	"PC: poste123 - Outlook ne démarre pas, erreur 0x80070005. Vérif profil, reset MAPI, test sur webmail OK. Escalade L2 Exchange si persiste.",
	"VPN Zscaler instable en télétravail. Vérif certificat, sync profil Intune. Escalade réseau si récidive.",
}

func main() {
	_ = godotenv.Load()

	args := os.Args[1:]

	if len(args) > 0 && args[0] == "serve" {
		runServer()
		return
	}

	if len(args) > 0 {
		printTicket(strings.Join(args, " "))
		return
	}

	for _, note := range exampleNotes {
		printTicket(note)
	}
}

func printTicket(note string) {
	fmt.Println("=== NOTE SOURCE ===")
	fmt.Println(note)
	fmt.Println("--- TICKET FORMATTÉ ---")
	fmt.Println(ticket.FormatTicket(note))
	fmt.Println()
}

func runServer() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	// --- DB ---
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping error: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Ticket module wiring ---
	repo := ticket.NewRepo(db)

	var suggester ai.Suggester
	if os.Getenv("OPENAI_API_KEY") != "" {
		suggester = ai.NewOpenAIClient()
	}

	svc := ticket.NewService(repo, suggester)
	h := ticket.NewHandler(svc)

	ticket.RegisterRoutes(r, h)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
