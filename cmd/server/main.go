package main

import (
	"log"
	"net/http"

	"github.com/Vedansh-code/trek-safe-backend/internal/chat"
	"github.com/Vedansh-code/trek-safe-backend/internal/config"
	"github.com/Vedansh-code/trek-safe-backend/internal/controllers"
	"github.com/Vedansh-code/trek-safe-backend/internal/logger"
	"github.com/Vedansh-code/trek-safe-backend/internal/middleware"
	"github.com/Vedansh-code/trek-safe-backend/internal/routes"
	"github.com/Vedansh-code/trek-safe-backend/internal/store"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	st := store.New(db)
	hub := controllers.NewAlertHub()
	relay := chat.NewOpenAIClient(cfg.OpenAIKey, cfg.ChatModel)

	r := routes.SetupRouter(routes.Controllers{
		Tourists: controllers.NewTouristController(st),
		Tracking: controllers.NewTrackingController(st, hub),
		Police:   controllers.NewPoliceController(st),
		Chat:     controllers.NewChatController(relay),
		Hub:      hub,
	})

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
