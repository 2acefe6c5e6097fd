package main

import (
	"log"
	"net/http"
	"os"

	"estaty360/chat-assistant/chat"
	"estaty360/chat-assistant/config"
	"estaty360/chat-assistant/gateway"
	"estaty360/chat-assistant/handlers"
	"estaty360/chat-assistant/middleware"
	"estaty360/chat-assistant/routes"
	"estaty360/chat-assistant/storage"
)

func main() {

	config.LoadEnv()
	config.InitLogger()

	chatURL := os.Getenv("CHAT_API_URL")
	if chatURL == "" {
		config.Logger.Fatal("CHAT_API_URL is missing")
	}
	historyURL := os.Getenv("HISTORY_API_URL")
	if historyURL == "" {
		historyURL = chatURL
	}
	apiKey := os.Getenv("CHAT_API_KEY")

	store, recorder := buildStore()
	chatGw := gateway.NewChatClient(chatURL, apiKey)
	historyGw := gateway.NewHistoryClient(historyURL, apiKey)
	enableRag := os.Getenv("ENABLE_RAG") != "false"

	handlers.Init(chat.NewManager(store, chatGw, historyGw, recorder, enableRag))

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux)

	handler := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server is running on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

// buildStore picks the widget-state backend: Supabase when configured, a
// local state file as a lighter option, in-memory otherwise.
func buildStore() (storage.Store, chat.LeadRecorder) {
	if os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_KEY") != "" {
		s, err := storage.NewSupabaseStore()
		if err != nil {
			config.Logger.Fatal("Failed to init Supabase store:", err)
		}
		return s, s.Leads()
	}

	if path := os.Getenv("STATE_FILE"); path != "" {
		s, err := storage.NewFileStore(path)
		if err != nil {
			config.Logger.Fatal("Failed to open state file:", err)
		}
		return s, nil
	}

	config.Logger.Warn("No SUPABASE_URL or STATE_FILE configured, widget state will not survive restarts")
	return storage.NewMemoryStore(), nil
}
