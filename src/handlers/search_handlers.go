package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	m "github.com/Alan-oliveir/Instalike/src/models"
	"github.com/Alan-oliveir/Instalike/src/repositories/posts"
)

// GETSearchPosts is the server-side counterpart of the client's feed filter:
// a case-insensitive substring match over descriptions and alt texts.
func GETSearchPosts(ctx context.Context, w http.ResponseWriter, r *http.Request, repo posts.Repository) {
	searchVal := r.URL.Query().Get("lookup")

	results, err := repo.Search(ctx, searchVal)
	if err != nil {
		WriteErrorToWriter(w, http.StatusInternalServerError, "Error: Failed to perform search")
		log.Printf("Failed to perform search: %v", err)
		return
	}
	if results == nil {
		results = []m.Post{}
	}

	responseBytes, err := json.MarshalIndent(results, "", "\t")
	if err != nil {
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(responseBytes)
}
