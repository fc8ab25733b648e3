package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/Alan-oliveir/Instalike/src/inits"
	m "github.com/Alan-oliveir/Instalike/src/models"
	"github.com/Alan-oliveir/Instalike/src/service"
)

// Request bodies are capped a little above the upload policy so oversized
// files reach the service's own validation instead of a transport error.
const maxUploadBody = service.MaxUploadBytes + (1 << 20)

func POSTUploadImage(ctx context.Context, w http.ResponseWriter, r *http.Request, svc *service.PostService, rdb *redis.Client, indexer *inits.PostIndexer) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)

	err := r.ParseMultipartForm(maxUploadBody)
	if err != nil {
		WriteErrorToWriter(w, http.StatusBadRequest, "Error: Could not parse upload form")
		log.Printf("Could not parse upload form: %v", err)
		return
	}

	file, header, err := r.FormFile("imagem")
	if err != nil {
		WriteErrorToWriter(w, http.StatusBadRequest, "Error: Form field 'imagem' is required")
		log.Printf("Missing 'imagem' form field: %v", err)
		return
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		WriteErrorToWriter(w, http.StatusBadRequest, "Error: Could not read uploaded image")
		log.Printf("Could not read uploaded image: %v", err)
		return
	}

	post, err := svc.CreatePost(ctx, imageBytes, header.Filename, r.FormValue("descricao"), r.FormValue("alt"))
	if err != nil {
		if errors.Is(err, m.ErrValidation) {
			WriteErrorToWriter(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteErrorToWriter(w, http.StatusInternalServerError, "Error: Post could not be created")
		log.Printf("Post could not be created: %v", err)
		return
	}

	afterPostMutation(ctx, rdb, indexer, *post)

	responseBytes, err := json.MarshalIndent(post, "", "\t")
	if err != nil {
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(responseBytes)
}

func PUTGenerateDescription(ctx context.Context, w http.ResponseWriter, r *http.Request, svc *service.PostService, rdb *redis.Client, indexer *inits.PostIndexer) {
	id := mux.Vars(r)["id"]

	var req struct {
		Alt string `json:"alt"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		WriteErrorToWriter(w, http.StatusBadRequest, "Error: Invalid request body")
		log.Printf("Unable to decode description request: %v", err)
		return
	}

	post, err := svc.EnrichDescription(ctx, id, req.Alt)
	if err != nil {
		switch {
		case errors.Is(err, m.ErrNotFound):
			WriteErrorToWriter(w, http.StatusNotFound, "Error: Post does not exist")
		case errors.Is(err, m.ErrStorage):
			WriteErrorToWriter(w, http.StatusInternalServerError, "Error: Description could not be saved")
			log.Printf("Description could not be saved: %v", err)
		default:
			WriteErrorToWriter(w, http.StatusBadGateway, "Error: Description could not be generated")
			log.Printf("Description could not be generated: %v", err)
		}
		return
	}

	afterPostMutation(ctx, rdb, indexer, *post)

	responseBytes, err := json.MarshalIndent(post, "", "\t")
	if err != nil {
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(responseBytes)
}
