package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	m "github.com/Alan-oliveir/Instalike/src/models"
	"github.com/Alan-oliveir/Instalike/src/storage"
)

func ServeImage(ctx context.Context, w http.ResponseWriter, r *http.Request, store storage.ImageStore) {
	imageName := mux.Vars(r)["imageFilename"]

	imageReader, err := store.Open(ctx, imageName)
	if err != nil {
		if errors.Is(err, m.ErrNotFound) {
			WriteErrorToWriter(w, http.StatusNotFound, "Error: Image does not exist")
			return
		}
		WriteErrorToWriter(w, http.StatusInternalServerError, "Error: Unable to read image")
		log.Printf("Unable to read image %v: %v", imageName, err)
		return
	}
	defer imageReader.Close()

	imageBytes, err := io.ReadAll(imageReader)
	if err != nil {
		WriteErrorToWriter(w, http.StatusInternalServerError, "Error: Unable to read image")
		log.Printf("Unable to read image %v: %v", imageName, err)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(imageBytes))
	w.Write(imageBytes)
}
