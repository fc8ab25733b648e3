package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/Alan-oliveir/Instalike/src/models"
)

func TestGetPosts(t *testing.T) {
	posts := []m.Post{
		{ID: "1", Descricao: "primeiro", CreatedAt: time.Now()},
		{ID: "2", Alt: "segundo"},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/posts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(posts)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	fetched, err := client.GetPosts()
	require.NoError(t, err)
	require.Len(t, fetched, 2)
	assert.Equal(t, "1", fetched[0].ID)
	assert.Equal(t, "segundo", fetched[1].Alt)
}

func TestUploadImageSendsMultipartForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)

		file, header, err := r.FormFile("imagem")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "praia.png", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("image bytes"), content)
		assert.Equal(t, "dia de praia", r.FormValue("descricao"))
		assert.Equal(t, "mar azul", r.FormValue("alt"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(m.Post{ID: "abc", ImgURL: "stored.png"})
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "praia.png")
	require.NoError(t, os.WriteFile(path, []byte("image bytes"), 0o644))

	client := NewClient(server.URL)
	post, err := client.UploadImage(path, "dia de praia", "mar azul")
	require.NoError(t, err)
	assert.Equal(t, "abc", post.ID)
	assert.Equal(t, "stored.png", post.ImgURL)
}

func TestGenerateDescriptionPutsAltField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/upload/abc", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "X", req["alt"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(m.Post{ID: "abc", Descricao: "X"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	post, err := client.GenerateDescription("abc", "X")
	require.NoError(t, err)
	assert.Equal(t, "X", post.Descricao)
}

func TestServerErrorIsSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "Error: Post does not exist"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetPost("unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.False(t, errors.Is(err, ErrNetwork))
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	_, err := client.GetPosts()
	assert.True(t, errors.Is(err, ErrNetwork))
}

func TestImageURL(t *testing.T) {
	client := NewClient("http://localhost:4000/")
	assert.Equal(t, "http://localhost:4000/foto.png", client.ImageURL("foto.png"))
}
