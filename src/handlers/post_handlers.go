package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/Alan-oliveir/Instalike/src/inits"
	m "github.com/Alan-oliveir/Instalike/src/models"
	"github.com/Alan-oliveir/Instalike/src/repositories/posts"
)

const (
	feedCacheKey = "feed:posts"
	feedCacheTTL = 30 * time.Second
)

func GETAllPosts(ctx context.Context, w http.ResponseWriter, r *http.Request, repo posts.Repository, rdb *redis.Client) {
	if rdb != nil {
		cached, err := rdb.Get(ctx, feedCacheKey).Result()
		if err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
		if err != redis.Nil {
			log.Printf("Feed cache lookup failed: %v", err)
		}
	}

	allPosts, err := repo.GetAll(ctx)
	if err != nil {
		WriteErrorToWriter(w, http.StatusInternalServerError, "Error: Unable to query posts")
		log.Printf("Unable to query posts: %v", err)
		return
	}
	if allPosts == nil {
		allPosts = []m.Post{}
	}

	responseBytes, err := json.MarshalIndent(allPosts, "", "\t")
	if err != nil {
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}

	if rdb != nil {
		if err := rdb.Set(ctx, feedCacheKey, responseBytes, feedCacheTTL).Err(); err != nil {
			log.Printf("Feed cache write failed: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(responseBytes)
}

func GETPostFromID(ctx context.Context, w http.ResponseWriter, r *http.Request, repo posts.Repository) {
	id := mux.Vars(r)["id"]

	post, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, m.ErrNotFound) {
			WriteErrorToWriter(w, http.StatusNotFound, "Error: Post does not exist")
			return
		}
		WriteErrorToWriter(w, http.StatusInternalServerError, "Error: Unable to query post")
		log.Printf("Unable to query post: %v", err)
		return
	}

	responseBytes, err := json.MarshalIndent(post, "", "\t")
	if err != nil {
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(responseBytes)
}

func POSTNewPost(ctx context.Context, w http.ResponseWriter, r *http.Request, repo posts.Repository, rdb *redis.Client, indexer *inits.PostIndexer) {
	var req struct {
		Descricao string `json:"descricao"`
		ImgURL    string `json:"imgUrl"`
		Alt       string `json:"alt"`
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		WriteErrorToWriter(w, http.StatusBadRequest, "Error: Invalid request body")
		log.Printf("Unable to decode new post: %v", err)
		return
	}

	post, err := repo.Insert(ctx, req.ImgURL, req.Descricao, req.Alt)
	if err != nil {
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

func WriteErrorToWriter(w http.ResponseWriter, statusCode int, errorString string) {
	jsonString, err := json.MarshalIndent(map[string]string{"error": errorString}, "", "\t")
	if err != nil {
		log.Print(err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(jsonString)
}

// afterPostMutation drops the cached feed and refreshes the search index.
// Both are side channels; failures are logged, never surfaced.
func afterPostMutation(ctx context.Context, rdb *redis.Client, indexer *inits.PostIndexer, post m.Post) {
	if rdb != nil {
		if err := rdb.Del(ctx, feedCacheKey).Err(); err != nil {
			log.Printf("Feed cache invalidation failed: %v", err)
		}
	}
	if indexer != nil {
		if err := indexer.IndexPost(ctx, post); err != nil {
			log.Printf("Failed to index post %v: %v", post.ID, err)
		}
	}
}
