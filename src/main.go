package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	gcs "cloud.google.com/go/storage"
	"github.com/gorilla/mux"
	"github.com/lpernett/godotenv"
	"github.com/redis/go-redis/v9"

	h "github.com/Alan-oliveir/Instalike/src/handlers"
	"github.com/Alan-oliveir/Instalike/src/inits"
	"github.com/Alan-oliveir/Instalike/src/repositories/posts"
	"github.com/Alan-oliveir/Instalike/src/service"
	"github.com/Alan-oliveir/Instalike/src/storage"
)

const (
	defaultConnString = "user=instalike password=instalike host=0.0.0.0 port=5432 dbname=instalike_db"
	defaultUploadDir  = "uploads"
	defaultPort       = "4000"
)

func envOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found, reading configuration from environment")
	}

	// Postgres Initialization
	connString := envOr("DATABASE_URL", defaultConnString)
	connPool, err := inits.CreatePostgresPool(connString, ctx)
	if err != nil {
		log.Fatalf("Unable to connect to Postgres: %v", err)
	}
	defer connPool.Pool.Close()

	repo := posts.NewPostgresRepository(connPool.Pool)

	// Image store: local disk unless a GCS bucket is configured
	var store storage.ImageStore
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		gcsClient, err := gcs.NewClient(ctx)
		if err != nil {
			log.Fatalf("Unable to create GCS client: %v", err)
		}
		defer gcsClient.Close()
		store = storage.NewGCSStore(gcsClient, bucket)
	} else {
		diskStore, err := storage.NewDiskStore(envOr("UPLOAD_DIR", defaultUploadDir))
		if err != nil {
			log.Fatalf("Unable to create upload dir: %v", err)
		}
		store = diskStore
	}

	// Redis feed cache, optional
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: "",
			DB:       0,
		})
	}

	// OpenSearch post index, optional
	var indexer *inits.PostIndexer
	if osAddress := os.Getenv("OPENSEARCH_URL"); osAddress != "" {
		osClient, err := inits.NewOpenSearchClient(osAddress)
		if err != nil {
			log.Printf("Unable to create OpenSearch client: %v", err)
		} else {
			indexer = inits.NewPostIndexer(osClient)
			inits.InitOpenSearch(ctx, repo, indexer)
		}
	}

	svc := service.NewPostService(repo, store, service.StaticGenerator{})

	//Server Starting String
	host := "0.0.0.0"
	port := envOr("PORT", defaultPort)
	serverString := fmt.Sprintf("%v:%v", host, port)

	//Route Register
	router := mux.NewRouter()
	router.HandleFunc("/", connPool.GETHandlerRoot).Methods(http.MethodGet)
	router.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		h.GETAllPosts(ctx, w, r, repo, rdb)
	}).Methods(http.MethodGet)
	router.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		h.POSTNewPost(ctx, w, r, repo, rdb, indexer)
	}).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		h.GETPostFromID(ctx, w, r, repo)
	}).Methods(http.MethodGet)
	router.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		h.POSTUploadImage(ctx, w, r, svc, rdb, indexer)
	}).Methods(http.MethodPost)
	router.HandleFunc("/upload/{id}", func(w http.ResponseWriter, r *http.Request) {
		h.PUTGenerateDescription(ctx, w, r, svc, rdb, indexer)
	}).Methods(http.MethodPut)
	router.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		h.GETSearchPosts(ctx, w, r, repo)
	}).Methods(http.MethodGet)
	router.HandleFunc("/{imageFilename}", func(w http.ResponseWriter, r *http.Request) {
		h.ServeImage(ctx, w, r, store)
	}).Methods(http.MethodGet)

	//Start Server
	fmt.Printf("Server is starting on %v...\n", serverString)
	err = http.ListenAndServe(serverString, router)
	if err != nil {
		fmt.Printf("Error starting the server: %v\n", err)
	}
}
