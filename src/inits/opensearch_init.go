package inits

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/opensearch-project/opensearch-go"
	"github.com/opensearch-project/opensearch-go/opensearchapi"

	m "github.com/Alan-oliveir/Instalike/src/models"
	"github.com/Alan-oliveir/Instalike/src/repositories/posts"
)

const postIndex = "posts-search"

func NewOpenSearchClient(address string) (*opensearch.Client, error) {
	return opensearch.NewClient(opensearch.Config{
		Addresses: []string{address},
	})
}

// PostIndexer mirrors post documents into an opensearch index. Indexing is
// best-effort: callers log failures and carry on.
type PostIndexer struct {
	client *opensearch.Client
}

func NewPostIndexer(client *opensearch.Client) *PostIndexer {
	return &PostIndexer{client: client}
}

func (ix *PostIndexer) IndexPost(ctx context.Context, post m.Post) error {
	data, err := json.MarshalIndent(post, "", "\t")
	if err != nil {
		return err
	}

	req := opensearchapi.IndexRequest{
		Index:      postIndex,
		DocumentID: post.ID,
		Body:       strings.NewReader(string(data)),
	}
	response, err := req.Do(ctx, ix.client)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	return nil
}

// InitOpenSearch creates the posts index and backfills it with every post
// already in the repository.
func InitOpenSearch(ctx context.Context, repo posts.Repository, ix *PostIndexer) {
	settings := strings.NewReader(`{'settings': {'index': {'number_of_shards': 1,'number_of_replicas': 1 }}}`)

	req := opensearchapi.IndicesCreateRequest{Index: postIndex, Body: settings}
	if _, err := req.Do(ctx, ix.client); err != nil {
		log.Printf("Error creating posts index: %v", err)
		return
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		log.Printf("Error querying posts for indexing: %v", err)
		return
	}

	for _, post := range all {
		if err := ix.IndexPost(ctx, post); err != nil {
			log.Printf("Failed to index post %v: %v", post.ID, err)
		}
	}
}
