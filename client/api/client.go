// Package api is the HTTP client for the Instalike backend.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	m "github.com/Alan-oliveir/Instalike/src/models"
)

// ErrNetwork marks client-to-server transport failures, as opposed to
// responses the server actually produced.
var ErrNetwork = errors.New("network error")

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// GetPosts fetches the full post collection.
func (c *Client) GetPosts() ([]m.Post, error) {
	resp, err := c.client.Get(c.baseURL + "/posts")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, readServerError(resp)
	}

	var posts []m.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

// GetPost fetches a single post by id.
func (c *Client) GetPost(id string) (*m.Post, error) {
	resp, err := c.client.Get(c.baseURL + "/posts/" + id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return decodePostResponse(resp)
}

// CreatePost creates a post without an image, the rarely used JSON path.
func (c *Client) CreatePost(descricao string, alt string) (*m.Post, error) {
	body, err := json.Marshal(map[string]string{"descricao": descricao, "alt": alt})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal post: %w", err)
	}

	resp, err := c.client.Post(c.baseURL+"/posts", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return decodePostResponse(resp)
}

// UploadImage posts the file as the multipart field "imagem" together with
// the optional caption and alt text, and returns the created post.
func (c *Client) UploadImage(filePath string, descricao string, alt string) (*m.Post, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", filePath, err)
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("imagem", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if descricao != "" {
		if err := form.WriteField("descricao", descricao); err != nil {
			return nil, fmt.Errorf("failed to build upload form: %w", err)
		}
	}
	if alt != "" {
		if err := form.WriteField("alt", alt); err != nil {
			return nil, fmt.Errorf("failed to build upload form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}

	resp, err := c.client.Post(c.baseURL+"/upload", form.FormDataContentType(), &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return decodePostResponse(resp)
}

// GenerateDescription triggers the server-side description enrichment. The
// request field is named alt regardless of updating the description.
func (c *Client) GenerateDescription(id string, alt string) (*m.Post, error) {
	body, err := json.Marshal(map[string]string{"alt": alt})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPut, c.baseURL+"/upload/"+id, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return decodePostResponse(resp)
}

// ImageURL resolves a stored image name to its URL on the backend.
func (c *Client) ImageURL(imageName string) string {
	return c.baseURL + "/" + imageName
}

func decodePostResponse(resp *http.Response) (*m.Post, error) {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, readServerError(resp)
	}

	var post m.Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, fmt.Errorf("failed to decode post: %w", err)
	}
	return &post, nil
}

func readServerError(resp *http.Response) error {
	respBody, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(respBody))
}
