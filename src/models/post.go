package models

import (
	"strings"
	"time"
)

type Post struct {
	ID        string    `json:"id"`
	Descricao string    `json:"descricao"`
	ImgURL    string    `json:"imgUrl"`
	Alt       string    `json:"alt"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasDescription reports whether the post already carries a caption, i.e.
// whether the feed should render the text instead of the generate affordance.
func (p Post) HasDescription() bool {
	return strings.TrimSpace(p.Descricao) != ""
}
