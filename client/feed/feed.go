// Package feed renders the post feed in the terminal. Every fetch rebuilds
// the displayed list from the server's collection; interaction state (likes,
// in-flight description requests) is keyed by post id so it survives the
// rebuild.
package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Alan-oliveir/Instalike/client/api"
	m "github.com/Alan-oliveir/Instalike/src/models"
)

const autoRefreshInterval = 30 * time.Second

// enrichHint is the alt text sent with every generation request, matching
// what the web client sends.
const enrichHint = "Imagem gerada automaticamente"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	likedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	actionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

// postsFetchedMsg carries the result of an async feed fetch.
type postsFetchedMsg struct {
	posts []m.Post
	err   error
}

// enrichDoneMsg carries the result of an async description generation.
type enrichDoneMsg struct {
	id   string
	post *m.Post
	err  error
}

type autoRefreshTickMsg time.Time

type Model struct {
	client *api.Client

	posts   []m.Post // last fetched collection, insertion order
	display []m.Post // newest first, filter applied
	cursor  int

	liked   map[string]bool // ephemeral, never persisted
	pending map[string]bool // posts with a generation request in flight

	search    textinput.Model
	searching bool
	query     string

	spinner    spinner.Model
	loading    bool
	refreshing bool
	fetchErr   string
	status     string
}

func NewModel(client *api.Client) Model {
	search := textinput.New()
	search.Placeholder = "buscar por descrição ou alt"
	search.Prompt = "/"
	search.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		client:     client,
		liked:      make(map[string]bool),
		pending:    make(map[string]bool),
		search:     search,
		spinner:    s,
		loading:    true,
		refreshing: true,
	}
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return tea.Batch(model.spinner.Tick, fetchPosts(model.client), autoRefreshTick())
}

func fetchPosts(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		posts, err := client.GetPosts()
		return postsFetchedMsg{posts: posts, err: err}
	}
}

func enrichPost(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		post, err := client.GenerateDescription(id, enrichHint)
		return enrichDoneMsg{id: id, post: post, err: err}
	}
}

func autoRefreshTick() tea.Cmd {
	return tea.Tick(autoRefreshInterval, func(t time.Time) tea.Msg {
		return autoRefreshTickMsg(t)
	})
}

// Update implements tea.Model.
func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if model.searching {
			return model.updateSearch(msg)
		}
		return model.updateKeys(msg)

	case postsFetchedMsg:
		model.refreshing = false
		model.loading = false
		if msg.err != nil {
			model.fetchErr = "Erro ao carregar posts. Verifique sua conexão."
			model.posts = nil
			model.reconcile()
			return model, nil
		}
		model.fetchErr = ""
		model.posts = msg.posts
		model.reconcile()
		return model, nil

	case enrichDoneMsg:
		if msg.err != nil {
			// Failure re-enables the affordance immediately.
			delete(model.pending, msg.id)
			model.status = errorStyle.Render("Erro ao gerar descrição. Tente novamente.")
			return model, nil
		}
		model.status = successStyle.Render("Descrição gerada com sucesso!")
		for i := range model.posts {
			if model.posts[i].ID == msg.id {
				model.posts[i] = *msg.post
			}
		}
		model.reconcile()
		if !model.refreshing {
			model.refreshing = true
			return model, fetchPosts(model.client)
		}
		return model, nil

	case autoRefreshTickMsg:
		cmds := []tea.Cmd{autoRefreshTick()}
		if !model.refreshing && !model.searching {
			model.refreshing = true
			cmds = append(cmds, fetchPosts(model.client))
		}
		return model, tea.Batch(cmds...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		model.spinner, cmd = model.spinner.Update(msg)
		return model, cmd
	}

	return model, nil
}

func (model Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return model, tea.Quit

	case "j", "down":
		if model.cursor < len(model.display)-1 {
			model.cursor++
		}

	case "k", "up":
		if model.cursor > 0 {
			model.cursor--
		}

	case "r":
		if !model.refreshing {
			model.refreshing = true
			model.status = ""
			return model, fetchPosts(model.client)
		}

	case "l":
		if post, ok := model.currentPost(); ok {
			model.liked[post.ID] = !model.liked[post.ID]
		}

	case "g":
		if post, ok := model.currentPost(); ok && !post.HasDescription() && !model.pending[post.ID] {
			model.pending[post.ID] = true
			model.status = dimStyle.Render("Gerando descrição...")
			return model, enrichPost(model.client, post.ID)
		}

	case "/":
		model.searching = true
		model.search.Focus()
		return model, textinput.Blink
	}

	return model, nil
}

func (model Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		model.searching = false
		model.search.Blur()
		model.search.SetValue("")
		model.query = ""
		model.reconcile()
		return model, nil

	case tea.KeyEnter:
		model.searching = false
		model.search.Blur()
		return model, nil
	}

	var cmd tea.Cmd
	model.search, cmd = model.search.Update(msg)
	model.query = model.search.Value()
	model.reconcile()
	return model, cmd
}

// reconcile rebuilds the display list from the last fetched collection and
// drops interaction state that no longer applies.
func (model *Model) reconcile() {
	model.display = filterPosts(displayOrder(model.posts), model.query)

	for id := range model.pending {
		post, ok := postByID(model.posts, id)
		if !ok || post.HasDescription() {
			delete(model.pending, id)
		}
	}

	if model.cursor > len(model.display)-1 {
		model.cursor = len(model.display) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
}

func (model Model) currentPost() (m.Post, bool) {
	if model.cursor < 0 || model.cursor >= len(model.display) {
		return m.Post{}, false
	}
	return model.display[model.cursor], true
}

// displayOrder returns the posts newest first: the reverse of the
// repository's insertion order.
func displayOrder(posts []m.Post) []m.Post {
	result := make([]m.Post, len(posts))
	for i, post := range posts {
		result[len(posts)-1-i] = post
	}
	return result
}

// filterPosts keeps the posts whose description or alt text contains query,
// case-insensitively. An empty query keeps everything.
func filterPosts(posts []m.Post, query string) []m.Post {
	if strings.TrimSpace(query) == "" {
		return posts
	}

	needle := strings.ToLower(query)
	var result []m.Post
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Descricao), needle) ||
			strings.Contains(strings.ToLower(post.Alt), needle) {
			result = append(result, post)
		}
	}
	return result
}

func postByID(posts []m.Post, id string) (m.Post, bool) {
	for _, post := range posts {
		if post.ID == id {
			return post, true
		}
	}
	return m.Post{}, false
}

// timeAgo formats the age of a post the way the web feed does.
func timeAgo(createdAt time.Time, now time.Time) string {
	diff := now.Sub(createdAt)

	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case minutes < 1:
		return "agora"
	case minutes < 60:
		return fmt.Sprintf("%dm", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh", hours)
	case days < 7:
		return fmt.Sprintf("%dd", days)
	default:
		return createdAt.Format("02/01")
	}
}

// View implements tea.Model.
func (model Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Instalike"))
	b.WriteString("\n\n")

	if model.searching || model.query != "" {
		b.WriteString(model.search.View())
		b.WriteString("\n\n")
	}

	switch {
	case model.loading:
		b.WriteString(model.spinner.View() + " Carregando posts...\n")

	case model.fetchErr != "":
		b.WriteString(errorStyle.Render(model.fetchErr))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Nenhum post para mostrar."))
		b.WriteString("\n")

	case len(model.display) == 0:
		b.WriteString(dimStyle.Render("Nenhum post por aqui ainda. Compartilhe uma foto!"))
		b.WriteString("\n")

	default:
		now := time.Now()
		for i, post := range model.display {
			b.WriteString(model.renderPost(post, i == model.cursor, now))
			b.WriteString("\n")
		}
	}

	if model.refreshing && !model.loading {
		b.WriteString(dimStyle.Render(model.spinner.View() + " atualizando..."))
		b.WriteString("\n")
	}
	if model.status != "" {
		b.WriteString(model.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("j/k navegar · l curtir · g gerar descrição · / buscar · r atualizar · q sair"))
	b.WriteString("\n")

	return b.String()
}

func (model Model) renderPost(post m.Post, selected bool, now time.Time) string {
	marker := "  "
	if selected {
		marker = cursorStyle.Render("> ")
	}

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(headerStyle.Render("instalike_user"))
	b.WriteString(dimStyle.Render(" · " + timeAgo(post.CreatedAt, now)))
	b.WriteString("\n")

	imageLine := "(sem imagem)"
	if post.ImgURL != "" {
		imageLine = model.client.ImageURL(post.ImgURL)
	}
	b.WriteString("  " + dimStyle.Render(imageLine) + "\n")

	if model.liked[post.ID] {
		b.WriteString("  " + likedStyle.Render("♥ curtido") + "\n")
	} else {
		b.WriteString("  " + dimStyle.Render("♡") + "\n")
	}

	switch {
	case model.pending[post.ID]:
		b.WriteString("  " + dimStyle.Render("Gerando...") + "\n")
	case post.HasDescription():
		b.WriteString("  " + post.Descricao + "\n")
	default:
		b.WriteString("  " + actionStyle.Render("[g] Gerar descrição com IA") + "\n")
	}

	return b.String()
}
