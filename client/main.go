package main

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Alan-oliveir/Instalike/client/api"
	"github.com/Alan-oliveir/Instalike/client/feed"
)

const defaultAPIURL = "http://localhost:4000"

var apiURL string

var rootCmd = &cobra.Command{
	Use:   "instalike",
	Short: "Feed de fotos Instalike no terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := api.NewClient(apiURL)
		program := tea.NewProgram(feed.NewModel(client), tea.WithAltScreen())
		_, err := program.Run()
		return err
	},
}

var uploadDescricao string
var uploadAlt string

var uploadCmd = &cobra.Command{
	Use:   "upload <arquivo>",
	Short: "Envia uma imagem e cria um post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := api.NewClient(apiURL)
		post, err := client.UploadImage(args[0], uploadDescricao, uploadAlt)
		if err != nil {
			return fmt.Errorf("upload failed: %w", err)
		}

		out, err := json.MarshalIndent(post, "", "\t")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	defaultURL := defaultAPIURL
	if fromEnv := os.Getenv("INSTALIKE_API_URL"); fromEnv != "" {
		defaultURL = fromEnv
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", defaultURL, "endereço do backend Instalike")

	uploadCmd.Flags().StringVar(&uploadDescricao, "descricao", "", "legenda do post")
	uploadCmd.Flags().StringVar(&uploadAlt, "alt", "", "texto alternativo da imagem")
	rootCmd.AddCommand(uploadCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
