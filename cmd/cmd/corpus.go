package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"pagecraft/internal/core"
	"pagecraft/internal/corpus"
)

var (
	corpusDocID    string
	corpusDocTitle string
	corpusDocURL   string
	corpusDocFile  string
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the published document corpus",
}

var corpusAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a published document to the corpus",
	Long: `Add stores a document in the corpus database so the assemble command can
draw on it. The body is read from --file, or from stdin when --file is
omitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if corpusDocTitle == "" {
			return fmt.Errorf("--title is required")
		}

		body, err := readBody(corpusDocFile)
		if err != nil {
			return err
		}

		id := corpusDocID
		if id == "" {
			id = uuid.New().String()
		}

		store, err := corpus.NewStore(cfg.ResolvedDBPath(), cfg.Corpus.SiteURL)
		if err != nil {
			return err
		}
		defer store.Close()

		doc := core.Document{
			ID:          id,
			Title:       corpusDocTitle,
			Body:        body,
			URL:         corpusDocURL,
			PublishedAt: time.Now().UTC(),
		}
		if err := store.AddDocument(cmd.Context(), doc); err != nil {
			return err
		}

		fmt.Printf("stored document %s (%s)\n", id, corpusDocTitle)
		return nil
	},
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published documents, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := corpus.NewStore(cfg.ResolvedDBPath(), cfg.Corpus.SiteURL)
		if err != nil {
			return err
		}
		defer store.Close()

		docs, err := store.FetchPublished(cmd.Context(), 0)
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			fmt.Println("corpus is empty")
			return nil
		}

		for _, doc := range docs {
			fmt.Printf("%s  %s  %s\n", doc.PublishedAt.Format("2006-01-02"), doc.ID, doc.Title)
		}
		return nil
	},
}

// readBody reads the document body from a file, or stdin when path is empty.
func readBody(path string) (string, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read document body: %w", err)
	}

	body := strings.TrimSpace(string(data))
	if body == "" {
		return "", fmt.Errorf("document body is empty")
	}
	return body, nil
}

func init() {
	corpusAddCmd.Flags().StringVar(&corpusDocID, "id", "", "document ID (generated when omitted)")
	corpusAddCmd.Flags().StringVar(&corpusDocTitle, "title", "", "document title")
	corpusAddCmd.Flags().StringVar(&corpusDocURL, "url", "", "canonical URL of the document")
	corpusAddCmd.Flags().StringVar(&corpusDocFile, "file", "", "file holding the document body (stdin when omitted)")

	corpusCmd.AddCommand(corpusAddCmd)
	corpusCmd.AddCommand(corpusListCmd)
	rootCmd.AddCommand(corpusCmd)
}
