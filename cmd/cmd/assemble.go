package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pagecraft/internal/assemble"
	"pagecraft/internal/corpus"
)

var assembleAsJSON bool

var assembleCmd = &cobra.Command{
	Use:   "assemble [query]",
	Short: "Assemble a page from published documents",
	Long: `Assemble ranks the published document corpus against the search query
with TF-IDF, extracts the most relevant sentences, and distributes them into
a content-type-specific page layout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		store, err := corpus.NewStore(cfg.ResolvedDBPath(), cfg.Corpus.SiteURL)
		if err != nil {
			return err
		}
		defer store.Close()

		engine := assemble.NewEngineWithLimits(store, assemble.Limits{
			FetchDocuments:  cfg.Retrieval.MaxDocuments,
			RankedDocuments: cfg.Retrieval.MaxResults,
			Snippets:        cfg.Retrieval.MaxSnippets,
		})
		page, err := engine.AssemblePage(cmd.Context(), query)
		if err != nil {
			return err
		}

		if assembleAsJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(page)
		}

		fmt.Printf("# %s\n\n", page.Title)
		fmt.Printf("template: %s  confidence: %.2f  sources: %d\n\n", page.TemplateID, page.Confidence, len(page.Sources))
		fmt.Println(page.HTMLBody)
		return nil
	},
}

func init() {
	assembleCmd.Flags().BoolVar(&assembleAsJSON, "json", false, "print the assembled page as JSON")
	rootCmd.AddCommand(assembleCmd)
}
