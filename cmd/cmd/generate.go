package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pagecraft/internal/core"
	"pagecraft/internal/generate"
	"pagecraft/internal/provider"
)

var (
	generateIntent   string
	generateSeed     int64
	generateFallback bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [hero|cta] [query]",
	Short: "Generate a personalized page component",
	Long: `Generate calls the configured text provider to produce a hero banner or
call-to-action component for the search query, validates the reply against
the component schema, and personalizes the wording. When the provider is
unreachable the deterministic fallback copy is used instead.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		componentType := core.ComponentType(strings.ToLower(args[0]))
		query := strings.Join(args[1:], " ")

		textProvider, err := buildProvider(cmd.Context())
		if err != nil {
			return err
		}
		if generateFallback {
			textProvider = nil // forces the pipeline's fallback path
		}

		pipeline := generate.NewPipeline(textProvider, generate.NewChooser(generateSeed), cfg.Provider.Temperature)
		component, err := pipeline.Generate(cmd.Context(), componentType, generate.Request{
			Query:  query,
			Intent: core.Intent(generateIntent),
		})
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(component)
	},
}

// buildProvider constructs the configured text provider.
func buildProvider(ctx context.Context) (provider.TextGenerator, error) {
	switch cfg.Provider.Name {
	case "gemini":
		return provider.NewGeminiClient(ctx, cfg.Provider.APIKey, cfg.Provider.Model)
	case "chat":
		if cfg.Provider.BaseURL == "" {
			return nil, fmt.Errorf("provider.base_url is required for the chat provider")
		}
		transport := provider.NewHTTPTransport(cfg.Provider.RequestTimeout())
		gateway := provider.NewGateway(transport, cfg.Provider.MaxAttempts)
		return provider.NewChatClient(gateway, cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Provider.Model), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider.Name)
	}
}

func init() {
	generateCmd.Flags().StringVar(&generateIntent, "intent", "informational", "searcher intent: commercial, educational, informational, navigational")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "seed for personalization phrase selection")
	generateCmd.Flags().BoolVar(&generateFallback, "fallback-only", false, "skip the provider and emit the deterministic fallback component")
	rootCmd.AddCommand(generateCmd)
}
