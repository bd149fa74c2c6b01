package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/c360studio/semdocs/llm"
	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/polish"

	// Register LLM providers via init().
	_ "github.com/c360studio/semdocs/llm/providers"
)

func newPolishCmd(flags *rootFlags) *cobra.Command {
	var (
		output   string
		onExist  string
		provider string
		model    string
		endpoint string
		lang     string
	)

	cmd := &cobra.Command{
		Use:   "polish <input.ttl>",
		Short: "Copy-edit generated definitions through an LLM",
		Long: `Polish sends every pass-1 AUTOGEN-marked definition and scope note to an
LLM for a grammar-only copy-edit and rewrites it with a pass-2 marker.
Pass-2 text and human-authored annotations are left alone; a failing edit
skips that literal and the run continues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if err := checkInput(input); err != nil {
				return err
			}

			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if provider == "" {
				provider = cfg.Polish.Provider
			}
			if model == "" {
				model = cfg.Polish.Model
			}
			if endpoint == "" {
				endpoint = cfg.Polish.Endpoint
			}
			if lang == "" {
				lang = cfg.Polish.Lang
			}

			g, err := ontology.LoadFile(input)
			if err != nil {
				return exitErrorf(exitMissingInput, "%v", err)
			}

			client := llm.NewClient(
				llm.WithHTTPClient(&http.Client{Timeout: cfg.Polish.Timeout}),
			)
			editor := polish.New(client, polish.Options{
				Provider: provider,
				Model:    model,
				BaseURL:  endpoint,
				Lang:     lang,
			})

			res, err := editor.Polish(cmd.Context(), g)
			if err != nil {
				return err
			}

			if output == "" {
				output = defaultOutput(input, "_polished", ".ttl")
			}
			if err := handleExisting(output, onExist); err != nil {
				return err
			}
			if err := g.WriteFile(output, ontology.FormatTurtle); err != nil {
				return err
			}

			fmt.Printf("Examined: %d, polished: %d, failed: %d\n", res.Examined, res.Polished, res.Failed)
			fmt.Printf("Wrote: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default <input>_polished.ttl)")
	cmd.Flags().StringVar(&onExist, "on-exist", "overwrite", "Behavior if the output exists: overwrite, error, or backup")
	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider: openai, anthropic, or ollama (default from config)")
	cmd.Flags().StringVar(&model, "model", "", "Model identifier (default from config)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Provider endpoint override (default from config)")
	cmd.Flags().StringVar(&lang, "lang", "", "Language tag for polished literals")
	return cmd
}
