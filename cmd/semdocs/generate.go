package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/semdocs/compose"
	"github.com/c360studio/semdocs/docgen"
	"github.com/c360studio/semdocs/ontology"
)

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	var (
		output       string
		onExist      string
		noScopeNotes bool
		overwrite    bool
		noReason     bool
		format       string
	)

	cmd := &cobra.Command{
		Use:   "generate <input.ttl>",
		Short: "Generate SKOS definitions and scope notes for an ontology",
		Long: `Generate runs the entailment engine over a copy of the ontology, composes
definition sentences for classes, datatype properties, and object
properties, plus technical scope notes for class axioms, and writes the
annotated ontology to the output path.

Subjects that already carry AUTOGEN-marked text are skipped unless
--overwrite-autogen is given. Human-authored annotations are never
modified.`,
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
			if format == "" {
				format = cfg.Generation.Format
			}
			outFormat, err := ontology.ParseFormat(format)
			if err != nil {
				return err
			}

			g, err := ontology.LoadFile(input)
			if err != nil {
				return exitErrorf(exitMissingInput, "%v", err)
			}

			report, err := docgen.Run(g, docgen.Options{
				ScopeNotes: !noScopeNotes,
				Overwrite:  overwrite,
				Reason:     !noReason,
			})
			if err != nil {
				return err
			}

			if output == "" {
				output = defaultOutput(input, "_with_documentation", extFor(outFormat))
			}
			if err := handleExisting(output, onExist); err != nil {
				return err
			}
			if err := g.WriteFile(output, outFormat); err != nil {
				return err
			}

			printResult("Classes:", report.Classes, overwrite)
			printResult("Data props:", report.DatatypeProperties, overwrite)
			printResult("Object props:", report.ObjectProperties, overwrite)
			if !noScopeNotes {
				printResult("Class axioms (scopeNote):", report.ScopeNotes, overwrite)
			}
			fmt.Printf("Wrote: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default <input>_with_documentation.<ext>)")
	cmd.Flags().StringVar(&onExist, "on-exist", "overwrite", "Behavior if the output exists: overwrite, error, or backup")
	cmd.Flags().BoolVar(&noScopeNotes, "no-scope-notes", false, "Do not generate skos:scopeNote sentences for class axioms")
	cmd.Flags().BoolVar(&overwrite, "overwrite-autogen", false, "Regenerate subjects that already carry AUTOGEN-marked text")
	cmd.Flags().BoolVar(&noReason, "no-reason", false, "Skip reasoning and compose over asserted triples only")
	cmd.Flags().StringVar(&format, "format", "", "Output format: turtle or ntriples (default from config)")
	return cmd
}

func extFor(format ontology.Format) string {
	if format == ontology.FormatNTriples {
		return ".nt"
	}
	return ".ttl"
}

func printResult(label string, res compose.Result, overwrite bool) {
	line := fmt.Sprintf("%-26s added %d", label, res.Added)
	if overwrite {
		line += fmt.Sprintf(", updated %d", res.Updated)
	}
	fmt.Println(line)
}
