package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/semdocs/labels"
	"github.com/c360studio/semdocs/ontology"
)

func newLabelsCmd(flags *rootFlags) *cobra.Command {
	var (
		output  string
		onExist string
		lang    string
	)

	cmd := &cobra.Command{
		Use:   "labels <input.ttl> <namespace-iri>",
		Short: "Add missing rdfs:label annotations from IRI local names",
		Long: `Labels synthesizes an rdfs:label for every in-namespace class, property,
and individual that lacks one: underscores become spaces and property
labels are lowercased. Terms outside the given namespace and existing
labels are left alone.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, namespace := args[0], args[1]
			if err := checkInput(input); err != nil {
				return err
			}

			g, err := ontology.LoadFile(input)
			if err != nil {
				return exitErrorf(exitMissingInput, "%v", err)
			}

			report := labels.Generate(g, labels.Options{
				Namespace: namespace,
				Lang:      lang,
			})

			if output == "" {
				output = defaultOutput(input, "_with_labels", ".ttl")
			}
			if err := handleExisting(output, onExist); err != nil {
				return err
			}
			if err := g.WriteFile(output, ontology.FormatTurtle); err != nil {
				return err
			}

			fmt.Printf("Labels: created %d, existing %d, outside namespace %d\n",
				report.Created, report.SkippedExisting, report.NamespaceFiltered)
			for _, e := range report.Examples {
				fmt.Printf("  %s -> %q\n", e.IRI, e.Label)
			}
			fmt.Printf("Wrote: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default <input>_with_labels.ttl)")
	cmd.Flags().StringVar(&onExist, "on-exist", "overwrite", "Behavior if the output exists: overwrite, error, or backup")
	cmd.Flags().StringVar(&lang, "lang", "", "Language tag for created labels")
	return cmd
}
