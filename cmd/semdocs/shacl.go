package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/shacl"
)

func newSHACLCmd(flags *rootFlags) *cobra.Command {
	var (
		properties   []string
		output       string
		onExist      string
		iriBase      string
		iriSep       string
		removeRanges bool
		lenient      bool
	)

	cmd := &cobra.Command{
		Use:   "shacl <input.ttl>",
		Short: "Derive SHACL datatype constraints from an ontology",
		Long: `Shacl emits one NodeShape per selected datatype property, pinning the
datatype of its values. Without --property, every declared datatype
property with an xsd:decimal, xsd:integer, or xsd:dateTime range is
selected. With --remove-ranges, a refactored copy of the ontology with the
now-redundant rdfs:range triples stripped is written alongside the shapes.`,
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
			if iriBase == "" {
				iriBase = cfg.SHACL.IRIBase
			}
			if iriSep == "" {
				iriSep = cfg.SHACL.IRISep
			}

			g, err := ontology.LoadFile(input)
			if err != nil {
				return exitErrorf(exitMissingInput, "%v", err)
			}

			gen := shacl.New(g, shacl.Options{
				Properties: properties,
				IRIBase:    iriBase,
				IRISep:     iriSep,
				Lenient:    lenient,
			})
			targets, err := gen.Targets()
			if err != nil {
				return err
			}

			if output == "" {
				output = defaultOutput(input, "_constraints.shacl", ".ttl")
			}
			if err := handleExisting(output, onExist); err != nil {
				return err
			}
			shapes := gen.Shapes(targets)
			if err := shapes.WriteFile(output, ontology.FormatTurtle); err != nil {
				return err
			}
			fmt.Printf("Constraints: %d shapes\n", len(targets))
			fmt.Printf("Wrote: %s\n", output)

			if removeRanges {
				refactored := defaultOutput(input, "_refactored", ".ttl")
				if err := handleExisting(refactored, onExist); err != nil {
					return err
				}
				if err := gen.WithoutRanges(targets).WriteFile(refactored, ontology.FormatTurtle); err != nil {
					return err
				}
				fmt.Printf("Wrote: %s\n", refactored)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&properties, "property", nil, "Datatype property to constrain: IRI, CURIE, or bare name (repeatable)")
	cmd.Flags().StringVar(&output, "out", "", "Shapes output path (default <input>_constraints.shacl.ttl)")
	cmd.Flags().StringVar(&onExist, "on-exist", "overwrite", "Behavior if an output exists: overwrite, error, or backup")
	cmd.Flags().StringVar(&iriBase, "iri-base", "", "Base IRI for bare property names (default from config)")
	cmd.Flags().StringVar(&iriSep, "iri-sep", "", "Separator between base and name: \"#\" or \"/\" (default inferred)")
	cmd.Flags().BoolVar(&removeRanges, "remove-ranges", false, "Also write a copy with the targeted rdfs:range triples removed")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "Warn and skip identifiers that are not datatype properties")
	return cmd
}
