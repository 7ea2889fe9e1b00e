package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	xsd "github.com/claudiobogossian/terralib5-sub033"
	"github.com/claudiobogossian/terralib5-sub033/schema"
)

func (a *app) newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <file.xsd>",
		Short: "Print the target namespace, namespace bindings and component counts",
		Args:  exactlyOneFile,
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := a.readSchema(args[0])
			if err != nil {
				return err
			}
			return a.printSummary(s)
		},
	}
}

func (a *app) printSummary(s *schema.Schema) error {
	row := func(label string, value any) error {
		return writef(a.stdout, "%-16s %v\n", label, value)
	}
	if err := row("targetNamespace", s.TargetNamespace); err != nil {
		return err
	}
	for prefix, uri := range s.Namespaces.All() {
		if err := row("namespace", prefix+"="+uri); err != nil {
			return err
		}
	}
	counts := []struct {
		label string
		n     int
	}{
		{"includes", len(s.Includes)},
		{"imports", len(s.Imports)},
		{"redefines", len(s.Redefines)},
		{"annotations", len(s.Annotations)},
		{"simpleTypes", len(s.SimpleTypes)},
		{"complexTypes", len(s.ComplexTypes)},
		{"groups", len(s.Groups)},
		{"attributeGroups", len(s.AttributeGroups)},
		{"elements", len(s.Elements)},
		{"attributes", len(s.Attributes)},
		{"notations", len(s.Notations)},
	}
	for _, c := range counts {
		if err := row(c.label, c.n); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) newDumpCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump <file.xsd>",
		Short: "Render the parsed object model",
		Args:  exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Format
			}
			if format != "yaml" {
				return usageError{fmt.Errorf("unsupported format %q", format)}
			}
			s, err := a.readSchema(args[0])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(a.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(s); err != nil {
				return fmt.Errorf("encode %s: %w", args[0], err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml)")
	return cmd
}

func (a *app) newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <file.xsd>",
		Short: "Re-serialize the schema with indentation",
		Args:  exactlyOneFile,
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := a.readSchema(args[0])
			if err != nil {
				return err
			}
			if err := xsd.WriteSchema(a.stdout, s, true); err != nil {
				return err
			}
			return writeln(a.stdout)
		},
	}
}
