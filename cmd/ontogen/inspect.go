package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	var (
		flags       projectConfig
		projectFile string
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Parse the input documents and dump the merged ontology model",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Inspection never writes output files, so the target is not
			// required; any placeholder satisfies validation.
			if flags.Target == "" {
				flags.Target = "."
			}
			cfg, err := resolveConfig(projectFile, flags)
			if err != nil {
				return err
			}
			graph, err := buildGraph(cfg)
			if err != nil {
				return err
			}
			dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
			dumper.Fdump(cmd.OutOrStdout(), graph.Classes)
			return nil
		},
	}
	addProjectFlags(cmd, &flags, &projectFile)
	return cmd
}
