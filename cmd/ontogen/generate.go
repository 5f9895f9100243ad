package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/semforge/ontogen/compiler/gen"
	"github.com/semforge/ontogen/compiler/load"
)

func generateCmd() *cobra.Command {
	var (
		flags       projectConfig
		projectFile string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate interfaces and wrappers from the input documents",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(projectFile, flags)
			if err != nil {
				return err
			}
			return runGenerate(cfg)
		},
	}
	addProjectFlags(cmd, &flags, &projectFile)
	return cmd
}

func addProjectFlags(cmd *cobra.Command, flags *projectConfig, projectFile *string) {
	cmd.Flags().StringVar(projectFile, "config", "", "ontogen.yaml project file")
	cmd.Flags().StringVar(&flags.Shapes, "shapes", "", "SHACL shapes document (Turtle)")
	cmd.Flags().StringVar(&flags.Context, "context", "", "JSON-LD context document")
	cmd.Flags().StringVar(&flags.Target, "target", "", "output directory")
	cmd.Flags().StringVar(&flags.Package, "package", "", "output package import path")
	cmd.Flags().StringVar(&flags.Header, "header", "", "generated file header comment")
	cmd.Flags().BoolVar(&flags.PrefixConstants, "prefix-constants", false, "emit a namespace constants table")
}

// resolveConfig folds the project file and flags into one configuration.
func resolveConfig(projectFile string, flags projectConfig) (*projectConfig, error) {
	cfg := &projectConfig{}
	if projectFile != "" {
		loaded, err := loadProject(projectFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.merge(flags)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildGraph runs the front half of the pipeline: parse both documents and
// merge them into the ontology model. The configured logger receives the
// parser diagnostics.
func buildGraph(cfg *projectConfig) (*gen.Graph, error) {
	opts := []gen.Option{gen.WithTarget(cfg.Target), gen.WithPrefixConstants(cfg.PrefixConstants)}
	if cfg.Package != "" {
		opts = append(opts, gen.WithPackage(cfg.Package))
	}
	if cfg.Header != "" {
		opts = append(opts, gen.WithHeader(cfg.Header))
	}
	genCfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	shapes, err := load.ParseShapesFile(cfg.Shapes, genCfg.Logger)
	if err != nil {
		return nil, err
	}
	var ctx *load.Context
	if cfg.Context != "" {
		ctx, err = load.ParseContextFile(cfg.Context, genCfg.Logger)
		if err != nil {
			return nil, err
		}
	}
	return gen.NewGraph(genCfg, shapes, ctx)
}

func runGenerate(cfg *projectConfig) error {
	graph, err := buildGraph(cfg)
	if err != nil {
		return err
	}
	if err := gen.Generate(graph); err != nil {
		return err
	}
	slog.Info("generation complete",
		"classes", len(graph.Classes), "target", cfg.Target)
	return nil
}
