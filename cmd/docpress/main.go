package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/edgewool/docpress"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := &cli.Command{
		Name:        "docpress",
		Usage:       "Static documentation site generator",
		Description: "Builds a documentation site from markdown content, product records, and changelogs.",
		Commands: []*cli.Command{
			buildCmd(),
			checkCmd(),
			newCmd(),
			versionCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// configFlag is the --config flag shared by the commands that load a
// site. Its default can be overridden through DOCPRESS_CONFIG.
func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "config",
		Value: docpress.EnvOr("DOCPRESS_CONFIG", "docpress.yaml"),
		Usage: "Site config file",
	}
}

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Build the site into the output directory",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "out", Usage: "Override the configured output directory"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := docpress.LoadConfig(cmd.String("config"))
			if err != nil {
				return err
			}
			if out := cmd.String("out"); out != "" {
				cfg.OutputDir = out
			}
			site := docpress.New(cfg)
			if err := site.Build(ctx); err != nil {
				return err
			}
			fmt.Printf("Built %s into %s\n", cfg.Name, cfg.OutputDir)
			return nil
		},
	}
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate config, front matter, and product references",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := docpress.LoadConfig(cmd.String("config"))
			if err != nil {
				return err
			}
			site := docpress.New(cfg)
			findings, err := site.Check(ctx)
			if err != nil {
				return err
			}
			for _, f := range findings {
				fmt.Fprintln(os.Stderr, f)
			}
			if n := len(findings); n > 0 {
				return cli.Exit(fmt.Sprintf("%d problem(s) found", n), 1)
			}
			fmt.Println("OK")
			return nil
		},
	}
}

func newCmd() *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "Scaffold a new site or page",
		Commands: []*cli.Command{
			{
				Name:      "site",
				Usage:     "Create a new docpress site directory",
				ArgsUsage: "<name>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name := cmd.Args().First()
					if name == "" {
						return fmt.Errorf("site name is required")
					}
					return runNewSite(name)
				},
			},
			{
				Name:      "page",
				Usage:     "Create a content page stub",
				ArgsUsage: "<slug>",
				Flags: []cli.Flag{
					configFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					slug := cmd.Args().First()
					if slug == "" {
						return fmt.Errorf("page slug is required")
					}
					return runNewPage(cmd.String("config"), slug)
				},
			},
		},
	}
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the docpress version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Printf("docpress %s\n", version)
			return nil
		},
	}
}
