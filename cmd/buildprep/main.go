// buildprep runs before the native packaging step of the desktop build.
// It makes sure the icon asset the packaging toolchain insists on
// exists, and on Linux stages webkit2gtk compatibility aliases so the
// link step finds libraries under the names it expects.
package main

import (
	"log"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/SKINIKE/Roll-Write-Foundry/internal/assets"
	"github.com/SKINIKE/Roll-Write-Foundry/internal/compat"
	"github.com/SKINIKE/Roll-Write-Foundry/internal/config"
	"github.com/SKINIKE/Roll-Write-Foundry/internal/helpers"
)

// Derive the version from -X main.commit=$YOUR_VALUE_HERE
// if the build does not have the commit variable set externally,
// fall back to unsupported custom build
var commit string

func loadConfig(c *cli.Context) (config.Config, error) {
	return config.Load(c.String("manifest-dir"), c.String("out-dir"))
}

// porcelain tells whether to print build-supervisor directives instead
// of human-readable output. When stdout is not a terminal we assume the
// build supervisor is consuming it.
func porcelain(c *cli.Context) bool {
	if c.Bool("porcelain") {
		return true
	}
	return !isatty.IsTerminal(os.Stdout.Fd())
}

// bootstrapPrepare runs both preparation steps: the icon guarantee
// (fatal on failure) followed by the library alias resolver (never
// fatal).
// 		Args: c: cli.Context
func bootstrapPrepare(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// An asset-less build must not proceed silently
	if err := assets.EnsurePlaceholderIcon(cfg.ManifestDir); err != nil {
		return err
	}

	runCompat(cfg, porcelain(c))
	return nil
}

// bootstrapIcon runs only the icon guarantee
// 		Args: c: cli.Context
func bootstrapIcon(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	return assets.EnsurePlaceholderIcon(cfg.ManifestDir)
}

// bootstrapCompat runs only the library alias resolver
// 		Args: c: cli.Context
func bootstrapCompat(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	runCompat(cfg, porcelain(c))
	return nil
}

func runCompat(cfg config.Config, porcelain bool) {
	// The alias shim is only needed on the Linux platform family
	if runtime.GOOS != "linux" {
		return
	}

	if !helpers.IsCommandAvailable(cfg.PkgConfig) {
		log.Println("NOTE:", cfg.PkgConfig, "was not found on the $PATH,")
		log.Println("     all library aliases will be skipped with a warning")
	}

	resolver := &compat.Resolver{
		Metadata:   compat.PkgConfig{Tool: cfg.PkgConfig},
		Creator:    compat.DefaultCreator(),
		Specs:      cfg.Aliases(),
		StagingDir: cfg.StagingDir(),
	}

	for _, line := range formatReport(resolver.Run(), porcelain) {
		if porcelain {
			os.Stdout.WriteString(line + "\n")
		} else {
			log.Println(line)
		}
	}
}

// formatReport renders a resolver report either as directives for the
// build supervisor or as human-readable lines
func formatReport(report compat.Report, porcelain bool) []string {
	var lines []string

	for _, w := range report.Warnings {
		if porcelain {
			lines = append(lines, "cargo:warning="+w)
		} else {
			lines = append(lines, "WARNING: "+w)
		}
	}

	if !porcelain {
		for _, created := range report.Created {
			lines = append(lines, "Created compatibility alias "+created)
		}
	}

	if report.SearchPath != "" {
		if porcelain {
			lines = append(lines, "cargo:rustc-link-search=native="+report.SearchPath)
		} else {
			lines = append(lines, "Link step will additionally search "+report.SearchPath)
		}
	}

	return lines
}

// main Command Line Entrypoint. Defines the command line structure
// and assigns each subcommand to the function which should be
// triggered when the subcommand is used
func main() {

	var version string

	if commit != "" {
		version = commit
	} else {
		version = "unsupported custom build"
	}

	app := &cli.App{
		Name:    "buildprep",
		Version: version,
		Usage:   "Prepares the desktop build: placeholder icon and webkit2gtk compatibility aliases",
		Action:  bootstrapPrepare,
	}

	app.Commands = []*cli.Command{
		{
			Name:   "icon",
			Usage:  "Ensure the placeholder icon exists, without touching library aliases",
			Action: bootstrapIcon,
		},
		{
			Name:   "compat",
			Usage:  "Stage library compatibility aliases, without touching the icon",
			Action: bootstrapCompat,
		},
		{
			Name:   "watch",
			Usage:  "Re-run the preparation whenever the manifest directory changes",
			Action: bootstrapWatch,
		},
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "manifest-dir",
			Aliases: []string{"m"},
			Usage:   "Manifest root the icon asset lives under; $CARGO_MANIFEST_DIR if unset",
		},
		&cli.StringFlag{
			Name:    "out-dir",
			Aliases: []string{"o"},
			Usage:   "Build-output root for staged aliases; $OUT_DIR if unset",
		},
		&cli.BoolFlag{
			Name:  "porcelain",
			Usage: "Always print build supervisor directives, even on a terminal",
		},
	}

	errRuntime := app.Run(os.Args)
	if errRuntime != nil {
		log.Fatal(errRuntime)
	}

}
