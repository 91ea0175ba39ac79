package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhannixing/sway/internal/diagfmt"
	"github.com/zhannixing/sway/internal/driver"
	"github.com/zhannixing/sway/internal/ir"
	"github.com/zhannixing/sway/internal/observ"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] [file.sw ...]",
	Short: "Build and dump value metadata for sway source files",
	Long:  `Inspect records a source span per line and a storage effect per attribute, then dumps the resulting metadata store. With no arguments the file list comes from sway.toml.`,
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	paths := args
	if len(paths) == 0 {
		manifest, ok, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		if !ok {
			return errors.New(noSwayTomlMessage)
		}
		paths = manifest.SourcePaths()
		if len(paths) == 0 {
			return fmt.Errorf("%s lists no files under [inspect]", manifest.Path)
		}
	}

	timer := observ.NewTimer()
	phase := timer.Begin("inspect")
	res, err := driver.InspectFiles(paths)
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}
	timer.End(phase, fmt.Sprintf("%d records", res.Ctx.MetadataLen()))

	if timings && !quiet {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	var indices []ir.MetadataIndex
	for _, f := range res.Files {
		indices = append(indices, f.Indices...)
	}

	switch format {
	case "pretty":
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
		return diagfmt.FormatMetadataPretty(os.Stdout, res.Ctx, indices, diagfmt.MetadataOpts{Color: useColor})
	case "json":
		return diagfmt.FormatMetadataJSON(os.Stdout, res.Ctx, indices)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
