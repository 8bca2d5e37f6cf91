package actions

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"stacky.dev/stacky/internal/config"
	"stacky.dev/stacky/internal/output"
	"stacky.dev/stacky/internal/runtime"
)

// ConfigOptions specifies options for the config command
type ConfigOptions struct {
	ShowPaths bool // list candidate files instead of the merged values
}

// ConfigAction prints the merged configuration as YAML, or the candidate config
// files in the order they are read.
func ConfigAction(ctx *runtime.Context, opts ConfigOptions) error {
	if opts.ShowPaths {
		return printConfigPaths(ctx)
	}

	enc := yaml.NewEncoder(ctx.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(ctx.Config); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if len(ctx.Config.Sources) == 0 {
		ctx.Splog.Debug("No config files found; showing defaults.")
	}
	return nil
}

func printConfigPaths(ctx *runtime.Context) error {
	statuses := config.DescribePaths(config.DefaultPaths(ctx.RepoRoot))

	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		state := output.ColorDim("missing")
		if s.Present {
			state = "present"
		}
		rows = append(rows, []string{s.Path, state})
	}
	_, err := io.WriteString(ctx.Stdout, output.RenderTable([]string{"FILE", "STATUS"}, rows))
	return err
}
