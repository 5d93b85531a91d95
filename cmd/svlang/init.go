package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mohamed/svlang/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new svlang project",
	Long: `Initialize a new svlang project by creating a project manifest (svlang.toml)
and a placeholder top-level module (top.sv). If [path|name] is omitted,
initializes the current directory. If a non-existing name is provided, a
directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "svlang-project"
	}

	manifestPath := filepath.Join(target, config.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	manifest := config.DefaultManifest(name)
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	topPath := filepath.Join(target, "top.sv")
	createdTop := false
	if _, err := os.Stat(topPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(topPath, []byte(defaultTopSV()), 0o600); err != nil {
			return fmt.Errorf("failed to write top.sv: %w", err)
		}
		createdTop = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized svlang project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", config.ManifestName)
	if createdTop {
		fmt.Fprintf(os.Stdout, "  - top.sv\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - top.sv (existing)\n")
	}
	return nil
}

// defaultTopSV returns the placeholder module written by init so that
// 'svlang check' has something to elaborate immediately after project
// creation.
func defaultTopSV() string {
	return `// placeholder top-level module
module top;
endmodule
`
}
