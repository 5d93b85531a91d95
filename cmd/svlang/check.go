package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohamed/svlang/internal/compilation"
	"github.com/mohamed/svlang/internal/config"
	"github.com/mohamed/svlang/internal/diagfmt"
	"github.com/mohamed/svlang/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.sv ...]",
	Short: "Compile and elaborate a SystemVerilog design",
	Long: `check parses every listed file into a shared design, then elaborates the
requested top-level modules into their instance hierarchy, reporting every
diagnostic the front end produces along the way.

If no files are given, check looks for the nearest svlang.toml and uses its
[sources].files list.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringSlice("top", nil, "top-level module or interface to elaborate (repeatable)")
	checkCmd.Flags().Int("max-instance-depth", 0, "maximum instance nesting depth (0 uses the built-in default)")
	checkCmd.Flags().String("default-nettype", "", "default net type for implicit nets (wire, none, ...)")
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	checkCmd.Flags().Int("jobs", 0, "parallel file-loading workers (0 uses GOMAXPROCS)")
	checkCmd.Flags().StringSliceP("include", "I", nil, "add a directory to the `include search path (repeatable)")
	checkCmd.Flags().StringSliceP("define", "D", nil, "predefine a macro as NAME or NAME=VALUE (repeatable)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	tops, err := cmd.Flags().GetStringSlice("top")
	if err != nil {
		return err
	}
	maxDepth, err := cmd.Flags().GetInt("max-instance-depth")
	if err != nil {
		return err
	}
	defaultNetType, err := cmd.Flags().GetString("default-nettype")
	if err != nil {
		return err
	}
	uiModeStr, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	includeDirs, err := cmd.Flags().GetStringSlice("include")
	if err != nil {
		return err
	}
	defines, err := cmd.Flags().GetStringSlice("define")
	if err != nil {
		return err
	}

	mode, err := readUIMode(uiModeStr)
	if err != nil {
		return usageError{err}
	}

	files := args
	compConfig := compilation.Config{MaxInstanceDepth: maxDepth, DefaultNetType: defaultNetType}
	if len(files) == 0 {
		manifest, ok, err := config.Load(".")
		if err != nil {
			return err
		}
		if !ok {
			return usageError{fmt.Errorf("no files given and no svlang.toml found; pass files explicitly or run 'svlang init'")}
		}
		files = manifest.ResolveFiles()
		if len(tops) == 0 {
			tops = manifest.Config.Elaborate.Top
		}
		if len(includeDirs) == 0 {
			includeDirs = manifest.Config.Sources.Include
		}
		if len(defines) == 0 {
			defines = manifest.Config.Sources.Defines
		}
		manifestConfig := manifest.Config.Elaborate.CompilationConfig()
		compConfig = mergeCompilationConfig(compConfig, manifestConfig)
	}

	req := driver.CheckRequest{
		Paths:          files,
		MaxDiagnostics: maxDiagnostics,
		Tops:           tops,
		Config:         compConfig,
		Jobs:           jobs,
		IncludeDirs:    includeDirs,
		Defines:        defines,
	}

	ctx := context.Background()
	var result *driver.CheckResult
	if shouldUseTUI(mode) {
		result, err = runCheckWithUI(ctx, "check", files, req)
	} else {
		result, err = driver.Check(ctx, req)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if err := renderCheckResult(cmd, result); err != nil {
		return err
	}
	if result.HasErrors() {
		return fmt.Errorf("check found errors")
	}
	return nil
}

// mergeCompilationConfig fills zero-valued fields of override from
// fallback, letting explicit CLI flags win over the manifest's
// [elaborate] table.
func mergeCompilationConfig(override, fallback compilation.Config) compilation.Config {
	if override.MaxInstanceDepth == 0 {
		override.MaxInstanceDepth = fallback.MaxInstanceDepth
	}
	if override.DefaultNetType == "" {
		override.DefaultNetType = fallback.DefaultNetType
	}
	if override.TimeUnit == "" {
		override.TimeUnit = fallback.TimeUnit
	}
	if override.TimePrecision == "" {
		override.TimePrecision = fallback.TimePrecision
	}
	return override
}

func renderCheckResult(cmd *cobra.Command, result *driver.CheckResult) error {
	opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr), Context: 2, ShowPreview: true}
	for _, f := range result.Files {
		if f.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", f.Path, f.Err)
			continue
		}
		if f.Bag != nil && f.Bag.Len() != 0 {
			if err := diagfmt.Pretty(os.Stderr, f.Bag, result.FileSet, opts); err != nil {
				return err
			}
		}
	}
	if result.ElabBag != nil && result.ElabBag.Len() != 0 {
		if err := diagfmt.Pretty(os.Stderr, result.ElabBag, result.FileSet, opts); err != nil {
			return err
		}
	}
	if !result.HasErrors() {
		fmt.Fprintln(os.Stdout, "check: no errors")
	}
	return nil
}
