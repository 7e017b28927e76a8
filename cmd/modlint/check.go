package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"modlint/internal/config"
	"modlint/internal/diag"
	"modlint/internal/diagfmt"
	"modlint/internal/driver"
	"modlint/internal/lint"
	"modlint/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.py|directory>",
	Short: "Check Python files for % format string problems",
	Long:  `Check runs the format-string rules over one file or every *.py file in a directory tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "", "output format (pretty|short|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("no-cache", false, "disable the persistent result cache")
	checkCmd.Flags().StringSlice("disable", nil, "rule IDs to skip (e.g. E1307)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", target, err)
	}

	configStart := target
	if !st.IsDir() {
		configStart = filepath.Dir(target)
	}
	cfg, err := loadConfig(configStart)
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = cfg.Output.Format
	}
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs == 0 {
		jobs = cfg.Lint.Jobs
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	disableFlag, err := cmd.Flags().GetStringSlice("disable")
	if err != nil {
		return fmt.Errorf("failed to get disable flag: %w", err)
	}

	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}

	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = cfg.Lint.MaxDiagnostics
	}

	disabled := cfg.DisabledCodes()
	for _, id := range disableFlag {
		code, ok := diag.LintCodeForID(id)
		if !ok {
			return fmt.Errorf("unknown rule %q in --disable", id)
		}
		disabled[code] = true
	}

	// The --disable flag participates in the fingerprint the same way a
	// config edit would.
	cfgForHash := cfg
	cfgForHash.Lint.Disable = append(cfgForHash.Lint.Disable, disableFlag...)
	cfgForHash.Lint.MaxDiagnostics = maxDiagnostics

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Checks:         lint.Enabled(disabled),
		ConfigHash:     cfgForHash.Fingerprint(),
	}
	if !noCache {
		cache, err := driver.OpenDiskCache("modlint")
		if err == nil {
			opts.Cache = cache
		}
		// Cache open failures are not fatal; the run just loses caching.
	}

	var fileSet *source.FileSet
	bag := diag.NewBag(maxDiagnostics)

	if st.IsDir() {
		fs, results, err := driver.CheckDir(cmd.Context(), target, opts)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		fileSet = fs
		for _, r := range results {
			bag.Merge(r.Bag)
		}
	} else {
		fs, fileBag, err := driver.CheckPath(target, opts)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		fileSet = fs
		bag = fileBag
	}
	bag.Sort()

	pathMode := diagfmt.PathModeRelative
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch format {
	case "pretty":
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		diagfmt.Pretty(os.Stdout, bag, fileSet, diagfmt.PrettyOpts{
			Color:     useColor(colorFlag, cfg.Output.Color, os.Stdout),
			PathMode:  pathMode,
			ShowNotes: withNotes,
		})
	case "short":
		diagfmt.Short(os.Stdout, bag, fileSet, withNotes)
	case "json":
		if err := diagfmt.JSON(os.Stdout, bag, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
		}); err != nil {
			return fmt.Errorf("failed to encode diagnostics: %w", err)
		}
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet && format == "pretty" {
		fmt.Fprintf(os.Stdout, "%d problem(s) found\n", bag.Len())
	}

	if bag.HasErrors() {
		// Findings are already printed; suppress cobra's usage dump.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

// loadConfig discovers modlint.toml by walking up from startDir, falling
// back to defaults when no file exists.
func loadConfig(startDir string) (config.Config, error) {
	path, found, err := config.Find(startDir)
	if err != nil {
		return config.Config{}, err
	}
	if !found {
		return config.Default(), nil
	}
	return config.Load(path)
}
