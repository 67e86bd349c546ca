package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/classcss/classcss"
	"github.com/classcss/classcss/internal/render"
)

var convertCmd = &cobra.Command{
	Use:   "convert [class names...]",
	Short: "Convert utility class names to readable CSS",
	Long: `Convert a utility class string into a block of CSS declarations.
With arguments, the arguments are joined and converted once. Without
arguments, lines are read from stdin and converted one by one, sharing
a single conversion cache.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringSlice("stylesheet", nil, "Glob patterns of CSS files to resolve classes from (default: built-in engine)")
	f.String("output", "text", "Output format: text|json")
	f.Int("max-input-length", 10000, "Maximum raw input length in characters")
	f.Bool("highlight", true, "Syntax-color the CSS output")
	f.Bool("show-cache", false, "Print cache occupancy after converting")
}

func runConvert(_ *cobra.Command, args []string) error {
	logger := buildLogger()
	defer func() { _ = logger.Sync() }()

	resolver, err := buildResolver(logger)
	if err != nil {
		return err
	}
	conv := classcss.NewConverter(buildConvertConfig(), resolver, logger)

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output", "convert.output", "text")
	useColors := render.ShouldUseColors(getBoolWithFallback("color", "color", false))
	highlight := getBoolWithFallback("highlight", "convert.highlight", true)
	reporter := render.NewReporter(os.Stdout, useColors, highlight)

	ctx := context.Background()
	emit := func(result classcss.Result) error {
		switch outputFormat {
		case "json":
			encoded, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
			fmt.Println(string(encoded))
		case "text":
			if quiet {
				result.Warnings = nil
			}
			reporter.PrintResult(result)
		default:
			return fmt.Errorf("unknown output format %q", outputFormat)
		}
		return nil
	}

	if len(args) > 0 {
		if err := emit(conv.Convert(ctx, strings.Join(args, " "))); err != nil {
			return err
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if err := emit(conv.Convert(ctx, scanner.Text())); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	if getBoolWithFallback("show-cache", "convert.show-cache", false) && !quiet {
		render.NewReporter(os.Stdout, useColors, false).PrintCacheStatus(conv.CacheStatus())
	}
	return nil
}

// buildResolver picks the stylesheet resolver when glob patterns are
// configured and the built-in engine otherwise.
func buildResolver(logger *zap.Logger) (classcss.Resolver, error) {
	patterns := sheetPatterns()
	if len(patterns) == 0 {
		return classcss.NewUtilityResolver(), nil
	}
	resolver, err := classcss.NewSheetResolver(patterns, logger)
	if err != nil {
		return nil, fmt.Errorf("loading stylesheets: %w", err)
	}
	if resolver.Classes() == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no class selectors found in the given stylesheets")
	}
	return resolver, nil
}

func buildLogger() *zap.Logger {
	if !getBoolWithFallback("verbose", "verbose", false) {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
