// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

// Command internmatch prints recommendations for a single candidate profile.
//
// It reads the same configuration as the server (config.yaml and environment
// variables), so LLM_API_KEY enables remote scoring here too:
//
//	internmatch --education "B.Tech" --skills JavaScript,React \
//	    --interests Technology --location "Bangalore, Karnataka"
//
// Use --local to skip the remote scorer and --explain to print the local
// ranking with per-dimension score breakdowns.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tomtom215/internmatch/internal/catalog"
	"github.com/tomtom215/internmatch/internal/config"
	"github.com/tomtom215/internmatch/internal/llm"
	"github.com/tomtom215/internmatch/internal/logging"
	"github.com/tomtom215/internmatch/internal/models"
	"github.com/tomtom215/internmatch/internal/recommend"
	"github.com/tomtom215/internmatch/internal/validation"
)

// Exit codes.
const (
	exitOK     = 0
	exitError  = 1
	exitUsage  = 2
	exitConfig = 3
)

// options holds parsed command-line flags.
type options struct {
	request     models.RecommendationRequest
	catalogPath string
	localOnly   bool
	explain     bool
	timeout     time.Duration
	verbose     bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code. Help and
// usage errors go to stderr so stdout only ever carries JSON.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	code := exitOK
	cmd := newRootCommand(func(ctx context.Context, opts *options) {
		code = recommendProfile(ctx, opts, stdout, stderr)
	})
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return exitUsage
	}
	return code
}

// newRootCommand builds the internmatch command. action runs once flags
// have parsed cleanly.
func newRootCommand(action func(context.Context, *options)) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "internmatch",
		Short: "Recommend internships for one candidate profile",
		Long: "Prints internship recommendations for one candidate profile as JSON.\n\n" +
			"Configuration is read from config.yaml and environment variables, the same as the server.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			action(cmd.Context(), opts)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.request.Name, "name", "", "candidate name (optional)")
	f.StringVar(&opts.request.Education, "education", "", "highest qualification, e.g. \"B.Tech\"")
	f.StringSliceVar(&opts.request.Skills, "skills", nil, "comma-separated skills (1-5)")
	f.StringSliceVar(&opts.request.Interests, "interests", nil, "comma-separated sectors of interest (1-3)")
	f.StringVar(&opts.request.Location, "location", "", "preferred location, e.g. \"Pune, Maharashtra\"")
	f.StringVar(&opts.request.PreferredType, "type", "", "preferred employment type: Full-time or Part-time")
	f.StringVar(&opts.catalogPath, "catalog", "", "posting catalog file (overrides CATALOG_PATH)")
	f.BoolVar(&opts.localOnly, "local", false, "skip the remote scorer")
	f.BoolVar(&opts.explain, "explain", false, "print the local ranking with score breakdowns")
	f.DurationVar(&opts.timeout, "timeout", 40*time.Second, "overall deadline for the recommendation")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging to stderr")

	return cmd
}

// recommendProfile validates the profile, builds the engine and writes the
// result to stdout.
func recommendProfile(ctx context.Context, opts *options, stdout, stderr io.Writer) int {
	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	logging.Init(logging.Config{Level: level, Format: "console", Output: stderr})

	if verr := validation.ValidateStruct(&opts.request); verr != nil {
		fmt.Fprintf(stderr, "invalid profile: %v\n", verr)
		return exitUsage
	}
	profile, err := opts.request.ToProfile()
	if err != nil {
		fmt.Fprintf(stderr, "invalid profile: %v\n", err)
		return exitUsage
	}

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return exitConfig
	}
	if opts.catalogPath != "" {
		cfg.Catalog.Path = opts.catalogPath
	}

	engine, err := buildEngine(ctx, cfg, opts, logging.Logger())
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	var out any
	if opts.explain {
		out = engine.Explain(profile)
	} else {
		ctx, cancel := context.WithTimeout(ctx, opts.timeout)
		defer cancel()
		out = engine.Recommend(ctx, profile)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	return exitOK
}

//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func buildEngine(ctx context.Context, cfg *config.Config, opts *options, logger zerolog.Logger) (*recommend.Engine, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	var remote recommend.RemoteScorer
	if !opts.localOnly && !opts.explain {
		client, err := llm.New(ctx, &cfg.LLM)
		if err != nil {
			logger.Warn().Err(err).Msg("remote scorer unavailable, using local scoring")
		} else if client != nil {
			remote = client
		}
	}

	engineCfg := recommend.ConfigFrom(&cfg.Recommend)
	engineCfg.IncludeBreakdown = engineCfg.IncludeBreakdown || opts.explain
	return recommend.NewEngine(engineCfg, cat, remote, logger)
}
