// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package supervisor provides process supervision for Internmatch using suture v4.

Long-running services are organized into a two-layer tree:

	RootSupervisor ("internmatch")
	├── EngineSupervisor ("engine-layer")
	│   └── RecommendStatsService (if RECOMMEND_STATS_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashing background service restarts inside its own layer without
taking the HTTP listener down. Restarts use suture's failure threshold,
decay and backoff settings from TreeConfig.

Supervisor events are logged through github.com/thejerf/sutureslog, which
takes a *slog.Logger. cmd/server passes logging.NewSlogLogger() so that
events end up in the same zerolog stream as the rest of the process.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, httpCfg, logging.Logger()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped with error")
	}
*/
package supervisor
