package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sgx-labs/docsmith/internal/content"
	"github.com/sgx-labs/docsmith/internal/nav"
	"github.com/sgx-labs/docsmith/internal/watcher"
	"github.com/sgx-labs/docsmith/internal/web"
)

func serveCmd() *cobra.Command {
	var (
		addr      string
		useCache  bool
		watchRoot bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the content API over HTTP (localhost only)",
		Long: `Start the read-only JSON API. By default every request re-scans the
corpus; --cache keeps an mtime-keyed summary index, and --watch drops
that cache on file changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, navb, cfg, err := buildIndex()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			warnDivergence(lib, navb)

			var idx web.Index = lib
			if useCache || watchRoot {
				cache := content.NewCache(lib)
				idx = cache
				if watchRoot {
					go func() {
						if err := watcher.Watch(cfg.Content.Root, cache, log.Default()); err != nil {
							log.Error("watcher stopped", "err", err)
						}
					}()
				}
			}

			return web.Serve(addr, idx, navb, Version, cfg.Content.Root, log.Default())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	cmd.Flags().BoolVar(&useCache, "cache", false, "Cache the summary index between requests")
	cmd.Flags().BoolVar(&watchRoot, "watch", false, "Watch the content root and invalidate the cache on changes (implies --cache)")
	return cmd
}

// warnDivergence runs the navigation cross-check at startup so divergence
// shows up in logs instead of as silent 404s.
func warnDivergence(lib *content.Library, navb *nav.Builder) {
	for _, w := range nav.Validate(navb.Groups(), lib.ListAll()) {
		log.Warn("navigation divergence", "issue", w)
	}
}
