package main

import (
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"waterdeck/internal/config"
	"waterdeck/internal/domain"
	"waterdeck/internal/monitors"
	"waterdeck/internal/ui/views"
)

var (
	listQuery string
	listLimit int
	listPage  int
	listSort  string
)

var listCmd = &cobra.Command{
	Use:   "list [catalog]",
	Short: "Print one page of monitors without starting the UI",
	Example: `  waterdeck list monitors.toml
  waterdeck list --query drift --page 2
  waterdeck list --sort alerts_desc`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg := loadConfig(nil)
		path := catalogPath(args, cfg)

		sort, err := monitors.ParseSort(listSort)
		if err != nil {
			return err
		}

		loaded, err := monitors.LoadCatalog(path)
		if err != nil {
			return err
		}
		limit := listLimit
		if limit <= 0 {
			limit = cfg.UISettings.PageSize
		}
		query := monitors.Query{Search: listQuery, Page: listPage, Limit: limit, Sort: sort}
		if !cmd.Flags().Changed("query") {
			query.Search = cfg.UISettings.InitialQuery
		}

		rows, meta := monitors.List(monitors.NewMemoryStore(loaded), query)
		return printMonitors(cmd.OutOrStdout(), cfg, rows, meta, query.Search, time.Now())
	},
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "search term (default: the saved search)")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "monitors per page (default: ui.page_size)")
	listCmd.Flags().IntVar(&listPage, "page", 1, "page to print")
	listCmd.Flags().StringVar(&listSort, "sort", monitors.DefaultSort().String(), "order as field[_asc|_desc]; fields: created_at, name, severity, alerts")
	rootCmd.AddCommand(listCmd)
}

// printMonitors writes a page as the same table the dashboard draws
func printMonitors(w io.Writer, cfg *config.Config, rows []*domain.Monitor, meta domain.ListMeta, search string, now time.Time) error {
	if meta.Matched == 0 {
		if search == "" {
			_, err := fmt.Fprintln(w, "No monitors in the catalog.")
			return err
		}
		_, err := fmt.Fprintf(w, "No monitors match %q.\n", search)
		return err
	}

	renderer := views.NewMonitorRenderer(views.NewStyles(), cfg.UISettings.ShowSeverity, cfg.UISettings.ShowModel)
	if _, err := fmt.Fprintln(w, renderer.RenderHeader()); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, m := range rows {
		if _, err := fmt.Fprintln(w, renderer.RenderMonitor(m, false, search, now)); err != nil {
			return errors.Wrap(err, "write row")
		}
	}

	first := (meta.Page-1)*meta.Limit + 1
	_, err := fmt.Fprintf(w, "\nPage %d of %d · %d-%d of %d\n",
		meta.Page, meta.Pages(), first, first+len(rows)-1, meta.Matched)
	return err
}
