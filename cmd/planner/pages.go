package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/username/planner/internal/config"
	"github.com/username/planner/internal/pagination"
	"github.com/username/planner/internal/planner"
	"go.uber.org/zap"
)

func pagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Print the page plan without generating a PDF",
		Long:  "List every page the planner would contain: its half-week, the days it covers, and any blank pages inserted for duplex printing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			gen, err := planner.New(cfg, logger)
			if err != nil {
				return err
			}

			pages := gen.Pages()
			logger.Debug("Page plan built",
				zap.String("range", gen.Range().String()),
				zap.Int("pages", len(pages)))

			fmt.Fprintf(out, "\n📅 Page plan for %s\n", gen.Range())
			fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
			fmt.Fprintln(out, "  Page | Side  | Days")
			fmt.Fprintln(out, "-------+-------+----------------------------------------")
			for _, page := range pages {
				fmt.Fprintf(out, "  %4d | %-5s | %s\n", page.Index+1, sideLabel(page), dayList(page))
			}
			fmt.Fprintf(out, "\n  Total: %d page(s)\n", len(pages))

			return nil
		},
	}

	addRangeFlags(cmd)

	return cmd
}

func sideLabel(page pagination.Page) string {
	if page.Blank {
		return "blank"
	}
	return page.Side.String()
}

func dayList(page pagination.Page) string {
	if page.Blank {
		return "-"
	}
	days := page.Days()
	labels := make([]string, len(days))
	for i, day := range days {
		labels[i] = day.Format("Mon 02 Jan 2006")
	}
	return strings.Join(labels, ", ")
}
