package commands

import (
	"os"
	"time"

	"pastpresent-backend/lib/scrapers/futgg"
	"pastpresent-backend/lib/serviceutil"
	"pastpresent-backend/services/collection/scraper"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var scrapeBaseUrl *string
var scrapeDelay *float64
var scrapeMaxPages *int64

func init() {
	scrapeBaseUrl = scrapeCmd.Flags().String(
		"url", "https://www.fut.gg/players/", "The listing url to walk.")
	scrapeDelay = scrapeCmd.Flags().Float64(
		"delay", 1, "Seconds slept after every fetched page.")
	scrapeMaxPages = scrapeCmd.Flags().Int64(
		"max-pages", 0, "Page cap for the run, 0 walks until the listing ends.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--db <path/to/collection.db>] [--max-pages <n>]",
	Short: "Walks the card listing once and stores everything it finds.",
	Run: func(cmd *cobra.Command, args []string) {
		store, database := openStore()
		defer database.Close()

		client := futgg.NewClient(futgg.ClientOptions{
			Delay: time.Duration(*scrapeDelay * float64(time.Second)),
		})
		runner := scraper.NewRunner(store, client, scraper.Options{
			BaseUrl:  *scrapeBaseUrl,
			MaxPages: *scrapeMaxPages,
		})

		report, err := runner.RunOnce(cmd.Context())
		if err != nil {
			serviceutil.Fatal("scrape run failed", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Pages", "Cards", "Names Normalized", "Base Cards Assigned"})
		t.AppendRow(table.Row{
			report.Pages,
			report.Cards,
			report.PlayersNormalized,
			report.BaseCardsAssigned,
		})
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
