package commands

import (
	"os"

	"pastpresent-backend/lib/serviceutil"
	"pastpresent-backend/services/collection"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var playersSearch *string
var playersInClub *bool

func init() {
	playersSearch = playersCmd.Flags().String(
		"search", "", "Only show players whose name matches, accents ignored.")
	playersInClub = playersCmd.Flags().Bool(
		"in-club", false, "Only show players with at least one owned card.")
	rootCmd.AddCommand(playersCmd)
}

var playersCmd = &cobra.Command{
	Use:   "players [--search <name>] [--in-club]",
	Short: "Prints the stored players, highest rated first.",
	Run: func(cmd *cobra.Command, args []string) {
		store, database := openStore()
		defer database.Close()

		opts := collection.ListOptions{
			Search: *playersSearch,
			Club:   collection.ClubFilterAll,
			Sort:   collection.RatingSortDesc,
		}
		if *playersInClub {
			opts.Club = collection.ClubFilterInClub
		}

		players, err := store.ListPlayers(cmd.Context(), opts)
		if err != nil {
			serviceutil.Fatal("list players", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Player", "Slug", "Rating", "Version", "Owned", "Cards"})

		for _, p := range players {
			rating := any("-")
			if p.BaseCardRating != nil {
				rating = *p.BaseCardRating
			}
			version := p.BaseCardVersion
			if version == "" {
				version = "-"
			}
			t.AppendRow(table.Row{
				p.DisplayName,
				p.Slug,
				rating,
				version,
				p.InClubCount,
				p.TotalCards,
			})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
