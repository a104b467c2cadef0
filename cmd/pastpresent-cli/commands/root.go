package commands

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"pastpresent-backend/lib/serviceutil"
	"pastpresent-backend/pkg/migrations"
	"pastpresent-backend/services/collection"
	"pastpresent-backend/services/collection/db"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pastpresent-cli",
	Short: "pastpresent-cli scrapes and inspects the player card collection.",
}

var databasePath *string

func init() {
	databasePath = rootCmd.PersistentFlags().String(
		"db", "collection.db", "The collection database to operate on.")
}

func openStore() (collection.Store, *sql.DB) {
	database, err := migrations.OpenAndMigrateDB(db.Schema, *databasePath)
	if err != nil {
		serviceutil.Fatal("open database", err)
	}
	return collection.NewStore(database), database
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
