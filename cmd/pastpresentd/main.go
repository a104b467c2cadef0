package main

import (
	"flag"
	"time"

	"pastpresent-backend/lib/configutil"
	"pastpresent-backend/lib/scrapers/futgg"
	"pastpresent-backend/lib/serviceutil"
	"pastpresent-backend/pkg/migrations"
	"pastpresent-backend/services/collection"
	"pastpresent-backend/services/collection/db"
	"pastpresent-backend/services/collection/scraper"
	"pastpresent-backend/services/collection/server"

	"github.com/gorilla/mux"
)

const defaultBaseUrl = "https://www.fut.gg/players/"

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	initialScrape := flag.Bool("scrape", false, "Trigger a scrape run immediately on start.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	database, err := migrations.OpenAndMigrateDB(db.Schema, cfg.Database)
	if err != nil {
		serviceutil.Fatal("open database", err)
	}

	baseUrl := cfg.Scraper.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultBaseUrl
	}

	store := collection.NewStore(database)
	client := futgg.NewClient(futgg.ClientOptions{
		Delay:     time.Duration(cfg.Scraper.DelaySeconds * float64(time.Second)),
		UserAgent: cfg.Scraper.UserAgent,
	})
	runner := scraper.NewRunner(store, client, scraper.Options{
		BaseUrl:  baseUrl,
		MaxPages: cfg.Scraper.MaxPages,
	})

	if cfg.Scraper.Cron != "" {
		err = StartScrapeCron(ctx, cfg.Scraper.Cron, runner)
		if err != nil {
			serviceutil.Fatal("start scrape cron", err)
		}
	}
	if *initialScrape {
		runner.Trigger(ctx)
	}

	router := mux.NewRouter()
	server.NewService(ctx, store, runner).RegisterRoutes(router)

	port := cfg.Port
	if port == 0 {
		port = 8000
	}
	go serviceutil.StartHttpServer(port, router)

	<-ctx.Done()
}
