package main

type ScraperConfig struct {
	// listing url to walk, e.g. "https://www.fut.gg/players/"
	BaseUrl string `json:"base_url"`
	// slept after every fetched page, keeps the crawl polite
	DelaySeconds float64 `json:"delay_seconds"`
	// 0 walks the listing until it runs out
	MaxPages  int64  `json:"max_pages"`
	UserAgent string `json:"user_agent"`
	// cron spec for scheduled runs, empty disables the schedule
	Cron string `json:"cron"`
}

type Config struct {
	Database string        `json:"database"`
	Port     int           `json:"port"`
	Scraper  ScraperConfig `json:"scraper"`
}
