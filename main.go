package main

import (
	"log"

	"github.com/slack-go/slack"
)

func main() {
	cfg := LoadConfig()

	store := OpenSearchStore(cfg)
	defer store.Close()
	SeedJobTitles(store, seedJobTitles)

	overrides, err := LoadOverrides(cfg.OverridesPath)
	if err != nil {
		log.Fatalf("loading overrides: %v", err)
	}
	log.Printf("overrides loaded entries=%d", overrides.Len())

	bls := NewBLSClient(cfg.BLSAPIKey, cfg.BLSBaseURL)

	titles, err := store.ListJobTitles()
	if err != nil {
		log.Printf("listing job titles: %v, using seed table", err)
		titles = seedJobTitles
	}
	resolver := NewResolver(titles, bls)

	svc := NewJobService(bls, resolver, store, NewMemoryCache(), overrides, cfg.UnknownGrowthPolicy, cfg.SimilarJobLimit)

	var api *slack.Client
	if cfg.SlackConfigured() {
		api = slack.New(cfg.SlackBotToken)
	}
	StartRefreshScheduler(cfg, svc, api)

	var advice *AdviceClient
	if cfg.AdviceConfigured() {
		advice = NewAdviceClient(cfg.AnthropicAPIKey, cfg.AdviceModel)
	}

	srv := NewServer(cfg, svc, store, advice)
	if err := srv.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
