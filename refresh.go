package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"
)

// refreshTitles are the high-traffic titles kept warm by the scheduler.
var refreshTitles = []string{
	"Software Developer",
	"Nurse",
	"Project Manager",
	"Teacher",
	"Data Analyst",
	"Marketing Manager",
	"Financial Analyst",
	"Graphic Designer",
	"Sales Representative",
	"Customer Service Representative",
}

// RefreshResult tracks one scheduler run.
type RefreshResult struct {
	Attempted int
	Refreshed int
	Errors    []string
}

// RefreshSample recomputes records for a random sample of the key titles.
// A sample size of zero or above the list length refreshes everything.
func RefreshSample(svc *JobService, sampleSize int) RefreshResult {
	titles := sampleTitles(refreshTitles, sampleSize)

	var result RefreshResult
	for _, title := range titles {
		result.Attempted++
		rec := svc.RefreshJobRecord(title)
		if rec == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: empty title", title))
			continue
		}
		log.Printf("refreshed title=%q source=%s year5=%.0f", title, rec.Source, rec.Risk.Year5Risk)
		result.Refreshed++
	}
	return result
}

// sampleTitles picks n distinct titles at random, preserving no order
// guarantees. n <= 0 or n >= len(titles) returns all titles.
func sampleTitles(titles []string, n int) []string {
	if n <= 0 || n >= len(titles) {
		out := make([]string, len(titles))
		copy(out, titles)
		return out
	}
	idx := rand.Perm(len(titles))[:n]
	out := make([]string, 0, n)
	for _, i := range idx {
		out = append(out, titles[i])
	}
	return out
}

// FormatRefreshSummary returns a human-readable summary of a refresh run.
func FormatRefreshSummary(result RefreshResult) string {
	msg := fmt.Sprintf("Refreshed %d/%d key job records", result.Refreshed, result.Attempted)
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\nWarnings:\n%s", strings.Join(result.Errors, "\n"))
	}
	return msg
}

// StartRefreshScheduler starts a cron-based scheduler that periodically
// recomputes records for a sample of key job titles, so cached risk data
// tracks fresh BLS figures. The schedule is a standard 5-field cron
// expression. Examples: "0 6 * * *" (daily 6am), "0 6 * * 1" (Mondays 6am).
func StartRefreshScheduler(cfg Config, svc *JobService, api *slack.Client) {
	schedule := strings.TrimSpace(cfg.RefreshSchedule)
	if schedule == "" {
		log.Println("Refresh disabled (refresh_schedule not set)")
		return
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(schedule)
	if err != nil {
		log.Printf("Invalid refresh_schedule '%s': %v, refresh disabled", schedule, err)
		return
	}

	log.Printf("Refresh scheduled (cron: %s) sample=%d", schedule, cfg.RefreshSampleSize)

	go func() {
		for {
			now := time.Now().In(cfg.Location)
			next := sched.Next(now)
			wait := next.Sub(now)
			log.Printf("Next refresh at %s (in %s)", next.Format("Mon Jan 2 15:04"), wait.Round(time.Minute))

			time.Sleep(wait)

			result := RefreshSample(svc, cfg.RefreshSampleSize)
			summary := FormatRefreshSummary(result)
			log.Printf("Refresh complete: %s", summary)

			if api != nil && cfg.SlackChannelID != "" {
				_, _, postErr := api.PostMessage(cfg.SlackChannelID, slack.MsgOptionText(
					fmt.Sprintf("Refresh complete: %s", summary), false))
				if postErr != nil {
					log.Printf("Refresh post error: %v", postErr)
				}
			}
		}
	}()
}
