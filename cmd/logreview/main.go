// Command logreview prints a weekly review of the conversation logs:
// intent distribution, language mix, missed queries worth adding to the
// classifier's training data. Run it against the same DATABASE_URL or
// REDIS_ADDR the API server uses.
package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/aramlabs/aram-assistant/internal/chatlog"
	appconfig "github.com/aramlabs/aram-assistant/internal/config"
	"github.com/aramlabs/aram-assistant/internal/language"
)

const (
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
	colorRed    = "\033[91m"
	colorBlue   = "\033[94m"
	colorGold   = "\033[33m"
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
)

var reviewSkipIntents = map[string]bool{
	"UNKNOWN001": true,
	"OFFENSIVE":  true,
	"IRRELEVANT": true,
	"GENERAL":    true,
	"GREET001":   true,
}

func main() {
	_ = godotenv.Load()
	cfg := appconfig.Load()

	store, cleanup, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%slogreview: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entries, err := store.List(ctx, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%slogreview: failed to load logs: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}

	printHeader()
	if len(entries) == 0 {
		fmt.Printf("\n%sNo conversations logged yet. Start chatting and run this again.%s\n\n", colorYellow, colorReset)
		return
	}

	summaryStats(entries)
	weeklyTrend(entries)
	languageBreakdown(entries)
	popularQueries(entries)
	missedQueries(entries)
	filteredQueries(entries)

	fmt.Printf("\n%s%s%s\n", colorGold+colorBold, strings.Repeat("═", 60), colorReset)
	fmt.Printf("%s  Review complete. Run weekly and retrain after adding queries.%s\n", colorGold, colorReset)
	fmt.Printf("%s%s%s\n\n", colorGold+colorBold, strings.Repeat("═", 60), colorReset)
}

func openStore(cfg *appconfig.Config) (chatlog.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return chatlog.NewPostgresStore(pool), pool.Close, nil
	}
	if cfg.RedisAddr != "" {
		opts := &redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client := redis.NewClient(opts)
		return chatlog.NewRedisStore(client), func() { _ = client.Close() }, nil
	}
	return nil, nil, fmt.Errorf("no log backend configured; set DATABASE_URL or REDIS_ADDR")
}

func printHeader() {
	fmt.Printf("\n%s%s\n", colorGold+colorBold, strings.Repeat("═", 60))
	fmt.Println("   அறம் (ARAM) — Log Reviewer & Training Suggester")
	fmt.Println("   Weekly Review Tool for Continuous Improvement")
	fmt.Printf("%s%s\n", strings.Repeat("═", 60), colorReset)
}

func printSection(title string) {
	fmt.Printf("\n%s%s%s\n", colorBlue+colorBold, strings.Repeat("─", 60), "")
	fmt.Printf("  %s\n", title)
	fmt.Printf("%s%s\n", strings.Repeat("─", 60), colorReset)
}

func summaryStats(entries []chatlog.Entry) {
	printSection("📊 OVERALL STATISTICS")

	now := time.Now().UTC()
	midnight := now.Truncate(24 * time.Hour)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	var today, week int
	counts := map[string]int{}
	for _, e := range entries {
		counts[e.Intent]++
		if !e.Timestamp.Before(midnight) {
			today++
		}
		if !e.Timestamp.Before(weekAgo) {
			week++
		}
	}

	fmt.Printf("  Total conversations logged : %s%d%s\n", colorGreen+colorBold, len(entries), colorReset)
	fmt.Printf("  Conversations today        : %s%d%s\n", colorGreen, today, colorReset)
	fmt.Printf("  Conversations this week    : %s%d%s\n", colorGreen, week, colorReset)

	type pair struct {
		intent string
		n      int
	}
	dist := make([]pair, 0, len(counts))
	for id, n := range counts {
		dist = append(dist, pair{id, n})
	}
	sort.Slice(dist, func(i, j int) bool { return dist[i].n > dist[j].n })

	fmt.Printf("\n  %sIntent Distribution:%s\n", colorBold, colorReset)
	for _, p := range dist {
		bar := strings.Repeat("█", min(p.n, 30))
		color := colorGreen
		if p.intent == "UNKNOWN001" || p.intent == "OFFENSIVE" || p.intent == "IRRELEVANT" {
			color = colorRed
		}
		fmt.Printf("    %-15s %s%s%s %d\n", p.intent, color, bar, colorReset, p.n)
	}
}

func weeklyTrend(entries []chatlog.Entry) {
	printSection("📈 LAST 7 DAYS TREND")

	now := time.Now().UTC()
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Truncate(24 * time.Hour)
		next := day.Add(24 * time.Hour)
		count := 0
		for _, e := range entries {
			if !e.Timestamp.Before(day) && e.Timestamp.Before(next) {
				count++
			}
		}
		bar := "·"
		if count > 0 {
			bar = strings.Repeat("█", min(count, 40))
		}
		label := day.Format("Mon 02 Jan")
		if i == 0 {
			label = "Today"
		}
		fmt.Printf("  %-12s %s%s%s %d\n", label, colorGreen, bar, colorReset, count)
	}
}

func languageBreakdown(entries []chatlog.Entry) {
	printSection("🌐 LANGUAGE BREAKDOWN")

	var tamil, tanglish, english int
	for _, e := range entries {
		switch language.Detect(e.UserInput) {
		case language.Tamil:
			tamil++
		case language.Tanglish:
			tanglish++
		default:
			english++
		}
	}
	total := len(entries)
	fmt.Printf("  English  : %s%d%s (%d%%)\n", colorGreen, english, colorReset, english*100/total)
	fmt.Printf("  Tamil    : %s%d%s (%d%%)\n", colorGreen, tamil, colorReset, tamil*100/total)
	fmt.Printf("  Tanglish : %s%d%s (%d%%)\n", colorGreen, tanglish, colorReset, tanglish*100/total)
}

func popularQueries(entries []chatlog.Entry) {
	printSection("🔥 MOST POPULAR QUERIES (Successful)")

	counts := map[string]int{}
	for _, e := range entries {
		if reviewSkipIntents[e.Intent] {
			continue
		}
		q := strings.ToLower(strings.TrimSpace(e.UserInput))
		if q != "" {
			counts[q]++
		}
	}
	if len(counts) == 0 {
		fmt.Printf("  %sNo successful legal queries yet.%s\n", colorYellow, colorReset)
		return
	}

	type pair struct {
		q string
		n int
	}
	top := make([]pair, 0, len(counts))
	for q, n := range counts {
		top = append(top, pair{q, n})
	}
	sort.Slice(top, func(i, j int) bool { return top[i].n > top[j].n })
	if len(top) > 10 {
		top = top[:10]
	}
	fmt.Println("  Top queries users are asking:")
	for _, p := range top {
		fmt.Printf("  %s×%d%s  %q\n", colorGreen, p.n, colorReset, p.q)
	}
}

func missedQueries(entries []chatlog.Entry) {
	printSection("⚠️  MISSED QUERIES — Add These to Training Data!")

	seen := map[string]bool{}
	var missed []chatlog.Entry
	for _, e := range entries {
		q := strings.TrimSpace(e.UserInput)
		if e.Intent == "UNKNOWN001" && q != "" && !seen[q] {
			seen[q] = true
			missed = append(missed, e)
		}
	}
	if len(missed) == 0 {
		fmt.Printf("  %s✅ No missed queries. ARAM understood everything.%s\n", colorGreen, colorReset)
		return
	}

	fmt.Printf("  %sFound %d queries ARAM didn't understand:%s\n\n", colorYellow, len(missed), colorReset)
	for _, e := range missed {
		fmt.Printf("  %s✗%s [%s] %q\n", colorRed, colorReset, e.Timestamp.Format("2006-01-02"), e.UserInput)
	}
	fmt.Printf("\n  %s💡 Action: add these to the training set and regenerate model.json%s\n", colorBold, colorReset)
}

func filteredQueries(entries []chatlog.Entry) {
	printSection("🚨 OFFENSIVE / IRRELEVANT QUERIES")

	var offensive, irrelevant []chatlog.Entry
	for _, e := range entries {
		switch e.Intent {
		case "OFFENSIVE":
			offensive = append(offensive, e)
		case "IRRELEVANT":
			irrelevant = append(irrelevant, e)
		}
	}
	if len(offensive) == 0 && len(irrelevant) == 0 {
		fmt.Printf("  %s✅ No offensive or irrelevant queries found.%s\n", colorGreen, colorReset)
		return
	}
	if len(offensive) > 0 {
		fmt.Printf("  %sOffensive queries (%d):%s\n", colorRed, len(offensive), colorReset)
		for _, e := range tail(offensive, 5) {
			fmt.Printf("    • %q\n", e.UserInput)
		}
	}
	if len(irrelevant) > 0 {
		fmt.Printf("\n  %sIrrelevant queries (%d):%s\n", colorYellow, len(irrelevant), colorReset)
		for _, e := range tail(irrelevant, 5) {
			fmt.Printf("    • %q\n", e.UserInput)
		}
	}
}

func tail(entries []chatlog.Entry, n int) []chatlog.Entry {
	if len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}
