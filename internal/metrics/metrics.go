// Package metrics exposes the bot's Prometheus counters and the
// health/metrics HTTP listener.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streakbot_commands_total",
			Help: "Chat commands dispatched, by command.",
		},
		[]string{"command"},
	)

	StreakFetchFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "streakbot_streak_fetch_failures_total",
			Help: "Leaderboard aggregations that failed.",
		},
	)
)

func init() {
	prometheus.MustRegister(CommandsTotal)
	prometheus.MustRegister(StreakFetchFailures)
}

// ListenAndServe serves /healthy and /metrics on addr.
func ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthy", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "OK\n")
	})
	mux.Handle("/metrics", promhttp.Handler())

	return http.ListenAndServe(addr, mux)
}
