// Package metrics defines the custom Prometheus metrics of the dealership
// API. Metrics register with the default registry on package init, so the
// echoprometheus handler mounted at /metrics exposes them alongside the
// per-route HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dealership"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Labels:
//   - role: "user" or "admin"
//   - result: "success", "invalid_credentials" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// GuardDenialsTotal counts requests rejected by a route guard.
// Label:
//   - role: the role the guarded route requires
var GuardDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_denials_total",
		Help:      "Total number of requests rejected for missing or invalid sessions.",
	},
	[]string{"role"},
)

// AccountsCreatedTotal counts new accounts.
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// DashboardDuration measures one ComputeDashboard call.
// Label:
//   - result: "ok" or "error"
var DashboardDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dashboard_compute_duration_seconds",
		Help:      "Duration of dashboard snapshot computation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// ── Rate metrics ──────────────────────────────────────────────────────────────

// RateLookupsTotal counts exchange-rate lookups.
// Label:
//   - source: "live", "cache", "fallback" or "unavailable"
var RateLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_lookups_total",
		Help:      "Total number of exchange-rate lookups, by source.",
	},
	[]string{"source"},
)
