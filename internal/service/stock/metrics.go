package stock

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LedgerTransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_ledger_transactions_total",
			Help: "Total number of stock ledger transactions by type",
		},
		[]string{"type"},
	)

	LedgerRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_ledger_rejections_total",
			Help: "Total number of stock operations rejected for insufficient stock",
		},
		[]string{"operation"},
	)

	ProjectionLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_projection_lookups_total",
			Help: "Stock projection cache lookups by result",
		},
		[]string{"result"},
	)
)
