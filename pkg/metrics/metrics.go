package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores del motor de transacciones, expuestos en /metrics.
var (
	// TransactionsPosted movimientos registrados con éxito, por tipo (OUT/IN).
	TransactionsPosted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cleanstock",
		Name:      "transactions_posted_total",
		Help:      "Movimientos de inventario registrados con éxito.",
	}, []string{"tipe"})

	// TransactionsRejected movimientos rechazados en validación, por motivo.
	TransactionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cleanstock",
		Name:      "transactions_rejected_total",
		Help:      "Movimientos rechazados por el motor de transacciones.",
	}, []string{"reason"})
)
