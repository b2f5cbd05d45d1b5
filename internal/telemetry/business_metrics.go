package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level observability:
// the catalog-to-checkout funnel, promo code usage, and the support chat.
// A nil *BusinessMetrics is valid and records nothing, which keeps service
// tests free of registry setup.
type BusinessMetrics struct {
	// Catalog engagement
	CatalogViews prometheus.Counter

	// Cart activity
	CartItemsAdded   *prometheus.CounterVec
	CartItemsRemoved prometheus.Counter
	CartUpdated      prometheus.Counter

	// Promo codes
	PromoApplied  *prometheus.CounterVec
	PromoRejected prometheus.Counter

	// Checkout funnel
	CheckoutCompleted prometheus.Counter
	CheckoutEmptyCart prometheus.Counter
	PurchaseValue     prometheus.Histogram
	PurchaseItemCount prometheus.Histogram

	// Support chat
	ChatConnections prometheus.Counter
	ChatMessages    *prometheus.CounterVec
}

// NewBusinessMetrics creates and registers all business metrics.
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "gameshop"
	}
	subsystem := "business"

	return &BusinessMetrics{
		CatalogViews: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "catalog_views_total",
			Help:      "Total catalog list requests",
		}),
		CartItemsAdded: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cart_items_added_total",
			Help:      "Items added to carts, by rarity tier",
		}, []string{"rarity"}),
		CartItemsRemoved: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cart_items_removed_total",
			Help:      "Cart lines removed by users",
		}),
		CartUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cart_updates_total",
			Help:      "Cart quantity updates",
		}),
		PromoApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "promo_applied_total",
			Help:      "Successful promo code applications, by code",
		}, []string{"code"}),
		PromoRejected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "promo_rejected_total",
			Help:      "Promo code attempts that did not match the registry",
		}),
		CheckoutCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "checkout_completed_total",
			Help:      "Completed purchases",
		}),
		CheckoutEmptyCart: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "checkout_empty_cart_total",
			Help:      "Checkout attempts rejected because the cart was empty",
		}),
		PurchaseValue: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "purchase_value",
			Help:      "Purchase totals after discount",
			Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000},
		}),
		PurchaseItemCount: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "purchase_item_count",
			Help:      "Number of units per purchase",
			Buckets:   []float64{1, 2, 3, 5, 10, 20},
		}),
		ChatConnections: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "chat_connections_total",
			Help:      "Support chat WebSocket connections opened",
		}),
		ChatMessages: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "chat_messages_total",
			Help:      "Support chat messages, by sender (user or bot)",
		}, []string{"sender"}),
	}
}

// RegisterSessionGauge exposes the live session count from the store.
func RegisterSessionGauge(namespace string, count func() int) {
	if namespace == "" {
		namespace = "gameshop"
	}
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "business",
		Name:      "active_sessions",
		Help:      "Sessions currently live in the store",
	}, func() float64 { return float64(count()) })
}

// Recorder methods below are nil-safe so callers never need to guard.

// RecordItemAdded counts an add-to-cart by rarity.
func (m *BusinessMetrics) RecordItemAdded(rarity string) {
	if m == nil {
		return
	}
	m.CartItemsAdded.WithLabelValues(rarity).Inc()
}

// RecordItemRemoved counts a cart line removal.
func (m *BusinessMetrics) RecordItemRemoved() {
	if m == nil {
		return
	}
	m.CartItemsRemoved.Inc()
}

// RecordCartUpdated counts a quantity update.
func (m *BusinessMetrics) RecordCartUpdated() {
	if m == nil {
		return
	}
	m.CartUpdated.Inc()
}

// RecordPromo counts a promo attempt outcome.
func (m *BusinessMetrics) RecordPromo(code string, applied bool) {
	if m == nil {
		return
	}
	if applied {
		m.PromoApplied.WithLabelValues(code).Inc()
	} else {
		m.PromoRejected.Inc()
	}
}

// RecordCheckout counts a completed purchase with its value and size.
func (m *BusinessMetrics) RecordCheckout(total float64, itemCount int) {
	if m == nil {
		return
	}
	m.CheckoutCompleted.Inc()
	m.PurchaseValue.Observe(total)
	m.PurchaseItemCount.Observe(float64(itemCount))
}

// RecordEmptyCartCheckout counts a rejected empty-cart checkout.
func (m *BusinessMetrics) RecordEmptyCartCheckout() {
	if m == nil {
		return
	}
	m.CheckoutEmptyCart.Inc()
}

// RecordCatalogView counts a catalog listing.
func (m *BusinessMetrics) RecordCatalogView() {
	if m == nil {
		return
	}
	m.CatalogViews.Inc()
}

// RecordChatConnection counts a chat socket upgrade.
func (m *BusinessMetrics) RecordChatConnection() {
	if m == nil {
		return
	}
	m.ChatConnections.Inc()
}

// RecordChatMessage counts one chat message by sender.
func (m *BusinessMetrics) RecordChatMessage(sender string) {
	if m == nil {
		return
	}
	m.ChatMessages.WithLabelValues(sender).Inc()
}
