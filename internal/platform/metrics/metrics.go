package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. A nil *Metrics is
// valid and turns every increment into a no-op, so tests can omit it.
type Metrics struct {
	ContactsCreated         prometheus.Counter
	ContactsUpdated         prometheus.Counter
	ContactsDeleted         prometheus.Counter
	PhoneValidationFailures prometheus.Counter
}

// New creates and registers all Prometheus metrics. Call it once per process:
// promauto registers against the default registry.
func New() *Metrics {
	return &Metrics{
		ContactsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agenda_contacts_created_total",
			Help: "Total number of contacts created",
		}),
		ContactsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agenda_contacts_updated_total",
			Help: "Total number of contacts updated",
		}),
		ContactsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agenda_contacts_deleted_total",
			Help: "Total number of contacts deleted",
		}),
		PhoneValidationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agenda_phone_validation_failures_total",
			Help: "Total number of rejected or failed phone validation calls",
		}),
	}
}

func (m *Metrics) IncContactsCreated() {
	if m == nil {
		return
	}
	m.ContactsCreated.Inc()
}

func (m *Metrics) IncContactsUpdated() {
	if m == nil {
		return
	}
	m.ContactsUpdated.Inc()
}

func (m *Metrics) IncContactsDeleted() {
	if m == nil {
		return
	}
	m.ContactsDeleted.Inc()
}

func (m *Metrics) IncPhoneValidationFailures() {
	if m == nil {
		return
	}
	m.PhoneValidationFailures.Inc()
}
