/*
Package observability exposes walker activity as Prometheus metrics.

A Collector produces fsm.LifecycleHooks; pass them to fsm.WithLifecycleHooks and
register the Collector with any prometheus.Registerer:

	c := observability.NewCollector("checkout")
	prometheus.MustRegister(c)
	m := fsm.New(fsm.WithName("checkout"), fsm.WithLifecycleHooks(c.Hooks()))
*/
package observability
