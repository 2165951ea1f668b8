/*
Package observability turns history events into logs and metrics.

Both helpers return history.LifecycleHooks, so they plug into a tracker.Tracker
or a session.Manager and compose with history.MergeHooks:

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	hooks := history.MergeHooks(metrics.Hooks(), observability.LogHooks(logger))
*/
package observability
