package metrics

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the metric namespace prefix.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}
