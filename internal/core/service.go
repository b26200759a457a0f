package core

// Service exposes the mutation and import operations over a Store. One
// Service instance serves the whole process; every invocation is
// request-scoped and holds no state across calls.
type Service struct {
	store Store
}

// NewService creates a Service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}
