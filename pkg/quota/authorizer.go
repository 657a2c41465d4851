package quota

type QuotaAuthorizer interface {
	Enabled() bool
	Reserve() error
	Release() int
	Limit() int
	Allocated() int
}
