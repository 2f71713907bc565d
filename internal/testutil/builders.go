package testutil

import (
	"testing"

	"github.com/autowired/injectable"
	"github.com/stretchr/testify/require"
)

// ContainerBuilder assembles an isolated, loaded container for a test.
type ContainerBuilder struct {
	t             *testing.T
	registrations []injectable.Registration
	loadOpts      []injectable.LoadOption
}

// NewContainerBuilder creates a ContainerBuilder.
func NewContainerBuilder(t *testing.T) *ContainerBuilder {
	t.Helper()
	return &ContainerBuilder{t: t}
}

// With appends registrations to the container's catalog.
func (b *ContainerBuilder) With(regs ...injectable.Registration) *ContainerBuilder {
	b.registrations = append(b.registrations, regs...)
	return b
}

// WithGroups fixes the container's active-groups allow-list at load
// time.
func (b *ContainerBuilder) WithGroups(groups ...string) *ContainerBuilder {
	b.loadOpts = append(b.loadOpts, injectable.WithGroups(groups...))
	return b
}

// WithLoadOptions appends arbitrary load options.
func (b *ContainerBuilder) WithLoadOptions(opts ...injectable.LoadOption) *ContainerBuilder {
	b.loadOpts = append(b.loadOpts, opts...)
	return b
}

// Build loads everything into a fresh container and fails the test on
// any load error.
func (b *ContainerBuilder) Build() *injectable.Container {
	b.t.Helper()

	c := injectable.New()
	cat := injectable.NewCatalog(b.t.Name(), b.registrations...)
	opts := append([]injectable.LoadOption{injectable.WithCatalogs(cat)}, b.loadOpts...)

	require.NoError(b.t, c.Load(opts...), "failed to load test container")

	return c
}

// ProcessorCatalog builds the canonical three-processor registration
// set: DefaultProcessor (no group), NewGenProcessor (group "new"), and
// OldGenProcessor (group "old"), all bound to the Processor interface.
func ProcessorCatalog() []injectable.Registration {
	return []injectable.Registration{
		injectable.Provide(NewDefaultProcessor,
			injectable.As(injectable.TypeOf[Processor]())),
		injectable.Provide(NewNewGenProcessor,
			injectable.As(injectable.TypeOf[Processor]()),
			injectable.InGroup("new")),
		injectable.Provide(NewOldGenProcessor,
			injectable.As(injectable.TypeOf[Processor]()),
			injectable.InGroup("old")),
	}
}
