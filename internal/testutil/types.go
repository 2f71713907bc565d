// Package testutil provides shared fixtures and builders for
// injectable's test suites.
package testutil

// Processor is the canonical fixture interface: one abstraction with
// several competing implementations separated by group labels.
type Processor interface {
	Process(value int) int
}

// DefaultProcessor carries no group and is therefore always eligible.
type DefaultProcessor struct{}

func (DefaultProcessor) Process(value int) int { return value + 1 }

// NewDefaultProcessor constructs a DefaultProcessor.
func NewDefaultProcessor() (DefaultProcessor, error) { return DefaultProcessor{}, nil }

// NewGenProcessor belongs to the "new" group.
type NewGenProcessor struct{}

func (NewGenProcessor) Process(value int) int { return value * 2 }

// NewNewGenProcessor constructs a NewGenProcessor.
func NewNewGenProcessor() (NewGenProcessor, error) { return NewGenProcessor{}, nil }

// OldGenProcessor belongs to the "old" group.
type OldGenProcessor struct{}

func (OldGenProcessor) Process(value int) int { return value - 1 }

// NewOldGenProcessor constructs an OldGenProcessor.
func NewOldGenProcessor() (OldGenProcessor, error) { return OldGenProcessor{}, nil }

// Unrelated is an injectable that no group machinery should ever
// affect.
type Unrelated struct {
	Ran bool
}

// NewUnrelated constructs an Unrelated.
func NewUnrelated() (*Unrelated, error) { return &Unrelated{}, nil }
