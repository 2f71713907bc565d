package injectable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestContainer(t *testing.T, regs []Registration, opts ...LoadOption) *Container {
	t.Helper()

	c := New()
	cat := NewCatalog(t.Name(), regs...)
	require.NoError(t, c.Load(append([]LoadOption{WithCatalogs(cat)}, opts...)...))

	return c
}

func TestInjectSingleRegistration(t *testing.T) {
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{Value: 1}, nil }),
	})

	got, err := InjectFrom[*TService](c)

	require.NoError(t, err)
	assert.Equal(t, 1, got.Value)
}

func TestInjectByInterfaceBinding(t *testing.T) {
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{Value: 3}, nil },
			As(TypeOf[TInterface]())),
	})

	got, err := InjectFrom[TInterface](c)

	require.NoError(t, err)
	assert.Equal(t, 3, got.Get())
}

func TestInjectNoMatchFails(t *testing.T) {
	c := loadTestContainer(t, nil)

	_, err := InjectFrom[*TService](c)

	require.ErrorIs(t, err, ErrNoMatches)
}

func TestInjectNoMatchOptionalReturnsZero(t *testing.T) {
	c := loadTestContainer(t, nil)

	got, err := InjectFrom[*TService](c, Optional())

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInjectFilteredToNothingOptionalReturnsZero(t *testing.T) {
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{}, nil }, InGroup("a")),
	})

	got, err := InjectFrom[*TService](c, FromGroup("b"), Optional())

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInjectOptionalStillFailsOnAmbiguity(t *testing.T) {
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{Value: 1}, nil }),
		Provide(func() (*TService, error) { return &TService{Value: 2}, nil }),
	})

	_, err := InjectFrom[*TService](c, Optional())

	require.ErrorIs(t, err, ErrNoPrimary)
}

func TestInjectPrimaryBreaksTie(t *testing.T) {
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{Value: 1}, nil }),
		Provide(func() (*TService, error) { return &TService{Value: 2}, nil }, Primary()),
	})

	got, err := InjectFrom[*TService](c)

	require.NoError(t, err)
	assert.Equal(t, 2, got.Value)
}

func TestInjectQualified(t *testing.T) {
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{Value: 9}, nil },
			Qualifier("niner")),
	})

	got, err := InjectQualifiedFrom[*TService](c, "niner")

	require.NoError(t, err)
	assert.Equal(t, 9, got.Value)
}

func TestInjectQualifiedTypeMismatch(t *testing.T) {
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{}, nil },
			Qualifier("svc")),
	})

	_, err := InjectQualifiedFrom[*TOther](c, "svc")

	var mismatch TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, typeFor[*TOther](), mismatch.Requested)
	assert.Equal(t, typeFor[*TService](), mismatch.Actual)
}

func TestInjectFactoryErrorWrapped(t *testing.T) {
	boom := errors.New("boom")
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return nil, boom }),
	})

	_, err := InjectFrom[*TService](c)

	require.ErrorIs(t, err, boom)

	var factoryErr FactoryError
	require.ErrorAs(t, err, &factoryErr)
	assert.NotEmpty(t, factoryErr.Injectable)
}

func TestInjectFromNamespace(t *testing.T) {
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{Value: 5}, nil },
			InNamespace("feature")),
	})

	_, err := InjectFrom[*TService](c)
	require.ErrorIs(t, err, ErrNoMatches)

	got, err := InjectFrom[*TService](c, FromNamespace("feature"))
	require.NoError(t, err)
	assert.Equal(t, 5, got.Value)
}

func TestInjectSingletonSharedAcrossInjections(t *testing.T) {
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{}, nil }, Singleton()),
	})

	first, err := InjectFrom[*TService](c)
	require.NoError(t, err)
	second, err := InjectFrom[*TService](c)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestInjectTransientConstructsPerInjection(t *testing.T) {
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{}, nil }),
	})

	first, err := InjectFrom[*TService](c)
	require.NoError(t, err)
	second, err := InjectFrom[*TService](c)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestInjectMultipleReturnsAllEligible(t *testing.T) {
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{Value: 1}, nil }),
		Provide(func() (*TService, error) { return &TService{Value: 2}, nil }),
	})

	got, err := InjectMultipleFrom[*TService](c)

	require.NoError(t, err)
	values := make([]int, 0, len(got))
	for _, s := range got {
		values = append(values, s.Value)
	}
	assert.ElementsMatch(t, []int{1, 2}, values)
}

func TestInjectMultipleNeverFailsOnAmbiguity(t *testing.T) {
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{}, nil }, Primary()),
		Provide(func() (*TService, error) { return &TService{}, nil }, Primary()),
	})

	got, err := InjectMultipleFrom[*TService](c)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestInjectMultipleNoMatchFails(t *testing.T) {
	c := loadTestContainer(t, nil)

	_, err := InjectMultipleFrom[*TService](c)

	require.ErrorIs(t, err, ErrNoMatches)
}

func TestInjectMultipleNoMatchOptionalReturnsEmpty(t *testing.T) {
	c := loadTestContainer(t, nil)

	got, err := InjectMultipleFrom[*TService](c, Optional())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInjectMultipleQualified(t *testing.T) {
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{Value: 1}, nil }, Qualifier("svc")),
		Provide(func() (*TService, error) { return &TService{Value: 2}, nil }, Qualifier("svc")),
	})

	got, err := InjectQualifiedMultipleFrom[*TService](c, "svc")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestInjectDefaultContainerHelpers(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{Value: 11}, nil },
			Qualifier("svc")),
	})
	SetDefault(c)

	one, err := Inject[*TService]()
	require.NoError(t, err)
	assert.Equal(t, 11, one.Value)

	qualified, err := InjectQualified[*TService]("svc")
	require.NoError(t, err)
	assert.Equal(t, 11, qualified.Value)

	many, err := InjectMultiple[*TService]()
	require.NoError(t, err)
	assert.Len(t, many, 1)

	qualifiedMany, err := InjectQualifiedMultiple[*TService]("svc")
	require.NoError(t, err)
	assert.Len(t, qualifiedMany, 1)
}

func TestInjectEmptyQualifierFails(t *testing.T) {
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{}, nil }),
	})

	_, err := InjectQualifiedFrom[*TService](c, "")
	require.ErrorIs(t, err, ErrEmptyQualifier)

	_, err = InjectQualifiedMultipleFrom[*TService](c, "")
	require.ErrorIs(t, err, ErrEmptyQualifier)
}

func TestInjectExcludingGroups(t *testing.T) {
	c := loadTestContainer(t, []Registration{
		Provide(func() (*TService, error) { return &TService{Value: 1}, nil }),
		Provide(func() (*TService, error) { return &TService{Value: 2}, nil }, InGroup("old")),
	})

	got, err := InjectFrom[*TService](c, ExcludingGroups("old"))

	require.NoError(t, err)
	assert.Equal(t, 1, got.Value)
}
