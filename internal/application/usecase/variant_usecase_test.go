package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

type fakeVariantRepo struct {
	variants []entity.Variant
	err      error
}

func (f *fakeVariantRepo) GetByID(_ context.Context, id string) (*entity.Variant, error) {
	for _, v := range f.variants {
		if v.VariantID == id {
			return &v, nil
		}
	}
	return nil, nil
}

func (f *fakeVariantRepo) List(_ context.Context) ([]entity.Variant, error) {
	return f.variants, f.err
}

func catalogo() *fakeVariantRepo {
	return &fakeVariantRepo{variants: []entity.Variant{
		{VariantID: "v1", Vintage: 2025, LotCode: "A", SizeLabel: "0,5 L", ML: 500},
		{VariantID: "v2", Vintage: 2025, LotCode: "A", SizeLabel: "0,25 L", ML: 250},
		{VariantID: "v3", Vintage: 2025, LotCode: "B", SizeLabel: "5 L", ML: 5000},
		{VariantID: "v4", Vintage: 2024, LotCode: "C", SizeLabel: "0,75 L", ML: 750},
	}}
}

// Sin selección: todas las annate (DESC), todos los lotes, todos los formatos.
func TestVariantOptions_SinSeleccion(t *testing.T) {
	uc := NewVariantUseCase(catalogo())

	opts, err := uc.Options(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Equal(t, []int{2025, 2024}, opts.Vintages)
	assert.Equal(t, []string{"A", "B", "C"}, opts.Lots)
	// Por ml ascendente, no alfabético: "0,25 L" < "0,5 L" < "0,75 L" < "5 L".
	assert.Equal(t, []string{"0,25 L", "0,5 L", "0,75 L", "5 L"}, opts.Sizes)
}

// La annata elegida acota lotes y formatos; las annate siguen completas.
func TestVariantOptions_CascadaPorAnnata(t *testing.T) {
	uc := NewVariantUseCase(catalogo())

	opts, err := uc.Options(context.Background(), 2025, "")
	require.NoError(t, err)
	assert.Equal(t, []int{2025, 2024}, opts.Vintages)
	assert.Equal(t, []string{"A", "B"}, opts.Lots)
	assert.Equal(t, []string{"0,25 L", "0,5 L", "5 L"}, opts.Sizes)
}

// Annata + lote acotan los formatos a esa combinación.
func TestVariantOptions_CascadaPorAnnataYLote(t *testing.T) {
	uc := NewVariantUseCase(catalogo())

	opts, err := uc.Options(context.Background(), 2025, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"5 L"}, opts.Sizes)
}

// Una combinación sin variantes produce opciones vacías, no un error.
func TestVariantOptions_CombinacionVacia(t *testing.T) {
	uc := NewVariantUseCase(catalogo())

	opts, err := uc.Options(context.Background(), 2024, "A")
	require.NoError(t, err)
	assert.Empty(t, opts.Sizes)
}
