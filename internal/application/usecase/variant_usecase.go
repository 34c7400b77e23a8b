package usecase

import (
	"context"
	"sort"

	"github.com/olionece/gestione-olio/internal/domain/entity"
	"github.com/olionece/gestione-olio/internal/domain/repository"
)

// VariantUseCase lectura de variantes y opciones en cascada del formulario.
type VariantUseCase struct {
	repo repository.VariantRepository
}

// NewVariantUseCase construye el caso de uso.
func NewVariantUseCase(repo repository.VariantRepository) *VariantUseCase {
	return &VariantUseCase{repo: repo}
}

// List devuelve todas las variantes (annata DESC, lote ASC, ml ASC).
func (uc *VariantUseCase) List(ctx context.Context) ([]entity.Variant, error) {
	return uc.repo.List(ctx)
}

// Options calcula la cascada annata → lote → formato para el formulario:
// annate disponibles siempre; lotes de la annata pedida (0 = todas); formatos
// de annata+lote. Una combinación resoluble pero vacía devuelve opciones
// vacías, no un error.
func (uc *VariantUseCase) Options(ctx context.Context, vintage int, lotCode string) (entity.VariantOptions, error) {
	variants, err := uc.repo.List(ctx)
	if err != nil {
		return entity.VariantOptions{}, err
	}
	return buildOptions(variants, vintage, lotCode), nil
}

func buildOptions(variants []entity.Variant, vintage int, lotCode string) entity.VariantOptions {
	var opts entity.VariantOptions

	seenVintage := make(map[int]bool)
	for _, v := range variants {
		if !seenVintage[v.Vintage] {
			seenVintage[v.Vintage] = true
			opts.Vintages = append(opts.Vintages, v.Vintage)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(opts.Vintages)))

	seenLot := make(map[string]bool)
	for _, v := range variants {
		if vintage != 0 && v.Vintage != vintage {
			continue
		}
		if !seenLot[v.LotCode] {
			seenLot[v.LotCode] = true
			opts.Lots = append(opts.Lots, v.LotCode)
		}
	}
	sort.Strings(opts.Lots)

	// Formatos ordenados por ml, no alfabéticamente ("0,25 L" < "1 L" < "5 L").
	type sized struct {
		label string
		ml    int
	}
	seenSize := make(map[string]bool)
	var sizes []sized
	for _, v := range variants {
		if vintage != 0 && v.Vintage != vintage {
			continue
		}
		if lotCode != "" && v.LotCode != lotCode {
			continue
		}
		if !seenSize[v.SizeLabel] {
			seenSize[v.SizeLabel] = true
			sizes = append(sizes, sized{label: v.SizeLabel, ml: v.ML})
		}
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i].ml < sizes[j].ml })
	for _, s := range sizes {
		opts.Sizes = append(opts.Sizes, s.label)
	}
	return opts
}
