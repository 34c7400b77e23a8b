package movement

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

// repoConFilas construye un fake con n filas ya ordenadas por created_at DESC.
func repoConFilas(n int) *fakeMovementRepo {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := make([]entity.MovementRow, n)
	for i := range rows {
		rows[i] = entity.MovementRow{
			ID:            fmt.Sprintf("mov-%03d", i),
			CreatedAt:     base.Add(-time.Duration(i) * time.Minute),
			Kind:          entity.MovementIn,
			QuantityUnits: 1,
		}
	}
	return &fakeMovementRepo{rows: rows}
}

// 120 filas con página de 50: 50 + 50 + 20, total y páginas estables.
func TestQuery_Paginacion(t *testing.T) {
	engine := NewQueryEngine(repoConFilas(120))
	ctx := context.Background()

	page1, err := engine.Query(ctx, entity.MovementFilter{}, 1, 0)
	require.NoError(t, err)
	assert.Len(t, page1.Rows, 50)
	assert.Equal(t, 120, page1.Total)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 50, page1.PageSize)
	assert.Equal(t, "mov-000", page1.Rows[0].ID, "la fila más reciente abre la página 1")

	page3, err := engine.Query(ctx, entity.MovementFilter{}, 3, 0)
	require.NoError(t, err)
	assert.Len(t, page3.Rows, 20)
	assert.Equal(t, "mov-100", page3.Rows[0].ID)
}

// Una página más allá del total no consulta filas: lista vacía, total intacto.
func TestQuery_PaginaFueraDeRango(t *testing.T) {
	engine := NewQueryEngine(repoConFilas(10))

	res, err := engine.Query(context.Background(), entity.MovementFilter{}, 5, 0)
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	assert.Equal(t, 10, res.Total)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, 5, res.Page)
}

// page < 1 se normaliza a 1; un histórico vacío reporta al menos una página.
func TestQuery_Normalizaciones(t *testing.T) {
	engine := NewQueryEngine(repoConFilas(0))

	res, err := engine.Query(context.Background(), entity.MovementFilter{}, -2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, 1, res.TotalPages, "mínimo una página aunque no haya filas")
	assert.Empty(t, res.Rows)
}

func TestQuery_ErrorDelStore(t *testing.T) {
	storeErr := errors.New("read timeout")
	engine := NewQueryEngine(&fakeMovementRepo{countErr: storeErr})

	_, err := engine.Query(context.Background(), entity.MovementFilter{}, 1, 0)
	assert.ErrorIs(t, err, storeErr)
}
