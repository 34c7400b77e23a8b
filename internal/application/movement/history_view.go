package movement

import (
	"context"
	"sync"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

// querier contrato mínimo que necesita la vista; lo implementa *QueryEngine.
type querier interface {
	Query(ctx context.Context, filter entity.MovementFilter, page, pageSize int) (Result, error)
}

// HistoryView estado de presentación del histórico para un consumidor de UI.
//
// Hace cumplir dos contratos que el motor de consulta no puede garantizar solo:
//
//   - Supresión de respuestas obsoletas: si se cambian los filtros con una
//     consulta en vuelo, solo se aplica la respuesta que corresponde al estado
//     de filtros/página vigente. Una respuesta fuera de orden nunca pisa un
//     resultado más nuevo.
//   - Conservación del último dato bueno: un fallo de lectura marca la vista
//     como stale y registra el error, pero no vacía la tabla mostrada.
type HistoryView struct {
	engine querier

	mu     sync.Mutex
	filter entity.MovementFilter
	page   int
	seq    uint64 // firma de la petición vigente; cambia con cada filtro/página
	result Result
	err    error
	stale  bool
}

// NewHistoryView construye la vista con filtros vacíos en la página 1.
func NewHistoryView(engine querier) *HistoryView {
	return &HistoryView{engine: engine, page: 1}
}

// SetFilter cambia los filtros y resetea la paginación a la página 1.
func (v *HistoryView) SetFilter(f entity.MovementFilter) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = f
	v.page = 1
	v.seq++
}

// SetPage cambia la página pedida (mínimo 1).
func (v *HistoryView) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if page == v.page {
		return
	}
	v.page = page
	v.seq++
}

// Refresh ejecuta la consulta con el estado vigente y aplica el resultado solo
// si ningún cambio de filtro/página lo dejó obsoleto mientras estaba en vuelo.
func (v *HistoryView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	filter, page, seq := v.filter, v.page, v.seq
	v.mu.Unlock()

	res, err := v.engine.Query(ctx, filter, page, PageSize)

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.seq {
		// Respuesta de una petición superada: se descarta sin tocar el estado.
		return nil
	}
	if err != nil {
		// Se conserva el último resultado bueno; la vista queda marcada stale.
		v.err = err
		v.stale = true
		return err
	}
	v.result = res
	v.err = nil
	v.stale = false
	return nil
}

// Snapshot estado observable de la vista.
type Snapshot struct {
	Filter entity.MovementFilter
	Page   int
	Result Result
	Err    error
	Stale  bool // true si Result es el último dato bueno tras un fallo
}

// Snapshot devuelve una copia consistente del estado actual.
func (v *HistoryView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{
		Filter: v.filter,
		Page:   v.page,
		Result: v.result,
		Err:    v.err,
		Stale:  v.stale,
	}
}
