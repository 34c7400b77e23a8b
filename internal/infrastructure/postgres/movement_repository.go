package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/olionece/gestione-olio/internal/domain"
	"github.com/olionece/gestione-olio/internal/domain/entity"
	"github.com/olionece/gestione-olio/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// Escribe en inventory_movements y lee la vista v_movements_detailed.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create añade un movimiento al libro. Nunca actualiza filas existentes.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements (id, created_at, variant_id, warehouse_id, movement, quantity_units, note, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	note := (*string)(nil)
	if m.Note != "" {
		note = &m.Note
	}
	createdBy := (*string)(nil)
	if m.CreatedBy != "" {
		createdBy = &m.CreatedBy
	}
	_, err := r.q.Exec(ctx, query,
		m.ID, m.CreatedAt, m.VariantID, m.WarehouseID,
		string(m.Kind), m.QuantityUnits, note, createdBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: variante o magazzino inexistente", domain.ErrNotFound)
		}
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List lee la vista desnormalizada con los filtros en AND, ordenada por
// created_at DESC (orden único del histórico).
func (r *MovementRepo) List(ctx context.Context, f entity.MovementFilter, limit, offset int) ([]entity.MovementRow, error) {
	query := `
		SELECT id, created_at, movement, quantity_units, note, variant_id,
		       vintage, lot_code, size_label, ml, warehouse_id, warehouse_name,
		       created_by, operator_email
		FROM v_movements_detailed`
	where, args := buildMovementWhere(f)
	query += where
	pos := len(args) + 1
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []entity.MovementRow
	for rows.Next() {
		var m entity.MovementRow
		var kind string
		var note, createdBy, operatorEmail *string
		if err := rows.Scan(&m.ID, &m.CreatedAt, &kind, &m.QuantityUnits, &note, &m.VariantID,
			&m.Vintage, &m.LotCode, &m.SizeLabel, &m.ML, &m.WarehouseID, &m.WarehouseName,
			&createdBy, &operatorEmail); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		// Validar el tipo en la frontera: la vista no debería traer valores
		// fuera del enum, pero nunca se propaga una fila sin parsear.
		k, err := entity.ParseMovementKind(kind)
		if err != nil {
			return nil, fmt.Errorf("fila inválida en v_movements_detailed: %w", err)
		}
		m.Kind = k
		if note != nil {
			m.Note = *note
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		if operatorEmail != nil {
			m.OperatorEmail = *operatorEmail
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Count total de filas que casan con el filtro, pre-paginación.
func (r *MovementRepo) Count(ctx context.Context, f entity.MovementFilter) (int, error) {
	query := `SELECT COUNT(*) FROM v_movements_detailed`
	where, args := buildMovementWhere(f)
	query += where

	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return total, nil
}

// buildMovementWhere arma la cláusula WHERE con argumentos posicionales.
// La búsqueda libre escapa % y _ para que se busquen literales (ESCAPE '\').
func buildMovementWhere(f entity.MovementFilter) (string, []any) {
	var conds []string
	var args []any
	pos := 1

	add := func(cond string, value any) {
		conds = append(conds, fmt.Sprintf(cond, pos))
		args = append(args, value)
		pos++
	}

	if f.Kind != "" {
		add("movement = $%d", string(f.Kind))
	}
	if f.WarehouseID != "" {
		add("warehouse_id = $%d", f.WarehouseID)
	}
	if f.Vintage != 0 {
		add("vintage = $%d", f.Vintage)
	}
	if f.LotCode != "" {
		add("lot_code = $%d", f.LotCode)
	}
	if f.SizeLabel != "" {
		add("size_label = $%d", f.SizeLabel)
	}
	if f.Search != "" {
		pattern := likePattern(f.Search)
		conds = append(conds, fmt.Sprintf(
			`(note ILIKE $%d ESCAPE '\' OR operator_email ILIKE $%d ESCAPE '\')`, pos, pos))
		args = append(args, pattern)
		pos++
	}

	if len(conds) == 0 {
		return "", nil
	}
	where := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		where += " AND " + c
	}
	return where, args
}
