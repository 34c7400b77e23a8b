package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

// Los metacaracteres de LIKE se buscan literales, nunca como comodines.
func TestEscapeLike_MetacaracteresLiterales(t *testing.T) {
	cases := map[string]string{
		"lotto":   "lotto",
		"100%":    `100\%`,
		"a_b":     `a\_b`,
		`c:\temp`: `c:\\temp`,
		`%_\`:     `\%\_\\`,
		"":        "",
	}
	for in, want := range cases {
		assert.Equal(t, want, escapeLike(in), "in=%q", in)
	}
}

func TestLikePattern_SubstringConEspaciosRecortados(t *testing.T) {
	assert.Equal(t, "%mercato%", likePattern("  mercato "))
	assert.Equal(t, `%100\%%`, likePattern("100%"))
}

// El WHERE se arma solo con los criterios presentes, en AND, con argumentos
// posicionales consecutivos.
func TestBuildMovementWhere(t *testing.T) {
	where, args := buildMovementWhere(entity.MovementFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = buildMovementWhere(entity.MovementFilter{
		Kind:        entity.MovementOut,
		WarehouseID: "wh-1",
		Vintage:     2025,
	})
	assert.Equal(t, " WHERE movement = $1 AND warehouse_id = $2 AND vintage = $3", where)
	assert.Equal(t, []any{"out", "wh-1", 2025}, args)
}

// La búsqueda libre cubre nota y email del operador con un único argumento.
func TestBuildMovementWhere_Busqueda(t *testing.T) {
	where, args := buildMovementWhere(entity.MovementFilter{Search: "50%"})
	assert.Equal(t, ` WHERE (note ILIKE $1 ESCAPE '\' OR operator_email ILIKE $1 ESCAPE '\')`, where)
	assert.Equal(t, []any{`%50\%%`}, args)
}
