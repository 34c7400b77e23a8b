// seed puebla una base de datos de desarrollo con datos demo: usuarios con
// sus roles, magazzini, annate/lotti/formati con sus variantes y un puñado
// de movimientos, e imprime un token Bearer por usuario para probar la API.
//
// Uso: go run ./cmd/seed
// Requiere la misma configuración que el servidor (DATABASE_URL o DB_*).
// Idempotente: todas las inserciones son ON CONFLICT DO NOTHING.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/olionece/gestione-olio/internal/infrastructure/postgres"
	"github.com/olionece/gestione-olio/pkg/config"
	"github.com/olionece/gestione-olio/pkg/jwt"
)

type demoUser struct {
	email string
	roles []string
}

var demoUsers = []demoUser{
	{email: "admin@gestioneolio.local", roles: []string{"admin"}},
	{email: "operatore@gestioneolio.local", roles: []string{"operator"}},
	{email: "visita@gestioneolio.local", roles: []string{"viewer"}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Usuarios demo con rol. El id es determinista por email (UUIDv5) para
	// que reejecutar el seed no duplique usuarios.
	ns := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8") // NamespaceDNS
	for _, u := range demoUsers {
		id := uuid.NewSHA1(ns, []byte(u.email)).String()
		if _, err := pool.Exec(ctx,
			`INSERT INTO app_users (id, email) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			id, u.email); err != nil {
			fail("insertar usuario", err)
		}
		for _, role := range u.roles {
			if _, err := pool.Exec(ctx,
				`INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				id, role); err != nil {
				fail("insertar rol", err)
			}
		}
		token, err := jwt.Generate(cfg.JWT.Secret, id, u.email, cfg.JWT.Issuer, 8*60)
		if err != nil {
			fail("generar token demo", err)
		}
		fmt.Printf("%-32s %s\nBearer %s\n\n", u.email, u.roles, token)
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO warehouses (name) VALUES ('Magazzino principale'), ('Cantina'), ('Deposito nord')
		 ON CONFLICT (name) DO NOTHING`); err != nil {
		fail("insertar magazzini", err)
	}

	currentVintage := time.Now().Year()
	if _, err := pool.Exec(ctx,
		`INSERT INTO lots (lot_code, vintage)
		 SELECT c, v FROM (VALUES ('A'), ('B'), ('C')) AS codes (c),
		             (VALUES ($1::integer), ($2::integer)) AS vintages (v)
		 ON CONFLICT (lot_code, vintage) DO NOTHING`,
		currentVintage, currentVintage-1); err != nil {
		fail("insertar lotes", err)
	}
	if _, err := pool.Exec(ctx,
		`INSERT INTO sizes (label, ml) VALUES ('0,25 L', 250), ('0,5 L', 500), ('0,75 L', 750), ('5 L', 5000)
		 ON CONFLICT (label) DO NOTHING`); err != nil {
		fail("insertar formatos", err)
	}
	// Producto cartesiano lote × formato: toda combinación es una variante válida.
	if _, err := pool.Exec(ctx,
		`INSERT INTO variants (lot_id, size_id)
		 SELECT l.id, s.id FROM lots l CROSS JOIN sizes s
		 ON CONFLICT (lot_id, size_id) DO NOTHING`); err != nil {
		fail("insertar variantes", err)
	}

	// Movimientos de muestra: ingressi en todas las variantes, algunas uscite
	// y una rettifica, con cantidades ya firmadas. Solo si el libro está vacío,
	// para no inflar giacenze al reejecutar.
	tag, err := pool.Exec(ctx, `
		INSERT INTO inventory_movements (variant_id, warehouse_id, movement, quantity_units, note, created_by)
		SELECT v.id, w.id, 'in', 24, 'carico iniziale', u.id
		FROM variants v
		CROSS JOIN (SELECT id FROM warehouses WHERE name = 'Magazzino principale') w
		CROSS JOIN (SELECT id FROM app_users WHERE email = 'operatore@gestioneolio.local') u
		WHERE NOT EXISTS (SELECT 1 FROM inventory_movements)`)
	if err != nil {
		fail("insertar movimientos", err)
	}
	if tag.RowsAffected() > 0 {
		if _, err := pool.Exec(ctx, `
			INSERT INTO inventory_movements (variant_id, warehouse_id, movement, quantity_units, note, created_by)
			SELECT v.id, w.id, 'out', -6, 'vendita mercato', u.id
			FROM variants v
			CROSS JOIN (SELECT id FROM warehouses WHERE name = 'Magazzino principale') w
			CROSS JOIN (SELECT id FROM app_users WHERE email = 'operatore@gestioneolio.local') u
			LIMIT 4`); err != nil {
			fail("insertar uscite", err)
		}
		if _, err := pool.Exec(ctx, `
			INSERT INTO inventory_movements (variant_id, warehouse_id, movement, quantity_units, note, created_by)
			SELECT v.id, w.id, 'adjust', -1, 'bottiglia rotta in inventario', u.id
			FROM variants v
			CROSS JOIN (SELECT id FROM warehouses WHERE name = 'Cantina') w
			CROSS JOIN (SELECT id FROM app_users WHERE email = 'admin@gestioneolio.local') u
			LIMIT 1`); err != nil {
			fail("insertar rettifica", err)
		}
	}

	fmt.Println("seed completado")
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}
