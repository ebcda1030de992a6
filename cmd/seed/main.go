// seed vacía y recarga usuarios y productos a partir de Usuarios.csv y Productos.csv.
//
// Uso: go run ./cmd/seed [directorio]
// Por defecto busca los CSV en ./data. Borra también los pedidos existentes.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/auth"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/internal/infrastructure/postgres"
	"github.com/jhoicas/pedidos-hosteleria/pkg/config"
	"github.com/jhoicas/pedidos-hosteleria/pkg/logger"
)

func main() {
	dir := "data"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "seed"})

	now := time.Now().UTC()
	products, err := loadFile(filepath.Join(dir, "Productos.csv"), func(recs []map[string]string) ([]*entity.Product, error) {
		return parseProducts(recs, now)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("leer productos")
	}
	users, err := loadFile(filepath.Join(dir, "Usuarios.csv"), func(recs []map[string]string) ([]*entity.User, error) {
		return parseUsers(recs, now)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("leer usuarios")
	}
	for _, u := range users {
		if u.PasswordHash, err = auth.HashPassword(u.PasswordHash); err != nil {
			log.Fatal().Err(err).Str("email", u.Email).Msg("cifrar contraseña")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	err = postgres.NewTxRunner(pool).Run(ctx, func(userRepo *postgres.UserRepo, productRepo *postgres.ProductRepo) error {
		if err := userRepo.DeleteAll(ctx); err != nil {
			return err
		}
		if err := productRepo.DeleteAll(ctx); err != nil {
			return err
		}
		for _, u := range users {
			if err := userRepo.Create(ctx, u); err != nil {
				return fmt.Errorf("usuario %s: %w", u.Email, err)
			}
		}
		for _, p := range products {
			if err := productRepo.Create(ctx, p); err != nil {
				return fmt.Errorf("producto %s: %w", p.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("carga inicial")
	}

	log.Info().Int("usuarios", len(users)).Int("productos", len(products)).Msg("carga inicial completada")
}

func loadFile[T any](path string, parse func([]map[string]string) ([]T, error)) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	recs, err := readRecords(decodeText(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return parse(recs)
}
