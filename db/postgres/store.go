// Package postgres provides a read-only Postgres source for EPC
// records, for portfolios kept in a database rather than a CSV
// download. The tool only ever reads from it.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"epc-insight/pkg/epc"
	"epc-insight/pkg/platform"
)

// Config holds connection settings for the EPC table.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Table    string
	SSLMode  string
}

// ConfigFromEnv reads connection settings from PG* environment
// variables, with local defaults.
func ConfigFromEnv() Config {
	return Config{
		Host:     platform.GetEnv("PGHOST", "localhost"),
		Port:     platform.GetEnvInt("PGPORT", 5432),
		User:     platform.GetEnv("PGUSER", "postgres"),
		Password: platform.GetEnv("PGPASSWORD", ""),
		Database: platform.GetEnv("PGDATABASE", "epc"),
		Table:    platform.GetEnv("EPC_TABLE", "certificates"),
		SSLMode:  platform.GetEnv("PGSSLMODE", "disable"),
	}
}

// Store reads EPC records from Postgres.
type Store struct {
	db    *sql.DB
	table string
}

// Open connects and pings the database.
func Open(cfg Config) (*Store, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	return &Store{db: db, table: cfg.Table}, nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Records loads the whole portfolio table.
func (s *Store) Records(ctx context.Context) ([]epc.Record, error) {
	query := fmt.Sprintf(`
		SELECT
			address, postcode, local_authority_label,
			current_energy_efficiency, potential_energy_efficiency,
			current_energy_rating, potential_energy_rating,
			hot_water_cost_current, hot_water_cost_potential,
			heating_cost_current, heating_cost_potential,
			lighting_cost_current, lighting_cost_potential,
			co2_emissions_current, co2_emissions_potential,
			windows_description, walls_description, mainheat_description,
			lighting_description, floor_description
		FROM %s`, pq.QuoteIdentifier(s.table))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}
	defer rows.Close()

	var records []epc.Record
	for rows.Next() {
		var r epc.Record
		var hotWaterCur, hotWaterPot, heatingCur, heatingPot, lightingCur, lightingPot string
		if err := rows.Scan(
			&r.Address, &r.Postcode, &r.LocalAuthority,
			&r.CurrentEfficiency, &r.PotentialEfficiency,
			&r.CurrentBand, &r.PotentialBand,
			&hotWaterCur, &hotWaterPot,
			&heatingCur, &heatingPot,
			&lightingCur, &lightingPot,
			&r.CO2Current, &r.CO2Potential,
			&r.WindowsDescription, &r.WallsDescription, &r.MainheatDescription,
			&r.LightingDescription, &r.FloorDescription,
		); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if r.HotWaterCostCurrent, err = decimal.NewFromString(hotWaterCur); err != nil {
			return nil, fmt.Errorf("hot_water_cost_current for %q: %w", r.Address, err)
		}
		if r.HotWaterCostPotential, err = decimal.NewFromString(hotWaterPot); err != nil {
			return nil, fmt.Errorf("hot_water_cost_potential for %q: %w", r.Address, err)
		}
		if r.HeatingCostCurrent, err = decimal.NewFromString(heatingCur); err != nil {
			return nil, fmt.Errorf("heating_cost_current for %q: %w", r.Address, err)
		}
		if r.HeatingCostPotential, err = decimal.NewFromString(heatingPot); err != nil {
			return nil, fmt.Errorf("heating_cost_potential for %q: %w", r.Address, err)
		}
		if r.LightingCostCurrent, err = decimal.NewFromString(lightingCur); err != nil {
			return nil, fmt.Errorf("lighting_cost_current for %q: %w", r.Address, err)
		}
		if r.LightingCostPotential, err = decimal.NewFromString(lightingPot); err != nil {
			return nil, fmt.Errorf("lighting_cost_potential for %q: %w", r.Address, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table %s has no rows", s.table)
	}
	return records, nil
}
