// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/acgs-launcher/internal/logger"
)

type preferenceRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	return &preferenceRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (p *preferenceRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetPreferenceQuery(key)
	if err != nil {
		p.logger.Err(err).Str("func", "preferenceRepository.Get").Msg("failed to build query")
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	err = p.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrPreferenceNotFound
	}
	if err != nil {
		p.logger.Err(err).
			Str("func", "preferenceRepository.Get").
			Str("key", key).
			Msg("failed to read preference")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return value, nil
}

func (p *preferenceRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := buildSetPreferenceQuery(key, value, p.now().UTC())
	if err != nil {
		p.logger.Err(err).Str("func", "preferenceRepository.Set").Msg("failed to build query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		p.logger.Err(err).
			Str("func", "preferenceRepository.Set").
			Str("key", key).
			Msg("failed to upsert preference")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (p *preferenceRepository) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeletePreferenceQuery(key)
	if err != nil {
		p.logger.Err(err).Str("func", "preferenceRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		p.logger.Err(err).
			Str("func", "preferenceRepository.Delete").
			Str("key", key).
			Msg("failed to delete preference")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
