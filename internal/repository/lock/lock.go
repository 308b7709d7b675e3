package lock

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

var ErrOutsideTransaction = errors.New("advisory lock requires an open transaction")

// Repository берет транзакционные advisory lock'и Postgres. Lock'и освобождаются
// вместе с транзакцией, в которой взяты.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Lock блокирует ключи в отсортированном порядке, чтобы две операции с пересекающимися
// наборами ключей не взаимоблокировались. Повторные ключи берутся один раз.
func (r *Repository) Lock(ctx context.Context, keys ...string) error {
	keys = normalize(keys)
	if len(keys) == 0 {
		return nil
	}

	if !r.querier.InTx(ctx) {
		return ErrOutsideTransaction
	}

	for _, key := range keys {
		_, err := r.querier.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key)
		if err != nil {
			return fmt.Errorf("advisory lock %q: %w", key, err)
		}
	}
	return nil
}

func normalize(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
