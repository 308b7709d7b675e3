package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager инкапсулирует логику управления транзакциями.
//
// Вложенный вызов Do/DoReadCommitted присоединяется к уже открытой транзакции из ctx,
// DoRequiresNew и DoCommitted всегда открывают отдельную транзакцию на отдельном соединении.
type Manager struct {
	internal *manager.Manager
}

// New создаёт новый менеджер транзакций.
func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

func (m *Manager) exec(
	ctx context.Context,
	level pgx.TxIsoLevel,
	propagation trm.Propagation,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(settings.WithPropagation(propagation)),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

// Do выполняет fn в serializable транзакции (операции над журналом склада).
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.exec(ctx, pgx.Serializable, trm.PropagationRequired, fn)
}

// DoReadCommitted используется для длинных bulk операций, где сериализацию
// обеспечивают advisory lock'и, а не уровень изоляции.
func (m *Manager) DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.exec(ctx, pgx.ReadCommitted, trm.PropagationRequired, fn)
}

// DoRequiresNew изолирует запись одного райдера: её ошибка или таймаут
// не откатывает внешнюю транзакцию.
func (m *Manager) DoRequiresNew(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.exec(ctx, pgx.ReadCommitted, trm.PropagationRequiresNew, fn)
}

// DoCommitted открывает собственную serializable транзакцию даже внутри чужой:
// к возврату из метода fn уже закоммичена, и побочные эффекты после него
// (инвалидация кэша) видят зафиксированное состояние.
func (m *Manager) DoCommitted(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.exec(ctx, pgx.Serializable, trm.PropagationRequiresNew, fn)
}
