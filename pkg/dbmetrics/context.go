package dbmetrics

import "context"

type contextKey struct{}

var txKey contextKey

// WithExecutor кладет транзакционный executor в context.
// Используется транзакционными менеджерами, репозитории его не вызывают.
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor возвращает executor из context, если там есть активная
// транзакция, иначе fallback (обычное соединение репозитория).
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции.
// Репозитории используют это, чтобы добавлять FOR UPDATE только там,
// где блокировка имеет смысл.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(TxExecutor)
	return ok
}
