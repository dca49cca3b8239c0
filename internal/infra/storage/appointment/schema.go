package appointment

import (
	"context"
	"fmt"
)

// Идемпотентная схема. Уникальный индекс по (service, start_time, end_time)
// оставлен как страховка, но сам по себе он не ловит два РАЗНЫХ
// пересекающихся интервала — этим занимается сериализуемая транзакция
// с FindOverlapping перед вставкой.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS appointments (
	id             BIGSERIAL PRIMARY KEY,
	service        TEXT NOT NULL,
	customer_name  TEXT NOT NULL,
	customer_phone TEXT NOT NULL,
	start_time     TIMESTAMP NOT NULL,
	end_time       TIMESTAMP NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT appointments_interval_check CHECK (start_time < end_time)
);

CREATE UNIQUE INDEX IF NOT EXISTS uniq_appointment_slot
	ON appointments (service, start_time, end_time);

CREATE INDEX IF NOT EXISTS idx_appointments_service_window
	ON appointments (service, start_time);
`

// EnsureSchema создает таблицу записей и индексы, если их еще нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}
