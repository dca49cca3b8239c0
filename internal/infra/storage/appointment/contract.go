package appointment

import (
	"github.com/greensheets/booking-service/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД.
// Поддерживает *sql.DB и *dbmetrics.DB.
type DBExecutor = dbmetrics.DBExecutor
