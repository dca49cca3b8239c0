// Package retry ограниченная политика повторов с настраиваемым backoff.
// Замена sleep-and-loop: количество попыток и задержки задаются явно,
// sleep инжектируется для тестов без реального времени.
package retry

import (
	"context"
	"time"
)

// Policy политика повторов
type Policy struct {
	// MaxAttempts максимальное число попыток (включая первую)
	MaxAttempts int

	// Backoff возвращает задержку перед попыткой attempt (attempt >= 2)
	Backoff func(attempt int) time.Duration

	// Sleep переопределяется в тестах; nil — реальный sleep с учетом контекста
	Sleep func(ctx context.Context, d time.Duration) error
}

// LinearBackoff возвращает линейно растущий backoff: base, 2*base, 3*base, ...
func LinearBackoff(base time.Duration) func(attempt int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(attempt-1) * base
	}
}

// Do выполняет fn до MaxAttempts раз.
// Повторяется только ошибка, для которой isRetryable вернул true.
// Отмена контекста между попытками прекращает повторы немедленно.
func (p Policy) Do(ctx context.Context, isRetryable func(error) bool, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if serr := sleep(ctx, p.Backoff(attempt)); serr != nil {
				return serr
			}
		}

		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
	}

	return err
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
