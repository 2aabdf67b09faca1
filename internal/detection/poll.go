package detection

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrPollExhausted - результат так и не стал готов за отведенные попытки или время
var ErrPollExhausted = errors.New("detection: result not ready after retries")

// ResultFetcher читает результат задания
type ResultFetcher interface {
	FetchResult(ctx context.Context, queryID string) (*Result, error)
}

// PollPolicy - ограничения ожидания результата.
// Первая попытка делается через SettleDelay, далее интервал удваивается до MaxInterval.
type PollPolicy struct {
	SettleDelay time.Duration
	Interval    time.Duration
	MaxInterval time.Duration
	MaxAttempts int
	Timeout     time.Duration
}

func (p PollPolicy) withDefaults() PollPolicy {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if p.Interval <= 0 {
		p.Interval = time.Second
	}
	if p.MaxInterval < p.Interval {
		p.MaxInterval = p.Interval
	}
	if p.Timeout <= 0 {
		p.Timeout = 30 * time.Second
	}
	return p
}

// AwaitResult опрашивает сервис, пока результат не готов, с экспоненциальной задержкой.
// Повторяется только ErrNotReady; остальные ошибки возвращаются сразу.
// Возвращает число выполненных попыток.
func AwaitResult(ctx context.Context, f ResultFetcher, queryID string, policy PollPolicy) (*Result, int, error) {
	p := policy.withDefaults()

	pollCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	delay := p.SettleDelay
	interval := p.Interval
	attempts := 0
	for attempts < p.MaxAttempts {
		if err := sleep(pollCtx, delay); err != nil {
			return nil, attempts, deadlineError(ctx, p, attempts)
		}

		attempts++
		res, err := f.FetchResult(pollCtx, queryID)
		if err == nil {
			return res, attempts, nil
		}
		if !errors.Is(err, ErrNotReady) {
			if pollCtx.Err() != nil || deadlineBound(err) {
				return nil, attempts, deadlineError(ctx, p, attempts)
			}
			return nil, attempts, err
		}

		delay = interval
		interval = min(interval*2, p.MaxInterval)
	}

	return nil, attempts, fmt.Errorf("%w: still processing after %d attempts", ErrPollExhausted, attempts)
}

func deadlineError(parent context.Context, p PollPolicy, attempts int) error {
	if err := parent.Err(); err != nil {
		return err
	}
	return fmt.Errorf("%w: deadline %s reached after %d attempts", ErrPollExhausted, p.Timeout, attempts)
}

// deadlineBound сообщает, что запрос не был отправлен: лимитер не успевал до срока опроса
func deadlineBound(err error) bool {
	return errors.Is(err, errRateLimitWait)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
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
