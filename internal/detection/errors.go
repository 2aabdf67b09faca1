package detection

import (
	"errors"
	"fmt"
)

// ErrNotReady - сервис еще не закончил обработку задания. Это ожидаемый исход, а не сбой.
var ErrNotReady = errors.New("detection: result not ready")

// errRateLimitWait - ожидание лимитера прервано контекстом или не укладывается в его срок
var errRateLimitWait = errors.New("rate limiter wait aborted")

// SubmitError - сервис отклонил задание или недоступен
type SubmitError struct {
	QueryID    string
	StatusCode int
	Err        error
}

func (e *SubmitError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("detection: submit %s rejected with status %d: %v", e.QueryID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("detection: submit %s failed: %v", e.QueryID, e.Err)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// FetchError - любая ошибка чтения результата, кроме ErrNotReady
type FetchError struct {
	QueryID    string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("detection: fetch %s failed with status %d: %v", e.QueryID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("detection: fetch %s failed: %v", e.QueryID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
