package detection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedFetcher возвращает заранее заданные ответы по порядку
type scriptedFetcher struct {
	results []*Result
	errs    []error
	calls   int
}

func (f *scriptedFetcher) FetchResult(ctx context.Context, queryID string) (*Result, error) {
	i := f.calls
	f.calls++
	if i >= len(f.errs) {
		return nil, ErrNotReady
	}
	return f.results[i], f.errs[i]
}

func fastPolicy() PollPolicy {
	return PollPolicy{
		SettleDelay: time.Millisecond,
		Interval:    time.Millisecond,
		MaxInterval: 2 * time.Millisecond,
		MaxAttempts: 5,
		Timeout:     time.Second,
	}
}

func TestAwaitResult_ReadyAfterRetries(t *testing.T) {
	want := &Result{Category: "bache", Confidence: 0.91}
	f := &scriptedFetcher{
		results: []*Result{nil, nil, want},
		errs:    []error{ErrNotReady, ErrNotReady, nil},
	}

	res, attempts, err := AwaitResult(context.Background(), f, testQueryID, fastPolicy())

	require.NoError(t, err)
	assert.Equal(t, want, res)
	assert.Equal(t, 3, attempts)
}

func TestAwaitResult_ExhaustsAttempts(t *testing.T) {
	f := &scriptedFetcher{}

	_, attempts, err := AwaitResult(context.Background(), f, testQueryID, fastPolicy())

	assert.ErrorIs(t, err, ErrPollExhausted)
	assert.Equal(t, 5, attempts)
	assert.Equal(t, 5, f.calls)
}

func TestAwaitResult_StopsOnFetchError(t *testing.T) {
	fetchErr := &FetchError{QueryID: testQueryID, StatusCode: 404, Err: errors.New("not found")}
	f := &scriptedFetcher{
		results: []*Result{nil, nil},
		errs:    []error{ErrNotReady, fetchErr},
	}

	_, attempts, err := AwaitResult(context.Background(), f, testQueryID, fastPolicy())

	assert.ErrorIs(t, err, fetchErr)
	assert.Equal(t, 2, attempts)
}

func TestAwaitResult_Deadline(t *testing.T) {
	f := &scriptedFetcher{}
	policy := PollPolicy{
		SettleDelay: 5 * time.Millisecond,
		Interval:    50 * time.Millisecond,
		MaxAttempts: 100,
		Timeout:     20 * time.Millisecond,
	}

	_, attempts, err := AwaitResult(context.Background(), f, testQueryID, policy)

	assert.ErrorIs(t, err, ErrPollExhausted)
	assert.Less(t, attempts, 100)
}

func TestAwaitResult_ParentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := AwaitResult(ctx, &scriptedFetcher{}, testQueryID, fastPolicy())

	assert.ErrorIs(t, err, context.Canceled)
}
