package store_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-webhook-service/internal/models"
	"github.com/jeffleon2/draftea-webhook-service/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amountOf(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestUpsert_CaseInsensitiveLookup(t *testing.T) {
	s := store.NewStatusStore()

	s.Upsert("SRC1", "paid", "a@b.com", amountOf("12.50"))
	snapshot, ok := s.TryGet("src1")

	require.True(t, ok)
	assert.Equal(t, "SRC1", snapshot.SourceID)
	assert.Equal(t, "paid", snapshot.Status)
	assert.Equal(t, "a@b.com", snapshot.CustomerEmail)
	require.NotNil(t, snapshot.Amount)
	assert.True(t, snapshot.Amount.Equal(decimal.RequireFromString("12.50")))
}

func TestUpsert_BlankStatusDefaultsToUnknown(t *testing.T) {
	s := store.NewStatusStore()

	s.Upsert("SRC2", "", "", nil)
	snapshot, ok := s.TryGet("SRC2")

	require.True(t, ok)
	assert.Equal(t, models.StatusUnknown, snapshot.Status)
	assert.Nil(t, snapshot.Amount)
	assert.Empty(t, snapshot.CustomerEmail)

	s.Upsert("SRC2", "   ", "", nil)
	snapshot, _ = s.TryGet("SRC2")
	assert.Equal(t, models.StatusUnknown, snapshot.Status)
}

func TestTryGet_NotFound(t *testing.T) {
	s := store.NewStatusStore()

	_, ok := s.TryGet("missing")

	assert.False(t, ok)
}

func TestUpsert_ReplacesWholeSnapshot(t *testing.T) {
	s := store.NewStatusStore()

	s.Upsert("src", "pending", "a@b.com", amountOf("5"))
	s.Upsert("SRC", "paid", "", nil)
	snapshot, ok := s.TryGet("src")

	require.True(t, ok)
	assert.Equal(t, "paid", snapshot.Status)
	assert.Empty(t, snapshot.CustomerEmail)
	assert.Nil(t, snapshot.Amount)
	assert.Equal(t, 1, s.Len())
}

func TestUpsert_LastCallWins(t *testing.T) {
	s := store.NewStatusStore()

	s.Upsert("src", "paid", "", nil)
	s.Upsert("src", "pending", "", nil)
	snapshot, _ := s.TryGet("src")

	assert.Equal(t, "pending", snapshot.Status)
}

func TestUpsert_StampsUpdatedAt(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s := store.NewStatusStore().WithClock(func() time.Time { return fixed })

	returned := s.Upsert("src", "paid", "", nil)
	snapshot, _ := s.TryGet("src")

	assert.Equal(t, fixed, returned.UpdatedAt)
	assert.Equal(t, fixed, snapshot.UpdatedAt)
}

func TestTryGet_ReturnsIndependentCopy(t *testing.T) {
	s := store.NewStatusStore()
	amount := amountOf("1.00")

	s.Upsert("src", "paid", "", amount)
	*amount = decimal.RequireFromString("99")
	first, _ := s.TryGet("src")
	*first.Amount = decimal.RequireFromString("42")
	second, _ := s.TryGet("src")

	assert.True(t, second.Amount.Equal(decimal.RequireFromString("1.00")))
}

func TestUpsert_ConcurrentSameKeyNeverMixesFields(t *testing.T) {
	s := store.NewStatusStore()
	const writers = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Upsert("shared", fmt.Sprintf("status-%d", i), fmt.Sprintf("user%d@example.com", i), amountOf(fmt.Sprintf("%d", i)))
		}(i)
	}

	stop := make(chan struct{})
	var readers sync.WaitGroup
	readers.Add(1)
	go func() {
		defer readers.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			if snapshot, ok := s.TryGet("SHARED"); ok {
				assertConsistent(t, snapshot)
			}
		}
	}()

	wg.Wait()
	close(stop)
	readers.Wait()

	snapshot, ok := s.TryGet("shared")
	require.True(t, ok)
	assertConsistent(t, snapshot)
	assert.Equal(t, 1, s.Len())
}

func assertConsistent(t *testing.T, snapshot models.PaymentStatusSnapshot) {
	var i int
	_, err := fmt.Sscanf(snapshot.Status, "status-%d", &i)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, fmt.Sprintf("user%d@example.com", i), snapshot.CustomerEmail)
	assert.True(t, snapshot.Amount.Equal(decimal.NewFromInt(int64(i))))
}

func TestUpsert_ConcurrentDifferentKeys(t *testing.T) {
	s := store.NewStatusStore()
	const keys = 100

	var wg sync.WaitGroup
	for i := 0; i < keys; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Upsert(fmt.Sprintf("src-%d", i), "paid", "", nil)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, keys, s.Len())
	for i := 0; i < keys; i++ {
		_, ok := s.TryGet(fmt.Sprintf("SRC-%d", i))
		assert.True(t, ok)
	}
}
