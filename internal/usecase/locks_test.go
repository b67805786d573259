package usecase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex(t *testing.T) {
	t.Run("Serialises one key", func(t *testing.T) {
		locks := newKeyedMutex()

		var (
			wg      sync.WaitGroup
			counter int
		)

		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				unlock := locks.Lock("a")
				counter++
				unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 100, counter)
		assert.Empty(t, locks.locks)
	})

	t.Run("Different keys do not block each other", func(t *testing.T) {
		locks := newKeyedMutex()

		unlockA := locks.Lock("a")
		unlockB := locks.Lock("b")

		assert.Len(t, locks.locks, 2)

		unlockA()
		unlockB()

		assert.Empty(t, locks.locks)
	})
}
