package pkg

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSpill(t *testing.T) {
	t.Run("NewFileSpill creates file in dir", func(t *testing.T) {
		dir := t.TempDir()

		spill, err := NewFileSpill[int](dir)
		require.NoError(t, err)
		defer spill.Close()

		require.FileExists(t, spill.Path())
		require.Contains(t, spill.Path(), dir)
	})

	t.Run("Append and Get", func(t *testing.T) {
		spill, err := NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append("S1234567D"))
		require.NoError(t, spill.Append("F1234567X"))

		val, err := spill.Get(0)
		require.NoError(t, err)
		require.Equal(t, "S1234567D", val)

		val, err = spill.Get(1)
		require.NoError(t, err)
		require.Equal(t, "F1234567X", val)

		val, err = spill.Get(2)
		require.Error(t, err)
		require.Equal(t, "", val)
	})

	t.Run("Len counts appended items", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.Equal(t, uint64(0), spill.Len())
		require.NoError(t, spill.Append(1))
		require.Equal(t, uint64(1), spill.Len())
		require.NoError(t, spill.AppendBatch([]int{2, 3}))
		require.Equal(t, uint64(3), spill.Len())
	})

	t.Run("Range and Collect keep insertion order", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		expected := []int{100, 0, 300, 7}
		require.NoError(t, spill.AppendBatch(expected))

		var collected []int
		err = spill.Range(func(_ uint64, item int) error {
			collected = append(collected, item)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, expected, collected)

		all, err := spill.Collect()
		require.NoError(t, err)
		require.Equal(t, expected, all)
	})

	t.Run("Range callback error stops iteration", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))

		stop := errors.New("stop at index 1")
		count := 0
		err = spill.Range(func(index uint64, _ int) error {
			count++
			if index == 1 {
				return stop
			}

			return nil
		})

		require.ErrorIs(t, err, stop)
		require.Equal(t, 2, count)
	})

	t.Run("Collect on empty spill", func(t *testing.T) {
		spill, err := NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		all, err := spill.Collect()
		require.NoError(t, err)
		require.Empty(t, all)
	})

	t.Run("Close removes file and rejects further use", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)

		require.NoError(t, spill.Append(1))
		require.NoError(t, spill.Close())
		require.NoError(t, spill.Close())

		_, statErr := os.Stat(spill.Path())
		require.True(t, os.IsNotExist(statErr))

		require.ErrorIs(t, spill.Append(2), ErrClosed)
		require.ErrorIs(t, spill.Range(func(uint64, int) error { return nil }), ErrClosed)
	})

	t.Run("structs round trip", func(t *testing.T) {
		type issued struct {
			Worker int
			Number string
		}

		spill, err := NewFileSpill[issued](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		want := issued{Worker: 3, Number: "G1234567X"}
		require.NoError(t, spill.Append(want))

		got, err := spill.Get(0)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("concurrent batches do not interleave", func(t *testing.T) {
		spill, err := NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		const writers, perWriter = 8, 20

		var wg sync.WaitGroup
		for w := range writers {
			wg.Add(1)

			go func() {
				defer wg.Done()

				batch := make([]string, perWriter)
				for i := range batch {
					batch[i] = fmt.Sprintf("%d-%d", w, i)
				}

				require.NoError(t, spill.AppendBatch(batch))
			}()
		}

		wg.Wait()

		all, err := spill.Collect()
		require.NoError(t, err)
		require.Len(t, all, writers*perWriter)

		for start := 0; start < len(all); start += perWriter {
			var w int
			_, err := fmt.Sscanf(all[start], "%d-0", &w)
			require.NoError(t, err)

			for i := range perWriter {
				require.Equal(t, fmt.Sprintf("%d-%d", w, i), all[start+i])
			}
		}
	})
}

func TestFileSpill_RangeDuringAppends(t *testing.T) {
	spill, err := NewFileSpill[int](t.TempDir())
	require.NoError(t, err)
	defer spill.Close()

	const batches, size = 50, 20

	done := make(chan struct{})

	go func() {
		defer close(done)

		for b := range batches {
			batch := make([]int, size)
			for i := range batch {
				batch[i] = b*size + i
			}

			if err := spill.AppendBatch(batch); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			require.Equal(t, uint64(batches*size), spill.Len())
			return
		default:
		}

		seen := 0
		require.NoError(t, spill.Range(func(index uint64, item int) error {
			require.Equal(t, int(index), item)
			seen++

			return nil
		}))
		require.Zero(t, seen%size, "a read never observes half a batch")
	}
}

func TestChain(t *testing.T) {
	newSpill := func(t *testing.T, items ...string) FileSpill[string] {
		spill, err := NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		t.Cleanup(func() { _ = spill.Close() })

		require.NoError(t, spill.AppendBatch(items))

		return spill
	}

	t.Run("Range runs across spills in order", func(t *testing.T) {
		chain := Chain[string]{
			newSpill(t, "S0000000J", "S0000001I"),
			newSpill(t),
			newSpill(t, "T1234567D"),
		}

		require.Equal(t, uint64(3), chain.Len())

		var indexes []uint64
		var items []string

		require.NoError(t, chain.Range(func(index uint64, item string) error {
			indexes = append(indexes, index)
			items = append(items, item)

			return nil
		}))

		require.Equal(t, []uint64{0, 1, 2}, indexes)
		require.Equal(t, []string{"S0000000J", "S0000001I", "T1234567D"}, items)
	})

	t.Run("Range stops at first error", func(t *testing.T) {
		chain := Chain[string]{newSpill(t, "a"), newSpill(t, "b")}
		stop := errors.New("stop")

		visited := 0
		err := chain.Range(func(uint64, string) error {
			visited++
			return stop
		})

		require.ErrorIs(t, err, stop)
		require.Equal(t, 1, visited)
	})

	t.Run("Close closes every spill and tolerates gaps", func(t *testing.T) {
		first := newSpill(t, "a")
		second := newSpill(t, "b")

		chain := Chain[string]{first, nil, second}
		require.NoError(t, chain.Close())

		require.NoFileExists(t, first.Path())
		require.NoFileExists(t, second.Path())
		require.ErrorIs(t, chain.Range(func(uint64, string) error { return nil }), ErrClosed)
	})

	t.Run("empty chain", func(t *testing.T) {
		var chain Chain[string]

		require.Zero(t, chain.Len())
		require.NoError(t, chain.Range(func(uint64, string) error {
			t.Fatal("unexpected item")
			return nil
		}))
	})
}

func BenchmarkAppend(b *testing.B) {
	spill, err := NewFileSpill[string](b.TempDir())
	if err != nil {
		b.Fatalf("failed to create filespill: %v", err)
	}
	defer spill.Close()

	b.ResetTimer()

	for range b.N {
		_ = spill.Append("S1234567D")
	}
}

func BenchmarkRange(b *testing.B) {
	spill, err := NewFileSpill[int](b.TempDir())
	if err != nil {
		b.Fatalf("failed to create filespill: %v", err)
	}
	defer spill.Close()

	for i := range 1000 {
		_ = spill.Append(i)
	}

	b.ResetTimer()

	for range b.N {
		_ = spill.Range(func(uint64, int) error { return nil })
	}
}
