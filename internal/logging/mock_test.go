package logging

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	mock := NewMockLogger()

	mock.WithField(FieldRunID, "run-1").Warn("header keyword not found", F(FieldKeyword, "Uraian"))
	mock.WithError(errors.New("boom")).Error("export failed")
	mock.Info("done")

	entries := mock.GetEntries()
	require.Len(t, entries, 3)

	runID, ok := entries[0].FieldValue(FieldRunID)
	require.True(t, ok)
	assert.Equal(t, "run-1", runID)
	keyword, ok := entries[0].FieldValue(FieldKeyword)
	require.True(t, ok)
	assert.Equal(t, "Uraian", keyword)

	assert.EqualError(t, entries[1].Error, "boom")
	assert.True(t, mock.HasEntry("INFO", "done"))
	assert.Len(t, mock.GetEntriesByLevel("WARN"), 1)

	mock.Clear()
	assert.Empty(t, mock.GetEntries())
}

func TestMockLogger_ZeroValueUsable(t *testing.T) {
	var mock MockLogger
	mock.Debug("hello")
	mock.Fatalf("bad %d", 3)

	assert.True(t, mock.HasEntry("DEBUG", "hello"))
	assert.True(t, mock.HasEntry("FATAL", "bad 3"))
}

func TestMockLogger_ConcurrentUse(t *testing.T) {
	mock := NewMockLogger()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			mock.WithField("n", n).Info("tick")
		}(i)
	}
	wg.Wait()

	assert.Len(t, mock.GetEntriesByLevel("INFO"), 20)
}

func TestMockLogger_ImplementsInterface(t *testing.T) {
	var _ Logger = (*MockLogger)(nil)
}
