package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/rewind/pkg/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract runs a suite of tests to verify that a Store implementation
// adheres to the defined interface contract.
func RunStoreContract(t *testing.T, store Store[string]) {
	ctx := context.Background()
	documentID := "contract-test-document-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		h := history.New("A").Set("B").Set("C").Undo()

		err := store.Save(ctx, documentID, h)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, documentID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, h.Past(), loaded.Past())
		assert.Equal(t, h.Present(), loaded.Present())
		assert.Equal(t, h.Future(), loaded.Future())
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, documentID, history.New("first")))
		require.NoError(t, store.Save(ctx, documentID, history.New("second")))

		loaded, err := store.Load(ctx, documentID)
		require.NoError(t, err)
		assert.Equal(t, "second", loaded.Present())
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+documentID)
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, documentID, history.New("start"))
		require.NoError(t, err)

		err = store.Delete(ctx, documentID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, documentID)
		assert.ErrorIs(t, err, ErrDocumentNotFound, "Load after Delete should return ErrDocumentNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := documentID + "-1"
		id2 := documentID + "-2"
		_ = store.Save(ctx, id1, history.New("a"))
		_ = store.Save(ctx, id2, history.New("b"))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
