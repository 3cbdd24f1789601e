package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandomDelay(t *testing.T) {
	t.Run("Atraso desligado (0/0) retorna imediatamente", func(t *testing.T) {
		start := time.Now()

		err := RandomDelay(context.Background(), 0, 0)

		assert.NoError(t, err)
		assert.Less(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("Atraso respeita o limite mínimo", func(t *testing.T) {
		start := time.Now()

		err := RandomDelay(context.Background(), 20, 30)

		assert.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("Limites invertidos são normalizados em vez de falhar", func(t *testing.T) {
		start := time.Now()

		err := RandomDelay(context.Background(), 30, 10)

		assert.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("Contexto cancelado interrompe o atraso com o erro do contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()

		err := RandomDelay(ctx, 5000, 5000)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), time.Second)
	})
}
