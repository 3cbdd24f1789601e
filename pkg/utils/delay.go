package utils

import (
	"context"
	"math/rand"
	"time"
)

// RandomDelay suspende a execução por um intervalo uniforme em [minMs, maxMs]
// milissegundos, sem bloquear outras goroutines. Existe apenas para simular
// latência de rede/banco na demonstração dos estados de carregamento da UI;
// nenhuma consulta depende dele para correção. Retorna cedo com o erro do
// contexto se ele for cancelado antes do fim do atraso.
func RandomDelay(ctx context.Context, minMs, maxMs int) error {
	if maxMs < minMs {
		minMs, maxMs = maxMs, minMs
	}
	if maxMs <= 0 {
		return nil
	}

	delay := time.Duration(minMs+rand.Intn(maxMs-minMs+1)) * time.Millisecond

	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
