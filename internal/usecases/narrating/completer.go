// Package narrating gera a narrativa executiva, as respostas de Q&A e a execução do agente
// a partir do pacote de evidências
package narrating

import "context"

// Completer envia um prompt ao modelo hospedado e retorna o texto gerado
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
