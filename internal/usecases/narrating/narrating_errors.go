package narrating

import "errors"

var (
	ErrEmptyQuestion = errors.New("pergunta não informada")
	ErrEmptyGoal     = errors.New("objetivo do agente não informado")
	ErrEmptyResponse = errors.New("modelo não retornou conteúdo")
)
