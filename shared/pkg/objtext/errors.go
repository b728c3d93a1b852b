package objtext

import "fmt"

// ParseError indica um token numérico inválido ou um registro com formato inesperado.
type ParseError struct {
	Line   int
	Kind   string
	Token  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("linha %d: registro %q inválido", e.Line, e.Kind)
	if e.Token != "" {
		msg += fmt.Sprintf(" (token %q)", e.Token)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// IndexError indica que uma face referencia um elemento fora do stream acumulado até ali.
type IndexError struct {
	Line   int
	Stream string // "posição", "textura" ou "normal"
	Index  int    // Índice como escrito no arquivo (1-based ou negativo)
	Count  int    // Tamanho do stream no momento da leitura
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("linha %d: índice de %s %d fora do intervalo (%d disponíveis)", e.Line, e.Stream, e.Index, e.Count)
}
