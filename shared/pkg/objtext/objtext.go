// Package objtext lê o formato texto linha-a-linha usado pelas malhas (.obj) e pelas rotas.
// Cada linha é um registro: um prefixo ("v", "vt", "vn", "f", ...) seguido de campos
// separados por espaços. Linhas vazias e comentários (#) são ignorados.
package objtext

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Prefixos de registro reconhecidos.
const (
	KindPosition = "v"
	KindTexCoord = "vt"
	KindNormal   = "vn"
	KindFace     = "f"
)

// maxLineSize limita o tamanho de uma linha (faces muito grandes em exports do Blender).
const maxLineSize = 1 << 20

// Record é uma linha já tokenizada.
type Record struct {
	Line   int      // Número da linha (1-based)
	Kind   string   // Prefixo do registro
	Fields []string // Campos após o prefixo
}

// Scan percorre o conteúdo e chama fn para cada registro não vazio.
// Um erro retornado por fn interrompe a leitura e é devolvido sem alteração.
func Scan(r io.Reader, fn func(Record) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		parts := strings.Fields(text)
		if len(parts) == 0 {
			continue
		}
		if err := fn(Record{Line: line, Kind: parts[0], Fields: parts[1:]}); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Floats converte os primeiros n campos do registro em float32.
// Campos extras (ex: o "w" opcional de um vértice) são ignorados.
func (rec Record) Floats(n int) ([]float32, error) {
	if len(rec.Fields) < n {
		return nil, &ParseError{
			Line:   rec.Line,
			Kind:   rec.Kind,
			Reason: "esperados " + strconv.Itoa(n) + " campos, encontrados " + strconv.Itoa(len(rec.Fields)),
		}
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(rec.Fields[i], 32)
		if err != nil {
			return nil, &ParseError{Line: rec.Line, Kind: rec.Kind, Token: rec.Fields[i], Err: err}
		}
		v := float32(f)
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return nil, &ParseError{Line: rec.Line, Kind: rec.Kind, Token: rec.Fields[i], Reason: "valor não finito"}
		}
		out[i] = v
	}
	return out, nil
}

// Index converte um índice 1-based de face em índice 0-based dentro de um stream com
// count elementos. Índices negativos são relativos ao fim do stream (semântica OBJ).
func Index(rec Record, stream, token string, count int) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, &ParseError{Line: rec.Line, Kind: rec.Kind, Token: token, Err: err}
	}
	idx := n - 1
	if n < 0 {
		idx = count + n
	}
	if n == 0 || idx < 0 || idx >= count {
		return 0, &IndexError{Line: rec.Line, Stream: stream, Index: n, Count: count}
	}
	return idx, nil
}
