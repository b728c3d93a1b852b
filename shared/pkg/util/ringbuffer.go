package util

// RingBuffer é um buffer circular de capacidade fixa: Push sobrescreve o item mais antigo
// quando cheio. Usado para o histórico de voltas. Não é seguro para uso concorrente (a
// simulação roda numa única thread).
type RingBuffer[T any] struct {
	entries []T
	mask    uint64
	head    uint64 // Próxima posição de escrita
	count   uint64
}

// NewRingBuffer cria um novo buffer circular com a capacidade dada (será arredondada para potência de 2).
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	actualCap := nextPowerOfTwo(capacity)
	return &RingBuffer[T]{
		entries: make([]T, actualCap),
		mask:    uint64(actualCap - 1),
	}
}

// Push adiciona um item, descartando o mais antigo se o buffer estiver cheio.
func (r *RingBuffer[T]) Push(item T) {
	r.entries[r.head&r.mask] = item
	r.head++
	if r.count < uint64(len(r.entries)) {
		r.count++
	}
}

// Len retorna quantos itens estão guardados.
func (r *RingBuffer[T]) Len() int {
	return int(r.count)
}

// Cap retorna a capacidade real (potência de 2).
func (r *RingBuffer[T]) Cap() int {
	return len(r.entries)
}

// Last retorna o item mais recente.
func (r *RingBuffer[T]) Last() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}
	return r.entries[(r.head-1)&r.mask], true
}

// Items retorna os itens do mais antigo para o mais recente.
func (r *RingBuffer[T]) Items() []T {
	out := make([]T, 0, r.count)
	start := r.head - r.count
	for i := uint64(0); i < r.count; i++ {
		out = append(out, r.entries[(start+i)&r.mask])
	}
	return out
}

func nextPowerOfTwo(x int) int {
	res := 2
	for res < x {
		res <<= 1
	}
	return res
}
