package table

import "sync"

// Sequencer da a una vista semántica determinista de "gana la última petición":
// cada fetch toma un token monotónico con Next y solo aplica su resultado si
// Apply lo acepta. Una resolución cuyo token es anterior al último emitido se
// descarta, sin importar el orden en que resuelvan las peticiones.
type Sequencer struct {
	mu     sync.Mutex
	issued uint64
}

// Next emite el siguiente token.
func (s *Sequencer) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Apply reporta si el resultado con ese token sigue siendo el más reciente.
func (s *Sequencer) Apply(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return token == s.issued
}
