package schedule

// Overlaps reporta se os intervalos meio-abertos [aStart, aEnd) e
// [bStart, bEnd) se sobrepõem. Agendamentos encostados (fim de um
// igual ao início do outro) NÃO conflitam.
//
// Este é o único predicado de conflito do sistema; todo caller
// delega aqui em vez de refazer a aritmética.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
