package consts

const (
	KELVINPEREV = 11608.696 // Boltzmann conversion factor (K/eV)
	T4SCALE     = 1.0e4     // Reference scale for T4 = T/1e4 (K)
)
