package icled

// Transfer models the continuous hardware output stream (a DMA-fed PWM timer
// on the reference board). Start begins emitting the given codes and keeps
// cycling them until Stop. Starting while a transfer is already running is
// undefined on the hardware this models; the Driver always stops first.
type Transfer interface {
	Start(codes []uint16) error
	Stop() error
}
