//go:build tinygo && baremetal && !(rp2040 || rp2350 || nrf || atsamd51)

package hal

// stubFlash stands in on chips without a machine.Flash. Settings then live
// only in memory for the session.
type stubFlash struct{}

func newDeviceFlash() Flash { return stubFlash{} }

func (stubFlash) SizeBytes() uint32       { return 0 }
func (stubFlash) EraseBlockBytes() uint32 { return 0 }

func (stubFlash) ReadAt([]byte, uint32) (int, error)  { return 0, ErrNotImplemented }
func (stubFlash) WriteAt([]byte, uint32) (int, error) { return 0, ErrNotImplemented }
func (stubFlash) Erase(uint32, uint32) error          { return ErrNotImplemented }
