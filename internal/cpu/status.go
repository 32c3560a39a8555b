package cpu

// Flag is a single bit of the status register.
type Flag uint8

const (
	FlagC Flag = 1 << iota // Carry
	FlagZ                  // Zero
	FlagI                  // Interrupt Disable
	FlagD                  // Decimal Mode
	FlagB                  // Break Command
	FlagU                  // Unused, always reads as 1 once restored from the stack
	FlagV                  // Overflow
	FlagN                  // Negative
)

// Status is the processor status register (P).
type Status uint8

func (s *Status) Set(f Flag) {
	*s |= Status(f)
}

func (s *Status) Clear(f Flag) {
	*s &^= Status(f)
}

func (s Status) Test(f Flag) bool {
	return s&Status(f) != 0
}

// Assign sets f when v is true and clears it otherwise.
func (s *Status) Assign(f Flag, v bool) {
	if v {
		s.Set(f)
		return
	}
	s.Clear(f)
}

func (s *Status) setZN(v uint8) {
	s.Assign(FlagZ, v == 0)
	s.Assign(FlagN, v&0x80 != 0)
}

// String returns the flags in NV-BDIZC order, upper case when set.
func (s Status) String() string {
	const labels = "CZIDBUVN"
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		c := labels[i]
		if !s.Test(Flag(1 << i)) {
			c += 'a' - 'A'
		}
		b[7-i] = c
	}
	b[2] = '-'
	return string(b)
}
