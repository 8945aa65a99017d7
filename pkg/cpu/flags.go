package cpu

// x86 EFLAGS bit positions, as defined by the interpreter that consumes
// the generated table.
const (
	FlagCF uint32 = 0x00000001 // Carry
	FlagPF uint32 = 0x00000004 // Parity (even)
	FlagAF uint32 = 0x00000010 // Adjust
	FlagZF uint32 = 0x00000040 // Zero
	FlagSF uint32 = 0x00000080 // Sign
	FlagTF uint32 = 0x00000100 // Trap
	FlagIF uint32 = 0x00000200 // Interrupt enable
	FlagDF uint32 = 0x00000400 // Direction
	FlagOF uint32 = 0x00000800 // Overflow
)

// ParityTable holds FlagPF for every byte value with even parity, 0 otherwise.
// It mirrors the PFLAG table emitted by package gen.
var ParityTable [256]uint32

func init() {
	for i := 0; i < 256; i++ {
		if Parity(uint8(i)) {
			ParityTable[i] = FlagPF
		}
	}
}

// Parity reports whether v has an even number of set bits.
// Zero set bits counts as even, so Parity(0) is true.
func Parity(v uint8) bool {
	count := 0
	for k := 0; k < 8; k++ {
		if v&1 != 0 {
			count++
		}
		v >>= 1
	}
	return count&1 == 0
}
