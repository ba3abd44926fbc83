package cpu

import "github.com/kestrelnes/nescore/internal/neserr"

// AddrMode identifies one of the 6502's thirteen addressing modes.
type AddrMode uint8

const (
	Implied AddrMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// Operand is the result of resolving an instruction's addressing mode:
// the effective address (meaningless for Implied/Accumulator) and
// whether forming it crossed a page boundary.
type Operand struct {
	Addr        uint16
	PageCrossed bool
}

// execFunc runs one instruction body. It returns any cycles owed beyond
// the table's base Cycles count (used by branches) alongside a
// terminal error, if any.
type execFunc func(c *CPU, mem Memory, mode AddrMode, op Operand) (extra int, err error)

// Instruction is one row of the 256-entry opcode decode table.
type Instruction struct {
	Mnemonic  string
	Mode      AddrMode
	Bytes     uint8
	Cycles    uint8
	PageBonus bool
	Exec      execFunc
}

// resolveOperand computes the effective address for mode, assuming c.PC
// points at the first operand byte (the opcode byte has already been
// consumed). It never advances c.PC; the caller adds the remaining
// operand bytes once the instruction body has run.
func (c *CPU) resolveOperand(mem Memory, mode AddrMode) Operand {
	switch mode {
	case Implied, Accumulator:
		return Operand{}
	case Immediate, Relative:
		if mode == Immediate {
			return Operand{Addr: c.PC}
		}
		offset := int8(mem.Read(c.PC))
		target := uint16(int32(c.PC) + 1 + int32(offset))
		return Operand{Addr: target}
	case ZeroPage:
		return Operand{Addr: uint16(mem.Read(c.PC))}
	case ZeroPageX:
		return Operand{Addr: uint16(mem.Read(c.PC) + c.X)}
	case ZeroPageY:
		return Operand{Addr: uint16(mem.Read(c.PC) + c.Y)}
	case Absolute:
		return Operand{Addr: readWord(mem, c.PC)}
	case AbsoluteX:
		base := readWord(mem, c.PC)
		addr := base + uint16(c.X)
		return Operand{Addr: addr, PageCrossed: pagesDiffer(base, addr)}
	case AbsoluteY:
		base := readWord(mem, c.PC)
		addr := base + uint16(c.Y)
		return Operand{Addr: addr, PageCrossed: pagesDiffer(base, addr)}
	case Indirect:
		ptr := readWord(mem, c.PC)
		lo := mem.Read(ptr)
		var hi uint8
		if ptr&0x00FF == 0x00FF {
			hi = mem.Read(ptr &^ 0x00FF) // hardware page-wrap bug
		} else {
			hi = mem.Read(ptr + 1)
		}
		return Operand{Addr: uint16(hi)<<8 | uint16(lo)}
	case IndirectX:
		zp := mem.Read(c.PC) + c.X
		return Operand{Addr: readWordZeroPage(mem, zp)}
	case IndirectY:
		zp := mem.Read(c.PC)
		base := readWordZeroPage(mem, zp)
		addr := base + uint16(c.Y)
		return Operand{Addr: addr, PageCrossed: pagesDiffer(base, addr)}
	default:
		return Operand{}
	}
}

func readOperand8(c *CPU, mem Memory, mode AddrMode, op Operand) uint8 {
	if mode == Accumulator {
		return c.A
	}
	return mem.Read(op.Addr)
}

func writeOperand8(c *CPU, mem Memory, mode AddrMode, op Operand, val uint8) {
	if mode == Accumulator {
		c.A = val
		return
	}
	mem.Write(op.Addr, val)
}

func baseCompare(c *CPU, reg, v uint8) {
	c.setFlag(FlagCarry, reg >= v)
	c.setZN(reg - v)
}

// adc implements both ADC and, via a ones-complement operand, SBC.
func (c *CPU) adc(v uint8) {
	sum := uint16(c.A) + uint16(v) + uint16(c.Flags&FlagCarry)
	result := uint8(sum)
	overflow := (^(c.A ^ v))&(c.A^result)&0x80 != 0
	c.setFlag(FlagOverflow, overflow)
	c.setFlag(FlagCarry, sum > 0xFF)
	c.A = result
	c.setZN(result)
}

func (c *CPU) sbc(v uint8) { c.adc(v ^ 0xFF) }

// ---- implied / no-operand instructions ----

func opCLC(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) { c.Flags &^= FlagCarry; return 0, nil }
func opSEC(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) { c.Flags |= FlagCarry; return 0, nil }
func opCLD(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) { c.Flags &^= FlagDecimal; return 0, nil }
func opSED(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) { c.Flags |= FlagDecimal; return 0, nil }
func opCLI(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) {
	c.Flags &^= FlagIntDisable
	return 0, nil
}
func opSEI(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) {
	c.Flags |= FlagIntDisable
	return 0, nil
}
func opCLV(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) {
	c.Flags &^= FlagOverflow
	return 0, nil
}

func opTAX(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) { c.X = c.A; c.setZN(c.X); return 0, nil }
func opTAY(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) { c.Y = c.A; c.setZN(c.Y); return 0, nil }
func opTXA(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) { c.A = c.X; c.setZN(c.A); return 0, nil }
func opTYA(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) { c.A = c.Y; c.setZN(c.A); return 0, nil }
func opTSX(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) { c.X = c.SP; c.setZN(c.X); return 0, nil }
func opTXS(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) { c.SP = c.X; return 0, nil }

func opINX(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) { c.X++; c.setZN(c.X); return 0, nil }
func opINY(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) { c.Y++; c.setZN(c.Y); return 0, nil }
func opDEX(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) { c.X--; c.setZN(c.X); return 0, nil }
func opDEY(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) { c.Y--; c.setZN(c.Y); return 0, nil }

func opNOP(_ *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) { return 0, nil }

func opPHA(c *CPU, mem Memory, _ AddrMode, _ Operand) (int, error) { c.push(mem, c.A); return 0, nil }
func opPHP(c *CPU, mem Memory, _ AddrMode, _ Operand) (int, error) {
	c.push(mem, c.Flags|FlagBreak|FlagUnused)
	return 0, nil
}
func opPLA(c *CPU, mem Memory, _ AddrMode, _ Operand) (int, error) {
	c.A = c.pop(mem)
	c.setZN(c.A)
	return 0, nil
}
func opPLP(c *CPU, mem Memory, _ AddrMode, _ Operand) (int, error) {
	c.Flags = (c.pop(mem) &^ FlagBreak) | FlagUnused
	return 0, nil
}

func opBRK(c *CPU, _ Memory, _ AddrMode, _ Operand) (int, error) {
	return 0, &neserr.HaltError{Registers: neserr.RegisterSnapshot{
		PC: c.PC, SP: c.SP, A: c.A, X: c.X, Y: c.Y, Flags: c.Flags, Cycles: c.Cycles,
	}}
}

func opRTI(c *CPU, mem Memory, _ AddrMode, _ Operand) (int, error) {
	c.Flags = (c.pop(mem) &^ FlagBreak) | FlagUnused
	c.PC = c.popW(mem)
	return 0, nil
}

func opRTS(c *CPU, mem Memory, _ AddrMode, _ Operand) (int, error) {
	c.PC = c.popW(mem) + 1
	return 0, nil
}

func opJSR(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	c.pushW(mem, c.PC+1)
	c.PC = op.Addr
	return 0, nil
}

func opJMP(c *CPU, _ Memory, _ AddrMode, op Operand) (int, error) {
	c.PC = op.Addr
	return 0, nil
}

// ---- addressing-generic instructions ----

func opLDA(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	c.A = mem.Read(op.Addr)
	c.setZN(c.A)
	return 0, nil
}
func opLDX(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	c.X = mem.Read(op.Addr)
	c.setZN(c.X)
	return 0, nil
}
func opLDY(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	c.Y = mem.Read(op.Addr)
	c.setZN(c.Y)
	return 0, nil
}
func opSTA(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	mem.Write(op.Addr, c.A)
	return 0, nil
}
func opSTX(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	mem.Write(op.Addr, c.X)
	return 0, nil
}
func opSTY(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	mem.Write(op.Addr, c.Y)
	return 0, nil
}

func opADC(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	c.adc(mem.Read(op.Addr))
	return 0, nil
}
func opSBC(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	c.sbc(mem.Read(op.Addr))
	return 0, nil
}
func opAND(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	c.A &= mem.Read(op.Addr)
	c.setZN(c.A)
	return 0, nil
}
func opORA(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	c.A |= mem.Read(op.Addr)
	c.setZN(c.A)
	return 0, nil
}
func opEOR(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	c.A ^= mem.Read(op.Addr)
	c.setZN(c.A)
	return 0, nil
}

func opBIT(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	v := mem.Read(op.Addr)
	c.setFlag(FlagZero, c.A&v == 0)
	c.setFlag(FlagOverflow, v&0x40 != 0)
	c.setFlag(FlagNegative, v&0x80 != 0)
	return 0, nil
}

func opCMP(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	baseCompare(c, c.A, mem.Read(op.Addr))
	return 0, nil
}
func opCPX(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	baseCompare(c, c.X, mem.Read(op.Addr))
	return 0, nil
}
func opCPY(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	baseCompare(c, c.Y, mem.Read(op.Addr))
	return 0, nil
}

// ---- read-modify-write instructions (memory or accumulator) ----

func opASL(c *CPU, mem Memory, mode AddrMode, op Operand) (int, error) {
	v := readOperand8(c, mem, mode, op)
	carry := v&0x80 != 0
	v <<= 1
	c.setFlag(FlagCarry, carry)
	c.setZN(v)
	writeOperand8(c, mem, mode, op, v)
	return 0, nil
}
func opLSR(c *CPU, mem Memory, mode AddrMode, op Operand) (int, error) {
	v := readOperand8(c, mem, mode, op)
	carry := v&0x01 != 0
	v >>= 1
	c.setFlag(FlagCarry, carry)
	c.setZN(v)
	writeOperand8(c, mem, mode, op, v)
	return 0, nil
}
func opROL(c *CPU, mem Memory, mode AddrMode, op Operand) (int, error) {
	v := readOperand8(c, mem, mode, op)
	carryIn := c.Flags & FlagCarry
	carryOut := v&0x80 != 0
	v = v<<1 | carryIn
	c.setFlag(FlagCarry, carryOut)
	c.setZN(v)
	writeOperand8(c, mem, mode, op, v)
	return 0, nil
}
func opROR(c *CPU, mem Memory, mode AddrMode, op Operand) (int, error) {
	v := readOperand8(c, mem, mode, op)
	carryIn := c.Flags & FlagCarry
	carryOut := v&0x01 != 0
	v = v>>1 | carryIn<<7
	c.setFlag(FlagCarry, carryOut)
	c.setZN(v)
	writeOperand8(c, mem, mode, op, v)
	return 0, nil
}
func opINC(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	v := mem.Read(op.Addr) + 1
	mem.Write(op.Addr, v)
	c.setZN(v)
	return 0, nil
}
func opDEC(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	v := mem.Read(op.Addr) - 1
	mem.Write(op.Addr, v)
	c.setZN(v)
	return 0, nil
}

// ---- branches ----

func branchIf(mask uint8, want bool) execFunc {
	return func(c *CPU, _ Memory, _ AddrMode, op Operand) (int, error) {
		if (c.Flags&mask != 0) != want {
			return 0, nil
		}
		oldPC := c.PC + 1
		extra := 1
		if pagesDiffer(oldPC, op.Addr) {
			extra++
		}
		c.PC = op.Addr
		return extra, nil
	}
}

var (
	opBPL = branchIf(FlagNegative, false)
	opBMI = branchIf(FlagNegative, true)
	opBVC = branchIf(FlagOverflow, false)
	opBVS = branchIf(FlagOverflow, true)
	opBCC = branchIf(FlagCarry, false)
	opBCS = branchIf(FlagCarry, true)
	opBNE = branchIf(FlagZero, false)
	opBEQ = branchIf(FlagZero, true)
)

// ---- unofficial opcodes ----
// Grounded on original_source/src/opcodes.rs; mnemonics and modes follow
// that table rather than the teacher's DCM/ISB/ZeroPageXButY naming.

func opLAX(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	v := mem.Read(op.Addr)
	c.A, c.X = v, v
	c.setZN(v)
	return 0, nil
}
func opSAX(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	mem.Write(op.Addr, c.A&c.X)
	return 0, nil
}
func opDCP(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	v := mem.Read(op.Addr) - 1
	mem.Write(op.Addr, v)
	baseCompare(c, c.A, v)
	return 0, nil
}
func opISC(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	v := mem.Read(op.Addr) + 1
	mem.Write(op.Addr, v)
	c.sbc(v)
	return 0, nil
}
func opSLO(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	v := mem.Read(op.Addr)
	carry := v&0x80 != 0
	v <<= 1
	mem.Write(op.Addr, v)
	c.setFlag(FlagCarry, carry)
	c.A |= v
	c.setZN(c.A)
	return 0, nil
}
func opSRE(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	v := mem.Read(op.Addr)
	carry := v&0x01 != 0
	v >>= 1
	mem.Write(op.Addr, v)
	c.setFlag(FlagCarry, carry)
	c.A ^= v
	c.setZN(c.A)
	return 0, nil
}
func opRLA(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	v := mem.Read(op.Addr)
	carryIn := c.Flags & FlagCarry
	carryOut := v&0x80 != 0
	v = v<<1 | carryIn
	mem.Write(op.Addr, v)
	c.setFlag(FlagCarry, carryOut)
	c.A &= v
	c.setZN(c.A)
	return 0, nil
}
func opRRA(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	v := mem.Read(op.Addr)
	carryIn := c.Flags & FlagCarry
	carryOut := v&0x01 != 0
	v = v>>1 | carryIn<<7
	mem.Write(op.Addr, v)
	c.setFlag(FlagCarry, carryOut)
	c.adc(v)
	return 0, nil
}
func opALR(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	c.A &= mem.Read(op.Addr)
	carry := c.A&0x01 != 0
	c.A >>= 1
	c.setFlag(FlagCarry, carry)
	c.setZN(c.A)
	return 0, nil
}
func opANC(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	c.A &= mem.Read(op.Addr)
	c.setZN(c.A)
	c.setFlag(FlagCarry, c.A&0x80 != 0)
	return 0, nil
}
func opARR(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	c.A &= mem.Read(op.Addr)
	carryIn := c.Flags & FlagCarry
	c.A = c.A>>1 | carryIn<<7
	c.setZN(c.A)
	bit6 := c.A&0x40 != 0
	bit5 := c.A&0x20 != 0
	c.setFlag(FlagCarry, bit6)
	c.setFlag(FlagOverflow, bit6 != bit5)
	return 0, nil
}
func opAXS(c *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	v := mem.Read(op.Addr)
	t := c.A & c.X
	result := t - v
	c.setFlag(FlagCarry, t >= v)
	c.X = result
	c.setZN(result)
	return 0, nil
}

// opNOPRead covers IGN (NOP with a memory read) and SKB (NOP with an
// immediate read); both discard the fetched byte.
func opNOPRead(_ *CPU, mem Memory, _ AddrMode, op Operand) (int, error) {
	mem.Read(op.Addr)
	return 0, nil
}

// decodeTable is indexed by opcode byte. Unlisted indices keep the zero
// Instruction value (Exec == nil), which execute() turns into a
// DecodeError; those are the hardware's unreachable/"kill" opcodes.
var decodeTable = [256]Instruction{
	0x00: {"BRK", Implied, 1, 7, false, opBRK},
	0x01: {"ORA", IndirectX, 2, 6, false, opORA},
	0x03: {"SLO", IndirectX, 2, 8, false, opSLO},
	0x04: {"IGN", ZeroPage, 2, 3, false, opNOPRead},
	0x05: {"ORA", ZeroPage, 2, 3, false, opORA},
	0x06: {"ASL", ZeroPage, 2, 5, false, opASL},
	0x07: {"SLO", ZeroPage, 2, 5, false, opSLO},
	0x08: {"PHP", Implied, 1, 3, false, opPHP},
	0x09: {"ORA", Immediate, 2, 2, false, opORA},
	0x0A: {"ASL", Accumulator, 1, 2, false, opASL},
	0x0B: {"ANC", Immediate, 2, 2, false, opANC},
	0x0C: {"IGN", Absolute, 3, 4, false, opNOPRead},
	0x0D: {"ORA", Absolute, 3, 4, false, opORA},
	0x0E: {"ASL", Absolute, 3, 6, false, opASL},
	0x0F: {"SLO", Absolute, 3, 6, false, opSLO},

	0x10: {"BPL", Relative, 2, 2, false, opBPL},
	0x11: {"ORA", IndirectY, 2, 5, true, opORA},
	0x13: {"SLO", IndirectY, 2, 8, false, opSLO},
	0x14: {"IGN", ZeroPageX, 2, 4, false, opNOPRead},
	0x15: {"ORA", ZeroPageX, 2, 4, false, opORA},
	0x16: {"ASL", ZeroPageX, 2, 6, false, opASL},
	0x17: {"SLO", ZeroPageX, 2, 6, false, opSLO},
	0x18: {"CLC", Implied, 1, 2, false, opCLC},
	0x19: {"ORA", AbsoluteY, 3, 4, true, opORA},
	0x1A: {"NOP", Implied, 1, 2, false, opNOP},
	0x1B: {"SLO", AbsoluteY, 3, 7, false, opSLO},
	0x1C: {"IGN", AbsoluteX, 3, 4, true, opNOPRead},
	0x1D: {"ORA", AbsoluteX, 3, 4, true, opORA},
	0x1E: {"ASL", AbsoluteX, 3, 7, false, opASL},
	0x1F: {"SLO", AbsoluteX, 3, 7, false, opSLO},

	0x20: {"JSR", Absolute, 3, 6, false, opJSR},
	0x21: {"AND", IndirectX, 2, 6, false, opAND},
	0x23: {"RLA", IndirectX, 2, 8, false, opRLA},
	0x24: {"BIT", ZeroPage, 2, 3, false, opBIT},
	0x25: {"AND", ZeroPage, 2, 3, false, opAND},
	0x26: {"ROL", ZeroPage, 2, 5, false, opROL},
	0x27: {"RLA", ZeroPage, 2, 5, false, opRLA},
	0x28: {"PLP", Implied, 1, 4, false, opPLP},
	0x29: {"AND", Immediate, 2, 2, false, opAND},
	0x2A: {"ROL", Accumulator, 1, 2, false, opROL},
	0x2B: {"ANC", Immediate, 2, 2, false, opANC},
	0x2C: {"BIT", Absolute, 3, 4, false, opBIT},
	0x2D: {"AND", Absolute, 3, 4, false, opAND},
	0x2E: {"ROL", Absolute, 3, 6, false, opROL},
	0x2F: {"RLA", Absolute, 3, 6, false, opRLA},

	0x30: {"BMI", Relative, 2, 2, false, opBMI},
	0x31: {"AND", IndirectY, 2, 5, true, opAND},
	0x33: {"RLA", IndirectY, 2, 8, false, opRLA},
	0x34: {"IGN", ZeroPageX, 2, 4, false, opNOPRead},
	0x35: {"AND", ZeroPageX, 2, 4, false, opAND},
	0x36: {"ROL", ZeroPageX, 2, 6, false, opROL},
	0x37: {"RLA", ZeroPageX, 2, 6, false, opRLA},
	0x38: {"SEC", Implied, 1, 2, false, opSEC},
	0x39: {"AND", AbsoluteY, 3, 4, true, opAND},
	0x3A: {"NOP", Implied, 1, 2, false, opNOP},
	0x3B: {"RLA", AbsoluteY, 3, 7, false, opRLA},
	0x3C: {"IGN", AbsoluteX, 3, 4, true, opNOPRead},
	0x3D: {"AND", AbsoluteX, 3, 4, true, opAND},
	0x3E: {"ROL", AbsoluteX, 3, 7, false, opROL},
	0x3F: {"RLA", AbsoluteX, 3, 7, false, opRLA},

	0x40: {"RTI", Implied, 1, 6, false, opRTI},
	0x41: {"EOR", IndirectX, 2, 6, false, opEOR},
	0x43: {"SRE", IndirectX, 2, 8, false, opSRE},
	0x44: {"IGN", ZeroPage, 2, 3, false, opNOPRead},
	0x45: {"EOR", ZeroPage, 2, 3, false, opEOR},
	0x46: {"LSR", ZeroPage, 2, 5, false, opLSR},
	0x47: {"SRE", ZeroPage, 2, 5, false, opSRE},
	0x48: {"PHA", Implied, 1, 3, false, opPHA},
	0x49: {"EOR", Immediate, 2, 2, false, opEOR},
	0x4A: {"LSR", Accumulator, 1, 2, false, opLSR},
	0x4B: {"ALR", Immediate, 2, 2, false, opALR},
	0x4C: {"JMP", Absolute, 3, 3, false, opJMP},
	0x4D: {"EOR", Absolute, 3, 4, false, opEOR},
	0x4E: {"LSR", Absolute, 3, 6, false, opLSR},
	0x4F: {"SRE", Absolute, 3, 6, false, opSRE},

	0x50: {"BVC", Relative, 2, 2, false, opBVC},
	0x51: {"EOR", IndirectY, 2, 5, true, opEOR},
	0x53: {"SRE", IndirectY, 2, 8, false, opSRE},
	0x54: {"IGN", ZeroPageX, 2, 4, false, opNOPRead},
	0x55: {"EOR", ZeroPageX, 2, 4, false, opEOR},
	0x56: {"LSR", ZeroPageX, 2, 6, false, opLSR},
	0x57: {"SRE", ZeroPageX, 2, 6, false, opSRE},
	0x58: {"CLI", Implied, 1, 2, false, opCLI},
	0x59: {"EOR", AbsoluteY, 3, 4, true, opEOR},
	0x5A: {"NOP", Implied, 1, 2, false, opNOP},
	0x5B: {"SRE", AbsoluteY, 3, 7, false, opSRE},
	0x5C: {"IGN", AbsoluteX, 3, 4, true, opNOPRead},
	0x5D: {"EOR", AbsoluteX, 3, 4, true, opEOR},
	0x5E: {"LSR", AbsoluteX, 3, 7, false, opLSR},
	0x5F: {"SRE", AbsoluteX, 3, 7, false, opSRE},

	0x60: {"RTS", Implied, 1, 6, false, opRTS},
	0x61: {"ADC", IndirectX, 2, 6, false, opADC},
	0x63: {"RRA", IndirectX, 2, 8, false, opRRA},
	0x64: {"IGN", ZeroPage, 2, 3, false, opNOPRead},
	0x65: {"ADC", ZeroPage, 2, 3, false, opADC},
	0x66: {"ROR", ZeroPage, 2, 5, false, opROR},
	0x67: {"RRA", ZeroPage, 2, 5, false, opRRA},
	0x68: {"PLA", Implied, 1, 4, false, opPLA},
	0x69: {"ADC", Immediate, 2, 2, false, opADC},
	0x6A: {"ROR", Accumulator, 1, 2, false, opROR},
	0x6B: {"ARR", Immediate, 2, 2, false, opARR},
	0x6C: {"JMP", Indirect, 3, 5, false, opJMP},
	0x6D: {"ADC", Absolute, 3, 4, false, opADC},
	0x6E: {"ROR", Absolute, 3, 6, false, opROR},
	0x6F: {"RRA", Absolute, 3, 6, false, opRRA},

	0x70: {"BVS", Relative, 2, 2, false, opBVS},
	0x71: {"ADC", IndirectY, 2, 5, true, opADC},
	0x73: {"RRA", IndirectY, 2, 8, false, opRRA},
	0x74: {"IGN", ZeroPageX, 2, 4, false, opNOPRead},
	0x75: {"ADC", ZeroPageX, 2, 4, false, opADC},
	0x76: {"ROR", ZeroPageX, 2, 6, false, opROR},
	0x77: {"RRA", ZeroPageX, 2, 6, false, opRRA},
	0x78: {"SEI", Implied, 1, 2, false, opSEI},
	0x79: {"ADC", AbsoluteY, 3, 4, true, opADC},
	0x7A: {"NOP", Implied, 1, 2, false, opNOP},
	0x7B: {"RRA", AbsoluteY, 3, 7, false, opRRA},
	0x7C: {"IGN", AbsoluteX, 3, 4, true, opNOPRead},
	0x7D: {"ADC", AbsoluteX, 3, 4, true, opADC},
	0x7E: {"ROR", AbsoluteX, 3, 7, false, opROR},
	0x7F: {"RRA", AbsoluteX, 3, 7, false, opRRA},

	0x80: {"SKB", Immediate, 2, 2, false, opNOPRead},
	0x81: {"STA", IndirectX, 2, 6, false, opSTA},
	0x82: {"SKB", Immediate, 2, 2, false, opNOPRead},
	0x83: {"SAX", IndirectX, 2, 6, false, opSAX},
	0x84: {"STY", ZeroPage, 2, 3, false, opSTY},
	0x85: {"STA", ZeroPage, 2, 3, false, opSTA},
	0x86: {"STX", ZeroPage, 2, 3, false, opSTX},
	0x87: {"SAX", ZeroPage, 2, 3, false, opSAX},
	0x88: {"DEY", Implied, 1, 2, false, opDEY},
	0x89: {"SKB", Immediate, 2, 2, false, opNOPRead},
	0x8A: {"TXA", Implied, 1, 2, false, opTXA},
	0x8C: {"STY", Absolute, 3, 4, false, opSTY},
	0x8D: {"STA", Absolute, 3, 4, false, opSTA},
	0x8E: {"STX", Absolute, 3, 4, false, opSTX},
	0x8F: {"SAX", Absolute, 3, 4, false, opSAX},

	0x90: {"BCC", Relative, 2, 2, false, opBCC},
	0x91: {"STA", IndirectY, 2, 6, false, opSTA},
	0x94: {"STY", ZeroPageX, 2, 4, false, opSTY},
	0x95: {"STA", ZeroPageX, 2, 4, false, opSTA},
	0x96: {"STX", ZeroPageY, 2, 4, false, opSTX},
	0x97: {"SAX", ZeroPageY, 2, 4, false, opSAX},
	0x98: {"TYA", Implied, 1, 2, false, opTYA},
	0x99: {"STA", AbsoluteY, 3, 5, false, opSTA},
	0x9A: {"TXS", Implied, 1, 2, false, opTXS},
	0x9D: {"STA", AbsoluteX, 3, 5, false, opSTA},

	0xA0: {"LDY", Immediate, 2, 2, false, opLDY},
	0xA1: {"LDA", IndirectX, 2, 6, false, opLDA},
	0xA2: {"LDX", Immediate, 2, 2, false, opLDX},
	0xA3: {"LAX", IndirectX, 2, 6, false, opLAX},
	0xA4: {"LDY", ZeroPage, 2, 3, false, opLDY},
	0xA5: {"LDA", ZeroPage, 2, 3, false, opLDA},
	0xA6: {"LDX", ZeroPage, 2, 3, false, opLDX},
	0xA7: {"LAX", ZeroPage, 2, 3, false, opLAX},
	0xA8: {"TAY", Implied, 1, 2, false, opTAY},
	0xA9: {"LDA", Immediate, 2, 2, false, opLDA},
	0xAA: {"TAX", Implied, 1, 2, false, opTAX},
	0xAC: {"LDY", Absolute, 3, 4, false, opLDY},
	0xAD: {"LDA", Absolute, 3, 4, false, opLDA},
	0xAE: {"LDX", Absolute, 3, 4, false, opLDX},
	0xAF: {"LAX", Absolute, 3, 4, false, opLAX},

	0xB0: {"BCS", Relative, 2, 2, false, opBCS},
	0xB1: {"LDA", IndirectY, 2, 5, true, opLDA},
	0xB3: {"LAX", IndirectY, 2, 5, true, opLAX},
	0xB4: {"LDY", ZeroPageX, 2, 4, false, opLDY},
	0xB5: {"LDA", ZeroPageX, 2, 4, false, opLDA},
	0xB6: {"LDX", ZeroPageY, 2, 4, false, opLDX},
	0xB7: {"LAX", ZeroPageY, 2, 4, false, opLAX},
	0xB8: {"CLV", Implied, 1, 2, false, opCLV},
	0xB9: {"LDA", AbsoluteY, 3, 4, true, opLDA},
	0xBA: {"TSX", Implied, 1, 2, false, opTSX},
	0xBC: {"LDY", AbsoluteX, 3, 4, true, opLDY},
	0xBD: {"LDA", AbsoluteX, 3, 4, true, opLDA},
	0xBE: {"LDX", AbsoluteY, 3, 4, true, opLDX},
	0xBF: {"LAX", AbsoluteY, 3, 4, true, opLAX},

	0xC0: {"CPY", Immediate, 2, 2, false, opCPY},
	0xC1: {"CMP", IndirectX, 2, 6, false, opCMP},
	0xC2: {"SKB", Immediate, 2, 2, false, opNOPRead},
	0xC3: {"DCP", IndirectX, 2, 8, false, opDCP},
	0xC4: {"CPY", ZeroPage, 2, 3, false, opCPY},
	0xC5: {"CMP", ZeroPage, 2, 3, false, opCMP},
	0xC6: {"DEC", ZeroPage, 2, 5, false, opDEC},
	0xC7: {"DCP", ZeroPage, 2, 5, false, opDCP},
	0xC8: {"INY", Implied, 1, 2, false, opINY},
	0xC9: {"CMP", Immediate, 2, 2, false, opCMP},
	0xCA: {"DEX", Implied, 1, 2, false, opDEX},
	0xCB: {"AXS", Immediate, 2, 2, false, opAXS},
	0xCC: {"CPY", Absolute, 3, 4, false, opCPY},
	0xCD: {"CMP", Absolute, 3, 4, false, opCMP},
	0xCE: {"DEC", Absolute, 3, 6, false, opDEC},
	0xCF: {"DCP", Absolute, 3, 6, false, opDCP},

	0xD0: {"BNE", Relative, 2, 2, false, opBNE},
	0xD1: {"CMP", IndirectY, 2, 5, true, opCMP},
	0xD3: {"DCP", IndirectY, 2, 8, false, opDCP},
	0xD4: {"SKB", ZeroPageX, 2, 4, false, opNOPRead},
	0xD5: {"CMP", ZeroPageX, 2, 4, false, opCMP},
	0xD6: {"DEC", ZeroPageX, 2, 6, false, opDEC},
	0xD7: {"DCP", ZeroPageX, 2, 6, false, opDCP},
	0xD8: {"CLD", Implied, 1, 2, false, opCLD},
	0xD9: {"CMP", AbsoluteY, 3, 4, true, opCMP},
	0xDA: {"NOP", Implied, 1, 2, false, opNOP},
	0xDB: {"DCP", AbsoluteY, 3, 7, false, opDCP},
	0xDC: {"IGN", AbsoluteX, 3, 4, true, opNOPRead},
	0xDD: {"CMP", AbsoluteX, 3, 4, true, opCMP},
	0xDE: {"DEC", AbsoluteX, 3, 7, false, opDEC},
	0xDF: {"DCP", AbsoluteX, 3, 7, false, opDCP},

	0xE0: {"CPX", Immediate, 2, 2, false, opCPX},
	0xE1: {"SBC", IndirectX, 2, 6, false, opSBC},
	0xE2: {"SKB", Immediate, 2, 2, false, opNOPRead},
	0xE3: {"ISC", IndirectX, 2, 8, false, opISC},
	0xE4: {"CPX", ZeroPage, 2, 3, false, opCPX},
	0xE5: {"SBC", ZeroPage, 2, 3, false, opSBC},
	0xE6: {"INC", ZeroPage, 2, 5, false, opINC},
	0xE7: {"ISC", ZeroPage, 2, 5, false, opISC},
	0xE8: {"INX", Implied, 1, 2, false, opINX},
	0xE9: {"SBC", Immediate, 2, 2, false, opSBC},
	0xEA: {"NOP", Implied, 1, 2, false, opNOP},
	0xEB: {"SBC", Immediate, 2, 2, false, opSBC},
	0xEC: {"CPX", Absolute, 3, 4, false, opCPX},
	0xED: {"SBC", Absolute, 3, 4, false, opSBC},
	0xEE: {"INC", Absolute, 3, 6, false, opINC},
	0xEF: {"ISC", Absolute, 3, 6, false, opISC},

	0xF0: {"BEQ", Relative, 2, 2, false, opBEQ},
	0xF1: {"SBC", IndirectY, 2, 5, true, opSBC},
	0xF3: {"ISC", IndirectY, 2, 8, false, opISC},
	0xF4: {"SKB", ZeroPageX, 2, 4, false, opNOPRead},
	0xF5: {"SBC", ZeroPageX, 2, 4, false, opSBC},
	0xF6: {"INC", ZeroPageX, 2, 6, false, opINC},
	0xF7: {"ISC", ZeroPageX, 2, 6, false, opISC},
	0xF8: {"SED", Implied, 1, 2, false, opSED},
	0xF9: {"SBC", AbsoluteY, 3, 4, true, opSBC},
	0xFA: {"NOP", Implied, 1, 2, false, opNOP},
	0xFB: {"ISC", AbsoluteY, 3, 7, false, opISC},
	0xFC: {"IGN", AbsoluteX, 3, 4, true, opNOPRead},
	0xFD: {"SBC", AbsoluteX, 3, 4, true, opSBC},
	0xFE: {"INC", AbsoluteX, 3, 7, false, opINC},
	0xFF: {"ISC", AbsoluteX, 3, 7, false, opISC},
}
