package cpu

// execute dispatches a fetched opcode byte to its handler and returns the
// total cycle count (base cycles for the opcode plus whatever its
// addressing mode added). Prefixed opcodes (page 2: 0x10, page 3: 0x11)
// recurse into the matching prefixed table.
//
// Opcode values are the real Motorola 6809 encodings, grounded on
// original_source/src/Cpu.cpp's instruction table and cross-checked against
// the 6809 datasheet's opcode map.
func (c *CPU) execute(opcode uint8) int {
	switch opcode {
	case 0x10:
		return c.executePage2(c.fetch8())
	case 0x11:
		return c.executePage3(c.fetch8())
	}

	a := &regAccessor8{c.A.Value, c.A.Load}
	b := &regAccessor8{c.B.Value, c.B.Load}
	d := &regAccessor16{c.D.Value, c.D.Load}
	x := &regAccessor16{c.X.Value, c.X.Load}
	y := &regAccessor16{c.Y.Value, c.Y.Load}
	u := &regAccessor16{c.U.Value, c.U.Load}
	s := &regAccessor16{c.S.Value, c.S.Load}

	switch opcode {
	// --- direct page read-modify-write ---
	case 0x00:
		return 6 + c.doNEG(modeDirect)
	case 0x03:
		return 6 + c.doCOM(modeDirect)
	case 0x04:
		return 6 + c.doLSR(modeDirect)
	case 0x06:
		return 6 + c.doROR(modeDirect)
	case 0x07:
		return 6 + c.doASR(modeDirect)
	case 0x08:
		return 6 + c.doASL(modeDirect)
	case 0x09:
		return 6 + c.doROL(modeDirect)
	case 0x0a:
		return 6 + c.doDEC(modeDirect)
	case 0x0c:
		return 6 + c.doINC(modeDirect)
	case 0x0d:
		return 6 + c.doTST(modeDirect)
	case 0x0e:
		return 3 + c.doJMP(modeDirect)
	case 0x0f:
		return 6 + c.doCLR(modeDirect)

	case 0x12:
		return 2 // NOP
	case 0x16:
		return 5 + c.doLBRA()
	case 0x17:
		return 9 + c.doLBSR()
	case 0x19:
		return 2 // DAA: not exercised by any Vectrex BIOS path; treated as NOP
	case 0x1a:
		return 3 + c.doORCC()
	case 0x1c:
		return 3 + c.doANDCC()
	case 0x1d:
		return 2 + c.doSEX()
	case 0x1e:
		return 8 + c.doEXG()
	case 0x1f:
		return 6 + c.doTFR()

	// --- short branches ---
	case 0x20:
		return 3 + c.doBranch(modeRelative8, true)
	case 0x21:
		return 3 + c.doBranch(modeRelative8, false)
	case 0x22:
		return 3 + c.doBranch(modeRelative8, !c.CC.Carry && !c.CC.Zero)
	case 0x23:
		return 3 + c.doBranch(modeRelative8, c.CC.Carry || c.CC.Zero)
	case 0x24:
		return 3 + c.doBranch(modeRelative8, !c.CC.Carry)
	case 0x25:
		return 3 + c.doBranch(modeRelative8, c.CC.Carry)
	case 0x26:
		return 3 + c.doBranch(modeRelative8, !c.CC.Zero)
	case 0x27:
		return 3 + c.doBranch(modeRelative8, c.CC.Zero)
	case 0x28:
		return 3 + c.doBranch(modeRelative8, !c.CC.Overflow)
	case 0x29:
		return 3 + c.doBranch(modeRelative8, c.CC.Overflow)
	case 0x2a:
		return 3 + c.doBranch(modeRelative8, !c.CC.Negative)
	case 0x2b:
		return 3 + c.doBranch(modeRelative8, c.CC.Negative)
	case 0x2c:
		return 3 + c.doBranch(modeRelative8, c.CC.Negative == c.CC.Overflow)
	case 0x2d:
		return 3 + c.doBranch(modeRelative8, c.CC.Negative != c.CC.Overflow)
	case 0x2e:
		return 3 + c.doBranch(modeRelative8, !c.CC.Zero && (c.CC.Negative == c.CC.Overflow))
	case 0x2f:
		return 3 + c.doBranch(modeRelative8, c.CC.Zero || (c.CC.Negative != c.CC.Overflow))

	// --- LEA / stack ---
	case 0x30:
		return 4 + c.doLEA(x, true)
	case 0x31:
		return 4 + c.doLEA(y, true)
	case 0x32:
		return 4 + c.doLEA(s, false)
	case 0x33:
		return 4 + c.doLEA(u, false)
	case 0x34:
		post := c.fetch8()
		return 5 + c.pushSet(c.S, c.U, post)
	case 0x35:
		post := c.fetch8()
		return 5 + c.pullSet(c.S, c.U, post)
	case 0x36:
		post := c.fetch8()
		return 5 + c.pushSet(c.U, c.S, post)
	case 0x37:
		post := c.fetch8()
		return 5 + c.pullSet(c.U, c.S, post)
	case 0x39:
		return 5 + c.doRTS()
	case 0x3a:
		return 3 + c.doABX()
	case 0x3d:
		return 11 + c.doMUL()

	// --- inherent single-register RMW: A ---
	case 0x40:
		return 2 + c.doNEG(modeInherent8A)
	case 0x43:
		return 2 + c.doCOM(modeInherent8A)
	case 0x44:
		return 2 + c.doLSR(modeInherent8A)
	case 0x46:
		return 2 + c.doROR(modeInherent8A)
	case 0x47:
		return 2 + c.doASR(modeInherent8A)
	case 0x48:
		return 2 + c.doASL(modeInherent8A)
	case 0x49:
		return 2 + c.doROL(modeInherent8A)
	case 0x4a:
		return 2 + c.doDEC(modeInherent8A)
	case 0x4c:
		return 2 + c.doINC(modeInherent8A)
	case 0x4d:
		return 2 + c.doTST(modeInherent8A)
	case 0x4f:
		return 2 + c.doCLR(modeInherent8A)

	// --- inherent single-register RMW: B ---
	case 0x50:
		return 2 + c.doNEG(modeInherent8B)
	case 0x53:
		return 2 + c.doCOM(modeInherent8B)
	case 0x54:
		return 2 + c.doLSR(modeInherent8B)
	case 0x56:
		return 2 + c.doROR(modeInherent8B)
	case 0x57:
		return 2 + c.doASR(modeInherent8B)
	case 0x58:
		return 2 + c.doASL(modeInherent8B)
	case 0x59:
		return 2 + c.doROL(modeInherent8B)
	case 0x5a:
		return 2 + c.doDEC(modeInherent8B)
	case 0x5c:
		return 2 + c.doINC(modeInherent8B)
	case 0x5d:
		return 2 + c.doTST(modeInherent8B)
	case 0x5f:
		return 2 + c.doCLR(modeInherent8B)

	// --- indexed read-modify-write ---
	case 0x60:
		return 6 + c.doNEG(modeIndexed)
	case 0x63:
		return 6 + c.doCOM(modeIndexed)
	case 0x64:
		return 6 + c.doLSR(modeIndexed)
	case 0x66:
		return 6 + c.doROR(modeIndexed)
	case 0x67:
		return 6 + c.doASR(modeIndexed)
	case 0x68:
		return 6 + c.doASL(modeIndexed)
	case 0x69:
		return 6 + c.doROL(modeIndexed)
	case 0x6a:
		return 6 + c.doDEC(modeIndexed)
	case 0x6c:
		return 6 + c.doINC(modeIndexed)
	case 0x6d:
		return 6 + c.doTST(modeIndexed)
	case 0x6e:
		return 3 + c.doJMP(modeIndexed)
	case 0x6f:
		return 6 + c.doCLR(modeIndexed)

	// --- extended read-modify-write ---
	case 0x70:
		return 7 + c.doNEG(modeExtended)
	case 0x73:
		return 7 + c.doCOM(modeExtended)
	case 0x74:
		return 7 + c.doLSR(modeExtended)
	case 0x76:
		return 7 + c.doROR(modeExtended)
	case 0x77:
		return 7 + c.doASR(modeExtended)
	case 0x78:
		return 7 + c.doASL(modeExtended)
	case 0x79:
		return 7 + c.doROL(modeExtended)
	case 0x7a:
		return 7 + c.doDEC(modeExtended)
	case 0x7c:
		return 7 + c.doINC(modeExtended)
	case 0x7d:
		return 7 + c.doTST(modeExtended)
	case 0x7e:
		return 4 + c.doJMP(modeExtended)
	case 0x7f:
		return 7 + c.doCLR(modeExtended)

	// --- accumulator A: immediate/direct/indexed/extended ---
	case 0x80:
		return 2 + c.doSUB8(a, modeImmediate8, false)
	case 0x81:
		return 2 + c.doCMP8(a, modeImmediate8)
	case 0x82:
		return 2 + c.doSUB8(a, modeImmediate8, true)
	case 0x83:
		return 4 + c.doSUB16(d, modeImmediate16)
	case 0x84:
		return 2 + c.doAND8(a, modeImmediate8)
	case 0x85:
		return 2 + c.doBIT8(a, modeImmediate8)
	case 0x86:
		return 2 + c.doLD8(a, modeImmediate8)
	case 0x88:
		return 2 + c.doEOR8(a, modeImmediate8)
	case 0x89:
		return 2 + c.doADD8(a, modeImmediate8, true)
	case 0x8a:
		return 2 + c.doOR8(a, modeImmediate8)
	case 0x8b:
		return 2 + c.doADD8(a, modeImmediate8, false)
	case 0x8c:
		return 4 + c.doCMP16(x, modeImmediate16)
	case 0x8d:
		return 7 + c.doBSR()
	case 0x8e:
		return 3 + c.doLD16(x, modeImmediate16)

	case 0x90:
		return 4 + c.doSUB8(a, modeDirect, false)
	case 0x91:
		return 4 + c.doCMP8(a, modeDirect)
	case 0x92:
		return 4 + c.doSUB8(a, modeDirect, true)
	case 0x93:
		return 6 + c.doSUB16(d, modeDirect)
	case 0x94:
		return 4 + c.doAND8(a, modeDirect)
	case 0x95:
		return 4 + c.doBIT8(a, modeDirect)
	case 0x96:
		return 4 + c.doLD8(a, modeDirect)
	case 0x97:
		return 4 + c.doST8(a, modeDirect)
	case 0x98:
		return 4 + c.doEOR8(a, modeDirect)
	case 0x99:
		return 4 + c.doADD8(a, modeDirect, true)
	case 0x9a:
		return 4 + c.doOR8(a, modeDirect)
	case 0x9b:
		return 4 + c.doADD8(a, modeDirect, false)
	case 0x9c:
		return 6 + c.doCMP16(x, modeDirect)
	case 0x9d:
		return 7 + c.doJSR(modeDirect)
	case 0x9e:
		return 5 + c.doLD16(x, modeDirect)
	case 0x9f:
		return 5 + c.doST16(x, modeDirect)

	case 0xa0:
		return 4 + c.doSUB8(a, modeIndexed, false)
	case 0xa1:
		return 4 + c.doCMP8(a, modeIndexed)
	case 0xa2:
		return 4 + c.doSUB8(a, modeIndexed, true)
	case 0xa3:
		return 6 + c.doSUB16(d, modeIndexed)
	case 0xa4:
		return 4 + c.doAND8(a, modeIndexed)
	case 0xa5:
		return 4 + c.doBIT8(a, modeIndexed)
	case 0xa6:
		return 4 + c.doLD8(a, modeIndexed)
	case 0xa7:
		return 4 + c.doST8(a, modeIndexed)
	case 0xa8:
		return 4 + c.doEOR8(a, modeIndexed)
	case 0xa9:
		return 4 + c.doADD8(a, modeIndexed, true)
	case 0xaa:
		return 4 + c.doOR8(a, modeIndexed)
	case 0xab:
		return 4 + c.doADD8(a, modeIndexed, false)
	case 0xac:
		return 6 + c.doCMP16(x, modeIndexed)
	case 0xad:
		return 7 + c.doJSR(modeIndexed)
	case 0xae:
		return 5 + c.doLD16(x, modeIndexed)
	case 0xaf:
		return 5 + c.doST16(x, modeIndexed)

	case 0xb0:
		return 5 + c.doSUB8(a, modeExtended, false)
	case 0xb1:
		return 5 + c.doCMP8(a, modeExtended)
	case 0xb2:
		return 5 + c.doSUB8(a, modeExtended, true)
	case 0xb3:
		return 7 + c.doSUB16(d, modeExtended)
	case 0xb4:
		return 5 + c.doAND8(a, modeExtended)
	case 0xb5:
		return 5 + c.doBIT8(a, modeExtended)
	case 0xb6:
		return 5 + c.doLD8(a, modeExtended)
	case 0xb7:
		return 5 + c.doST8(a, modeExtended)
	case 0xb8:
		return 5 + c.doEOR8(a, modeExtended)
	case 0xb9:
		return 5 + c.doADD8(a, modeExtended, true)
	case 0xba:
		return 5 + c.doOR8(a, modeExtended)
	case 0xbb:
		return 5 + c.doADD8(a, modeExtended, false)
	case 0xbc:
		return 7 + c.doCMP16(x, modeExtended)
	case 0xbd:
		return 8 + c.doJSR(modeExtended)
	case 0xbe:
		return 6 + c.doLD16(x, modeExtended)
	case 0xbf:
		return 6 + c.doST16(x, modeExtended)

	// --- accumulator B: immediate/direct/indexed/extended ---
	case 0xc0:
		return 2 + c.doSUB8(b, modeImmediate8, false)
	case 0xc1:
		return 2 + c.doCMP8(b, modeImmediate8)
	case 0xc2:
		return 2 + c.doSUB8(b, modeImmediate8, true)
	case 0xc3:
		return 4 + c.doADD16(d, modeImmediate16)
	case 0xc4:
		return 2 + c.doAND8(b, modeImmediate8)
	case 0xc5:
		return 2 + c.doBIT8(b, modeImmediate8)
	case 0xc6:
		return 2 + c.doLD8(b, modeImmediate8)
	case 0xc8:
		return 2 + c.doEOR8(b, modeImmediate8)
	case 0xc9:
		return 2 + c.doADD8(b, modeImmediate8, true)
	case 0xca:
		return 2 + c.doOR8(b, modeImmediate8)
	case 0xcb:
		return 2 + c.doADD8(b, modeImmediate8, false)
	case 0xcc:
		return 3 + c.doLD16(d, modeImmediate16)
	case 0xce:
		return 3 + c.doLD16(u, modeImmediate16)

	case 0xd0:
		return 4 + c.doSUB8(b, modeDirect, false)
	case 0xd1:
		return 4 + c.doCMP8(b, modeDirect)
	case 0xd2:
		return 4 + c.doSUB8(b, modeDirect, true)
	case 0xd3:
		return 6 + c.doADD16(d, modeDirect)
	case 0xd4:
		return 4 + c.doAND8(b, modeDirect)
	case 0xd5:
		return 4 + c.doBIT8(b, modeDirect)
	case 0xd6:
		return 4 + c.doLD8(b, modeDirect)
	case 0xd7:
		return 4 + c.doST8(b, modeDirect)
	case 0xd8:
		return 4 + c.doEOR8(b, modeDirect)
	case 0xd9:
		return 4 + c.doADD8(b, modeDirect, true)
	case 0xda:
		return 4 + c.doOR8(b, modeDirect)
	case 0xdb:
		return 4 + c.doADD8(b, modeDirect, false)
	case 0xdc:
		return 5 + c.doLD16(d, modeDirect)
	case 0xdd:
		return 5 + c.doST16(d, modeDirect)
	case 0xde:
		return 5 + c.doLD16(u, modeDirect)
	case 0xdf:
		return 5 + c.doST16(u, modeDirect)

	case 0xe0:
		return 4 + c.doSUB8(b, modeIndexed, false)
	case 0xe1:
		return 4 + c.doCMP8(b, modeIndexed)
	case 0xe2:
		return 4 + c.doSUB8(b, modeIndexed, true)
	case 0xe3:
		return 6 + c.doADD16(d, modeIndexed)
	case 0xe4:
		return 4 + c.doAND8(b, modeIndexed)
	case 0xe5:
		return 4 + c.doBIT8(b, modeIndexed)
	case 0xe6:
		return 4 + c.doLD8(b, modeIndexed)
	case 0xe7:
		return 4 + c.doST8(b, modeIndexed)
	case 0xe8:
		return 4 + c.doEOR8(b, modeIndexed)
	case 0xe9:
		return 4 + c.doADD8(b, modeIndexed, true)
	case 0xea:
		return 4 + c.doOR8(b, modeIndexed)
	case 0xeb:
		return 4 + c.doADD8(b, modeIndexed, false)
	case 0xec:
		return 6 + c.doLD16(d, modeIndexed)
	case 0xed:
		return 6 + c.doST16(d, modeIndexed)
	case 0xee:
		return 6 + c.doLD16(u, modeIndexed)
	case 0xef:
		return 6 + c.doST16(u, modeIndexed)

	case 0xf0:
		return 5 + c.doSUB8(b, modeExtended, false)
	case 0xf1:
		return 5 + c.doCMP8(b, modeExtended)
	case 0xf2:
		return 5 + c.doSUB8(b, modeExtended, true)
	case 0xf3:
		return 7 + c.doADD16(d, modeExtended)
	case 0xf4:
		return 5 + c.doAND8(b, modeExtended)
	case 0xf5:
		return 5 + c.doBIT8(b, modeExtended)
	case 0xf6:
		return 5 + c.doLD8(b, modeExtended)
	case 0xf7:
		return 5 + c.doST8(b, modeExtended)
	case 0xf8:
		return 5 + c.doEOR8(b, modeExtended)
	case 0xf9:
		return 5 + c.doADD8(b, modeExtended, true)
	case 0xfa:
		return 5 + c.doOR8(b, modeExtended)
	case 0xfb:
		return 5 + c.doADD8(b, modeExtended, false)
	case 0xfc:
		return 7 + c.doLD16(d, modeExtended)
	case 0xfd:
		return 7 + c.doST16(d, modeExtended)
	case 0xfe:
		return 7 + c.doLD16(u, modeExtended)
	case 0xff:
		return 7 + c.doST16(u, modeExtended)
	}

	c.illegal(opcode)
	return 2
}

// executePage2 handles 0x10-prefixed opcodes: the fifteen conditional long
// (16-bit relative) branches (the unconditional LBRA is page-0 opcode 0x16),
// CMPD, and Y/S register variants of LD/ST/CMP.
func (c *CPU) executePage2(opcode uint8) int {
	y := &regAccessor16{c.Y.Value, c.Y.Load}
	s := &regAccessor16{c.S.Value, c.S.Load}
	d := &regAccessor16{c.D.Value, c.D.Load}

	switch opcode {
	case 0x21:
		return 5 + c.doBranch(modeRelative16, false) // LBRN
	case 0x22:
		return 5 + c.doBranch(modeRelative16, !c.CC.Carry && !c.CC.Zero)
	case 0x23:
		return 5 + c.doBranch(modeRelative16, c.CC.Carry || c.CC.Zero)
	case 0x24:
		return 5 + c.doBranch(modeRelative16, !c.CC.Carry)
	case 0x25:
		return 5 + c.doBranch(modeRelative16, c.CC.Carry)
	case 0x26:
		return 5 + c.doBranch(modeRelative16, !c.CC.Zero)
	case 0x27:
		return 5 + c.doBranch(modeRelative16, c.CC.Zero)
	case 0x28:
		return 5 + c.doBranch(modeRelative16, !c.CC.Overflow)
	case 0x29:
		return 5 + c.doBranch(modeRelative16, c.CC.Overflow)
	case 0x2a:
		return 5 + c.doBranch(modeRelative16, !c.CC.Negative)
	case 0x2b:
		return 5 + c.doBranch(modeRelative16, c.CC.Negative)
	case 0x2c:
		return 5 + c.doBranch(modeRelative16, c.CC.Negative == c.CC.Overflow)
	case 0x2d:
		return 5 + c.doBranch(modeRelative16, c.CC.Negative != c.CC.Overflow)
	case 0x2e:
		return 5 + c.doBranch(modeRelative16, !c.CC.Zero && (c.CC.Negative == c.CC.Overflow))
	case 0x2f:
		return 5 + c.doBranch(modeRelative16, c.CC.Zero || (c.CC.Negative != c.CC.Overflow))

	case 0x83:
		return 5 + c.doCMP16(d, modeImmediate16)
	case 0x8c:
		return 5 + c.doCMP16(y, modeImmediate16)
	case 0x8e:
		return 4 + c.doLD16(y, modeImmediate16)
	case 0x93:
		return 7 + c.doCMP16(d, modeDirect)
	case 0x9c:
		return 7 + c.doCMP16(y, modeDirect)
	case 0x9e:
		return 6 + c.doLD16(y, modeDirect)
	case 0x9f:
		return 6 + c.doST16(y, modeDirect)
	case 0xa3:
		return 7 + c.doCMP16(d, modeIndexed)
	case 0xac:
		return 7 + c.doCMP16(y, modeIndexed)
	case 0xae:
		return 6 + c.doLD16(y, modeIndexed)
	case 0xaf:
		return 6 + c.doST16(y, modeIndexed)
	case 0xb3:
		return 8 + c.doCMP16(d, modeExtended)
	case 0xbc:
		return 8 + c.doCMP16(y, modeExtended)
	case 0xbe:
		return 7 + c.doLD16(y, modeExtended)
	case 0xbf:
		return 7 + c.doST16(y, modeExtended)
	case 0xce:
		return 4 + c.doLD16(s, modeImmediate16)
	case 0xde:
		return 6 + c.doLD16(s, modeDirect)
	case 0xdf:
		return 6 + c.doST16(s, modeDirect)
	case 0xee:
		return 6 + c.doLD16(s, modeIndexed)
	case 0xef:
		return 6 + c.doST16(s, modeIndexed)
	case 0xfe:
		return 7 + c.doLD16(s, modeExtended)
	case 0xff:
		return 7 + c.doST16(s, modeExtended)
	}

	c.illegal(opcode)
	return 2
}

// executePage3 handles 0x11-prefixed opcodes: CMPU and CMPS.
func (c *CPU) executePage3(opcode uint8) int {
	u := &regAccessor16{c.U.Value, c.U.Load}
	s := &regAccessor16{c.S.Value, c.S.Load}

	switch opcode {
	case 0x83:
		return 5 + c.doCMP16(u, modeImmediate16)
	case 0x8c:
		return 5 + c.doCMP16(s, modeImmediate16)
	case 0x93:
		return 7 + c.doCMP16(u, modeDirect)
	case 0x9c:
		return 7 + c.doCMP16(s, modeDirect)
	case 0xa3:
		return 7 + c.doCMP16(u, modeIndexed)
	case 0xac:
		return 7 + c.doCMP16(s, modeIndexed)
	case 0xb3:
		return 8 + c.doCMP16(u, modeExtended)
	case 0xbc:
		return 8 + c.doCMP16(s, modeExtended)
	}

	c.illegal(opcode)
	return 2
}
