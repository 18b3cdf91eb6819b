// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcode

const (
	Unreachable  = Opcode(0x00)
	Nop          = Opcode(0x01)
	Block        = Opcode(0x02)
	Loop         = Opcode(0x03)
	If           = Opcode(0x04)
	Else         = Opcode(0x05)
	Try          = Opcode(0x06)
	Catch        = Opcode(0x07)
	Throw        = Opcode(0x08)
	Rethrow      = Opcode(0x09)
	End          = Opcode(0x0b)
	Br           = Opcode(0x0c)
	BrIf         = Opcode(0x0d)
	BrTable      = Opcode(0x0e)
	Return       = Opcode(0x0f)
	Call         = Opcode(0x10)
	CallIndirect = Opcode(0x11)
	ReturnCall         = Opcode(0x12)
	ReturnCallIndirect = Opcode(0x13)
	BrOnExn            = Opcode(0x17)
	CatchAll           = Opcode(0x19)

	Drop       = Opcode(0x1a)
	Select     = Opcode(0x1b)
	SelectT    = Opcode(0x1c)

	LocalGet  = Opcode(0x20)
	LocalSet  = Opcode(0x21)
	LocalTee  = Opcode(0x22)
	GlobalGet = Opcode(0x23)
	GlobalSet = Opcode(0x24)
	TableGet  = Opcode(0x25)
	TableSet  = Opcode(0x26)

	I32Load    = Opcode(0x28)
	I64Load    = Opcode(0x29)
	F32Load    = Opcode(0x2a)
	F64Load    = Opcode(0x2b)
	I32Load8S  = Opcode(0x2c)
	I32Load8U  = Opcode(0x2d)
	I32Load16S = Opcode(0x2e)
	I32Load16U = Opcode(0x2f)
	I64Load8S  = Opcode(0x30)
	I64Load8U  = Opcode(0x31)
	I64Load16S = Opcode(0x32)
	I64Load16U = Opcode(0x33)
	I64Load32S = Opcode(0x34)
	I64Load32U = Opcode(0x35)
	I32Store   = Opcode(0x36)
	I64Store   = Opcode(0x37)
	F32Store   = Opcode(0x38)
	F64Store   = Opcode(0x39)
	I32Store8  = Opcode(0x3a)
	I32Store16 = Opcode(0x3b)
	I64Store8  = Opcode(0x3c)
	I64Store16 = Opcode(0x3d)
	I64Store32 = Opcode(0x3e)
	MemorySize = Opcode(0x3f)
	MemoryGrow = Opcode(0x40)

	I32Const = Opcode(0x41)
	I64Const = Opcode(0x42)
	F32Const = Opcode(0x43)
	F64Const = Opcode(0x44)

	I32Eqz  = Opcode(0x45)
	I32Eq   = Opcode(0x46)
	I32Ne   = Opcode(0x47)
	I32LtS  = Opcode(0x48)
	I32LtU  = Opcode(0x49)
	I32GtS  = Opcode(0x4a)
	I32GtU  = Opcode(0x4b)
	I32LeS  = Opcode(0x4c)
	I32LeU  = Opcode(0x4d)
	I32GeS  = Opcode(0x4e)
	I32GeU  = Opcode(0x4f)
	I64Eqz  = Opcode(0x50)
	I64Eq   = Opcode(0x51)
	I64Ne   = Opcode(0x52)
	I64LtS  = Opcode(0x53)
	I64LtU  = Opcode(0x54)
	I64GtS  = Opcode(0x55)
	I64GtU  = Opcode(0x56)
	I64LeS  = Opcode(0x57)
	I64LeU  = Opcode(0x58)
	I64GeS  = Opcode(0x59)
	I64GeU  = Opcode(0x5a)
	F32Eq   = Opcode(0x5b)
	F32Ne   = Opcode(0x5c)
	F32Lt   = Opcode(0x5d)
	F32Gt   = Opcode(0x5e)
	F32Le   = Opcode(0x5f)
	F32Ge   = Opcode(0x60)
	F64Eq   = Opcode(0x61)
	F64Ne   = Opcode(0x62)
	F64Lt   = Opcode(0x63)
	F64Gt   = Opcode(0x64)
	F64Le   = Opcode(0x65)
	F64Ge   = Opcode(0x66)

	I32Clz    = Opcode(0x67)
	I32Ctz    = Opcode(0x68)
	I32Popcnt = Opcode(0x69)
	I32Add    = Opcode(0x6a)
	I32Sub    = Opcode(0x6b)
	I32Mul    = Opcode(0x6c)
	I32DivS   = Opcode(0x6d)
	I32DivU   = Opcode(0x6e)
	I32RemS   = Opcode(0x6f)
	I32RemU   = Opcode(0x70)
	I32And    = Opcode(0x71)
	I32Or     = Opcode(0x72)
	I32Xor    = Opcode(0x73)
	I32Shl    = Opcode(0x74)
	I32ShrS   = Opcode(0x75)
	I32ShrU   = Opcode(0x76)
	I32Rotl   = Opcode(0x77)
	I32Rotr   = Opcode(0x78)
	I64Clz    = Opcode(0x79)
	I64Ctz    = Opcode(0x7a)
	I64Popcnt = Opcode(0x7b)
	I64Add    = Opcode(0x7c)
	I64Sub    = Opcode(0x7d)
	I64Mul    = Opcode(0x7e)
	I64DivS   = Opcode(0x7f)
	I64DivU   = Opcode(0x80)
	I64RemS   = Opcode(0x81)
	I64RemU   = Opcode(0x82)
	I64And    = Opcode(0x83)
	I64Or     = Opcode(0x84)
	I64Xor    = Opcode(0x85)
	I64Shl    = Opcode(0x86)
	I64ShrS   = Opcode(0x87)
	I64ShrU   = Opcode(0x88)
	I64Rotl   = Opcode(0x89)
	I64Rotr   = Opcode(0x8a)

	F32Abs      = Opcode(0x8b)
	F32Neg      = Opcode(0x8c)
	F32Ceil     = Opcode(0x8d)
	F32Floor    = Opcode(0x8e)
	F32Trunc    = Opcode(0x8f)
	F32Nearest  = Opcode(0x90)
	F32Sqrt     = Opcode(0x91)
	F32Add      = Opcode(0x92)
	F32Sub      = Opcode(0x93)
	F32Mul      = Opcode(0x94)
	F32Div      = Opcode(0x95)
	F32Min      = Opcode(0x96)
	F32Max      = Opcode(0x97)
	F32Copysign = Opcode(0x98)
	F64Abs      = Opcode(0x99)
	F64Neg      = Opcode(0x9a)
	F64Ceil     = Opcode(0x9b)
	F64Floor    = Opcode(0x9c)
	F64Trunc    = Opcode(0x9d)
	F64Nearest  = Opcode(0x9e)
	F64Sqrt     = Opcode(0x9f)
	F64Add      = Opcode(0xa0)
	F64Sub      = Opcode(0xa1)
	F64Mul      = Opcode(0xa2)
	F64Div      = Opcode(0xa3)
	F64Min      = Opcode(0xa4)
	F64Max      = Opcode(0xa5)
	F64Copysign = Opcode(0xa6)

	I32WrapI64        = Opcode(0xa7)
	I32TruncF32S      = Opcode(0xa8)
	I32TruncF32U      = Opcode(0xa9)
	I32TruncF64S      = Opcode(0xaa)
	I32TruncF64U      = Opcode(0xab)
	I64ExtendI32S     = Opcode(0xac)
	I64ExtendI32U     = Opcode(0xad)
	I64TruncF32S      = Opcode(0xae)
	I64TruncF32U      = Opcode(0xaf)
	I64TruncF64S      = Opcode(0xb0)
	I64TruncF64U      = Opcode(0xb1)
	F32ConvertI32S    = Opcode(0xb2)
	F32ConvertI32U    = Opcode(0xb3)
	F32ConvertI64S    = Opcode(0xb4)
	F32ConvertI64U    = Opcode(0xb5)
	F32DemoteF64      = Opcode(0xb6)
	F64ConvertI32S    = Opcode(0xb7)
	F64ConvertI32U    = Opcode(0xb8)
	F64ConvertI64S    = Opcode(0xb9)
	F64ConvertI64U    = Opcode(0xba)
	F64PromoteF32     = Opcode(0xbb)
	I32ReinterpretF32 = Opcode(0xbc)
	I64ReinterpretF64 = Opcode(0xbd)
	F32ReinterpretI32 = Opcode(0xbe)
	F64ReinterpretI64 = Opcode(0xbf)

	// Sign-extension proposal.
	I32Extend8S  = Opcode(0xc0)
	I32Extend16S = Opcode(0xc1)
	I64Extend8S  = Opcode(0xc2)
	I64Extend16S = Opcode(0xc3)
	I64Extend32S = Opcode(0xc4)

	// Reference-types proposal.
	RefNull   = Opcode(0xd0)
	RefIsNull = Opcode(0xd1)
	RefFunc   = Opcode(0xd2)
)

// Misc-prefixed opcodes (0xFC): non-trapping float-to-int conversions,
// bulk memory, and the table half of reference types.
var (
	I32TruncSatF32S = misc(0x00)
	I32TruncSatF32U = misc(0x01)
	I32TruncSatF64S = misc(0x02)
	I32TruncSatF64U = misc(0x03)
	I64TruncSatF32S = misc(0x04)
	I64TruncSatF32U = misc(0x05)
	I64TruncSatF64S = misc(0x06)
	I64TruncSatF64U = misc(0x07)

	MemoryInit = misc(0x08)
	DataDrop   = misc(0x09)
	MemoryCopy = misc(0x0a)
	MemoryFill = misc(0x0b)

	TableInit = misc(0x0c)
	ElemDrop  = misc(0x0d)
	TableCopy = misc(0x0e)
	TableGrow = misc(0x0f)
	TableSize = misc(0x10)
	TableFill = misc(0x11)
)

// Atomic-prefixed opcodes (0xFE): the threads proposal.
var (
	MemoryAtomicNotify  = atomic(0x00)
	MemoryAtomicWait32  = atomic(0x01)
	MemoryAtomicWait64  = atomic(0x02)
	AtomicFence         = atomic(0x03)

	I32AtomicLoad    = atomic(0x10)
	I64AtomicLoad    = atomic(0x11)
	I32AtomicLoad8U  = atomic(0x12)
	I32AtomicLoad16U = atomic(0x13)
	I64AtomicLoad8U  = atomic(0x14)
	I64AtomicLoad16U = atomic(0x15)
	I64AtomicLoad32U = atomic(0x16)
	I32AtomicStore    = atomic(0x17)
	I64AtomicStore    = atomic(0x18)
	I32AtomicStore8  = atomic(0x19)
	I32AtomicStore16 = atomic(0x1a)
	I64AtomicStore8  = atomic(0x1b)
	I64AtomicStore16 = atomic(0x1c)
	I64AtomicStore32 = atomic(0x1d)

	I32AtomicRmwAdd   = atomic(0x1e)
	I64AtomicRmwAdd   = atomic(0x1f)
	I32AtomicRmw8AddU  = atomic(0x20)
	I32AtomicRmw16AddU = atomic(0x21)
	I64AtomicRmw8AddU  = atomic(0x22)
	I64AtomicRmw16AddU = atomic(0x23)
	I64AtomicRmw32AddU = atomic(0x24)

	I32AtomicRmwSub   = atomic(0x25)
	I64AtomicRmwSub   = atomic(0x26)
	I32AtomicRmwAnd   = atomic(0x2e)
	I64AtomicRmwAnd   = atomic(0x2f)
	I32AtomicRmwOr    = atomic(0x38)
	I64AtomicRmwOr    = atomic(0x39)
	I32AtomicRmwXor   = atomic(0x42)
	I64AtomicRmwXor   = atomic(0x43)
	I32AtomicRmwXchg  = atomic(0x4c)
	I64AtomicRmwXchg  = atomic(0x4d)
	I32AtomicRmwCmpxchg = atomic(0x4e)
	I64AtomicRmwCmpxchg = atomic(0x4f)
)

// SIMD-prefixed opcodes (0xFD).
var (
	V128Load  = simd(0x00)
	V128Store = simd(0x01)
	V128Const = simd(0x0c)

	I8x16Shuffle = simd(0x0d)

	I8x16ExtractLaneS = simd(0x15)
	I8x16ExtractLaneU = simd(0x16)
	I8x16ReplaceLane  = simd(0x17)
	I16x8ExtractLaneS = simd(0x18)
	I16x8ExtractLaneU = simd(0x19)
	I16x8ReplaceLane  = simd(0x1a)
	I32x4ExtractLane  = simd(0x1b)
	I32x4ReplaceLane  = simd(0x1c)
	I64x2ExtractLane  = simd(0x1d)
	I64x2ReplaceLane  = simd(0x1e)
	F32x4ExtractLane  = simd(0x1f)
	F32x4ReplaceLane  = simd(0x20)
	F64x2ExtractLane  = simd(0x21)
	F64x2ReplaceLane  = simd(0x22)

	I8x16Splat = simd(0x0f)
	I16x8Splat = simd(0x10)
	I32x4Splat = simd(0x11)
	I64x2Splat = simd(0x12)
	F32x4Splat = simd(0x13)
	F64x2Splat = simd(0x14)

	I32x4Add = simd(0xae)
	I32x4Sub = simd(0xb1)
	I32x4Mul = simd(0xb5)
	F32x4Add = simd(0xe4)
	F32x4Sub = simd(0xe5)
	F32x4Mul = simd(0xe6)

	V128Not = simd(0x4d)
	V128And = simd(0x4e)
	V128Or  = simd(0x50)
	V128Xor = simd(0x51)
)
