// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcode

import "github.com/tsavola/wasmvalidate/wa"

// Info describes an opcode's diagnostic name, natural memory alignment
// (zero if the opcode does not access memory), static operand/result
// signature, and (for SIMD lane instructions) the number of lanes in
// its vector shape. Instructions whose signature depends on module
// state (call, local.get, block, select t, ...) have an empty Pop/Push
// here; the TypeChecker's caller resolves those from the ModuleContext.
type Info struct {
	Name      string
	Align     uint8
	Pop       wa.TypeVector
	Push      wa.TypeVector
	LaneCount uint8
}

var (
	i32  = wa.TypeVector{wa.I32}
	i64  = wa.TypeVector{wa.I64}
	f32  = wa.TypeVector{wa.F32}
	f64  = wa.TypeVector{wa.F64}
	v128 = wa.TypeVector{wa.V128}

	i32i32  = wa.TypeVector{wa.I32, wa.I32}
	i32i64  = wa.TypeVector{wa.I32, wa.I64}
	i32f32  = wa.TypeVector{wa.I32, wa.F32}
	i32f64  = wa.TypeVector{wa.I32, wa.F64}
	i32v128 = wa.TypeVector{wa.I32, wa.V128}

	i32i32i32 = wa.TypeVector{wa.I32, wa.I32, wa.I32}
	i32i32i64 = wa.TypeVector{wa.I32, wa.I32, wa.I64}
	i32i64i64 = wa.TypeVector{wa.I32, wa.I64, wa.I64}
	none      wa.TypeVector
)

func unop(t wa.Type) wa.TypeVector  { return wa.TypeVector{t} }
func binop(t wa.Type) wa.TypeVector { return wa.TypeVector{t, t} }

// table is the static catalog. Module-parameterized opcodes appear in
// it with a name only (no static signature), and init adds the
// structural opcodes (block/loop/if/try/else/catch/end/br*) the same
// way, since control-frame bookkeeping rather than a flat pop/push pair
// supplies their effect.
var table = map[Opcode]Info{
	Unreachable: {Name: "unreachable"},
	Nop:         {Name: "nop"},
	Drop:        {Name: "drop"},
	Return:      {Name: "return"},
	Throw:       {Name: "throw"},
	Rethrow:     {Name: "rethrow"},

	LocalGet:  {Name: "local.get"},
	LocalSet:  {Name: "local.set"},
	LocalTee:  {Name: "local.tee"},
	GlobalGet: {Name: "global.get"},
	GlobalSet: {Name: "global.set"},

	Call:               {Name: "call"},
	CallIndirect:       {Name: "call_indirect"},
	ReturnCall:         {Name: "return_call"},
	ReturnCallIndirect: {Name: "return_call_indirect"},

	Select:  {Name: "select"},
	SelectT: {Name: "select"},

	RefNull:   {Name: "ref.null"},
	RefIsNull: {Name: "ref.is_null"},
	RefFunc:   {Name: "ref.func"},

	TableGet: {Name: "table.get"},
	TableSet: {Name: "table.set"},

	I32Load:    {Name: "i32.load", Align: 4, Pop: i32, Push: i32},
	I64Load:    {Name: "i64.load", Align: 8, Pop: i32, Push: i64},
	F32Load:    {Name: "f32.load", Align: 4, Pop: i32, Push: f32},
	F64Load:    {Name: "f64.load", Align: 8, Pop: i32, Push: f64},
	I32Load8S:  {Name: "i32.load8_s", Align: 1, Pop: i32, Push: i32},
	I32Load8U:  {Name: "i32.load8_u", Align: 1, Pop: i32, Push: i32},
	I32Load16S: {Name: "i32.load16_s", Align: 2, Pop: i32, Push: i32},
	I32Load16U: {Name: "i32.load16_u", Align: 2, Pop: i32, Push: i32},
	I64Load8S:  {Name: "i64.load8_s", Align: 1, Pop: i32, Push: i64},
	I64Load8U:  {Name: "i64.load8_u", Align: 1, Pop: i32, Push: i64},
	I64Load16S: {Name: "i64.load16_s", Align: 2, Pop: i32, Push: i64},
	I64Load16U: {Name: "i64.load16_u", Align: 2, Pop: i32, Push: i64},
	I64Load32S: {Name: "i64.load32_s", Align: 4, Pop: i32, Push: i64},
	I64Load32U: {Name: "i64.load32_u", Align: 4, Pop: i32, Push: i64},

	I32Store:   {Name: "i32.store", Align: 4, Pop: i32i32},
	I64Store:   {Name: "i64.store", Align: 8, Pop: i32i64},
	F32Store:   {Name: "f32.store", Align: 4, Pop: i32f32},
	F64Store:   {Name: "f64.store", Align: 8, Pop: i32f64},
	I32Store8:  {Name: "i32.store8", Align: 1, Pop: i32i32},
	I32Store16: {Name: "i32.store16", Align: 2, Pop: i32i32},
	I64Store8:  {Name: "i64.store8", Align: 1, Pop: i32i64},
	I64Store16: {Name: "i64.store16", Align: 2, Pop: i32i64},
	I64Store32: {Name: "i64.store32", Align: 4, Pop: i32i64},

	MemorySize: {Name: "memory.size", Push: i32},
	MemoryGrow: {Name: "memory.grow", Pop: i32, Push: i32},
	MemoryInit: {Name: "memory.init", Pop: i32i32i32},
	MemoryCopy: {Name: "memory.copy", Pop: i32i32i32},
	MemoryFill: {Name: "memory.fill", Pop: i32i32i32},
	DataDrop:   {Name: "data.drop"},

	TableInit: {Name: "table.init", Pop: i32i32i32},
	ElemDrop:  {Name: "elem.drop"},
	TableCopy: {Name: "table.copy", Pop: i32i32i32},
	TableGrow: {Name: "table.grow"},
	TableSize: {Name: "table.size", Push: i32},
	TableFill: {Name: "table.fill"},

	I32Const: {Name: "i32.const", Push: i32},
	I64Const: {Name: "i64.const", Push: i64},
	F32Const: {Name: "f32.const", Push: f32},
	F64Const: {Name: "f64.const", Push: f64},

	I32Eqz: {Name: "i32.eqz", Pop: i32, Push: i32},
	I32Eq:  {Name: "i32.eq", Pop: i32i32, Push: i32},
	I32Ne:  {Name: "i32.ne", Pop: i32i32, Push: i32},
	I32LtS: {Name: "i32.lt_s", Pop: i32i32, Push: i32},
	I32LtU: {Name: "i32.lt_u", Pop: i32i32, Push: i32},
	I32GtS: {Name: "i32.gt_s", Pop: i32i32, Push: i32},
	I32GtU: {Name: "i32.gt_u", Pop: i32i32, Push: i32},
	I32LeS: {Name: "i32.le_s", Pop: i32i32, Push: i32},
	I32LeU: {Name: "i32.le_u", Pop: i32i32, Push: i32},
	I32GeS: {Name: "i32.ge_s", Pop: i32i32, Push: i32},
	I32GeU: {Name: "i32.ge_u", Pop: i32i32, Push: i32},

	I64Eqz: {Name: "i64.eqz", Pop: i64, Push: i32},
	I64Eq:  {Name: "i64.eq", Pop: wa.TypeVector{wa.I64, wa.I64}, Push: i32},
	I64Ne:  {Name: "i64.ne", Pop: wa.TypeVector{wa.I64, wa.I64}, Push: i32},
	I64LtS: {Name: "i64.lt_s", Pop: wa.TypeVector{wa.I64, wa.I64}, Push: i32},
	I64LtU: {Name: "i64.lt_u", Pop: wa.TypeVector{wa.I64, wa.I64}, Push: i32},
	I64GtS: {Name: "i64.gt_s", Pop: wa.TypeVector{wa.I64, wa.I64}, Push: i32},
	I64GtU: {Name: "i64.gt_u", Pop: wa.TypeVector{wa.I64, wa.I64}, Push: i32},
	I64LeS: {Name: "i64.le_s", Pop: wa.TypeVector{wa.I64, wa.I64}, Push: i32},
	I64LeU: {Name: "i64.le_u", Pop: wa.TypeVector{wa.I64, wa.I64}, Push: i32},
	I64GeS: {Name: "i64.ge_s", Pop: wa.TypeVector{wa.I64, wa.I64}, Push: i32},
	I64GeU: {Name: "i64.ge_u", Pop: wa.TypeVector{wa.I64, wa.I64}, Push: i32},

	F32Eq: {Name: "f32.eq", Pop: wa.TypeVector{wa.F32, wa.F32}, Push: i32},
	F32Ne: {Name: "f32.ne", Pop: wa.TypeVector{wa.F32, wa.F32}, Push: i32},
	F32Lt: {Name: "f32.lt", Pop: wa.TypeVector{wa.F32, wa.F32}, Push: i32},
	F32Gt: {Name: "f32.gt", Pop: wa.TypeVector{wa.F32, wa.F32}, Push: i32},
	F32Le: {Name: "f32.le", Pop: wa.TypeVector{wa.F32, wa.F32}, Push: i32},
	F32Ge: {Name: "f32.ge", Pop: wa.TypeVector{wa.F32, wa.F32}, Push: i32},

	F64Eq: {Name: "f64.eq", Pop: wa.TypeVector{wa.F64, wa.F64}, Push: i32},
	F64Ne: {Name: "f64.ne", Pop: wa.TypeVector{wa.F64, wa.F64}, Push: i32},
	F64Lt: {Name: "f64.lt", Pop: wa.TypeVector{wa.F64, wa.F64}, Push: i32},
	F64Gt: {Name: "f64.gt", Pop: wa.TypeVector{wa.F64, wa.F64}, Push: i32},
	F64Le: {Name: "f64.le", Pop: wa.TypeVector{wa.F64, wa.F64}, Push: i32},
	F64Ge: {Name: "f64.ge", Pop: wa.TypeVector{wa.F64, wa.F64}, Push: i32},

	I32Clz:    {Name: "i32.clz", Pop: i32, Push: i32},
	I32Ctz:    {Name: "i32.ctz", Pop: i32, Push: i32},
	I32Popcnt: {Name: "i32.popcnt", Pop: i32, Push: i32},
	I32Add:    {Name: "i32.add", Pop: i32i32, Push: i32},
	I32Sub:    {Name: "i32.sub", Pop: i32i32, Push: i32},
	I32Mul:    {Name: "i32.mul", Pop: i32i32, Push: i32},
	I32DivS:   {Name: "i32.div_s", Pop: i32i32, Push: i32},
	I32DivU:   {Name: "i32.div_u", Pop: i32i32, Push: i32},
	I32RemS:   {Name: "i32.rem_s", Pop: i32i32, Push: i32},
	I32RemU:   {Name: "i32.rem_u", Pop: i32i32, Push: i32},
	I32And:    {Name: "i32.and", Pop: i32i32, Push: i32},
	I32Or:     {Name: "i32.or", Pop: i32i32, Push: i32},
	I32Xor:    {Name: "i32.xor", Pop: i32i32, Push: i32},
	I32Shl:    {Name: "i32.shl", Pop: i32i32, Push: i32},
	I32ShrS:   {Name: "i32.shr_s", Pop: i32i32, Push: i32},
	I32ShrU:   {Name: "i32.shr_u", Pop: i32i32, Push: i32},
	I32Rotl:   {Name: "i32.rotl", Pop: i32i32, Push: i32},
	I32Rotr:   {Name: "i32.rotr", Pop: i32i32, Push: i32},

	I64Clz:    {Name: "i64.clz", Pop: i64, Push: i64},
	I64Ctz:    {Name: "i64.ctz", Pop: i64, Push: i64},
	I64Popcnt: {Name: "i64.popcnt", Pop: i64, Push: i64},
	I64Add:    {Name: "i64.add", Pop: binop(wa.I64), Push: i64},
	I64Sub:    {Name: "i64.sub", Pop: binop(wa.I64), Push: i64},
	I64Mul:    {Name: "i64.mul", Pop: binop(wa.I64), Push: i64},
	I64DivS:   {Name: "i64.div_s", Pop: binop(wa.I64), Push: i64},
	I64DivU:   {Name: "i64.div_u", Pop: binop(wa.I64), Push: i64},
	I64RemS:   {Name: "i64.rem_s", Pop: binop(wa.I64), Push: i64},
	I64RemU:   {Name: "i64.rem_u", Pop: binop(wa.I64), Push: i64},
	I64And:    {Name: "i64.and", Pop: binop(wa.I64), Push: i64},
	I64Or:     {Name: "i64.or", Pop: binop(wa.I64), Push: i64},
	I64Xor:    {Name: "i64.xor", Pop: binop(wa.I64), Push: i64},
	I64Shl:    {Name: "i64.shl", Pop: binop(wa.I64), Push: i64},
	I64ShrS:   {Name: "i64.shr_s", Pop: binop(wa.I64), Push: i64},
	I64ShrU:   {Name: "i64.shr_u", Pop: binop(wa.I64), Push: i64},
	I64Rotl:   {Name: "i64.rotl", Pop: binop(wa.I64), Push: i64},
	I64Rotr:   {Name: "i64.rotr", Pop: binop(wa.I64), Push: i64},

	F32Abs:      {Name: "f32.abs", Pop: f32, Push: f32},
	F32Neg:      {Name: "f32.neg", Pop: f32, Push: f32},
	F32Ceil:     {Name: "f32.ceil", Pop: f32, Push: f32},
	F32Floor:    {Name: "f32.floor", Pop: f32, Push: f32},
	F32Trunc:    {Name: "f32.trunc", Pop: f32, Push: f32},
	F32Nearest:  {Name: "f32.nearest", Pop: f32, Push: f32},
	F32Sqrt:     {Name: "f32.sqrt", Pop: f32, Push: f32},
	F32Add:      {Name: "f32.add", Pop: binop(wa.F32), Push: f32},
	F32Sub:      {Name: "f32.sub", Pop: binop(wa.F32), Push: f32},
	F32Mul:      {Name: "f32.mul", Pop: binop(wa.F32), Push: f32},
	F32Div:      {Name: "f32.div", Pop: binop(wa.F32), Push: f32},
	F32Min:      {Name: "f32.min", Pop: binop(wa.F32), Push: f32},
	F32Max:      {Name: "f32.max", Pop: binop(wa.F32), Push: f32},
	F32Copysign: {Name: "f32.copysign", Pop: binop(wa.F32), Push: f32},

	F64Abs:      {Name: "f64.abs", Pop: f64, Push: f64},
	F64Neg:      {Name: "f64.neg", Pop: f64, Push: f64},
	F64Ceil:     {Name: "f64.ceil", Pop: f64, Push: f64},
	F64Floor:    {Name: "f64.floor", Pop: f64, Push: f64},
	F64Trunc:    {Name: "f64.trunc", Pop: f64, Push: f64},
	F64Nearest:  {Name: "f64.nearest", Pop: f64, Push: f64},
	F64Sqrt:     {Name: "f64.sqrt", Pop: f64, Push: f64},
	F64Add:      {Name: "f64.add", Pop: binop(wa.F64), Push: f64},
	F64Sub:      {Name: "f64.sub", Pop: binop(wa.F64), Push: f64},
	F64Mul:      {Name: "f64.mul", Pop: binop(wa.F64), Push: f64},
	F64Div:      {Name: "f64.div", Pop: binop(wa.F64), Push: f64},
	F64Min:      {Name: "f64.min", Pop: binop(wa.F64), Push: f64},
	F64Max:      {Name: "f64.max", Pop: binop(wa.F64), Push: f64},
	F64Copysign: {Name: "f64.copysign", Pop: binop(wa.F64), Push: f64},

	I32WrapI64:        {Name: "i32.wrap_i64", Pop: i64, Push: i32},
	I32TruncF32S:      {Name: "i32.trunc_f32_s", Pop: f32, Push: i32},
	I32TruncF32U:      {Name: "i32.trunc_f32_u", Pop: f32, Push: i32},
	I32TruncF64S:      {Name: "i32.trunc_f64_s", Pop: f64, Push: i32},
	I32TruncF64U:      {Name: "i32.trunc_f64_u", Pop: f64, Push: i32},
	I64ExtendI32S:     {Name: "i64.extend_i32_s", Pop: i32, Push: i64},
	I64ExtendI32U:     {Name: "i64.extend_i32_u", Pop: i32, Push: i64},
	I64TruncF32S:      {Name: "i64.trunc_f32_s", Pop: f32, Push: i64},
	I64TruncF32U:      {Name: "i64.trunc_f32_u", Pop: f32, Push: i64},
	I64TruncF64S:      {Name: "i64.trunc_f64_s", Pop: f64, Push: i64},
	I64TruncF64U:      {Name: "i64.trunc_f64_u", Pop: f64, Push: i64},
	F32ConvertI32S:    {Name: "f32.convert_i32_s", Pop: i32, Push: f32},
	F32ConvertI32U:    {Name: "f32.convert_i32_u", Pop: i32, Push: f32},
	F32ConvertI64S:    {Name: "f32.convert_i64_s", Pop: i64, Push: f32},
	F32ConvertI64U:    {Name: "f32.convert_i64_u", Pop: i64, Push: f32},
	F32DemoteF64:      {Name: "f32.demote_f64", Pop: f64, Push: f32},
	F64ConvertI32S:    {Name: "f64.convert_i32_s", Pop: i32, Push: f64},
	F64ConvertI32U:    {Name: "f64.convert_i32_u", Pop: i32, Push: f64},
	F64ConvertI64S:    {Name: "f64.convert_i64_s", Pop: i64, Push: f64},
	F64ConvertI64U:    {Name: "f64.convert_i64_u", Pop: i64, Push: f64},
	F64PromoteF32:     {Name: "f64.promote_f32", Pop: f32, Push: f64},
	I32ReinterpretF32: {Name: "i32.reinterpret_f32", Pop: f32, Push: i32},
	I64ReinterpretF64: {Name: "i64.reinterpret_f64", Pop: f64, Push: i64},
	F32ReinterpretI32: {Name: "f32.reinterpret_i32", Pop: i32, Push: f32},
	F64ReinterpretI64: {Name: "f64.reinterpret_i64", Pop: i64, Push: f64},

	I32Extend8S:  {Name: "i32.extend8_s", Pop: i32, Push: i32},
	I32Extend16S: {Name: "i32.extend16_s", Pop: i32, Push: i32},
	I64Extend8S:  {Name: "i64.extend8_s", Pop: i64, Push: i64},
	I64Extend16S: {Name: "i64.extend16_s", Pop: i64, Push: i64},
	I64Extend32S: {Name: "i64.extend32_s", Pop: i64, Push: i64},

	I32TruncSatF32S: {Name: "i32.trunc_sat_f32_s", Pop: f32, Push: i32},
	I32TruncSatF32U: {Name: "i32.trunc_sat_f32_u", Pop: f32, Push: i32},
	I32TruncSatF64S: {Name: "i32.trunc_sat_f64_s", Pop: f64, Push: i32},
	I32TruncSatF64U: {Name: "i32.trunc_sat_f64_u", Pop: f64, Push: i32},
	I64TruncSatF32S: {Name: "i64.trunc_sat_f32_s", Pop: f32, Push: i64},
	I64TruncSatF32U: {Name: "i64.trunc_sat_f32_u", Pop: f32, Push: i64},
	I64TruncSatF64S: {Name: "i64.trunc_sat_f64_s", Pop: f64, Push: i64},
	I64TruncSatF64U: {Name: "i64.trunc_sat_f64_u", Pop: f64, Push: i64},

	MemoryAtomicNotify: {Name: "memory.atomic.notify", Align: 4, Pop: i32i32},
	MemoryAtomicWait32: {Name: "memory.atomic.wait32", Align: 4, Pop: i32i32i64},
	MemoryAtomicWait64: {Name: "memory.atomic.wait64", Align: 8, Pop: i32i64i64},
	AtomicFence:        {Name: "atomic.fence"},

	I32AtomicLoad:    {Name: "i32.atomic.load", Align: 4, Pop: i32, Push: i32},
	I64AtomicLoad:    {Name: "i64.atomic.load", Align: 8, Pop: i32, Push: i64},
	I32AtomicLoad8U:  {Name: "i32.atomic.load8_u", Align: 1, Pop: i32, Push: i32},
	I32AtomicLoad16U: {Name: "i32.atomic.load16_u", Align: 2, Pop: i32, Push: i32},
	I64AtomicLoad8U:  {Name: "i64.atomic.load8_u", Align: 1, Pop: i32, Push: i64},
	I64AtomicLoad16U: {Name: "i64.atomic.load16_u", Align: 2, Pop: i32, Push: i64},
	I64AtomicLoad32U: {Name: "i64.atomic.load32_u", Align: 4, Pop: i32, Push: i64},

	I32AtomicStore:    {Name: "i32.atomic.store", Align: 4, Pop: i32i32},
	I64AtomicStore:    {Name: "i64.atomic.store", Align: 8, Pop: i32i64},
	I32AtomicStore8:   {Name: "i32.atomic.store8", Align: 1, Pop: i32i32},
	I32AtomicStore16:  {Name: "i32.atomic.store16", Align: 2, Pop: i32i32},
	I64AtomicStore8:   {Name: "i64.atomic.store8", Align: 1, Pop: i32i64},
	I64AtomicStore16:  {Name: "i64.atomic.store16", Align: 2, Pop: i32i64},
	I64AtomicStore32:  {Name: "i64.atomic.store32", Align: 4, Pop: i32i64},

	I32AtomicRmwAdd:      {Name: "i32.atomic.rmw.add", Align: 4, Pop: i32i32, Push: i32},
	I64AtomicRmwAdd:      {Name: "i64.atomic.rmw.add", Align: 8, Pop: i32i64, Push: i64},
	I32AtomicRmw8AddU:    {Name: "i32.atomic.rmw8.add_u", Align: 1, Pop: i32i32, Push: i32},
	I32AtomicRmw16AddU:   {Name: "i32.atomic.rmw16.add_u", Align: 2, Pop: i32i32, Push: i32},
	I64AtomicRmw8AddU:    {Name: "i64.atomic.rmw8.add_u", Align: 1, Pop: i32i64, Push: i64},
	I64AtomicRmw16AddU:   {Name: "i64.atomic.rmw16.add_u", Align: 2, Pop: i32i64, Push: i64},
	I64AtomicRmw32AddU:   {Name: "i64.atomic.rmw32.add_u", Align: 4, Pop: i32i64, Push: i64},
	I32AtomicRmwSub:      {Name: "i32.atomic.rmw.sub", Align: 4, Pop: i32i32, Push: i32},
	I64AtomicRmwSub:      {Name: "i64.atomic.rmw.sub", Align: 8, Pop: i32i64, Push: i64},
	I32AtomicRmwAnd:      {Name: "i32.atomic.rmw.and", Align: 4, Pop: i32i32, Push: i32},
	I64AtomicRmwAnd:      {Name: "i64.atomic.rmw.and", Align: 8, Pop: i32i64, Push: i64},
	I32AtomicRmwOr:       {Name: "i32.atomic.rmw.or", Align: 4, Pop: i32i32, Push: i32},
	I64AtomicRmwOr:       {Name: "i64.atomic.rmw.or", Align: 8, Pop: i32i64, Push: i64},
	I32AtomicRmwXor:      {Name: "i32.atomic.rmw.xor", Align: 4, Pop: i32i32, Push: i32},
	I64AtomicRmwXor:      {Name: "i64.atomic.rmw.xor", Align: 8, Pop: i32i64, Push: i64},
	I32AtomicRmwXchg:     {Name: "i32.atomic.rmw.xchg", Align: 4, Pop: i32i32, Push: i32},
	I64AtomicRmwXchg:     {Name: "i64.atomic.rmw.xchg", Align: 8, Pop: i32i64, Push: i64},
	I32AtomicRmwCmpxchg:  {Name: "i32.atomic.rmw.cmpxchg", Align: 4, Pop: i32i32i32, Push: i32},
	I64AtomicRmwCmpxchg:  {Name: "i64.atomic.rmw.cmpxchg", Align: 8, Pop: wa.TypeVector{wa.I32, wa.I64, wa.I64}, Push: i64},

	V128Load:  {Name: "v128.load", Align: 16, Pop: i32, Push: v128},
	V128Store: {Name: "v128.store", Align: 16, Pop: i32v128},
	V128Const: {Name: "v128.const", Push: v128},

	I8x16Shuffle: {Name: "i8x16.shuffle", Pop: wa.TypeVector{wa.V128, wa.V128}, Push: v128},

	I8x16ExtractLaneS: {Name: "i8x16.extract_lane_s", Pop: v128, Push: i32, LaneCount: 16},
	I8x16ExtractLaneU: {Name: "i8x16.extract_lane_u", Pop: v128, Push: i32, LaneCount: 16},
	I8x16ReplaceLane:  {Name: "i8x16.replace_lane", Pop: i32v128, Push: v128, LaneCount: 16},
	I16x8ExtractLaneS: {Name: "i16x8.extract_lane_s", Pop: v128, Push: i32, LaneCount: 8},
	I16x8ExtractLaneU: {Name: "i16x8.extract_lane_u", Pop: v128, Push: i32, LaneCount: 8},
	I16x8ReplaceLane:  {Name: "i16x8.replace_lane", Pop: i32v128, Push: v128, LaneCount: 8},
	I32x4ExtractLane:  {Name: "i32x4.extract_lane", Pop: v128, Push: i32, LaneCount: 4},
	I32x4ReplaceLane:  {Name: "i32x4.replace_lane", Pop: i32v128, Push: v128, LaneCount: 4},
	I64x2ExtractLane:  {Name: "i64x2.extract_lane", Pop: v128, Push: i64, LaneCount: 2},
	I64x2ReplaceLane:  {Name: "i64x2.replace_lane", Pop: wa.TypeVector{wa.I64, wa.V128}, Push: v128, LaneCount: 2},
	F32x4ExtractLane:  {Name: "f32x4.extract_lane", Pop: v128, Push: f32, LaneCount: 4},
	F32x4ReplaceLane:  {Name: "f32x4.replace_lane", Pop: wa.TypeVector{wa.F32, wa.V128}, Push: v128, LaneCount: 4},
	F64x2ExtractLane:  {Name: "f64x2.extract_lane", Pop: v128, Push: f64, LaneCount: 2},
	F64x2ReplaceLane:  {Name: "f64x2.replace_lane", Pop: wa.TypeVector{wa.F64, wa.V128}, Push: v128, LaneCount: 2},

	I8x16Splat: {Name: "i8x16.splat", Pop: i32, Push: v128},
	I16x8Splat: {Name: "i16x8.splat", Pop: i32, Push: v128},
	I32x4Splat: {Name: "i32x4.splat", Pop: i32, Push: v128},
	I64x2Splat: {Name: "i64x2.splat", Pop: i64, Push: v128},
	F32x4Splat: {Name: "f32x4.splat", Pop: f32, Push: v128},
	F64x2Splat: {Name: "f64x2.splat", Pop: f64, Push: v128},

	I32x4Add: {Name: "i32x4.add", Pop: binop(wa.V128), Push: v128},
	I32x4Sub: {Name: "i32x4.sub", Pop: binop(wa.V128), Push: v128},
	I32x4Mul: {Name: "i32x4.mul", Pop: binop(wa.V128), Push: v128},
	F32x4Add: {Name: "f32x4.add", Pop: binop(wa.V128), Push: v128},
	F32x4Sub: {Name: "f32x4.sub", Pop: binop(wa.V128), Push: v128},
	F32x4Mul: {Name: "f32x4.mul", Pop: binop(wa.V128), Push: v128},

	V128Not: {Name: "v128.not", Pop: v128, Push: v128},
	V128And: {Name: "v128.and", Pop: binop(wa.V128), Push: v128},
	V128Or:  {Name: "v128.or", Pop: binop(wa.V128), Push: v128},
	V128Xor: {Name: "v128.xor", Pop: binop(wa.V128), Push: v128},
}

func init() {
	// Structural opcodes have a name but no flat signature; the control
	// stack machinery supplies their effect.
	for op, name := range structuralNames {
		if _, exists := table[op]; !exists {
			table[op] = Info{Name: name}
		}
	}
}

var structuralNames = map[Opcode]string{
	Block:              "block",
	Loop:               "loop",
	If:                 "if",
	Else:               "else",
	Try:                "try",
	Catch:              "catch",
	CatchAll:           "catch_all",
	End:                "end",
	Br:                 "br",
	BrIf:               "br_if",
	BrTable:            "br_table",
	BrOnExn:            "br_on_exn",
}

// Lookup returns the catalog entry for op, if any.
func Lookup(op Opcode) (Info, bool) {
	info, found := table[op]
	return info, found
}
