// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Program wasmlint demonstrates driving the validator's event API
// directly, without any binary or text parser in front of it. It
// builds one fixed worked module (an exported "add" function) and
// prints whatever diagnostics the validator accumulates.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tsavola/wasmvalidate"
	"github.com/tsavola/wasmvalidate/feature"
	"github.com/tsavola/wasmvalidate/wa"
	"github.com/tsavola/wasmvalidate/wa/opcode"
)

var verbose = false

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	var f feature.Set
	flag.BoolVar(&verbose, "v", verbose, "verbose logging")
	flag.BoolVar(&f.MultiValue, "multi-value", f.MultiValue, "enable the multi_value proposal")
	flag.BoolVar(&f.RefTypes, "reference-types", f.RefTypes, "enable the reference_types proposal")
	flag.BoolVar(&f.MutableGlobals, "mutable-globals", f.MutableGlobals, "enable the mutable_globals proposal")
	flag.BoolVar(&f.Threads, "threads", f.Threads, "enable the threads proposal")
	flag.BoolVar(&f.BulkMemory, "bulk-memory", f.BulkMemory, "enable the bulk_memory proposal")
	flag.BoolVar(&f.SIMD, "simd", f.SIMD, "enable the simd proposal")
	flag.BoolVar(&f.Exceptions, "exceptions", f.Exceptions, "enable the exceptions proposal")
	flag.BoolVar(&f.TailCall, "tail-call", f.TailCall, "enable the tail_call proposal")
	flag.BoolVar(&f.SignExtension, "sign-extension", f.SignExtension, "enable the sign_extension proposal")
	flag.BoolVar(&f.SaturatingFloatToInt, "saturating-float-to-int", f.SaturatingFloatToInt, "enable the saturating_float_to_int proposal")
	flag.Parse()

	if verbose {
		log.Printf("features: %+v", f)
	}

	v := wasmvalidate.New(f)
	buildAddModule(v)
	v.EndModule(0)

	if v.Valid() {
		fmt.Println("module is valid")
		return
	}

	fmt.Println(v.Format())
	os.Exit(1)
}

// buildAddModule drives the event API through a single exported
// function: (i32, i32) -> i32, body `local.get 0; local.get 1; i32.add;
// end` — scenario 1 of the validator's testable properties.
func buildAddModule(v *wasmvalidate.Validator) {
	sigIdx := v.OnType(wa.TypeVector{wa.I32, wa.I32}, wa.TypeVector{wa.I32})
	funcIdx, _ := v.OnFunction(1, wa.Var{Index: sigIdx})
	v.OnExport(2, wasmvalidate.ExportFunc, wa.Var{Index: funcIdx}, "add")

	v.BeginFunctionBody(3, funcIdx)
	v.LocalGet(4, 0)
	v.LocalGet(5, 1)
	v.Apply(6, opcode.I32Add)
	v.EndFunctionBody(7)
}
