// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/vm16/asm"
	"github.com/ezrec/vm16/emulator"
)

func main() {
	var compile string
	var save string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to compile")
	flag.StringVar(&save, "o", "", "Save compiled binary, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}
	binary := flag.Arg(0)

	if len(compile) == 0 && len(binary) == 0 {
		log.Fatalf("%v: Nothing to do (use -c, or name a binary)", os.Args[0])
	}
	if len(compile) != 0 && len(binary) != 0 {
		log.Fatalf("%v: Use -c or a binary, not both", os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Console.Output = os.Stdout

	// Compile a new program image.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		a := &asm.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			a.Predefine(key, value)
		}

		emu.Program, err = a.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		if len(save) != 0 {
			err = os.WriteFile(save, emu.Program.Binary(), 0o644)
			if err != nil {
				log.Fatalf("%v: %v", save, err)
			}
			return
		}
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	// Run a raw binary image. No source map, so runtime errors carry no
	// line numbers.
	if len(binary) != 0 {
		image, rerr := os.ReadFile(binary)
		if rerr != nil {
			log.Fatalf("%v: %v", binary, rerr)
		}
		err = emu.Machine.LoadProgram(image)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
	}

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			log.Fatal(err)
		}
	}

	if verbose {
		fmt.Println(emu.Machine.String())
	}
}
