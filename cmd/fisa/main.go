// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/ezrec/fisa/isa"
	"github.com/ezrec/fisa/translate"
)

func main() {
	var compile string
	var output string
	var disassemble string
	var decode string
	var list bool
	var mnemonic string
	var dump bool
	var lang string
	var verbose bool

	flag.StringVar(&compile, "c", "", "Assembly file to compile")
	flag.StringVar(&output, "o", "", "Binary output of -c, instead of a listing")
	flag.StringVar(&disassemble, "d", "", "Binary file to disassemble")
	flag.StringVar(&decode, "x", "", "Hex bytes to disassemble")
	flag.BoolVar(&list, "l", false, "List instruction families")
	flag.StringVar(&mnemonic, "m", "", "List the forms of an instruction")
	flag.BoolVar(&dump, "dump", false, "Dump decoded structures")
	flag.StringVar(&lang, "lang", "", "Message language")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
	}

	reg := isa.Registry()

	if list {
		for p := range reg.Primaries() {
			forms := len(isa.Forms(p.Mnemonic))
			fmt.Printf("0x%02x %-5v %-22v %d forms\n", p.Opcode, p.Mnemonic, translate.From(p.Title), forms)
		}
	}

	if len(mnemonic) != 0 {
		p, ok := reg.Primary(mnemonic)
		if !ok {
			log.Fatalf("%v: %v", mnemonic, isa.ErrMnemonicUnknown(mnemonic))
		}
		fmt.Printf("%v: %v\n", p.Mnemonic, translate.From(p.Title))
		for _, key := range isa.Forms(p.Mnemonic) {
			sec, _ := reg.Lookup(key)
			alias := ""
			if reg.IsAlias(key) {
				alias = "=> " + sec.Key()
			}
			fmt.Printf("  %-24v %-8v %-52v %v\n", key, sec.Subcode, sec.Layout, alias)
			if verbose {
				fmt.Printf("    %v\n", p.Describe(sec))
			}
			if dump {
				spew.Dump(sec)
			}
		}
	}

	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &isa.Assembler{Verbose: verbose}
		prog, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		if len(output) != 0 {
			err = os.WriteFile(output, prog.Binary(), 0o644)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
		} else {
			fmt.Print(prog.Listing())
		}
		if dump {
			spew.Dump(asm.Label)
		}
	}

	var code []byte
	switch {
	case len(disassemble) != 0:
		data, err := os.ReadFile(disassemble)
		if err != nil {
			log.Fatalf("%v: %v", disassemble, err)
		}
		code = data
	case len(decode) != 0:
		data, err := hex.DecodeString(strings.Join(strings.Fields(decode), ""))
		if err != nil {
			log.Fatalf("%v: %v", decode, err)
		}
		code = data
	}

	if len(code) != 0 {
		prog, err := isa.DisassembleAll(code)
		if prog != nil {
			fmt.Print(prog.Listing())
			if dump {
				spew.Dump(prog.Instructions)
			}
		}
		if err != nil {
			log.Fatal(err)
		}
	}
}
