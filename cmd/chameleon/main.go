// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/centaurean-go/chameleon

// Command chameleon compresses or decompresses a file through the Chameleon
// kernel, as a thin demonstration of the streaming wrappers.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/centaurean-go/chameleon"
)

func main() {
	decompress := flag.Bool("d", false, "decompress instead of compress")
	resetShift := flag.Uint("reset-shift", 0, "dictionary reset-cycle shift byte")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: chameleon [-d] [-reset-shift N] <input> <output>")
		os.Exit(2)
	}

	if err := run(*decompress, byte(*resetShift), flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, "chameleon:", err)
		os.Exit(1)
	}
}

func run(decompress bool, resetShift byte, inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(outPath), filepath.Base(outPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	params := chameleon.NewParameters(resetShift)
	if decompress {
		err = decodeFile(in, tmp, params)
	} else {
		err = encodeFile(in, tmp, params)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	return os.Rename(tmpPath, outPath)
}

func encodeFile(src io.Reader, dst io.Writer, params chameleon.Parameters) error {
	w := chameleon.NewEncoder(dst, params)
	if _, err := io.Copy(w, src); err != nil {
		return err
	}
	return w.Close()
}

func decodeFile(src io.Reader, dst io.Writer, params chameleon.Parameters) error {
	r := chameleon.NewDecoder(src, params, 0)
	_, err := io.Copy(dst, r)
	return err
}
