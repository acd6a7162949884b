package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/exp/slices"
	"golang.org/x/term"

	"seehuhn.de/go/emf"
	"seehuhn.de/go/emf/record"
	"seehuhn.de/go/emf/svg"
)

func main() {
	verbose := flag.Bool("v", false, "log every record")
	quiet := flag.Bool("q", false, "only log errors")
	stats := flag.Bool("stats", false, "print the number of records of each type")
	precision := flag.Int("prec", 2, "digits after the decimal point")
	noImages := flag.Bool("no-images", false, "omit bitmaps from the output")
	flag.Parse()

	level := slog.LevelInfo
	switch {
	case *verbose:
		level = slog.LevelDebug
	case *quiet:
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *stats && flag.NArg() == 1 {
		err := printStats(flag.Arg(0), logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 2 {
		fmt.Printf("Usage: %s [options] input.emf output.svg\n", os.Args[0])
		fmt.Printf("       %s -stats input.emf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	inputFile := flag.Arg(0)
	outputFile := flag.Arg(1)

	if outputFile == "-" && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: refusing to write SVG to a terminal")
		os.Exit(1)
	}

	in, err := os.Open(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	p := svg.NewPlayer(&svg.Options{
		Logger:      logger,
		Precision:   *precision,
		EmbedImages: !*noImages,
	})
	out, err := emf.Convert(in, p, &emf.Options{Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting %s: %v\n", inputFile, err)
		os.Exit(1)
	}

	err = writeOutput(outputFile, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
}

// writeOutput writes the SVG data to the named file, or to stdout if name
// is "-".  If writing fails, the partially written file is removed.
func writeOutput(name string, data []byte) error {
	if name == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(f, bytes.NewReader(data))
	err = errors.Join(err, f.Close())
	if err != nil {
		os.Remove(name)
		return err
	}
	return nil
}

// printStats prints a histogram of the record types in an EMF file.
func printStats(name string, logger *slog.Logger) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	d, err := emf.NewDecoder(data, logger)
	if err != nil {
		return err
	}

	count := map[record.Type]int{record.EMRHeader: 1}
	for {
		rec, err := d.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		count[rec.RecordType()]++
	}

	var types []record.Type
	for tp := range count {
		types = append(types, tp)
	}
	slices.Sort(types)
	for _, tp := range types {
		fmt.Printf("%-28s %6d\n", tp, count[tp])
	}
	fmt.Printf("%d bytes, %d bytes of trailing data\n", len(data), len(data)-int(d.Pos()))
	return nil
}
