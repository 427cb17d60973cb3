// Package main provides a command-line utility to dump PQDIF file
// contents: container metadata, data sources, and observations in stream
// order.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/scigolib/pqdif"
)

func main() {
	maxRecords := flag.Int("max", 0, "Stop after this many observations (0 = no limit)")
	showErrors := flag.Bool("errors", false, "Print accumulated element-parse errors at the end")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: pqdifdump [flags] <file.pqd>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	p, err := pqdif.OpenFile(args[0])
	if err != nil {
		log.Fatalf("Failed to open file: %v", err)
	}
	defer func() {
		if err := p.Close(); err != nil {
			log.Printf("Failed to close file: %v", err)
		}
	}()

	container := p.Container()
	name, _ := container.FileName()
	created, _ := container.Creation()
	wMajor, _ := container.WriterMajor()
	wMinor, _ := container.WriterMinor()
	fmt.Printf("Container: %s (written by v%d.%d, created %s)\n", name, wMajor, wMinor, created.Format("2006-01-02 15:04:05"))

	count := 0
	for {
		if *maxRecords > 0 && count >= *maxRecords {
			break
		}
		obs, ds, settings, err := p.Next()
		if err != nil {
			if errors.Is(err, pqdif.ErrEndOfStream) {
				break
			}
			log.Fatalf("Failed to read next observation: %v", err)
		}

		obsName, _ := obs.Name()
		dsName, _ := ds.Name()
		fmt.Printf("Observation %q from data source %q", obsName, dsName)
		if settings != nil {
			fmt.Printf(" (with monitor settings)")
		}
		fmt.Println()

		for i, ch := range obs.ChannelInstances() {
			qty, err := ch.QuantityTypeID(ds)
			if err != nil {
				fmt.Printf("  channel %d: (quantity type unresolved: %v)\n", i, err)
				continue
			}
			fmt.Printf("  channel %d: quantity %s, %d series\n", i, qty, len(ch.SeriesInstances()))
		}

		count++
	}

	fmt.Printf("Dumped %d observation(s).\n", count)

	if *showErrors {
		for _, e := range p.Errors() {
			fmt.Printf("element error: %v\n", e)
		}
	}
}
