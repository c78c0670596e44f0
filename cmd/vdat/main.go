package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vdat/internal"
	"vdat/internal/config"
	"vdat/internal/lookup"
	"vdat/internal/ocr"
	"vdat/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	tables := lookup.Defaults()
	engine := ocr.NewTesseract(cfg.OCRBinary, cfg.OCRLang)
	svc := pipeline.NewService(cfg, tables, engine)

	cmd := os.Args[1]
	switch cmd {
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		customer := fs.String("customer", cfg.DefaultCustomer, "customer name or code")
		poa := fs.String("poa", cfg.DefaultPOA, "port of arrival name or code")
		batch := fs.String("batch", "", "voyage/batch reference (default <DDMMYYYY><customer code>)")
		files := fs.String("file", "", "spreadsheet file path(s), comma-separated")
		images := fs.String("image", "", "manifest scan/photo path(s), comma-separated")
		pdfs := fs.String("pdf", "", "PDF manifest path(s), comma-separated")
		paste := fs.String("paste", "", "file holding pasted tabular text")
		eml := fs.String("eml", "", "raw .eml message path(s), comma-separated")
		brand := fs.String("brand", cfg.DefaultBrand, "fallback brand for OCR/PDF manifests")
		model := fs.String("model", "", "fallback model for OCR/PDF manifests")
		out := fs.String("out", cfg.OutputDir, "output directory")
		_ = fs.Parse(os.Args[2:])

		customerCode, ok := tables.CustomerCode(*customer)
		if !ok {
			must(fmt.Errorf("unknown customer: %q", *customer))
		}
		poaCode, ok := tables.POACode(*poa)
		if !ok {
			must(fmt.Errorf("unknown POA: %q", *poa))
		}

		now := time.Now()
		batchRef := *batch
		if batchRef == "" {
			batchRef = now.Format("02012006") + customerCode
		}

		run := svc.NewRun()
		ctx := context.Background()

		for _, path := range splitList(*files) {
			blob, err := os.ReadFile(path)
			must(err)
			if err := svc.IngestSpreadsheet(run, filepath.Base(path), blob); err != nil {
				fmt.Fprintf(os.Stderr, "file %s: %v\n", path, err)
			}
		}
		for _, path := range splitList(*images) {
			blob, err := os.ReadFile(path)
			must(err)
			ictx, cancel := context.WithTimeout(ctx, time.Duration(cfg.OCRTimeoutMs)*time.Millisecond)
			err = svc.IngestImage(ictx, run, blob, *brand, *model)
			cancel()
			if err != nil {
				fmt.Fprintf(os.Stderr, "image %s: %v\n", path, err)
			}
		}
		for _, path := range splitList(*pdfs) {
			blob, err := os.ReadFile(path)
			must(err)
			if err := svc.IngestPDF(run, blob, *brand, *model); err != nil {
				fmt.Fprintf(os.Stderr, "pdf %s: %v\n", path, err)
			}
		}
		if *paste != "" {
			blob, err := os.ReadFile(*paste)
			must(err)
			svc.IngestPaste(run, string(blob))
		}
		for _, path := range splitList(*eml) {
			blob, err := os.ReadFile(path)
			must(err)
			if err := svc.IngestEmail(run, blob); err != nil {
				fmt.Fprintf(os.Stderr, "eml %s: %v\n", path, err)
			}
		}

		printReports(run)

		merged := svc.Finalize(run, pipeline.BatchMeta{
			CustomerCode: customerCode,
			POACode:      poaCode,
			AssignedAt:   now,
		})
		if merged.Discarded > 0 {
			fmt.Printf("removed %d duplicate VIN(s)\n", merged.Discarded)
		}
		if len(merged.Records) == 0 {
			fmt.Println("no vehicles found; nothing to export")
			return
		}

		outPath := filepath.Join(*out, pipeline.ExportFilename(customerCode, poaCode, now))
		must(pipeline.ExportRecordsToXLSX(merged.Records, batchRef, outPath))
		fmt.Printf("exported %d vehicle(s) to %s (batch %s)\n", len(merged.Records), outPath, batchRef)

	case "inspect":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		file := fs.String("file", "", "spreadsheet file path")
		_ = fs.Parse(os.Args[2:])
		if *file == "" {
			must(fmt.Errorf("--file is required"))
		}
		blob, err := os.ReadFile(*file)
		must(err)
		run := svc.NewRun()
		must(svc.IngestSpreadsheet(run, filepath.Base(*file), blob))
		printReports(run)

	case "scan":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		image := fs.String("image", "", "manifest scan/photo path")
		brand := fs.String("brand", cfg.DefaultBrand, "fallback brand")
		model := fs.String("model", "", "fallback model")
		_ = fs.Parse(os.Args[2:])
		if *image == "" {
			must(fmt.Errorf("--image is required"))
		}
		blob, err := os.ReadFile(*image)
		must(err)
		run := svc.NewRun()
		ictx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.OCRTimeoutMs)*time.Millisecond)
		defer cancel()
		must(svc.IngestImage(ictx, run, blob, *brand, *model))
		merged := svc.Finalize(run, pipeline.BatchMeta{AssignedAt: time.Now()})
		for _, rec := range merged.Records {
			fmt.Printf("%s\t%s\t%s\n", rec.VIN, rec.Brand, rec.Model)
		}
		fmt.Printf("found %d VIN(s)\n", len(merged.Records))

	default:
		usage()
		os.Exit(1)
	}
}

func printReports(run *pipeline.Run) {
	for _, rep := range run.SheetReports {
		switch rep.Outcome {
		case internal.SheetProcessed:
			fmt.Printf("sheet %q: %d vehicle(s), %d dropped (header row %d)\n", rep.SheetName, len(rep.Records), len(rep.Dropped), rep.HeaderRow+1)
		case internal.SheetNoHeader:
			fmt.Printf("sheet %q: no header found, skipped\n", rep.SheetName)
		case internal.SheetEmpty:
			fmt.Printf("sheet %q: empty, skipped\n", rep.SheetName)
		case internal.SheetCrashed:
			fmt.Printf("sheet %q: failed: %s\n", rep.SheetName, rep.Err)
		}
	}
	for _, drop := range run.Dropped {
		fmt.Printf("dropped %q: %s\n", drop.VIN, drop.Reason)
	}
	for _, note := range run.Notes {
		fmt.Println(note)
	}
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func usage() {
	fmt.Println("usage: vdat <command>")
	fmt.Println("commands:")
	fmt.Println("  run     --customer=... --poa=... [--batch=REF] [--file=a.xlsx,b.csv]")
	fmt.Println("          [--image=scan.jpg] [--pdf=m.pdf] [--paste=block.txt] [--eml=mail.eml]")
	fmt.Println("          [--brand=OPEL] [--model=] [--out=dir]")
	fmt.Println("  inspect --file=a.xlsx")
	fmt.Println("  scan    --image=scan.jpg [--brand=...] [--model=...]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
