package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"tdpmerge/internal/config"
	"tdpmerge/internal/logger"
	"tdpmerge/internal/pipeline"
	"tdpmerge/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)
	logger.Init(cfg.Verbose)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "normalize":
		count, err := normalize(cfg)
		must(err)
		fmt.Printf("normalize complete: %d rows -> %s\n", count, cfg.GreenAlgorithmsOut)
	case "merge":
		result, err := merge(cfg)
		must(err)
		fmt.Printf("merge complete: %d processors -> %s\n", result.Records, cfg.MergedCSVPath)
	case "run":
		count, err := normalize(cfg)
		must(err)
		fmt.Printf("normalize complete: %d rows\n", count)
		result, err := merge(cfg)
		must(err)
		fmt.Printf("merge complete: %d processors -> %s\n", result.Records, cfg.MergedCSVPath)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		records, err := db.ListProcessors()
		must(err)
		if len(records) == 0 {
			must(fmt.Errorf("no processors stored; run merge first"))
		}
		must(pipeline.ExportXLSX(records, *out))
		fmt.Printf("exported %d processors to %s\n", len(records), *out)
	default:
		usage()
		os.Exit(1)
	}
}

func normalize(cfg config.Config) (int, error) {
	amdThreads, err := pipeline.LoadThreadTable(cfg.AMDThreadTablePath)
	if err != nil {
		return 0, err
	}
	intelThreads, err := pipeline.LoadThreadTable(cfg.IntelThreadTablePath)
	if err != nil {
		return 0, err
	}
	return pipeline.NormalizeGreenAlgorithms(cfg.GreenAlgorithmsRaw, cfg.GreenAlgorithmsOut, amdThreads, intelThreads)
}

func merge(cfg config.Config) (pipeline.MergeResult, error) {
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return pipeline.MergeResult{}, err
	}
	defer db.Close()
	return pipeline.NewMergeService(db, cfg).Run()
}

func usage() {
	fmt.Println("usage: tdpmerge <command>")
	fmt.Println("commands:")
	fmt.Println("  normalize                      rewrite the Green-Algorithms dataset with manufacturer and threads")
	fmt.Println("  merge                          merge all vendor sources into the final TDP table")
	fmt.Println("  run                            normalize then merge")
	fmt.Println("  export:xlsx --out=./out.xlsx   export the last merged set with all computed fields")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
