// tsv2matrix aggregates per-sample gene expression TSV files (e.g., GDC
// RNA-seq STAR counts downloads) scattered under a directory tree into one
// combined genes x samples matrix TSV.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"

	"github.com/gemtools/expressionmatrix/gem"
)

func main() {
	start := time.Now()
	log.Println("tsv2matrix start")
	defer func() {
		log.Printf("tsv2matrix end. Took %.2f seconds\n", time.Since(start).Seconds())
	}()

	var inputDir, outputFile, extension, layoutName string
	var geneCol, exprCol, skipRows int
	var sortGenes bool

	flag.StringVar(&inputDir, "input_dir", "gdc-blca", "Directory (or gs:// prefix) containing gene expression files")
	flag.StringVar(&outputFile, "output_file", "gene_expression_matrix.tsv", "Path to save the output gene expression matrix")
	flag.IntVar(&geneCol, "gene_column_index", 1, "Index of column for gene identifiers (0-based)")
	flag.IntVar(&exprCol, "expression_column_index", 5, "Index of column for expression values (0-based)")
	flag.IntVar(&skipRows, "skip_rows", 6, "Number of header rows to skip in each input file")
	flag.StringVar(&extension, "extension", ".tsv", "File extension identifying input files (gzipped inputs with this extension are also accepted)")
	flag.StringVar(&layoutName, "layout", "", "(Optional) Named column layout; overrides the three index flags. Options: gdc-star, gdc-star-tpm")
	flag.BoolVar(&sortGenes, "sort", false, "(Optional) Sort output rows by gene name instead of first-seen order")
	flag.Parse()

	layout := gem.Layout{SkipRows: skipRows, ColGene: geneCol, ColExpression: exprCol}
	if layoutName != "" {
		var err error
		layout, err = gem.NamedLayout(layoutName)
		if err != nil {
			log.Fatalln(err)
		}
	}

	var client *storage.Client
	if strings.HasPrefix(inputDir, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
	}

	if err := run(inputDir, outputFile, extension, layout, sortGenes, client); err != nil {
		log.Fatalln(err)
	}
}

func run(inputDir, outputFile, extension string, layout gem.Layout, sortGenes bool, client *storage.Client) error {
	matrix, err := gem.Build(inputDir, extension, layout, client)
	if err != nil {
		return err
	}

	if sortGenes {
		matrix.SortGenes()
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return pfx.Err(err)
	}

	if err := matrix.WriteTSV(out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return pfx.Err(err)
	}

	log.Printf("Gene expression matrix saved to %s\n", outputFile)

	return nil
}
