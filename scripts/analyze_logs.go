package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/Govind-619/BookNook/config"
	"github.com/Govind-619/BookNook/models"
	"github.com/Govind-619/BookNook/stores"
	"github.com/Govind-619/BookNook/utils"
)

func main() {
	xlsxPath := flag.String("xlsx", "", "write the summary to this Excel file")
	pdfPath := flag.String("pdf", "", "write the summary to this PDF file")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summaries, err := stores.SummarizeLogs(ctx, config.LogDBOpener(cfg))
	if err != nil {
		log.Fatal("Error reading audit log:", err)
	}

	now := time.Now()
	printReport(summaries, now)

	if *xlsxPath != "" {
		if err := utils.ExportLogSummaryXLSX(*xlsxPath, summaries, now); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Excel report written to", *xlsxPath)
	}
	if *pdfPath != "" {
		if err := utils.ExportLogSummaryPDF(*pdfPath, summaries, now); err != nil {
			log.Fatal(err)
		}
		fmt.Println("PDF report written to", *pdfPath)
	}
}

func printReport(summaries []models.LogSummary, generatedAt time.Time) {
	fmt.Println("\n=== Audit Log Report ===")
	fmt.Println("Generated:", generatedAt.Format("2006-01-02 15:04:05"))

	var total, errs int64
	for _, s := range summaries {
		total += s.Total
		errs += s.Errors
	}
	fmt.Println("\n1. Totals:")
	fmt.Printf("   Requests: %d\n", total)
	fmt.Printf("   Errors: %d\n", errs)

	fmt.Println("\n2. Per Function:")
	for _, s := range summaries {
		fmt.Printf("   %-12s total=%d success=%d error=%d avg=%.1fms max=%dms\n",
			s.FunctionName, s.Total, s.Successes, s.Errors, s.AvgExecutionMs, s.MaxExecutionMs)
	}

	fmt.Println("\n3. Slowest Functions:")
	printSlowest(summaries, 3)
}

func printSlowest(summaries []models.LogSummary, limit int) {
	sorted := make([]models.LogSummary, len(summaries))
	copy(sorted, summaries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].AvgExecutionMs > sorted[j].AvgExecutionMs
	})

	for i, s := range sorted {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %.1fms average\n", s.FunctionName, s.AvgExecutionMs)
	}
}
