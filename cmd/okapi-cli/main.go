package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/okapilab/okapi"
	"github.com/okapilab/okapi/internal/config"
	"github.com/okapilab/okapi/internal/version"
)

func customUsage() {
	fmt.Fprintf(os.Stderr, "Okapi Columnar Compare Engine CLI (version %s)\n\n", version.Version)
	fmt.Fprintf(os.Stderr, "Usage: okapi-cli [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  --demo\n\t\tRun basic demo\n")
	fmt.Fprintf(os.Stderr, "  --benchmark\n\t\tRun benchmark comparison\n")
	fmt.Fprintf(os.Stderr, "  --rows N\n\t\tNumber of rows to use (default: 1000 for demo, 1000000 for benchmark)\n")
	fmt.Fprintf(os.Stderr, "  -v, --version\n\t\tPrint version information and exit\n")
	fmt.Fprintf(os.Stderr, "  -h, --help\n\t\tShow this help message and exit\n")
}

func main() {
	versionFlag := flag.Bool("v", false, "Print version and exit")
	flag.BoolVar(versionFlag, "version", false, "Print version and exit") // alias
	demoFlag := flag.Bool("demo", false, "Run basic demo")
	benchmarkFlag := flag.Bool("benchmark", false, "Run benchmark comparison")
	rowsFlag := flag.Int("rows", 0, "Number of rows to use")

	//nolint:reassign // Standard Go pattern for customizing flag usage message
	flag.Usage = customUsage

	flag.Parse()

	if *versionFlag {
		fmt.Print(version.Info().String())
		return
	}

	switch {
	case *demoFlag:
		runDemo(*rowsFlag)
	case *benchmarkFlag:
		runBenchmark(*rowsFlag)
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func sampleRecord(mem memory.Allocator, rows int) arrow.Record {
	const (
		baseScore      = 40
		scoreIncrement = 7
		scoreModulus   = 60
		threshold      = 70
	)

	scoreBuilder := array.NewInt64Builder(mem)
	defer scoreBuilder.Release()
	limitBuilder := array.NewInt64Builder(mem)
	defer limitBuilder.Release()

	for i := 0; i < rows; i++ {
		scoreBuilder.Append(int64(baseScore + (i*scoreIncrement)%scoreModulus))
		limitBuilder.Append(int64(threshold))
	}

	scores := scoreBuilder.NewArray()
	defer scores.Release()
	limits := limitBuilder.NewArray()
	defer limits.Release()

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "score", Type: arrow.PrimitiveTypes.Int64},
		{Name: "limit", Type: arrow.PrimitiveTypes.Int64},
	}, nil)

	return array.NewRecord(schema, []arrow.Array{scores, limits}, int64(rows))
}

func runDemo(rows int) {
	fmt.Println("Okapi Columnar Compare Engine Demo")
	fmt.Println("==================================")

	if rows == 0 {
		rows = 1000
	}

	mem := memory.NewGoAllocator()
	cfg := config.GetGlobalConfig()
	cfg.MetricsCollection = true
	engine := okapi.NewEngine(mem, cfg)

	rec := sampleRecord(mem, rows)
	defer rec.Release()

	fmt.Printf("Comparing score >= limit over %d rows...\n", rows)
	result, err := engine.CompareColumns(okapi.OpGreaterOrEqual, rec, "score", "limit")
	if err != nil {
		log.Fatalf("comparison failed: %v", err)
	}

	matched := 0
	for i := 0; i < result.Len(); i++ {
		if !result.IsNull(i) && result.Value(i) {
			matched++
		}
	}
	fmt.Printf("Matched %d of %d rows\n", matched, rows)

	fmt.Println("\nExpression form: col(score) >= lit(70)")
	scoreView, err := okapi.FromArrow(rec.Column(0))
	if err != nil {
		log.Fatalf("adapting column: %v", err)
	}
	exprResult, err := engine.Filter(
		okapi.Col("score").Ge(okapi.Lit(70)),
		map[string]okapi.Column{"score": scoreView},
	)
	if err != nil {
		log.Fatalf("expression evaluation failed: %v", err)
	}
	exprMatched := 0
	for i := 0; i < exprResult.Len(); i++ {
		if !exprResult.IsNull(i) && exprResult.Value(i) {
			exprMatched++
		}
	}
	fmt.Printf("Matched %d of %d rows\n", exprMatched, rows)

	summary := engine.Metrics()
	fmt.Printf("\nOperations: %d, rows processed: %d, total time: %s\n",
		summary.TotalOperations, summary.TotalRows, summary.TotalDuration)
}

func runBenchmark(rows int) {
	fmt.Println("Okapi Columnar Compare Engine Benchmark")
	fmt.Println("=======================================")

	if rows == 0 {
		rows = 1_000_000
	}

	mem := memory.NewGoAllocator()
	engine := okapi.NewEngine(mem, config.GetGlobalConfig())

	rec := sampleRecord(mem, rows)
	defer rec.Release()

	start := time.Now()
	result, err := engine.CompareColumns(okapi.OpLess, rec, "score", "limit")
	if err != nil {
		log.Fatalf("comparison failed: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("Compared %d rows in %s (%.1f Mrows/s), result length %d\n",
		rows, elapsed, float64(rows)/elapsed.Seconds()/1e6, result.Len())
}
