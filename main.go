package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ardentnum/mpint/api"
	"github.com/ardentnum/mpint/config"
	"github.com/ardentnum/mpint/console"
	"github.com/ardentnum/mpint/mpint"
	"github.com/ardentnum/mpint/service"
	"github.com/ardentnum/mpint/tools"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		radix       = flag.Int("radix", cfg.Console.DefaultRadix, "Radix for reading/writing operands (2-16)")
		outRadix    = flag.Int("out-radix", 0, "Radix for output (default: same as -radix)")
		apiPort     = flag.Int("port", cfg.Service.Port, "API server port (used with the serve command)")
		safePrime   = flag.Bool("safe", cfg.Math.SafePrimeDefault, "Require a safe prime (used with genprime)")
		historySize = flag.Int("history", cfg.Console.HistorySize, "Console history size (used with console)")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("mpint %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp || flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	if *outRadix == 0 {
		*outRadix = *radix
	}

	switch cmd {
	case "serve":
		runServer(cfg, *apiPort)
	case "console":
		runConsole(*historySize)
	case "batch":
		runBatch(args)
	case "add", "sub", "mul", "gcd":
		runBinary(cfg, cmd, args, *radix, *outRadix)
	case "divmod":
		runDivMod(cfg, args, *radix, *outRadix)
	case "mod":
		runMod(cfg, args, *radix, *outRadix)
	case "invmod":
		runInvMod(cfg, args, *radix, *outRadix)
	case "modexp":
		runExpMod(cfg, args, *radix, *outRadix)
	case "isprime":
		runIsPrime(cfg, args, *radix)
	case "genprime":
		runGenPrime(cfg, args, *safePrime, *outRadix)
	case "convert":
		runConvert(cfg, args, *radix, *outRadix)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printHelp()
		os.Exit(1)
	}
}

func runServer(cfg *config.Config, port int) {
	cfg.Service.Port = port
	server := api.NewServerFromConfig(cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "API server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	fmt.Println("\nShutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("API server stopped")
}

func runConsole(historySize int) {
	c := console.NewConsole(historySize)
	c.EnableTrace()
	tui := console.NewTUI(c)
	if err := tui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Console error: %v\n", err)
		os.Exit(1)
	}
}

func runBatch(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: mpint batch <vector-file>")
		os.Exit(1)
	}
	findings, err := tools.LintVectors(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading vector file: %v\n", err)
		os.Exit(1)
	}
	if len(findings) == 0 {
		fmt.Println("All vectors passed.")
		return
	}
	for _, f := range findings {
		fmt.Println(f.String())
	}
	os.Exit(1)
}

func requireArgs(cmd string, args []string, want int) {
	if len(args) != want {
		fmt.Fprintf(os.Stderr, "Usage: mpint %s requires %d argument(s), got %d\n", cmd, want, len(args))
		os.Exit(1)
	}
}

func parseOperand(s string, radix int) *mpint.Int {
	v, err := service.ParseOperand(s, radix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", s, err)
		os.Exit(1)
	}
	return v
}

func printResult(r service.Result, outRadix int) {
	switch outRadix {
	case 10:
		fmt.Println(r.Decimal)
	case 16:
		fmt.Println(r.Hex)
	default:
		s, err := mpint.WriteString(parseOperand(r.Decimal, 10), outRadix)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(s)
	}
}

func runBinary(cfg *config.Config, cmd string, args []string, radix, outRadix int) {
	requireArgs(cmd, args, 2)
	a := parseOperand(args[0], radix)
	b := parseOperand(args[1], radix)
	svc := service.NewServiceFromConfig(cfg)

	var (
		result service.Result
		err    error
	)
	switch cmd {
	case "add":
		result, err = svc.Add(a, b)
	case "sub":
		result, err = svc.Sub(a, b)
	case "mul":
		result, err = svc.Mul(a, b)
	case "gcd":
		result, err = svc.GCD(a, b)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printResult(result, outRadix)
}

func runDivMod(cfg *config.Config, args []string, radix, outRadix int) {
	requireArgs("divmod", args, 2)
	a := parseOperand(args[0], radix)
	b := parseOperand(args[1], radix)
	result, err := service.NewServiceFromConfig(cfg).DivMod(a, b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printResult(result.Quotient, outRadix)
	printResult(result.Remainder, outRadix)
}

func runMod(cfg *config.Config, args []string, radix, outRadix int) {
	requireArgs("mod", args, 2)
	a := parseOperand(args[0], radix)
	n := parseOperand(args[1], radix)
	result, err := service.NewServiceFromConfig(cfg).Mod(a, n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printResult(result, outRadix)
}

func runInvMod(cfg *config.Config, args []string, radix, outRadix int) {
	requireArgs("invmod", args, 2)
	a := parseOperand(args[0], radix)
	n := parseOperand(args[1], radix)
	result, err := service.NewServiceFromConfig(cfg).InvMod(a, n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printResult(result, outRadix)
}

func runExpMod(cfg *config.Config, args []string, radix, outRadix int) {
	requireArgs("modexp", args, 3)
	a := parseOperand(args[0], radix)
	e := parseOperand(args[1], radix)
	n := parseOperand(args[2], radix)
	result, err := service.NewServiceFromConfig(cfg).ExpMod(a, e, n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printResult(result, outRadix)
}

func runIsPrime(cfg *config.Config, args []string, radix int) {
	requireArgs("isprime", args, 1)
	x := parseOperand(args[0], radix)
	result, err := service.NewServiceFromConfig(cfg).IsPrime(x)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if result.IsPrime {
		fmt.Println("prime")
	} else {
		fmt.Println("composite")
	}
}

func runGenPrime(cfg *config.Config, args []string, safe bool, outRadix int) {
	requireArgs("genprime", args, 1)
	nbits, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid bit length %q\n", args[0])
		os.Exit(1)
	}
	result, err := service.NewServiceFromConfig(cfg).GenPrime(nbits, safe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printResult(result, outRadix)
}

func runConvert(cfg *config.Config, args []string, radix, outRadix int) {
	requireArgs("convert", args, 1)
	x := parseOperand(args[0], radix)
	result, err := service.NewServiceFromConfig(cfg).Convert(x, outRadix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(result.Value)
}

func printHelp() {
	fmt.Printf(`mpint %s - arbitrary-precision arithmetic for public-key cryptography

Usage: mpint [options] <command> [args...]

Commands:
  add A B            A + B
  sub A B            A - B
  mul A B            A * B
  divmod A B         quotient and remainder of A / B
  mod A N            A mod N (Euclidean, result in [0, N))
  gcd A B            greatest common divisor of A and B
  invmod A N         modular inverse of A mod N
  modexp A E N       A^E mod N
  isprime X          Miller-Rabin primality test
  genprime BITS      generate a random BITS-bit prime
  convert X          re-render X in -out-radix
  batch FILE         check a vector file of operations and expected results
  console            launch the interactive expression console (TUI)
  serve              launch the HTTP API server

Options:
  -help              Show this help message
  -version           Show version information
  -radix N           Radix for reading operands (default: from config, normally 10)
  -out-radix N       Radix for printed results (default: same as -radix)
  -safe              Require a safe prime (used with genprime)
  -history N         Console history size (used with console)
  -port N            API server port (used with the serve command)

Examples:
  mpint add 123456789012345678901234567890 1
  mpint modexp 3 7 13
  mpint -radix 16 gcd 1ce 42f
  mpint isprime 170141183460469231731687303715884105727
  mpint -safe genprime 2048
  mpint -out-radix 16 convert 255
  mpint batch vectors.txt
  mpint console
  mpint -port 8080 serve

For design notes, see the DESIGN.md file.
`, Version)
}
