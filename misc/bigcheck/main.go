package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	num "github.com/shabbyrobe/go-bignum"
)

// bigcheck evaluates 'a op b' with num.BigInt, optionally checking every
// result against math/big. Handy for reproducing a fuzz failure from the
// operands in the test log without writing a test first.

const usage = `BigInt expression checker

Usage: bigcheck [options] [--] <a> <op> <b>
       bigcheck [options] < expressions.txt

With no expression arguments, one 'a op b' expression is read from each line
of stdin. Blank lines and lines starting with '#' are skipped.

Ops: + - * / % & | ^ &^ << >> cmp
`

var errMismatch = errors.New("bigcheck: result does not match math/big")

type options struct {
	check bool
	dump  bool
	debug bool
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	if err := run(os.Args[1:], os.Stdin, os.Stdout, log); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("bigcheck failed")
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, log zerolog.Logger) error {
	var opts options
	fs := flag.NewFlagSet("bigcheck", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() { fmt.Fprint(stdout, usage); fs.PrintDefaults() }
	fs.BoolVar(&opts.check, "check", false, "Cross-check every result against math/big")
	fs.BoolVar(&opts.dump, "dump", false, "Dump the raw limbs of every result")
	fs.BoolVar(&opts.debug, "v", false, "Log every evaluation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log = log.Level(zerolog.InfoLevel)
	if opts.debug {
		log = log.Level(zerolog.DebugLevel)
	}

	rest := fs.Args()
	switch len(rest) {
	case 0:
		return runLines(stdin, stdout, log, opts)
	case 3:
		return evalAndPrint(rest[0], rest[1], rest[2], stdout, log, opts)
	default:
		fs.Usage()
		return fmt.Errorf("bigcheck: expected 3 expression arguments, found %d", len(rest))
	}
}

func runLines(stdin io.Reader, stdout io.Writer, log zerolog.Logger, opts options) error {
	scn := bufio.NewScanner(stdin)
	scn.Buffer(nil, 1<<20)

	var failures, line int
	for scn.Scan() {
		line++
		text := strings.TrimSpace(scn.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 3 {
			return fmt.Errorf("bigcheck: line %d: expected 'a op b', found %q", line, text)
		}
		if err := evalAndPrint(fields[0], fields[1], fields[2], stdout, log, opts); err != nil {
			if !errors.Is(err, errMismatch) {
				return fmt.Errorf("bigcheck: line %d: %w", line, err)
			}
			failures++
		}
	}
	if err := scn.Err(); err != nil {
		return err
	}

	if failures > 0 {
		return fmt.Errorf("%w: %d expression(s) failed", errMismatch, failures)
	}
	return nil
}

func evalAndPrint(as, op, bs string, stdout io.Writer, log zerolog.Logger, opts options) error {
	result, err := eval(as, op, bs)
	if err != nil {
		return err
	}
	log.Debug().Str("a", as).Str("op", op).Str("b", bs).Stringer("result", result).Msg("evaluated")

	fmt.Fprintf(stdout, "%s %s %s = %s\n", as, op, bs, result)
	if opts.dump {
		limbs, neg := result.Raw()
		spew.Fdump(stdout, limbs, neg)
	}

	if opts.check {
		expected, err := evalBig(as, op, bs)
		if err != nil {
			return err
		}
		if expected.String() != result.String() {
			log.Error().
				Str("expr", as+" "+op+" "+bs).
				Str("bigint", result.String()).
				Str("big", expected.String()).
				Msg("mismatch")
			return errMismatch
		}
	}
	return nil
}

func parseShift(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("bigcheck: invalid shift count %q: %w", s, err)
	}
	return uint(n), nil
}

func eval(as, op, bs string) (out num.BigInt, err error) {
	a, err := num.BigIntFromString(as)
	if err != nil {
		return out, err
	}

	if op == "<<" || op == ">>" {
		n, err := parseShift(bs)
		if err != nil {
			return out, err
		}
		if op == "<<" {
			return a.Lsh(n), nil
		}
		return a.Rsh(n), nil
	}

	b, err := num.BigIntFromString(bs)
	if err != nil {
		return out, err
	}

	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*":
		return a.Mul(b), nil
	case "/", "%":
		if b.IsZero() {
			return out, num.ErrDivisionByZero
		}
		q, r := a.QuoRem(b)
		if op == "/" {
			return q, nil
		}
		return r, nil
	case "&":
		return a.And(b), nil
	case "|":
		return a.Or(b), nil
	case "^":
		return a.Xor(b), nil
	case "&^":
		return a.AndNot(b), nil
	case "cmp":
		return num.BigIntFromInt(a.Cmp(b)), nil
	default:
		return out, fmt.Errorf("bigcheck: unknown op %q", op)
	}
}

// evalBig is eval using math/big. Its '/' and '%' use Quo and Rem, which
// truncate like num.BigInt, rather than Div and Mod.
func evalBig(as, op, bs string) (*big.Int, error) {
	a, ok := new(big.Int).SetString(as, 10)
	if !ok {
		return nil, fmt.Errorf("bigcheck: big.Int rejected %q", as)
	}

	if op == "<<" || op == ">>" {
		n, err := parseShift(bs)
		if err != nil {
			return nil, err
		}
		if op == "<<" {
			return a.Lsh(a, n), nil
		}
		return a.Rsh(a, n), nil
	}

	b, ok := new(big.Int).SetString(bs, 10)
	if !ok {
		return nil, fmt.Errorf("bigcheck: big.Int rejected %q", bs)
	}

	z := new(big.Int)
	switch op {
	case "+":
		return z.Add(a, b), nil
	case "-":
		return z.Sub(a, b), nil
	case "*":
		return z.Mul(a, b), nil
	case "/":
		return z.Quo(a, b), nil
	case "%":
		return z.Rem(a, b), nil
	case "&":
		return z.And(a, b), nil
	case "|":
		return z.Or(a, b), nil
	case "^":
		return z.Xor(a, b), nil
	case "&^":
		return z.AndNot(a, b), nil
	case "cmp":
		return z.SetInt64(int64(a.Cmp(b))), nil
	default:
		return nil, fmt.Errorf("bigcheck: unknown op %q", op)
	}
}
