package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/passcode/internal/passcode/entity"
	"github.com/shandysiswandi/passcode/internal/passcode/usecase"
	"github.com/shandysiswandi/passcode/internal/pkg/goerror"
	"github.com/spf13/pflag"
)

type uc interface {
	Generate(ctx context.Context, in usecase.GenerateInput) (*entity.Batch, error)
}

// Command is the command line entry point of the passcode module.
type Command struct {
	uc  uc
	out io.Writer
}

// NewCommand returns a Command writing generated codes to out.
func NewCommand(uc uc, out io.Writer) *Command {
	return &Command{uc: uc, out: out}
}

type flags struct {
	set *pflag.FlagSet

	preset  string
	length  int
	digits  bool
	lower   bool
	upper   bool
	special bool
	chars   string
	expires string
	count   int
	json    bool
}

func newFlags(name string, out io.Writer) *flags {
	f := &flags{set: pflag.NewFlagSet(name, pflag.ContinueOnError)}
	f.set.SetOutput(out)
	f.set.SortFlags = false

	f.set.StringVarP(&f.preset, "preset", "p", "", "preset: numeric, alphanumeric or complex")
	f.set.IntVarP(&f.length, "length", "l", 0, "number of characters, 1 to 32")
	f.set.BoolVar(&f.digits, "digits", true, "include digits")
	f.set.BoolVar(&f.lower, "lower", false, "include lower case letters")
	f.set.BoolVar(&f.upper, "upper", false, "include upper case letters")
	f.set.BoolVar(&f.special, "special", false, "include special characters")
	f.set.StringVarP(&f.chars, "chars", "c", "", "custom characters, overrides every class")
	f.set.StringVarP(&f.expires, "expires", "e", "", `expiration in seconds or with a unit, e.g. "300", "30s", "5m", "1h", "1d"`)
	f.set.IntVarP(&f.count, "count", "n", 1, "number of codes to generate")
	f.set.BoolVar(&f.json, "json", false, "print JSON even without expiration")

	return f
}

func (f *flags) input() usecase.GenerateInput {
	in := usecase.GenerateInput{
		Preset:      f.preset,
		CustomChars: f.chars,
		Count:       f.count,
	}

	if f.set.Changed("length") {
		in.Length = &f.length
	}

	if lo.SomeBy([]string{"digits", "lower", "upper", "special"}, f.set.Changed) {
		in.Classes = &usecase.Classes{
			Digits:       f.digits,
			LowerCase:    f.lower,
			UpperCase:    f.upper,
			SpecialChars: f.special,
		}
	}

	if f.set.Changed("expires") {
		in.ExpiresIn = parseExpiresFlag(f.expires)
	}

	return in
}

// parseExpiresFlag turns a bare integer into seconds; anything else is kept
// as a spec string and validated downstream.
func parseExpiresFlag(v string) any {
	v = strings.TrimSpace(v)
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	return v
}

// Run parses args, generates the requested codes and prints them.
//
// Codes without expiration are printed one per line. With an expiration, or
// with --json, the whole batch is printed as a JSON document.
func (c *Command) Run(ctx context.Context, args []string) error {
	f := newFlags("passcode", c.out)

	if err := f.set.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return goerror.NewInvalidFormat(err.Error())
	}

	if f.set.NArg() > 0 {
		return goerror.NewInvalidFormat(fmt.Sprintf("unexpected argument %q", f.set.Arg(0)))
	}

	batch, err := c.uc.Generate(ctx, f.input())
	if err != nil {
		return err
	}

	expiring := lo.SomeBy(batch.Codes, func(p entity.Passcode) bool { return p.Expiring })
	if !f.json && !expiring {
		for _, p := range batch.Codes {
			if _, err := fmt.Fprintln(c.out, p.Code); err != nil {
				return goerror.NewServer(err)
			}
		}
		return nil
	}

	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toBatchResponse(batch)); err != nil {
		return goerror.NewServer(err)
	}

	return nil
}

// WriteError prints err for a terminal user, including per-field messages
// of validation failures.
func WriteError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var ge *goerror.Error
	if !errors.As(err, &ge) {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}

	msg := ge.Error()
	if ge.Type() == goerror.TypeServer && ge.Msg() != "" {
		msg = fmt.Sprintf("%s: %v", ge.Msg(), ge.Unwrap())
	}

	fields := ge.Fields()
	var fieldErr interface{ Values() map[string]string }
	if errors.As(err, &fieldErr) {
		fields = fieldErr.Values()
		msg = ge.Msg()
	}

	fmt.Fprintf(w, "error: %s\n", msg)
	keys := lo.Keys(fields)
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %s\n", k, fields[k])
	}
}
