package main

import (
	"fmt"
	"os"

	"github.com/grimdork/climate/arg"
	"github.com/grimdork/climate/cfmt"
	"github.com/grimdork/climate/str"
	"golang.org/x/term"

	"github.com/Urethramancer/x86/assembler"
)

// parsers maps the --form choices to the single-form entry points.
var parsers = map[string]func(string) (string, assembler.Operand, error){
	"register":  assembler.ParseRegister,
	"memory":    assembler.ParseMemory,
	"immediate": assembler.ParseImmediate,
}

func main() {
	opt := arg.New("x86op")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "f", "form", "Operand form to parse (any, register, memory, immediate).",
		"any", false, arg.VarString, []any{"any", "register", "memory", "immediate"})
	opt.SetFlag(arg.GroupDefault, "l", "list", "List register aliases.")
	opt.SetFlag(arg.GroupDefault, "C", "no-colour", "Disable coloured output.")
	opt.SetPositional("OPERAND", "Operand text, e.g. \"ax, [bx+si+2]\".", nil, false, arg.VarStringSlice)
	opt.HelpOrFail()

	colour := !opt.GetBool("no-colour") && term.IsTerminal(int(os.Stdout.Fd()))

	if opt.GetBool("list") {
		listAliases()
		return
	}

	inputs := opt.GetPosStringSlice("OPERAND")
	if len(inputs) == 0 {
		opt.PrintHelp()
		os.Exit(2)
	}

	form := opt.GetString("form")
	failed := false
	for _, input := range inputs {
		var err error
		if form == "any" {
			err = printOperandList(input, colour)
		} else {
			err = printSingle(input, parsers[form], colour)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %q: %v\n", input, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// printOperandList parses a comma separated list and prints every operand.
func printOperandList(input string, colour bool) error {
	ops, err := assembler.ParseOperands(input)
	if err != nil {
		return err
	}
	for _, op := range ops {
		printOperand(input, op, colour)
	}
	return nil
}

// printSingle runs one entry point and shows any text it left over.
func printSingle(input string, parse func(string) (string, assembler.Operand, error), colour bool) error {
	rest, op, err := parse(input)
	if err != nil {
		return err
	}
	printOperand(input, op, colour)
	if rest != "" {
		fmt.Printf("\tremainder %q\n", rest)
	}
	return nil
}

func printOperand(input string, op assembler.Operand, colour bool) {
	if colour {
		// cfmt adds the newline.
		cfmt.Printf("%s\t%green%s%reset\t%s", input, op.Kind(), op)
		return
	}
	fmt.Printf("%s\t%s\t%s\n", input, op.Kind(), op)
}

func listAliases() {
	b := str.NewStringer()
	for _, a := range assembler.Aliases() {
		b.WriteStrings(a.Text, "\t", a.Family.String(), "\t", a.Width.String(), "\n")
	}
	fmt.Print(b.String())
}
