package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/calcpad/calcpad"
	"github.com/calcpad/calcpad/display"
)

var functionKeys = map[string]string{
	"sqrt":  "sqrt(",
	"sin":   "sin(",
	"cos":   "cos(",
	"tan":   "tan(",
	"asin":  "asin(",
	"acos":  "acos(",
	"atan":  "atan(",
	"ln":    "log(",
	"log":   "log10(",
	"exp":   "pow(E,",
	"pow2":  "pow(2,",
	"const": "E",
}

func main() {
	var trace bool
	var locale string
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.StringVar(&locale, "locale", "en", "locale for digit grouping")
	flag.Parse()

	tag, err := language.Parse(locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad locale %q: %v\n", locale, err)
		os.Exit(1)
	}
	ren := display.NewRenderer(tag)

	var opts []calcpad.Option
	if trace {
		opts = append(opts, calcpad.WithLogf(log.Printf))
	}
	ed := calcpad.New(opts...)

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		for _, key := range strings.Fields(sc.Text()) {
			press(ed, ren, key)
		}
		fmt.Println(ren.Equation(ed.Tokens()))
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func press(ed *calcpad.Editor, ren *display.Renderer, key string) {
	switch {
	case key == "=":
		result, err := ed.Calculate()
		if err != nil {
			fmt.Println(errorMessage(err))
			return
		}
		fmt.Println("= " + ren.Number(result))
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		if !ed.AddDigit(rune(key[0])) {
			fmt.Println("digit limit reached")
		}
	case key == "+" || key == "-" || key == "*" || key == "/":
		ed.AddOperator(key)
	case key == "^2" || key == "^3" || key == "^-1" || key == "!":
		ed.AddModifier(key)
	case key == ".":
		ed.AddDecimal()
	case key == "b" || key == "(" || key == ")":
		ed.AddBracket()
	case key == "neg":
		ed.ChangeSign()
	case key == "del":
		ed.DeleteLast()
	case key == "undo":
		ed.Undo()
	case key == "clear":
		ed.Reset()
	default:
		if fn, ok := functionKeys[key]; ok {
			ed.AddFunction(fn)
			return
		}
		fmt.Printf("unknown key %q\n", key)
	}
}

func errorMessage(err error) string {
	var inf calcpad.InfinityError
	switch {
	case errors.Is(err, calcpad.ErrInvalidFormat):
		return "equation is incomplete"
	case errors.Is(err, calcpad.ErrDivisionByZero):
		return "can't divide by zero"
	case errors.As(err, &inf):
		if inf.Negative {
			return "-∞"
		}
		return "∞"
	}
	return "couldn't calculate"
}
