package cli

import (
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/sexpr/lang"
	"github.com/ardnew/sexpr/log"
)

// langConfig holds the interpreter flags shared by every command.
type langConfig struct {
	MaxDepth int    `default:"${langMaxDepth}"                          help:"Maximum nesting of calls in one expression."`
	Binding  string `default:"strict"          enum:"${langBindingEnum}" help:"Policy for set on a name already bound."`
	OnError  string `default:"mark"            enum:"${langOnErrorEnum}" help:"Report a failing statement with a marker or abort all output."`
}

func (*langConfig) vars() kong.Vars {
	return kong.Vars{
		"langMaxDepth": strconv.Itoa(lang.DefaultMaxDepth),
		"langBindingEnum": strings.Join([]string{
			lang.BindStrict.String(), lang.BindOverwrite.String(),
		}, ","),
		"langOnErrorEnum": strings.Join([]string{
			lang.FailMark.String(), lang.FailAbort.String(),
		}, ","),
	}
}

func (*langConfig) group() kong.Group {
	var group kong.Group

	group.Key = "lang"
	group.Title = "Interpreter options"

	return group
}

// options returns the interpreter options selected by the flags. The logger
// option reads the default logger, so call it after [logConfig.start].
func (f *langConfig) options() []lang.Option {
	opts := []lang.Option{
		lang.WithMaxDepth(f.MaxDepth),
		lang.WithLogger(log.Default()),
	}

	if p, err := lang.ParseBindingPolicy(f.Binding); err == nil {
		opts = append(opts, lang.WithBindingPolicy(p))
	}

	if p, err := lang.ParseFailurePolicy(f.OnError); err == nil {
		opts = append(opts, lang.WithFailurePolicy(p))
	}

	return opts
}
