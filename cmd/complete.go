package cmd

import (
	"flag"

	"github.com/etnz/leverage/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the CLI.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"config":   predict.Files("*.yaml"),
			"snapshot": predict.Files("*.json"),
			"plain":    predict.Nothing,
		},
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = flagPredictor(f)
		})
		root.Sub[c.Name()] = sub
	}
	if topics, err := docs.All(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	return root
}

func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "side":
		return predict.Set{"long", "short"}
	case "o":
		return predict.Files("*.json")
	}
	return predict.Something
}
