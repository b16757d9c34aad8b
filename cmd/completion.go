package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/finplan/docs"
)

var (
	predictValue = predict.Something
	predictBool   = predict.Set{"true", "false"}
)

func artifactPredictors(flags map[string]complete.Predictor) map[string]complete.Predictor {
	flags["save"] = predictBool
	flags["show"] = predictBool
	flags["html"] = predictBool
	return flags
}

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.json"),
			"o":      predict.Dirs("*"),
			"v":      predictBool,
		},
		Sub: map[string]*complete.Command{
			"menu": {},
			"portfolio": {Flags: artifactPredictors(map[string]complete.Predictor{
				"age":     predictValue,
				"risk":    predict.Set{"auto", "conservative", "neutral", "aggressive"},
				"answers": predictValue,
				"amount":  predictValue,
			})},
			"tax": {Flags: map[string]complete.Predictor{
				"kind":  predict.Set{"dividend", "capital"},
				"gross": predictValue,
				"buy":   predictValue,
				"sell":  predictValue,
				"qty":   predictValue,
				"rate":  predictValue,
			}},
			"goal": {Flags: artifactPredictors(map[string]complete.Predictor{
				"name":   predictValue,
				"target": predictValue,
				"years":  predictValue,
				"pv":     predictValue,
				"pmt":    predictValue,
				"rate":   predictValue,
				"xlsx":   predictBool,
			})},
			"config": {
				Flags: map[string]complete.Predictor{"format": predict.Set{"json", "yaml"}},
				Args:  predict.Set{"tax", "allocations", "allocation_classic", "chart", "log"},
			},
			"topic": {
				Flags: map[string]complete.Predictor{"list": predictBool},
				Args:  predict.Set(topics),
			},
			"help":  {},
			"flags": {},
		},
	}
}
