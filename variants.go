package main

import (
	"path"
	"strings"
)

// Variant is one model-answer dataset of the Spec-Bench suite. The launcher
// never opens the file itself, it only hands the path to the evaluation
// entry point.
type Variant struct {
	Name     string
	FilePath string
	Enabled  bool
}

// Exactly one variant is enabled; the other two are kept for reference and
// must never produce an invocation.
var SpecBenchVariants = []Variant{
	{
		Name:     "sam_alpaca",
		FilePath: "evaluation/data/spec_bench/model_answer/vicuna-7b-v1.3-sam_alpaca-v0.4.2.jsonl",
		Enabled:  true,
	},
	{
		Name:     "sam_none",
		FilePath: "evaluation/data/spec_bench/model_answer/vicuna-7b-v1.3-sam_none-v0.4.jsonl",
	},
	{
		Name:     "token_recycle",
		FilePath: "evaluation/data/spec_bench/model_answer/vicuna-7b-v1.3-token_recycle.jsonl",
	},
}

func EnabledVariants(variants []Variant) []Variant {
	enabled := make([]Variant, 0)
	for _, variant := range variants {
		if variant.Enabled {
			enabled = append(enabled, variant)
		}
	}
	return enabled
}

type AnswerFileInfo struct {
	Model   string
	Method  string
	Version string
}

// ParseAnswerFile extracts <model>-<method>-<version> metadata from a
// model-answer file name. The method segment is the first dash-separated
// token containing an underscore (model names carry dashes themselves,
// e.g. vicuna-7b-v1.3); the version suffix may be absent.
func ParseAnswerFile(filePath string) AnswerFileInfo {
	name := strings.TrimSuffix(path.Base(filePath), ".jsonl")
	tokens := strings.Split(name, "-")
	for i, token := range tokens {
		if strings.Contains(token, "_") {
			return AnswerFileInfo{
				Model:   strings.Join(tokens[:i], "-"),
				Method:  token,
				Version: strings.Join(tokens[i+1:], "-"),
			}
		}
	}
	return AnswerFileInfo{Model: name}
}
