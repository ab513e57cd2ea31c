package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleEnabledVariant(t *testing.T) {
	enabled := EnabledVariants(SpecBenchVariants)
	require.Len(t, enabled, 1)
	require.Equal(t, "sam_alpaca", enabled[0].Name)
	require.Equal(t, "evaluation/data/spec_bench/model_answer/vicuna-7b-v1.3-sam_alpaca-v0.4.2.jsonl", enabled[0].FilePath)
}

func TestParseAnswerFile(t *testing.T) {
	answer := ParseAnswerFile("evaluation/data/spec_bench/model_answer/vicuna-7b-v1.3-sam_alpaca-v0.4.2.jsonl")
	require.Equal(t, AnswerFileInfo{Model: "vicuna-7b-v1.3", Method: "sam_alpaca", Version: "v0.4.2"}, answer)

	answer = ParseAnswerFile("vicuna-7b-v1.3-sam_none-v0.4.jsonl")
	require.Equal(t, AnswerFileInfo{Model: "vicuna-7b-v1.3", Method: "sam_none", Version: "v0.4"}, answer)

	answer = ParseAnswerFile("vicuna-7b-v1.3-token_recycle.jsonl")
	require.Equal(t, AnswerFileInfo{Model: "vicuna-7b-v1.3", Method: "token_recycle", Version: ""}, answer)

	answer = ParseAnswerFile("baseline.jsonl")
	require.Equal(t, AnswerFileInfo{Model: "baseline"}, answer)
}
