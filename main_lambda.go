//go:build lambda

package main

import (
	"context"
	_ "embed"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/caarlos0/env/v11"

	"gear-optimizer/catalog"
)

//go:embed data/catalog.json
var embeddedCatalog string

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type optimizeRequest struct {
	Plan    *catalog.Plan `json:"plan"`
	Suggest bool          `json:"suggest"`
}

type optimizeResult struct {
	PlanResult
	Detail string `json:"detail"`
}

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req optimizeRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(400, "invalid JSON: "+err.Error())
	}
	if req.Plan == nil {
		return errResp(400, "missing plan field")
	}
	if len(req.Plan.Loadout) == 0 {
		return errResp(400, "plan has an empty loadout")
	}
	if len(req.Plan.Priorities) == 0 {
		return errResp(400, "plan has no priorities")
	}
	raw, _ := json.Marshal(req.Plan)
	plans, err := catalog.ParsePlans(raw)
	if err != nil {
		return errResp(400, err.Error())
	}

	cat, err := catalog.Parse(embeddedCatalog)
	if err != nil {
		return errResp(500, err.Error())
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return errResp(500, err.Error())
	}
	cfg.Suggest = req.Suggest
	cfg.Workers = 1

	results, err := runPlans(ctx, cat, plans, cfg)
	if err != nil {
		return errResp(500, err.Error())
	}
	r := results[0]

	resp := optimizeResult{PlanResult: r, Detail: FormatResult(r)}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
