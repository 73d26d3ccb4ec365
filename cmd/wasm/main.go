//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"net/url"
	"syscall/js"
	"time"

	"legalqa/internal/adapter/corpus"
	"legalqa/internal/adapter/composer"
	"legalqa/internal/domain"
	"legalqa/internal/usecase"
)

const defaultCorpusURL = "web_deployment_full.json"

var engine *usecase.Engine

// idle serves calls made before legalLoad; it answers with empty results.
var idle = usecase.NewEngine(nil, usecase.EngineConfig{}, nil)

func current() *usecase.Engine {
	if engine == nil {
		return idle
	}
	return engine
}

func main() {
	c := make(chan struct{})

	js.Global().Set("legalLoad", js.FuncOf(loadCorpus))
	js.Global().Set("legalSearch", js.FuncOf(search))
	js.Global().Set("legalAnswer", js.FuncOf(answer))
	js.Global().Set("legalStats", js.FuncOf(getStats))
	js.Global().Set("legalSuggest", js.FuncOf(suggest))

	<-c
}

// loadCorpus returns a Promise resolving to {"success": bool}. The fetch
// blocks, so it must not run on the event loop goroutine.
func loadCorpus(this js.Value, args []js.Value) interface{} {
	asset := defaultCorpusURL
	if len(args) > 0 && args[0].Type() == js.TypeString && args[0].String() != "" {
		asset = args[0].String()
	}
	asset = resolveURL(asset)

	handler := js.FuncOf(func(this js.Value, p []js.Value) interface{} {
		resolve := p[0]
		go func() {
			e := usecase.NewEngine(corpus.NewHTTPSource(asset, 60*time.Second), usecase.EngineConfig{}, nil)
			err := e.Load(context.Background())
			if err == nil {
				engine = e
			}
			result := map[string]interface{}{"success": err == nil}
			if err != nil {
				result["error"] = err.Error()
			}
			resolve.Invoke(makeResult(result))
		}()
		return nil
	})
	return js.Global().Get("Promise").New(handler)
}

// resolveURL makes a page-relative asset path absolute; the HTTP client
// rejects URLs without a scheme.
func resolveURL(ref string) string {
	base, err := url.Parse(js.Global().Get("location").Get("href").String())
	if err != nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

func search(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: legalSearch(query, [maxResults])")
	}

	result := current().Search(args[0].String(), maxResults(args))
	return makeResult(searchPayload(result))
}

func answer(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: legalAnswer(query, [maxResults])")
	}

	query := args[0].String()
	result, ans := current().Ask(query, maxResults(args))

	html, err := composer.RenderHTML(ans.Text)
	if err != nil {
		html = ""
	}
	return makeResult(map[string]interface{}{
		"answer":       ans.Text,
		"html":         html,
		"sources":      ans.Sources,
		"kind":         ans.Kind,
		"incidentType": ans.IncidentType,
		"search":       searchPayload(result),
	})
}

func getStats(this js.Value, args []js.Value) interface{} {
	stats := current().Stats()
	return makeResult(map[string]interface{}{
		"totalDocuments": stats.TotalDocuments,
		"accuracy":       stats.Accuracy,
	})
}

func suggest(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: legalSuggest(input)")
	}
	suggestions := current().Suggest(args[0].String(), 5)
	if suggestions == nil {
		suggestions = []string{}
	}
	return makeResult(map[string]interface{}{"suggestions": suggestions})
}

func maxResults(args []js.Value) int {
	if len(args) > 1 && args[1].Type() == js.TypeNumber {
		return args[1].Int()
	}
	return usecase.DefaultMaxResults
}

func searchPayload(result domain.SearchResult) map[string]interface{} {
	payload := map[string]interface{}{
		"results":    result.Results,
		"total":      result.Total,
		"searchTime": result.SearchTimeMillis(),
	}
	if result.IsGeneralChat {
		payload["isGeneralChat"] = true
		payload["chatResponse"] = result.ChatResponse
	}
	return payload
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
